// Package writers turns fastj records into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (FASTJ/JSON/NDJSON).
//   • The codec stays format-only; commands stay orchestration-only.
//   • JSON/NDJSON go through pkg/api (v1) for a stable wire format.
package writers
