// Package convert decodes bulk JSON documents (a JSON array or NDJSON) into
// fastj records without loading the whole input.
package convert
