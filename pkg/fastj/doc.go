// Package fastj reads and writes FASTJ: FASTA records whose title line carries
// JSON metadata, normally an object, after the id.
//
//	>sequenceA {"date":"2017-05-04","virus":"flu"}
//	ATCG
//
// Design:
//   - Tokenizer splits a line source into raw (title, sequence) pairs. It pulls
//     one line at a time and never reads past the next record's title line.
//   - Parse and Format convert between a raw pair and a Record. They are pure
//     and safe for concurrent use.
//   - Reader composes the two; Writer formats records onto an io.Writer.
//
// Input is accepted liberally (unsorted keys, JSON white space, wrapped
// sequence lines with stray spaces or CRs, ">{...}" titles with no id).
// Output is canonical: sorted keys, compact JSON, one sequence line.
// Non-ASCII text in metadata is written as raw UTF-8, not as \uXXXX escapes.
// Files written by tools that escape non-ASCII by default therefore differ
// byte for byte after formatting, though they decode to the same values.
package fastj
