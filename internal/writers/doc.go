// Package writers turns validation reports into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV text, JSON, JSONL).
//   • validate stays domain-only and never formats anything.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
