// Package writers turns analyzed alignments into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, JSON/JSONL, CBOR, FASTA).
//   - alignment stays domain-only; appcore stays orchestration-only.
//   - JSON/JSONL/CBOR go through pkg/api (v1) for a stable wire format.
package writers
