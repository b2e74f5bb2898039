// Package writers turns build outcomes into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV summary, JSON/JSONL,
//     persisted pattern forms).
//   - core/profile stays domain-only; the pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
