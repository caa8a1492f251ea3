// Package alignment holds the alignment-matrix core: one owned residue buffer
// (Store) addressed as records × positions, non-owning per-record views,
// residue tallies, and the column pass that classifies every position as
// SNP/invariant and core/non-core.
//
// It never imports fasta, output, writers, cli or app; keep it domain-only.
// Record sources plug in through the Source interface.
package alignment
