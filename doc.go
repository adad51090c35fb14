// Package docvalues provides per-document columnar value access for a
// search-index engine: numeric accessors, byte dictionaries and sorted
// doc-values views with ordinal/term lookup.
//
// A sorted doc-values view is the triple (per-document ordinal accessor,
// ordinal dictionary, value count). Ordinals are dense, assigned in
// lexicographic order of the dictionary's byte strings, with -1 meaning "no
// value for this document". Two storage strategies sit behind one API: a
// general binary accessor (arbitrary byte storage plus an ordinal accessor)
// and a block-compressed dictionary with native term lookup, preferred when
// available.
//
// All views are immutable after construction and safe for concurrent reads;
// they hold shared references to their backing accessors so query threads
// read the same segment data without copying.
//
// Subpackages: packed (monotonic block codec), store (byte plumbing),
// bits (liveness), sorter (segment permutations and cross-segment merge).
package docvalues
