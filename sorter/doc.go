// Package sorter computes document-id permutations for physically
// reordering index segments by a field-based sort order.
//
// The single-segment Sorter produces an old→new / new→old permutation pair
// for one segment, materialized through the monotonic block codec. The
// MultiSorter interleaves several already-sorted segments into one global
// order with a k-way priority-queue merge, returning a per-segment map from
// local doc id to global position.
//
// Both detect the already-ordered case up front and return an empty result
// instead of materializing identity maps.
//
// All work is synchronous and CPU-bound; there is no shared mutable state.
// Produced maps are immutable and safe for concurrent reads.
package sorter
