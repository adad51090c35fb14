// Package packed implements the monotonic block codec: a write-once,
// read-only sequence of non-decreasing 64-bit integers stored as fixed-size
// blocks.
//
// Each block stores a minimum base value, a float32 average-delta predictor
// and the residuals of a linear prediction, bit-packed at the minimal width.
// Near-arithmetic sequences (doc-id maps, offset tables, ordinal addresses)
// collapse to almost no storage; arbitrary monotonic data keeps bounded
// overhead.
//
// A Writer is single-pass and single-writer. Once Finish has sealed the
// stream, a Reader over the produced bytes is immutable and safe for
// unbounded concurrent reads.
package packed
