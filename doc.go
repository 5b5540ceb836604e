// The planar computational-geometry core shared by the analysis tools.
//
// This package operates on plain in-memory coordinate sequences: the tools
// decode their vector, LiDAR, or raster records into Points, call the
// predicates and constructions here, and write the resulting scalars back
// into the stores they own. Nothing in this package performs I/O, touches a
// coordinate reference system, or holds shared mutable state, so every
// function is safe to call concurrently from per-record worker goroutines.
//
// Precondition violations (an unclosed ring, a zero-sized minimizer) come
// back as typed errors rather than panics; callers decide whether to skip
// the offending record or stop the run. Degenerate-but-valid geometry
// (zero-length segments, collinear hulls, polylines with nothing to split)
// is handled as a defined result, never an error.
package planar
