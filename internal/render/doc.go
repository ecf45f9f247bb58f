// Package render turns complex maps into drawing calls.
//
// Two interchangeable strategies share the same arithmetic and viewport:
//
//   - [VectorStrategy]: tessellates straight lines of the plane, maps every
//     sample through a transform and strokes the resulting polylines
//   - [RasterStrategy]: forward-warps every pixel of a source raster into a
//     destination raster and blits it
//
// Both draw onto a [Surface] supplied by the caller and keep no state
// between frames beyond their raster buffers.
package render
