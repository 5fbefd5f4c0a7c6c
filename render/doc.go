// Package render composes the widget's bitmap: the rasterized text with the
// caret bar drawn on top.
//
// Rasterization is assumed to be expensive relative to a frame, so Cache only
// redraws after Invalidate. Calling Regenerate on a clean cache returns the
// previous composite without touching the Rasterizer.
package render
