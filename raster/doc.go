// Package raster provides render.Rasterizer implementations.
//
// Face draws real glyphs from OpenType fonts with golang.org/x/image. Cells
// draws each character as a block on a terminal-style cell grid, which is
// handy for headless use and for tests that need exact pixel geometry.
//
// Neither type is safe for concurrent use.
package raster

import "errors"

var (
	ErrUnknownFont = errors.New("raster: unknown font")
	ErrInvalidSize = errors.New("raster: invalid font size")
)
