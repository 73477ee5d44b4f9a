// Package raster draws lines, polygons, markers and bitmap text into an
// in-memory RGBA canvas.
package raster
