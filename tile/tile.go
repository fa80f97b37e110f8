// Package tile provides common tile interfaces and types.
package tile

import "github.com/go-gl/mathgl/mgl32"

// Coord represents tile coordinates in the tile grid (column X, row Y).
type Coord struct {
	X int
	Y int
}

// Size is a width and height in pixels.
type Size struct {
	Width  int
	Height int
}

func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Padded returns the size grown by the padding insets.
func (s Size) Padded(p Padding) Size {
	return Size{
		Width:  s.Width + p.Left + p.Right,
		Height: s.Height + p.Top + p.Bottom,
	}
}

// Offset is the pixel position of a tile inside the untiled viewport.
type Offset struct {
	X int
	Y int
}

// Padding is the margin around a tile in CSS order: top, right, bottom, left.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Tile is a single step of a tiled rendering pass.
type Tile struct {
	Index  int
	Coord  Coord
	Offset Offset

	// Transform is applied after the view-projection of the source camera and maps
	// the padded tile footprint onto the whole [-1, 1] NDC range.
	Transform mgl32.Mat4
}

// Writer defines an interface for writing tiles to a tile plan.
type Writer interface {
	// WriteTile writes a single tile to the plan.
	WriteTile(t Tile) error

	// Finalize completes the writing process: flushes buffers, writes header.
	// It must be called before closing the Writer.
	Finalize() error
}

type Visitor interface {
	// VisitTiles visits all tiles in iteration order, calling the visitor for each.
	// It returns the first error returned by the visitor.
	VisitTiles(visitor func(Tile) error) error
}
