package tilecam

import (
	"errors"
	"fmt"

	"github.com/eak1mov/go-tilecam/order"
	"github.com/eak1mov/go-tilecam/tile"
	"github.com/go-gl/mathgl/mgl32"
)

var ErrInvalidConfig = errors.New("tilecam: invalid configuration")

// Config is the tile geometry of a generator.
type Config struct {
	Viewport  tile.Size
	TileSize  tile.Size
	Padding   tile.Padding
	Algorithm order.Algorithm
}

// Validate checks the preconditions of the generator. The generator itself does not
// validate its configuration, callers are expected to do so before configuring.
func (c Config) Validate() error {
	if !c.Viewport.Valid() {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidConfig, c.Viewport.Width, c.Viewport.Height)
	}
	if !c.TileSize.Valid() {
		return fmt.Errorf("%w: tile size %dx%d", ErrInvalidConfig, c.TileSize.Width, c.TileSize.Height)
	}
	if !c.TileSize.Padded(c.Padding).Valid() {
		return fmt.Errorf("%w: padding %+v collapses the tile", ErrInvalidConfig, c.Padding)
	}
	return nil
}

func ceilDiv(a, b int) int {
	if b <= 0 || a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func (c Config) NumberOfXTiles() int {
	return ceilDiv(c.Viewport.Width, c.TileSize.Width)
}

func (c Config) NumberOfYTiles() int {
	return ceilDiv(c.Viewport.Height, c.TileSize.Height)
}

func (c Config) NumberOfTiles() int {
	return c.NumberOfXTiles() * c.NumberOfYTiles()
}

// ComputeTile returns the offset and the NDC correction transform of the tile at the
// given grid coordinate.
//
// The padded footprint is anchored at the unpadded tile origin: its center is
// coord*tileSize + paddedSize/2, so asymmetric padding (and even symmetric padding)
// shifts the footprint towards positive coordinates.
func ComputeTile(cfg Config, index int, coord tile.Coord) tile.Tile {
	viewport := cfg.Viewport
	tileSize := cfg.TileSize
	paddedTileSize := tileSize.Padded(cfg.Padding)

	offset := tile.Offset{
		X: coord.X * tileSize.Width,
		Y: coord.Y * tileSize.Height,
	}

	// padded tile center in viewport space
	centerX := float64(coord.X*tileSize.Width) + float64(paddedTileSize.Width)/2
	centerY := float64(coord.Y*tileSize.Height) + float64(paddedTileSize.Height)/2

	centerNDCX := centerX*2/float64(viewport.Width) - 1
	centerNDCY := centerY*2/float64(viewport.Height) - 1

	scaleX := float64(viewport.Width) / float64(paddedTileSize.Width)
	scaleY := float64(viewport.Height) / float64(paddedTileSize.Height)

	// scale first, then translate in the scaled space: S * T
	scale := mgl32.Scale3D(float32(scaleX), float32(scaleY), 1)
	translate := mgl32.Translate3D(float32(-centerNDCX), float32(-centerNDCY), 0)

	return tile.Tile{
		Index:     index,
		Coord:     coord,
		Offset:    offset,
		Transform: scale.Mul4(translate),
	}
}
