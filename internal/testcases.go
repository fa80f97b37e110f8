package internal

import (
	"iter"

	"github.com/eak1mov/go-tilecam/tile"
)

// Grid is a tile geometry shared by the tests of several packages.
type Grid struct {
	Viewport tile.Size
	TileSize tile.Size
	Padding  tile.Padding
}

var grids = []struct {
	name string
	grid Grid
}{
	{"single", Grid{Viewport: tile.Size{Width: 64, Height: 64}, TileSize: tile.Size{Width: 64, Height: 64}}},
	{"square4", Grid{Viewport: tile.Size{Width: 512, Height: 512}, TileSize: tile.Size{Width: 128, Height: 128}}},
	{"square3", Grid{Viewport: tile.Size{Width: 300, Height: 300}, TileSize: tile.Size{Width: 100, Height: 100}}},
	{"fullhd", Grid{Viewport: tile.Size{Width: 1920, Height: 1080}, TileSize: tile.Size{Width: 128, Height: 128}}},
	{"partial", Grid{Viewport: tile.Size{Width: 1000, Height: 333}, TileSize: tile.Size{Width: 64, Height: 48}}},
	{"column", Grid{Viewport: tile.Size{Width: 32, Height: 700}, TileSize: tile.Size{Width: 32, Height: 100}}},
	{"padded", Grid{
		Viewport: tile.Size{Width: 800, Height: 600},
		TileSize: tile.Size{Width: 200, Height: 200},
		Padding:  tile.Padding{Top: 8, Right: 4, Bottom: 8, Left: 4},
	}},
}

// GridCases yields named tile geometries: square and non-square, power-of-two
// and irregular grids, with and without padding.
func GridCases() iter.Seq2[string, Grid] {
	return func(yield func(string, Grid) bool) {
		for _, tc := range grids {
			if !yield(tc.name, tc.grid) {
				return
			}
		}
	}
}
