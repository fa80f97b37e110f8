// Package plan provides API for writing and reading tile plans: the precomputed
// tiles (grid coordinate, offset, NDC transform) of a tiled rendering pass.
package plan

import (
	"github.com/eak1mov/go-tilecam/order"
	"github.com/eak1mov/go-tilecam/plan/spec"
	"github.com/eak1mov/go-tilecam/tile"
	"github.com/eak1mov/go-tilecam/tilecam"
)

func configFromHeader(header *spec.Header) tilecam.Config {
	return tilecam.Config{
		Viewport: tile.Size{Width: int(header.ViewportWidth), Height: int(header.ViewportHeight)},
		TileSize: tile.Size{Width: int(header.TileWidth), Height: int(header.TileHeight)},
		Padding: tile.Padding{
			Top:    int(header.PaddingTop),
			Right:  int(header.PaddingRight),
			Bottom: int(header.PaddingBottom),
			Left:   int(header.PaddingLeft),
		},
		Algorithm: order.Algorithm(header.Algorithm),
	}
}

func copyConfigToHeader(cfg tilecam.Config, header *spec.Header) {
	header.ViewportWidth = int32(cfg.Viewport.Width)
	header.ViewportHeight = int32(cfg.Viewport.Height)
	header.TileWidth = int32(cfg.TileSize.Width)
	header.TileHeight = int32(cfg.TileSize.Height)
	header.PaddingTop = int32(cfg.Padding.Top)
	header.PaddingRight = int32(cfg.Padding.Right)
	header.PaddingBottom = int32(cfg.Padding.Bottom)
	header.PaddingLeft = int32(cfg.Padding.Left)
	header.Algorithm = uint8(cfg.Algorithm)
}
