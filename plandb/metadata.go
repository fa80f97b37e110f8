package plandb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/eak1mov/go-tilecam/order"
	"github.com/eak1mov/go-tilecam/tilecam"
	"github.com/go-gl/mathgl/mgl32"
)

var ErrInvalidMetadata = errors.New("tilecam: invalid plan metadata")

func encodeConfig(cfg tilecam.Config) map[string]string {
	return map[string]string{
		"viewport":  fmt.Sprintf("%dx%d", cfg.Viewport.Width, cfg.Viewport.Height),
		"tile_size": fmt.Sprintf("%dx%d", cfg.TileSize.Width, cfg.TileSize.Height),
		"padding": fmt.Sprintf("%d,%d,%d,%d",
			cfg.Padding.Top, cfg.Padding.Right, cfg.Padding.Bottom, cfg.Padding.Left),
		"algorithm": cfg.Algorithm.String(),
	}
}

func decodeConfig(metadata map[string]string) (tilecam.Config, error) {
	cfg := tilecam.Config{}

	viewportValue, found := metadata["viewport"]
	if !found {
		return tilecam.Config{}, fmt.Errorf("%w: viewport not found", ErrInvalidMetadata)
	}
	if _, err := fmt.Sscanf(viewportValue, "%dx%d", &cfg.Viewport.Width, &cfg.Viewport.Height); err != nil {
		return tilecam.Config{}, fmt.Errorf("%w: viewport %q: %w", ErrInvalidMetadata, viewportValue, err)
	}

	tileSizeValue, found := metadata["tile_size"]
	if !found {
		return tilecam.Config{}, fmt.Errorf("%w: tile_size not found", ErrInvalidMetadata)
	}
	if _, err := fmt.Sscanf(tileSizeValue, "%dx%d", &cfg.TileSize.Width, &cfg.TileSize.Height); err != nil {
		return tilecam.Config{}, fmt.Errorf("%w: tile_size %q: %w", ErrInvalidMetadata, tileSizeValue, err)
	}

	paddingValue, found := metadata["padding"]
	if found {
		p := &cfg.Padding
		if _, err := fmt.Sscanf(paddingValue, "%d,%d,%d,%d", &p.Top, &p.Right, &p.Bottom, &p.Left); err != nil {
			return tilecam.Config{}, fmt.Errorf("%w: padding %q: %w", ErrInvalidMetadata, paddingValue, err)
		}
	}

	algorithmValue, found := metadata["algorithm"]
	if found {
		algorithm, err := order.ParseAlgorithm(algorithmValue)
		if err != nil {
			return tilecam.Config{}, fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
		}
		cfg.Algorithm = algorithm
	}

	return cfg, nil
}

func encodeTransform(m mgl32.Mat4) []byte {
	buffer := make([]byte, 0, binary.Size(m))
	buffer, _ = binary.Append(buffer, binary.LittleEndian, m)
	return buffer
}

func decodeTransform(data []byte) (mgl32.Mat4, error) {
	var m mgl32.Mat4
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &m); err != nil {
		return mgl32.Mat4{}, fmt.Errorf("%w: transform: %w", ErrInvalidMetadata, err)
	}
	return m, nil
}
