package plan_test

import (
	"maps"
	"os"
	"path/filepath"
	"testing"

	"github.com/eak1mov/go-tilecam/camera"
	"github.com/eak1mov/go-tilecam/internal"
	"github.com/eak1mov/go-tilecam/order"
	"github.com/eak1mov/go-tilecam/plan"
	"github.com/eak1mov/go-tilecam/plan/spec"
	"github.com/eak1mov/go-tilecam/tile"
	"github.com/eak1mov/go-tilecam/tilecam"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestWriterReader(t *testing.T) {
	for name, grid := range internal.GridCases() {
		for _, compression := range []spec.Compression{spec.CompressionNone, spec.CompressionGzip} {
			t.Run(name+"/"+compression.String(), func(t *testing.T) {
				t.Parallel()

				cfg := tilecam.Config{
					Viewport:  grid.Viewport,
					TileSize:  grid.TileSize,
					Padding:   grid.Padding,
					Algorithm: order.HilbertCurve,
				}
				g := tilecam.New(tilecam.WithSourceCamera(camera.New()), tilecam.WithConfig(cfg))
				tiles := maps.Collect(g.Tiles())

				filePath := filepath.Join(t.TempDir(), "tiles.tileplan")
				writer, err := plan.NewWriter(filePath, cfg, plan.WithCompression(compression))
				if err != nil {
					t.Fatalf("NewWriter failed: %v", err)
				}
				defer writer.Close()

				if err := tile.CopyTiles(writer, g, nil); err != nil {
					t.Fatalf("CopyTiles failed: %v", err)
				}

				reader, err := plan.NewFileReader(filePath)
				if err != nil {
					t.Fatalf("NewFileReader failed: %v", err)
				}
				defer reader.Close()

				if diff := cmp.Diff(cfg, reader.Config()); diff != "" {
					t.Errorf("Config mismatch (-want+got):\n%v", diff)
				}
				if got, want := reader.NumberOfTiles(), g.NumberOfTiles(); got != want {
					t.Errorf("NumberOfTiles = %v, want = %v", got, want)
				}

				if got, want := maps.Collect(reader.Tiles()), tiles; !cmp.Equal(got, want) {
					t.Errorf("VisitTiles data mismatch")
				}

				for index, want := range tiles {
					got, err := reader.ReadTile(index)
					if err != nil {
						t.Fatalf("ReadTile(%v) failed: %v", index, err)
					}
					if !cmp.Equal(got, want) {
						t.Fatalf("ReadTile(%v) = %v, want = %v", index, got, want)
					}
				}
			})
		}
	}
}

func TestReaderErrors(t *testing.T) {
	cfg := tilecam.Config{
		Viewport: tile.Size{Width: 256, Height: 256},
		TileSize: tile.Size{Width: 128, Height: 128},
	}
	filePath := filepath.Join(t.TempDir(), "tiles.tileplan")

	writer, err := plan.NewWriter(filePath, cfg, plan.WithCompression(spec.CompressionNone))
	require.NoError(t, err)
	require.NoError(t, tile.CopyTiles(writer, tilecam.New(tilecam.WithConfig(cfg)), nil))
	require.NoError(t, writer.Close())

	reader, err := plan.NewFileReader(filePath)
	require.NoError(t, err)
	_, err = reader.ReadTile(4)
	require.ErrorIs(t, err, plan.ErrTileNotFound)
	_, err = reader.ReadTile(-1)
	require.ErrorIs(t, err, plan.ErrTileNotFound)
	require.NoError(t, reader.Close())

	data, err := os.ReadFile(filePath)
	require.NoError(t, err)
	require.Len(t, data, spec.HeaderLength+4*spec.ItemLength)

	require.NoError(t, os.WriteFile(filePath, data[:len(data)-spec.ItemLength], 0644))
	_, err = plan.NewFileReader(filePath)
	require.ErrorIs(t, err, spec.ErrInvalidHeader)

	require.NoError(t, os.WriteFile(filePath, []byte("TCPLAN"), 0644))
	_, err = plan.NewFileReader(filePath)
	require.ErrorIs(t, err, spec.ErrInvalidHeader)

	// item block far beyond the end of the file
	for _, compression := range []spec.Compression{spec.CompressionNone, spec.CompressionGzip} {
		header := spec.Header{
			HeaderMagic:     spec.HeaderMagicV1,
			ItemCompression: compression,
			TileCount:       1,
			ItemsOffset:     spec.ItemsOffset,
			ItemsLength:     1 << 62,
		}
		require.NoError(t, os.WriteFile(filePath, spec.SerializeHeader(&header), 0644))
		_, err = plan.NewFileReader(filePath)
		require.ErrorIs(t, err, spec.ErrInvalidHeader, "compression %v", compression)
	}

	// the same check applies to custom file access
	header := spec.Header{
		HeaderMagic:     spec.HeaderMagicV1,
		ItemCompression: spec.CompressionNone,
		TileCount:       2,
		ItemsOffset:     spec.ItemsOffset,
		ItemsLength:     spec.ItemLength,
	}
	headerData := spec.SerializeHeader(&header)
	memory := append(headerData, make([]byte, spec.ItemLength)...)
	fileAccess := func(offset, length uint64) ([]byte, error) {
		return memory[offset : offset+length], nil
	}
	_, err = plan.NewReader(fileAccess, uint64(len(memory)))
	require.ErrorIs(t, err, spec.ErrInvalidHeader)

	header.TileCount = 1
	copy(memory, spec.SerializeHeader(&header))
	reader, err = plan.NewReader(fileAccess, uint64(len(memory)))
	require.NoError(t, err)
	defer reader.Close()
	visited := 0
	require.NoError(t, reader.VisitTiles(func(tile.Tile) error { visited++; return nil }))
	require.Equal(t, 1, visited)
}
