package spec_test

import (
	"encoding/binary"
	"testing"

	"github.com/eak1mov/go-tilecam/plan/spec"
	"github.com/eak1mov/go-tilecam/tile"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestItemLength(t *testing.T) {
	require.Equal(t, binary.Size(spec.Item{}), spec.ItemLength)
}

func TestItems(t *testing.T) {
	tiles := []tile.Tile{
		{Index: 0, Coord: tile.Coord{X: 0, Y: 0}, Transform: mgl32.Ident4()},
		{Index: 1, Coord: tile.Coord{X: 1, Y: 0}, Offset: tile.Offset{X: 128}, Transform: mgl32.Scale3D(2, 2, 1)},
		{Index: 2, Coord: tile.Coord{X: 1, Y: 1}, Offset: tile.Offset{X: 128, Y: 128}, Transform: mgl32.Translate3D(-1, -1, 0)},
	}
	items := make([]spec.Item, 0, len(tiles))
	for _, tl := range tiles {
		items = append(items, spec.ItemFromTile(tl))
	}

	for _, compression := range []spec.Compression{spec.CompressionNone, spec.CompressionGzip} {
		t.Run(compression.String(), func(t *testing.T) {
			compressed, err := spec.CompressItems(spec.SerializeItems(items), compression)
			require.NoError(t, err)
			data, err := spec.DecompressItems(compressed, compression)
			require.NoError(t, err)

			got, err := spec.DeserializeItems(data)
			require.NoError(t, err)
			for i, item := range got {
				if diff := cmp.Diff(tiles[i], item.Tile()); diff != "" {
					t.Errorf("item %d mismatch (-want+got):\n%v", i, diff)
				}
			}
		})
	}
}

func TestItemErrors(t *testing.T) {
	_, err := spec.DeserializeItems(make([]byte, spec.ItemLength+1))
	require.ErrorIs(t, err, spec.ErrInvalidItems)

	empty, err := spec.DeserializeItems(nil)
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = spec.CompressItems([]byte("foobar"), spec.CompressionUnknown)
	require.ErrorIs(t, err, spec.ErrUnsupportedCompression)
	_, err = spec.DecompressItems([]byte("foobar"), spec.Compression(42))
	require.ErrorIs(t, err, spec.ErrUnsupportedCompression)
}
