package spec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/eak1mov/go-tilecam/tile"
)

// Item is a single tile record of a plan. It is designed to be easily readable
// from other languages: fixed size, little-endian, Transform in column-major order.
type Item struct {
	Index     uint32
	X         uint32
	Y         uint32
	OffsetX   uint32
	OffsetY   uint32
	Transform [16]float32
}

const ItemLength = 84

var ErrInvalidItems = errors.New("invalid plan items")

func ItemFromTile(t tile.Tile) Item {
	return Item{
		Index:     uint32(t.Index),
		X:         uint32(t.Coord.X),
		Y:         uint32(t.Coord.Y),
		OffsetX:   uint32(t.Offset.X),
		OffsetY:   uint32(t.Offset.Y),
		Transform: t.Transform,
	}
}

func (i Item) Tile() tile.Tile {
	return tile.Tile{
		Index:     int(i.Index),
		Coord:     tile.Coord{X: int(i.X), Y: int(i.Y)},
		Offset:    tile.Offset{X: int(i.OffsetX), Y: int(i.OffsetY)},
		Transform: i.Transform,
	}
}

func SerializeItems(items []Item) []byte {
	var buffer bytes.Buffer
	buffer.Grow(len(items) * ItemLength)
	binary.Write(&buffer, binary.LittleEndian, items)
	return buffer.Bytes()
}

func DeserializeItems(data []byte) ([]Item, error) {
	if len(data)%ItemLength != 0 {
		return nil, fmt.Errorf("%w: block length %d is not a multiple of %d", ErrInvalidItems, len(data), ItemLength)
	}
	items := make([]Item, len(data)/ItemLength)

	err := binary.Read(bytes.NewReader(data), binary.LittleEndian, items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidItems, err)
	}

	return items, nil
}
