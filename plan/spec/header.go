// Package spec implements the binary layout of tile plan files:
// a fixed-size little-endian header followed by a block of fixed-size tile items.
package spec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

type Compression uint8

const (
	CompressionUnknown Compression = iota
	CompressionNone
	CompressionGzip
)

type Header struct {
	HeaderMagic     uint64
	ViewportWidth   int32
	ViewportHeight  int32
	TileWidth       int32
	TileHeight      int32
	PaddingTop      int32
	PaddingRight    int32
	PaddingBottom   int32
	PaddingLeft     int32
	Algorithm       uint8
	ItemCompression Compression
	TileCount       uint32
	ItemsOffset     uint64
	ItemsLength     uint64
}

const (
	headerMagic     uint64 = 0x4E414C504354 // "TCPLAN"
	headerMagicMask uint64 = 1<<56 - 1
	HeaderMagicV1   uint64 = headerMagic | (0x01 << 56)

	HeaderLength = 62
	ItemsOffset  = HeaderLength
)

var ErrInvalidHeader = errors.New("invalid plan header")
var ErrInvalidVersion = errors.New("invalid plan version")

// SerializeHeader encodes the header into its HeaderLength bytes, little-endian,
// fields in declaration order.
func SerializeHeader(header *Header) []byte {
	buffer, _ := binary.Append(make([]byte, 0, HeaderLength), binary.LittleEndian, header)
	return buffer
}

// DeserializeHeader decodes the first HeaderLength bytes of a plan file.
// A buffer without the "TCPLAN" magic yields ErrInvalidHeader, a known magic with
// another version byte yields ErrInvalidVersion.
func DeserializeHeader(buffer []byte) (*Header, error) {
	if len(buffer) < HeaderLength {
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrInvalidHeader, len(buffer), io.ErrUnexpectedEOF)
	}
	header := Header{}
	if _, err := binary.Decode(buffer, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	if header.HeaderMagic&headerMagicMask != headerMagic {
		return nil, fmt.Errorf("%w: magic %#x", ErrInvalidHeader, header.HeaderMagic)
	}
	if header.HeaderMagic != HeaderMagicV1 {
		return nil, fmt.Errorf("%w: version %d", ErrInvalidVersion, header.HeaderMagic>>56)
	}
	return &header, nil
}

// CheckItemsLocation verifies that the item block described by the header lies after
// the header and inside a file of the given size. Uncompressed blocks must hold
// exactly TileCount items.
func (h *Header) CheckItemsLocation(fileSize uint64) error {
	if h.ItemsOffset < ItemsOffset || h.ItemsOffset > fileSize || h.ItemsLength > fileSize-h.ItemsOffset {
		return fmt.Errorf("%w: items at %d+%d outside of %d bytes",
			ErrInvalidHeader, h.ItemsOffset, h.ItemsLength, fileSize)
	}
	if h.ItemCompression == CompressionNone && h.ItemsLength != uint64(h.TileCount)*ItemLength {
		return fmt.Errorf("%w: %d uncompressed item bytes for %d tiles",
			ErrInvalidHeader, h.ItemsLength, h.TileCount)
	}
	return nil
}
