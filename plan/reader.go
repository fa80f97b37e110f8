package plan

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/eak1mov/go-tilecam/plan/spec"
	"github.com/eak1mov/go-tilecam/tile"
	"github.com/eak1mov/go-tilecam/tilecam"
)

type Reader interface {
	io.Closer
	tile.Visitor

	// Config returns the generator configuration the plan was written with.
	Config() tilecam.Config
	NumberOfTiles() int

	// ReadTile reads the tile with the given iteration index.
	ReadTile(index int) (tile.Tile, error)

	Tiles() iter.Seq2[int, tile.Tile]
}

var ErrTileNotFound = errors.New("tilecam: tile not found")

type FileAccessFunc = func(offset, length uint64) ([]byte, error)

type reader struct {
	fileAccess FileAccessFunc
	fileCloser func() error
	header     *spec.Header
	items      []spec.Item
}

func NewFileReader(filePath string) (Reader, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	fileAccess := func(offset uint64, length uint64) ([]byte, error) {
		buffer := make([]byte, length)
		if _, err := file.ReadAt(buffer, int64(offset)); err != nil {
			return nil, err
		}
		return buffer, nil
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	r, err := NewReader(fileAccess, uint64(info.Size()))
	if err != nil {
		file.Close()
		return nil, err
	}
	r.(*reader).fileCloser = file.Close
	return r, nil
}

// NewReader reads the header of a plan of fileSize bytes. Headers pointing outside
// of the plan are rejected with spec.ErrInvalidHeader before any item is read.
func NewReader(fileAccess FileAccessFunc, fileSize uint64) (Reader, error) {
	if fileSize < spec.HeaderLength {
		return nil, fmt.Errorf("%w: %d bytes", spec.ErrInvalidHeader, fileSize)
	}
	headerData, err := fileAccess(0, spec.HeaderLength)
	if err != nil {
		return nil, err
	}
	header, err := spec.DeserializeHeader(headerData)
	if err != nil {
		return nil, err
	}
	if err := header.CheckItemsLocation(fileSize); err != nil {
		return nil, err
	}
	return &reader{
		fileAccess: fileAccess,
		fileCloser: func() error { return nil },
		header:     header,
	}, nil
}

func (r *reader) Close() error {
	return r.fileCloser()
}

func (r *reader) Config() tilecam.Config {
	return configFromHeader(r.header)
}

func (r *reader) NumberOfTiles() int {
	return int(r.header.TileCount)
}

func (r *reader) readItems() ([]spec.Item, error) {
	if r.items != nil {
		return r.items, nil
	}
	itemsCompressed, err := r.fileAccess(r.header.ItemsOffset, r.header.ItemsLength)
	if err != nil {
		return nil, err
	}
	itemsData, err := spec.DecompressItems(itemsCompressed, r.header.ItemCompression)
	if err != nil {
		return nil, err
	}
	items, err := spec.DeserializeItems(itemsData)
	if err != nil {
		return nil, err
	}
	if len(items) != int(r.header.TileCount) {
		return nil, fmt.Errorf("%w: %d items, header says %d", spec.ErrInvalidItems, len(items), r.header.TileCount)
	}
	r.items = items
	return items, nil
}

func (r *reader) ReadTile(index int) (tile.Tile, error) {
	items, err := r.readItems()
	if err != nil {
		return tile.Tile{}, err
	}
	if index < 0 || index >= len(items) {
		return tile.Tile{}, fmt.Errorf("%w: index %d of %d", ErrTileNotFound, index, len(items))
	}
	return items[index].Tile(), nil
}

func (r *reader) VisitTiles(visitor func(tile.Tile) error) error {
	items, err := r.readItems()
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := visitor(item.Tile()); err != nil {
			return err
		}
	}
	return nil
}

// panics on any error from fileAccess
func (r *reader) Tiles() iter.Seq2[int, tile.Tile] {
	return tile.IterTiles(r)
}
