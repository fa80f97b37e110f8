package plan

import (
	"io"
	"log/slog"
	"os"

	"github.com/eak1mov/go-tilecam/plan/spec"
	"github.com/eak1mov/go-tilecam/tile"
	"github.com/eak1mov/go-tilecam/tilecam"
)

// Writer implements tile.Writer interface for plan files.
type Writer struct {
	logger      *slog.Logger
	file        *os.File
	header      spec.Header
	compression spec.Compression

	items []spec.Item
}

var _ tile.Writer = (*Writer)(nil)

type writerConfig struct {
	Compression spec.Compression
	Logger      *slog.Logger
}

type WriterOption func(*writerConfig)

// WithCompression sets the compression of the item block, gzip by default.
func WithCompression(compression spec.Compression) WriterOption {
	return func(c *writerConfig) { c.Compression = compression }
}

func WithLogger(logger *slog.Logger) WriterOption {
	return func(c *writerConfig) { c.Logger = logger }
}

// NewWriter creates a plan file for tiles generated with the given configuration.
//
// The returned Writer must be finalized and closed after use.
func NewWriter(filePath string, cfg tilecam.Config, opts ...WriterOption) (*Writer, error) {
	config := writerConfig{
		Compression: spec.CompressionGzip,
		Logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, err
	}

	header := spec.Header{
		HeaderMagic:     spec.HeaderMagicV1,
		ItemCompression: config.Compression,
		ItemsOffset:     spec.ItemsOffset,
	}
	copyConfigToHeader(cfg, &header)

	return &Writer{
		logger:      config.Logger,
		file:        file,
		header:      header,
		compression: config.Compression,
		items:       make([]spec.Item, 0, cfg.NumberOfTiles()),
	}, nil
}

func (w *Writer) WriteTile(t tile.Tile) error {
	w.items = append(w.items, spec.ItemFromTile(t))
	return nil
}

func (w *Writer) Finalize() error {
	if w.items == nil {
		panic("tilecam: finalize called twice")
	}

	w.logger.Debug("tilecam: serialize", "tiles", len(w.items))
	itemsData, err := spec.CompressItems(spec.SerializeItems(w.items), w.compression)
	if err != nil {
		return err
	}
	w.header.TileCount = uint32(len(w.items))
	w.header.ItemsLength = uint64(len(itemsData))
	w.items = nil

	w.logger.Debug("tilecam: write items")
	if _, err := w.file.Seek(spec.ItemsOffset, io.SeekStart); err != nil {
		return err
	}
	if _, err := w.file.Write(itemsData); err != nil {
		return err
	}

	w.logger.Debug("tilecam: write header")
	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := w.file.Write(spec.SerializeHeader(&w.header)); err != nil {
		return err
	}

	err = w.file.Close()
	if err != nil {
		return err
	}
	w.file = nil

	w.logger.Debug("tilecam: done!")
	return nil
}

func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	return w.file.Close()
}
