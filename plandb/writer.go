package plandb

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/eak1mov/go-tilecam/tile"
	"github.com/eak1mov/go-tilecam/tilecam"
)

// Writer implements tile.Writer interface for SQLite plan databases.
type Writer struct {
	db     *sql.DB
	stmt   *sql.Stmt
	logger *slog.Logger
}

var _ tile.Writer = (*Writer)(nil)

type writerConfig struct {
	Metadata map[string]string
	Logger   *slog.Logger
}

type WriterOption func(*writerConfig)

// WithMetadata adds custom metadata entries. Entries written by WithConfig take precedence.
func WithMetadata(metadata map[string]string) WriterOption {
	return func(c *writerConfig) {
		for k, v := range metadata {
			if _, exists := c.Metadata[k]; !exists {
				c.Metadata[k] = v
			}
		}
	}
}

// WithConfig stores the generator configuration in the metadata table.
func WithConfig(cfg tilecam.Config) WriterOption {
	return func(c *writerConfig) {
		for k, v := range encodeConfig(cfg) {
			c.Metadata[k] = v
		}
	}
}

func WithLogger(logger *slog.Logger) WriterOption {
	return func(c *writerConfig) { c.Logger = logger }
}

// NewWriter creates a new Writer for writing to a plan database.
// It applies given options and initializes database for writing tiles.
func NewWriter(filePath string, opts ...WriterOption) (*Writer, error) {
	config := writerConfig{
		Metadata: make(map[string]string),
		Logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	var err error
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			db.Close()
		}
	}()

	_, err = db.Exec(`
		CREATE TABLE metadata (name TEXT, value TEXT);
		CREATE TABLE tiles (
			tile_index INTEGER,
			tile_x INTEGER,
			tile_y INTEGER,
			offset_x INTEGER,
			offset_y INTEGER,
			transform BLOB
		);
	`)
	if err != nil {
		return nil, err
	}

	for k, v := range config.Metadata {
		_, err = db.Exec("INSERT INTO metadata (name, value) VALUES (?, ?)", k, v)
		if err != nil {
			return nil, err
		}
	}

	stmt, err := db.Prepare("INSERT INTO tiles (tile_index, tile_x, tile_y, offset_x, offset_y, transform) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return nil, err
	}

	return &Writer{db, stmt, config.Logger}, nil
}

func (w *Writer) Close() error {
	return errors.Join(w.stmt.Close(), w.db.Close())
}

func (w *Writer) WriteTile(t tile.Tile) error {
	_, err := w.stmt.Exec(t.Index, t.Coord.X, t.Coord.Y, t.Offset.X, t.Offset.Y, encodeTransform(t.Transform))
	return err
}

func (w *Writer) Finalize() error {
	w.logger.Debug("tilecam: creating index")
	_, err := w.db.Exec("CREATE UNIQUE INDEX tile_index ON tiles (tile_index)")

	w.logger.Debug("tilecam: done!")
	return err
}
