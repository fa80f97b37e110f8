// Package plandb provides API for storing tile plans in SQLite databases.
//
// Note: User must properly initialize the sqlite3 library generic driver
// (e.g. import _ "github.com/mattn/go-sqlite3") before using this package.
package plandb

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/eak1mov/go-tilecam/tile"
	"github.com/eak1mov/go-tilecam/tilecam"
)

var ErrTileNotFound = errors.New("tilecam: tile not found")

// Reader implements tile.Visitor interface for SQLite plan databases.
type Reader struct {
	db   *sql.DB
	stmt *sql.Stmt
}

var _ tile.Visitor = (*Reader)(nil)

// NewReader creates a new Reader for the given database path.
//
// The returned Reader must be closed after use to release database resources.
func NewReader(filePath string) (*Reader, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", filePath))
	if err != nil {
		return nil, err
	}

	stmt, err := db.Prepare("SELECT tile_x, tile_y, offset_x, offset_y, transform FROM tiles WHERE tile_index = ?")
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Reader{db: db, stmt: stmt}, nil
}

func (r *Reader) Close() error {
	return errors.Join(r.stmt.Close(), r.db.Close())
}

func (r *Reader) ReadMetadata() (map[string]string, error) {
	metadata := make(map[string]string)

	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		metadata[name] = value
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return metadata, nil
}

// ReadConfig decodes the generator configuration stored with WithConfig.
func (r *Reader) ReadConfig() (tilecam.Config, error) {
	metadata, err := r.ReadMetadata()
	if err != nil {
		return tilecam.Config{}, err
	}
	return decodeConfig(metadata)
}

func (r *Reader) ReadTile(index int) (tile.Tile, error) {
	t := tile.Tile{Index: index}
	var transform []byte
	err := r.stmt.QueryRow(index).Scan(&t.Coord.X, &t.Coord.Y, &t.Offset.X, &t.Offset.Y, &transform)
	if errors.Is(err, sql.ErrNoRows) {
		return tile.Tile{}, fmt.Errorf("%w: index %d", ErrTileNotFound, index)
	}
	if err != nil {
		return tile.Tile{}, err
	}

	t.Transform, err = decodeTransform(transform)
	if err != nil {
		return tile.Tile{}, err
	}
	return t, nil
}

// VisitTiles visits all tiles in iteration order.
func (r *Reader) VisitTiles(visitor func(tile.Tile) error) error {
	rows, err := r.db.Query("SELECT tile_index, tile_x, tile_y, offset_x, offset_y, transform FROM tiles ORDER BY tile_index")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var t tile.Tile
		var transform []byte

		if err := rows.Scan(&t.Index, &t.Coord.X, &t.Coord.Y, &t.Offset.X, &t.Offset.Y, &transform); err != nil {
			return err
		}

		t.Transform, err = decodeTransform(transform)
		if err != nil {
			return err
		}

		if err := visitor(t); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return err
	}

	return nil
}
