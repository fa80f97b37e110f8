package tile

import (
	"errors"
	"iter"
)

var errVisitCancelled = errors.New("visit cancelled")

// IterTiles returns an iterator over all tiles of the visitor.
// It yields tile indices and tiles. Iteration may panic on unrecoverable errors.
func IterTiles(r Visitor) iter.Seq2[int, Tile] {
	return func(yield func(int, Tile) bool) {
		err := r.VisitTiles(func(t Tile) error {
			if !yield(t.Index, t) {
				return errVisitCancelled
			}
			return nil
		})
		if err != nil && err != errVisitCancelled {
			panic(err)
		}
	}
}

// CopyTiles writes all tiles of the visitor to the writer and finalizes it.
// The progress callback, if not nil, is called once per written tile.
func CopyTiles(w Writer, r Visitor, progress func()) error {
	err := r.VisitTiles(func(t Tile) error {
		if err := w.WriteTile(t); err != nil {
			return err
		}
		if progress != nil {
			progress()
		}
		return nil
	})
	if err != nil {
		return err
	}
	return w.Finalize()
}
