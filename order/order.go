// Package order provides the tile iteration orders: scan-line and
// space-filling curves mapped onto arbitrary (non-square, non-power-of-two) tile grids.
//
// Curve orders are computed on the smallest square the curve is defined for that
// covers the grid; cells outside the grid are skipped, keeping the relative
// visiting order of the remaining cells.
package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eak1mov/go-tilecam/tile"
)

type Algorithm uint8

const (
	// ScanLine visits tiles row by row. It works for any grid shape.
	ScanLine Algorithm = iota
	// ZCurve visits tiles in Morton order.
	ZCurve
	// HilbertCurve visits tiles along a Hilbert curve.
	HilbertCurve
	// PeanoCurve visits tiles along a Peano curve.
	PeanoCurve
)

var ErrUnknownAlgorithm = errors.New("tilecam: unknown iteration algorithm")

var algorithmNames = map[Algorithm]string{
	ScanLine:     "scanline",
	ZCurve:       "zcurve",
	HilbertCurve: "hilbertcurve",
	PeanoCurve:   "peanocurve",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// ParseAlgorithm parses algorithm names as returned by Algorithm.String.
// Matching is case-insensitive, the short names "hilbert", "peano" and "z" are accepted too.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "scanline", "":
		return ScanLine, nil
	case "zcurve", "z":
		return ZCurve, nil
	case "hilbertcurve", "hilbert":
		return HilbertCurve, nil
	case "peanocurve", "peano":
		return PeanoCurve, nil
	}
	return ScanLine, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Table returns the grid coordinates of all nx*ny tiles in iteration order.
// Unknown algorithms fall back to ScanLine.
func Table(a Algorithm, nx, ny int) []tile.Coord {
	switch a {
	case ZCurve:
		return ZCurveTable(nx, ny)
	case HilbertCurve:
		return HilbertTable(nx, ny)
	case PeanoCurve:
		return PeanoTable(nx, ny)
	default:
		return ScanLineTable(nx, ny)
	}
}

// ScanLineTable returns row-major order: index = x + y*nx.
func ScanLineTable(nx, ny int) []tile.Coord {
	if nx <= 0 || ny <= 0 {
		return nil
	}
	table := make([]tile.Coord, nx*ny)
	for y := range ny {
		for x := range nx {
			table[x+y*nx] = tile.Coord{X: x, Y: y}
		}
	}
	return table
}
