package order

import (
	"math/bits"

	"github.com/eak1mov/go-tilecam/tile"
	"github.com/google/hilbert"
)

// log2Ceil returns the number of bits needed to address n cells per axis.
func log2Ceil(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// MortonEncode interleaves the bits of x and y: bit i of x goes to bit 2i,
// bit i of y goes to bit 2i+1.
func MortonEncode(x, y int) uint64 {
	var z uint64
	for i := range 32 {
		z |= uint64(x>>i&1) << (2 * i)
		z |= uint64(y>>i&1) << (2*i + 1)
	}
	return z
}

// MortonDecode is the inverse of MortonEncode.
func MortonDecode(z uint64) (x, y int) {
	for i := range 32 {
		x |= int(z>>(2*i)&1) << i
		y |= int(z>>(2*i+1)&1) << i
	}
	return x, y
}

// ZCurveTable scans Morton indices in increasing order and keeps the ones that
// decode to a cell inside the nx*ny grid.
func ZCurveTable(nx, ny int) []tile.Coord {
	if nx <= 0 || ny <= 0 {
		return nil
	}
	numTiles := nx * ny
	table := make([]tile.Coord, 0, numTiles)

	// index space of the covering power-of-two square
	limit := uint64(1) << (2 * log2Ceil(max(nx, ny)))
	for z := uint64(0); z < limit && len(table) < numTiles; z++ {
		x, y := MortonDecode(z)
		if x < nx && y < ny {
			table = append(table, tile.Coord{X: x, Y: y})
		}
	}
	return table
}

// HilbertTable walks a Hilbert curve over the next power-of-two square.
// The curve starts at (0, 0) and ends at (0, side-1).
func HilbertTable(nx, ny int) []tile.Coord {
	if nx <= 0 || ny <= 0 {
		return nil
	}
	depth := log2Ceil(max(nx, ny))
	side := 1 << depth
	table := make([]tile.Coord, 0, nx*ny)
	return appendHilbert(table, nx, ny, 0, 0, side, 0, 0, side, depth)
}

// appendHilbert appends the cells of the square spanned from (x, y) by the basis
// vectors (xi, xj) and (yi, yj), subdivided depth times.
func appendHilbert(dst []tile.Coord, nx, ny, x, y, xi, xj, yi, yj, depth int) []tile.Coord {
	if depth <= 0 {
		cx := x + (xi+yi-1)/2
		cy := y + (xj+yj-1)/2
		if cx >= 0 && cy >= 0 && cx < nx && cy < ny {
			dst = append(dst, tile.Coord{X: cx, Y: cy})
		}
		return dst
	}
	dst = appendHilbert(dst, nx, ny, x, y, yi/2, yj/2, xi/2, xj/2, depth-1)
	dst = appendHilbert(dst, nx, ny, x+xi/2, y+xj/2, xi/2, xj/2, yi/2, yj/2, depth-1)
	dst = appendHilbert(dst, nx, ny, x+xi/2+yi/2, y+xj/2+yj/2, xi/2, xj/2, yi/2, yj/2, depth-1)
	dst = appendHilbert(dst, nx, ny, x+xi/2+yi, y+xj/2+yj, -yi/2, -yj/2, -xi/2, -xj/2, depth-1)
	return dst
}

// PeanoTable walks a Peano curve over the next power-of-three square.
func PeanoTable(nx, ny int) []tile.Coord {
	if nx <= 0 || ny <= 0 {
		return nil
	}
	numTiles := nx * ny
	side := 1
	for side < max(nx, ny) {
		side *= 3
	}
	if side == 1 {
		return []tile.Coord{{X: 0, Y: 0}}
	}

	p, err := hilbert.NewPeano(side)
	if err != nil {
		// side is a power of three, fall back to a complete order anyway
		return ScanLineTable(nx, ny)
	}

	table := make([]tile.Coord, 0, numTiles)
	for t := 0; t < side*side && len(table) < numTiles; t++ {
		x, y, err := p.Map(t)
		if err != nil {
			break
		}
		if x < nx && y < ny {
			table = append(table, tile.Coord{X: x, Y: y})
		}
	}
	return table
}
