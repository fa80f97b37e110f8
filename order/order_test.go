package order_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/eak1mov/go-tilecam/order"
	"github.com/eak1mov/go-tilecam/tile"
	"github.com/google/go-cmp/cmp"
	"github.com/google/hilbert"
	"github.com/stretchr/testify/require"
)

var algorithms = []order.Algorithm{
	order.ScanLine,
	order.ZCurve,
	order.HilbertCurve,
	order.PeanoCurve,
}

func TestScanLine(t *testing.T) {
	want := []tile.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	if diff := cmp.Diff(want, order.ScanLineTable(2, 2)); diff != "" {
		t.Errorf("ScanLineTable(2, 2) mismatch (-want+got):\n%v", diff)
	}

	table := order.ScanLineTable(5, 3)
	for i, c := range table {
		if got, want := c.X+c.Y*5, i; got != want {
			t.Errorf("table[%d] = %v, linear index %d", i, c, got)
		}
	}
}

func TestZCurve(t *testing.T) {
	want := []tile.Coord{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1},
		{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 3}, {X: 1, Y: 3},
		{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3},
	}
	if diff := cmp.Diff(want, order.ZCurveTable(4, 4)); diff != "" {
		t.Errorf("ZCurveTable(4, 4) mismatch (-want+got):\n%v", diff)
	}

	// cells outside of the 3x2 grid are skipped, the rest keeps Morton order
	want = []tile.Coord{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1},
		{X: 2, Y: 0}, {X: 2, Y: 1},
	}
	if diff := cmp.Diff(want, order.ZCurveTable(3, 2)); diff != "" {
		t.Errorf("ZCurveTable(3, 2) mismatch (-want+got):\n%v", diff)
	}
}

func TestMorton(t *testing.T) {
	require.Equal(t, uint64(0b1001), order.MortonEncode(1, 2))
	for x := range 64 {
		for y := range 64 {
			gotX, gotY := order.MortonDecode(order.MortonEncode(x, y))
			if gotX != x || gotY != y {
				t.Fatalf("MortonDecode(MortonEncode(%d, %d)) = (%d, %d)", x, y, gotX, gotY)
			}
		}
	}
}

func TestHilbert(t *testing.T) {
	want := []tile.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if diff := cmp.Diff(want, order.HilbertTable(2, 2)); diff != "" {
		t.Errorf("HilbertTable(2, 2) mismatch (-want+got):\n%v", diff)
	}
	if diff := cmp.Diff([]tile.Coord{{X: 0, Y: 0}}, order.HilbertTable(1, 1)); diff != "" {
		t.Errorf("HilbertTable(1, 1) mismatch (-want+got):\n%v", diff)
	}
}

func TestHilbertAdjacency(t *testing.T) {
	for _, side := range []int{2, 4, 8, 16, 32} {
		table := order.HilbertTable(side, side)
		for i := 1; i < len(table); i++ {
			dx := abs(table[i].X - table[i-1].X)
			dy := abs(table[i].Y - table[i-1].Y)
			if dx+dy != 1 {
				t.Fatalf("side %d: step %d from %v to %v is not a neighbour", side, i, table[i-1], table[i])
			}
		}
	}
}

// The generator starts along the x axis, the reference implementation along y.
func TestHilbertMatchesReferenceTransposed(t *testing.T) {
	for _, side := range []int{2, 4, 8, 16} {
		h, err := hilbert.NewHilbert(side)
		require.NoError(t, err)

		table := order.HilbertTable(side, side)
		require.Len(t, table, side*side)
		for i, c := range table {
			x, y, err := h.Map(i)
			require.NoError(t, err)
			if c.X != y || c.Y != x {
				t.Fatalf("side %d: table[%d] = %v, reference (%d, %d)", side, i, c, x, y)
			}
		}
	}
}

func TestPeano(t *testing.T) {
	table := order.PeanoTable(3, 3)
	require.Len(t, table, 9)
	for i := 1; i < len(table); i++ {
		dx := abs(table[i].X - table[i-1].X)
		dy := abs(table[i].Y - table[i-1].Y)
		require.Equal(t, 1, dx+dy, "step %d from %v to %v", i, table[i-1], table[i])
	}
}

func TestCoverage(t *testing.T) {
	grids := [][2]int{{1, 1}, {2, 2}, {4, 4}, {3, 3}, {5, 2}, {1, 7}, {15, 9}, {16, 8}, {10, 1}}
	for _, algorithm := range algorithms {
		for _, grid := range grids {
			nx, ny := grid[0], grid[1]
			t.Run(fmt.Sprintf("%v/%dx%d", algorithm, nx, ny), func(t *testing.T) {
				table := order.Table(algorithm, nx, ny)
				require.Len(t, table, nx*ny)

				seen := make(map[tile.Coord]bool)
				for _, c := range table {
					require.True(t, c.X >= 0 && c.X < nx && c.Y >= 0 && c.Y < ny, "%v outside of grid", c)
					require.False(t, seen[c], "%v visited twice", c)
					seen[c] = true
				}
			})
		}
	}
}

func TestTableFallback(t *testing.T) {
	if diff := cmp.Diff(order.ScanLineTable(3, 2), order.Table(order.Algorithm(42), 3, 2)); diff != "" {
		t.Errorf("Table(unknown) mismatch (-want+got):\n%v", diff)
	}
	require.Empty(t, order.Table(order.HilbertCurve, 0, 4))
}

func TestParseAlgorithm(t *testing.T) {
	for _, algorithm := range algorithms {
		got, err := order.ParseAlgorithm(algorithm.String())
		require.NoError(t, err)
		require.Equal(t, algorithm, got)
	}

	got, err := order.ParseAlgorithm("zCurve")
	require.NoError(t, err)
	require.Equal(t, order.ZCurve, got)

	_, err = order.ParseAlgorithm("spiral")
	require.Truef(t, errors.Is(err, order.ErrUnknownAlgorithm), "%v", err)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
