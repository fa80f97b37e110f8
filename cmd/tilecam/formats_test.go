package main

import (
	"testing"

	"github.com/eak1mov/go-tilecam/tile"
	"github.com/stretchr/testify/require"
)

func TestDeduceFormat(t *testing.T) {
	testCases := []struct {
		format   string
		filePath string
		want     string
	}{
		{"", "out.sqlite", "sqlite"},
		{"", "out.db", "sqlite"},
		{"", "out.tileplan", "plan"},
		{"plan", "out.sqlite", "plan"},
		{"", "out.bin", ""},
	}
	for _, tc := range testCases {
		if got := deduceFormat(tc.format, tc.filePath); got != tc.want {
			t.Errorf("deduceFormat(%q, %q) = %q, want = %q", tc.format, tc.filePath, got, tc.want)
		}
	}
}

func TestParsePadding(t *testing.T) {
	p, err := parsePadding("")
	require.NoError(t, err)
	require.Equal(t, tile.Padding{}, p)

	p, err = parsePadding("8")
	require.NoError(t, err)
	require.Equal(t, tile.Padding{Top: 8, Right: 8, Bottom: 8, Left: 8}, p)

	p, err = parsePadding("1,2,3,4")
	require.NoError(t, err)
	require.Equal(t, tile.Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}, p)

	_, err = parsePadding("1,2")
	require.Error(t, err)

	_, err = parsePadding("x")
	require.Error(t, err)
}
