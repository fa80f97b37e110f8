package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/eak1mov/go-tilecam/plan"
	"github.com/eak1mov/go-tilecam/plandb"
	"github.com/eak1mov/go-tilecam/tile"
	"github.com/eak1mov/go-tilecam/tilecam"
)

func deduceFormat(format, filePath string) string {
	if format == "" && (strings.HasSuffix(filePath, ".sqlite") || strings.HasSuffix(filePath, ".db")) {
		return "sqlite"
	}
	if format == "" && strings.HasSuffix(filePath, ".tileplan") {
		return "plan"
	}
	return format
}

// parsePadding accepts "top,right,bottom,left" or a single value for all sides.
func parsePadding(value string) (tile.Padding, error) {
	p := tile.Padding{}
	if value == "" {
		return p, nil
	}
	if !strings.Contains(value, ",") {
		var all int
		if _, err := fmt.Sscanf(value, "%d", &all); err != nil {
			return p, fmt.Errorf("invalid padding %q: %w", value, err)
		}
		return tile.Padding{Top: all, Right: all, Bottom: all, Left: all}, nil
	}
	if _, err := fmt.Sscanf(value, "%d,%d,%d,%d", &p.Top, &p.Right, &p.Bottom, &p.Left); err != nil {
		return p, fmt.Errorf("invalid padding %q: %w", value, err)
	}
	return p, nil
}

// planVisitor is a tile source together with the configuration it was generated with.
type planVisitor interface {
	tile.Visitor
	io.Closer
}

func openPlan(format, filePath string) (planVisitor, tilecam.Config, error) {
	switch format {
	case "plan":
		reader, err := plan.NewFileReader(filePath)
		if err != nil {
			return nil, tilecam.Config{}, err
		}
		return reader, reader.Config(), nil
	case "sqlite":
		reader, err := plandb.NewReader(filePath)
		if err != nil {
			return nil, tilecam.Config{}, err
		}
		cfg, err := reader.ReadConfig()
		if err != nil {
			reader.Close()
			return nil, tilecam.Config{}, err
		}
		return reader, cfg, nil
	}
	return nil, tilecam.Config{}, fmt.Errorf("invalid format: %q", format)
}

type planWriter interface {
	tile.Writer
	io.Closer
}

func createPlan(format, filePath string, cfg tilecam.Config) (planWriter, error) {
	logger := slog.New(slog.NewTextHandler(log.Writer(), &slog.HandlerOptions{Level: slog.LevelWarn}))
	switch format {
	case "plan":
		return plan.NewWriter(filePath, cfg, plan.WithLogger(logger))
	case "sqlite":
		return plandb.NewWriter(filePath, plandb.WithConfig(cfg), plandb.WithLogger(logger))
	}
	return nil, fmt.Errorf("invalid format: %q", format)
}
