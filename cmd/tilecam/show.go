package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/eak1mov/go-tilecam/tile"
	"github.com/google/subcommands"
)

type showCmd struct {
	inputFormat string
	inputPath   string
}

func (c *showCmd) Name() string     { return "show" }
func (c *showCmd) Synopsis() string { return "print a tile rendering plan" }
func (c *showCmd) Usage() string {
	return "tilecam show -i <path> [-if <format>]\n"
}
func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input path")
	f.StringVar(&c.inputFormat, "if", "", "Input format (plan, sqlite)")
}

func (c *showCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	reader, cfg, err := openPlan(deduceFormat(c.inputFormat, c.inputPath), c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer reader.Close()

	fmt.Printf("viewport=%dx%d tile=%dx%d padding=%d,%d,%d,%d algorithm=%v tiles=%d\n",
		cfg.Viewport.Width, cfg.Viewport.Height,
		cfg.TileSize.Width, cfg.TileSize.Height,
		cfg.Padding.Top, cfg.Padding.Right, cfg.Padding.Bottom, cfg.Padding.Left,
		cfg.Algorithm, cfg.NumberOfTiles())

	err = reader.VisitTiles(func(t tile.Tile) error {
		_, err := fmt.Printf("%d\t%d,%d\t%d,%d\t%v\n", t.Index, t.Coord.X, t.Coord.Y, t.Offset.X, t.Offset.Y, t.Transform)
		return err
	})
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
