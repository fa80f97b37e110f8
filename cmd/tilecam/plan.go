package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/eak1mov/go-tilecam/order"
	"github.com/eak1mov/go-tilecam/tile"
	"github.com/eak1mov/go-tilecam/tilecam"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type planCmd struct {
	width        int
	height       int
	tileWidth    int
	tileHeight   int
	padding      string
	algorithm    string
	outputFormat string
	outputPath   string
}

func (c *planCmd) Name() string     { return "plan" }
func (c *planCmd) Synopsis() string { return "generate a tile rendering plan" }
func (c *planCmd) Usage() string {
	return "tilecam plan -w <px> -h <px> -tw <px> -th <px> [-pad <t,r,b,l>] [-a <algorithm>] -o <path> [-of <format>]\n"
}
func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.width, "w", 0, "Viewport width")
	f.IntVar(&c.height, "h", 0, "Viewport height")
	f.IntVar(&c.tileWidth, "tw", 0, "Tile width")
	f.IntVar(&c.tileHeight, "th", 0, "Tile height")
	f.StringVar(&c.padding, "pad", "", "Tile padding (top,right,bottom,left or a single value)")
	f.StringVar(&c.algorithm, "a", "scanline", "Tile order (scanline, zcurve, hilbertcurve, peanocurve)")
	f.StringVar(&c.outputPath, "o", "", "Output path")
	f.StringVar(&c.outputFormat, "of", "", "Output format (plan, sqlite)")
}

func (c *planCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	padding, err := parsePadding(c.padding)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	algorithm, err := order.ParseAlgorithm(c.algorithm)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	cfg := tilecam.Config{
		Viewport:  tile.Size{Width: c.width, Height: c.height},
		TileSize:  tile.Size{Width: c.tileWidth, Height: c.tileHeight},
		Padding:   padding,
		Algorithm: algorithm,
	}
	if err := cfg.Validate(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	writer, err := createPlan(deduceFormat(c.outputFormat, c.outputPath), c.outputPath, cfg)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer writer.Close()

	generator := tilecam.New(tilecam.WithConfig(cfg))

	bar := progressbar.NewOptions(generator.NumberOfTiles(), progressbar.OptionShowIts(), progressbar.OptionShowCount())
	err = tile.CopyTiles(writer, generator, func() { bar.Add(1) })
	bar.Finish()
	fmt.Println()

	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
