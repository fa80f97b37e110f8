// Package tilecam splits the viewport of a camera into tiles and derives, for each tile,
// a camera that renders exactly that tile region of the full image.
//
// Iteration can be done by index:
//
//	for i := range g.NumberOfTiles() {
//		g.SetTile(i)
//		offset := g.Update()
//		// render g.Camera() into the tile at offset
//	}
//
// or with the pull protocol:
//
//	for g.NextTile() {
//		offset := g.Offset()
//		// render g.Camera() into the tile at offset
//	}
//	g.Reset()
//
// UpdateCameraProperties must be called after the source camera was altered.
package tilecam

import (
	"iter"
	"log/slog"

	"github.com/eak1mov/go-tilecam/camera"
	"github.com/eak1mov/go-tilecam/order"
	"github.com/eak1mov/go-tilecam/tile"
)

// Generator is not safe for concurrent use.
type Generator struct {
	logger *slog.Logger

	source camera.Source
	camera *camera.Camera

	config Config
	tile   int

	table       []tile.Coord
	tableBuilds int

	current tile.Tile
	valid   bool
}

var _ tile.Visitor = (*Generator)(nil)

type Option func(*Generator)

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

func WithConfig(cfg Config) Option {
	return func(g *Generator) { g.config = cfg }
}

// WithSourceCamera sets the source camera, see SetSourceCamera.
func WithSourceCamera(source camera.Source) Option {
	return func(g *Generator) { g.SetSourceCamera(source) }
}

func New(opts ...Option) *Generator {
	g := &Generator{
		logger: slog.New(slog.DiscardHandler),
		camera: camera.New(),
		tile:   -1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SourceCamera returns the camera whose viewport is divided into tiles, nil if not set.
func (g *Generator) SourceCamera() camera.Source {
	return g.source
}

// SetSourceCamera sets the camera whose viewport is divided into tiles and creates the
// tile camera from it. Setting the same source again is a no-op.
// The source must be comparable (usually a pointer). A nil source, typed or not,
// resets the tile camera to defaults.
func (g *Generator) SetSourceCamera(source camera.Source) {
	if c, ok := source.(*camera.Camera); ok && c == nil {
		source = nil
	}
	if g.source == source {
		return
	}
	g.source = source
	switch c := source.(type) {
	case nil:
		g.camera = camera.New()
	case *camera.Camera:
		g.camera = c.Copy()
	default:
		g.camera = camera.FromValues(source.Snapshot())
	}
	g.valid = false
}

// Camera returns the tile camera. Its post-view-projection maps the current tile
// onto the whole NDC range.
func (g *Generator) Camera() *camera.Camera {
	return g.camera
}

// UpdateCameraProperties copies all values of the source camera to the tile camera.
// It must be called when the source camera was altered.
func (g *Generator) UpdateCameraProperties() {
	if g.source == nil {
		return
	}
	g.camera.Apply(g.source.Snapshot())
}

func (g *Generator) Config() Config {
	return g.config
}

// Configure replaces the whole configuration at once. The iteration order is rebuilt
// lazily if the viewport, the tile size or the algorithm changed.
func (g *Generator) Configure(cfg Config) {
	if cfg == g.config {
		return
	}
	if cfg.Viewport != g.config.Viewport ||
		cfg.TileSize != g.config.TileSize ||
		cfg.Algorithm != g.config.Algorithm {
		g.table = nil
	}
	g.config = cfg
	g.valid = false
}

func (g *Generator) SourceViewport() tile.Size { return g.config.Viewport }
func (g *Generator) TileSize() tile.Size       { return g.config.TileSize }
func (g *Generator) Padding() tile.Padding     { return g.config.Padding }
func (g *Generator) Algorithm() order.Algorithm {
	return g.config.Algorithm
}

func (g *Generator) SetSourceViewport(viewport tile.Size) {
	cfg := g.config
	cfg.Viewport = viewport
	g.Configure(cfg)
}

func (g *Generator) SetTileSize(tileSize tile.Size) {
	cfg := g.config
	cfg.TileSize = tileSize
	g.Configure(cfg)
}

// SetPadding sets the padding per tile in CSS order. Padding affects the tile camera only,
// never the offset.
func (g *Generator) SetPadding(padding tile.Padding) {
	cfg := g.config
	cfg.Padding = padding
	g.Configure(cfg)
}

func (g *Generator) SetAlgorithm(algorithm order.Algorithm) {
	cfg := g.config
	cfg.Algorithm = algorithm
	g.Configure(cfg)
}

func (g *Generator) NumberOfXTiles() int { return g.config.NumberOfXTiles() }
func (g *Generator) NumberOfYTiles() int { return g.config.NumberOfYTiles() }
func (g *Generator) NumberOfTiles() int  { return g.config.NumberOfTiles() }

// Tile returns the current tile index, -1 before iteration.
func (g *Generator) Tile() int {
	return g.tile
}

// SetTile selects the tile computed by the next Update.
func (g *Generator) SetTile(index int) {
	if g.tile == index {
		return
	}
	g.tile = index
	g.valid = false
}

// Offset returns the pixel offset of the current tile. Padding is not included.
func (g *Generator) Offset() tile.Offset {
	return g.current.Offset
}

// Current returns the last successfully computed tile.
func (g *Generator) Current() tile.Tile {
	return g.current
}

// HasNextTile reports whether an iteration is in progress and tiles are left.
func (g *Generator) HasNextTile() bool {
	return g.tile >= 0 && g.tile < g.NumberOfTiles()-1
}

// NextTile advances to the next tile and updates the tile camera.
// It returns false once all tiles were visited.
func (g *Generator) NextTile() bool {
	if g.tile >= g.NumberOfTiles()-1 {
		return false
	}
	if g.tile < 0 {
		g.tile = -1
	}
	g.SetTile(g.tile + 1)
	g.Update()
	return true
}

// Reset prepares the generator for the next iteration with NextTile.
// The configuration and the iteration order are kept.
func (g *Generator) Reset() {
	g.SetTile(-1)
	g.current.Offset = tile.Offset{}
}

// Update computes the tile camera and the offset of the current tile.
// Nothing is recomputed while the tile and the configuration are unchanged.
// For an out-of-range tile index the last valid state is kept and returned.
func (g *Generator) Update() tile.Offset {
	if g.valid {
		return g.current.Offset
	}

	numTiles := g.NumberOfTiles()
	if g.tile < 0 || g.tile >= numTiles {
		g.logger.Warn("tilecam: tile index out of bounds, keeping last valid tile",
			"tile", g.tile, "tiles", numTiles)
		return g.current.Offset
	}

	g.valid = true
	g.current = ComputeTile(g.config, g.tile, g.tableCoord(g.tile))
	g.camera.SetPostViewProjection(g.current.Transform)

	return g.current.Offset
}

func (g *Generator) tableCoord(index int) tile.Coord {
	if len(g.table) == 0 {
		g.table = order.Table(g.config.Algorithm, g.NumberOfXTiles(), g.NumberOfYTiles())
		g.tableBuilds++
		g.logger.Debug("tilecam: iteration order built",
			"algorithm", g.config.Algorithm, "tiles", len(g.table))
	}
	return g.table[index]
}

// VisitTiles resets the generator and visits all tiles with NextTile.
// The generator is reset again afterwards.
func (g *Generator) VisitTiles(visitor func(tile.Tile) error) error {
	g.Reset()
	defer g.Reset()
	for g.NextTile() {
		if err := visitor(g.current); err != nil {
			return err
		}
	}
	return nil
}

// Tiles returns an iterator over all tiles, see VisitTiles.
func (g *Generator) Tiles() iter.Seq2[int, tile.Tile] {
	return tile.IterTiles(g)
}
