package renderer

import (
	"image"
	"math/rand"

	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/integrator"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier, row-major
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Random *rand.Rand      // Tile-specific random generator for deterministic results
}

// NewTile creates a tile whose generator is seeded with seed + id
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(seed + int64(id))),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}

// TileRenderer renders the pixels of tiles through a ray tracer
type TileRenderer struct {
	tracer          *integrator.RayTracer
	camera          *Camera
	width, height   int
	samplesPerPixel int
}

// NewTileRenderer creates a tile renderer for a width x height image
func NewTileRenderer(tracer *integrator.RayTracer, camera *Camera, width, height, samplesPerPixel int) *TileRenderer {
	return &TileRenderer{
		tracer:          tracer,
		camera:          camera,
		width:           width,
		height:          height,
		samplesPerPixel: max(1, samplesPerPixel),
	}
}

// RenderTileBounds samples every pixel within bounds into pixelStats and
// returns the number of samples taken. The same sampler drives the pixel
// jitter and the tracer.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler) int {
	samples := 0
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := &pixelStats[j][i]
			for range tr.samplesPerPixel {
				ray := tr.camera.PixelRay(i, j, tr.width, tr.height, sampler.Get1D(), sampler.Get1D())
				ps.AddSample(tr.tracer.RayColor(ray, sampler))
				samples++
			}
		}
	}
	return samples
}
