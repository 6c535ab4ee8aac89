package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/integrator"
	"github.com/df07/go-museum-raytracer/pkg/log"
)

var logger = log.New("renderer")

// Config contains the image-level rendering settings
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Jittered camera samples averaged per pixel
	TileSize        int   // Edge length of a square tile
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed, tile i draws from seed+i
}

// DefaultConfig returns a 400x225 image with 4 samples in 32 pixel tiles
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 4,
		TileSize:        32,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Validate reports settings that cannot produce an image
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("renderer: image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("renderer: samplesPerPixel must be >= 1, got %d", c.SamplesPerPixel)
	}
	if c.TileSize < 1 {
		return fmt.Errorf("renderer: tileSize must be >= 1, got %d", c.TileSize)
	}
	return nil
}

// Renderer turns a traced scene into an image by rendering tiles in parallel.
// Every tile owns its random generator, so the image depends only on the
// seed and the config, never on the worker count or scheduling.
type Renderer struct {
	tracer *integrator.RayTracer
	camera *Camera
	config Config
}

// NewRenderer creates a renderer
func NewRenderer(tracer *integrator.RayTracer, camera *Camera, config Config) *Renderer {
	return &Renderer{tracer: tracer, camera: camera, config: config}
}

// Config returns the render settings
func (r *Renderer) Config() Config {
	return r.config
}

// Render renders the full image. It returns ctx.Err() if ctx is cancelled
// before every tile has been rendered.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	if err := r.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	width, height := r.config.Width, r.config.Height

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	tiles := NewTileGrid(width, height, r.config.TileSize, r.config.Seed)
	tileRenderer := NewTileRenderer(r.tracer, r.camera, width, height, r.config.SamplesPerPixel)
	pool := NewWorkerPool(tileRenderer, r.config.NumWorkers, len(tiles))

	logger.Infof("rendering %dx%d, %d spp, %d tiles on %d workers",
		width, height, r.config.SamplesPerPixel, len(tiles), pool.GetNumWorkers())

	pool.Start(ctx)
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, PixelStats: pixelStats})
	}
	pool.Stop()

	stats := RenderStats{
		Width:       width,
		Height:      height,
		TotalPixels: width * height,
		Tiles:       len(tiles),
		Workers:     pool.GetNumWorkers(),
	}

	var renderErr error
	done := 0
	for result, ok := pool.GetResult(); ok; result, ok = pool.GetResult() {
		if result.Error != nil {
			renderErr = result.Error
			continue
		}
		done++
		stats.TotalSamples += result.Samples
		logger.Debugf("tile %d done (%d/%d)", result.TileID, done, len(tiles))
	}
	if renderErr != nil {
		logger.Warningf("render cancelled after %d/%d tiles", done, len(tiles))
		return nil, stats, renderErr
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pixelStats[y][x].GetColor()))
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	stats.Duration = time.Since(start)

	return img, stats, nil
}

// vec3ToColor clamps a linear color to [0,1], applies gamma 2 and quantizes it
func vec3ToColor(c core.Vec3) color.RGBA {
	corrected := c.Clamp(0, 1).GammaCorrect(2.0)
	return color.RGBA{
		R: uint8(255.999 * corrected.X),
		G: uint8(255.999 * corrected.Y),
		B: uint8(255.999 * corrected.Z),
		A: 255,
	}
}
