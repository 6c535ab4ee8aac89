package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/integrator"
	"github.com/df07/go-museum-raytracer/pkg/lights"
	"github.com/df07/go-museum-raytracer/pkg/output"
	"github.com/df07/go-museum-raytracer/pkg/renderer"
	"github.com/df07/go-museum-raytracer/pkg/scene"
)

// Config holds everything needed to render one image.
type Config struct {
	Render RenderConfig `json:"render"`
	Tracer TracerConfig `json:"tracer"`
	Scene  SceneConfig  `json:"scene"`
}

// RenderConfig holds the image-level settings
type RenderConfig struct {
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	SamplesPerPixel int    `json:"samplesPerPixel"`
	Supersample     int    `json:"supersample"` // Render at this multiple, then downsample
	TileSize        int    `json:"tileSize"`
	Workers         int    `json:"workers"`
	Seed            int64  `json:"seed"`
	Output          string `json:"output"`
	Format          string `json:"format"` // png, webp or tga; inferred from Output when empty
}

// TracerConfig holds the recursive tracer settings
type TracerConfig struct {
	MaxDepth           int        `json:"maxDepth"`
	Background         *core.Vec3 `json:"background"`
	GlobalIllumination bool       `json:"globalIllumination"`
	SampleCount        int        `json:"sampleCount"`
}

// SceneConfig selects a preset and lists additions to it
type SceneConfig struct {
	Preset      string              `json:"preset"`
	Camera      *scene.CameraConfig `json:"camera"`
	ClearLights bool                `json:"clearLights"` // Drop the preset's lights first
	Spheres     []SphereConfig      `json:"spheres"`
	Planes      []PlaneConfig       `json:"planes"`
	Lights      []lights.PointLight `json:"lights"`
	Exhibits    []scene.Exhibit     `json:"exhibits"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values and nil pointers leave the file's value alone.
type Flags struct {
	Width              int
	Height             int
	SamplesPerPixel    int
	Supersample        int
	Workers            int
	Seed               *int64
	Output             string
	Format             string
	Preset             string
	MaxDepth           int
	GlobalIllumination bool
}

// Resolve applies CLI overrides, then fills in any empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Render.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Render.Height = flags.Height
	}
	if flags.SamplesPerPixel > 0 {
		c.Render.SamplesPerPixel = flags.SamplesPerPixel
	}
	if flags.Supersample > 0 {
		c.Render.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Render.Workers = flags.Workers
	}
	if flags.Seed != nil {
		c.Render.Seed = *flags.Seed
	}
	if flags.Output != "" {
		c.Render.Output = flags.Output
	}
	if flags.Format != "" {
		c.Render.Format = flags.Format
	}
	if flags.Preset != "" {
		c.Scene.Preset = flags.Preset
	}
	if flags.MaxDepth > 0 {
		c.Tracer.MaxDepth = flags.MaxDepth
	}
	if flags.GlobalIllumination {
		c.Tracer.GlobalIllumination = true
	}

	// Defaults for render settings
	render := renderer.DefaultConfig()
	if c.Render.Width <= 0 {
		c.Render.Width = render.Width
	}
	if c.Render.Height <= 0 {
		c.Render.Height = render.Height
	}
	if c.Render.SamplesPerPixel <= 0 {
		c.Render.SamplesPerPixel = render.SamplesPerPixel
	}
	if c.Render.Supersample <= 0 {
		c.Render.Supersample = 1
	}
	if c.Render.TileSize <= 0 {
		c.Render.TileSize = render.TileSize
	}
	if c.Render.Workers <= 0 {
		c.Render.Workers = runtime.NumCPU()
	}
	if c.Render.Output == "" {
		c.Render.Output = "render.png"
	}
	if c.Render.Format == "" {
		if format, err := output.FormatFromPath(c.Render.Output); err == nil {
			c.Render.Format = string(format)
		}
	}

	// Defaults for the tracer
	tracer := integrator.DefaultConfig()
	if c.Tracer.MaxDepth <= 0 {
		c.Tracer.MaxDepth = tracer.MaxDepth
	}
	if c.Tracer.SampleCount <= 0 {
		c.Tracer.SampleCount = tracer.SampleCount
	}
	if c.Tracer.Background == nil {
		background := tracer.Background
		c.Tracer.Background = &background
	}

	if c.Scene.Preset == "" {
		c.Scene.Preset = "museum"
	}
}

// Validate reports the first setting outside its domain. Call it after Resolve.
func (c Config) Validate() error {
	if err := c.RendererConfig().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Render.Supersample < 1 {
		return fmt.Errorf("config: supersample must be >= 1, got %d", c.Render.Supersample)
	}
	if _, err := output.ParseFormat(c.Render.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.TracerConfig().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	for i, s := range c.Scene.Spheres {
		if err := s.validate(); err != nil {
			return fmt.Errorf("config: sphere %d: %w", i, err)
		}
	}
	for i, p := range c.Scene.Planes {
		if err := p.validate(); err != nil {
			return fmt.Errorf("config: plane %d: %w", i, err)
		}
	}
	for i, l := range c.Scene.Lights {
		if l.Intensity < 0 {
			return fmt.Errorf("config: light %d: intensity must be >= 0, got %g", i, l.Intensity)
		}
	}
	if cam := c.Scene.Camera; cam != nil && (cam.VFov <= 0 || cam.VFov >= 180) {
		return fmt.Errorf("config: camera vfov must be in (0,180), got %g", cam.VFov)
	}
	return nil
}

// RendererConfig returns the renderer settings at the supersampled resolution
func (c Config) RendererConfig() renderer.Config {
	factor := max(1, c.Render.Supersample)
	return renderer.Config{
		Width:           c.Render.Width * factor,
		Height:          c.Render.Height * factor,
		SamplesPerPixel: c.Render.SamplesPerPixel,
		TileSize:        c.Render.TileSize,
		NumWorkers:      c.Render.Workers,
		Seed:            c.Render.Seed,
	}
}

// TracerConfig returns the integrator settings
func (c Config) TracerConfig() integrator.Config {
	config := integrator.Config{
		MaxDepth:           c.Tracer.MaxDepth,
		GlobalIllumination: c.Tracer.GlobalIllumination,
		SampleCount:        c.Tracer.SampleCount,
	}
	if c.Tracer.Background != nil {
		config.Background = *c.Tracer.Background
	}
	return config
}

// AspectRatio returns width / height of the final image
func (c Config) AspectRatio() float64 {
	return float64(c.Render.Width) / float64(c.Render.Height)
}
