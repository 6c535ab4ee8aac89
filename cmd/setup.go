package cmd

import (
	"errors"

	"github.com/df07/go-museum-raytracer/pkg/config"
	"github.com/df07/go-museum-raytracer/pkg/integrator"
	"github.com/df07/go-museum-raytracer/pkg/renderer"
	"github.com/df07/go-museum-raytracer/pkg/scene"
	"github.com/urfave/cli"
)

// loadConfig reads the optional config file argument and applies flag overrides.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	var cfg config.Config

	if ctx.NArg() > 1 {
		return cfg, errors.New("expected at most one config file argument")
	}
	if path := ctx.Args().First(); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
		logger.Infof("loaded config from %s", path)
	}

	flags := config.Flags{
		Width:              ctx.Int("width"),
		Height:             ctx.Int("height"),
		SamplesPerPixel:    ctx.Int("spp"),
		Supersample:        ctx.Int("supersample"),
		Workers:            ctx.Int("workers"),
		Output:             ctx.String("out"),
		Format:             ctx.String("format"),
		Preset:             ctx.String("preset"),
		MaxDepth:           ctx.Int("max-depth"),
		GlobalIllumination: ctx.Bool("gi"),
	}
	if ctx.IsSet("seed") {
		seed := ctx.Int64("seed")
		flags.Seed = &seed
	}

	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setupTracer builds the configured scene with a tracer and a camera for it.
func setupTracer(cfg config.Config) (*scene.Scene, *integrator.RayTracer, *renderer.Camera, error) {
	sc, err := cfg.BuildScene()
	if err != nil {
		return nil, nil, nil, err
	}

	tracer := integrator.NewRayTracer(sc.Store, cfg.TracerConfig())
	camera := renderer.NewCamera(sc.Camera, cfg.AspectRatio())
	return sc, tracer, camera, nil
}
