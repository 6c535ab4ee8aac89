package main

import (
	"os"

	"github.com/df07/go-museum-raytracer/cmd"
	"github.com/df07/go-museum-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("museum")

// sceneFlags select and override the scene shared by render and probe
var sceneFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "width",
		Usage: "image width (default 400)",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "image height (default 225)",
	},
	cli.StringFlag{
		Name:  "preset, p",
		Usage: "built-in scene: museum, empty, spheregrid or cornell",
	},
	cli.IntFlag{
		Name:  "max-depth",
		Usage: "maximum recursion depth (default 10)",
	},
	cli.BoolFlag{
		Name:  "gi",
		Usage: "enable hemisphere-sampled global illumination",
	},
	cli.Int64Flag{
		Name:  "seed",
		Usage: "base random seed",
	},
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "museum-raytracer"
	app.Usage = "render the virtual museum with a recursive ray tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a still frame",
			Description: `
Render the configured scene to an image file. Settings come from the optional
JSON config file and are overridden by flags. The output format follows the
file extension: png, webp or tga.`,
			ArgsUsage: "[config.json]",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (default 4)",
				},
				cli.IntFlag{
					Name:  "supersample",
					Usage: "render at this multiple of the size and downsample",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "parallel workers (default CPU count)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame (default render.png)",
				},
				cli.StringFlag{
					Name:  "format",
					Usage: "force the output format: png, webp or tga",
				},
			}, sceneFlags...),
			Action: cmd.RenderFrame,
		},
		{
			Name:      "scene",
			Usage:     "print the contents of the configured scene",
			ArgsUsage: "[config.json]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "preset, p",
					Usage: "built-in scene: museum, empty, spheregrid or cornell",
				},
			},
			Action: cmd.DescribeScene,
		},
		{
			Name:      "probe",
			Usage:     "trace the primary ray through one pixel and print the hit",
			ArgsUsage: "[config.json]",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "x",
					Usage: "pixel column",
				},
				cli.IntFlag{
					Name:  "y",
					Usage: "pixel row, 0 at the top",
				},
			}, sceneFlags...),
			Action: cmd.ProbePixel,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
