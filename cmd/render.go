package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"

	"github.com/df07/go-museum-raytracer/pkg/output"
	"github.com/df07/go-museum-raytracer/pkg/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	sc, tracer, camera, err := setupTracer(cfg)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := renderer.NewRenderer(tracer, camera, cfg.RendererConfig())
	logger.Noticef("rendering scene %q to %s", sc.Name, cfg.Render.Output)

	img, stats, err := r.Render(runCtx)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	var frame image.Image = img
	if cfg.Render.Supersample > 1 {
		logger.Infof("downsampling %dx%d to %dx%d", stats.Width, stats.Height, cfg.Render.Width, cfg.Render.Height)
		frame = output.Downsample(img, cfg.Render.Width, cfg.Render.Height)
	}

	if err := output.Save(cfg.Render.Output, frame, output.Format(cfg.Render.Format)); err != nil {
		return err
	}

	displayRenderStats(stats, cfg.Render.Output)
	return nil
}

func displayRenderStats(stats renderer.RenderStats, path string) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Tiles", "Workers", "Samples", "Samples/px", "Samples/s", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.1f", stats.AverageSamples),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		stats.Duration.String(),
	})
	table.SetFooter([]string{"", "", "", "", "", "OUTPUT", path})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
