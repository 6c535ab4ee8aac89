package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-museum-raytracer/pkg/config"
	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/geometry"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

type probeResult struct {
	ray   core.Ray
	hit   geometry.HitRecord
	isHit bool
	name  string // Catalog display name of the hit object, if any
	color core.Vec3
}

// Trace the primary ray through a single pixel and print what it hits.
func ProbePixel(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	result, err := probePixel(cfg, ctx.Int("x"), ctx.Int("y"))
	if err != nil {
		return err
	}

	logger.Noticef("pixel (%d, %d)\n%s", ctx.Int("x"), ctx.Int("y"), formatProbe(result))
	return nil
}

// probePixel traces the ray through the center of pixel (x, y) of the final image.
func probePixel(cfg config.Config, x, y int) (probeResult, error) {
	if x < 0 || x >= cfg.Render.Width || y < 0 || y >= cfg.Render.Height {
		return probeResult{}, fmt.Errorf("probe: pixel (%d, %d) outside %dx%d image", x, y, cfg.Render.Width, cfg.Render.Height)
	}

	sc, tracer, camera, err := setupTracer(cfg)
	if err != nil {
		return probeResult{}, err
	}

	ray := camera.PixelRay(x, y, cfg.Render.Width, cfg.Render.Height, 0.5, 0.5)
	result := probeResult{ray: ray}
	result.hit, result.isHit = tracer.Hit(ray)

	if result.isHit && result.hit.ObjectIndex != geometry.NoObject && sc.Catalog != nil {
		result.name = sc.Catalog.DisplayName(result.hit.ObjectIndex)
	}

	result.color = tracer.RayColor(ray, core.NewSeededSampler(cfg.Render.Seed))
	return result, nil
}

func formatProbe(result probeResult) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Field", "Value"})

	table.Append([]string{"Origin", formatVec(result.ray.Origin)})
	table.Append([]string{"Direction", formatVec(result.ray.Direction)})
	if result.isHit {
		object := "-"
		if result.hit.ObjectIndex != geometry.NoObject {
			object = fmt.Sprintf("%d %s", result.hit.ObjectIndex, result.name)
		}
		table.Append([]string{"T", fmt.Sprintf("%.4f", result.hit.T)})
		table.Append([]string{"Point", formatVec(result.hit.Point)})
		table.Append([]string{"Normal", formatVec(result.hit.Normal)})
		table.Append([]string{"Front face", fmt.Sprintf("%t", result.hit.FrontFace)})
		table.Append([]string{"Object", object})
	} else {
		table.Append([]string{"Hit", "none"})
	}
	table.SetFooter([]string{"COLOR", formatVec(result.color)})

	table.Render()
	return buf.String()
}
