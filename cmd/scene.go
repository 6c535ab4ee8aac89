package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Print a summary of the configured scene.
func DescribeScene(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	sc, err := cfg.BuildScene()
	if err != nil {
		return err
	}

	logger.Noticef("scene %q\n%s", sc.Name, sceneTables(sc))
	return nil
}

func sceneTables(sc *scene.Scene) string {
	var buf bytes.Buffer

	newTable := func(header ...string) *tablewriter.Table {
		table := tablewriter.NewWriter(&buf)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetHeader(header)
		return table
	}

	table := newTable("Sphere", "Center", "Radius", "Albedo", "Reflectance", "Transparency", "IOR")
	for i, s := range sc.Store.Spheres() {
		table.Append([]string{
			fmt.Sprintf("%d", i),
			formatVec(s.Center),
			fmt.Sprintf("%.2f", s.Radius),
			formatVec(s.Material.Albedo),
			fmt.Sprintf("%.2f", s.Material.Metallic),
			fmt.Sprintf("%.2f", s.Material.Transparency),
			fmt.Sprintf("%.2f", s.Material.RefractiveIndex),
		})
	}
	table.Render()

	table = newTable("Plane", "Point", "Normal", "Albedo", "Reflectance")
	for i, p := range sc.Store.Planes() {
		table.Append([]string{
			fmt.Sprintf("%d", i),
			formatVec(p.Point),
			formatVec(p.Normal),
			formatVec(p.Material.Albedo),
			fmt.Sprintf("%.2f", p.Material.Metallic),
		})
	}
	table.Render()

	table = newTable("Light", "Position", "Color", "Intensity")
	for i, l := range sc.Store.Lights() {
		table.Append([]string{
			fmt.Sprintf("%d", i),
			formatVec(l.Position),
			formatVec(l.Color),
			fmt.Sprintf("%.2f", l.Intensity),
		})
	}
	table.Render()

	if sc.Catalog != nil {
		table = newTable("Object", "Name", "Position", "Diffuse")
		for i := 0; i < sc.Catalog.Count(); i++ {
			table.Append([]string{
				fmt.Sprintf("%d", i),
				sc.Catalog.DisplayName(i),
				formatVec(sc.Catalog.Position(i)),
				formatVec(sc.Catalog.DiffuseColor(i)),
			})
		}
		table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%d", sc.Catalog.Count())})
		table.Render()
	}

	return buf.String()
}

func formatVec(v core.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}
