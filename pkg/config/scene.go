package config

import (
	"errors"
	"fmt"

	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/material"
	"github.com/df07/go-museum-raytracer/pkg/scene"
)

// MaterialConfig names a material preset with optional overrides
type MaterialConfig struct {
	Preset          string     `json:"preset"`
	Albedo          *core.Vec3 `json:"albedo"`
	Metallic        *float64   `json:"metallic"`
	Transparency    *float64   `json:"transparency"`
	RefractiveIndex *float64   `json:"refractiveIndex"`
}

// Material resolves the preset and applies the overrides
func (m MaterialConfig) Material() (material.Material, error) {
	mat, err := material.ByName(m.Preset)
	if err != nil {
		return material.Material{}, err
	}
	if m.Albedo != nil {
		mat.Albedo = *m.Albedo
	}
	if m.Metallic != nil {
		mat.Metallic = *m.Metallic
	}
	if m.Transparency != nil {
		mat.Transparency = *m.Transparency
	}
	if m.RefractiveIndex != nil {
		mat.RefractiveIndex = *m.RefractiveIndex
	}
	return mat, mat.Validate()
}

// SphereConfig is a sphere added on top of the preset
type SphereConfig struct {
	Center   core.Vec3      `json:"center"`
	Radius   float64        `json:"radius"`
	Material MaterialConfig `json:"material"`
}

func (s SphereConfig) validate() error {
	if s.Radius <= 0 {
		return fmt.Errorf("radius must be > 0, got %g", s.Radius)
	}
	_, err := s.Material.Material()
	return err
}

// PlaneConfig is a plane added on top of the preset
type PlaneConfig struct {
	Point    core.Vec3      `json:"point"`
	Normal   core.Vec3      `json:"normal"`
	Material MaterialConfig `json:"material"`
}

func (p PlaneConfig) validate() error {
	if p.Normal.IsZero() {
		return errors.New("normal must be non-zero")
	}
	_, err := p.Material.Material()
	return err
}

// BuildScene creates the preset scene and applies the configured additions
func (c Config) BuildScene() (*scene.Scene, error) {
	sc, err := scene.Preset(c.Scene.Preset)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if c.Scene.Camera != nil {
		sc.Camera = *c.Scene.Camera
	}
	if c.Scene.ClearLights {
		sc.Store.ClearLights()
	}

	for i, s := range c.Scene.Spheres {
		mat, err := s.Material.Material()
		if err != nil {
			return nil, fmt.Errorf("config: sphere %d: %w", i, err)
		}
		sc.Store.AddSphere(s.Center, s.Radius, mat)
	}
	for i, p := range c.Scene.Planes {
		mat, err := p.Material.Material()
		if err != nil {
			return nil, fmt.Errorf("config: plane %d: %w", i, err)
		}
		sc.Store.AddPlane(p.Point, p.Normal, mat)
	}
	for _, l := range c.Scene.Lights {
		sc.Store.AddLight(l.Position, l.Color, l.Intensity)
	}

	if len(c.Scene.Exhibits) > 0 {
		if sc.Catalog == nil {
			sc.Catalog = scene.NewMuseumCatalog()
			sc.Store.SetCatalog(sc.Catalog)
		}
		for _, e := range c.Scene.Exhibits {
			sc.Catalog.Add(e)
		}
	}

	return sc, nil
}
