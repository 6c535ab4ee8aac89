package material

import (
	"fmt"
	"strings"

	"github.com/df07/go-museum-raytracer/pkg/core"
)

// Material describes how a ray-traced surface responds to light.
// Materials are plain values: primitives own a copy and nothing mutates it
// once the scene is built.
type Material struct {
	Albedo          core.Vec3 `json:"albedo"`          // Base reflected color
	Metallic        float64   `json:"metallic"`        // Reflectance weight in [0,1]
	Roughness       float64   `json:"roughness"`       // In [0,1]
	Transparency    float64   `json:"transparency"`    // Refraction weight in [0,1]
	RefractiveIndex float64   `json:"refractiveIndex"` // > 0, 1.0 means no bending
	Emission        core.Vec3 `json:"emission"`        // Not used by the lighting composer yet
}

// Default returns a matte light-grey material
func Default() Material {
	return Material{
		Albedo:          core.Splat(0.8),
		Metallic:        0.0,
		Roughness:       0.5,
		Transparency:    0.0,
		RefractiveIndex: 1.0,
	}
}

// Glass returns the slightly blue transparent material of the museum's glass sphere
func Glass() Material {
	m := Default()
	m.Albedo = core.NewVec3(0.9, 0.9, 1.0)
	m.Transparency = 0.8
	m.RefractiveIndex = 1.5
	return m
}

// Metal returns the polished reflective material of the museum's metal sphere
func Metal() Material {
	m := Default()
	m.Albedo = core.NewVec3(0.7, 0.7, 0.8)
	m.Metallic = 0.9
	m.Roughness = 0.1
	return m
}

// Floor returns the rough grey material of the gallery floor
func Floor() Material {
	m := Default()
	m.Albedo = core.Splat(0.7)
	m.Roughness = 0.8
	return m
}

var presets = map[string]func() Material{
	"default": Default,
	"glass":   Glass,
	"metal":   Metal,
	"floor":   Floor,
}

// ByName returns the named preset. An empty name is the default material.
func ByName(name string) (Material, error) {
	if name == "" {
		return Default(), nil
	}
	preset, ok := presets[strings.ToLower(name)]
	if !ok {
		return Material{}, fmt.Errorf("material: unknown preset %q", name)
	}
	return preset(), nil
}

// Validate reports the first scalar outside its documented range
func (m Material) Validate() error {
	unit := []struct {
		name  string
		value float64
	}{
		{"metallic", m.Metallic},
		{"roughness", m.Roughness},
		{"transparency", m.Transparency},
	}
	for _, field := range unit {
		if field.value < 0 || field.value > 1 {
			return fmt.Errorf("material: %s must be in [0,1], got %g", field.name, field.value)
		}
	}
	if m.RefractiveIndex <= 0 {
		return fmt.Errorf("material: refractiveIndex must be > 0, got %g", m.RefractiveIndex)
	}
	return nil
}
