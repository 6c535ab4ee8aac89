package lights

import (
	"github.com/df07/go-museum-raytracer/pkg/core"
)

// Distance falloff coefficients: 1 / (1 + Linear*d + Quadratic*d²)
const (
	AttenuationLinear    = 0.1
	AttenuationQuadratic = 0.01
)

// PointLight is an omnidirectional light at a position
type PointLight struct {
	Position  core.Vec3 `json:"position"`
	Color     core.Vec3 `json:"color"`
	Intensity float64   `json:"intensity"` // Unitless multiplier
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, intensity float64) PointLight {
	return PointLight{Position: position, Color: color, Intensity: intensity}
}

// Radiance returns the light's color scaled by its intensity
func (l PointLight) Radiance() core.Vec3 {
	return l.Color.Multiply(l.Intensity)
}

// Toward returns the unit direction and distance from point to the light
func (l PointLight) Toward(point core.Vec3) (core.Vec3, float64) {
	offset := l.Position.Subtract(point)
	return offset.Normalize(), offset.Length()
}

// Attenuation returns the distance falloff factor for a light at distance d
func Attenuation(d float64) float64 {
	return 1.0 / (1.0 + AttenuationLinear*d + AttenuationQuadratic*d*d)
}
