package scene

import (
	"math"

	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, cubed
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// sphereGridSize is the number of spheres along each side of the grid
const sphereGridSize = 8

// NewSphereGridScene creates a study hall: a grid of colored metal spheres
// on a grey floor, hue varying along X and chroma along Z
func NewSphereGridScene() *Scene {
	store := NewStore()

	floor := material.Floor()
	floor.Albedo = core.Splat(0.5)
	store.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor)

	store.AddLight(core.NewVec3(20, 25, 20), core.NewVec3(1.0, 0.96, 0.9), 3.0)
	store.AddLight(core.NewVec3(4.5, 8, 12), core.Splat(1), 1.0)

	// Fit the grid in a 9x9 area centered on (4.5, 4.5)
	targetArea := 9.0
	spacing := targetArea / float64(sphereGridSize-1)
	radius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < sphereGridSize; i++ {
		for j := 0; j < sphereGridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			hue := (float64(i) / float64(sphereGridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(sphereGridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			// Rougher spheres reflect less
			mat := material.Metal()
			mat.Albedo = oklchToRGB(lightness, chroma, hue)
			mat.Roughness = 0.05 + 0.1*float64((i+j)%3)/2.0
			mat.Metallic = 0.9 - mat.Roughness

			store.AddSphere(core.NewVec3(x, radius, z), radius, mat)
		}
	}

	return &Scene{
		Name:  "spheregrid",
		Store: store,
		Camera: CameraConfig{
			Eye:    core.NewVec3(4.5, 6, 18),
			LookAt: core.NewVec3(4.5, 0.8, 4.5),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   40,
		},
	}
}
