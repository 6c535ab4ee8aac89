package scene

import (
	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/material"
)

// cornellBoxSize is the edge length of the box, in museum units
const cornellBoxSize = 5.55

// NewCornellScene creates a Cornell box: five walls as planes facing inward,
// a point light under the ceiling, a metal and a glass sphere. The front is
// open toward the camera.
func NewCornellScene() *Scene {
	store := NewStore()

	white := material.Default()
	white.Albedo = core.Splat(0.73)
	red := material.Default()
	red.Albedo = core.NewVec3(0.65, 0.05, 0.05)
	green := material.Default()
	green.Albedo = core.NewVec3(0.12, 0.45, 0.15)

	size := cornellBoxSize
	store.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), white)     // Floor
	store.AddPlane(core.NewVec3(0, size, 0), core.NewVec3(0, -1, 0), white) // Ceiling
	store.AddPlane(core.NewVec3(0, 0, size), core.NewVec3(0, 0, -1), white) // Back wall
	store.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), red)       // Left wall
	store.AddPlane(core.NewVec3(size, 0, 0), core.NewVec3(-1, 0, 0), green) // Right wall

	store.AddLight(core.NewVec3(size/2, size-0.2, size/2), core.Splat(1), 2.5)

	metal := material.Metal()
	metal.Albedo = core.NewVec3(0.8, 0.8, 0.9)
	metal.Metallic = 1.0
	metal.Roughness = 0
	store.AddSphere(core.NewVec3(1.85, 0.825, 1.69), 0.825, metal)

	glass := material.Glass()
	glass.Albedo = core.Splat(1)
	store.AddSphere(core.NewVec3(3.70, 0.90, 3.51), 0.90, glass)

	return &Scene{
		Name:  "cornell",
		Store: store,
		Camera: CameraConfig{
			Eye:    core.NewVec3(size/2, size/2, -8),
			LookAt: core.NewVec3(size/2, size/2, 0),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   40,
		},
	}
}
