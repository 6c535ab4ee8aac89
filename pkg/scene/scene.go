package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/material"
)

// CameraConfig describes a look-at pinhole camera
type CameraConfig struct {
	Eye    core.Vec3 `json:"eye"`
	LookAt core.Vec3 `json:"lookAt"`
	Up     core.Vec3 `json:"up"`
	VFov   float64   `json:"vfov"` // Vertical field of view in degrees
}

// DefaultCameraConfig returns the visitor's eye view into the gallery
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Eye:    core.NewVec3(0, 3, 5),
		LookAt: core.NewVec3(0, 1, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   45,
	}
}

// Scene bundles a populated store with a viewpoint
type Scene struct {
	Name    string
	Store   *Store
	Catalog *MuseumCatalog // Same catalog as attached to Store, or nil
	Camera  CameraConfig
}

// NewEmptyScene creates a scene with nothing in it
func NewEmptyScene() *Scene {
	return &Scene{
		Name:   "empty",
		Store:  NewStore(),
		Camera: DefaultCameraConfig(),
	}
}

// NewMuseumScene creates the gallery: a floor, two lights, the glass and
// metal demonstration spheres and the default exhibits
func NewMuseumScene() *Scene {
	store := NewStore()

	store.AddPlane(core.NewVec3(0, -0.1, 0), core.NewVec3(0, 1, 0), material.Floor())

	store.AddLight(core.NewVec3(0, 10, 0), core.NewVec3(1, 1, 1), 1.0)
	store.AddLight(core.NewVec3(5, 5, 5), core.NewVec3(0.8, 0.9, 1.0), 0.7)

	store.AddSphere(core.NewVec3(3, 2, 3), 0.8, material.Glass())
	store.AddSphere(core.NewVec3(-3, 2, -3), 0.8, material.Metal())

	catalog := NewMuseumCatalog(DefaultExhibits()...)
	store.SetCatalog(catalog)

	return &Scene{
		Name:    "museum",
		Store:   store,
		Catalog: catalog,
		Camera:  DefaultCameraConfig(),
	}
}

var presets = map[string]func() *Scene{
	"museum":     NewMuseumScene,
	"empty":      NewEmptyScene,
	"spheregrid": NewSphereGridScene,
	"cornell":    NewCornellScene,
}

// Preset builds the named built-in scene
func Preset(name string) (*Scene, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown preset %q (available: %v)", name, PresetNames())
	}
	return build(), nil
}

// PresetNames lists the built-in scenes in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
