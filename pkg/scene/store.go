package scene

import (
	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/geometry"
	"github.com/df07/go-museum-raytracer/pkg/lights"
	"github.com/df07/go-museum-raytracer/pkg/material"
)

// Store holds everything a ray can interact with. It is populated during
// setup and must not be modified while rays are being traced; concurrent
// reads are safe.
type Store struct {
	spheres []geometry.Sphere
	planes  []geometry.Plane
	lights  []lights.PointLight
	catalog ObjectCatalog
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// SetCatalog sets or replaces the external object catalog. nil detaches it.
func (s *Store) SetCatalog(catalog ObjectCatalog) {
	s.catalog = catalog
}

// Catalog returns the attached object catalog, possibly nil
func (s *Store) Catalog() ObjectCatalog {
	return s.catalog
}

// AddSphere adds a sphere and returns its index
func (s *Store) AddSphere(center core.Vec3, radius float64, mat material.Material) int {
	s.spheres = append(s.spheres, geometry.NewSphere(center, radius, mat))
	return len(s.spheres) - 1
}

// AddPlane adds a plane and returns its index. The normal is normalized.
func (s *Store) AddPlane(point, normal core.Vec3, mat material.Material) int {
	s.planes = append(s.planes, geometry.NewPlane(point, normal, mat))
	return len(s.planes) - 1
}

// AddLight adds a point light
func (s *Store) AddLight(position, color core.Vec3, intensity float64) {
	s.lights = append(s.lights, lights.NewPointLight(position, color, intensity))
}

// ClearLights removes every light
func (s *Store) ClearLights() {
	s.lights = nil
}

// RemoveSphere deletes the sphere at index and reports whether it existed
func (s *Store) RemoveSphere(index int) bool {
	if index < 0 || index >= len(s.spheres) {
		return false
	}
	s.spheres = append(s.spheres[:index], s.spheres[index+1:]...)
	return true
}

// RemovePlane deletes the plane at index and reports whether it existed
func (s *Store) RemovePlane(index int) bool {
	if index < 0 || index >= len(s.planes) {
		return false
	}
	s.planes = append(s.planes[:index], s.planes[index+1:]...)
	return true
}

// Spheres returns the spheres. Callers must not modify the slice.
func (s *Store) Spheres() []geometry.Sphere {
	return s.spheres
}

// Planes returns the planes. Callers must not modify the slice.
func (s *Store) Planes() []geometry.Plane {
	return s.planes
}

// Lights returns the lights. Callers must not modify the slice.
func (s *Store) Lights() []lights.PointLight {
	return s.lights
}
