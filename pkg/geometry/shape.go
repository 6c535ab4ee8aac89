package geometry

import (
	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/material"
)

// NoObject marks a hit that did not come from the object catalog
const NoObject = -1

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T         float64   // Parameter t along the ray
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing the incoming ray
	FrontFace bool      // Whether the geometric normal already faced the ray

	Color           core.Vec3 // Albedo of the surface
	Reflectance     float64   // Weight of the reflected contribution
	Transparency    float64   // Weight of the refracted contribution
	RefractiveIndex float64   // Index of refraction of the surface

	ObjectIndex int // Catalog index of the hit object or NoObject
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// setMaterial copies the shading inputs of m into the record
func (h *HitRecord) setMaterial(m material.Material) {
	h.Color = m.Albedo
	h.Reflectance = m.Metallic
	h.Transparency = m.Transparency
	h.RefractiveIndex = m.RefractiveIndex
}

// Shape is anything a ray can be intersected with. Hit reports the
// intersection within [ray.TMin, ray.TMax], if any.
type Shape interface {
	Hit(ray core.Ray) (HitRecord, bool)
}
