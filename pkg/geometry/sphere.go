package geometry

import (
	"math"

	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere
func (s Sphere) Hit(ray core.Ray) (HitRecord, bool) {
	root, ok := solveSphere(s.Center, s.Radius, ray)
	if !ok {
		return HitRecord{}, false
	}

	hit := HitRecord{
		T:           root,
		Point:       ray.At(root),
		ObjectIndex: NoObject,
	}

	// Calculate outward normal (from center to hit point)
	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.setMaterial(s.Material)

	return hit, true
}

// solveSphere returns the nearest root of the ray/sphere quadratic inside
// [ray.TMin, ray.TMax]. Non-positive radii never intersect.
func solveSphere(center core.Vec3, radius float64, ray core.Ray) (float64, bool) {
	if radius <= 0 {
		return 0, false
	}

	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 || a == 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !ray.InRange(root) {
		root = (-halfB + sqrtD) / a
		if !ray.InRange(root) {
			return 0, false
		}
	}

	return root, true
}
