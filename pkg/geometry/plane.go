package geometry

import (
	"math"

	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/material"
)

// parallelEpsilon is the smallest |normal·direction| treated as crossing the plane
const parallelEpsilon = 1e-6

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Unit normal
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) Plane {
	return Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// Hit tests if a ray intersects with the plane
func (p Plane) Hit(ray core.Ray) (HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Nearly parallel rays never cross; this also covers a zero normal
	if math.Abs(denominator) < parallelEpsilon {
		return HitRecord{}, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !ray.InRange(t) {
		return HitRecord{}, false
	}

	hit := HitRecord{
		T:           t,
		Point:       ray.At(t),
		ObjectIndex: NoObject,
	}
	hit.SetFaceNormal(ray, p.Normal)
	hit.setMaterial(p.Material)

	return hit, true
}
