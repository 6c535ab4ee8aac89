package geometry

import (
	"github.com/df07/go-museum-raytracer/pkg/core"
)

// Catalog objects are traced as spheres of a fixed size with a fixed finish,
// whatever their real mesh looks like.
const (
	ProxyRadius      = 1.5
	ProxyReflectance = 0.3
)

// BoundingProxy stands in for a catalog object during intersection tests
type BoundingProxy struct {
	Center core.Vec3
	Color  core.Vec3
	Index  int
}

// NewBoundingProxy creates the proxy for catalog entry index
func NewBoundingProxy(center, diffuse core.Vec3, index int) BoundingProxy {
	return BoundingProxy{Center: center, Color: diffuse, Index: index}
}

// Hit tests the ray against the proxy sphere
func (b BoundingProxy) Hit(ray core.Ray) (HitRecord, bool) {
	root, ok := solveSphere(b.Center, ProxyRadius, ray)
	if !ok {
		return HitRecord{}, false
	}

	hit := HitRecord{
		T:               root,
		Point:           ray.At(root),
		Color:           b.Color,
		Reflectance:     ProxyReflectance,
		Transparency:    0,
		RefractiveIndex: 1.0,
		ObjectIndex:     b.Index,
	}
	hit.SetFaceNormal(ray, hit.Point.Subtract(b.Center).Normalize())

	return hit, true
}
