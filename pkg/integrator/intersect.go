package integrator

import (
	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/geometry"
)

// Hit returns the closest intersection of ray with the spheres, planes and
// catalog proxies of the store. On equal distances the first candidate
// found is kept.
func (rt *RayTracer) Hit(ray core.Ray) (geometry.HitRecord, bool) {
	var closest geometry.HitRecord
	found := false

	// Shrinking the search bound lets primitives reject farther hits early
	search := ray
	consider := func(hit geometry.HitRecord, isHit bool) {
		if isHit && (!found || hit.T < closest.T) {
			closest = hit
			found = true
			search.TMax = hit.T
		}
	}

	for _, sphere := range rt.store.Spheres() {
		consider(sphere.Hit(search))
	}

	for _, plane := range rt.store.Planes() {
		consider(plane.Hit(search))
	}

	if catalog := rt.store.Catalog(); catalog != nil {
		count := catalog.Count()
		for i := 0; i < count; i++ {
			proxy := geometry.NewBoundingProxy(catalog.Position(i), catalog.DiffuseColor(i), i)
			consider(proxy.Hit(search))
		}
	}

	return closest, found
}
