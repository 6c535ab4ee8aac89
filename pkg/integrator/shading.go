package integrator

import (
	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/geometry"
	"github.com/df07/go-museum-raytracer/pkg/lights"
)

// Shade returns the local illumination at a hit: an ambient term plus the
// attenuated diffuse contribution of every light that is not occluded.
func (rt *RayTracer) Shade(hit geometry.HitRecord) core.Vec3 {
	color := hit.Color.Multiply(AmbientFactor)

	for _, light := range rt.store.Lights() {
		lightDir, distance := light.Toward(hit.Point)
		if rt.InShadow(hit, lightDir, distance) {
			continue
		}

		diffuse := max(hit.Normal.Dot(lightDir), 0.0)
		attenuation := lights.Attenuation(distance)
		contribution := hit.Color.MultiplyVec(light.Color).Multiply(light.Intensity * diffuse * attenuation)
		color = color.Add(contribution)
	}

	return color
}

// InShadow reports whether anything lies between the hit point and a light
// at distance along lightDir
func (rt *RayTracer) InShadow(hit geometry.HitRecord, lightDir core.Vec3, distance float64) bool {
	origin := hit.Point.Add(hit.Normal.Multiply(ShadowEpsilon))
	shadowRay := core.NewRayBounded(origin, lightDir, core.DefaultTMin, distance-ShadowEpsilon)
	_, occluded := rt.Hit(shadowRay)
	return occluded
}
