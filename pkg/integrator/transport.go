package integrator

import (
	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/geometry"
	"github.com/df07/go-museum-raytracer/pkg/material"
)

// RayColor traces a primary ray
func (rt *RayTracer) RayColor(ray core.Ray, sampler core.Sampler) core.Vec3 {
	return rt.TraceRay(ray, 0, sampler)
}

// TraceRay returns the color along ray at the given recursion depth.
//
// Stages are applied in a fixed order, each against the color accumulated
// so far: local shading, then reflection blended by reflectance, then
// refraction blended by transparency, then the GI estimate added on top.
// At depth >= MaxDepth the background is returned without intersecting.
func (rt *RayTracer) TraceRay(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	if depth >= rt.config.MaxDepth {
		return rt.config.Background
	}

	hit, isHit := rt.Hit(ray)
	if !isHit {
		return rt.config.Background
	}

	color := rt.Shade(hit)

	if hit.Reflectance > 0 {
		reflection := rt.reflection(ray, hit, depth, sampler)
		color = color.Lerp(reflection, hit.Reflectance)
	}

	if hit.Transparency > 0 {
		refraction := rt.refraction(ray, hit, depth, sampler)
		color = color.Lerp(refraction, hit.Transparency)
	}

	if rt.config.GlobalIllumination {
		gi := rt.globalIllumination(hit, depth, sampler)
		color = color.Add(gi.Multiply(GIWeight))
	}

	return color
}

// reflection follows the mirror direction, scattered more the less reflective the surface
func (rt *RayTracer) reflection(ray core.Ray, hit geometry.HitRecord, depth int, sampler core.Sampler) core.Vec3 {
	reflected := material.Reflect(ray.Direction, hit.Normal)

	if hit.Reflectance < 1 {
		fuzz := core.RandomInUnitSphere(sampler).Multiply(1 - hit.Reflectance)
		reflected = reflected.Add(fuzz).Normalize()
	}

	return rt.TraceRay(core.NewRay(hit.Point, reflected), depth+1, sampler)
}

// refraction follows either the transmitted or the Fresnel-chosen reflected direction
func (rt *RayTracer) refraction(ray core.Ray, hit geometry.HitRecord, depth int, sampler core.Sampler) core.Vec3 {
	ior := hit.RefractiveIndex
	if ior <= 0 {
		ior = 1
	}

	direction, _ := material.DielectricScatter(ray.Direction, hit.Normal, hit.FrontFace, ior, sampler)
	return rt.TraceRay(core.NewRay(hit.Point, direction), depth+1, sampler)
}

// globalIllumination averages cosine-weighted radiance from uniform
// hemisphere samples. It stops two levels above MaxDepth and takes fewer
// samples the deeper it is.
func (rt *RayTracer) globalIllumination(hit geometry.HitRecord, depth int, sampler core.Sampler) core.Vec3 {
	if depth >= rt.config.MaxDepth-2 {
		return core.Vec3{}
	}

	samples := max(1, rt.config.SampleCount/(depth+1))

	var sum core.Vec3
	for range samples {
		dir := core.SampleHemisphere(hit.Normal, sampler)
		incoming := rt.TraceRay(core.NewRay(hit.Point, dir), depth+1, sampler)
		sum = sum.Add(incoming.Multiply(hit.Normal.Dot(dir)))
	}

	return sum.Multiply(1.0 / float64(samples))
}
