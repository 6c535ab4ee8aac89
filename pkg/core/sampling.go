package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; give each goroutine its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler over a fresh generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// maxRejectionAttempts bounds RandomInUnitSphere so that a degenerate
// sampler cannot stall the tracer. A uniform sampler exhausts it with
// probability below 1e-20.
const maxRejectionAttempts = 64

// RandomInUnitSphere rejection-samples a point strictly inside the unit sphere
// by drawing three uniforms in [-1, 1] until the point has length < 1.
// The origin itself is rejected so the result can always be normalized.
func RandomInUnitSphere(sampler Sampler) Vec3 {
	var p Vec3
	for range maxRejectionAttempts {
		u := sampler.Get3D()
		p = NewVec3(2*u.X-1, 2*u.Y-1, 2*u.Z-1)
		if lenSq := p.LengthSquared(); lenSq < 1 && lenSq > 0 {
			return p
		}
	}

	// Pull the last candidate inside the sphere
	if p.IsZero() {
		return NewVec3(0, 0.5, 0)
	}
	return p.Normalize().Multiply(0.5)
}

// RandomUnitVector returns a uniformly distributed unit vector
func RandomUnitVector(sampler Sampler) Vec3 {
	return RandomInUnitSphere(sampler).Normalize()
}

// SampleHemisphere returns a uniform direction in the hemisphere around normal.
// A unit vector on the wrong side of the surface is flipped.
func SampleHemisphere(normal Vec3, sampler Sampler) Vec3 {
	dir := RandomUnitVector(sampler)
	if dir.Dot(normal) < 0 {
		dir = dir.Negate()
	}
	return dir
}
