package integrator

import (
	"fmt"

	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/scene"
)

// Shading constants of the local lighting model and the GI estimator
const (
	AmbientFactor = 0.1   // Fraction of albedo returned with no direct light
	ShadowEpsilon = 0.001 // Offset along the normal for shadow ray origins
	GIWeight      = 0.3   // Scale applied to the averaged indirect estimate
)

// Config controls recursion and the background
type Config struct {
	MaxDepth           int       `json:"maxDepth"`           // Hard recursion cutoff, >= 1
	Background         core.Vec3 `json:"background"`         // Returned for misses and at the cutoff
	GlobalIllumination bool      `json:"globalIllumination"` // Enables hemisphere sampling
	SampleCount        int       `json:"sampleCount"`        // GI samples at depth 0, >= 1
}

// DefaultConfig returns depth 10, four GI samples, GI off and a dusk-blue background
func DefaultConfig() Config {
	return Config{
		MaxDepth:           10,
		Background:         core.NewVec3(0.1, 0.1, 0.2),
		GlobalIllumination: false,
		SampleCount:        4,
	}
}

// Validate reports settings outside their documented domain
func (c Config) Validate() error {
	if c.MaxDepth < 1 {
		return fmt.Errorf("integrator: maxDepth must be >= 1, got %d", c.MaxDepth)
	}
	if c.SampleCount < 1 {
		return fmt.Errorf("integrator: sampleCount must be >= 1, got %d", c.SampleCount)
	}
	return nil
}

// RayTracer computes the color seen along a ray through a Store using
// diffuse local lighting with hard shadows, stochastic reflection and
// refraction, and an optional hemisphere-sampled indirect term.
//
// A RayTracer only reads its store and config, so one instance may serve
// many goroutines as long as each passes its own Sampler and nobody
// reconfigures it mid-render.
type RayTracer struct {
	store  *scene.Store
	config Config
}

// NewRayTracer creates a tracer over store
func NewRayTracer(store *scene.Store, config Config) *RayTracer {
	return &RayTracer{store: store, config: config}
}

// Config returns the current configuration
func (rt *RayTracer) Config() Config {
	return rt.config
}

// SetConfig replaces the configuration
func (rt *RayTracer) SetConfig(config Config) {
	rt.config = config
}

// SetMaxDepth sets the recursion cutoff
func (rt *RayTracer) SetMaxDepth(depth int) {
	rt.config.MaxDepth = depth
}

// SetBackgroundColor sets the color returned for misses
func (rt *RayTracer) SetBackgroundColor(color core.Vec3) {
	rt.config.Background = color
}

// EnableGlobalIllumination toggles the indirect term
func (rt *RayTracer) EnableGlobalIllumination(enable bool) {
	rt.config.GlobalIllumination = enable
}

// SetSampleCount sets the number of GI samples taken at depth 0
func (rt *RayTracer) SetSampleCount(samples int) {
	rt.config.SampleCount = samples
}

// Store returns the scene store being traced
func (rt *RayTracer) Store() *scene.Store {
	return rt.store
}
