package integrator

import (
	"math"
	"sync"
	"testing"

	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/geometry"
	"github.com/df07/go-museum-raytracer/pkg/material"
	"github.com/df07/go-museum-raytracer/pkg/scene"
)

// countingCatalog is an ObjectCatalog that records how often the tracer
// enumerated it. Every call to Hit enumerates the catalog exactly once.
type countingCatalog struct {
	mu        sync.Mutex
	positions []core.Vec3
	colors    []core.Vec3
	scans     int
}

func (c *countingCatalog) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scans++
	return len(c.positions)
}

func (c *countingCatalog) Position(i int) core.Vec3     { return c.positions[i] }
func (c *countingCatalog) DiffuseColor(i int) core.Vec3 { return c.colors[i] }

func (c *countingCatalog) Scans() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scans
}

// countingSampler returns uniform values from a seeded source and counts draws
type countingSampler struct {
	inner *core.RandomSampler
	draws int
}

func newCountingSampler() *countingSampler {
	return &countingSampler{inner: core.NewSeededSampler(42)}
}

func (c *countingSampler) Get1D() float64 {
	c.draws++
	return c.inner.Get1D()
}

func (c *countingSampler) Get3D() core.Vec3 {
	c.draws += 3
	return c.inner.Get3D()
}

func opaque(albedo core.Vec3) material.Material {
	m := material.Default()
	m.Albedo = albedo
	return m
}

func noGIConfig() Config {
	config := DefaultConfig()
	config.GlobalIllumination = false
	return config
}

func TestTraceRay_MissReturnsBackground(t *testing.T) {
	background := core.NewVec3(0.1, 0.2, 0.3)

	tests := []struct {
		name  string
		setup func(*scene.Store)
	}{
		{"empty scene", func(*scene.Store) {}},
		{"sphere behind ray", func(s *scene.Store) {
			s.AddSphere(core.NewVec3(0, 0, 5), 1, opaque(core.Splat(1)))
		}},
		{"plane facing away", func(s *scene.Store) {
			s.AddPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), opaque(core.Splat(1)))
		}},
		{"catalog entry off axis", func(s *scene.Store) {
			s.SetCatalog(scene.NewMuseumCatalog(scene.Exhibit{Position: core.NewVec3(10, 0, -5), Diffuse: core.Splat(1)}))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := scene.NewStore()
			tt.setup(store)
			store.AddLight(core.NewVec3(0, 10, 0), core.Splat(1), 1)

			config := noGIConfig()
			config.Background = background
			rt := NewRayTracer(store, config)

			// Looking up and away from everything
			ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, -1))
			if got := rt.RayColor(ray, core.NewSeededSampler(42)); got != background {
				t.Errorf("Expected background %v, got %v", background, got)
			}
		})
	}
}

func TestTraceRay_MaxDepthSkipsIntersection(t *testing.T) {
	catalog := &countingCatalog{
		positions: []core.Vec3{core.NewVec3(0, 0, -5)},
		colors:    []core.Vec3{core.Splat(0.9)},
	}
	store := scene.NewStore()
	store.SetCatalog(catalog)
	store.AddSphere(core.NewVec3(0, 0, -3), 1, opaque(core.Splat(0.5)))

	config := noGIConfig()
	config.MaxDepth = 3
	rt := NewRayTracer(store, config)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	sampler := newCountingSampler()

	for _, depth := range []int{3, 4, 100} {
		if got := rt.TraceRay(ray, depth, sampler); got != config.Background {
			t.Errorf("Depth %d: expected background %v, got %v", depth, config.Background, got)
		}
	}

	if catalog.Scans() != 0 {
		t.Errorf("Expected no intersection tests at the cutoff, got %d", catalog.Scans())
	}
	if sampler.draws != 0 {
		t.Errorf("Expected no random draws at the cutoff, got %d", sampler.draws)
	}

	// One level shallower the sphere is visible
	if got := rt.TraceRay(ray, 2, sampler); got == config.Background {
		t.Error("Expected the sphere to be visible below the cutoff")
	}
	if catalog.Scans() == 0 {
		t.Error("Expected intersection tests below the cutoff")
	}
}

func TestTraceRay_ZeroLightsIsAmbient(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.4, 0.2)

	store := scene.NewStore()
	store.AddSphere(core.NewVec3(0, 0, -3), 1, opaque(albedo))
	rt := NewRayTracer(store, noGIConfig())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := rt.RayColor(ray, core.NewSeededSampler(42))

	expected := albedo.Multiply(0.1)
	if got != expected {
		t.Errorf("Expected ambient %v, got %v", expected, got)
	}
}

func TestShade_DiffuseLighting(t *testing.T) {
	albedo := core.Splat(0.5)
	store := scene.NewStore()
	store.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), opaque(albedo))
	store.AddLight(core.NewVec3(0, 10, 0), core.NewVec3(1, 0.5, 0.25), 2)
	rt := NewRayTracer(store, noGIConfig())

	hit, isHit := rt.Hit(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)))
	if !isHit {
		t.Fatal("Expected to hit the floor")
	}

	// Light straight above: cos = 1, distance 10, attenuation 1/3
	got := rt.Shade(hit)
	diffuse := core.NewVec3(1, 0.5, 0.25).Multiply(0.5 * 2 / 3.0)
	expected := albedo.Multiply(AmbientFactor).Add(diffuse)
	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestShade_LightBelowSurfaceContributesNothing(t *testing.T) {
	albedo := core.Splat(0.5)
	store := scene.NewStore()
	store.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), opaque(albedo))
	store.AddLight(core.NewVec3(0, -10, 0), core.Splat(1), 1)
	rt := NewRayTracer(store, noGIConfig())

	hit, _ := rt.Hit(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)))
	if got := rt.Shade(hit); got != albedo.Multiply(AmbientFactor) {
		t.Errorf("Expected ambient only, got %v", got)
	}
}

func TestShade_ShadowedByOccluder(t *testing.T) {
	albedo := core.Splat(0.6)

	build := func(withOccluder bool) *RayTracer {
		store := scene.NewStore()
		store.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), opaque(albedo))
		if withOccluder {
			store.AddSphere(core.NewVec3(0, 5, 0), 1, opaque(core.Splat(1)))
		}
		store.AddLight(core.NewVec3(0, 10, 0), core.Splat(1), 1)
		return NewRayTracer(store, noGIConfig())
	}

	// Looks at the origin from the side so the eye ray misses the occluder
	ray := core.NewRay(core.NewVec3(3, 1, 0), core.NewVec3(-3, -1, 0))

	shadowed := build(true)
	hit, isHit := shadowed.Hit(ray)
	if !isHit || hit.Point.Length() > 1e-9 {
		t.Fatalf("Expected to hit the floor at the origin, got %v (hit=%t)", hit.Point, isHit)
	}

	lightDir, distance := shadowed.Store().Lights()[0].Toward(hit.Point)
	if !shadowed.InShadow(hit, lightDir, distance) {
		t.Error("Expected the point under the occluder to be in shadow")
	}
	if got := shadowed.Shade(hit); got != albedo.Multiply(AmbientFactor) {
		t.Errorf("Expected ambient only under the occluder, got %v", got)
	}

	lit := build(false)
	hit, _ = lit.Hit(ray)
	if lit.InShadow(hit, lightDir, distance) {
		t.Error("Expected the point to be lit without the occluder")
	}
	if got := lit.Shade(hit); got.X <= albedo.X*AmbientFactor {
		t.Errorf("Expected direct light without the occluder, got %v", got)
	}
}

func TestShade_LightBeforeOccluderIsNotShadowed(t *testing.T) {
	store := scene.NewStore()
	store.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), opaque(core.Splat(0.6)))
	store.AddSphere(core.NewVec3(0, 8, 0), 1, opaque(core.Splat(1)))
	store.AddLight(core.NewVec3(0, 4, 0), core.Splat(1), 1) // Between floor and sphere
	rt := NewRayTracer(store, noGIConfig())

	hit, _ := rt.Hit(core.NewRay(core.NewVec3(3, 1, 0), core.NewVec3(-3, -1, 0)))
	lightDir, distance := store.Lights()[0].Toward(hit.Point)
	if rt.InShadow(hit, lightDir, distance) {
		t.Error("Objects beyond the light must not cast shadows")
	}
}

func TestTraceRay_ReflectionBlend(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.6, 0.3)
	background := core.NewVec3(0.2, 0.4, 0.8)

	for _, reflectance := range []float64{0.25, 0.5, 1.0} {
		for _, maxDepth := range []int{1, 10} {
			mirror := opaque(albedo)
			mirror.Metallic = reflectance

			store := scene.NewStore()
			store.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), mirror)

			config := noGIConfig()
			config.Background = background
			config.MaxDepth = maxDepth
			rt := NewRayTracer(store, config)

			// Straight down: every fuzzed reflection leaves upward into the background
			ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
			got := rt.RayColor(ray, core.NewSeededSampler(42))

			expected := albedo.Multiply(AmbientFactor).Lerp(background, reflectance)
			if got != expected {
				t.Errorf("reflectance=%v maxDepth=%d: expected %v, got %v", reflectance, maxDepth, expected, got)
			}
		}
	}
}

func TestTraceRay_IndexMatchedGlassIsInvisible(t *testing.T) {
	background := core.NewVec3(0.3, 0.5, 0.7)

	clear := opaque(core.NewVec3(1, 0, 0))
	clear.Transparency = 1
	clear.RefractiveIndex = 1

	store := scene.NewStore()
	store.AddSphere(core.NewVec3(0, 0, -3), 1, clear)

	config := noGIConfig()
	config.Background = background
	rt := NewRayTracer(store, config)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if got := rt.RayColor(ray, core.NewSeededSampler(42)); got != background {
		t.Errorf("Expected the background through index-matched glass, got %v", got)
	}
}

func TestTraceRay_GlassTerminates(t *testing.T) {
	store := scene.NewStore()
	store.AddSphere(core.NewVec3(0, 0, -3), 1, material.Glass())
	store.AddSphere(core.NewVec3(0, 0, -6), 1, material.Metal())
	store.AddPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), material.Floor())
	store.AddLight(core.NewVec3(0, 10, 0), core.Splat(1), 1)

	config := DefaultConfig()
	config.GlobalIllumination = true
	rt := NewRayTracer(store, config)

	sampler := core.NewSeededSampler(42)
	for i := 0; i < 50; i++ {
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.05*float64(i%5), -0.05, -1))
		c := rt.RayColor(ray, sampler)
		if math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsNaN(c.Z) || math.IsInf(c.X, 0) {
			t.Fatalf("Non-finite color %v", c)
		}
	}
}

func TestTraceRay_DeterministicWithoutRandomBranches(t *testing.T) {
	store := scene.NewStore()
	store.AddPlane(core.NewVec3(0, -0.1, 0), core.NewVec3(0, 1, 0), material.Floor())
	store.AddSphere(core.NewVec3(0, 1, -3), 1, opaque(core.NewVec3(0.2, 0.7, 0.3)))
	store.AddLight(core.NewVec3(0, 10, 0), core.Splat(1), 1)
	store.AddLight(core.NewVec3(5, 5, 5), core.NewVec3(0.8, 0.9, 1.0), 0.7)
	rt := NewRayTracer(store, noGIConfig())

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 1, 2), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(0, 1, 2), core.NewVec3(0.3, -0.5, -1)),
		core.NewRay(core.NewVec3(0, 1, 2), core.NewVec3(0, 1, 0)),
	}

	for _, ray := range rays {
		first := newCountingSampler()
		second := newCountingSampler()
		a := rt.RayColor(ray, first)
		b := rt.RayColor(ray, second)

		if a != b {
			t.Errorf("Identical traces differ: %v vs %v", a, b)
		}
		if first.draws != 0 || second.draws != 0 {
			t.Errorf("Deterministic path consumed randomness: %d and %d draws", first.draws, second.draws)
		}
	}
}

func TestGlobalIllumination_SampleBudget(t *testing.T) {
	// Floor under an empty sky, with one catalog entry far below it so that
	// every Hit call can be counted
	catalog := &countingCatalog{
		positions: []core.Vec3{core.NewVec3(0, -100, 0)},
		colors:    []core.Vec3{core.Splat(1)},
	}
	store := scene.NewStore()
	store.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), opaque(core.Splat(0.5)))
	store.SetCatalog(catalog)

	config := DefaultConfig()
	config.GlobalIllumination = true
	config.SampleCount = 4
	config.MaxDepth = 10
	rt := NewRayTracer(store, config)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	tests := []struct {
		depth         int
		expectedScans int // primary hit + GI rays, all GI rays escape
	}{
		{0, 1 + 4},
		{1, 1 + 2},
		{3, 1 + 1},
		{7, 1 + 1}, // 4/8 rounds down, at least one sample
		{8, 1},     // maxDepth-2 guard
		{9, 1},
	}

	for _, tt := range tests {
		before := catalog.Scans()
		rt.TraceRay(ray, tt.depth, core.NewSeededSampler(42))
		if got := catalog.Scans() - before; got != tt.expectedScans {
			t.Errorf("Depth %d: expected %d intersection tests, got %d", tt.depth, tt.expectedScans, got)
		}
	}
}

func TestGlobalIllumination_AddsSkyLight(t *testing.T) {
	albedo := core.Splat(0.5)
	background := core.Splat(1)

	store := scene.NewStore()
	store.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), opaque(albedo))

	config := DefaultConfig()
	config.Background = background
	config.GlobalIllumination = true
	config.SampleCount = 64
	rt := NewRayTracer(store, config)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	got := rt.RayColor(ray, core.NewSeededSampler(42))

	// Sky of 1 over a uniform hemisphere averages cos to ~0.5
	ambient := albedo.Multiply(AmbientFactor).X
	expected := ambient + GIWeight*0.5
	if math.Abs(got.X-expected) > 0.05 {
		t.Errorf("Expected about %f with sky GI, got %f", expected, got.X)
	}
	if got.X > ambient+GIWeight {
		t.Errorf("GI exceeded its bound: %f", got.X)
	}
}

func TestGlobalIllumination_ShallowMaxDepthIsInert(t *testing.T) {
	store := scene.NewStore()
	store.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), opaque(core.Splat(0.5)))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	config := DefaultConfig()
	config.MaxDepth = 2
	config.GlobalIllumination = true
	withGI := NewRayTracer(store, config)

	config.GlobalIllumination = false
	withoutGI := NewRayTracer(store, config)

	sampler := newCountingSampler()
	if a, b := withGI.RayColor(ray, sampler), withoutGI.RayColor(ray, sampler); a != b {
		t.Errorf("GI should be skipped when maxDepth-2 <= 0: %v vs %v", a, b)
	}
	if sampler.draws != 0 {
		t.Errorf("Expected no random draws, got %d", sampler.draws)
	}
}

func TestHit_ClosestAcrossCollections(t *testing.T) {
	store := scene.NewStore()
	store.AddPlane(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1), opaque(core.Splat(0.1)))
	store.AddSphere(core.NewVec3(0, 0, -6), 1, opaque(core.Splat(0.2)))
	store.SetCatalog(scene.NewMuseumCatalog(
		scene.Exhibit{Position: core.NewVec3(0, 0, -20), Diffuse: core.Splat(0.3)},
		scene.Exhibit{Position: core.NewVec3(0, 0, -3), Diffuse: core.Splat(0.4)},
	))
	rt := NewRayTracer(store, noGIConfig())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := rt.Hit(ray)
	if !isHit {
		t.Fatal("Expected a hit")
	}
	if math.Abs(hit.T-(3-geometry.ProxyRadius)) > 1e-9 {
		t.Errorf("Expected the nearest catalog proxy at t=%f, got %f", 3-geometry.ProxyRadius, hit.T)
	}
	if hit.ObjectIndex != 1 {
		t.Errorf("Expected object index 1, got %d", hit.ObjectIndex)
	}
	if hit.Color != core.Splat(0.4) {
		t.Errorf("Expected the exhibit diffuse color, got %v", hit.Color)
	}

	// Detach the catalog: the sphere is now nearest
	store.SetCatalog(nil)
	hit, _ = rt.Hit(ray)
	if math.Abs(hit.T-5) > 1e-9 || hit.ObjectIndex != geometry.NoObject {
		t.Errorf("Expected the sphere at t=5 with no object index, got t=%f index=%d", hit.T, hit.ObjectIndex)
	}
}

func TestHit_FirstFoundWinsTies(t *testing.T) {
	store := scene.NewStore()
	store.AddSphere(core.NewVec3(0, 0, -5), 1, opaque(core.NewVec3(1, 0, 0)))
	store.AddSphere(core.NewVec3(0, 0, -5), 1, opaque(core.NewVec3(0, 1, 0)))
	rt := NewRayTracer(store, noGIConfig())

	hit, isHit := rt.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
	if !isHit {
		t.Fatal("Expected a hit")
	}
	if hit.Color != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected the first sphere to win the tie, got color %v", hit.Color)
	}
}

func TestHit_RespectsRayBounds(t *testing.T) {
	store := scene.NewStore()
	store.AddSphere(core.NewVec3(0, 0, -5), 1, opaque(core.Splat(1)))
	rt := NewRayTracer(store, noGIConfig())

	ray := core.NewRayBounded(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0.001, 3.9)
	if _, isHit := rt.Hit(ray); isHit {
		t.Error("Expected no hit beyond tMax")
	}

	ray.TMax = 4.0
	if hit, isHit := rt.Hit(ray); !isHit || math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected a hit exactly at tMax, got hit=%t t=%f", isHit, hit.T)
	}
}

func TestMuseumScene_NormalsOpposeRays(t *testing.T) {
	sc := scene.NewMuseumScene()
	rt := NewRayTracer(sc.Store, DefaultConfig())

	sampler := core.NewSeededSampler(42)
	hits := 0
	for i := 0; i < 2000; i++ {
		ray := core.NewRay(sc.Camera.Eye, core.RandomUnitVector(sampler))
		hit, isHit := rt.Hit(ray)
		if !isHit {
			continue
		}
		hits++
		if hit.Normal.Dot(ray.Direction) > 0 {
			t.Fatalf("Normal %v faces away from ray %v", hit.Normal, ray.Direction)
		}
	}
	if hits == 0 {
		t.Error("Expected random rays to hit the museum")
	}
}

func TestTraceRay_ConcurrentTracersWithOwnSamplers(t *testing.T) {
	sc := scene.NewMuseumScene()
	config := DefaultConfig()
	config.GlobalIllumination = true
	rt := NewRayTracer(sc.Store, config)

	ray := core.NewRay(sc.Camera.Eye, sc.Camera.LookAt.Subtract(sc.Camera.Eye))
	expected := rt.RayColor(ray, core.NewSeededSampler(7))

	var wg sync.WaitGroup
	results := make([]core.Vec3, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = rt.RayColor(ray, core.NewSeededSampler(7))
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != expected {
			t.Errorf("Goroutine %d: expected %v with the same seed, got %v", i, expected, got)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}

	bad := DefaultConfig()
	bad.MaxDepth = 0
	if err := bad.Validate(); err == nil {
		t.Error("Expected error for maxDepth 0")
	}

	bad = DefaultConfig()
	bad.SampleCount = 0
	if err := bad.Validate(); err == nil {
		t.Error("Expected error for sampleCount 0")
	}
}

func TestSetters(t *testing.T) {
	rt := NewRayTracer(scene.NewStore(), DefaultConfig())
	rt.SetMaxDepth(3)
	rt.SetBackgroundColor(core.Splat(0.5))
	rt.EnableGlobalIllumination(true)
	rt.SetSampleCount(9)

	expected := Config{MaxDepth: 3, Background: core.Splat(0.5), GlobalIllumination: true, SampleCount: 9}
	if rt.Config() != expected {
		t.Errorf("Expected %+v, got %+v", expected, rt.Config())
	}
}
