package core

// Default parametric bounds for rays built with NewRay.
const (
	DefaultTMin = 0.001
	DefaultTMax = 1000.0
)

// Ray represents a ray with an origin, a unit direction and a valid
// parametric interval [TMin, TMax].
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
	TMax      float64
}

// NewRay creates a ray with the default bounds. The direction is normalized.
func NewRay(origin, direction Vec3) Ray {
	return NewRayBounded(origin, direction, DefaultTMin, DefaultTMax)
}

// NewRayBounded creates a ray with explicit bounds. The direction is normalized.
func NewRayBounded(origin, direction Vec3, tMin, tMax float64) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
		TMin:      tMin,
		TMax:      tMax,
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// InRange reports whether t lies within [TMin, TMax]
func (r Ray) InRange(t float64) bool {
	return t >= r.TMin && t <= r.TMax
}
