package material

import (
	"math"

	"github.com/df07/go-museum-raytracer/pkg/core"
)

// Reflect mirrors v about the surface normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit vector uv through a surface with normal n using
// Snell's law. Callers must rule out total internal reflection first.
func Refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Fresnel returns the unpolarized dielectric reflectance for light arriving
// at cosI to the normal, travelling from index n1 into index n2. The result
// is the mean of the s- and p-polarized reflectances, and 1 when the
// transmitted angle does not exist.
func Fresnel(cosI, n1, n2 float64) float64 {
	cosI = math.Max(0, math.Min(cosI, 1))
	ratio := n1 / n2
	sinT2 := ratio * ratio * (1 - cosI*cosI)
	if sinT2 >= 1 {
		return 1
	}

	cosT := math.Sqrt(1 - sinT2)
	rs := (n1*cosI - n2*cosT) / (n1*cosI + n2*cosT)
	rp := (n2*cosI - n1*cosT) / (n2*cosI + n1*cosT)
	return (rs*rs + rp*rp) / 2
}

// DielectricScatter picks the continuation direction for a ray striking a
// transparent surface. frontFace selects entering (1/ior) or exiting (ior)
// media. Total internal reflection always reflects without touching the
// sampler; otherwise the ray reflects with probability equal to the Fresnel
// reflectance and refracts otherwise.
func DielectricScatter(direction, normal core.Vec3, frontFace bool, refractiveIndex float64, sampler core.Sampler) (core.Vec3, bool) {
	n1, n2 := 1.0, refractiveIndex
	if !frontFace {
		n1, n2 = refractiveIndex, 1.0
	}
	etaRatio := n1 / n2

	unitDirection := direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	if etaRatio*sinTheta >= 1.0 {
		return Reflect(unitDirection, normal), true
	}

	if Fresnel(cosTheta, n1, n2) > sampler.Get1D() {
		return Reflect(unitDirection, normal), true
	}
	return Refract(unitDirection, normal, etaRatio).Normalize(), false
}
