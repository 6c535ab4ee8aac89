package renderer

import (
	"math"

	"github.com/df07/go-museum-raytracer/pkg/core"
	"github.com/df07/go-museum-raytracer/pkg/scene"
)

// Camera generates primary rays for a look-at pinhole camera
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera from config for an image of the given aspect ratio (width/height)
func NewCamera(config scene.CameraConfig, aspectRatio float64) *Camera {
	theta := config.VFov * math.Pi / 180
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := aspectRatio * viewportHeight

	// Orthonormal basis, w points back toward the viewer
	w := config.Eye.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	if u.IsZero() {
		// Up is parallel to the view direction
		u = core.NewVec3(0, 0, 1).Cross(w).Normalize()
		if u.IsZero() {
			u = core.NewVec3(1, 0, 0)
		}
	}
	v := w.Cross(u)

	origin := config.Eye
	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1
// and (0, 0) is the lower left corner
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// PixelRay returns the ray through pixel (x, y) of a width x height image,
// offset inside the pixel by (dx, dy) in [0,1). Row 0 is the top row.
func (c *Camera) PixelRay(x, y, width, height int, dx, dy float64) core.Ray {
	s := (float64(x) + dx) / float64(width)
	t := 1 - (float64(y)+dy)/float64(height)
	return c.GetRay(s, t)
}
