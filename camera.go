package nebula

import "math"

// Camera is a perspective camera. The animator writes Position and LookAt
// every frame from the camera path plus the pointer parallax offset; the
// input tracker writes Aspect immediately on resize.
type Camera struct {
	Position Vec3
	LookAt   Vec3
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Aspect is width/height of the render target.
	Aspect float64
	// Near is the near clip distance; points closer than this are culled.
	Near float64
}

// NewCamera creates a camera with a 60° vertical field of view looking at
// the origin from a short distance back.
func NewCamera() *Camera {
	return &Camera{
		Position: Vec3{Z: 18},
		FOV:      60,
		Aspect:   16.0 / 9.0,
		Near:     0.1,
	}
}

// SetAspect updates the aspect ratio for a render target of the given pixel
// dimensions. Non-positive dimensions are clamped to 1 so a zero-sized
// viewport can never poison the projection.
func (c *Camera) SetAspect(w, h float64) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.Aspect = w / h
}

// Project maps a world point to screen coordinates on a w×h target, plus
// its camera-space depth for painter's sorting. ok is false when the point
// lies behind the near plane.
func (c *Camera) Project(v Vec3, w, h float64) (x, y, depth float64, ok bool) {
	forward := c.LookAt.Sub(c.Position).Normalize()
	if forward == (Vec3{}) {
		forward = Vec3{Z: -1}
	}
	right := forward.Cross(Vec3{Y: 1}).Normalize()
	if right == (Vec3{}) {
		// Looking straight up or down; any horizontal works.
		right = Vec3{X: 1}
	}
	up := right.Cross(forward)

	d := v.Sub(c.Position)
	cx := d.Dot(right)
	cy := d.Dot(up)
	cz := d.Dot(forward)
	if cz <= c.Near {
		return 0, 0, cz, false
	}

	// Focal length in pixels from the vertical FOV; square pixels, so the
	// horizontal extent follows the target width.
	f := (h / 2) / math.Tan(c.FOV*math.Pi/360)
	x = w/2 + cx*f/cz
	y = h/2 - cy*f/cz
	return x, y, cz, true
}
