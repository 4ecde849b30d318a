package nebula

// QuadraticBezier is a three-point parametric curve used for the arcs that
// data streams travel along. Endpoints sit at the connected nodes; the
// control point is lifted above the chord midpoint so the stream bows out of
// the connecting plane.
type QuadraticBezier struct {
	P0, P1, P2 Vec3
}

// NewArc builds a quadratic Bézier between from and to whose control point is
// the chord midpoint lifted by lift along Y and pulled half as far toward the
// viewer along Z. Coincident endpoints produce a degenerate curve that
// evaluates to the shared point at every t: the lift is not applied, since
// bowing a zero-length chord would just displace the point.
func NewArc(from, to Vec3, lift float64) QuadraticBezier {
	if from == to {
		return QuadraticBezier{P0: from, P1: from, P2: from}
	}
	mid := from.Add(to).Scale(0.5)
	mid.Y += lift
	mid.Z += lift * 0.5
	return QuadraticBezier{P0: from, P1: mid, P2: to}
}

// PointAt evaluates the curve at parameter t. t is clamped to [0, 1];
// t=0 returns P0 exactly and t=1 returns P2 exactly.
func (c QuadraticBezier) PointAt(t float64) Vec3 {
	t = clamp(t, 0, 1)
	u := 1 - t
	// B(t) = u²·P0 + 2ut·P1 + t²·P2
	a := u * u
	b := 2 * u * t
	d := t * t
	return Vec3{
		a*c.P0.X + b*c.P1.X + d*c.P2.X,
		a*c.P0.Y + b*c.P1.Y + d*c.P2.Y,
		a*c.P0.Z + b*c.P1.Z + d*c.P2.Z,
	}
}
