package nebula

import "math"

// CoreShape is a node's solid body.
type CoreShape struct {
	// Scale is the displayed scale factor of the body, 1 at rest.
	Scale float64
}

// WireOverlay is the wireframe shell drawn around a node's core. It rotates
// against the core's spin.
type WireOverlay struct {
	Rotation Vec3
}

// AuraEffect is the pulsing additive glow carried by glowing nodes.
type AuraEffect struct {
	Scale float64
	Alpha float64
}

// OrbitGroup is a ring of small satellites circling a node.
type OrbitGroup struct {
	Count  int
	Radius float64
	Tilt   float64 // radians the orbital plane is tipped out of XZ
	Angle  float64 // current orbital angle, animator-owned
}

// VisualNode is a named point in the scene representing one pipeline entity.
// Sub-shapes are explicit typed fields rather than name-tagged children, so
// the animator and renderer never inspect strings to find them.
type VisualNode struct {
	Name  string
	Role  Role
	Color Color
	Size  float64

	// Origin is the node's fixed reference position, set at construction and
	// never overwritten. Every frame's Position is derived from it.
	Origin Vec3

	// Displayed transform. Animator-owned: recomputed each frame as a pure
	// function of elapsed time, never accumulated across frames.
	Position Vec3
	Rotation Vec3

	Core      CoreShape
	Wireframe WireOverlay
	Aura      *AuraEffect // nil unless the node glows
	Orbit     *OrbitGroup // nil unless the node has satellites

	index int // position in the scene's node list; seeds per-node phases
}

// Per-node oscillation tuning.
const (
	bobAmpX = 0.10
	bobAmpY = 0.25
	bobAmpZ = 0.08
	// nodePhaseStep separates neighboring nodes' oscillation phases so the
	// scene never bobs in lockstep.
	nodePhaseStep = 0.7
)

// newVisualNode constructs a node at rest: Position equals Origin, rotations
// are zero, sub-shapes are at their base scale.
func newVisualNode(index int, name string, role Role, origin Vec3, col Color, size float64, glow, orbit bool) *VisualNode {
	n := &VisualNode{
		Name:     name,
		Role:     role,
		Color:    col,
		Size:     size,
		Origin:   origin,
		Position: origin,
		Core:     CoreShape{Scale: 1},
		index:    index,
	}
	if glow {
		n.Aura = &AuraEffect{Scale: 1, Alpha: 0.3}
	}
	if orbit {
		n.Orbit = &OrbitGroup{
			Count:  3,
			Radius: size * 2.2,
			Tilt:   0.4,
		}
	}
	return n
}

// phase returns the node's per-index phase offset.
func (n *VisualNode) phase() float64 {
	return float64(n.index) * nodePhaseStep
}

// animate recomputes the displayed transform for elapsed time t (seconds).
//
// Offsets use the zero-at-zero form amp·(sin(t·f+φ) − sin(φ)) so that at
// t=0 the displayed transform equals the rest pose exactly: Position ==
// Origin, Rotation == zero. Nothing here accumulates, so a skipped or slow
// frame cannot introduce drift.
func (n *VisualNode) animate(t float64) {
	p := n.phase()

	n.Position = Vec3{
		X: n.Origin.X + bobAmpX*(math.Sin(t*0.8+p)-math.Sin(p)),
		Y: n.Origin.Y + bobAmpY*(math.Sin(t*0.6+p)-math.Sin(p)),
		Z: n.Origin.Z + bobAmpZ*(math.Cos(t*0.5+p)-math.Cos(p)),
	}

	n.Rotation = Vec3{
		X: 0.08 * (math.Sin(t*0.9+p) - math.Sin(p)),
		Y: t*0.3 + 0.05*(math.Sin(t*1.1+p)-math.Sin(p)),
		Z: 0,
	}

	// The wireframe shell counter-rotates at 1.5x so it visibly slides
	// against the core.
	n.Wireframe.Rotation = n.Rotation.Scale(-1.5)

	n.Core.Scale = 1 + 0.04*(math.Sin(t*1.7+p)-math.Sin(p))

	if n.Aura != nil {
		n.Aura.Scale = 1 + 0.15*math.Sin(t*2.0+p)
		n.Aura.Alpha = clamp(0.3+0.12*math.Sin(t*2.6+p), 0.05, 1)
	}

	if n.Orbit != nil {
		n.Orbit.Angle = t*0.9 + p
	}
}

// SatellitePosition returns the world position of satellite i on the node's
// orbit ring. Returns the node position itself when the node has no orbit
// group or i is out of range.
func (n *VisualNode) SatellitePosition(i int) Vec3 {
	o := n.Orbit
	if o == nil || o.Count <= 0 || i < 0 || i >= o.Count {
		return n.Position
	}
	a := o.Angle + 2*math.Pi*float64(i)/float64(o.Count)
	sin, cos := math.Sincos(a)
	sinT, cosT := math.Sincos(o.Tilt)
	return Vec3{
		X: n.Position.X + cos*o.Radius,
		Y: n.Position.Y + sin*o.Radius*sinT,
		Z: n.Position.Z + sin*o.Radius*cosT,
	}
}
