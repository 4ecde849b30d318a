package nebula

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Role classifies what a VisualNode represents in the depicted pipeline.
// It only affects decoration defaults (glow, orbit), never animation math.
type Role uint8

const (
	RoleSource Role = iota // data producer at the edge of the scene
	RoleCore               // central aggregator, usually glowing
	RoleOutput             // consumer at the far end of the pipeline
)

// String returns the config-file spelling of the role.
func (r Role) String() string {
	switch r {
	case RoleSource:
		return "source"
	case RoleCore:
		return "core"
	case RoleOutput:
		return "output"
	default:
		return "unknown"
	}
}

// Animation tuning constants. These are tuned, not derived; changing them
// alters the feel of the scene but never its correctness.
const (
	// flowFullOpacity is a flow particle's opacity outside the fade zones.
	flowFullOpacity = 0.9
	// flowFadeZone is the fraction of a flow cycle near phase 0 and 1 during
	// which opacity ramps linearly to zero.
	flowFadeZone = 0.1
	// smoothingK is the exponential blending factor applied per frame when
	// easing raw scroll/pointer input toward its displayed value.
	smoothingK = 0.08
	// parallaxAmplitude scales the pointer-driven camera offset, in world units.
	parallaxAmplitude = 0.6
)

// Renderer rasterizes a scene from a camera's point of view. Implementations
// must treat both arguments as read-only. Resize takes effect immediately,
// before the next Render call.
type Renderer interface {
	Render(scene *Scene, cam *Camera)
	Resize(w, h float64)
}
