package nebula

// InputTracker records the most recent raw pointer, scroll, and viewport
// samples as the host reports them. Each entry point overwrites a single
// field: last write wins, no locks. The animator is the only reader, and
// host event delivery is serialized with the frame loop, so a one-frame
// stale read is the worst possible outcome — and imperceptible.
type InputTracker struct {
	// PointerX and PointerY are the latest pointer coordinates normalized to
	// roughly [-1, 1], +Y upward.
	PointerX, PointerY float64
	// ScrollProgress is the latest scroll position normalized to [0, 1].
	ScrollProgress float64
	// Width and Height are the current viewport pixel dimensions.
	Width, Height float64

	camera   *Camera
	renderer Renderer
}

// NewInputTracker wires a tracker to the camera and renderer it must keep in
// sync on resize. Either may be nil; resize then only updates the tracker's
// own dimensions.
func NewInputTracker(cam *Camera, r Renderer) *InputTracker {
	return &InputTracker{
		Width:    1,
		Height:   1,
		camera:   cam,
		renderer: r,
	}
}

// PointerMoved records a pointer position in viewport pixel coordinates,
// normalizing against the current viewport size. Safe at any call frequency.
func (t *InputTracker) PointerMoved(px, py float64) {
	t.PointerX = px/t.Width*2 - 1
	t.PointerY = -(py/t.Height*2 - 1)
}

// Scrolled records the current scroll offset against the total scrollable
// height, clamped to [0, 1]. A zero or negative scrollable height resolves
// to progress 0 rather than a division artifact.
func (t *InputTracker) Scrolled(offset, scrollable float64) {
	if scrollable <= 0 {
		t.ScrollProgress = 0
		return
	}
	t.ScrollProgress = clamp(offset/scrollable, 0, 1)
}

// Resized records new viewport dimensions and applies them to the camera
// aspect ratio and the renderer immediately — not deferred to the next
// frame, since a stale aspect ratio renders visibly distorted. Dimensions
// are clamped to a 1×1 minimum.
func (t *InputTracker) Resized(w, h float64) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	t.Width = w
	t.Height = h
	if t.camera != nil {
		t.camera.SetAspect(w, h)
	}
	if t.renderer != nil {
		t.renderer.Resize(w, h)
	}
}
