package nebula

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Scheduler arranges for frame to run once, as soon as possible, typically
// aligned with the display refresh. The animator reschedules itself after
// each completed step, so iterations never overlap; tests substitute a fake
// that runs frames by hand.
type Scheduler func(frame func())

// Animator is the perpetual frame loop. It has two states — idle
// (constructed) and running (Start succeeded) — and is the sole writer of
// displayed transforms and the sole caller of the renderer.
type Animator struct {
	scene    *Scene
	camera   *Camera
	renderer Renderer
	input    *InputTracker
	schedule Scheduler

	// now is the clock; replaceable in tests.
	now   func() time.Time
	start time.Time
	prevT float64

	running bool
	stopped bool
	// gen identifies the current loop chain. Each Start begins a new
	// generation; a callback scheduled by an older generation finds itself
	// stale when it fires and drops out instead of stepping or rescheduling,
	// so Stop-then-Start can never leave two chains running.
	gen int

	// Smoothed copies of the tracker's raw samples. Exponential smoothing
	// lags a little behind the raw values so abrupt scroll or pointer jumps
	// never jerk the camera.
	smoothScroll     float64
	smoothX, smoothY float64

	scrollTween *gween.Tween

	debug bool
}

// NewAnimator wires the loop to its collaborators. The animator starts idle;
// call Start to begin the loop.
func NewAnimator(scene *Scene, cam *Camera, r Renderer, input *InputTracker, schedule Scheduler) *Animator {
	return &Animator{
		scene:    scene,
		camera:   cam,
		renderer: r,
		input:    input,
		schedule: schedule,
		now:      time.Now,
	}
}

// Start transitions the animator from idle to running and schedules the
// first frame. If any collaborator is missing (no scene, no renderer, no
// scheduler) the animator stays inert and reports false: no loop, no error,
// exactly as if the mount point were absent from the page. Calling Start on
// a running animator is a no-op that reports true.
func (a *Animator) Start() bool {
	if a.running {
		return true
	}
	if a.scene == nil || a.camera == nil || a.renderer == nil || a.input == nil || a.schedule == nil {
		return false
	}
	a.running = true
	a.stopped = false
	a.start = a.now()
	a.prevT = 0
	a.smoothScroll = a.input.ScrollProgress
	a.smoothX = a.input.PointerX
	a.smoothY = a.input.PointerY

	a.gen++
	gen := a.gen
	var frame func()
	frame = func() {
		if a.stopped || gen != a.gen {
			return
		}
		a.Step(a.now().Sub(a.start).Seconds())
		if !a.stopped && gen == a.gen {
			a.schedule(frame)
		}
	}
	a.schedule(frame)
	return true
}

// Stop signals the loop to exit. An already-scheduled frame that fires after
// Stop returns without stepping or rescheduling, so no callback leaks past
// teardown.
func (a *Animator) Stop() {
	a.stopped = true
	a.running = false
}

// Running reports whether the loop is active.
func (a *Animator) Running() bool {
	return a.running
}

// SetDebugMode enables per-frame timing stats on stderr.
func (a *Animator) SetDebugMode(enabled bool) {
	a.debug = enabled
}

// ScrollToSection tweens the tracked scroll progress to the named waypoint
// over duration seconds, as if the user had scrolled there. Reports false if
// the path has no such section. A nil ease function defaults to ease.OutQuad.
func (a *Animator) ScrollToSection(name string, duration float32, fn ease.TweenFunc) bool {
	if a.scene == nil || a.input == nil {
		return false
	}
	p, ok := a.scene.Path.SectionProgress(name)
	if !ok {
		return false
	}
	if fn == nil {
		fn = ease.OutQuad
	}
	a.scrollTween = gween.New(float32(a.input.ScrollProgress), float32(p), duration, fn)
	return true
}

// Step runs one full frame at elapsed time t (seconds since Start): advance
// any section tween, smooth inputs, recompute every displayed transform,
// place the camera from the path plus pointer parallax, and render once.
// Exported so tests can drive the loop deterministically without a clock.
func (a *Animator) Step(t float64) {
	dt := t - a.prevT
	if dt < 0 {
		dt = 0
	}
	a.prevT = t

	var stats frameStats
	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}

	if a.scrollTween != nil {
		v, done := a.scrollTween.Update(float32(dt))
		a.input.ScrollProgress = float64(v)
		if done {
			a.scrollTween = nil
		}
	}

	a.smoothScroll += (a.input.ScrollProgress - a.smoothScroll) * smoothingK
	a.smoothX += (a.input.PointerX - a.smoothX) * smoothingK
	a.smoothY += (a.input.PointerY - a.smoothY) * smoothingK

	a.scene.advance(t)

	pos, look := a.scene.Path.PositionAt(a.smoothScroll)
	a.camera.Position = pos.Add(Vec3{
		X: a.smoothX * parallaxAmplitude,
		Y: a.smoothY * parallaxAmplitude * 0.5,
	})
	a.camera.LookAt = look

	if a.debug {
		stats.updateTime = time.Since(t0)
		t0 = time.Now()
	}

	a.renderer.Render(a.scene, a.camera)

	if a.debug {
		stats.renderTime = time.Since(t0)
		stats.nodes = len(a.scene.Nodes)
		stats.streams = len(a.scene.Streams)
		stats.fieldPoints = a.scene.Field.Count()
		a.debugLog(stats)
	}
}

// SmoothedScroll returns the current smoothed scroll progress.
func (a *Animator) SmoothedScroll() float64 {
	return a.smoothScroll
}
