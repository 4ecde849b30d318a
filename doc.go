// Package nebula renders a decorative, scroll-driven 3D scene: glowing
// nodes connected by particle streams, an ambient point field, and a camera
// that travels a waypoint path as the host page scrolls.
//
// Nebula is purely presentational. It owns no window and no event loop of
// its own; the host feeds it pointer, scroll, and resize events through an
// [InputTracker] and drives the frame loop through an injectable
// [Scheduler]. This keeps the animator deterministic under test: step a fake
// scheduler by hand instead of waiting on real vsync.
//
// # Quick start
//
//	cfg := nebula.DefaultConfig()
//	scene := nebula.NewScene(cfg)
//	cam := nebula.NewCamera()
//	renderer := nebula.NewEbitenRenderer(1280, 720)
//	tracker := nebula.NewInputTracker(cam, renderer)
//	anim := nebula.NewAnimator(scene, cam, renderer, tracker, schedule)
//	anim.Start()
//
// where schedule is a [Scheduler] that arranges for its callback to run once
// per display refresh (see examples/hero for an Ebitengine-driven one).
//
// # Scene model
//
// A scene is built exactly once from a [Config]: a list of [NodeConfig]
// entries becomes [VisualNode] values, index pairs become [DataStream]
// connections carrying flow particles, and waypoints become the [CameraPath]
// the camera interpolates along. After construction only the [Animator]
// mutates displayed transforms; every per-frame value is a pure function of
// elapsed time, so a throttled host merely slows the animation down without
// drift.
package nebula
