package nebula

import (
	"math"
	"testing"
)

func TestFlowPhasePeriodicity(t *testing.T) {
	const speed, offset = 0.4, 0.17
	base := FlowPhase(3.7, speed, offset)
	for k := 1; k <= 5; k++ {
		got := FlowPhase(3.7+float64(k)/speed, speed, offset)
		if !approxEqual(got, base, 1e-9) {
			t.Errorf("phase(t + %d/s) = %f, want %f", k, got, base)
		}
	}
}

func TestFlowPhaseRange(t *testing.T) {
	for _, tt := range []float64{0, 0.1, 1, 2.5, 97.3, -1.2} {
		p := FlowPhase(tt, 0.31, 0.9)
		if p < 0 || p >= 1 {
			t.Errorf("FlowPhase(%f) = %f, out of [0,1)", tt, p)
		}
	}
}

func TestFlowOpacityFadeZones(t *testing.T) {
	if got := FlowOpacity(0); got != 0 {
		t.Errorf("opacity at phase 0 = %f, want 0", got)
	}
	if got := FlowOpacity(1); got != 0 {
		t.Errorf("opacity at phase 1 = %f, want 0", got)
	}
	if got := FlowOpacity(0.5); got != flowFullOpacity {
		t.Errorf("opacity at phase 0.5 = %f, want %f", got, flowFullOpacity)
	}
	// Linear ramp inside the fade zone.
	if got := FlowOpacity(flowFadeZone / 2); !approxEqual(got, flowFullOpacity/2, epsilon) {
		t.Errorf("opacity mid-fade = %f, want %f", got, flowFullOpacity/2)
	}
	if got := FlowOpacity(1 - flowFadeZone/2); !approxEqual(got, flowFullOpacity/2, epsilon) {
		t.Errorf("opacity mid-fade-out = %f, want %f", got, flowFullOpacity/2)
	}
}

func TestStreamParticlesRideTheCurve(t *testing.T) {
	a := newVisualNode(0, "a", RoleSource, V3(-5, 0, 0), ColorWhite, 1, false, false)
	b := newVisualNode(1, "b", RoleCore, V3(5, 1, 0), ColorWhite, 1, false, false)
	s := newDataStream(a, b, 6, 2)

	const elapsed = 4.2
	s.update(elapsed)

	pos := s.Positions()
	for i, fp := range s.Particles() {
		phase := FlowPhase(elapsed, fp.Speed, fp.Offset)
		want := s.Curve.PointAt(phase)
		got := V3(float64(pos[i*3]), float64(pos[i*3+1]), float64(pos[i*3+2]))
		// float32 buffer storage loses precision; compare loosely.
		if !vecApproxEqual(got, want, 1e-5) {
			t.Errorf("particle %d at %v, want curve point %v", i, got, want)
		}
		if wantA := float32(FlowOpacity(phase)); math.Abs(float64(s.Alphas()[i]-wantA)) > 1e-6 {
			t.Errorf("particle %d alpha = %f, want %f", i, s.Alphas()[i], wantA)
		}
	}
}

func TestStreamBuffersReused(t *testing.T) {
	a := newVisualNode(0, "a", RoleSource, V3(0, 0, 0), ColorWhite, 1, false, false)
	b := newVisualNode(1, "b", RoleCore, V3(1, 0, 0), ColorWhite, 1, false, false)
	s := newDataStream(a, b, 4, 1)

	p1 := &s.Positions()[0]
	s.update(1)
	s.update(2)
	if p1 != &s.Positions()[0] {
		t.Error("position buffer was reallocated between frames")
	}
}

func TestStreamOffsetsInRange(t *testing.T) {
	a := newVisualNode(0, "a", RoleSource, V3(0, 0, 0), ColorWhite, 1, false, false)
	b := newVisualNode(1, "b", RoleCore, V3(1, 0, 0), ColorWhite, 1, false, false)
	s := newDataStream(a, b, 16, 1)
	for i, fp := range s.Particles() {
		if fp.Offset < 0 || fp.Offset >= 1 {
			t.Errorf("particle %d offset %f out of [0,1)", i, fp.Offset)
		}
		if fp.Speed <= 0 {
			t.Errorf("particle %d speed %f not positive", i, fp.Speed)
		}
	}
}
