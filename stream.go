package nebula

import (
	"math"
	"math/rand/v2"
)

// FlowParticle is one point traveling repeatedly along a stream's curve.
// Both fields are fixed at construction; per-frame position and opacity are
// pure functions of elapsed time.
type FlowParticle struct {
	// Offset is the particle's phase offset in [0, 1).
	Offset float64
	// Speed is the particle's cycle rate multiplier in cycles per second.
	Speed float64
}

// DataStream is a directed visual connection between two nodes. Particles
// flow from From to To along an arced curve, fading in near the source and
// out near the destination.
type DataStream struct {
	From, To *VisualNode
	Curve    QuadraticBezier

	particles []FlowParticle
	// Flat buffers, 3 floats per particle for positions and 1 for alphas.
	// Mutated in place each frame and handed wholesale to the renderer.
	positions []float32
	alphas    []float32
}

// newDataStream connects two nodes with count flow particles. Offsets are
// spread evenly with random jitter so particles neither clump nor march in
// formation; speeds vary around one cycle per three seconds.
func newDataStream(from, to *VisualNode, count int, lift float64) *DataStream {
	if count <= 0 {
		count = 8
	}
	s := &DataStream{
		From:      from,
		To:        to,
		Curve:     NewArc(from.Origin, to.Origin, lift),
		particles: make([]FlowParticle, count),
		positions: make([]float32, count*3),
		alphas:    make([]float32, count),
	}
	for i := range s.particles {
		jitter := (rand.Float64() - 0.5) / float64(count)
		s.particles[i] = FlowParticle{
			Offset: math.Mod(float64(i)/float64(count)+jitter+1, 1),
			Speed:  0.25 + rand.Float64()*0.2,
		}
	}
	return s
}

// FlowPhase returns the cyclic phase in [0, 1) of a particle with the given
// speed and offset at elapsed time t. The phase wraps exactly, so
// FlowPhase(t+k/speed, speed, offset) == FlowPhase(t, speed, offset) for any
// integer k: particles restart cleanly with no accumulated drift.
func FlowPhase(t, speed, offset float64) float64 {
	p := math.Mod(t*speed+offset, 1)
	if p < 0 {
		p += 1
	}
	return p
}

// FlowOpacity returns a particle's opacity at the given phase. Opacity is 0
// at phase 0 and 1, ramps linearly through the fade zones at both ends of
// the cycle, and holds at the full constant in between.
func FlowOpacity(phase float64) float64 {
	phase = clamp(phase, 0, 1)
	switch {
	case phase < flowFadeZone:
		return flowFullOpacity * phase / flowFadeZone
	case phase > 1-flowFadeZone:
		return flowFullOpacity * (1 - phase) / flowFadeZone
	default:
		return flowFullOpacity
	}
}

// update recomputes every particle's position and opacity for elapsed time t,
// writing into the flat buffers.
func (s *DataStream) update(t float64) {
	for i, fp := range s.particles {
		phase := FlowPhase(t, fp.Speed, fp.Offset)
		pt := s.Curve.PointAt(phase)
		s.positions[i*3+0] = float32(pt.X)
		s.positions[i*3+1] = float32(pt.Y)
		s.positions[i*3+2] = float32(pt.Z)
		s.alphas[i] = float32(FlowOpacity(phase))
	}
}

// Particles returns the stream's particle parameters.
// The returned slice MUST NOT be mutated.
func (s *DataStream) Particles() []FlowParticle {
	return s.particles
}

// Positions returns the flat xyz position buffer, 3 floats per particle.
// Valid until the next update. The returned slice MUST NOT be mutated.
func (s *DataStream) Positions() []float32 {
	return s.positions
}

// Alphas returns the per-particle opacity buffer.
// Valid until the next update. The returned slice MUST NOT be mutated.
func (s *DataStream) Alphas() []float32 {
	return s.alphas
}
