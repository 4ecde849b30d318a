package nebula

import (
	"math"
	"math/rand/v2"
)

// Ambient field tuning.
const (
	fieldDriftAmp  = 0.3  // vertical drift amplitude, world units
	fieldDriftFreq = 0.4  // drift frequency, radians per second
	fieldSpinSpeed = 0.02 // uniform Y rotation, radians per second
	fieldPhaseStep = 0.35 // per-index drift phase separation
)

// AmbientField is a fixed-count cloud of atmosphere points. Points have no
// identity beyond their index; base positions and colors are randomized once
// at construction, then every frame applies a periodic vertical drift per
// index and a slow uniform rotation of the whole cloud.
type AmbientField struct {
	count int

	// base holds the immutable initial positions, 3 floats per point.
	base []float32
	// positions is the displayed buffer, rewritten in place each frame and
	// handed wholesale to the renderer.
	positions []float32
	// colors holds rgb per point, fixed at construction.
	colors []float32

	// Rotation is the cloud's current uniform Y rotation, animator-owned.
	Rotation float64
}

// newAmbientField scatters count points uniformly in a cube of the given
// spread, coloring each from the palette. A nil or empty palette falls back
// to white.
func newAmbientField(count int, spread float64, palette []Color) *AmbientField {
	if count <= 0 {
		count = 200
	}
	if spread <= 0 {
		spread = 30
	}
	if len(palette) == 0 {
		palette = []Color{ColorWhite}
	}
	f := &AmbientField{
		count:     count,
		base:      make([]float32, count*3),
		positions: make([]float32, count*3),
		colors:    make([]float32, count*3),
	}
	for i := 0; i < count; i++ {
		f.base[i*3+0] = float32((rand.Float64() - 0.5) * spread)
		f.base[i*3+1] = float32((rand.Float64() - 0.5) * spread)
		f.base[i*3+2] = float32((rand.Float64() - 0.5) * spread)
		c := palette[rand.IntN(len(palette))]
		f.colors[i*3+0] = float32(c.R)
		f.colors[i*3+1] = float32(c.G)
		f.colors[i*3+2] = float32(c.B)
	}
	copy(f.positions, f.base)
	return f
}

// update rewrites the displayed position buffer for elapsed time t: each
// point's base position rotated by the cloud rotation, plus a per-index
// vertical drift. Pure in t; no frame-to-frame accumulation.
func (f *AmbientField) update(t float64) {
	f.Rotation = t * fieldSpinSpeed

	for i := 0; i < f.count; i++ {
		drift := fieldDriftAmp * math.Sin(t*fieldDriftFreq+float64(i)*fieldPhaseStep)

		p := Vec3{
			X: float64(f.base[i*3+0]),
			Y: float64(f.base[i*3+1]) + drift,
			Z: float64(f.base[i*3+2]),
		}.RotateY(f.Rotation)

		f.positions[i*3+0] = float32(p.X)
		f.positions[i*3+1] = float32(p.Y)
		f.positions[i*3+2] = float32(p.Z)
	}
}

// Count returns the number of points in the field.
func (f *AmbientField) Count() int {
	return f.count
}

// Positions returns the flat xyz buffer, 3 floats per point. Valid until the
// next update. The returned slice MUST NOT be mutated.
func (f *AmbientField) Positions() []float32 {
	return f.positions
}

// Colors returns the flat rgb buffer, 3 floats per point.
// The returned slice MUST NOT be mutated.
func (f *AmbientField) Colors() []float32 {
	return f.colors
}
