package nebula

import (
	"math"
	"testing"
)

func TestFieldConstruction(t *testing.T) {
	palette := []Color{{R: 1, A: 1}, {G: 1, A: 1}}
	f := newAmbientField(150, 20, palette)
	if f.Count() != 150 {
		t.Errorf("count = %d, want 150", f.Count())
	}
	if len(f.Positions()) != 450 || len(f.Colors()) != 450 {
		t.Errorf("buffer lengths = %d/%d, want 450", len(f.Positions()), len(f.Colors()))
	}
	// Every point's color must come from the palette.
	for i := 0; i < f.Count(); i++ {
		r, g := f.Colors()[i*3], f.Colors()[i*3+1]
		if !(r == 1 && g == 0) && !(r == 0 && g == 1) {
			t.Fatalf("point %d color (%f,%f) not from palette", i, r, g)
		}
	}
}

func TestFieldDefaults(t *testing.T) {
	f := newAmbientField(0, 0, nil)
	if f.Count() <= 0 {
		t.Fatal("degenerate field config produced no points")
	}
	if f.Colors()[0] != 1 || f.Colors()[1] != 1 || f.Colors()[2] != 1 {
		t.Error("empty palette should fall back to white")
	}
}

func TestFieldDriftIsPeriodic(t *testing.T) {
	f := newAmbientField(10, 5, nil)
	period := 2 * math.Pi / fieldDriftFreq

	f.update(1.0)
	y1 := f.Positions()[1]
	f.update(1.0 + period)
	// The whole-field rotation differs between samples, but Y carries only
	// base + drift, and drift has returned to the same value.
	if !approxEqual(float64(f.Positions()[1]), float64(y1), 1e-4) {
		t.Errorf("drift not periodic: y %f then %f one period later", y1, f.Positions()[1])
	}
}

func TestFieldRotationPreservesRadius(t *testing.T) {
	f := newAmbientField(25, 12, nil)
	baseR := math.Hypot(float64(f.base[0]), float64(f.base[2]))
	f.update(40)
	gotR := math.Hypot(float64(f.positions[0]), float64(f.positions[2]))
	if !approxEqual(gotR, baseR, 1e-4) {
		t.Errorf("horizontal radius changed under rotation: %f -> %f", baseR, gotR)
	}
	if !approxEqual(f.Rotation, 40*fieldSpinSpeed, epsilon) {
		t.Errorf("rotation = %f, want %f", f.Rotation, 40*fieldSpinSpeed)
	}
}

func TestFieldPointsRotateAboutY(t *testing.T) {
	f := newAmbientField(8, 6, nil)
	f.update(7.5)

	// Each displayed point is the drifted base rotated by the cloud rotation.
	for i := 0; i < f.Count(); i++ {
		drift := fieldDriftAmp * math.Sin(7.5*fieldDriftFreq+float64(i)*fieldPhaseStep)
		want := Vec3{
			X: float64(f.base[i*3+0]),
			Y: float64(f.base[i*3+1]) + drift,
			Z: float64(f.base[i*3+2]),
		}.RotateY(f.Rotation)
		got := V3(float64(f.positions[i*3]), float64(f.positions[i*3+1]), float64(f.positions[i*3+2]))
		if !vecApproxEqual(got, want, 1e-4) {
			t.Fatalf("point %d = %v, want %v", i, got, want)
		}
	}
}

func TestFieldBuffersReused(t *testing.T) {
	f := newAmbientField(30, 10, nil)
	p0 := &f.Positions()[0]
	f.update(1)
	f.update(2)
	if p0 != &f.Positions()[0] {
		t.Error("position buffer was reallocated between frames")
	}
}
