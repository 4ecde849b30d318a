package nebula

import "testing"

func fiveStopPath() *CameraPath {
	return NewCameraPath([]Waypoint{
		{Section: "hero", Position: V3(0, 2, 20), LookAt: V3(0, 0, 0)},
		{Section: "sources", Position: V3(-10, 3, 12), LookAt: V3(-9, 0, 0)},
		{Section: "historian", Position: V3(0, 5, 9), LookAt: V3(0, 0, 0)},
		{Section: "outputs", Position: V3(10, 2, 12), LookAt: V3(9, 0, 0)},
		{Section: "contact", Position: V3(0, 8, 24), LookAt: V3(0, 0, 0)},
	})
}

func TestPathEndpointsExact(t *testing.T) {
	p := fiveStopPath()
	wps := p.Waypoints()

	pos, look := p.PositionAt(0)
	if pos != wps[0].Position || look != wps[0].LookAt {
		t.Errorf("PositionAt(0) = %v/%v, want first waypoint exactly", pos, look)
	}
	pos, look = p.PositionAt(1)
	if pos != wps[len(wps)-1].Position || look != wps[len(wps)-1].LookAt {
		t.Errorf("PositionAt(1) = %v/%v, want last waypoint exactly", pos, look)
	}
}

func TestPathSegmentBoundaryLandsOnWaypoint(t *testing.T) {
	// With 5 waypoints, progress 0.5 scales to 2.0: segment index 2, local
	// t 0 — exactly waypoint[2], not between two.
	p := fiveStopPath()
	pos, look := p.PositionAt(0.5)
	want := p.Waypoints()[2]
	if !vecApproxEqual(pos, want.Position, epsilon) || !vecApproxEqual(look, want.LookAt, epsilon) {
		t.Errorf("PositionAt(0.5) = %v/%v, want waypoint[2] %v/%v",
			pos, look, want.Position, want.LookAt)
	}
}

func TestPathMonotonicWithinSegment(t *testing.T) {
	p := fiveStopPath()
	wps := p.Waypoints()
	// Samples inside the first segment must advance along its displacement
	// vector without overshoot.
	dir := wps[1].Position.Sub(wps[0].Position)
	segEnd := 1.0 / float64(len(wps)-1)
	prev := -1.0
	for i := 0; i <= 10; i++ {
		progress := segEnd * float64(i) / 10
		pos, _ := p.PositionAt(progress)
		along := pos.Sub(wps[0].Position).Dot(dir)
		if along < prev-epsilon {
			t.Fatalf("progress %f: displacement %f went backward from %f", progress, along, prev)
		}
		if along > dir.Dot(dir)+epsilon {
			t.Fatalf("progress %f: overshot segment end", progress)
		}
		prev = along
	}
}

func TestPathTwoWaypointsIsPlainLerp(t *testing.T) {
	p := NewCameraPath([]Waypoint{
		{Position: V3(0, 0, 0), LookAt: V3(0, 0, -1)},
		{Position: V3(10, 0, 0), LookAt: V3(10, 0, -1)},
	})
	pos, _ := p.PositionAt(0.3)
	if !vecApproxEqual(pos, V3(3, 0, 0), epsilon) {
		t.Errorf("PositionAt(0.3) = %v, want (3,0,0)", pos)
	}
}

func TestPathClampsProgress(t *testing.T) {
	p := fiveStopPath()
	wps := p.Waypoints()
	if pos, _ := p.PositionAt(-2); pos != wps[0].Position {
		t.Errorf("PositionAt(-2) = %v, want first waypoint", pos)
	}
	if pos, _ := p.PositionAt(7); pos != wps[len(wps)-1].Position {
		t.Errorf("PositionAt(7) = %v, want last waypoint", pos)
	}
}

func TestPathDegenerate(t *testing.T) {
	empty := NewCameraPath(nil)
	pos, look := empty.PositionAt(0.5)
	if pos != (Vec3{}) || look != (Vec3{Z: -1}) {
		t.Errorf("empty path = %v/%v, want origin looking -Z", pos, look)
	}

	single := NewCameraPath([]Waypoint{{Position: V3(1, 2, 3), LookAt: V3(4, 5, 6)}})
	pos, look = single.PositionAt(0.9)
	if pos != V3(1, 2, 3) || look != V3(4, 5, 6) {
		t.Errorf("single-waypoint path = %v/%v, want the waypoint", pos, look)
	}
}

func TestPathSectionProgress(t *testing.T) {
	p := fiveStopPath()
	got, ok := p.SectionProgress("historian")
	if !ok || !approxEqual(got, 0.5, epsilon) {
		t.Errorf("SectionProgress(historian) = %f, %v, want 0.5, true", got, ok)
	}
	if _, ok := p.SectionProgress("nope"); ok {
		t.Error("SectionProgress of unknown section reported ok")
	}
}
