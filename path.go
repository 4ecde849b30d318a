package nebula

import "math"

// Waypoint is one control point of the camera's journey: where the camera
// sits and what it looks at when the page section with the given name is in
// view.
type Waypoint struct {
	Section  string
	Position Vec3
	LookAt   Vec3
}

// CameraPath is an ordered, immutable sequence of waypoints. Interpolation
// is piecewise linear over [0, 1], clamped at both ends.
type CameraPath struct {
	waypoints []Waypoint
}

// NewCameraPath copies the given waypoints into a path. Paths with fewer
// than two waypoints are legal; PositionAt degenerates to a constant.
func NewCameraPath(waypoints []Waypoint) *CameraPath {
	wps := make([]Waypoint, len(waypoints))
	copy(wps, waypoints)
	return &CameraPath{waypoints: wps}
}

// Len returns the number of waypoints.
func (p *CameraPath) Len() int {
	return len(p.waypoints)
}

// Waypoints returns the waypoint list. The returned slice MUST NOT be mutated.
func (p *CameraPath) Waypoints() []Waypoint {
	return p.waypoints
}

// PositionAt maps progress in [0, 1] to a camera position and look-at target
// by piecewise-linear interpolation. progress is clamped; 0 resolves to the
// first waypoint exactly and 1 to the last waypoint exactly. An empty path
// returns the origin looking down -Z; a single waypoint is returned as-is.
// Pure: no side effects, callers apply the result to the camera.
func (p *CameraPath) PositionAt(progress float64) (pos, lookAt Vec3) {
	switch len(p.waypoints) {
	case 0:
		return Vec3{}, Vec3{Z: -1}
	case 1:
		return p.waypoints[0].Position, p.waypoints[0].LookAt
	}

	progress = clamp(progress, 0, 1)
	segments := len(p.waypoints) - 1
	scaled := progress * float64(segments)
	idx := int(math.Floor(scaled))
	if idx > segments-1 {
		idx = segments - 1
	}
	t := scaled - float64(idx)

	a, b := p.waypoints[idx], p.waypoints[idx+1]
	return a.Position.Lerp(b.Position, t), a.LookAt.Lerp(b.LookAt, t)
}

// SectionProgress returns the progress value at which the named waypoint is
// reached, and whether the section exists. With fewer than two waypoints the
// progress is always 0.
func (p *CameraPath) SectionProgress(name string) (float64, bool) {
	for i, wp := range p.waypoints {
		if wp.Section == name {
			if len(p.waypoints) < 2 {
				return 0, true
			}
			return float64(i) / float64(len(p.waypoints)-1), true
		}
	}
	return 0, false
}
