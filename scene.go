package nebula

// Scene owns every visual entity: nodes, streams, the ambient field, and the
// camera path. It is built exactly once; after that only the animator
// mutates displayed transforms, through advance.
type Scene struct {
	Nodes   []*VisualNode
	Streams []*DataStream
	Field   *AmbientField
	Path    *CameraPath
}

// NewScene builds a scene from a config. Node colors and roles are assumed
// valid (Validate catches bad values at load time; hand-written configs that
// skip validation get white/source fallbacks). Links whose indices are out
// of range are skipped rather than treated as fatal.
func NewScene(cfg Config) *Scene {
	s := &Scene{}

	for i, nc := range cfg.Nodes {
		role, _ := parseRole(nc.Role)
		col, err := parseHexColor(nc.Color)
		if err != nil {
			col = ColorWhite
		}
		size := nc.Size
		if size <= 0 {
			size = 1
		}
		s.Nodes = append(s.Nodes, newVisualNode(
			i, nc.Name, role, vec3FromArray(nc.Position), col, size, nc.Glow, nc.Orbit,
		))
	}

	lift := cfg.StreamLift
	if lift == 0 {
		lift = 2
	}
	for _, link := range cfg.Links {
		from, to := link[0], link[1]
		if from < 0 || from >= len(s.Nodes) || to < 0 || to >= len(s.Nodes) || from == to {
			continue
		}
		s.Streams = append(s.Streams,
			newDataStream(s.Nodes[from], s.Nodes[to], cfg.FlowParticles, lift))
	}

	palette := make([]Color, 0, len(cfg.Palette))
	for _, p := range cfg.Palette {
		if c, err := parseHexColor(p); err == nil {
			palette = append(palette, c)
		}
	}
	s.Field = newAmbientField(cfg.FieldCount, cfg.FieldSpread, palette)

	wps := make([]Waypoint, len(cfg.Waypoints))
	for i, wc := range cfg.Waypoints {
		wps[i] = Waypoint{
			Section:  wc.Section,
			Position: vec3FromArray(wc.Position),
			LookAt:   vec3FromArray(wc.LookAt),
		}
	}
	s.Path = NewCameraPath(wps)

	return s
}

// advance recomputes every displayed transform for elapsed time t. Called
// once per frame by the animator — the scene's single writer.
func (s *Scene) advance(t float64) {
	for _, n := range s.Nodes {
		n.animate(t)
	}
	for _, st := range s.Streams {
		st.update(t)
	}
	s.Field.update(t)
}
