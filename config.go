package nebula

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// NodeConfig declares one visual node in a scene definition.
type NodeConfig struct {
	Name     string     `yaml:"name"`
	Role     string     `yaml:"role"` // source | core | output
	Position [3]float64 `yaml:"position"`
	Color    string     `yaml:"color"` // #rrggbb
	Size     float64    `yaml:"size"`
	Glow     bool       `yaml:"glow"`
	Orbit    bool       `yaml:"orbit"`
}

// WaypointConfig declares one camera waypoint.
type WaypointConfig struct {
	Section  string     `yaml:"section"`
	Position [3]float64 `yaml:"position"`
	LookAt   [3]float64 `yaml:"look_at"`
}

// Config is a declarative scene definition, loadable from YAML.
type Config struct {
	Nodes     []NodeConfig     `yaml:"nodes"`
	Links     [][2]int         `yaml:"links"` // [source index, destination index]
	Waypoints []WaypointConfig `yaml:"waypoints"`

	// FlowParticles is the particle count per stream. Zero means the default.
	FlowParticles int `yaml:"flow_particles"`
	// StreamLift is how far stream arcs bow above the chord, in world units.
	StreamLift float64 `yaml:"stream_lift"`

	FieldCount  int      `yaml:"field_count"`
	FieldSpread float64  `yaml:"field_spread"`
	Palette     []string `yaml:"palette"` // #rrggbb entries for field points
}

// LoadConfig parses a YAML scene definition and validates it.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse scene config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that roles and colors parse and that the scene has at
// least one node. Link indices are NOT validated here: a bad link is skipped
// at build time so one typo cannot take down the whole scene.
func (c Config) Validate() error {
	if len(c.Nodes) == 0 {
		return fmt.Errorf("scene config: no nodes")
	}
	for i, nc := range c.Nodes {
		if _, err := parseRole(nc.Role); err != nil {
			return fmt.Errorf("scene config: node %d (%s): %w", i, nc.Name, err)
		}
		if _, err := parseHexColor(nc.Color); err != nil {
			return fmt.Errorf("scene config: node %d (%s): %w", i, nc.Name, err)
		}
	}
	for i, p := range c.Palette {
		if _, err := parseHexColor(p); err != nil {
			return fmt.Errorf("scene config: palette entry %d: %w", i, err)
		}
	}
	return nil
}

// parseRole maps a config role string to a Role. An empty string defaults
// to source.
func parseRole(s string) (Role, error) {
	switch s {
	case "", "source":
		return RoleSource, nil
	case "core":
		return RoleCore, nil
	case "output":
		return RoleOutput, nil
	default:
		return RoleSource, fmt.Errorf("unknown role %q", s)
	}
}

// parseHexColor parses a #rrggbb string. Empty defaults to white.
func parseHexColor(s string) (Color, error) {
	if s == "" {
		return ColorWhite, nil
	}
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("bad color %q: want #rrggbb", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}, nil
}

// vec3FromArray converts a YAML [x, y, z] triple.
func vec3FromArray(a [3]float64) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

// DefaultConfig returns the built-in industrial data pipeline layout: seven
// nodes from sensor sources through a central historian out to reporting,
// and a five-stop camera journey across them.
func DefaultConfig() Config {
	return Config{
		Nodes: []NodeConfig{
			{Name: "SENSORS", Role: "source", Position: [3]float64{-9, 3, -2}, Color: "#4fc3f7", Size: 0.8},
			{Name: "PLCs", Role: "source", Position: [3]float64{-9, 0, 0}, Color: "#4dd0e1", Size: 0.8},
			{Name: "SCADA", Role: "source", Position: [3]float64{-9, -3, -1}, Color: "#4db6ac", Size: 0.8},
			{Name: "HISTORIAN", Role: "core", Position: [3]float64{0, 0, 0}, Color: "#ffb74d", Size: 1.4, Glow: true, Orbit: true},
			{Name: "AI/ML", Role: "output", Position: [3]float64{9, 3, -1}, Color: "#ba68c8", Size: 1.0, Glow: true},
			{Name: "DASHBOARD", Role: "output", Position: [3]float64{9, 0, 1}, Color: "#81c784", Size: 0.9},
			{Name: "REPORTS", Role: "output", Position: [3]float64{9, -3, 0}, Color: "#e57373", Size: 0.9},
		},
		Links: [][2]int{
			{0, 3}, {1, 3}, {2, 3},
			{3, 4}, {3, 5}, {3, 6},
		},
		Waypoints: []WaypointConfig{
			{Section: "hero", Position: [3]float64{0, 2, 20}, LookAt: [3]float64{0, 0, 0}},
			{Section: "sources", Position: [3]float64{-10, 3, 12}, LookAt: [3]float64{-9, 0, 0}},
			{Section: "historian", Position: [3]float64{0, 5, 9}, LookAt: [3]float64{0, 0, 0}},
			{Section: "outputs", Position: [3]float64{10, 2, 12}, LookAt: [3]float64{9, 0, 0}},
			{Section: "contact", Position: [3]float64{0, 8, 24}, LookAt: [3]float64{0, 0, 0}},
		},
		FlowParticles: 10,
		StreamLift:    2.0,
		FieldCount:    400,
		FieldSpread:   40,
		Palette:       []string{"#4fc3f7", "#ba68c8", "#ffb74d", "#ffffff"},
	}
}
