package nebula

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image scaled and tinted to draw every billboard.
var whitePixel *ebiten.Image

// billboard is one screen-space quad queued for the current frame.
type billboard struct {
	x, y     float64
	size     float64
	depth    float64
	r, g, b  float32
	alpha    float32
	additive bool
}

// EbitenRenderer rasterizes the scene into an offscreen image that the host
// game blits to screen each frame. Everything is drawn as depth-sorted,
// perspective-scaled billboards of a single white pixel, tinted and
// optionally additive — glow stacks up where particles overlap.
type EbitenRenderer struct {
	buffer        *ebiten.Image
	width, height float64

	// quads is reused across frames; no per-frame allocation once warm.
	quads []billboard

	// ClearColor fills the buffer before each frame.
	ClearColor Color
}

// NewEbitenRenderer creates a renderer with a w×h offscreen buffer.
func NewEbitenRenderer(w, h int) *EbitenRenderer {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	r := &EbitenRenderer{
		ClearColor: Color{R: 0.02, G: 0.03, B: 0.06, A: 1},
	}
	r.Resize(float64(w), float64(h))
	return r
}

// Resize reallocates the offscreen buffer for the new dimensions. Applied
// immediately; the next Render draws at the new size. Dimensions are clamped
// to a 1×1 minimum.
func (r *EbitenRenderer) Resize(w, h float64) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == r.width && h == r.height && r.buffer != nil {
		return
	}
	if r.buffer != nil {
		r.buffer.Deallocate()
	}
	r.width = w
	r.height = h
	r.buffer = ebiten.NewImage(int(w), int(h))
}

// Image returns the offscreen buffer holding the last rendered frame.
func (r *EbitenRenderer) Image() *ebiten.Image {
	return r.buffer
}

// Render draws one frame of the scene from cam's point of view.
func (r *EbitenRenderer) Render(s *Scene, cam *Camera) {
	r.buffer.Fill(r.ClearColor.toRGBA())
	r.quads = r.quads[:0]

	w, h := r.width, r.height
	// Focal length for converting world sizes to on-screen pixel sizes.
	focal := (h / 2) / math.Tan(cam.FOV*math.Pi/360)

	// Ambient field: tiny dim points.
	positions := s.Field.Positions()
	colors := s.Field.Colors()
	for i := 0; i < s.Field.Count(); i++ {
		p := Vec3{
			X: float64(positions[i*3+0]),
			Y: float64(positions[i*3+1]),
			Z: float64(positions[i*3+2]),
		}
		r.queue(cam, p, w, h, focal, 0.06,
			colors[i*3+0], colors[i*3+1], colors[i*3+2], 0.5, true)
	}

	// Streams: a faint dotted arc plus the bright flow particles.
	for _, st := range s.Streams {
		cr := float32(st.From.Color.R)
		cg := float32(st.From.Color.G)
		cb := float32(st.From.Color.B)

		const arcDots = 24
		for i := 0; i <= arcDots; i++ {
			pt := st.Curve.PointAt(float64(i) / arcDots)
			r.queue(cam, pt, w, h, focal, 0.04, cr, cg, cb, 0.12, true)
		}

		fp := st.Positions()
		fa := st.Alphas()
		for i := range st.Particles() {
			p := Vec3{
				X: float64(fp[i*3+0]),
				Y: float64(fp[i*3+1]),
				Z: float64(fp[i*3+2]),
			}
			r.queue(cam, p, w, h, focal, 0.12, cr, cg, cb, fa[i], true)
		}
	}

	// Nodes: aura behind, core, wireframe shell, satellites.
	for _, n := range s.Nodes {
		cr := float32(n.Color.R)
		cg := float32(n.Color.G)
		cb := float32(n.Color.B)

		if n.Aura != nil {
			r.queue(cam, n.Position, w, h, focal,
				n.Size*2.5*n.Aura.Scale, cr, cg, cb, float32(n.Aura.Alpha), true)
		}
		r.queue(cam, n.Position, w, h, focal,
			n.Size*n.Core.Scale, cr, cg, cb, 1, false)
		r.queue(cam, n.Position, w, h, focal,
			n.Size*1.25, cr, cg, cb, 0.2, true)
		if n.Orbit != nil {
			for i := 0; i < n.Orbit.Count; i++ {
				r.queue(cam, n.SatellitePosition(i), w, h, focal,
					n.Size*0.18, cr, cg, cb, 0.9, true)
			}
		}
	}

	// Painter's order: far quads first so near ones layer over them.
	sort.Slice(r.quads, func(i, j int) bool {
		return r.quads[i].depth > r.quads[j].depth
	})

	var opts ebiten.DrawImageOptions
	for i := range r.quads {
		q := &r.quads[i]
		opts.GeoM.Reset()
		opts.GeoM.Scale(q.size, q.size)
		opts.GeoM.Translate(q.x-q.size/2, q.y-q.size/2)
		opts.ColorScale.Reset()
		opts.ColorScale.Scale(q.r*q.alpha, q.g*q.alpha, q.b*q.alpha, q.alpha)
		if q.additive {
			opts.Blend = ebiten.BlendLighter
		} else {
			opts.Blend = ebiten.BlendSourceOver
		}
		r.buffer.DrawImage(whitePixel, &opts)
	}
}

// queue projects a world point and appends its billboard, skipping points
// behind the camera or too small to matter.
func (r *EbitenRenderer) queue(cam *Camera, p Vec3, w, h, focal, worldSize float64, cr, cg, cb, alpha float32, additive bool) {
	if alpha <= 0 {
		return
	}
	x, y, depth, ok := cam.Project(p, w, h)
	if !ok {
		return
	}
	size := worldSize * focal / depth
	if size < 0.5 {
		return
	}
	r.quads = append(r.quads, billboard{
		x: x, y: y, size: size, depth: depth,
		r: cr, g: cg, b: cb, alpha: alpha, additive: additive,
	})
}

// toRGBA converts a Color to a color.RGBA with premultiplied components.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp(c.R*c.A, 0, 1) * 255),
		G: uint8(clamp(c.G*c.A, 0, 1) * 255),
		B: uint8(clamp(c.B*c.A, 0, 1) * 255),
		A: uint8(clamp(c.A, 0, 1) * 255),
	}
}
