package render

import (
	"fmt"

	"github.com/flooferdoodle/gorender/framebuffer"
)

// BufferKind selects which geometry buffer channel a debug view renders.
type BufferKind int

const (
	BufferDepth BufferKind = iota
	BufferInvDepth
	BufferPosition
	BufferNormal
	BufferAlbedo
	BufferSpecular
)

var bufferSuffixes = map[BufferKind]string{
	BufferDepth:    "depth",
	BufferInvDepth: "invdepth",
	BufferPosition: "position",
	BufferNormal:   "normal",
	BufferAlbedo:   "albedo",
	BufferSpecular: "specular",
}

func (k BufferKind) Suffix() string {
	return bufferSuffixes[k]
}

// DebugView renders one channel of the most recent render's geometry
// buffer into dst, which must already be allocated at the geometry
// buffer's dimensions. Returns an error if no render has happened yet or
// dst's dimensions do not match.
func (r *Renderer) DebugView(kind BufferKind, dst *framebuffer.Buffer) error {
	if r.last == nil {
		return fmt.Errorf("render: debug view requested before any render")
	}
	if dst.Width != r.last.Width || dst.Height != r.last.Height {
		return fmt.Errorf("render: debug view buffer is %dx%d, geometry buffer is %dx%d",
			dst.Width, dst.Height, r.last.Width, r.last.Height)
	}

	near, far := float32(0), float32(1)
	if r.cam != nil {
		near, far = r.cam.Near, r.cam.Far
	}

	for y := 0; y < r.last.Height; y++ {
		for x := 0; x < r.last.Width; x++ {
			px := r.last.At(x, y)
			var rr, gg, bb float32
			switch kind {
			case BufferDepth:
				v := 1 - clamp(px.Depth, near, far)/(far-near)
				v = v * v
				rr, gg, bb = v, v, v
			case BufferInvDepth:
				v := clamp(px.InvDepth, 1/far, 1/near) / (1/near - 1/far)
				rr, gg, bb = v, v, v
			case BufferPosition:
				rr, gg, bb = clamp01(px.Position.X), clamp01(-px.Position.Y), clamp01(px.Position.Z)
			case BufferNormal:
				a := px.Normal.Abs()
				rr, gg, bb = clamp01(a.X), clamp01(a.Y), clamp01(a.Z)
			case BufferAlbedo:
				rr, gg, bb = px.Albedo.X, px.Albedo.Y, px.Albedo.Z
			case BufferSpecular:
				v := clamp(px.Specular/256, 0, 1)
				rr, gg, bb = v, v, v
			}
			dst.Set(x, y, framebuffer.PackPremul(rr, gg, bb, 1))
		}
	}
	return nil
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float32) float32 {
	return clamp(v, 0, 1)
}
