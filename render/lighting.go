package render

import (
	"math"

	"github.com/flooferdoodle/gorender/framebuffer"
	"github.com/flooferdoodle/gorender/gbuffer"
	remath "github.com/flooferdoodle/gorender/math"
	"github.com/flooferdoodle/gorender/scene"
)

// sweep walks every pixel of gb in raster order and writes the final
// shaded (or emitted) color into fb.
func sweep(fb *framebuffer.Buffer, gb *gbuffer.Buffer, s *scene.Scene) {
	camPos := s.Camera.Position()

	for y := 0; y < gb.Height; y++ {
		for x := 0; x < gb.Width; x++ {
			px := gb.At(x, y)
			if math.IsInf(float64(px.Depth), 1) {
				continue // background; framebuffer already zero
			}

			if px.Specular < 0 {
				fb.Set(x, y, framebuffer.PackPremul(px.Albedo.X, px.Albedo.Y, px.Albedo.Z, 1))
				continue
			}

			color := shade(px, camPos, s.Lights)
			color = color.Clamp01()
			fb.Set(x, y, framebuffer.PackPremul(color.X, color.Y, color.Z, 1))
		}
	}
}

// shade accumulates Blinn-Phong contributions from every light within its
// effective radius. The light's ambient strength is folded into each
// light's own term, so multiple lights raise the ambient floor together.
func shade(px gbuffer.Pixel, camPos remath.Vec3, lights []*scene.Light) remath.Vec3 {
	var out remath.Vec3
	normal := px.Normal.Normalize()
	viewDir := camPos.Sub(px.Position).Normalize()

	for _, l := range lights {
		toLight := l.Position.Sub(px.Position)
		d := toLight.Length()
		if d > l.EffectiveRadius() {
			continue
		}
		lightDir := toLight.Div(d)

		atten := l.Attenuate(d)
		diffuse := maxF(0, normal.Dot(lightDir))

		half := lightDir.Add(viewDir).Normalize()
		spec := float32(math.Pow(float64(maxF(0, normal.Dot(half))), float64(px.Specular)))

		term := (l.Ambient + diffuse + spec) * atten
		out = out.Add(l.Color.MulVec(px.Albedo).Mul(term))
	}
	return out
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
