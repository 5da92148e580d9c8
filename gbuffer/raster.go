package gbuffer

import (
	"math"

	remath "github.com/flooferdoodle/gorender/math"
)

// Triangle carries everything the rasterizer needs for one screen-space
// triangle: pixel-space vertex positions, camera-space positions and
// normals, per-vertex albedo, and a shared shininess.
type Triangle struct {
	Screen     [3]remath.Vec2
	CamPos     [3]remath.Vec3
	CamNormal  [3]remath.Vec3
	Color      [3]remath.Vec4
	Shininess  float32
}

// DrawTriangle rasterizes t into b using Pineda's edge-function method.
// Depth is tested via perspective-correct inverse-z; color and normal are
// interpolated linearly in screen space, not perspective-corrected. On a
// strict tie the incumbent pixel wins. Returns true if any pixel was
// written.
func (b *Buffer) DrawTriangle(t Triangle) bool {
	a0, a1, a2 := t.Screen[0], t.Screen[1], t.Screen[2]

	area := edge(a0, a1, a2)
	if area == 0 {
		return false
	}
	// Triangles reach here with either winding depending on caller, so the
	// inside test compares each edge's sign against area's sign rather than
	// assuming a fixed winding.
	sign := float32(1)
	if area < 0 {
		sign = -1
	}
	area *= sign

	minX := clampInt(floorPlusHalf(minOf3(a0.X, a1.X, a2.X)), 0, b.Width)
	maxX := clampInt(floorPlusHalf(maxOf3(a0.X, a1.X, a2.X)), 0, b.Width)
	minY := clampInt(floorPlusHalf(minOf3(a0.Y, a1.Y, a2.Y)), 0, b.Height)
	maxY := clampInt(floorPlusHalf(maxOf3(a0.Y, a1.Y, a2.Y)), 0, b.Height)

	invZ := [3]float32{
		-1 / t.CamPos[0].Z,
		-1 / t.CamPos[1].Z,
		-1 / t.CamPos[2].Z,
	}

	drewAny := false
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			p := remath.Vec2{X: float32(x) + 0.5, Y: float32(y) + 0.5}

			e0 := edge(a1, a2, p) * sign
			e1 := edge(a2, a0, p) * sign
			e2 := edge(a0, a1, p) * sign
			if e0 < 0 || e1 < 0 || e2 < 0 {
				continue
			}

			w0 := e0 / area
			w1 := e1 / area
			w2 := e2 / area

			pixelInvZ := w0*invZ[0] + w1*invZ[1] + w2*invZ[2]

			idx := b.index(x, y)
			if pixelInvZ <= b.pixels[idx].InvDepth {
				continue
			}

			pos := t.CamPos[0].Mul(w0).Add(t.CamPos[1].Mul(w1)).Add(t.CamPos[2].Mul(w2))
			normal := t.CamNormal[0].Mul(w0).Add(t.CamNormal[1].Mul(w1)).Add(t.CamNormal[2].Mul(w2))
			color := t.Color[0].Mul(w0).Add(t.Color[1].Mul(w1)).Add(t.Color[2].Mul(w2))

			b.pixels[idx] = Pixel{
				Depth:    1 / pixelInvZ,
				InvDepth: pixelInvZ,
				Position: pos,
				Normal:   normal,
				Albedo:   color.RGB(),
				Specular: t.Shininess,
			}
			drewAny = true
		}
	}
	return drewAny
}

// edge computes the signed area of the parallelogram spanned by (b-a) and
// (p-a); its sign indicates which side of the directed edge a->b the
// point p lies on.
func edge(a, b, p remath.Vec2) float32 {
	return (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
}

func minOf3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxOf3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func floorPlusHalf(v float32) int {
	return int(math.Floor(float64(v) + 0.5))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
