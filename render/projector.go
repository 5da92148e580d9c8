// Package render implements the projector: the per-mesh transform,
// backface-cull, and rasterize pipeline, the deferred Blinn-Phong
// lighting sweep, and the debug buffer visualizers.
package render

import (
	"fmt"
	"time"

	"github.com/flooferdoodle/gorender/framebuffer"
	"github.com/flooferdoodle/gorender/gbuffer"
	remath "github.com/flooferdoodle/gorender/math"
	"github.com/flooferdoodle/gorender/scene"
)

// Statistics summarizes one render call.
type Statistics struct {
	Meshes         int
	TrianglesTotal int
	TrianglesDrawn int
	Lights         int
	Elapsed        time.Duration
}

// Renderer owns the geometry buffer produced by the most recent render,
// which the debug visualizers read from.
type Renderer struct {
	last *gbuffer.Buffer
	cam  *scene.Camera
}

func New() *Renderer {
	return &Renderer{}
}

// Render executes the full pipeline: transform/project/cull/rasterize
// every mesh into a fresh geometry buffer, then sweep it into a shaded
// framebuffer. Meshes and triangles are processed in scene order; the
// lighting sweep walks pixels in raster order. Returns an error only if
// the scene fails validation.
func (r *Renderer) Render(s *scene.Scene, width, height int) (*framebuffer.Buffer, Statistics, error) {
	start := time.Now()

	if err := s.Validate(); err != nil {
		return nil, Statistics{}, fmt.Errorf("render: %w", err)
	}

	gb := gbuffer.New(width, height)
	stats := Statistics{Meshes: len(s.Meshes), Lights: len(s.Lights)}

	view := s.Camera.ViewMatrix()
	proj := s.Camera.ProjectionMatrix()
	viewProj := proj.Mul(view)

	for _, m := range s.Meshes {
		total, drawn := projectMesh(gb, m, view, viewProj, width, height)
		stats.TrianglesTotal += total
		stats.TrianglesDrawn += drawn
	}

	fb := framebuffer.New(width, height)
	sweep(fb, gb, s)

	r.last = gb
	r.cam = s.Camera
	stats.Elapsed = time.Since(start)
	return fb, stats, nil
}

// projectMesh transforms, culls, and rasterizes one mesh's triangles into
// gb. Returns (triangles considered, triangles drawn after culling).
func projectMesh(gb *gbuffer.Buffer, m *scene.Mesh, view, viewProj remath.Mat4, width, height int) (int, int) {
	model := m.ModelMatrix()
	modelViewProj := viewProj.Mul(model)
	localToCam := view.Mul(model)
	normalTransform := model.Inverse().Transpose().ZeroTranslation()

	triCount := m.TriangleCount()
	screen := make([]remath.Vec2, len(m.Positions))
	camPos := make([]remath.Vec3, len(m.Positions))
	for i, p := range m.Positions {
		proj := modelViewProj.MulVec3(p)
		screen[i] = remath.Vec2{
			X: (proj.X + 0.5) * float32(width),
			Y: (proj.Y + 0.5) * float32(height),
		}
		camPos[i] = localToCam.MulVec3(p)
	}

	drawn := 0
	for t := 0; t < triCount; t++ {
		ia, ib, ic := m.Indices[t*3], m.Indices[t*3+1], m.Indices[t*3+2]
		sa, sb, sc := screen[ia], screen[ib], screen[ic]

		wind := sb.Sub(sa).Cross(sc.Sub(sa))
		if wind >= 0 {
			continue // keep only clockwise-winding triangles in screen space
		}

		var normals [3]remath.Vec3
		if m.IsSmooth() {
			normals[0] = normalTransform.MulDir(m.Normals[ia]).Normalize()
			normals[1] = normalTransform.MulDir(m.Normals[ib]).Normalize()
			normals[2] = normalTransform.MulDir(m.Normals[ic]).Normalize()
		} else {
			face := normalTransform.MulDir(
				m.Positions[ic].Sub(m.Positions[ia]).Cross(m.Positions[ib].Sub(m.Positions[ia])),
			).Normalize()
			normals[0], normals[1], normals[2] = face, face, face
		}

		tri := gbuffer.Triangle{
			Screen:    [3]remath.Vec2{sa, sb, sc},
			CamPos:    [3]remath.Vec3{camPos[ia], camPos[ib], camPos[ic]},
			CamNormal: normals,
			Color:     [3]remath.Vec4{m.ColorAt(ia), m.ColorAt(ib), m.ColorAt(ic)},
			Shininess: m.Shininess,
		}
		if gb.DrawTriangle(tri) {
			drawn++
		}
	}
	return triCount, drawn
}
