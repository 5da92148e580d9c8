package scene

import (
	"fmt"

	remath "github.com/flooferdoodle/gorender/math"
)

// Mesh is an indexed triangle list in local space, with an independent
// model transform and optional per-vertex attributes. A negative
// Shininess marks the mesh as an emitter: it bypasses lighting and
// writes its albedo directly.
type Mesh struct {
	Name string

	Positions []remath.Vec3
	Indices   []int // triples; each triple is one CCW (local-space) triangle

	// Normals is nil for flat shading (face normals computed per
	// triangle) or one entry per vertex for smooth shading.
	Normals []remath.Vec3
	// Colors is nil to default to opaque white, or one entry per vertex.
	Colors []remath.Vec4

	Shininess float32

	Translation remath.Vec3
	Euler       remath.Vec3
	Scale       remath.Vec3
}

func NewMesh(name string, positions []remath.Vec3, indices []int) *Mesh {
	return &Mesh{
		Name:      name,
		Positions: positions,
		Indices:   indices,
		Shininess: 64,
		Scale:     remath.Vec3One,
	}
}

// IsEmitter reports whether this mesh bypasses lighting.
func (m *Mesh) IsEmitter() bool {
	return m.Shininess < 0
}

// IsSmooth reports whether the mesh carries per-vertex normals.
func (m *Mesh) IsSmooth() bool {
	return len(m.Normals) > 0
}

// ColorAt returns the albedo color for vertex i, defaulting to opaque
// white when the mesh has no per-vertex colors.
func (m *Mesh) ColorAt(i int) remath.Vec4 {
	if len(m.Colors) == 0 {
		return remath.Vec4{X: 1, Y: 1, Z: 1, W: 1}
	}
	return m.Colors[i]
}

// ModelMatrix composes translate(pos) * rotateEuler(euler) * scale(scale).
func (m *Mesh) ModelMatrix() remath.Mat4 {
	scale := m.Scale
	if scale == (remath.Vec3{}) {
		scale = remath.Vec3One
	}
	return remath.Mat4TRS(m.Translation, m.Euler, scale)
}

// Validate checks the structural invariants a Mesh must satisfy before it
// can be rendered.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh %q: index count %d is not a multiple of 3", m.Name, len(m.Indices))
	}
	for _, idx := range m.Indices {
		if idx < 0 || idx >= len(m.Positions) {
			return fmt.Errorf("mesh %q: index %d out of range for %d positions", m.Name, idx, len(m.Positions))
		}
	}
	if len(m.Colors) != 0 && len(m.Colors) != len(m.Positions) {
		return fmt.Errorf("mesh %q: colors length %d does not match positions length %d", m.Name, len(m.Colors), len(m.Positions))
	}
	if len(m.Normals) != 0 && len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("mesh %q: normals length %d does not match positions length %d", m.Name, len(m.Normals), len(m.Positions))
	}
	return nil
}

// TriangleCount returns the number of triangles described by Indices.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
