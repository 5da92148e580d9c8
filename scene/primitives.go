package scene

import remath "github.com/flooferdoodle/gorender/math"

// NewCube returns a flat-shaded unit cube centered at the origin, with
// each face as two triangles wound counter-clockwise in local space.
func NewCube() *Mesh {
	positions := []remath.Vec3{
		{X: -0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5}, // +Z
		{X: 0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: -0.5}, // -Z
		{X: -0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: -0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: -0.5}, // -X
		{X: 0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, // +X
		{X: -0.5, Y: 0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5}, // +Y
		{X: -0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: 0.5}, {X: -0.5, Y: -0.5, Z: 0.5}, // -Y
	}
	var indices []int
	for face := 0; face < 6; face++ {
		b := face * 4
		indices = append(indices, b, b+1, b+2, b, b+2, b+3)
	}
	m := NewMesh("cube", positions, indices)
	return m
}

// NewPlane returns a flat-shaded unit quad in the XZ plane facing +Y.
func NewPlane() *Mesh {
	positions := []remath.Vec3{
		{X: -0.5, Y: 0, Z: -0.5},
		{X: 0.5, Y: 0, Z: -0.5},
		{X: 0.5, Y: 0, Z: 0.5},
		{X: -0.5, Y: 0, Z: 0.5},
	}
	indices := []int{0, 1, 2, 0, 2, 3}
	return NewMesh("plane", positions, indices)
}

// icosahedronTemplate returns the 12 vertices and 20 triangles of a
// regular icosahedron inscribed in a sphere of radius 0.5.
func icosahedronTemplate() ([]remath.Vec3, []int) {
	const t = 1.618033988749895 // golden ratio
	raw := []remath.Vec3{
		{X: -1, Y: t, Z: 0}, {X: 1, Y: t, Z: 0}, {X: -1, Y: -t, Z: 0}, {X: 1, Y: -t, Z: 0},
		{X: 0, Y: -1, Z: t}, {X: 0, Y: 1, Z: t}, {X: 0, Y: -1, Z: -t}, {X: 0, Y: 1, Z: -t},
		{X: t, Y: 0, Z: -1}, {X: t, Y: 0, Z: 1}, {X: -t, Y: 0, Z: -1}, {X: -t, Y: 0, Z: 1},
	}
	positions := make([]remath.Vec3, len(raw))
	for i, v := range raw {
		positions[i] = v.Normalize().Mul(0.5)
	}
	indices := []int{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}
	return positions, indices
}

// NewIcosahedron returns a flat-shaded icosahedron inscribed in a sphere
// of radius 0.5.
func NewIcosahedron() *Mesh {
	positions, indices := icosahedronTemplate()
	return NewMesh("icosahedron", positions, indices)
}

// NewIcosphere returns a smooth-shaded icosphere built by recursively
// subdividing an icosahedron's faces and projecting new vertices onto the
// sphere of radius 0.5. subdivisions is clamped to [0, 5].
func NewIcosphere(subdivisions int) *Mesh {
	if subdivisions < 0 {
		subdivisions = 0
	}
	if subdivisions > 5 {
		subdivisions = 5
	}

	positions, indices := icosahedronTemplate()
	for i := range positions {
		positions[i] = positions[i].Normalize().Mul(0.5)
	}

	midpointCache := map[[2]int]int{}
	midpoint := func(a, b int) int {
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if idx, ok := midpointCache[key]; ok {
			return idx
		}
		mid := positions[a].Add(positions[b]).Mul(0.5).Normalize().Mul(0.5)
		positions = append(positions, mid)
		idx := len(positions) - 1
		midpointCache[key] = idx
		return idx
	}

	for s := 0; s < subdivisions; s++ {
		var next []int
		for i := 0; i < len(indices); i += 3 {
			a, b, c := indices[i], indices[i+1], indices[i+2]
			ab := midpoint(a, b)
			bc := midpoint(b, c)
			ca := midpoint(c, a)
			next = append(next,
				a, ab, ca,
				b, bc, ab,
				c, ca, bc,
				ab, bc, ca,
			)
		}
		indices = next
	}

	normals := make([]remath.Vec3, len(positions))
	for i, p := range positions {
		normals[i] = p.Normalize()
	}

	m := NewMesh("icosphere", positions, indices)
	m.Normals = normals
	return m
}
