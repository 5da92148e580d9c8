package render

import (
	"math"
	"testing"

	remath "github.com/flooferdoodle/gorender/math"
	"github.com/flooferdoodle/gorender/scene"
)

func newTestCamera(pos, target remath.Vec3) *scene.Camera {
	return scene.NewCamera(pos, target, remath.Vec3Up, float32(math.Pi)/2, 1, 0.1, 100)
}

func TestRenderEmptySceneIsBackground(t *testing.T) {
	s := scene.NewScene(newTestCamera(remath.NewVec3(0, 0, 3), remath.Vec3Zero))
	fb, stats, err := New().Render(s, 4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Meshes != 0 || stats.TrianglesTotal != 0 {
		t.Errorf("expected zero meshes/triangles, got %+v", stats)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := fb.At(x, y); got != 0 {
				t.Errorf("expected background pixel 0 at (%d,%d), got %#08x", x, y, got)
			}
		}
	}
}

func TestRenderDepthOrderIndependentOfSubmission(t *testing.T) {
	camera := newTestCamera(remath.NewVec3(0, 0, 5), remath.Vec3Zero)

	red := scene.NewCube()
	red.Translation = remath.NewVec3(0, 0, -3)
	red.Colors = uniformColor(red, remath.NewVec4(1, 0, 0, 1))

	blue := scene.NewCube()
	blue.Translation = remath.NewVec3(0, 0, -5)
	blue.Colors = uniformColor(blue, remath.NewVec4(0, 0, 1, 1))

	light := scene.NewLight(remath.NewVec3(0, 0, 5), remath.NewVec3(1, 1, 1), 1, 0, 1, 0, 0)

	order1 := scene.NewScene(camera)
	order1.AddMesh(blue)
	order1.AddMesh(red)
	order1.AddLight(light)

	order2 := scene.NewScene(camera)
	order2.AddMesh(red)
	order2.AddMesh(blue)
	order2.AddLight(light)

	fb1, _, err := New().Render(order1, 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	fb2, _, err := New().Render(order2, 16, 16)
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if fb1.At(x, y) != fb2.At(x, y) {
				t.Fatalf("pixel (%d,%d) differs by submission order: %#08x vs %#08x", x, y, fb1.At(x, y), fb2.At(x, y))
			}
		}
	}
}

func TestRenderBackfaceCullingDropsReversedMesh(t *testing.T) {
	camera := newTestCamera(remath.NewVec3(0, 0, 3), remath.Vec3Zero)
	tet := reversedTetrahedron()

	s := scene.NewScene(camera)
	s.AddMesh(tet)

	_, stats, err := New().Render(s, 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TrianglesTotal != 4 {
		t.Fatalf("expected 4 triangles total, got %d", stats.TrianglesTotal)
	}
	if stats.TrianglesDrawn != 0 {
		t.Errorf("expected 0 triangles drawn after reversing winding, got %d", stats.TrianglesDrawn)
	}
}

func TestRenderEmitterBypassesLighting(t *testing.T) {
	camera := newTestCamera(remath.NewVec3(0, 0, 3), remath.Vec3Zero)
	glow := scene.NewIcosphere(1)
	glow.Shininess = -1
	glow.Colors = uniformColor(glow, remath.NewVec4(1, 0, 0, 1))

	s := scene.NewScene(camera)
	s.AddMesh(glow)

	fb, _, err := New().Render(s, 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	center := fb.At(8, 8)
	if center != 0xFFFF0000 {
		t.Errorf("expected opaque red emitter pixel 0xFFFF0000, got %#08x", center)
	}
}

func uniformColor(m *scene.Mesh, c remath.Vec4) []remath.Vec4 {
	colors := make([]remath.Vec4, len(m.Positions))
	for i := range colors {
		colors[i] = c
	}
	return colors
}

func reversedTetrahedron() *scene.Mesh {
	positions := []remath.Vec3{
		{X: 0, Y: 0.5, Z: 0},
		{X: -0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: -0.5, Z: 0.5},
		{X: 0, Y: -0.5, Z: -0.5},
	}
	// Deliberately reversed winding on every face.
	indices := []int{
		0, 2, 1,
		0, 3, 2,
		0, 1, 3,
		1, 2, 3,
	}
	return scene.NewMesh("tet", positions, indices)
}
