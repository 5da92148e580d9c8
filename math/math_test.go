package math

import (
	"math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	if result, expected := v1.Add(v2), NewVec3(5, 7, 9); result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}
	if result, expected := v2.Sub(v1), NewVec3(3, 3, 3); result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}
	if result, expected := v1.Mul(2), NewVec3(2, 4, 6); result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}
	if dot, expected := v1.Dot(v2), float32(32); dot != expected {
		t.Errorf("Dot: expected %v, got %v", expected, dot)
	}
	if cross := Vec3Right.Cross(Vec3Up); cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}
	if length := normalized.Length(); math.Abs(float64(length-1)) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}
}

func TestVec3Reflect(t *testing.T) {
	incident := NewVec3(1, -1, 0)
	normal := NewVec3(0, 1, 0)
	result := incident.Reflect(normal)
	expected := NewVec3(1, 1, 0)
	if result != expected {
		t.Errorf("Reflect: expected %v, got %v", expected, result)
	}
}

func TestVec2Cross(t *testing.T) {
	a := NewVec2(1, 0)
	b := NewVec2(0, 1)
	if cross := a.Cross(b); cross != 1 {
		t.Errorf("Cross: expected 1, got %v", cross)
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity[%d][%d]: expected %v, got %v", i, j, expected, m[i][j])
			}
		}
	}
}

func TestMat4Multiplication(t *testing.T) {
	m1 := Mat4Identity()
	m2 := Mat4Identity()
	result := m1.Mul(m2)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if result[i][j] != expected {
				t.Errorf("Mul: expected [%d][%d] = %v, got %v", i, j, expected, result[i][j])
			}
		}
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	if m[0][3] != 1 || m[1][3] != 2 || m[2][3] != 3 {
		t.Errorf("Translation: expected (1,2,3), got (%v,%v,%v)", m[0][3], m[1][3], m[2][3])
	}

	result := m.MulVec3(Vec3Zero)
	if result != translation {
		t.Errorf("Translation: expected %v, got %v", translation, result)
	}
}

func TestMat4RotationEulerAxisOrder(t *testing.T) {
	// Matches Mat4RotationX.Mul(Mat4RotationY).Mul(Mat4RotationZ) by construction.
	euler := NewVec3(0.3, -0.7, 1.1)
	composed := Mat4RotationEuler(euler)
	expected := Mat4RotationX(euler.X).Mul(Mat4RotationY(euler.Y)).Mul(Mat4RotationZ(euler.Z))
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(float64(composed[i][j]-expected[i][j])) > 1e-6 {
				t.Fatalf("RotationEuler mismatch at [%d][%d]: %v vs %v", i, j, composed[i][j], expected[i][j])
			}
		}
	}
}

func TestMat4RotationPreservesLength(t *testing.T) {
	v := NewVec3(1, 2, 2)
	rotated := Mat4RotationAxis(Vec3Up, float32(math.Pi/3)).MulDir(v)
	if math.Abs(float64(rotated.Length()-v.Length())) > 1e-4 {
		t.Errorf("rotation changed length: %v -> %v", v.Length(), rotated.Length())
	}
}

func TestMat4Perspective(t *testing.T) {
	fov := float32(math.Pi / 4)
	aspect := float32(16.0 / 9.0)
	near := float32(0.1)
	far := float32(100.0)

	m := Mat4Perspective(fov, aspect, near, far)

	right := float32(math.Tan(float64(fov)/2)) * near
	top := right / aspect
	want := Mat4{
		{near / right, 0, 0, 0},
		{0, near / top, 0, 0},
		{0, 0, -(far + near) / (far - near), -1},
		{0, 0, -(2 * far * near) / (far - near), 0},
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(float64(m[i][j]-want[i][j])) > 1e-6 {
				t.Errorf("Perspective[%d][%d]: expected %v, got %v", i, j, want[i][j], m[i][j])
			}
		}
	}

	// Regression check for a row/column swap between m[2][3] and m[3][2]:
	// MulVec3's perspective divide must use m[3][2]*z as w, not -z, so an
	// off-axis vertex scales by the matrix's actual w row.
	v := NewVec3(1, 0.5, -10)
	gotOffAxis := m.MulVec3(v)
	w := want[3][2]*v.Z + want[3][3]
	if w < 0 {
		w = -w
	}
	wantX := want[0][0] * v.X / w
	wantY := want[1][1] * v.Y / w
	if math.Abs(float64(gotOffAxis.X-wantX)) > 1e-5 || math.Abs(float64(gotOffAxis.Y-wantY)) > 1e-5 {
		t.Errorf("Perspective: off-axis projection expected (%v,%v), got (%v,%v)", wantX, wantY, gotOffAxis.X, gotOffAxis.Y)
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	m := Mat4Translation(NewVec3(1, 2, 3)).Mul(Mat4RotationEuler(NewVec3(0.2, 0.4, -0.1))).Mul(Mat4Scale(NewVec3(2, 1, 0.5)))
	inv := m.Inverse()
	product := m.Mul(inv)
	identity := Mat4Identity()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(float64(product[i][j]-identity[i][j])) > 1e-3 {
				t.Fatalf("Inverse round trip mismatch at [%d][%d]: %v", i, j, product[i][j])
			}
		}
	}
}

func TestMat3FromUpperLeft(t *testing.T) {
	m4 := Mat4RotationZ(float32(math.Pi / 2))
	m3 := Mat3FromMat4(m4)
	v := m3.MulVec3(NewVec3(1, 0, 0))
	if math.Abs(float64(v.X)) > 1e-5 || math.Abs(float64(v.Y-1)) > 1e-5 {
		t.Errorf("Mat3FromMat4: expected (0,1,0), got %v", v)
	}
}

func BenchmarkVec3Add(b *testing.B) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)
	for i := 0; i < b.N; i++ {
		_ = v1.Add(v2)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4Identity()
	m2 := Mat4Identity()
	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}
