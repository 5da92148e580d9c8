package math

import "math"

// Mat4 is a row-major 4x4 matrix. Mat4.MulVec3 treats vectors as column
// vectors: p' = M * p.
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Mat4Zero() Mat4 {
	return Mat4{}
}

func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[i][k] * other[k][j]
			}
			result[i][j] = sum
		}
	}
	return result
}

// MulVec4 applies the matrix to a homogeneous column vector: M * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// MulVec3 treats v as homogeneous with w=1, multiplies, divides x/y/z by
// |w|, and drops w. This is the convention used throughout projection.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	r := m.MulVec4(v.ToVec4(1))
	w := r.W
	if w < 0 {
		w = -w
	}
	if w == 0 {
		return Vec3{X: r.X, Y: r.Y, Z: r.Z}
	}
	return Vec3{X: r.X / w, Y: r.Y / w, Z: r.Z / w}
}

// MulDir applies only the linear (3x3 upper-left) part of the matrix,
// ignoring translation. Used for transforming directions/normals.
func (m Mat4) MulDir(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		{m[0][0], m[1][0], m[2][0], m[3][0]},
		{m[0][1], m[1][1], m[2][1], m[3][1]},
		{m[0][2], m[1][2], m[2][2], m[3][2]},
		{m[0][3], m[1][3], m[2][3], m[3][3]},
	}
}

// ZeroTranslation clears the fourth column, leaving only the linear part.
func (m Mat4) ZeroTranslation() Mat4 {
	out := m
	out[0][3] = 0
	out[1][3] = 0
	out[2][3] = 0
	return out
}

func Mat4Translation(t Vec3) Mat4 {
	m := Mat4Identity()
	m[0][3] = t.X
	m[1][3] = t.Y
	m[2][3] = t.Z
	return m
}

func Mat4Scale(scale Vec3) Mat4 {
	m := Mat4Identity()
	m[0][0] = scale.X
	m[1][1] = scale.Y
	m[2][2] = scale.Z
	return m
}

func Mat4RotationX(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationY(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationZ(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat4RotationAxis builds a rotation matrix around an arbitrary unit axis
// using Rodrigues' formula.
func Mat4RotationAxis(axis Vec3, angle float32) Mat4 {
	axis = axis.Normalize()
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y, 0},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x, 0},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c, 0},
		{0, 0, 0, 1},
	}
}

// Mat4RotationEuler composes RotateX * RotateY * RotateZ, applied to a
// column vector as rotateX(rotateY(rotateZ(v))).
func Mat4RotationEuler(euler Vec3) Mat4 {
	return Mat4RotationX(euler.X).Mul(Mat4RotationY(euler.Y)).Mul(Mat4RotationZ(euler.Z))
}

// Mat4Perspective builds a right-handed perspective projection matrix from
// fov (radians), with right = tan(fov/2)*near and top = right/aspect.
func Mat4Perspective(fov, aspect, near, far float32) Mat4 {
	right := float32(math.Tan(float64(fov)/2)) * near
	top := right / aspect

	m := Mat4Zero()
	m[0][0] = near / right
	m[1][1] = near / top
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = -1
	m[3][2] = -(2 * far * near) / (far - near)
	return m
}

func Mat4TRS(translation, euler, scale Vec3) Mat4 {
	return Mat4Translation(translation).Mul(Mat4RotationEuler(euler)).Mul(Mat4Scale(scale))
}

// Inverse computes the general 4x4 matrix inverse by Gauss-Jordan
// elimination on [m | I]. Returns the identity matrix if m is singular.
func (m Mat4) Inverse() Mat4 {
	var aug [4][8]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			aug[i][j] = float64(m[i][j])
		}
		aug[i][4+i] = 1
	}

	for col := 0; col < 4; col++ {
		pivot := col
		best := math.Abs(aug[col][col])
		for r := col + 1; r < 4; r++ {
			if v := math.Abs(aug[r][col]); v > best {
				pivot, best = r, v
			}
		}
		if best < 1e-12 {
			return Mat4Identity()
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		inv := 1 / aug[col][col]
		for k := 0; k < 8; k++ {
			aug[col][k] *= inv
		}
		for r := 0; r < 4; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			for k := 0; k < 8; k++ {
				aug[r][k] -= factor * aug[col][k]
			}
		}
	}

	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = float32(aug[i][4+j])
		}
	}
	return out
}
