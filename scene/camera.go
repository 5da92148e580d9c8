// Package scene holds the passive data model consumed by the projector:
// cameras, meshes, lights, and the scene bundle that groups them.
package scene

import (
	remath "github.com/flooferdoodle/gorender/math"
)

// Camera owns a view matrix built from an orientation matrix and an
// inverse-translation matrix, plus a perspective projection matrix.
// Right/up/dir are derived on read from the orientation matrix rather
// than stored as vectors aliased against it.
type Camera struct {
	position    remath.Vec3
	orientation remath.Mat4
	invTrans    remath.Mat4

	FOV    float32 // radians
	Aspect float32
	Near   float32
	Far    float32
}

func NewCamera(pos, target, up remath.Vec3, fov, aspect, near, far float32) *Camera {
	c := &Camera{FOV: fov, Aspect: aspect, Near: near, Far: far}
	c.LookAt(pos, target, up)
	return c
}

// LookAt rebuilds the orientation matrix so dir points from target to pos
// (away from the target), forming a right-handed camera basis.
func (c *Camera) LookAt(pos, target, up remath.Vec3) {
	dir := pos.Sub(target).Normalize()
	right := up.Cross(dir).Normalize()
	realUp := dir.Cross(right)

	c.position = pos
	c.orientation = remath.Mat4{
		{right.X, right.Y, right.Z, 0},
		{realUp.X, realUp.Y, realUp.Z, 0},
		{dir.X, dir.Y, dir.Z, 0},
		{0, 0, 0, 1},
	}
	c.invTrans = remath.Mat4Translation(pos.Negate())
}

func (c *Camera) Position() remath.Vec3 { return c.position }

// Right, Up, and Dir read the camera's local axes from the orientation
// matrix's rows.
func (c *Camera) Right() remath.Vec3 {
	return remath.Vec3{X: c.orientation[0][0], Y: c.orientation[0][1], Z: c.orientation[0][2]}
}

func (c *Camera) Up() remath.Vec3 {
	return remath.Vec3{X: c.orientation[1][0], Y: c.orientation[1][1], Z: c.orientation[1][2]}
}

func (c *Camera) Dir() remath.Vec3 {
	return remath.Vec3{X: c.orientation[2][0], Y: c.orientation[2][1], Z: c.orientation[2][2]}
}

func (c *Camera) Translate(delta remath.Vec3) {
	c.position = c.position.Add(delta)
	c.invTrans = remath.Mat4Translation(c.position.Negate())
}

func (c *Camera) Rotate(axis remath.Vec3, angleRad float32) {
	c.orientation = c.orientation.Mul(remath.Mat4RotationAxis(axis, angleRad))
}

// ViewMatrix returns orientation * inverse_translation.
func (c *Camera) ViewMatrix() remath.Mat4 {
	return c.orientation.Mul(c.invTrans)
}

// ProjectionMatrix builds the perspective matrix from fov/aspect/near/far.
func (c *Camera) ProjectionMatrix() remath.Mat4 {
	return remath.Mat4Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

func (c *Camera) ViewProjectionMatrix() remath.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}
