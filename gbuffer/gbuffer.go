// Package gbuffer implements the geometry buffer and the triangle
// rasterizer that fills it.
package gbuffer

import (
	"math"

	remath "github.com/flooferdoodle/gorender/math"
)

// Pixel is one entry of the geometry buffer: the surface attributes
// visible at a screen pixel after the closest triangle has won the depth
// test.
type Pixel struct {
	Depth    float32 // camera-space |z|, +Inf where nothing was drawn
	InvDepth float32 // 1/Depth, 0 where nothing was drawn
	Position remath.Vec3
	Normal   remath.Vec3
	Albedo   remath.Vec3
	Specular float32 // shininess; negative marks an emitter
}

// Buffer is a fixed-size screen-aligned grid of Pixel, indexed [y][x].
type Buffer struct {
	Width, Height int
	pixels        []Pixel
}

// New allocates a Buffer with depth +Inf and inv-depth 0 everywhere, so
// that the first triangle to cover any pixel always passes the depth
// test.
func New(width, height int) *Buffer {
	b := &Buffer{Width: width, Height: height, pixels: make([]Pixel, width*height)}
	for i := range b.pixels {
		b.pixels[i].Depth = float32(math.Inf(1))
	}
	return b
}

func (b *Buffer) index(x, y int) int { return y*b.Width + x }

func (b *Buffer) At(x, y int) Pixel {
	return b.pixels[b.index(x, y)]
}

func (b *Buffer) set(x, y int, p Pixel) {
	b.pixels[b.index(x, y)] = p
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}
