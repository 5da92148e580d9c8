// Package framebuffer implements the final packed-pixel image surface
// that the renderer writes into and the PNG encoder that serializes it.
package framebuffer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Buffer is a mutable width x height grid of packed 32-bit ARGB pixels,
// row-major with the origin at the top-left.
type Buffer struct {
	Width, Height int
	pixels        []uint32
}

func New(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, pixels: make([]uint32, width*height)}
}

func (b *Buffer) Set(x, y int, argb uint32) {
	b.pixels[y*b.Width+x] = argb
}

func (b *Buffer) At(x, y int) uint32 {
	return b.pixels[y*b.Width+x]
}

// PackPremul converts a straight-alpha color with components in [0, 1] to
// a premultiplied 32-bit ARGB value: A=round(a*255), R=round(r*a*255),
// G=round(g*a*255), B=round(b*a*255).
func PackPremul(r, g, b, a float32) uint32 {
	ai := round255(a)
	ri := round255(r * a)
	gi := round255(g * a)
	bi := round255(b * a)
	return uint32(ai)<<24 | uint32(ri)<<16 | uint32(gi)<<8 | uint32(bi)
}

func round255(v float32) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}

// Image converts the buffer to a standard library image for encoding.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			argb := b.At(x, y)
			a := uint8(argb >> 24)
			r := uint8(argb >> 16)
			g := uint8(argb >> 8)
			bl := uint8(argb)
			var nr, ng, nb uint8
			if a > 0 {
				nr = unpremul(r, a)
				ng = unpremul(g, a)
				nb = unpremul(bl, a)
			}
			img.SetNRGBA(x, y, color.NRGBA{R: nr, G: ng, B: nb, A: a})
		}
	}
	return img
}

func unpremul(c, a uint8) uint8 {
	v := int(c) * 255 / int(a)
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// WritePNG encodes the buffer as a PNG file at path.
func (b *Buffer) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("framebuffer: create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, b.Image()); err != nil {
		return fmt.Errorf("framebuffer: encode %s: %w", path, err)
	}
	return nil
}
