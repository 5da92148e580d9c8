package framebuffer

import "testing"

func TestPackPremulOpaqueWhite(t *testing.T) {
	argb := PackPremul(1, 1, 1, 1)
	if argb != 0xFFFFFFFF {
		t.Errorf("expected 0xFFFFFFFF, got %#08x", argb)
	}
}

func TestPackPremulScalesColorByAlpha(t *testing.T) {
	argb := PackPremul(1, 0, 0, 0.5)
	a := uint8(argb >> 24)
	r := uint8(argb >> 16)
	if a != 128 {
		t.Errorf("expected alpha round(0.5*255)=128, got %d", a)
	}
	if r != 128 {
		t.Errorf("expected premultiplied red 128, got %d", r)
	}
}

func TestSetAndAtRoundTrip(t *testing.T) {
	b := New(4, 4)
	b.Set(2, 3, 0x11223344)
	if got := b.At(2, 3); got != 0x11223344 {
		t.Errorf("expected 0x11223344, got %#08x", got)
	}
}
