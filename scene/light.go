package scene

import (
	"math"

	remath "github.com/flooferdoodle/gorender/math"
)

// Light is a point light with quadratic attenuation and a derived
// effective radius beyond which its contribution is treated as zero.
type Light struct {
	Position remath.Vec3
	Color    remath.Vec3

	Ambient  float32
	Specular float32

	ConstantAtten  float32
	LinearAtten    float32
	QuadraticAtten float32

	effectiveRadius float32
}

func NewLight(pos, color remath.Vec3, ambient, specular, kc, kl, kq float32) *Light {
	l := &Light{
		Position:       pos,
		Color:          color,
		Ambient:        ambient,
		Specular:       specular,
		ConstantAtten:  kc,
		LinearAtten:    kl,
		QuadraticAtten: kq,
	}
	l.effectiveRadius = l.computeEffectiveRadius()
	return l
}

// EffectiveRadius is the positive root of
// K_q*d^2 + K_l*d + (K_c - 51.2*max(r,g,b)) = 0.
func (l *Light) EffectiveRadius() float32 {
	return l.effectiveRadius
}

func (l *Light) computeEffectiveRadius() float32 {
	lightMax := l.Color.X
	if l.Color.Y > lightMax {
		lightMax = l.Color.Y
	}
	if l.Color.Z > lightMax {
		lightMax = l.Color.Z
	}

	if l.QuadraticAtten == 0 {
		if l.LinearAtten == 0 {
			return float32(math.Inf(1))
		}
		c := l.ConstantAtten - 51.2*lightMax
		return -c / l.LinearAtten
	}

	kl, kq := l.LinearAtten, l.QuadraticAtten
	c := l.ConstantAtten - 51.2*lightMax
	disc := kl*kl - 4*kq*c
	if disc < 0 {
		return 0
	}
	return (-kl + float32(math.Sqrt(float64(disc)))) / (2 * kq)
}

// Attenuate returns the multiplicative falloff at distance d.
func (l *Light) Attenuate(d float32) float32 {
	denom := l.ConstantAtten + l.LinearAtten*d + l.QuadraticAtten*d*d
	if denom <= 0 {
		return 0
	}
	return 1 / denom
}
