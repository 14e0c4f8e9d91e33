package placement

import (
	"fmt"
	"math"
)

// Color is a resolved sRGB color. Part generators never see HSL; the assembly
// engine resolves palette rolls into Colors before delegating.
type Color struct {
	R, G, B uint8
}

// FromHSL converts hue/saturation/lightness (each in [0,1], hue wrapping) to
// sRGB. Conversion is done in float64 so the same rolls resolve to the same
// hex color everywhere.
func FromHSL(h, s, l float64) Color {
	h = h - math.Floor(h)
	if s == 0 {
		v := channel(l)
		return Color{R: v, G: v, B: v}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return Color{
		R: channel(hueToRGB(p, q, h+1.0/3.0)),
		G: channel(hueToRGB(p, q, h)),
		B: channel(hueToRGB(p, q, h-1.0/3.0)),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

func channel(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

// Scaled returns the color with each channel multiplied by f (clamped to 1).
// Used for the dark solid fill under bright wireframe edges.
func (c Color) Scaled(f float64) Color {
	if f > 1 {
		f = 1
	}
	if f < 0 {
		f = 0
	}
	return Color{
		R: uint8(math.Round(float64(c.R) * f)),
		G: uint8(math.Round(float64(c.G) * f)),
		B: uint8(math.Round(float64(c.B) * f)),
	}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
