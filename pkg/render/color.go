// pkg/render/color.go
package render

import "image/color"

// DarkenColor scales the brightness of a color by factor, keeping alpha.
func DarkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
		A: c.A,
	}
}

// LerpColor blends from toward to; t is clamped to [0, 1].
func LerpColor(from, to color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-t) + float64(b)*t + 0.5)
	}
	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}

func scaleChannel(v uint8, factor float64) uint8 {
	f := float64(v) * factor
	if f > 255 {
		return 255
	}
	if f < 0 {
		return 0
	}
	return uint8(f)
}
