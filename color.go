package canvas

import (
	"image/color"

	"github.com/vectorcanvas/canvas/internal/colorspace"
)

// RGBA is a premultiplied, linear-light color, the internal representation
// used throughout the rasterizer. Conversion to and from unpremultiplied
// sRGB8 happens only at pixel-buffer boundaries.
type RGBA struct {
	R, G, B, A float64
}

// Transparent is the zero color.
var Transparent = RGBA{}

// Black is opaque black.
var Black = RGBA{A: 1}

// White is opaque white.
var White = RGBA{R: 1, G: 1, B: 1, A: 1}

// RGB constructs a premultiplied-linear color from unpremultiplied linear
// channels and full alpha.
func RGB(r, g, b float64) RGBA { return RGBA{R: r, G: g, B: b, A: 1} }

// RGBA4 constructs a premultiplied-linear color from unpremultiplied linear
// channels and an alpha in [0,1].
func RGBA4(r, g, b, a float64) RGBA {
	return RGBA{R: r * a, G: g * a, B: b * a, A: a}
}

// SRGBA constructs a premultiplied-linear color from unpremultiplied sRGB
// channels in [0,1] and an alpha in [0,1], the representation Canvas-API
// callers typically supply colors in.
func SRGBA(r, g, b, a float64) RGBA {
	lr := colorspace.SRGBToLinear(r)
	lg := colorspace.SRGBToLinear(g)
	lb := colorspace.SRGBToLinear(b)
	return RGBA4(lr, lg, lb, a)
}

// Unpremultiply returns the unpremultiplied linear channels. Colors with
// alpha below the 1/8160 threshold unpremultiply to zero, matching the
// coverage-skip threshold used during compositing.
func (c RGBA) Unpremultiply() (r, g, b, a float64) {
	cs := colorspace.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	return cs.Unpremultiply()
}

// Lerp linearly interpolates between two premultiplied-linear colors.
func (c RGBA) Lerp(d RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (d.R-c.R)*t,
		G: c.G + (d.G-c.G)*t,
		B: c.B + (d.B-c.B)*t,
		A: c.A + (d.A-c.A)*t,
	}
}

// Scale multiplies all channels (including alpha) by s.
func (c RGBA) Scale(s float64) RGBA {
	return RGBA{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// Color converts to an image/color.Color via unpremultiplied sRGB8.
func (c RGBA) Color() color.Color {
	r, g, b, a := colorspace.ToSRGB8(colorspace.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, 0, 0, false)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// fromSRGB8Bytes converts a single unpremultiplied sRGB8 pixel to the
// internal premultiplied-linear representation.
func fromSRGB8Bytes(r, g, b, a uint8) RGBA {
	cs := colorspace.FromSRGB8(r, g, b, a)
	return RGBA{R: cs.R, G: cs.G, B: cs.B, A: cs.A}
}

// FromColor converts an image/color.Color (assumed unpremultiplied sRGB)
// into the internal premultiplied-linear representation.
func FromColor(c color.Color) RGBA {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return SRGBA(float64(nrgba.R)/255, float64(nrgba.G)/255, float64(nrgba.B)/255, float64(nrgba.A)/255)
}
