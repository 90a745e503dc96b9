// Package colorspace converts between sRGB 8-bit and premultiplied-linear
// float colors at the pixel-buffer boundary.
package colorspace

import "math"

// AlphaEpsilon is the threshold below which premultiplied alpha is treated
// as fully transparent, matching the 8-bit quantization boundary.
const AlphaEpsilon = 1.0 / 8160.0

// SRGBToLinear converts a single sRGB channel value in [0,1] to linear light.
func SRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a single linear channel value in [0,1] to sRGB.
func LinearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// RGBA is a premultiplied-linear color: each of R,G,B already carries the
// alpha factor, all channels in linear light.
type RGBA struct {
	R, G, B, A float64
}

// Premultiply converts an unpremultiplied linear color to premultiplied form.
func Premultiply(r, g, b, a float64) RGBA {
	return RGBA{R: r * a, G: g * a, B: b * a, A: a}
}

// Unpremultiply returns the unpremultiplied r,g,b for a premultiplied color.
// Colors with alpha below AlphaEpsilon unpremultiply to zero.
func (c RGBA) Unpremultiply() (r, g, b, a float64) {
	if c.A < AlphaEpsilon {
		return 0, 0, 0, 0
	}
	return c.R / c.A, c.G / c.A, c.B / c.A, c.A
}

// FromSRGB8 converts an unpremultiplied sRGB8 pixel to premultiplied linear.
func FromSRGB8(r, g, b, a uint8) RGBA {
	af := float64(a) / 255
	return Premultiply(
		SRGBToLinear(float64(r)/255),
		SRGBToLinear(float64(g)/255),
		SRGBToLinear(float64(b)/255),
		af,
	)
}

// ToSRGB8 converts a premultiplied-linear color to unpremultiplied sRGB8,
// applying a 4x4 ordered Bayer dither at pixel (x,y) to hide quantization
// banding. Pass dither=false to disable dithering (threshold always 0.5).
func ToSRGB8(c RGBA, x, y int, dither bool) (r, g, b, a uint8) {
	lr, lg, lb, la := c.Unpremultiply()
	sr := LinearToSRGB(lr)
	sg := LinearToSRGB(lg)
	sb := LinearToSRGB(lb)

	threshold := 0.5
	if dither {
		threshold = bayer4x4[(y&3)*4+(x&3)]
	}
	return quantize(sr, threshold), quantize(sg, threshold), quantize(sb, threshold), quantize(la, threshold)
}

func quantize(v, threshold float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	scaled := v*255 + threshold - 0.5
	if scaled < 0 {
		scaled = 0
	}
	if scaled > 255 {
		scaled = 255
	}
	return uint8(math.Round(scaled))
}

// bayer4x4 holds the 16 thresholds (in [0,1)) of the classic 4x4 ordered
// dither matrix, scaled so each cell nudges the rounding by at most one LSB.
var bayer4x4 = [16]float64{
	0.0 / 16, 8.0 / 16, 2.0 / 16, 10.0 / 16,
	12.0 / 16, 4.0 / 16, 14.0 / 16, 6.0 / 16,
	3.0 / 16, 11.0 / 16, 1.0 / 16, 9.0 / 16,
	15.0 / 16, 7.0 / 16, 13.0 / 16, 5.0 / 16,
}
