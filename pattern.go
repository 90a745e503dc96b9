package canvas

import (
	"math"

	"golang.org/x/image/draw"
)

// PatternImage is a grid of premultiplied-linear RGBA samples with
// optional axis wrapping.
type PatternImage struct {
	Width, Height int
	Pixels        []RGBA // row-major, len == Width*Height

	WrapX, WrapY bool // image brushes (draw_image, put_image_data sources) set both false
}

// at returns the pixel at (x,y). An out-of-bounds coordinate wraps when the
// corresponding wrap bit is on and yields Transparent when it is off.
func (pi *PatternImage) at(x, y int) RGBA {
	if pi.WrapX {
		x = wrapIndex(x, pi.Width)
	} else if x < 0 || x >= pi.Width {
		return Transparent
	}
	if pi.WrapY {
		y = wrapIndex(y, pi.Height)
	} else if y < 0 || y >= pi.Height {
		return Transparent
	}
	return pi.Pixels[y*pi.Width+x]
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// PatternBrush samples a PatternImage through a 4x4 separable bicubic
// (Keys/Catmull-Rom) footprint, scaled to the inverse transform's local
// pixel density so minified patterns still antialias correctly.
type PatternBrush struct {
	Image *PatternImage
}

// ColorAt samples the pattern at a point already in brush space, given
// the brush-space-per-device-pixel scale derived from the inverse
// transform (|a|+|c|, |b|+|d|), clamped to [1, width/4] / [1, height/4].
func (pb *PatternBrush) ColorAt(p Point, scaleX, scaleY float64) RGBA {
	img := pb.Image
	if img == nil || img.Width == 0 || img.Height == 0 {
		return Transparent
	}
	scaleX = clampScale(scaleX, float64(img.Width))
	scaleY = clampScale(scaleY, float64(img.Height))

	cx := p.X - 0.5
	cy := p.Y - 0.5
	x0 := int(floorf(cx))
	y0 := int(floorf(cy))

	var sum RGBA
	var weightSum float64
	support := float64(draw.CatmullRom.Support)
	loY := -int(math.Ceil(support * scaleY))
	hiY := int(math.Ceil(support * scaleY))
	loX := -int(math.Ceil(support * scaleX))
	hiX := int(math.Ceil(support * scaleX))
	for dy := loY; dy <= hiY; dy++ {
		wy := draw.CatmullRom.At((cy - float64(y0+dy)) / scaleY)
		if wy == 0 {
			continue
		}
		for dx := loX; dx <= hiX; dx++ {
			wx := draw.CatmullRom.At((cx - float64(x0+dx)) / scaleX)
			if wx == 0 {
				continue
			}
			w := wx * wy
			c := img.at(x0+dx, y0+dy)
			sum.R += c.R * w
			sum.G += c.G * w
			sum.B += c.B * w
			sum.A += c.A * w
			weightSum += w
		}
	}
	if weightSum == 0 {
		return Transparent
	}
	return sum.Scale(1 / weightSum)
}

func clampScale(s, dim float64) float64 {
	max := dim / 4
	if max < 1 {
		max = 1
	}
	if s < 1 {
		return 1
	}
	if s > max {
		return max
	}
	return s
}

func floorf(v float64) float64 {
	i := float64(int(v))
	if v < i {
		i--
	}
	return i
}
