package canvas

import (
	"image"
	"image/color"

	"github.com/vectorcanvas/canvas/internal/colorspace"
)

// Pixmap is the canvas's pixel buffer, stored as premultiplied-linear
// float colors. Conversion to and from unpremultiplied sRGB8 happens only
// at get_image_data/put_image_data and pattern/image ingestion.
type Pixmap struct {
	width, height int
	pixels        []RGBA
}

// NewPixmap creates a pixmap filled with transparent black.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{width: width, height: height, pixels: make([]RGBA, width*height)}
}

// Width returns the pixmap's width.
func (p *Pixmap) Width() int { return p.width }

// Height returns the pixmap's height.
func (p *Pixmap) Height() int { return p.height }

// At returns the premultiplied-linear color at (x,y), or transparent if
// out of bounds.
func (p *Pixmap) At(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	return p.pixels[y*p.width+x]
}

// Set stores a premultiplied-linear color at (x,y). Out-of-bounds writes
// are ignored.
func (p *Pixmap) Set(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pixels[y*p.width+x] = c
}

// Clear fills the entire pixmap with c.
func (p *Pixmap) Clear(c RGBA) {
	for i := range p.pixels {
		p.pixels[i] = c
	}
}

// GetImageData copies an unpremultiplied sRGB8 region of size w x h,
// starting at (x,y), into out with the given stride (bytes per row,
// >= 4*w). A 4x4 ordered Bayer dither hides 8-bit quantization banding.
func (p *Pixmap) GetImageData(out []byte, w, h, stride, x, y int, dither bool) {
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			sx, sy := x+col, y+row
			c := p.At(sx, sy)
			r, g, b, a := colorspace.ToSRGB8(colorspace.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, col, row, dither)
			o := row*stride + col*4
			if o+3 >= len(out) {
				continue
			}
			out[o+0] = r
			out[o+1] = g
			out[o+2] = b
			out[o+3] = a
		}
	}
}

// PutImageData copies an unpremultiplied sRGB8 region of size w x h from
// in (stride bytes per row) into the pixmap at (x,y), converting to
// premultiplied-linear.
func (p *Pixmap) PutImageData(in []byte, w, h, stride, x, y int) {
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			o := row*stride + col*4
			if o+3 >= len(in) {
				continue
			}
			c := colorspace.FromSRGB8(in[o+0], in[o+1], in[o+2], in[o+3])
			p.Set(x+col, y+row, RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
}

// ToImage renders the pixmap to a standard image.NRGBA for interop (e.g.
// saving to PNG), with dithering disabled for bit-exact snapshots.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := p.At(x, y)
			r, g, b, a := colorspace.ToSRGB8(colorspace.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, x, y, false)
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}
