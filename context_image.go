package canvas

// DrawImage draws an unpremultiplied sRGB8 image buffer, scaled to fit a
// (toW, toH) rectangle at (x,y) in canvas space, via a synthesized
// rectangle path and an image-pattern brush (wrap modes disabled). Samples
// outside the image read as transparent; they are not clamped to the edge
// pixels.
func (c *Canvas) DrawImage(pixels []byte, w, h, stride int, x, y, toW, toH float64) {
	if w <= 0 || h <= 0 || toW == 0 || toH == 0 || !c.st.matrix.Invertible() {
		return
	}
	img := &PatternImage{Width: w, Height: h, Pixels: make([]RGBA, w*h)}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			o := row*stride + col*4
			if o+3 >= len(pixels) {
				continue
			}
			img.Pixels[row*w+col] = fromSRGB8Bytes(pixels[o], pixels[o+1], pixels[o+2], pixels[o+3])
		}
	}

	// The pattern is sampled in image-pixel space; map the destination
	// rectangle's transform so that brush space equals image space.
	dest := c.st.matrix.Multiply(Translate(x, y)).Multiply(Scale(toW/float64(w), toH/float64(h)))

	brush := Brush{Kind: BrushPattern, Pattern: &PatternBrush{Image: img}, Transform: dest}

	scratch := NewPath()
	scratch.Rectangle(c.st.matrix, x, y, toW, toH)
	runs := c.pathToRuns(scratch, 0)
	c.composite(runs, &brush)
}

// GetImageData copies an unpremultiplied sRGB8 region into out, dithered
// per the canvas's dither option.
func (c *Canvas) GetImageData(out []byte, w, h, stride, x, y int) {
	c.pixmap.GetImageData(out, w, h, stride, x, y, c.opts.dither)
}

// PutImageData writes an unpremultiplied sRGB8 region into the pixmap.
func (c *Canvas) PutImageData(in []byte, w, h, stride, x, y int) {
	c.pixmap.PutImageData(in, w, h, stride, x, y)
}
