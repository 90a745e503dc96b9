package canvas

import (
	"unicode/utf8"

	"github.com/vectorcanvas/canvas/ttf"
)

// fontFace pairs a parsed TrueType face with the pixel size it was
// selected at.
type fontFace struct {
	face *ttf.Face
	size float64
}

func (f *fontFace) scale() float64 {
	if f == nil || f.face == nil || f.face.UnitsPerEm() == 0 {
		return 0
	}
	return f.size / float64(f.face.UnitsPerEm())
}

// SetFont parses TrueType bytes at the given pixel size. Returns false
// and clears the current face on parse failure; subsequent text calls
// become no-ops until a valid face is set.
func (c *Canvas) SetFont(data []byte, size float64) bool {
	if size <= 0 || !validScalar(size) {
		c.st.face = nil
		return false
	}
	f, err := ttf.Parse(data)
	if err != nil {
		c.st.face = nil
		Logger().Debug("set_font failed", "error", err)
		return false
	}
	c.st.face = &fontFace{face: f, size: size}
	return true
}

// decodeText folds \t \v \f \r \n to ordinary space and maps invalid
// UTF-8 sequences to U+FFFD, advancing one byte per the fold/replace
// contract.
func decodeText(s string) []rune {
	var out []rune
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			out = append(out, utf8.RuneError)
			i++
			continue
		}
		switch r {
		case '\t', '\v', '\f', '\r', '\n':
			r = ' '
		}
		out = append(out, r)
		i += size
	}
	return out
}

// layoutText returns, for each rune, its glyph index and the x-advance
// (in canvas pixels at the face's configured size) to the next glyph.
func (f *fontFace) layoutText(s string) (runes []rune, glyphs []uint16, advances []float64) {
	runes = decodeText(s)
	scale := f.scale()
	glyphs = make([]uint16, len(runes))
	advances = make([]float64, len(runes))
	for i, r := range runes {
		g := f.face.GlyphIndex(r)
		glyphs[i] = g
		advances[i] = float64(f.face.Advance(g)) * scale
	}
	return
}

func totalAdvance(advances []float64) float64 {
	sum := 0.0
	for _, a := range advances {
		sum += a
	}
	return sum
}

// TextMetrics mirrors the Canvas-API measure_text result.
type TextMetrics struct {
	Width float64
}

// MeasureText measures the advance width of s at the current font and
// size. If maximumWidth is the sentinel 1e30 and alignment is leftward,
// the measurement pass is skipped (the caller has no use for it).
func (c *Canvas) MeasureText(s string, maximumWidth float64) TextMetrics {
	if c.st.face == nil {
		return TextMetrics{}
	}
	if maximumWidth >= 1e30 && c.st.textAlign == AlignLeft {
		return TextMetrics{}
	}
	_, _, advances := c.st.face.layoutText(s)
	return TextMetrics{Width: totalAdvance(advances)}
}

// textOrigin computes the baseline-relative start position for s given
// the current alignment/baseline settings and an optional maximum-width
// squeeze factor.
func (c *Canvas) textOrigin(s string, x, y, maximumWidth float64) (startX, startY, squeeze float64) {
	width := totalAdvance(selectAdvances(c.st.face, s))
	squeeze = 1
	if width > maximumWidth && maximumWidth > 0 && maximumWidth < 1e30 {
		squeeze = maximumWidth / width
	}

	startX = x
	switch c.st.textAlign {
	case AlignCenter:
		startX = x - width*squeeze/2
	case AlignRight:
		startX = x - width*squeeze
	}

	scale := c.st.face.scale()
	ascender := float64(c.st.face.face.TypoAscender()) * scale
	descender := float64(c.st.face.face.TypoDescender()) * scale

	startY = y
	switch c.st.textBaseline {
	case BaselineTop:
		startY = y + ascender
	case BaselineHanging:
		startY = y + ascender*0.8
	case BaselineMiddle:
		startY = y + (ascender+descender)/2
	case BaselineBottom:
		startY = y + descender
	case BaselineAlphabetic:
		// startY already at the alphabetic baseline.
	}
	return
}

func selectAdvances(f *fontFace, s string) []float64 {
	_, _, advances := f.layoutText(s)
	return advances
}

// buildTextPath appends one sub-path per glyph contour for s, laid out
// left to right from (x,y), into dst under the current transform.
func (c *Canvas) buildTextPath(dst *Path, s string, x, y, maximumWidth float64) {
	if c.st.face == nil {
		return
	}
	startX, startY, squeeze := c.textOrigin(s, x, y, maximumWidth)
	runes, glyphs, advances := c.st.face.layoutText(s)
	scale := c.st.face.scale()

	cursor := startX
	for i, g := range glyphs {
		_ = runes[i]
		segs := c.st.face.face.Outline(g)
		glyphOrigin := Point{X: cursor, Y: startY}
		for _, seg := range segs {
			to := glyphPoint(seg.To, scale, squeeze, glyphOrigin)
			switch seg.Op {
			case ttf.OutlineMoveTo:
				dst.MoveTo(c.st.matrix, to.X, to.Y)
			case ttf.OutlineLineTo:
				dst.LineTo(c.st.matrix, to.X, to.Y)
			case ttf.OutlineCubicTo:
				c1 := glyphPoint(seg.C1, scale, squeeze, glyphOrigin)
				c2 := glyphPoint(seg.C2, scale, squeeze, glyphOrigin)
				dst.BezierCurveTo(c.st.matrix, c1.X, c1.Y, c2.X, c2.Y, to.X, to.Y)
			case ttf.OutlineClose:
				dst.ClosePath()
			}
		}
		cursor += advances[i] * squeeze
	}
}

func glyphPoint(p [2]float64, scale, squeeze float64, origin Point) Point {
	// Font-unit y grows upward; canvas y grows downward.
	return Point{X: origin.X + p[0]*scale*squeeze, Y: origin.Y - p[1]*scale}
}

// FillText fills the glyph outlines of s with the fill brush.
func (c *Canvas) FillText(s string, x, y float64, maximumWidth float64) {
	if c.st.face == nil || !c.st.matrix.Invertible() {
		return
	}
	scratch := NewPath()
	c.buildTextPath(scratch, s, x, y, maximumWidth)
	runs := c.pathToRuns(scratch, 0)
	c.composite(runs, &c.st.fillBrush)
}

// StrokeText strokes the glyph outlines of s with the stroke brush.
func (c *Canvas) StrokeText(s string, x, y float64, maximumWidth float64) {
	if c.st.face == nil || !c.st.matrix.Invertible() {
		return
	}
	scratch := NewPath()
	c.buildTextPath(scratch, s, x, y, maximumWidth)
	runs := c.strokeToRuns(scratch, 0)
	c.composite(runs, &c.st.strokeBrush)
}

// SetTextAlign sets horizontal text anchoring.
func (c *Canvas) SetTextAlign(a TextAlign) { c.st.textAlign = a }

// SetTextBaseline sets vertical text anchoring.
func (c *Canvas) SetTextBaseline(b TextBaseline) { c.st.textBaseline = b }
