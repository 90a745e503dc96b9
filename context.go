package canvas

import (
	"math"

	"github.com/vectorcanvas/canvas/internal/blend"
)

// TextAlign selects horizontal text anchoring.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextBaseline selects vertical text anchoring.
type TextBaseline int

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
	BaselineHanging
)

// Which selects the fill or stroke brush for brush-mutating calls.
type Which int

const (
	Fill Which = iota
	Stroke
)

// state is one snapshot of all style, transform, brush, mask, and face
// fields a save/restore pair preserves. Neither the pixel buffer nor the
// current path is part of state.
type state struct {
	matrix Matrix

	globalAlpha float64
	compositeOp blend.Op

	shadowColor             RGBA
	shadowOffsetX, shadowOffsetY float64
	shadowBlur              float64

	lineWidth  float64
	lineCap    LineCap
	lineJoin   LineJoin
	miterLimit float64
	dashArray  []float64
	dashOffset float64

	textAlign    TextAlign
	textBaseline TextBaseline

	fillBrush   Brush
	strokeBrush Brush

	face *fontFace

	clip *ClipMask
}

func defaultState(width, height int) state {
	return state{
		matrix:      Identity(),
		globalAlpha: 1,
		compositeOp: blend.SourceOver,
		lineWidth:   1,
		miterLimit:  10,
		fillBrush:   SolidBrush(Black),
		strokeBrush: SolidBrush(Black),
		clip:        FullClipMask(width, height),
	}
}

func (s state) clone() state {
	c := s
	c.dashArray = append([]float64(nil), s.dashArray...)
	c.clip = s.clip // shared until mutated; Clip() replaces it with a fresh mask
	for _, b := range []*Brush{&c.fillBrush, &c.strokeBrush} {
		if b.Linear != nil {
			g := *b.Linear
			g.Stops = append([]ColorStop(nil), g.Stops...)
			b.Linear = &g
		}
		if b.Radial != nil {
			g := *b.Radial
			g.Stops = append([]ColorStop(nil), g.Stops...)
			b.Radial = &g
		}
	}
	return c
}

// Canvas is the main drawing surface: a pixel buffer, current path, and a
// stack of saved style states. A Canvas is not thread-safe; concurrent
// calls on one instance race on the bitmap, state stack, and scratch
// buffers. Different Canvas instances share no state.
type Canvas struct {
	width, height int
	pixmap        *Pixmap
	path          *Path
	st            state
	stack         []state
	opts          canvasOptions
}

// NewCanvas creates a canvas of the given pixel dimensions, 1 <= w,h <=
// 32768. Out-of-range dimensions are clamped into range rather than
// rejected, since construction has no failure signal in this API.
func NewCanvas(width, height int, opts ...Option) *Canvas {
	width = clampInt(width, 1, 32768)
	height = clampInt(height, 1, 32768)
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{
		width:  width,
		height: height,
		pixmap: NewPixmap(width, height),
		path:   NewPath(),
		st:     defaultState(width, height),
		opts:   o,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Pixmap exposes the underlying pixel buffer.
func (c *Canvas) Pixmap() *Pixmap { return c.pixmap }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Transform ---

// Scale appends a scale to the current transform.
func (c *Canvas) Scale(sx, sy float64) {
	if !validScalar(sx) || !validScalar(sy) {
		return
	}
	c.st.matrix = c.st.matrix.Multiply(Scale(sx, sy))
}

// Rotate appends a clockwise rotation (radians) to the current transform.
func (c *Canvas) Rotate(angle float64) {
	if !validScalar(angle) {
		return
	}
	c.st.matrix = c.st.matrix.Multiply(Rotate(angle))
}

// Translate appends a translation to the current transform.
func (c *Canvas) Translate(tx, ty float64) {
	if !validScalar(tx) || !validScalar(ty) {
		return
	}
	c.st.matrix = c.st.matrix.Multiply(Translate(tx, ty))
}

// Transform appends an arbitrary matrix to the current transform.
func (c *Canvas) Transform(a, b, cc, d, e, f float64) {
	if !allValid(a, b, cc, d, e, f) {
		return
	}
	c.st.matrix = c.st.matrix.Multiply(NewMatrix(a, b, cc, d, e, f))
}

// SetTransform replaces the current transform outright.
func (c *Canvas) SetTransform(a, b, cc, d, e, f float64) {
	if !allValid(a, b, cc, d, e, f) {
		return
	}
	c.st.matrix = NewMatrix(a, b, cc, d, e, f)
}

func validScalar(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func allValid(vs ...float64) bool {
	for _, v := range vs {
		if !validScalar(v) {
			return false
		}
	}
	return true
}

// --- Compositing ---

// SetGlobalAlpha sets the global alpha multiplier. Out-of-range values are
// rejected (the call is a no-op).
func (c *Canvas) SetGlobalAlpha(a float64) {
	if !validScalar(a) || a < 0 || a > 1 {
		return
	}
	c.st.globalAlpha = a
}

// SetGlobalCompositeOperation selects one of the twelve composite
// operations by Canvas-API name. Unrecognized names are a no-op.
func (c *Canvas) SetGlobalCompositeOperation(name string) {
	if op, ok := blend.ParseOp(name); ok {
		c.st.compositeOp = op
	}
}

// --- Shadows ---

// SetShadowColor sets the shadow color from unpremultiplied sRGB channels.
func (c *Canvas) SetShadowColor(r, g, b, a float64) {
	if !allValid(r, g, b, a) {
		return
	}
	c.st.shadowColor = SRGBA(r, g, b, clamp01v(a))
}

// SetShadowOffsetX sets the shadow's x offset in pixels (not transformed).
func (c *Canvas) SetShadowOffsetX(x float64) {
	if validScalar(x) {
		c.st.shadowOffsetX = x
	}
}

// SetShadowOffsetY sets the shadow's y offset in pixels (not transformed).
func (c *Canvas) SetShadowOffsetY(y float64) {
	if validScalar(y) {
		c.st.shadowOffsetY = y
	}
}

// SetShadowBlur sets the shadow blur level (>= 0).
func (c *Canvas) SetShadowBlur(level float64) {
	if !validScalar(level) || level < 0 {
		return
	}
	c.st.shadowBlur = level
}

func clamp01v(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// --- Line styles ---

// SetLineWidth sets the stroke width (> 0).
func (c *Canvas) SetLineWidth(w float64) {
	if !validScalar(w) || w <= 0 {
		return
	}
	c.st.lineWidth = w
}

// SetLineCap sets the stroke cap style.
func (c *Canvas) SetLineCap(cap LineCap) { c.st.lineCap = cap }

// SetLineJoin sets the stroke join style.
func (c *Canvas) SetLineJoin(join LineJoin) { c.st.lineJoin = join }

// SetMiterLimit sets the miter-join length limit (> 0).
func (c *Canvas) SetMiterLimit(limit float64) {
	if !validScalar(limit) || limit <= 0 {
		return
	}
	c.st.miterLimit = limit
}

// SetLineDashOffset sets the dash pattern's starting offset.
func (c *Canvas) SetLineDashOffset(offset float64) {
	if validScalar(offset) {
		c.st.dashOffset = offset
	}
}

// SetLineDash sets the dash pattern. An odd-length array is self-appended
// to make it even; any negative value rejects the whole call.
func (c *Canvas) SetLineDash(segments []float64) {
	for _, v := range segments {
		if !validScalar(v) || v < 0 {
			return
		}
	}
	dashes := append([]float64(nil), segments...)
	if len(dashes)%2 == 1 {
		dashes = append(dashes, dashes...)
	}
	c.st.dashArray = dashes
}

// --- Brushes ---

// SetColor assigns a solid-color brush from unpremultiplied sRGB channels.
func (c *Canvas) SetColor(which Which, r, g, b, a float64) {
	if !allValid(r, g, b, a) {
		return
	}
	brush := SolidBrush(SRGBA(r, g, b, clamp01v(a)))
	c.setBrush(which, brush)
}

// SetLinearGradient assigns a linear-gradient brush between (x1,y1) and
// (x2,y2), recording the current transform as the brush's coordinate
// space.
func (c *Canvas) SetLinearGradient(which Which, x1, y1, x2, y2 float64) {
	if !allValid(x1, y1, x2, y2) {
		return
	}
	g := &LinearGradient{Start: Point{X: x1, Y: y1}, End: Point{X: x2, Y: y2}}
	c.setBrush(which, Brush{Kind: BrushLinear, Linear: g, Transform: c.st.matrix})
}

// SetRadialGradient assigns a radial-gradient brush; radii must be
// non-negative.
func (c *Canvas) SetRadialGradient(which Which, x1, y1, r1, x2, y2, r2 float64) {
	if !allValid(x1, y1, r1, x2, y2, r2) || r1 < 0 || r2 < 0 {
		return
	}
	g := &RadialGradient{Start: Point{X: x1, Y: y1}, End: Point{X: x2, Y: y2}, StartRadius: r1, EndRadius: r2}
	c.setBrush(which, Brush{Kind: BrushRadial, Radial: g, Transform: c.st.matrix})
}

// AddColorStop appends a gradient stop to the current fill or stroke
// brush, if it is a gradient.
func (c *Canvas) AddColorStop(which Which, offset, r, g, b, a float64) {
	if !allValid(offset, r, g, b, a) || offset < 0 || offset > 1 {
		return
	}
	col := SRGBA(r, g, b, clamp01v(a))
	brush := c.brush(which)
	switch brush.Kind {
	case BrushLinear:
		brush.Linear.AddColorStop(offset, col)
	case BrushRadial:
		brush.Radial.AddColorStop(offset, col)
	}
}

// SetPattern assigns a pattern brush from an unpremultiplied sRGB8 image
// buffer, copying it in.
func (c *Canvas) SetPattern(which Which, pixels []byte, w, h, stride int, wrapX, wrapY bool) {
	if w <= 0 || h <= 0 {
		return
	}
	img := &PatternImage{Width: w, Height: h, Pixels: make([]RGBA, w*h), WrapX: wrapX, WrapY: wrapY}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			o := y*stride + x*4
			if o+3 >= len(pixels) {
				continue
			}
			cs := fromSRGB8Bytes(pixels[o], pixels[o+1], pixels[o+2], pixels[o+3])
			img.Pixels[y*w+x] = cs
		}
	}
	c.setBrush(which, Brush{Kind: BrushPattern, Pattern: &PatternBrush{Image: img}, Transform: c.st.matrix})
}

func (c *Canvas) setBrush(which Which, b Brush) {
	if which == Fill {
		c.st.fillBrush = b
	} else {
		c.st.strokeBrush = b
	}
}

func (c *Canvas) brush(which Which) *Brush {
	if which == Fill {
		return &c.st.fillBrush
	}
	return &c.st.strokeBrush
}

// --- State stack ---

// Save pushes a copy of all style/transform/brush/mask/face state.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.st.clone())
}

// Restore pops the most recently saved state, replacing the current one.
// No-op on an empty stack.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.st = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}
