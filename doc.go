// Package canvas implements a CPU software rasterizer for 2D vector
// graphics modeled on the HTML5 Canvas 2D API. It builds paths as cubic
// Bezier sub-paths, flattens and dashes them, expands strokes with caps
// and joins (including inner joins on tight turns), scan-converts to
// signed-coverage pixel runs, evaluates solid/gradient/pattern paint, and
// composites under a clip mask and any of twelve composite operations.
// All internal color math happens in premultiplied, linear-light RGBA;
// conversion to and from unpremultiplied sRGB8 happens only at the
// pixel-buffer boundary.
//
//	c := canvas.NewCanvas(200, 200)
//	c.SetColor(canvas.Fill, 1, 0, 0, 1)
//	c.FillRectangle(10, 10, 100, 100)
package canvas

const version = "0.1.0"
