package canvas

import "testing"

func TestSolidBrushEvalIgnoresPoint(t *testing.T) {
	b := SolidBrush(RGBA{R: 1, G: 0, B: 0, A: 1})
	if got := b.Eval(Point{100, 100}); got != b.Solid {
		t.Fatalf("solid brush Eval = %+v, want %+v regardless of point", got, b.Solid)
	}
}

func TestLinearBrushEvalAppliesInverseTransform(t *testing.T) {
	g := &LinearGradient{Start: Point{0, 0}, End: Point{10, 0}}
	g.AddColorStop(0, Black)
	g.AddColorStop(1, White)
	b := Brush{Kind: BrushLinear, Linear: g, Transform: Translate(10, 0)}
	// canvas-space (15,0) maps back to brush-space (5,0), the midpoint.
	got := b.Eval(Point{15, 0})
	want := Black.Lerp(White, 0.5)
	if got != want {
		t.Fatalf("linear brush Eval = %+v, want %+v", got, want)
	}
}

func TestLinearBrushEvalSingularTransformIsTransparent(t *testing.T) {
	g := &LinearGradient{Start: Point{0, 0}, End: Point{10, 0}}
	g.AddColorStop(0, Black)
	g.AddColorStop(1, White)
	b := Brush{Kind: BrushLinear, Linear: g, Transform: NewMatrix(0, 0, 0, 0, 0, 0)}
	if got := b.Eval(Point{5, 5}); got != Transparent {
		t.Fatalf("singular transform should short-circuit to Transparent, got %+v", got)
	}
}

func TestRadialBrushEvalAppliesInverseTransform(t *testing.T) {
	g := &RadialGradient{Start: Point{0, 0}, End: Point{0, 0}, StartRadius: 0, EndRadius: 10}
	g.AddColorStop(0, Black)
	g.AddColorStop(1, White)
	b := Brush{Kind: BrushRadial, Radial: g, Transform: Identity()}
	got := b.Eval(Point{5, 0})
	want := Black.Lerp(White, 0.5)
	if got != want {
		t.Fatalf("radial brush Eval = %+v, want %+v", got, want)
	}
}

func TestBrushEvalUnknownKindIsTransparent(t *testing.T) {
	b := Brush{Kind: BrushKind(99), Transform: Identity()}
	if got := b.Eval(Point{0, 0}); got != Transparent {
		t.Fatalf("unknown brush kind Eval = %+v, want Transparent", got)
	}
}

func TestAbsfHandlesBothSigns(t *testing.T) {
	if absf(-3) != 3 {
		t.Fatal("absf(-3) should be 3")
	}
	if absf(3) != 3 {
		t.Fatal("absf(3) should be 3")
	}
	if absf(0) != 0 {
		t.Fatal("absf(0) should be 0")
	}
}
