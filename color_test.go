package canvas

import (
	"image/color"
	"testing"
)

func TestRGBA4Premultiplies(t *testing.T) {
	c := RGBA4(1, 0.5, 0.25, 0.5)
	if c.R != 0.5 || c.G != 0.25 || c.B != 0.125 || c.A != 0.5 {
		t.Fatalf("RGBA4 = %+v", c)
	}
}

func TestSRGBAOpaqueWhiteIsWhite(t *testing.T) {
	c := SRGBA(1, 1, 1, 1)
	if c != White {
		t.Fatalf("SRGBA(1,1,1,1) = %+v, want White", c)
	}
}

func TestSRGBATransparentIsTransparent(t *testing.T) {
	c := SRGBA(1, 1, 1, 0)
	if c != Transparent {
		t.Fatalf("SRGBA(1,1,1,0) = %+v, want Transparent", c)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := Black
	b := White
	if got := a.Lerp(b, 0); got != a {
		t.Fatalf("Lerp t=0 = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Fatalf("Lerp t=1 = %+v, want %+v", got, b)
	}
}

func TestColorRoundTripsThroughImageColor(t *testing.T) {
	c := SRGBA(0.2, 0.6, 0.9, 1)
	nrgba := color.NRGBAModel.Convert(c.Color()).(color.NRGBA)
	back := FromColor(nrgba)
	if diff := back.R - c.R; diff > 0.01 || diff < -0.01 {
		t.Fatalf("round trip R channel drifted: %v vs %v", back.R, c.R)
	}
}

func TestUnpremultiplyTransparentIsZero(t *testing.T) {
	r, g, b, a := Transparent.Unpremultiply()
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Fatalf("Transparent.Unpremultiply() = %v %v %v %v", r, g, b, a)
	}
}

func TestScaleMultipliesAllChannels(t *testing.T) {
	c := RGBA{R: 0.4, G: 0.2, B: 0.1, A: 0.5}
	got := c.Scale(0.5)
	want := RGBA{R: 0.2, G: 0.1, B: 0.05, A: 0.25}
	if got != want {
		t.Fatalf("Scale(0.5) = %+v, want %+v", got, want)
	}
}
