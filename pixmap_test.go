package canvas

import "testing"

func TestNewPixmapStartsTransparent(t *testing.T) {
	p := NewPixmap(4, 3)
	if p.Width() != 4 || p.Height() != 3 {
		t.Fatalf("dimensions = %d x %d, want 4 x 3", p.Width(), p.Height())
	}
	if got := p.At(1, 1); got != Transparent {
		t.Fatalf("fresh pixmap pixel = %+v, want Transparent", got)
	}
}

func TestPixmapAtOutOfBoundsIsTransparent(t *testing.T) {
	p := NewPixmap(2, 2)
	p.Set(0, 0, White)
	cases := []struct{ x, y int }{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, c := range cases {
		if got := p.At(c.x, c.y); got != Transparent {
			t.Fatalf("At(%d,%d) = %+v, want Transparent", c.x, c.y, got)
		}
	}
}

func TestPixmapSetOutOfBoundsIsIgnored(t *testing.T) {
	p := NewPixmap(2, 2)
	p.Set(5, 5, White)
	p.Set(-1, -1, White)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := p.At(x, y); got != Transparent {
				t.Fatalf("an out-of-bounds Set leaked into (%d,%d): %+v", x, y, got)
			}
		}
	}
}

func TestPixmapSetThenAtRoundTrips(t *testing.T) {
	p := NewPixmap(2, 2)
	p.Set(1, 0, RGBA{R: 0.5, G: 0.25, B: 0.125, A: 0.5})
	got := p.At(1, 0)
	want := RGBA{R: 0.5, G: 0.25, B: 0.125, A: 0.5}
	if got != want {
		t.Fatalf("At after Set = %+v, want %+v", got, want)
	}
}

func TestPixmapClearFillsEveryPixel(t *testing.T) {
	p := NewPixmap(3, 3)
	p.Clear(White)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := p.At(x, y); got != White {
				t.Fatalf("Clear left (%d,%d) = %+v, want White", x, y, got)
			}
		}
	}
}

func TestPutImageDataThenGetImageDataRoundTripsWithinOneLSB(t *testing.T) {
	p := NewPixmap(2, 2)
	in := []byte{
		10, 20, 30, 255, 40, 50, 60, 255,
		70, 80, 90, 255, 100, 110, 120, 255,
	}
	p.PutImageData(in, 2, 2, 8, 0, 0)
	out := make([]byte, len(in))
	p.GetImageData(out, 2, 2, 8, 0, 0, false)
	for i, want := range in {
		got := out[i]
		diff := int(got) - int(want)
		if diff < -1 || diff > 1 {
			t.Fatalf("byte %d round-tripped to %d, want within 1 of %d", i, got, want)
		}
	}
}

func TestGetImageDataSkipsTruncatedRows(t *testing.T) {
	p := NewPixmap(2, 2)
	p.Clear(White)
	out := make([]byte, 2)
	p.GetImageData(out, 2, 1, 8, 0, 0, false)
	// Should not panic despite out being too short for a full row.
}

func TestToImageProducesCorrectlySizedImage(t *testing.T) {
	p := NewPixmap(5, 7)
	img := p.ToImage()
	if img == nil {
		t.Fatal("ToImage returned nil")
	}
	b := img.Bounds()
	if b.Dx() != 5 || b.Dy() != 7 {
		t.Fatalf("image bounds = %v, want 5x7", b)
	}
}
