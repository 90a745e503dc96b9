// Package blend implements the compositor's 4-bit composite-operation
// formula shared by the main compositing loop and the shadow renderer.
package blend

import "math"

// Op identifies one of the twelve composite operations. Each value's bits
// directly encode the operation's source-mix, dest-mix, and visibility
// behavior; Composite below decodes them rather than switching on a name.
type Op uint8

const (
	SourceIn         Op = 1
	SourceCopy       Op = 2
	SourceOut        Op = 3
	DestinationIn    Op = 4
	DestinationAtop  Op = 7
	Lighter          Op = 10
	DestinationOver  Op = 11
	DestinationOut   Op = 12
	SourceAtop       Op = 13
	SourceOver       Op = 14
	ExclusiveOr      Op = 15
)

// RGBA is a premultiplied-linear color used by the blend formula.
type RGBA struct {
	R, G, B, A float64
}

// Mix applies the four-bit composite formula to a foreground (source) and
// background (destination) premultiplied color, returning the new blend
// contribution before visibility weighting is applied by the caller.
func (op Op) Mix(fore, back RGBA) RGBA {
	b := uint8(op)
	mixFore := 0.0
	if b&1 != 0 {
		mixFore = back.A
	}
	if b&2 != 0 {
		mixFore = 1 - mixFore
	}
	mixBack := 0.0
	if b&4 != 0 {
		mixBack = fore.A
	}
	if b&8 != 0 {
		mixBack = 1 - mixBack
	}
	blend := RGBA{
		R: mixFore*fore.R + mixBack*back.R,
		G: mixFore*fore.G + mixBack*back.G,
		B: mixFore*fore.B + mixBack*back.B,
		A: mixFore*fore.A + mixBack*back.A,
	}
	if blend.A > 1 {
		blend.A = 1
	}
	return blend
}

// Composite blends fore over back at the given visibility (clip mask
// coverage, already clamped to [0,1]) using op, returning the new back.
func (op Op) Composite(fore, back RGBA, visibility float64) RGBA {
	blend := op.Mix(fore, back)
	return RGBA{
		R: visibility*blend.R + (1-visibility)*back.R,
		G: visibility*blend.G + (1-visibility)*back.G,
		B: visibility*blend.B + (1-visibility)*back.B,
		A: visibility*blend.A + (1-visibility)*back.A,
	}
}

// ParseOp maps a Canvas-API composite-operation name to an Op, returning
// SourceOver and false for unrecognized names (callers should ignore the
// assignment entirely on failure, per the tolerant-API error model).
func ParseOp(name string) (Op, bool) {
	switch name {
	case "source-over":
		return SourceOver, true
	case "source-in":
		return SourceIn, true
	case "source-out":
		return SourceOut, true
	case "source-atop":
		return SourceAtop, true
	case "source-copy", "copy":
		return SourceCopy, true
	case "destination-over":
		return DestinationOver, true
	case "destination-in":
		return DestinationIn, true
	case "destination-out":
		return DestinationOut, true
	case "destination-atop":
		return DestinationAtop, true
	case "lighter":
		return Lighter, true
	case "xor":
		return ExclusiveOr, true
	}
	return SourceOver, false
}

// Clamp01 restricts v to [0,1], treating NaN as 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
