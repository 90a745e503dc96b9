package canvas

import (
	"github.com/vectorcanvas/canvas/internal/clip"
	"github.com/vectorcanvas/canvas/internal/scan"
)

// ClipMask is the current clip region, stored as a canonical pixel-run
// list. Intersecting only ever shrinks the visible region.
type ClipMask struct {
	Runs []scan.Run
}

// FullClipMask returns the mask that clips nothing, for a canvas of the
// given dimensions.
func FullClipMask(width, height int) *ClipMask {
	return &ClipMask{Runs: clip.FullMask(width, height)}
}

// Clone returns a copy sharing no backing storage with the original.
func (m *ClipMask) Clone() *ClipMask {
	return &ClipMask{Runs: append([]scan.Run(nil), m.Runs...)}
}

// Intersect narrows the mask by the given path run list (already
// canonical: sorted, merged, viewport-clipped).
func (m *ClipMask) Intersect(pathRuns []scan.Run) {
	m.Runs = clip.Intersect(m.Runs, pathRuns)
}
