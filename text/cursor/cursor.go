// Package cursor implements spec.md §4.7: a byte/affinity cursor and
// range selection over a text/layout.Layout, with logical and visual
// navigation, caret geometry, and selection rectangles.
//
// Grounded on: skia/paragraph/position.go's PositionWithAffinity/
// Affinity/TextBox (the data shapes this package's Cursor/Rect mirror)
// and gioui-gio's text/editor.go navigation idiom — moveLeft/moveRight
// as thin logical-buffer steps, moveStart/moveEnd/moveToLine walking
// per-line advances, and a sticky horizontal offset carried across
// vertical moves (gio's carXOff) — generalized from gio's single
// logical-direction editor (always LTR buffer order) to bidi-aware
// visual movement, since position.go itself carries no navigation
// logic to adapt directly.
package cursor

import (
	"github.com/textkit/richlayout/text/layout"
)

// Affinity disambiguates a Cursor sitting exactly on a cluster or line
// boundary.
type Affinity int

const (
	AffinityUpstream Affinity = iota
	AffinityDownstream
)

// Cursor is a position in a Layout: a character index clamped to a
// cluster-start boundary, plus the affinity that resolves which side
// of a bidi or line-wrap boundary it belongs to.
type Cursor struct {
	Index    int
	Affinity Affinity
}

// Rect is a caret or selection rectangle in layout-local coordinates.
type Rect struct {
	Left, Top, Right, Bottom float32
}

func (r Rect) Width() float32 { return r.Right - r.Left }

// clusterAt returns the index of the cluster whose TextRange contains
// idx, clamping idx to that cluster's start (at or before idx); an idx
// at or past the last cluster's end maps to the last cluster. ok is
// false for an empty layout.
func clusterAt(lay *layout.Layout, idx int) (clusterIdx, clamped int, ok bool) {
	data := lay.Data()
	n := len(data.Clusters)
	if n == 0 {
		return 0, 0, false
	}
	for i, c := range data.Clusters {
		if idx < c.TextRange.End || i == n-1 {
			return i, c.TextRange.Start, true
		}
	}
	return n - 1, data.Clusters[n-1].TextRange.Start, true
}

func lineContainingCluster(lay *layout.Layout, clusterIdx int) int {
	data := lay.Data()
	for i, ln := range data.Lines {
		if clusterIdx >= ln.ClusterRange.Start && clusterIdx < ln.ClusterRange.End {
			return i
		}
	}
	return len(data.Lines) - 1
}

// FromIndex clamps index to a cluster-start boundary in logical order.
// If the resulting cluster begins a line produced by an explicit
// (mandatory) break, affinity is forced Downstream, per spec.md §4.7.
func FromIndex(lay *layout.Layout, index int, affinity Affinity) Cursor {
	ci, clamped, ok := clusterAt(lay, index)
	if !ok {
		return Cursor{Index: 0, Affinity: AffinityDownstream}
	}
	line := lineContainingCluster(lay, ci)
	data := lay.Data()
	if data.Lines[line].ClusterRange.Start == ci && line > 0 &&
		data.Lines[line-1].BreakReason == layout.BreakReasonExplicit {
		affinity = AffinityDownstream
	}
	return Cursor{Index: clamped, Affinity: affinity}
}

// FromPoint locates the cursor nearest (x, y): the line by y, then the
// run and cluster in visual order by x, per spec.md §4.7.
func FromPoint(lay *layout.Layout, x, y float32) Cursor {
	data := lay.Data()
	if len(data.Lines) == 0 {
		return Cursor{Affinity: AffinityDownstream}
	}
	lineIdx := 0
	for i, ln := range data.Lines {
		lineIdx = i
		if y <= ln.Metrics.MaxCoord || i == len(data.Lines)-1 {
			break
		}
	}
	ln := data.Lines[lineIdx]
	lv := lay.Line(lineIdx)
	cx := ln.Offset
	runs := lv.Runs()
	for _, rv := range runs {
		clusters := rv.VisualClusters()
		for _, cv := range clusters {
			adv := cv.Advance()
			if x < cx+adv/2 {
				// leading half: caret belongs before this cluster visually.
				if rv.IsRTL() {
					return Cursor{Index: cv.TextRange().End, Affinity: AffinityUpstream}
				}
				return Cursor{Index: cv.TextRange().Start, Affinity: AffinityDownstream}
			}
			if x < cx+adv {
				// trailing half.
				if lineIdx < len(data.Lines)-1 && data.Lines[lineIdx].BreakReason == layout.BreakReasonExplicit &&
					cv.TextRange().End == ln.TextRange.End {
					return Cursor{Index: data.Lines[lineIdx+1].TextRange.Start, Affinity: AffinityDownstream}
				}
				if rv.IsRTL() {
					return Cursor{Index: cv.TextRange().Start, Affinity: AffinityDownstream}
				}
				return Cursor{Index: cv.TextRange().End, Affinity: AffinityUpstream}
			}
			cx += adv
		}
	}
	return Cursor{Index: ln.TextRange.End, Affinity: AffinityUpstream}
}

// NextLogical / PreviousLogical move by one cluster in logical (source
// byte) order, ignoring visual direction.
func NextLogical(lay *layout.Layout, cur Cursor) Cursor {
	ci, _, ok := clusterAt(lay, cur.Index)
	if !ok {
		return cur
	}
	data := lay.Data()
	if ci+1 >= len(data.Clusters) {
		return Cursor{Index: data.Clusters[ci].TextRange.End, Affinity: AffinityUpstream}
	}
	return Cursor{Index: data.Clusters[ci+1].TextRange.Start, Affinity: AffinityDownstream}
}

func PreviousLogical(lay *layout.Layout, cur Cursor) Cursor {
	ci, _, ok := clusterAt(lay, cur.Index)
	if !ok {
		return cur
	}
	if ci == 0 {
		return cur
	}
	return Cursor{Index: lay.Data().Clusters[ci-1].TextRange.Start, Affinity: AffinityDownstream}
}

// NextWord / PreviousWord walk cluster-by-cluster in logical order
// until a word-boundary cluster is crossed.
func NextWord(lay *layout.Layout, cur Cursor) Cursor {
	data := lay.Data()
	ci, _, ok := clusterAt(lay, cur.Index)
	if !ok {
		return cur
	}
	for i := ci; i < len(data.Clusters); i++ {
		if data.Clusters[i].IsWordBoundary {
			if i+1 < len(data.Clusters) {
				return Cursor{Index: data.Clusters[i+1].TextRange.Start, Affinity: AffinityDownstream}
			}
			return Cursor{Index: data.Clusters[i].TextRange.End, Affinity: AffinityUpstream}
		}
	}
	return Cursor{Index: data.Clusters[len(data.Clusters)-1].TextRange.End, Affinity: AffinityUpstream}
}

func PreviousWord(lay *layout.Layout, cur Cursor) Cursor {
	data := lay.Data()
	ci, _, ok := clusterAt(lay, cur.Index)
	if !ok {
		return cur
	}
	for i := ci - 1; i >= 0; i-- {
		if data.Clusters[i].IsWordBoundary {
			return Cursor{Index: data.Clusters[i+1].TextRange.Start, Affinity: AffinityDownstream}
		}
	}
	return Cursor{Index: 0, Affinity: AffinityDownstream}
}

// visualSequence returns the global cluster indices of a line in
// visual order.
func visualSequence(lay *layout.Layout, lineIdx int) []int {
	var seq []int
	for _, rv := range lay.Line(lineIdx).Runs() {
		for _, cv := range rv.VisualClusters() {
			seq = append(seq, cv.Index())
		}
	}
	return seq
}

// levelOfCluster returns the bidi level of the run owning a cluster.
func levelOfCluster(lay *layout.Layout, clusterIdx int) uint8 {
	data := lay.Data()
	return data.Runs[data.Clusters[clusterIdx].RunIndex].Item.Level
}

// locate finds (line, slot) such that slot is the position of cur's
// cluster within its line's visual sequence.
func locate(lay *layout.Layout, cur Cursor) (line, slot int, ok bool) {
	ci, _, found := clusterAt(lay, cur.Index)
	if !found {
		return 0, 0, false
	}
	line = lineContainingCluster(lay, ci)
	seq := visualSequence(lay, line)
	for i, idx := range seq {
		if idx == ci {
			return line, i, true
		}
	}
	return line, 0, true
}

// NextVisual moves one cluster in the direction of reading. At a
// direction change on the visual boundary (stepping between clusters
// of differing level parity that are not logically adjacent), the
// first step swaps affinity instead of advancing past the boundary,
// producing the caret-at-boundary effect spec.md §4.7 requires.
func NextVisual(lay *layout.Layout, cur Cursor) Cursor {
	line, slot, ok := locate(lay, cur)
	if !ok {
		return cur
	}
	seq := visualSequence(lay, line)
	if slot >= len(seq)-1 {
		if line+1 >= lay.Lines() {
			return cur
		}
		nextSeq := visualSequence(lay, line+1)
		if len(nextSeq) == 0 {
			return cur
		}
		data := lay.Data()
		return Cursor{Index: data.Clusters[nextSeq[0]].TextRange.Start, Affinity: AffinityDownstream}
	}
	cur1, cur2 := seq[slot], seq[slot+1]
	data := lay.Data()
	if levelOfCluster(lay, cur1)%2 != levelOfCluster(lay, cur2)%2 &&
		data.Clusters[cur1].TextRange.End != data.Clusters[cur2].TextRange.Start &&
		cur.Affinity != AffinityUpstream {
		return Cursor{Index: cur.Index, Affinity: AffinityUpstream}
	}
	return Cursor{Index: data.Clusters[cur2].TextRange.Start, Affinity: AffinityDownstream}
}

// PreviousVisual is NextVisual's mirror image.
func PreviousVisual(lay *layout.Layout, cur Cursor) Cursor {
	line, slot, ok := locate(lay, cur)
	if !ok {
		return cur
	}
	if slot <= 0 {
		if line == 0 {
			return cur
		}
		prevSeq := visualSequence(lay, line-1)
		if len(prevSeq) == 0 {
			return cur
		}
		data := lay.Data()
		last := prevSeq[len(prevSeq)-1]
		return Cursor{Index: data.Clusters[last].TextRange.End, Affinity: AffinityUpstream}
	}
	seq := visualSequence(lay, line)
	cur1, cur2 := seq[slot], seq[slot-1]
	data := lay.Data()
	if levelOfCluster(lay, cur1)%2 != levelOfCluster(lay, cur2)%2 &&
		data.Clusters[cur2].TextRange.End != data.Clusters[cur1].TextRange.Start &&
		cur.Affinity != AffinityDownstream {
		return Cursor{Index: cur.Index, Affinity: AffinityDownstream}
	}
	return Cursor{Index: data.Clusters[cur2].TextRange.Start, Affinity: AffinityDownstream}
}

// geometryX computes the horizontal coordinate of cur within its line.
func geometryX(lay *layout.Layout, cur Cursor) float32 {
	line, slot, ok := locate(lay, cur)
	if !ok {
		return 0
	}
	ln := lay.Data().Lines[line]
	x := ln.Offset
	seq := visualSequence(lay, line)
	data := lay.Data()
	for i := 0; i < slot && i < len(seq); i++ {
		x += data.Clusters[seq[i]].Advance
	}
	return x
}

// NextLine / PreviousLine move vertically, using the caret's current x
// as a sticky horizontal position (gio's carXOff idiom), re-resolved
// against the target line via FromPoint.
func NextLine(lay *layout.Layout, cur Cursor, hPos *float32) Cursor {
	return moveLine(lay, cur, hPos, 1)
}

func PreviousLine(lay *layout.Layout, cur Cursor, hPos *float32) Cursor {
	return moveLine(lay, cur, hPos, -1)
}

func moveLine(lay *layout.Layout, cur Cursor, hPos *float32, delta int) Cursor {
	line, _, ok := locate(lay, cur)
	if !ok {
		return cur
	}
	x := geometryX(lay, cur)
	if hPos != nil && *hPos != 0 {
		x = *hPos
	}
	if hPos != nil {
		*hPos = x
	}
	target := line + delta
	if target < 0 {
		target = 0
	}
	if target >= lay.Lines() {
		target = lay.Lines() - 1
	}
	ln := lay.Data().Lines[target]
	centerY := (ln.Metrics.MinCoord + ln.Metrics.MaxCoord) / 2
	return FromPoint(lay, x, centerY)
}

// Geometry returns, as strong, one caret rectangle at cur's position on
// its line, spanning the line's MinCoord to MaxCoord. It does not choose
// a run by level at a bidi direction boundary, and weak is always nil.
func Geometry(lay *layout.Layout, cur Cursor, caretWidth float32) (strong Rect, weak *Rect) {
	line, _, ok := locate(lay, cur)
	if !ok {
		return Rect{}, nil
	}
	ln := lay.Data().Lines[line]
	x := geometryX(lay, cur)
	strong = Rect{Left: x, Top: ln.Metrics.MinCoord, Right: x + caretWidth, Bottom: ln.Metrics.MaxCoord}
	return strong, nil
}

// Selection is an anchor/focus pair of cursors plus a sticky
// horizontal position for vertical extension moves.
type Selection struct {
	Anchor Cursor
	Focus  Cursor
	HPos   *float32
}

// TextRange returns the selection's sorted [min, max) index range.
func (s Selection) TextRange() (start, end int) {
	if s.Anchor.Index <= s.Focus.Index {
		return s.Anchor.Index, s.Focus.Index
	}
	return s.Focus.Index, s.Anchor.Index
}

// Geometry emits one rectangle per line intersected by the selection,
// in visual-cluster order, with a minimum width so an empty selected
// line remains visible.
func (s Selection) Geometry(lay *layout.Layout, minRectWidth float32) []Rect {
	start, end := s.TextRange()
	if start == end {
		return nil
	}
	var rects []Rect
	data := lay.Data()
	for li, ln := range data.Lines {
		if ln.TextRange.End <= start || ln.TextRange.Start >= end {
			continue
		}
		lv := lay.Line(li)
		x := ln.Offset
		var rectStart float32 = -1
		var rectEnd float32
		flush := func() {
			if rectStart < 0 {
				return
			}
			r := Rect{Left: rectStart, Top: ln.Metrics.MinCoord, Right: rectEnd, Bottom: ln.Metrics.MaxCoord}
			if r.Width() < minRectWidth {
				r.Right = r.Left + minRectWidth
			}
			rects = append(rects, r)
			rectStart = -1
		}
		for _, rv := range lv.Runs() {
			for _, cv := range rv.VisualClusters() {
				adv := cv.Advance()
				inSel := cv.TextRange().Start < end && cv.TextRange().End > start
				if inSel {
					if rectStart < 0 {
						rectStart = x
					}
					rectEnd = x + adv
				} else {
					flush()
				}
				x += adv
			}
		}
		flush()
	}
	return rects
}
