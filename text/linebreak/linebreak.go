// Package linebreak implements spec.md §4.5's greedy line breaker: it
// consumes a logically-ordered layout.LayoutData plus a maximum line
// advance and populates LayoutData.Lines, including each line's
// visually-ordered run items.
//
// Grounded on: skia/paragraph/text_wrapper.go's accumulator idiom
// (TextStretch tracking a candidate line's width plus a saved break
// point via SaveBreak/RestoreBreak) adapted from glyph-position
// bookkeeping over a single ParagraphImpl to a plain index/advance
// accumulator over layout.LayoutData's flat cluster buffer, since this
// package implements spec.md's single-pass greedy state machine rather
// than the teacher's multi-pass look-ahead/ellipsis engine (out of
// scope here, see SPEC_FULL.md §4.5).
package linebreak

import (
	"github.com/textkit/richlayout/text/analysis"
	"github.com/textkit/richlayout/text/layout"
	"github.com/textkit/richlayout/text/rangetable"
	"github.com/textkit/richlayout/text/style"
)

// breakState is the running accumulator for the line currently being
// built, the rough equivalent of the teacher's TextStretch.
type breakState struct {
	lineStart  int // first cluster index of the candidate line
	advance    float32
	trailingWS float32

	hasBreak   bool
	breakIdx   int // cluster index (inclusive) of the last soft break opportunity
	breakAdv   float32
	breakWS    float32
}

func (s *breakState) saveBreak(idx int) {
	s.hasBreak = true
	s.breakIdx = idx
	s.breakAdv = s.advance
	s.breakWS = s.trailingWS
}

func (s *breakState) resetAt(start int) {
	s.lineStart = start
	s.advance = 0
	s.trailingWS = 0
	s.hasBreak = false
}

// Break line-breaks a logically-ordered LayoutData against maxAdvance
// and returns the finished, read-only Layout. text and info are the
// same buffers produced by text/analysis.Analyze for the paragraph.
func Break(data *layout.LayoutData, text []rune, info []analysis.CharInfo, maxAdvance float32) *layout.Layout {
	n := len(data.Clusters)
	if n == 0 {
		data.Lines = append(data.Lines, layout.Line{BreakReason: layout.BreakReasonNone})
		finalizeExtents(data)
		return layout.Finish(data)
	}

	var st breakState
	var y float32

	c := 0
	for c < n {
		cr := &data.Clusters[c]
		boundary := boundaryAfter(cr, info)
		cr.IsHardLineBreak = boundary == analysis.BoundaryMandatory
		cr.IsSoftLineBreak = boundary == analysis.BoundaryLine || boundary == analysis.BoundaryWord
		cr.IsWordBoundary = cr.IsSoftLineBreak || cr.IsHardLineBreak

		if boundary == analysis.BoundaryMandatory {
			extend(&st, text, cr)
			y = appendLine(data, st.lineStart, c+1, st.advance, st.trailingWS, layout.BreakReasonExplicit, y)
			st.resetAt(c + 1)
			c++
			continue
		}

		if c > st.lineStart && st.advance+st.trailingWS+widthAdvance(cr) > maxAdvance {
			if st.hasBreak {
				y = appendLine(data, st.lineStart, st.breakIdx+1, st.breakAdv, st.breakWS, layout.BreakReasonRegular, y)
				st.resetAt(st.breakIdx + 1)
				c = st.lineStart
				continue
			}
			wrap := data.Runs[cr.RunIndex].Item.Style.OverflowWrap
			if wrap == style.OverflowWrapAnywhere || wrap == style.OverflowWrapBreakWord {
				y = appendLine(data, st.lineStart, c, st.advance, st.trailingWS, layout.BreakReasonEmergency, y)
				st.resetAt(c)
				continue
			}
			// overflow_wrap: Normal — let the line overflow and keep going.
		}

		extend(&st, text, cr)
		if cr.IsSoftLineBreak {
			st.saveBreak(c)
		}
		c++
	}

	y = appendLine(data, st.lineStart, n, st.advance, st.trailingWS, layout.BreakReasonNone, y)
	finalizeExtents(data)
	return layout.Finish(data)
}

// boundaryAfter looks up the break opportunity following cr, which
// analysis.CharInfo records on cr's last character (a boundary is
// stored on the character before the break).
func boundaryAfter(cr *layout.ClusterRecord, info []analysis.CharInfo) analysis.Boundary {
	pos := cr.TextRange.End - 1
	if pos < 0 || pos >= len(info) {
		return analysis.BoundaryNone
	}
	return info[pos].Boundary
}

func extend(st *breakState, text []rune, cr *layout.ClusterRecord) {
	adv := widthAdvance(cr)
	if isWhitespaceCluster(text, cr) {
		st.trailingWS += adv
		return
	}
	st.advance += st.trailingWS + adv
	st.trailingWS = 0
}

// widthAdvance is cr's contribution to a line's width. A ligature
// continuation's Advance is a pro-rata share of its start cluster's
// advance kept for caret interpolation (text/cursor), not additional
// width; only the ligature-start cluster carries width (spec.md §9).
func widthAdvance(cr *layout.ClusterRecord) float32 {
	if cr.IsLigatureContinuation {
		return 0
	}
	return cr.Advance
}

func isWhitespaceCluster(text []rune, cr *layout.ClusterRecord) bool {
	if cr.TextRange.Width() != 1 || cr.IsInlineBox {
		return false
	}
	r := text[cr.TextRange.Start]
	return r == ' ' || r == '\t' || r == 0x00A0
}

// appendLine closes the candidate line [start, end) of cluster indices
// and appends a layout.Line for it, returning the running y-coordinate
// for the next line.
func appendLine(data *layout.LayoutData, start, end int, advance, trailingWS float32, reason layout.BreakReason, y float32) float32 {
	items := partitionByRun(data, start, end)
	items = reorderVisually(items, func(runIdx int) uint8 { return data.Runs[runIdx].Item.Level })

	metrics := lineMetrics(data, start, end, advance, trailingWS)
	metrics.MinCoord = y
	metrics.MaxCoord = y + metrics.LineHeight

	textRange := data.Clusters[start].TextRange
	if end > start {
		textRange.End = data.Clusters[end-1].TextRange.End
	} else {
		textRange.End = textRange.Start
	}

	data.Lines = append(data.Lines, layout.Line{
		ClusterRange: rangetable.NewRange(start, end),
		TextRange:    textRange,
		Metrics:      metrics,
		BreakReason:  reason,
		Items:        items,
	})
	return y + metrics.LineHeight
}

// partitionByRun groups cluster indices [start, end) into contiguous
// per-run spans in logical order; since AppendRun assigns clusters to
// runs contiguously and in increasing run order, a simple linear scan
// suffices.
func partitionByRun(data *layout.LayoutData, start, end int) []layout.LineItem {
	if end <= start {
		return nil
	}
	var items []layout.LineItem
	segStart := start
	for i := start + 1; i <= end; i++ {
		if i < end && data.Clusters[i].RunIndex == data.Clusters[segStart].RunIndex {
			continue
		}
		items = append(items, layout.LineItem{
			RunIndex:     data.Clusters[segStart].RunIndex,
			ClusterStart: segStart,
			ClusterLen:   i - segStart,
		})
		segStart = i
	}
	return items
}

// reorderVisually applies the Unicode L2 reordering restricted to one
// line's run items (spec.md §4.5): reverse every maximal run of items
// whose level is >= l, for l descending from the line's maximum level
// to its lowest odd level.
func reorderVisually(items []layout.LineItem, levelOf func(int) uint8) []layout.LineItem {
	if len(items) < 2 {
		return items
	}
	var maxLevel, minOdd uint8
	minOdd = 255
	for _, it := range items {
		l := levelOf(it.RunIndex)
		if l > maxLevel {
			maxLevel = l
		}
		if l%2 == 1 && l < minOdd {
			minOdd = l
		}
	}
	if minOdd == 255 {
		return items // no RTL runs on this line
	}
	for l := maxLevel; l >= minOdd; l-- {
		i := 0
		for i < len(items) {
			if levelOf(items[i].RunIndex) < l {
				i++
				continue
			}
			j := i
			for j < len(items) && levelOf(items[j].RunIndex) >= l {
				j++
			}
			reverseItems(items[i:j])
			i = j
		}
	}
	return items
}

func reverseItems(s []layout.LineItem) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// lineMetrics computes ascent/descent/leading as the maximum over the
// runs touching [start, end) — the teacher's InternalLineMetrics.AddRun
// folds per-run extremes using min/max against Skia's negative-ascent
// convention; here Ascent/Descent are already positive magnitudes
// (style.Style/shape.Run's convention), so the fold is a plain max.
func lineMetrics(data *layout.LayoutData, start, end int, advance, trailingWS float32) layout.LineMetrics {
	var m layout.LineMetrics
	m.Advance = advance
	m.TrailingWhitespaceAdvance = trailingWS
	if end <= start {
		return m
	}
	seen := map[int]bool{}
	for i := start; i < end; i++ {
		ri := data.Clusters[i].RunIndex
		if seen[ri] {
			continue
		}
		seen[ri] = true
		r := data.Runs[ri]
		if r.Ascent > m.Ascent {
			m.Ascent = r.Ascent
		}
		if r.Descent > m.Descent {
			m.Descent = r.Descent
		}
		if r.Leading > m.Leading {
			m.Leading = r.Leading
		}
	}
	m.LineHeight = m.Ascent + m.Descent + m.Leading
	m.Baseline = m.Ascent
	return m
}

func finalizeExtents(data *layout.LayoutData) {
	var width, fullWidth, height float32
	for _, ln := range data.Lines {
		if ln.Metrics.Advance > width {
			width = ln.Metrics.Advance
		}
		total := ln.Metrics.Advance + ln.Metrics.TrailingWhitespaceAdvance
		if total > fullWidth {
			fullWidth = total
		}
		if ln.Metrics.MaxCoord > height {
			height = ln.Metrics.MaxCoord
		}
	}
	data.Width = width
	data.FullWidth = fullWidth
	data.Height = height
}
