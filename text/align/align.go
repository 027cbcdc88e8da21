// Package align implements spec.md §4.6: per-line horizontal offset
// assignment and justification, applied after line breaking.
//
// Grounded on: skia/paragraph/paragraph_impl_layout.go's formatLines
// (resolving TextAlignJustify to left-aligned-unless-RTL before
// delegating per line) and skia/paragraph/text_line.go's
// TextLine.Format/Justify (shift = remaining space for Right/Center,
// a whitespace-patch distribution pass for Justify), adapted from
// mutating cluster widths in place to recording a reversible
// Justification value per spec.md's "unjustify" contract, since this
// package's callers may need to re-break a paragraph at a new width.
package align

import (
	"github.com/textkit/richlayout/text/layout"
)

// Alignment mirrors spec.md §4.6's alignment modes.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignEnd
	AlignLeft
	AlignRight
	AlignCenter
	AlignJustify
)

// resolve turns a direction-relative alignment into a physical one.
func resolve(a Alignment, baseRTL bool) Alignment {
	switch a {
	case AlignStart:
		if baseRTL {
			return AlignRight
		}
		return AlignLeft
	case AlignEnd:
		if baseRTL {
			return AlignLeft
		}
		return AlignRight
	default:
		return a
	}
}

// clusterDelta records one cluster's advance adjustment so Unjustify
// can reverse it.
type clusterDelta struct {
	clusterIndex int
	delta        float32
}

// Justification is the reversible record of one line's justify pass.
type Justification struct {
	lineIndex int
	deltas    []clusterDelta
}

// Align assigns Line.Offset for every line in data and justifies lines
// where applicable, returning the justifications applied (for later
// Unjustify calls, e.g. before re-breaking at a new width).
func Align(data *layout.LayoutData, containerWidth float32, alignment Alignment, alignWhenOverflowing bool) []Justification {
	baseRTL := data.BaseLevel&1 == 1
	var justifications []Justification

	for i := range data.Lines {
		line := &data.Lines[i]
		overflowing := line.Metrics.Advance > containerWidth
		effective := resolve(alignment, baseRTL)
		if overflowing && !alignWhenOverflowing {
			effective = resolve(AlignStart, baseRTL)
		}

		switch effective {
		case AlignLeft:
			line.Offset = 0
		case AlignRight:
			line.Offset = containerWidth - line.Metrics.Advance
		case AlignCenter:
			line.Offset = (containerWidth - line.Metrics.Advance) / 2
		case AlignJustify:
			isLast := i == len(data.Lines)-1
			if !overflowing && !isLast && line.BreakReason != layout.BreakReasonExplicit {
				if j := justifyLine(data, i, containerWidth); j != nil {
					justifications = append(justifications, *j)
				}
			} else if baseRTL {
				line.Offset = containerWidth - line.Metrics.Advance
			} else {
				line.Offset = 0
			}
		}
	}
	return justifications
}

// justifyLine distributes (containerWidth - line.advance) across the
// clusters that sit at a CharInfo Word boundary within the line,
// increasing each such cluster's advance by an equal share.
func justifyLine(data *layout.LayoutData, lineIdx int, containerWidth float32) *Justification {
	line := &data.Lines[lineIdx]
	extra := containerWidth - line.Metrics.Advance
	if extra <= 0 {
		return nil
	}

	var gaps []int
	for i := line.ClusterRange.Start; i < line.ClusterRange.End; i++ {
		if data.Clusters[i].IsWordBoundary && !data.Clusters[i].IsInlineBox {
			gaps = append(gaps, i)
		}
	}
	if len(gaps) == 0 {
		return nil
	}

	share := extra / float32(len(gaps))
	j := &Justification{lineIndex: lineIdx}
	for _, ci := range gaps {
		data.Clusters[ci].Advance += share
		j.deltas = append(j.deltas, clusterDelta{clusterIndex: ci, delta: share})
	}
	line.Metrics.Advance += share * float32(len(gaps))
	return j
}

// Unjustify reverses a prior justification, restoring the affected
// clusters' advances and the line's advance metric.
func Unjustify(data *layout.LayoutData, j Justification) {
	line := &data.Lines[j.lineIndex]
	var total float32
	for _, d := range j.deltas {
		data.Clusters[d.clusterIndex].Advance -= d.delta
		total += d.delta
	}
	line.Metrics.Advance -= total
}
