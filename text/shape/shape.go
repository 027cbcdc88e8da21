// Package shape turns itemized text into shaped runs of glyphs grouped
// into clusters (spec.md §4.4).
//
// Grounded on: skia/shaper/interfaces.go's Shaper/RunHandler pair and
// skia/shaper/handler.go's RunInfo/Buffer (Glyphs/Positions/Clusters
// slices tagged with a Utf8Range) for the shape of a "one shaped run"
// result; generalized from a push-style RunHandler callback (the
// C++-derived SkShaper::RunHandler pattern the teacher keeps) to a
// value returned directly from ShapeItem, since this driver itself
// builds Cluster records rather than delegating that bookkeeping to a
// caller-supplied handler.
package shape

import (
	"github.com/textkit/richlayout/text/itemize"
	"github.com/textkit/richlayout/text/rangetable"
)

// Glyph is one shaped glyph, already scaled into pixel space.
type Glyph struct {
	GlyphID      uint16
	XAdvance     float32
	YAdvance     float32
	XOffset      float32
	YOffset      float32
	ClusterIndex int // rune offset within the item this glyph came from
}

// Cluster groups the glyphs produced from one (or, for ligatures, the
// start of several) source character(s).
type Cluster struct {
	TextRange              rangetable.TextRange // rune range within the full paragraph
	GlyphOffset            int                  // index into Run.Glyphs
	GlyphLen               int
	Advance                float32
	IsLigatureStart        bool
	IsLigatureContinuation bool
	IsInlineBox            bool
}

// Run is one shaped item: a sequence of glyphs, grouped into clusters,
// plus the font metrics scaled to this run's size.
type Run struct {
	Item     itemize.Item
	Glyphs   []Glyph
	Clusters []Cluster
	Ascent   float32
	Descent  float32
	Leading  float32
}

// TotalAdvance sums the width-carrying clusters' advances. A ligature
// continuation's Advance is a pro-rata share of its start cluster's
// advance (used to interpolate caret position inside the ligature,
// see text/cursor); it is not additional width, so it is excluded here
// (spec.md §9's ligature-advance open question: only the start cluster
// is treated as width-carrying).
func (r Run) TotalAdvance() float32 {
	var total float32
	for _, c := range r.Clusters {
		if c.IsLigatureContinuation {
			continue
		}
		total += c.Advance
	}
	return total
}

// FontBackend shapes one item's text against a single candidate font
// and reports whether every cluster was covered (no .notdef glyphs).
// A concrete implementation wraps github.com/go-text/typesetting's
// HarfBuzz-backed shaper (shaping.Input/Output) plus a font.Face
// resolved from the style's font stack; this package only depends on
// the FontBackend seam so the OpenType-shaping machinery lives at the
// boundary, not spread through the driver.
type FontBackend interface {
	// Shape shapes text[item.Range.Start:item.Range.End] and appends
	// its glyphs and per-cluster boundaries. ok is false if any glyph
	// resolved to .notdef, signaling the driver to retry the next
	// fallback font.
	Shape(text []rune, item itemize.Item) (glyphs []Glyph, clusterEnds []int, ok bool)
	Metrics(fontSize float32) (ascent, descent, leading float32)
}

// Shaper drives font fallback and cluster/ligature bookkeeping for a
// sequence of items.
type Shaper struct {
	// Fallback resolves a style's font stack plus platform fallback
	// into an ordered list of candidate backends to try, stopping at
	// the first whose coverage succeeds (spec.md §4.4 "Font fallback").
	Fallback func(itemize.Item) []FontBackend
}

// inlineBoxPlaceholder is the rune spec.md reserves for attachments:
// U+FFFC OBJECT REPLACEMENT CHARACTER.
const inlineBoxPlaceholder = '￼'

// ShapeItem shapes one itemized run, applying font fallback, ligature
// splitting, and word-spacing.
func (s *Shaper) ShapeItem(text []rune, item itemize.Item) Run {
	if isInlineBoxItem(text, item) {
		return shapeInlineBox(item)
	}

	candidates := s.Fallback(item)
	for ci, backend := range candidates {
		glyphs, clusterEnds, ok := backend.Shape(text, item)
		if !ok && ci < len(candidates)-1 {
			continue
		}
		run := buildRun(text, item, glyphs, clusterEnds)
		run.Ascent, run.Descent, run.Leading = backend.Metrics(item.Style.FontSize)
		applyWordSpacing(text, item, &run)
		return run
	}
	return Run{Item: item}
}

func isInlineBoxItem(text []rune, item itemize.Item) bool {
	return item.Range.Width() == 1 && text[item.Range.Start] == inlineBoxPlaceholder
}

func shapeInlineBox(item itemize.Item) Run {
	return Run{
		Item: item,
		Clusters: []Cluster{{
			TextRange:   item.Range,
			IsInlineBox: true,
		}},
	}
}

// buildRun groups glyphs into clusters using clusterEnds (the rune
// offset, relative to item.Range.Start, where each glyph's source
// cluster ends) and splits ligatures: a cluster mapping m source
// characters to n glyphs where n < m becomes one ligature-start
// cluster carrying all n glyphs plus (m-n) zero-width continuation
// clusters, each sharing the start's advance pro-rata.
func buildRun(text []rune, item itemize.Item, glyphs []Glyph, clusterEnds []int) Run {
	run := Run{Item: item, Glyphs: glyphs}
	if len(glyphs) == 0 {
		return run
	}

	glyphStart := 0
	charStart := 0
	for gi := 0; gi <= len(glyphs); gi++ {
		atBoundary := gi == len(glyphs) || (gi > glyphStart && glyphs[gi].ClusterIndex != glyphs[glyphStart].ClusterIndex)
		if !atBoundary {
			continue
		}
		charEnd := item.Range.Width()
		if gi < len(clusterEnds) {
			charEnd = clusterEnds[gi-1]
		}
		nChars := charEnd - charStart
		nGlyphs := gi - glyphStart
		advance := sumAdvance(glyphs[glyphStart:gi])
		isLigature := nGlyphs < nChars && nChars > 1

		// A ligature-start cluster covers as many leading characters as
		// there are glyphs (ordinarily one, for the common case of a
		// multi-character glyph like "ffi" -> a single glyph); the
		// remaining m-n characters each get a zero-width continuation.
		startWidth := nChars
		if isLigature {
			startWidth = nGlyphs
			if startWidth == 0 {
				startWidth = 1
			}
		}

		run.Clusters = append(run.Clusters, Cluster{
			TextRange:       rangetable.NewTextRange(item.Range.Start+charStart, item.Range.Start+charStart+startWidth),
			GlyphOffset:     glyphStart,
			GlyphLen:        nGlyphs,
			Advance:         advance,
			IsLigatureStart: isLigature,
		})
		if isLigature {
			continuations := nChars - startWidth
			for extra := 0; extra < continuations; extra++ {
				pos := charStart + startWidth + extra
				run.Clusters = append(run.Clusters, Cluster{
					TextRange:              rangetable.NewTextRange(item.Range.Start+pos, item.Range.Start+pos+1),
					GlyphOffset:            glyphStart,
					GlyphLen:               0,
					Advance:                advance / float32(continuations+1),
					IsLigatureContinuation: true,
				})
			}
		}

		charStart = charEnd
		glyphStart = gi
	}
	return run
}

func sumAdvance(glyphs []Glyph) float32 {
	var total float32
	for _, g := range glyphs {
		total += g.XAdvance
	}
	return total
}

// applyWordSpacing adds style.WordSpacing to any cluster whose single
// source character is a space (U+0020) or no-break space (U+00A0).
func applyWordSpacing(text []rune, item itemize.Item, run *Run) {
	if item.Style.WordSpacing == 0 {
		return
	}
	for i := range run.Clusters {
		c := &run.Clusters[i]
		if c.TextRange.Width() != 1 {
			continue
		}
		r := text[c.TextRange.Start]
		if r == ' ' || r == 0x00A0 {
			c.Advance += item.Style.WordSpacing
		}
	}
}
