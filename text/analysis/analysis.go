// Package analysis implements the text-analysis pass that turns raw
// text and a style-range list into a per-character CharInfo vector and
// a paragraph bidi level vector (spec.md §4.2).
//
// Grounded on: skia/paragraph/text_wrapper.go's per-cluster annotation
// loop (it walks cluster-by-cluster recording break class, whitespace,
// and control-character flags into a side table before line breaking;
// CharInfo generalizes that table to operate per character instead of
// per shaped cluster, since break opportunities must be known before
// shaping runs exist). Line-break opportunities (UAX #14) and the
// grapheme-cluster stops word-break: break-all needs are computed with
// github.com/go-text/typesetting/segmenter's Segmenter.LineIterator
// and Segmenter.GraphemeIterator, the same package and iterator pair
// esimov-caire's vendored shaping/wrapping.go drives for line wrapping
// (newBreaker's wordSegmenter/graphemeSegmenter fields); segmenter has
// no CSS word-break mode of its own, so keep-all/break-all are layered
// on top of its plain UAX #14 boundaries as an explicit post-process
// rather than invented as a segmenter option. Word boundaries
// (UAX #29, for double-click selection) and the per-character
// grapheme-extend flag are a separate concern from line-break
// opportunities and stay on github.com/rivo/uniseg, a complete UAX #29
// implementation already used for that purpose elsewhere.
package analysis

import (
	"github.com/go-text/typesetting/segmenter"
	"github.com/rivo/uniseg"

	"github.com/textkit/richlayout/text/bidi"
	"github.com/textkit/richlayout/text/rangetable"
	"github.com/textkit/richlayout/text/style"
	"github.com/textkit/richlayout/text/ucd"
)

// Boundary classifies the break opportunity immediately following a
// character.
type Boundary int

const (
	BoundaryNone Boundary = iota
	BoundaryWord
	BoundaryLine
	BoundaryMandatory
)

// GraphemeBreak classifies a character's relationship to its grapheme
// cluster: whether it starts a new cluster or extends the previous
// one. This is a practical two-state simplification of UAX #29's full
// break-class table (Extend, SpacingMark, Prepend, ZWJ, ...) — uniseg
// exposes cluster boundaries, not named per-rune break classes, and
// spec.md's only consumer of this field (force_normalize) only needs
// the boundary/extend distinction.
type GraphemeBreak int

const (
	GraphemeBreakBoundary GraphemeBreak = iota
	GraphemeBreakExtend
)

// CharInfo is spec.md §3's per-character analysis record.
type CharInfo struct {
	Boundary             Boundary
	BidiLevel            bidi.Level
	Script               ucd.Script
	GraphemeBreak        GraphemeBreak
	IsControl            bool
	ContributesToShaping bool
	ForceNormalize       bool
}

// Result is the output of Analyze.
type Result struct {
	Text      []rune
	Info      []CharInfo
	BaseLevel bidi.Level
}

// Analyze runs spec.md §4.2's procedure. wordBreakRuns may be nil,
// meaning every character uses style.WordBreakNormal.
func Analyze(text []rune, wordBreakRuns *rangetable.Table[style.WordBreak], dir bidi.Direction) *Result {
	if len(text) == 0 {
		text = []rune{' '}
	}
	info := make([]CharInfo, len(text))

	markWordBoundaries(text, info)
	markLineBoundaries(text, wordBreakRuns, info)
	markMandatoryBreaks(text, info)
	annotateCharacters(text, info)

	bres := bidi.Resolve(text, dir)
	for i := range info {
		info[i].BidiLevel = bres.Levels[i]
	}

	return &Result{Text: text, Info: info, BaseLevel: bres.ParagraphLevel}
}

// markWordBoundaries implements step 2: UAX #29 word boundaries,
// discarding the trailing boundary at len(text).
func markWordBoundaries(text []rune, info []CharInfo) {
	str := string(text)
	state := -1
	runeIdx := 0
	for len(str) > 0 {
		word, rest, newState := uniseg.FirstWordInString(str, state)
		state = newState
		runeIdx += len([]rune(word))
		if end := runeIdx - 1; end >= 0 && end < len(text)-1 {
			info[end].Boundary = BoundaryWord
		}
		str = rest
	}
}

// markLineBoundaries implements step 3: per-word_break-run line
// segmentation, honoring Normal/KeepAll/BreakAll, with adjacent runs
// overlapping by one character so the boundary at the seam is computed
// from the following run's perspective.
func markLineBoundaries(text []rune, wordBreakRuns *rangetable.Table[style.WordBreak], info []CharInfo) {
	runs := wordBreakSegments(text, wordBreakRuns)
	for ri, run := range runs {
		lo, hi := run.start, run.end
		if ri > 0 {
			lo-- // one character of overlap from the previous run
		}
		substr := text[lo:hi]
		boundaries := lineBreaksFor(substr, run.mode)
		isFinal := ri == len(runs)-1
		for _, b := range boundaries {
			global := lo + b.afterIndex
			if global < 0 || global >= len(text) {
				continue
			}
			if !isFinal && global == hi-1 {
				// the "last char" boundary of a non-final run belongs
				// to the next run's perspective; skip it here.
				continue
			}
			if global == len(text)-1 {
				continue // trailing pseudo-boundary at text end
			}
			if info[global].Boundary < BoundaryLine {
				info[global].Boundary = BoundaryLine
			}
			if b.mandatory {
				info[global].Boundary = BoundaryMandatory
			}
		}
	}
}

type wordBreakRun struct {
	start, end int
	mode       style.WordBreak
}

func wordBreakSegments(text []rune, table *rangetable.Table[style.WordBreak]) []wordBreakRun {
	if table == nil {
		return []wordBreakRun{{start: 0, end: len(text), mode: style.WordBreakNormal}}
	}
	segs := table.Segment(len(text))
	if len(segs) == 0 {
		return []wordBreakRun{{start: 0, end: len(text), mode: style.WordBreakNormal}}
	}
	runs := make([]wordBreakRun, 0, len(segs))
	for _, s := range segs {
		mode := style.WordBreakNormal
		if len(s.Active) > 0 {
			mode = s.Active[len(s.Active)-1]
		}
		if len(runs) > 0 && runs[len(runs)-1].mode == mode && runs[len(runs)-1].end == s.Range.Start {
			runs[len(runs)-1].end = s.Range.End
			continue
		}
		runs = append(runs, wordBreakRun{start: s.Range.Start, end: s.Range.End, mode: mode})
	}
	return runs
}

type lineBreakPoint struct {
	afterIndex int // index within the substring; boundary falls after this rune
	mandatory  bool
}

// lineBreaksFor computes line break opportunities within one run under
// the given word_break policy.
func lineBreaksFor(substr []rune, mode style.WordBreak) []lineBreakPoint {
	switch mode {
	case style.WordBreakBreakAll:
		return graphemeBoundaries(substr)
	case style.WordBreakKeepAll:
		return uax14Boundaries(substr, true)
	default:
		return uax14Boundaries(substr, false)
	}
}

// graphemeBoundaries treats every grapheme cluster boundary as a line
// break opportunity, matching word-break: break-all.
func graphemeBoundaries(substr []rune) []lineBreakPoint {
	var points []lineBreakPoint
	var seg segmenter.Segmenter
	seg.Init(substr)
	it := seg.GraphemeIterator()
	for it.Next() {
		g := it.Grapheme()
		if end := g.Offset + len(g.Text) - 1; end >= 0 {
			points = append(points, lineBreakPoint{afterIndex: end})
		}
	}
	return points
}

// uax14Boundaries computes UAX #14 line break opportunities using
// segmenter's LineIterator. segmenter has no keep-all/break-all notion
// of its own, so when keepAll is set, a boundary between two letters
// of the same ideographic-leaning script is suppressed (merged back
// into the surrounding segment) as a post-process over its plain UAX
// #14 output, matching word-break: keep-all.
func uax14Boundaries(substr []rune, keepAll bool) []lineBreakPoint {
	var points []lineBreakPoint
	var seg segmenter.Segmenter
	seg.Init(substr)
	it := seg.LineIterator()
	for it.Next() {
		ln := it.Line()
		end := ln.Offset + len(ln.Text) - 1
		if keepAll && end+1 < len(substr) {
			if isKeepAllScript(substr[end]) && isKeepAllScript(substr[end+1]) {
				continue
			}
		}
		if end >= 0 {
			points = append(points, lineBreakPoint{afterIndex: end, mandatory: ln.IsMandatoryBreak})
		}
	}
	return points
}

func isKeepAllScript(r rune) bool {
	switch ucd.LookupScript(r) {
	case "Hani", "Hira", "Kana", "Hang":
		return true
	}
	return false
}

// markMandatoryBreaks implements step 4: CR/LF/NEL (and U+2028/U+2029)
// mark their own position Mandatory, since a boundary is recorded on
// the character before the break.
func markMandatoryBreaks(text []rune, info []CharInfo) {
	for i, r := range text {
		if r == '\n' || r == '\r' || r == 0x0085 || r == 0x2028 || r == 0x2029 {
			if i < len(info) {
				info[i].Boundary = BoundaryMandatory
			}
		}
	}
}

// annotateCharacters implements step 5: script, grapheme-break, and
// the is_control/contributes_to_shaping/force_normalize derived
// booleans.
func annotateCharacters(text []rune, info []CharInfo) {
	str := string(text)
	state := -1
	runeIdx := 0
	firstOfCluster := make([]bool, len(text))
	for len(str) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(str, state)
		state = newState
		clusterLen := len([]rune(cluster))
		if runeIdx < len(firstOfCluster) {
			firstOfCluster[runeIdx] = true
		}
		runeIdx += clusterLen
		str = rest
	}

	for i, r := range text {
		info[i].Script = ucd.LookupScript(r)
		category := ucd.LookupCategory(r)
		info[i].IsControl = category == ucd.CategoryControl
		info[i].ContributesToShaping = !info[i].IsControl ||
			(category == ucd.CategoryFormat && info[i].Script != ucd.ScriptInherited)

		if firstOfCluster[i] {
			info[i].GraphemeBreak = GraphemeBreakBoundary
		} else {
			info[i].GraphemeBreak = GraphemeBreakExtend
		}
		info[i].ForceNormalize = info[i].GraphemeBreak == GraphemeBreakExtend &&
			!ucd.IsZWNJ(r) && !ucd.IsVariationSelector(r)
	}
}
