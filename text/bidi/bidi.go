// Package bidi implements the Unicode Bidirectional Algorithm (UAX #9)
// used to compute per-character embedding levels and the visual run
// order of a paragraph.
//
// The teacher wraps golang.org/x/text/unicode/bidi.Paragraph for its own
// paragraph direction detection, but that type only exposes run-level
// LTR/RTL direction through Paragraph.Order() — never the exact numeric
// embedding level UAX #9 computes, and never L2 reordering across nested
// isolates. This package reuses ucd.LookupBidiClass (itself backed by
// bidi.LookupRune, whose Properties.Class() already resolves format
// characters to their distinct LRE/RLE/LRO/RLO/PDF/LRI/RLI/FSI/PDI
// classes) for per-rune class data, and implements the rest of the
// algorithm directly: explicit level/bracket stacks (X1-X8), isolating
// run sequences (BD13), weak/neutral/bracket-pair resolution (W1-W7,
// N0-N2), implicit levels (I1-I2), and the L1/L2 reorder.
package bidi

import (
	utext "golang.org/x/text/unicode/bidi"

	"github.com/textkit/richlayout/text/ucd"
)

// class is the per-rune bidi class, reusing golang.org/x/text's trie
// lookup table and exported Class constants (L, R, AL, EN, ... PDI).
type class = utext.Class

// Level is a UAX #9 embedding level. Even levels are left-to-right, odd
// levels are right-to-left.
type Level uint8

// IsRTL reports whether the level is right-to-left (odd).
func (l Level) IsRTL() bool { return l&1 == 1 }

// MaxDepth is the explicit embedding/override stack limit (rule X1).
const MaxDepth = 125

// maxBracketDepth is BD16's bracket pair stack limit.
const maxBracketDepth = 63

// Direction is the paragraph's base direction.
type Direction int

const (
	// DirectionAuto derives the base direction from the first strong
	// character (rule P2/P3).
	DirectionAuto Direction = iota
	DirectionLTR
	DirectionRTL
)

// Run is one maximal span of characters at a single embedding level,
// the atomic unit of BD13's isolating run sequences and of visual
// reordering.
type Run struct {
	Start, End int // rune offsets into the resolved text
	Level      Level
}

// Result holds the resolved levels for a paragraph and derived visual
// run order.
type Result struct {
	// Levels holds one entry per rune in the input.
	Levels []Level
	// ParagraphLevel is the base level computed (or given) for the
	// paragraph: 0 for LTR, 1 for RTL.
	ParagraphLevel Level
}

// VisualRuns groups Levels into maximal constant-level runs and returns
// them in left-to-right visual order (rule L2): runs are reordered by
// repeatedly reversing contiguous spans at each descending level down
// to the lowest odd level present.
func (r *Result) VisualRuns() []Run {
	runs := logicalRuns(r.Levels)
	if len(runs) == 0 {
		return runs
	}
	var maxLevel Level
	minOdd := Level(0xff)
	for _, run := range runs {
		if run.Level > maxLevel {
			maxLevel = run.Level
		}
		if run.Level.IsRTL() && run.Level < minOdd {
			minOdd = run.Level
		}
	}
	if minOdd > maxLevel {
		return runs // no odd levels at all: pure LTR paragraph
	}
	for level := maxLevel; level >= minOdd; level-- {
		i := 0
		for i < len(runs) {
			if runs[i].Level < level {
				i++
				continue
			}
			j := i
			for j < len(runs) && runs[j].Level >= level {
				j++
			}
			reverseRuns(runs[i:j])
			i = j
		}
		if level == 0 {
			break
		}
	}
	return runs
}

func reverseRuns(runs []Run) {
	for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
		runs[i], runs[j] = runs[j], runs[i]
	}
}

func logicalRuns(levels []Level) []Run {
	var runs []Run
	if len(levels) == 0 {
		return runs
	}
	start := 0
	cur := levels[0]
	for i := 1; i < len(levels); i++ {
		if levels[i] != cur {
			runs = append(runs, Run{Start: start, End: i, Level: cur})
			start = i
			cur = levels[i]
		}
	}
	runs = append(runs, Run{Start: start, End: len(levels), Level: cur})
	return runs
}

// Resolve runs the full UAX #9 algorithm over text and returns the
// per-rune embedding levels.
func Resolve(text []rune, dir Direction) *Result {
	n := len(text)
	classes := make([]class, n)
	for i, r := range text {
		classes[i] = ucd.LookupBidiClass(r)
	}
	origClasses := append([]class(nil), classes...)

	paraLevel := paragraphLevel(classes, dir)

	levels := make([]Level, n)
	resolveExplicit(classes, levels, paraLevel)

	for _, seq := range isolatingRunSequences(levels, origClasses) {
		resolveWeak(classes, seq)
		resolveNeutralAndBrackets(text, classes, origClasses, seq)
		resolveImplicit(classes, levels, seq)
	}

	resetWhitespaceLevels(origClasses, levels, paraLevel)

	return &Result{Levels: levels, ParagraphLevel: paraLevel}
}

// paragraphLevel implements rules P2-P3: scan for the first strong
// character (L, AL, or R), skipping the contents of isolates, to
// determine the base direction when dir is DirectionAuto.
func paragraphLevel(classes []class, dir Direction) Level {
	switch dir {
	case DirectionLTR:
		return 0
	case DirectionRTL:
		return 1
	}
	isolateDepth := 0
	for _, c := range classes {
		switch c {
		case utext.LRI, utext.RLI, utext.FSI:
			isolateDepth++
		case utext.PDI:
			if isolateDepth > 0 {
				isolateDepth--
			}
		default:
			if isolateDepth == 0 {
				switch c {
				case utext.L:
					return 0
				case utext.R, utext.AL:
					return 1
				}
			}
		}
	}
	return 0
}
