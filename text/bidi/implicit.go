package bidi

import utext "golang.org/x/text/unicode/bidi"

// resolveImplicit implements rules I1-I2: after weak and neutral
// resolution every character in a sequence is either L, R, EN, or AN,
// and its level is bumped according to the parity of its current
// embedding level.
func resolveImplicit(classes []class, levels []Level, seq sequence) {
	for _, ix := range seq.indices {
		lvl := levels[ix]
		if !lvl.IsRTL() {
			switch classes[ix] {
			case utext.R:
				levels[ix] = lvl + 1
			case utext.EN, utext.AN:
				levels[ix] = lvl + 2
			}
		} else {
			switch classes[ix] {
			case utext.L, utext.EN, utext.AN:
				levels[ix] = lvl + 1
			}
		}
	}
}

// resetWhitespaceLevels implements rule L1: segment and paragraph
// separators, and any run of whitespace or isolate formatting
// characters immediately preceding one of them or ending the text,
// are reset to the paragraph level. It consults the original
// (pre-W/N/I) bidi classes, as L1 requires.
func resetWhitespaceLevels(orig []class, levels []Level, paragraphLevel Level) {
	n := len(levels)
	resettable := func(c class) bool {
		switch c {
		case utext.WS, utext.FSI, utext.LRI, utext.RLI, utext.PDI:
			return true
		}
		return false
	}

	i := n
	for i > 0 && resettable(orig[i-1]) {
		i--
	}
	for k := i; k < n; k++ {
		levels[k] = paragraphLevel
	}

	for i := 0; i < n; i++ {
		if orig[i] != utext.B && orig[i] != utext.S {
			continue
		}
		levels[i] = paragraphLevel
		j := i
		for j > 0 && resettable(orig[j-1]) {
			j--
		}
		for k := j; k < i; k++ {
			levels[k] = paragraphLevel
		}
	}
}
