package bidi

import utext "golang.org/x/text/unicode/bidi"

// bracketPairs lists canonical bidirectional bracket pairs (BD14/BD15).
// golang.org/x/text/unicode/bidi exposes Properties.IsBracket and
// IsOpeningBracket but not its canonicalized counterpart rune (that
// mapping is unexported), so pairing here is done against this
// explicit table of the common ASCII and CJK/fullwidth bracket pairs
// rather than the full canonical-equivalence closure UAX #9 describes.
var bracketPairs = map[rune]rune{
	'(': ')', '[': ']', '{': '}',
	'（': '）', '［': '］', '｛': '｝',
	'〈': '〉', '《': '》', '「': '」', '『': '』', '【': '】',
}

type bracketOpen struct {
	r   rune
	pos int // index into seq.indices
}

type bracketPair struct{ open, close int }

// resolveNeutralAndBrackets implements N0 (bracket pairs), N1, and N2
// over one isolating run sequence.
func resolveNeutralAndBrackets(text []rune, classes []class, orig []class, seq sequence) {
	e := levelToClass(seq.level) // embedding direction
	resolveBracketPairs(text, classes, seq, e)
	resolveN1N2(classes, seq, e)
}

func resolveBracketPairs(text []rune, classes []class, seq sequence, e class) {
	idx := seq.indices
	var stack []bracketOpen
	var pairs []bracketPair

	for pos, ix := range idx {
		r := text[ix]
		if closeR, ok := bracketPairs[r]; ok {
			if len(stack) >= maxBracketDepth {
				break // BD16 overflow: stop bracket matching entirely
			}
			stack = append(stack, bracketOpen{r: closeR, pos: pos})
			continue
		}
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].r == r {
				pairs = append(pairs, bracketPair{open: stack[i].pos, close: pos})
				stack = stack[:i]
				break
			}
		}
	}
	sortPairsByOpen(pairs)

	strongClass := func(c class) (class, bool) {
		switch c {
		case utext.L:
			return utext.L, true
		case utext.R, utext.EN, utext.AN:
			return utext.R, true
		default:
			return 0, false
		}
	}

	for _, p := range pairs {
		found := class(0)
		has := false
		for k := p.open + 1; k < p.close; k++ {
			if sc, ok := strongClass(classes[idx[k]]); ok {
				if sc == e {
					found, has = sc, true
					break
				}
				if !has {
					found, has = sc, true
				}
			}
		}
		var resolved class
		switch {
		case !has:
			continue // no strong type inside: leave for N1/N2
		case found == e:
			resolved = e
		default:
			// Only the opposite direction was found inside the pair.
			// Use the nearest preceding strong context (sos if none)
			// to decide between that direction and e.
			context := seq.sos
			for k := p.open - 1; k >= 0; k-- {
				if sc, ok := strongClass(classes[idx[k]]); ok {
					context = sc
					break
				}
			}
			if context == found {
				resolved = found
			} else {
				resolved = e
			}
		}
		classes[idx[p.open]] = resolved
		classes[idx[p.close]] = resolved
	}
}

func sortPairsByOpen(pairs []bracketPair) {
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && pairs[j-1].open > pairs[j].open; j-- {
			pairs[j-1], pairs[j] = pairs[j], pairs[j-1]
		}
	}
}

func isNI(c class) bool {
	switch c {
	case utext.B, utext.S, utext.WS, utext.ON, utext.FSI, utext.LRI, utext.RLI, utext.PDI:
		return true
	}
	return false
}

// resolveN1N2 implements N1 (NI runs between same-direction strong
// neighbors take that direction) and N2 (remaining NIs take the
// embedding direction).
func resolveN1N2(classes []class, seq sequence, e class) {
	idx := seq.indices
	strongOf := func(c class) (class, bool) {
		switch c {
		case utext.L:
			return utext.L, true
		case utext.R, utext.EN, utext.AN:
			return utext.R, true
		default:
			return 0, false
		}
	}

	i := 0
	for i < len(idx) {
		if !isNI(classes[idx[i]]) {
			i++
			continue
		}
		j := i
		for j < len(idx) && isNI(classes[idx[j]]) {
			j++
		}

		before := seq.sos
		if i > 0 {
			if sc, ok := strongOf(classes[idx[i-1]]); ok {
				before = sc
			}
		}
		after := seq.eos
		if j < len(idx) {
			if sc, ok := strongOf(classes[idx[j]]); ok {
				after = sc
			}
		}

		var resolved class
		if before == after {
			resolved = before
		} else {
			resolved = e
		}
		for k := i; k < j; k++ {
			classes[idx[k]] = resolved
		}
		i = j
	}
}
