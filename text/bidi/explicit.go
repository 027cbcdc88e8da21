package bidi

import utext "golang.org/x/text/unicode/bidi"

// explicitEntry is one frame of the directional status stack (X1).
type explicitEntry struct {
	level    Level
	override class // utext.ON means no override in effect
	isolate  bool
}

func nextOdd(l Level) Level {
	if l.IsRTL() {
		return l + 2
	}
	return l + 1
}

func nextEven(l Level) Level {
	if l.IsRTL() {
		return l + 1
	}
	return l + 2
}

// resolveExplicit runs rules X1-X8 over classes, assigning an embedding
// level to every character (including explicit formatting characters,
// which keep the level of the run they were found in, following the
// "retaining explicit formatting characters" approach UAX #9 §5.2
// describes as an alternative to deleting them outright under X9).
// Overridden characters (X6) have their class rewritten to L or R in
// place.
func resolveExplicit(classes []class, levels []Level, paragraphLevel Level) {
	stack := make([]explicitEntry, 1, MaxDepth+2)
	stack[0] = explicitEntry{level: paragraphLevel, override: utext.ON}

	overflowIsolate := 0
	overflowEmbedding := 0
	validIsolate := 0

	top := func() explicitEntry { return stack[len(stack)-1] }
	push := func(e explicitEntry) { stack = append(stack, e) }
	pop := func() { stack = stack[:len(stack)-1] }

	applyOverride := func(i int) {
		if o := top().override; o != utext.ON {
			classes[i] = o
		}
		levels[i] = top().level
	}

	for i, c := range classes {
		switch c {
		case utext.RLE, utext.LRE, utext.RLO, utext.LRO:
			levels[i] = top().level
			var newLevel Level
			var override class
			switch c {
			case utext.RLE:
				newLevel, override = nextOdd(top().level), utext.ON
			case utext.LRE:
				newLevel, override = nextEven(top().level), utext.ON
			case utext.RLO:
				newLevel, override = nextOdd(top().level), utext.R
			case utext.LRO:
				newLevel, override = nextEven(top().level), utext.L
			}
			if newLevel <= MaxDepth && overflowIsolate == 0 && overflowEmbedding == 0 {
				push(explicitEntry{level: newLevel, override: override})
			} else if overflowIsolate == 0 {
				overflowEmbedding++
			}

		case utext.RLI, utext.LRI, utext.FSI:
			// X5a-X5c: level and override level are recorded but the
			// isolate initiator's own class is left untouched so BD13
			// can still match it against its PDI.
			levels[i] = top().level
			dir := c
			if c == utext.FSI {
				if isolateBaseIsRTL(classes, i+1) {
					dir = utext.RLI
				} else {
					dir = utext.LRI
				}
			}
			var newLevel Level
			if dir == utext.RLI {
				newLevel = nextOdd(top().level)
			} else {
				newLevel = nextEven(top().level)
			}
			if newLevel <= MaxDepth && overflowIsolate == 0 && overflowEmbedding == 0 {
				validIsolate++
				push(explicitEntry{level: newLevel, override: utext.ON, isolate: true})
			} else {
				overflowIsolate++
			}

		case utext.PDI:
			switch {
			case overflowIsolate > 0:
				overflowIsolate--
			case validIsolate == 0:
				// no matching isolate initiator: no-op
			default:
				overflowEmbedding = 0
				for !top().isolate {
					pop()
				}
				pop()
				validIsolate--
			}
			// X6a: PDI takes the level of the (possibly just-adjusted)
			// stack top; its class is left untouched, same reasoning
			// as the isolate initiators above.
			levels[i] = top().level

		case utext.PDF:
			levels[i] = top().level
			switch {
			case overflowIsolate > 0:
			case overflowEmbedding > 0:
				overflowEmbedding--
			case !top().isolate && len(stack) >= 2:
				pop()
			}

		case utext.B:
			stack = stack[:1]
			overflowIsolate, overflowEmbedding, validIsolate = 0, 0, 0
			stack[0] = explicitEntry{level: paragraphLevel, override: utext.ON}
			levels[i] = paragraphLevel

		case utext.BN:
			levels[i] = top().level

		default:
			applyOverride(i)
		}
	}
}

// isolateBaseIsRTL implements the P2/P3 lookahead rule X5c uses to
// resolve an FSI to LRI or RLI: scan forward from start to the matching
// PDI (or end of text) for the first strong class, skipping nested
// isolates.
func isolateBaseIsRTL(classes []class, start int) bool {
	depth := 0
	for i := start; i < len(classes); i++ {
		switch classes[i] {
		case utext.LRI, utext.RLI, utext.FSI:
			depth++
		case utext.PDI:
			if depth == 0 {
				return false
			}
			depth--
		default:
			if depth == 0 {
				switch classes[i] {
				case utext.L:
					return false
				case utext.R, utext.AL:
					return true
				}
			}
		}
	}
	return false
}
