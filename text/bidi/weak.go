package bidi

import utext "golang.org/x/text/unicode/bidi"

// resolveWeak implements rules W1-W7 over one isolating run sequence,
// rewriting classes in place. "Previous"/"next" mean the previous and
// next position within the sequence, not the previous rune in the
// whole paragraph — nested isolate contents are resolved in their own
// sequence and do not participate here.
func resolveWeak(classes []class, seq sequence) {
	idx := seq.indices
	at := func(pos int) class {
		if pos < 0 {
			return seq.sos
		}
		if pos >= len(idx) {
			return seq.eos
		}
		return classes[idx[pos]]
	}

	// W1: NSM takes the type of the previous character; ON if that
	// character is an isolate initiator or PDI.
	for i, ix := range idx {
		if classes[ix] != utext.NSM {
			continue
		}
		prev := at(i - 1)
		switch prev {
		case utext.LRI, utext.RLI, utext.FSI, utext.PDI:
			classes[ix] = utext.ON
		default:
			classes[ix] = prev
		}
	}

	// W2: EN takes AN if the nearest preceding strong type is AL.
	strong := seq.sos
	for _, ix := range idx {
		switch classes[ix] {
		case utext.L, utext.R, utext.AL:
			strong = classes[ix]
		case utext.EN:
			if strong == utext.AL {
				classes[ix] = utext.AN
			}
		}
	}

	// W3: AL becomes R.
	for _, ix := range idx {
		if classes[ix] == utext.AL {
			classes[ix] = utext.R
		}
	}

	// W4: a single ES between two EN becomes EN; a single CS between
	// two numbers of the same type becomes that type.
	for i, ix := range idx {
		if classes[ix] != utext.ES && classes[ix] != utext.CS {
			continue
		}
		prev, next := at(i-1), at(i+1)
		if classes[ix] == utext.ES {
			if prev == utext.EN && next == utext.EN {
				classes[ix] = utext.EN
			}
			continue
		}
		if prev == utext.EN && next == utext.EN {
			classes[ix] = utext.EN
		} else if prev == utext.AN && next == utext.AN {
			classes[ix] = utext.AN
		}
	}

	// W5: a run of ET adjacent to EN becomes EN.
	i := 0
	for i < len(idx) {
		if classes[idx[i]] != utext.ET {
			i++
			continue
		}
		j := i
		for j < len(idx) && classes[idx[j]] == utext.ET {
			j++
		}
		if at(i-1) == utext.EN || at(j) == utext.EN {
			for k := i; k < j; k++ {
				classes[idx[k]] = utext.EN
			}
		}
		i = j
	}

	// W6: remaining separators/terminators become ON.
	for _, ix := range idx {
		switch classes[ix] {
		case utext.ET, utext.ES, utext.CS:
			classes[ix] = utext.ON
		}
	}

	// W7: EN becomes L if the nearest preceding strong type is L.
	strong = seq.sos
	for _, ix := range idx {
		switch classes[ix] {
		case utext.L, utext.R:
			strong = classes[ix]
		case utext.EN:
			if strong == utext.L {
				classes[ix] = utext.L
			}
		}
	}
}
