// Package itemize splits analyzed text into shaping-homogeneous items
// (spec.md §4.4): maximal runs sharing a bidi level, a resolved
// script, and a style that does not itself force a shaping boundary.
//
// Grounded on: skia/shaper/script_iterator.go's computeScriptRuns,
// which performs exactly this forward/backward Common-and-Inherited
// resolution pass before merging adjacent identical script tags into
// runs; generalized here to merge on bidi level and style as well as
// script, since the shaping items this module produces must already
// be homogeneous in every respect the shaper driver depends on.
package itemize

import (
	"github.com/textkit/richlayout/text/analysis"
	"github.com/textkit/richlayout/text/rangetable"
	"github.com/textkit/richlayout/text/style"
	"github.com/textkit/richlayout/text/ucd"
)

// Item is one maximal shaping-homogeneous run of text.
type Item struct {
	Range  rangetable.TextRange
	Level  uint8 // bidi embedding level, copied from analysis.CharInfo
	Script ucd.Script
	Style  style.Style
}

// Itemize computes the item list for text given its analysis result
// and a style range table. styles may be nil, meaning every character
// uses style.Default().
func Itemize(text []rune, info []analysis.CharInfo, styles *rangetable.Table[style.Style]) []Item {
	n := len(text)
	if n == 0 {
		return nil
	}
	scripts := resolveScripts(info)
	styleAt := buildStyleLookup(styles, n)

	var items []Item
	start := 0
	for i := 1; i <= n; i++ {
		if i < n && !isBoundary(info, scripts, styleAt, i) {
			continue
		}
		items = append(items, Item{
			Range:  rangetable.NewTextRange(start, i),
			Level:  uint8(info[start].BidiLevel),
			Script: scripts[start],
			Style:  styleAt(start),
		})
		start = i
	}
	return items
}

func isBoundary(info []analysis.CharInfo, scripts []ucd.Script, styleAt func(int) style.Style, i int) bool {
	if info[i].BidiLevel != info[i-1].BidiLevel {
		return true
	}
	if scripts[i] != scripts[i-1] {
		return true
	}
	return styleAt(i - 1).AffectsShaping(styleAt(i))
}

// resolveScripts implements the "ignoring Inherited/Common which
// adopt the surrounding script" clause: Common and Inherited runs take
// the nearest preceding resolved script, falling back to the nearest
// following one for a leading run that has no predecessor.
func resolveScripts(info []analysis.CharInfo) []ucd.Script {
	n := len(info)
	resolved := make([]ucd.Script, n)
	for i, ci := range info {
		resolved[i] = ci.Script
	}

	var last ucd.Script
	for i := 0; i < n; i++ {
		if isWeakScript(resolved[i]) {
			if last != "" {
				resolved[i] = last
			}
			continue
		}
		last = resolved[i]
	}

	var next ucd.Script
	for i := n - 1; i >= 0; i-- {
		if isWeakScript(resolved[i]) {
			if next != "" {
				resolved[i] = next
			}
			continue
		}
		next = resolved[i]
	}
	return resolved
}

func isWeakScript(s ucd.Script) bool {
	return s == ucd.ScriptCommon || s == ucd.ScriptInherited || s == ucd.ScriptUnknown
}

// buildStyleLookup flattens a style range table into a per-position
// accessor; positions covered by more than one span use the
// most-recently-inserted (topmost) one, matching rangetable.Segment's
// Active ordering.
func buildStyleLookup(styles *rangetable.Table[style.Style], n int) func(int) style.Style {
	if styles == nil {
		def := style.Default()
		return func(int) style.Style { return def }
	}
	per := make([]style.Style, n)
	def := style.Default()
	for i := range per {
		per[i] = def
	}
	for _, seg := range styles.Segment(n) {
		if len(seg.Active) == 0 {
			continue
		}
		s := seg.Active[len(seg.Active)-1]
		for i := seg.Range.Start; i < seg.Range.End; i++ {
			per[i] = s
		}
	}
	return func(i int) style.Style { return per[i] }
}
