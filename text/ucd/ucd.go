// Package ucd wraps borrowed Unicode property tables: script, bidi class,
// grapheme-cluster break, general category, and emoji/variation-selector
// flags. It is the UnicodeProperties component of spec.md §2.
//
// Ported from: skia/shaper/script_iterator.go (getScriptTag: unicode.Scripts
// lookup with Common/Inherited resolution), generalized into a per-rune
// query instead of a whole-string run computer (text/analysis does the
// run-merging itself, since it must merge on more than script).
package ucd

import (
	"unicode"

	"golang.org/x/text/unicode/bidi"
)

// Script identifies a Unicode script by its 4-letter ISO 15924 tag.
type Script string

const (
	ScriptCommon    Script = "Zyyy"
	ScriptInherited Script = "Zinh"
	ScriptUnknown   Script = "Zzzz"
)

// scriptTags maps the subset of unicode.Scripts names this engine cares
// about to ISO 15924 tags. Extend as new scripts need shaping support.
var scriptTags = map[string]Script{
	"Latin":               "Latn",
	"Greek":               "Grek",
	"Cyrillic":            "Cyrl",
	"Arabic":              "Arab",
	"Hebrew":              "Hebr",
	"Han":                 "Hani",
	"Hiragana":            "Hira",
	"Katakana":            "Kana",
	"Hangul":              "Hang",
	"Thai":                "Thai",
	"Devanagari":          "Deva",
	"Armenian":            "Armn",
	"Georgian":            "Geor",
	"Canadian_Aboriginal": "Cans",
	"Common":              "Zyyy",
	"Inherited":           "Zinh",
}

// LookupScript returns the Unicode script of r. Common and Inherited are
// returned as-is; callers resolve them to the surrounding run's script
// (spec.md §4.4: "ignoring Inherited/Common which adopt the surrounding
// script").
func LookupScript(r rune) Script {
	if unicode.Is(unicode.Latin, r) {
		return "Latn"
	}
	if unicode.Is(unicode.Common, r) {
		return ScriptCommon
	}
	if unicode.Is(unicode.Inherited, r) {
		return ScriptInherited
	}
	for name, table := range unicode.Scripts {
		if tag, ok := scriptTags[name]; ok && unicode.Is(table, r) {
			return tag
		}
	}
	return ScriptUnknown
}

// GeneralCategory is a coarse classification used for is_control and
// contributes_to_shaping (spec.md §4.2 step 5).
type GeneralCategory int

const (
	CategoryOther GeneralCategory = iota
	CategoryControl
	CategoryFormat
	CategorySpace
)

// LookupCategory classifies r using the stdlib unicode.C/Cf/Zs tables —
// no example-pack library exposes Unicode general category directly (see
// DESIGN.md); this is the one place ucd falls back to the standard
// library.
func LookupCategory(r rune) GeneralCategory {
	switch {
	case unicode.Is(unicode.Cc, r):
		return CategoryControl
	case unicode.Is(unicode.Cf, r):
		return CategoryFormat
	case unicode.Is(unicode.Zs, r):
		return CategorySpace
	default:
		return CategoryOther
	}
}

// BidiClass is re-exported from golang.org/x/text/unicode/bidi so that
// text/bidi and text/analysis share one source of per-rune class data —
// the one concern the teacher already trusted that package for
// (skia/paragraph/paragraph_impl_layout.go calls bidi.Paragraph.SetString).
type BidiClass = bidi.Class

// LookupBidiClass returns the bidirectional character class of r.
func LookupBidiClass(r rune) BidiClass {
	props, _ := bidi.LookupRune(r)
	return props.Class()
}

// IsVariationSelector reports whether r is one of the Unicode variation
// selectors (U+FE00-FE0F, U+E0100-E01EF), which force_normalize excludes
// per spec.md §4.2 step 5.
func IsVariationSelector(r rune) bool {
	return (r >= 0xFE00 && r <= 0xFE0F) || (r >= 0xE0100 && r <= 0xE01EF)
}

// IsZWNJ reports whether r is U+200C ZERO WIDTH NON-JOINER, the other
// force_normalize exception in spec.md §4.2 step 5.
func IsZWNJ(r rune) bool { return r == 0x200C }

// IsExtendingMark approximates the UAX #29 Grapheme_Extend/SpacingMark
// properties using the stdlib Mn/Me/Mc categories. No package in this
// module calls it; cluster boundaries come from github.com/rivo/uniseg,
// which implements the full UAX #29 table.
func IsExtendingMark(r rune) bool {
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Mc, r)
}
