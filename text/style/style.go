// Package style defines the resolved per-character style attributes that
// drive analysis, itemization, shaping, and line breaking.
//
// Ported from: skia/paragraph/text_style.go (TextStyle), decoration.go,
// font_feature.go, generalized with the word-break/overflow-wrap/line-height/
// brush fields spec.md's ResolvedStyle carries that the teacher's
// Skia-paragraph port does not.
package style

import (
	"github.com/textkit/richlayout/skia/core"
	"github.com/textkit/richlayout/skia/models"
)

// WordBreak controls how line breaking treats word boundaries.
type WordBreak int

const (
	WordBreakNormal WordBreak = iota
	WordBreakKeepAll
	WordBreakBreakAll
)

// OverflowWrap controls emergency (mid-cluster) breaking when a word alone
// overflows the line.
type OverflowWrap int

const (
	OverflowWrapNormal OverflowWrap = iota
	OverflowWrapAnywhere
	OverflowWrapBreakWord
)

// LineHeightKind tags the LineHeight union.
type LineHeightKind int

const (
	// LineHeightMultiple scales the font's own metrics.
	LineHeightMultiple LineHeightKind = iota
	// LineHeightAbsolute is a fixed pixel value.
	LineHeightAbsolute
)

// LineHeight is either a multiple of font metrics or an absolute value.
type LineHeight struct {
	Kind  LineHeightKind
	Value float32
}

// Resolve returns the line height in pixels given the font's natural
// (ascent+descent+leading) line height.
func (h LineHeight) Resolve(fontLineHeight float32) float32 {
	if h.Kind == LineHeightAbsolute {
		return h.Value
	}
	return h.Value * fontLineHeight
}

// FontWeight mirrors CSS font-weight numeric values.
type FontWeight int

const (
	WeightThin     FontWeight = 100
	WeightNormal   FontWeight = 400
	WeightMedium   FontWeight = 500
	WeightBold     FontWeight = 700
	WeightBlack    FontWeight = 900
)

// FontWidth mirrors CSS font-stretch percentages (Normal = 100).
type FontWidth int

const FontWidthNormal FontWidth = 100

// FontStyle is a closed sum type: Normal, Italic, or Oblique(angle).
//
// Ported from: skia/models/font_style.go FontSlant, extended with the
// oblique-angle payload spec.md §9 calls for explicitly.
type FontStyle struct {
	Kind  FontStyleKind
	Angle float32 // only meaningful when Kind == FontStyleOblique
}

type FontStyleKind int

const (
	FontStyleNormal FontStyleKind = iota
	FontStyleItalic
	FontStyleOblique
)

// Feature is an OpenType feature setting, e.g. {"liga", 1}.
type Feature struct {
	Tag   string
	Value uint32
}

// Variation is a variable-font axis setting, e.g. {"wght", 700}.
type Variation struct {
	Tag   string
	Value float32
}

// DecorationLine mirrors skia/paragraph/decoration.go TextDecoration, kept
// as a bitmask so underline+strikethrough can be combined.
type DecorationLine int

const (
	DecorationNone        DecorationLine = 0
	DecorationUnderline   DecorationLine = 1 << 0
	DecorationOverline    DecorationLine = 1 << 1
	DecorationLineThrough DecorationLine = 1 << 2
)

// DecorationStyle mirrors skia/paragraph/decoration.go TextDecorationStyle.
type DecorationStyle int

const (
	DecorationStyleSolid DecorationStyle = iota
	DecorationStyleDouble
	DecorationStyleDotted
	DecorationStyleDashed
	DecorationStyleWavy
)

// Decoration carries the underline/strikethrough descriptors spec.md §3
// lists on ResolvedStyle.
//
// Ported from: skia/paragraph/decoration.go Decoration.
type Decoration struct {
	Lines               DecorationLine
	Style               DecorationStyle
	Color               core.Color4f
	ThicknessMultiplier float32
}

// Brush is the paint used to fill glyph fills (and, by extension,
// decorations when no decoration color is set). A solid color is the
// common case; Gradient is reused from skia/models for parity with the
// teacher's paint model.
type Brush struct {
	Solid    core.Color4f
	Gradient *models.GradientInfo
}

// SolidBrush returns a Brush painting a flat color.
func SolidBrush(c core.Color4f) Brush { return Brush{Solid: c} }

// Style is the fully-resolved per-range style: spec.md §3's ResolvedStyle.
type Style struct {
	FontFamilies  []string
	FontSize      float32 // positive, post device-scale
	Width         FontWidth
	Weight        FontWeight
	FontStyle     FontStyle
	Features      []Feature
	Variations    []Variation
	LineHeight    LineHeight
	LetterSpacing float32
	WordSpacing   float32
	WordBreak     WordBreak
	OverflowWrap  OverflowWrap
	Decoration    Decoration
	Brush         Brush
	Locale        string
}

// Default returns a Style with sane defaults: 16px normal-weight text,
// a line-height multiple of 1.2, no decoration.
func Default() Style {
	return Style{
		FontFamilies: []string{"sans-serif"},
		FontSize:     16,
		Width:        FontWidthNormal,
		Weight:       WeightNormal,
		LineHeight:   LineHeight{Kind: LineHeightMultiple, Value: 1.2},
		Decoration: Decoration{
			ThicknessMultiplier: 1,
		},
		Brush: SolidBrush(core.Color4f{A: 1}),
	}
}

// AffectsShaping reports whether a boundary between two styles must split
// a shaping item (spec.md §4.4): font stack, size, variations, features,
// and letter/word spacing all change what the shaper produces.
func (s Style) AffectsShaping(o Style) bool {
	if s.FontSize != o.FontSize || s.Width != o.Width || s.Weight != o.Weight || s.FontStyle != o.FontStyle {
		return true
	}
	if s.LetterSpacing != o.LetterSpacing || s.WordSpacing != o.WordSpacing {
		return true
	}
	if len(s.FontFamilies) != len(o.FontFamilies) {
		return true
	}
	for i := range s.FontFamilies {
		if s.FontFamilies[i] != o.FontFamilies[i] {
			return true
		}
	}
	if len(s.Features) != len(o.Features) || len(s.Variations) != len(o.Variations) {
		return true
	}
	for i := range s.Features {
		if s.Features[i] != o.Features[i] {
			return true
		}
	}
	for i := range s.Variations {
		if s.Variations[i] != o.Variations[i] {
			return true
		}
	}
	return false
}
