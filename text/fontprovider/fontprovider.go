// Package fontprovider adapts github.com/go-text/typesetting fonts into
// the host-collaborator seams text/shape.FontBackend and
// text/glyphprep.{FormatSource,PathSource,BitmapSource,BoundsSource}
// expect, so a real font can drive the shaping and glyph-preparation
// pipelines those packages define.
//
// Grounded on: skia/shaper/harfbuzz.go's shapeRunCollect (HarfBuzz
// shaping.Input/Output construction, di.Direction, fixed.Int26_6
// conversion) for Shape, and skia/impl/{typeface,font}.go's
// GetGlyphPath/GetGlyphBounds/GetMetrics (go-text Face access through
// the teacher's Typeface wrapper) for the glyphprep source methods,
// adapted from Skia's negative-above-baseline ascent convention to
// text/layout's positive-magnitude one.
package fontprovider

import (
	"errors"
	"sort"

	"github.com/go-text/typesetting/di"
	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/textkit/richlayout/skia/impl"
	"github.com/textkit/richlayout/skia/interfaces"
	"github.com/textkit/richlayout/skia/models"
	"github.com/textkit/richlayout/text/glyphprep"
	"github.com/textkit/richlayout/text/itemize"
	"github.com/textkit/richlayout/text/shape"
)

// Backend adapts one loaded font to the shaping and glyph-preparation
// seams. FontID identifies it within a GlyphCacheKey/GlyphKey.
type Backend struct {
	fontID    uint32
	fontIndex int
	typeface  *impl.Typeface
	shaper    shaping.HarfbuzzShaper
}

// NewBackend wraps typeface (built from a go-text/typesetting Face via
// impl.NewTypefaceWithTypefaceFace) for shaping and glyph preparation.
func NewBackend(fontID uint32, fontIndex int, typeface *impl.Typeface) *Backend {
	return &Backend{fontID: fontID, fontIndex: fontIndex, typeface: typeface}
}

func (b *Backend) FontID() uint32          { return b.fontID }
func (b *Backend) Typeface() *impl.Typeface { return b.typeface }

// Shape implements text/shape.FontBackend.
func (b *Backend) Shape(text []rune, item itemize.Item) ([]shape.Glyph, []int, bool) {
	face := b.typeface.GoTextFace()
	if face == nil {
		return nil, nil, false
	}

	if len(item.Style.Variations) > 0 {
		vars := make([]gofont.Variation, len(item.Style.Variations))
		for i, v := range item.Style.Variations {
			vars[i] = gofont.Variation{Tag: tag4(v.Tag), Value: v.Value}
		}
		face.SetVariations(vars)
	}

	dir := di.DirectionLTR
	if item.Level%2 == 1 {
		dir = di.DirectionRTL
	}

	var features []shaping.FontFeature
	for _, f := range item.Style.Features {
		features = append(features, shaping.FontFeature{Tag: tag4(f.Tag), Value: f.Value})
	}

	input := shaping.Input{
		Text:         text,
		RunStart:     item.Range.Start,
		RunEnd:       item.Range.End,
		Direction:    dir,
		Face:         face,
		Size:         floatToFixed(item.Style.FontSize),
		Script:       language.Script(string(item.Script)),
		FontFeatures: features,
		Language:     language.NewLanguage(item.Style.Locale),
	}

	output := b.shaper.Shape(input)
	if len(output.Glyphs) == 0 {
		return nil, nil, item.Range.Width() == 0
	}

	glyphs := make([]shape.Glyph, len(output.Glyphs))
	covered := true
	for i, g := range output.Glyphs {
		if g.GlyphID == 0 {
			covered = false
		}
		glyphs[i] = shape.Glyph{
			GlyphID:      uint16(g.GlyphID),
			XAdvance:     fixedToFloat(g.XAdvance),
			YAdvance:     -fixedToFloat(g.YAdvance),
			XOffset:      fixedToFloat(g.XOffset),
			YOffset:      -fixedToFloat(g.YOffset),
			ClusterIndex: g.ClusterIndex - item.Range.Start,
		}
	}

	clusterEnds := clusterEndsFromGlyphs(output.Glyphs, item.Range.Start, item.Range.Width())
	return glyphs, clusterEnds, covered
}

// clusterEndsFromGlyphs computes, for each glyph's position, the rune
// offset (relative to runStart) where its source cluster ends. Glyph
// order from the shaper need not be monotonic in cluster value (RTL
// runs reverse it), so ends are derived from the sorted set of distinct
// cluster starts rather than from array position.
func clusterEndsFromGlyphs(glyphs []shaping.Glyph, runStart, runWidth int) []int {
	seen := make(map[int]bool, len(glyphs))
	var starts []int
	for _, g := range glyphs {
		rel := g.ClusterIndex - runStart
		if !seen[rel] {
			seen[rel] = true
			starts = append(starts, rel)
		}
	}
	sort.Ints(starts)

	endOf := make(map[int]int, len(starts))
	for i, s := range starts {
		if i+1 < len(starts) {
			endOf[s] = starts[i+1]
		} else {
			endOf[s] = runWidth
		}
	}

	ends := make([]int, len(glyphs))
	for i, g := range glyphs {
		ends[i] = endOf[g.ClusterIndex-runStart]
	}
	return ends
}

// Metrics implements text/shape.FontBackend, converting go-text's
// ascender-up/descender-down convention to text/layout's
// positive-magnitude-above/below-baseline one (skia/impl/font.go's
// GetMetrics negates the other way round, for SkFontMetrics).
func (b *Backend) Metrics(fontSize float32) (ascent, descent, leading float32) {
	face := b.typeface.GoTextFace()
	if face == nil {
		return fontSize * 0.8, fontSize * 0.2, 0
	}
	extents, ok := face.FontHExtents()
	if !ok {
		return fontSize * 0.8, fontSize * 0.2, 0
	}
	scale := fontSize / float32(face.Upem())
	return float32(extents.Ascender) * scale, -float32(extents.Descender) * scale, float32(extents.LineGap) * scale
}

// Format implements text/glyphprep.FormatSource. This backend only
// ever reports Outline or (via an optional host predicate) Colr: the
// stable go-text/typesetting GlyphData sum type this package's
// GetGlyphPath already type-asserts against (font.GlyphOutline) has no
// bitmap-strike decoding anywhere in the teacher or the rest of the
// pack to ground a CBDT/sbix implementation against, so FormatBitmap
// is never produced by the default backend (see Bitmap below).
func (b *Backend) Format(glyphID uint16, fontSize float32) glyphprep.Format {
	if cc, ok := b.colrSource(); ok && cc.HasColr(glyphID) {
		return glyphprep.FormatColr
	}
	return glyphprep.FormatOutline
}

// ColrSource is an optional capability a registered typeface can
// satisfy to report COLR coverage; go-text/typesetting's GlyphData
// does not itself surface COLR layers; see Format's comment.
type ColrSource interface {
	HasColr(glyphID uint16) bool
}

func (b *Backend) colrSource() (ColrSource, bool) {
	cc, ok := any(b.typeface.GoTextFace()).(ColrSource)
	return cc, ok
}

// GlyphPath implements text/glyphprep.PathSource: the typeface's raw
// font-unit outline (skia/impl/typeface.go's GetGlyphPath), scaled in
// place to key.Size. The returned transform is identity; this backend
// does not implement bytecode hinting, so no additional origin shift
// is applied beyond glyphprep.PlanHinting's own decomposition.
func (b *Backend) GlyphPath(key glyphprep.GlyphKey, hinted bool) (interfaces.SkPath, impl.SkMatrix, error) {
	path, err := b.typeface.GetGlyphPath(key.GlyphID)
	if err != nil {
		return nil, nil, err
	}
	upem := b.typeface.UnitsPerEm()
	if upem <= 0 {
		return nil, nil, errors.New("fontprovider: typeface has no units-per-em")
	}
	scale := key.Size / float32(upem)
	path.Transform(impl.NewMatrixScale(scale, scale))
	return path, impl.NewMatrixIdentity(), nil
}

// Bitmap implements text/glyphprep.BitmapSource. Always reports a
// miss: see Format's comment on why this backend does not decode
// bitmap strikes.
func (b *Backend) Bitmap(key glyphprep.GlyphKey) (glyphprep.BitmapGlyph, bool) {
	return glyphprep.BitmapGlyph{}, false
}

// Bounds implements text/glyphprep.BoundsSource: the glyph's bounding
// box in font units (skia/impl/typeface.go's GetGlyphBounds), scaled
// to key.Size.
func (b *Backend) Bounds(key glyphprep.GlyphKey) (models.Rect, error) {
	upem := b.typeface.UnitsPerEm()
	if upem <= 0 {
		return models.Rect{}, errors.New("fontprovider: typeface has no units-per-em")
	}
	scale := key.Size / float32(upem)
	bounds := b.typeface.GetGlyphBounds(key.GlyphID)
	return models.Rect{
		Left:   bounds.Left * scale,
		Top:    bounds.Top * scale,
		Right:  bounds.Right * scale,
		Bottom: bounds.Bottom * scale,
	}, nil
}

func tag4(s string) gofont.Tag {
	var b [4]byte
	for i := 0; i < 4; i++ {
		if i < len(s) {
			b[i] = s[i]
		} else {
			b[i] = ' '
		}
	}
	return gofont.Tag(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

func floatToFixed(f float32) fixed.Int26_6 { return fixed.Int26_6(f * 64) }
func fixedToFloat(i fixed.Int26_6) float32 { return float32(i) / 64.0 }
