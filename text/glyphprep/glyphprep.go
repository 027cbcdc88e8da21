// Package glyphprep implements spec.md §4.8: per-glyph format
// detection, the hinting test, and the transform composition that
// turns a run's placement plus a glyph's own offset into the data a
// rasterizer needs (an outline path, a bitmap pixmap, or a COLR
// draw/placement transform pair).
//
// Grounded on: skia/impl/matrix.go's Matrix (SetConcat, the Get*/Set*
// accessors used here to decompose a uniform scale out of a composed
// transform) and skia/impl/typeface.go's Typeface.GetGlyphPath/
// GetGlyphBounds for the shape of the outline/bounds retrieval this
// package's PathSource/BoundsSource collaborator interfaces mirror
// (text/fontprovider supplies the concrete implementation, the same
// seam text/shape.FontBackend uses for shaping).
package glyphprep

import (
	"fmt"

	"github.com/textkit/richlayout/skia/impl"
	"github.com/textkit/richlayout/skia/interfaces"
	"github.com/textkit/richlayout/skia/models"
)

// Format classifies how a glyph is drawn.
type Format int

const (
	FormatOutline Format = iota
	FormatBitmap
	FormatColr
)

// FormatSource reports which format a font provides for a glyph at a
// given size (step 1): a font's bitmap strikes or COLR table cover
// only some glyphs, and bitmap strikes only some sizes.
type FormatSource interface {
	Format(glyphID uint16, fontSize float32) Format
}

// GlyphKey identifies one glyph-preparation request.
type GlyphKey struct {
	FontID    uint32
	FontIndex int
	GlyphID   uint16
	Size      float32
	VarCoords string // serialized variation coordinates; empty for a static font
}

// Compose builds T = run_transform · glyph_transform (spec.md §4.8's
// opening formula): the glyph's own offset within its run, placed
// into the run's transform.
func Compose(runTransform impl.SkMatrix, glyphX, glyphY float32) impl.SkMatrix {
	t := impl.NewMatrixTranslate(glyphX, glyphY)
	t.PostConcat(runTransform)
	return t
}

// HintPlan is the result of step 2.
type HintPlan struct {
	Hinted    bool
	HintSize  float32      // font_size * s, valid only if Hinted
	Transform impl.SkMatrix
}

// PlanHinting implements step 2: hinting is enabled iff T is a
// uniform scale with no vertical skew or rotation, i.e.
// T = diag(s, s) · [1 0 k 1 tx ty]. In that case glyphs hint
// vertically at font_size·s and render through the transform with s
// factored out, [1 0 k/s 1 tx ty]; otherwise T passes through.
func PlanHinting(t impl.SkMatrix, fontSize float32) HintPlan {
	s := t.GetScaleX()
	if s == 0 || s != t.GetScaleY() || t.GetSkewY() != 0 {
		return HintPlan{Hinted: false, Transform: t}
	}
	k := t.GetSkewX() / s
	out := impl.NewMatrixAll(
		1, k/s, t.GetTranslateX()/s,
		0, 1, t.GetTranslateY()/s,
		0, 0, 1,
	)
	return HintPlan{Hinted: true, HintSize: fontSize * s, Transform: out}
}

// PathSource retrieves a glyph's outline, already scaled to size and
// variation-instantiated, plus the transform that positions it so
// hinted y-offsets land on integers (step 3).
type PathSource interface {
	GlyphPath(key GlyphKey, hinted bool) (interfaces.SkPath, impl.SkMatrix, error)
}

type outlineCacheKey struct {
	GlyphKey
	hinted bool
}

type outlineEntry struct {
	path      interfaces.SkPath
	transform impl.SkMatrix
}

// OutlineCache memoizes PathSource lookups by (font_id, font_index,
// glyph_id, size, var_coords, hinted), per step 3's "retrieve the
// cached outline path". Unbounded: unlike the glyph atlas (spec.md
// §4.9), outline retrieval has no eviction requirement of its own in
// spec.md, so this cache grows with the distinct glyph keys seen.
type OutlineCache struct {
	source PathSource
	cache  map[outlineCacheKey]outlineEntry
}

func NewOutlineCache(source PathSource) *OutlineCache {
	return &OutlineCache{source: source, cache: make(map[outlineCacheKey]outlineEntry)}
}

func (c *OutlineCache) Outline(key GlyphKey, hinted bool) (interfaces.SkPath, impl.SkMatrix, error) {
	ck := outlineCacheKey{GlyphKey: key, hinted: hinted}
	if e, ok := c.cache[ck]; ok {
		return e.path, e.transform, nil
	}
	path, transform, err := c.source.GlyphPath(key, hinted)
	if err != nil {
		return nil, nil, fmt.Errorf("glyphprep: outline for glyph %d: %w", key.GlyphID, err)
	}
	c.cache[ck] = outlineEntry{path: path, transform: transform}
	return path, transform, nil
}

// BitmapGlyph is a font-provided bitmap strike for one glyph, in the
// font's own pixel grid.
type BitmapGlyph struct {
	Pixmap             models.Pixmap
	PPEM               float32 // pixels-per-em the strike was rasterized at
	BearingX, BearingY float32
	BottomLeftOrigin   bool
	IsSBIX             bool
}

// BitmapSource retrieves a font's bitmap strike for a glyph, if any.
type BitmapSource interface {
	Bitmap(key GlyphKey) (BitmapGlyph, bool)
}

// PlanBitmap implements step 4: a transform scaling the strike from
// its native ppem to the requested size, applying its bearings,
// flipping y for a bottom-left pixmap origin, and adding the SBIX
// vertical-offset workaround when bearings are zero.
func PlanBitmap(g BitmapGlyph, fontSize float32) impl.SkMatrix {
	scale := fontSize / g.PPEM
	t := impl.NewMatrixScale(scale, scale)

	bx, by := g.BearingX, g.BearingY
	if bx == 0 && by == 0 && g.IsSBIX {
		by = float32(g.Pixmap.Info.Height())
	}
	t.PostTranslate(bx*scale, by*scale)

	if g.BottomLeftOrigin {
		flip := impl.NewMatrixScale(1, -1)
		flip.PostTranslate(0, float32(g.Pixmap.Info.Height())*scale)
		t.PostConcat(flip)
	}
	return t
}

// BoundsSource retrieves a COLR glyph's bounding box in font units.
type BoundsSource interface {
	Bounds(key GlyphKey) (models.Rect, error)
}

// ColrPlan is step 5's result: the transform to paint the COLR graph
// into a pixmap sized to its bounding box (DrawTransform), and the
// transform placing that pixmap back into the scene (Transform). A
// ColrPainter collaborator (external, per spec.md §5) consumes
// DrawTransform against the same AtlasCommandRecorder text/atlas
// defines; glyphprep only computes the geometry.
type ColrPlan struct {
	PixmapWidth, PixmapHeight int
	DrawTransform             impl.SkMatrix
	Transform                 impl.SkMatrix
}

// PlanColr implements step 5: derive a local transform mapping the
// COLR glyph's bounding box to a pixmap whose dimensions are the
// ceiling of the bounding box scaled by the per-axis scale extracted
// from T, plus the outer transform placing that pixmap in the scene.
func PlanColr(bounds models.Rect, t impl.SkMatrix) ColrPlan {
	sx, sy := t.GetScaleX(), t.GetScaleY()
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	w := ceilPositive((bounds.Right - bounds.Left) * sx)
	h := ceilPositive((bounds.Bottom - bounds.Top) * sy)

	draw := impl.NewMatrixTranslate(-bounds.Left, -bounds.Top)
	draw.PostScale(sx, sy)

	outer := impl.NewMatrixScale(1/sx, 1/sy)
	outer.PostConcat(t)
	outer.PreTranslate(bounds.Left, bounds.Top)

	return ColrPlan{PixmapWidth: w, PixmapHeight: h, DrawTransform: draw, Transform: outer}
}

func ceilPositive(v float32) int {
	n := int(v)
	if float32(n) < v {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}
