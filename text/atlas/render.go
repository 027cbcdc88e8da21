package atlas

import (
	"math"

	"github.com/textkit/richlayout/skia/impl"
	"github.com/textkit/richlayout/skia/interfaces"
	"github.com/textkit/richlayout/skia/models"
)

// Quality is the resampling quality render_from_atlas should use,
// chosen from the glyph's scale (spec.md §4.9).
type Quality int

const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh
)

// RasterMetrics is the bounding-rectangle data step 1 of the
// cache-miss flow derives from a path.
type RasterMetrics struct {
	Width, Height      int
	BearingX, BearingY float32
}

// OutlineRasterMetrics implements step 1: the path's bounding box, a
// 1-pixel antialias margin, and a flip to screen-space Y (font-unit Y
// grows up, screen Y grows down).
func OutlineRasterMetrics(path interfaces.SkPath) RasterMetrics {
	b := path.Bounds()
	const margin = 1
	w := int(math.Ceil(float64(b.Right-b.Left))) + 2*margin
	h := int(math.Ceil(float64(b.Bottom-b.Top))) + 2*margin
	return RasterMetrics{
		Width:    w,
		Height:   h,
		BearingX: b.Left - margin,
		BearingY: -b.Bottom - margin,
	}
}

// OutlineCacheMiss implements spec.md §4.9's "Cache-miss flow for an
// outline glyph" steps 2-4: insert raster_metrics into cache, record
// the placement transform/solid paint/fill command onto the page's
// recorder, and compute the rect transform render_from_atlas needs.
// ok is false if Insert failed (atlas exhaustion; the caller should
// render the glyph directly instead, per spec.md §7). hinted must be
// the same text/glyphprep.HintPlan.Hinted value used to produce path,
// so a hinted and an unhinted rasterization never share a cache entry.
func OutlineCacheMiss(cache *GlyphAtlasCache, key GlyphCacheKey, hinted bool, varCoords string, path interfaces.SkPath, metrics RasterMetrics, tx, ty float32) (rectTransform impl.SkMatrix, slot AtlasSlot, ok bool) {
	key.Hinted = hinted
	x, y, slot, recorder, ok := cache.Insert(key, varCoords, metrics.Width, metrics.Height)
	if !ok {
		return nil, AtlasSlot{}, false
	}

	subpixel := float32(SubpixelBucket(tx)) / float32(SubpixelBuckets)
	placement := impl.NewMatrixScale(1, -1)
	placement.PostTranslate(
		float32(x)-metrics.BearingX+subpixel,
		float32(y)-metrics.BearingY,
	)
	recorder.SetTransform(placement)
	recorder.SetPaint(Paint{Solid: true, Color: models.Color4f{R: 0, G: 0, B: 0, A: 1}})
	recorder.FillPath(path)

	rectTransform = impl.NewMatrixTranslate(
		float32(math.Floor(float64(tx)))+metrics.BearingX,
		float32(math.Floor(float64(ty)))+metrics.BearingY,
	)
	return rectTransform, slot, true
}

// BitmapQuality implements spec.md §4.9's bitmap quality rule: Medium
// when both axis scales are at least 0.5, else High.
func BitmapQuality(scaleX, scaleY float32) Quality {
	if scaleX >= 0.5 && scaleY >= 0.5 {
		return QualityMedium
	}
	return QualityHigh
}

// RenderBitmap implements "Rendering a bitmap glyph": on a cache miss,
// queue the pixmap for upload; either way return the slot (if cached)
// and the quality to render at.
func RenderBitmap(cache *GlyphAtlasCache, key GlyphCacheKey, varCoords string, imageID uint64, pixmap models.Pixmap, scaleX, scaleY float32) (slot AtlasSlot, cached bool, quality Quality) {
	quality = BitmapQuality(scaleX, scaleY)
	if s, hit := cache.Get(key, varCoords); hit {
		return s, true, quality
	}
	x, y, s, _, ok := cache.Insert(key, varCoords, pixmap.Info.Width(), pixmap.Info.Height())
	if !ok {
		return AtlasSlot{}, false, quality
	}
	_ = x
	_ = y
	cache.QueueBitmapUpload(PendingBitmapUpload{ImageID: imageID, Pixmap: pixmap, Slot: s})
	return s, true, quality
}

// ColrPainter draws a COLR glyph's paint graph into a page's command
// recorder (spec.md §5's external collaborator).
type ColrPainter interface {
	Paint(recorder *AtlasCommandRecorder, drawTransform impl.SkMatrix)
}

// ColrQuality implements "Rendering a COLR glyph"'s quality rule: Low
// unless T has skew, then Medium.
func ColrQuality(t impl.SkMatrix) Quality {
	if t.GetSkewX() != 0 || t.GetSkewY() != 0 {
		return QualityMedium
	}
	return QualityLow
}

// RenderColr implements "Rendering a COLR glyph": on a cache miss,
// record the full paint graph via painter; either way report the slot
// and quality to render at. contextColor is the COLR foreground color
// this glyph is painted against, so two requests for the same glyph
// under different foreground colors never share a cache entry.
func RenderColr(cache *GlyphAtlasCache, key GlyphCacheKey, contextColor models.Color4f, varCoords string, width, height int, painter ColrPainter, drawTransform, t impl.SkMatrix) (slot AtlasSlot, ok bool, quality Quality) {
	key.ContextColor = contextColor
	quality = ColrQuality(t)
	if s, hit := cache.Get(key, varCoords); hit {
		return s, true, quality
	}
	_, _, s, recorder, inserted := cache.Insert(key, varCoords, width, height)
	if !inserted {
		return AtlasSlot{}, false, quality
	}
	painter.Paint(recorder, drawTransform)
	return s, true, quality
}
