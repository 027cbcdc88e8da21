package atlas

import (
	"testing"

	"github.com/textkit/richlayout/skia/enums"
	"github.com/textkit/richlayout/skia/impl"
	"github.com/textkit/richlayout/skia/models"
)

func TestOutlineCacheMissKeepsHintedAndUnhintedEntriesSeparate(t *testing.T) {
	cache := NewGlyphAtlasCache(NewShelfAllocator(64, 64), 64, 64)
	path := impl.NewSkPath(enums.PathFillTypeDefault)
	metrics := RasterMetrics{Width: 4, Height: 4}

	_, hintedSlot, ok := OutlineCacheMiss(cache, key(1), true, "", path, metrics, 0, 0)
	if !ok {
		t.Fatal("hinted insert failed")
	}
	_, unhintedSlot, ok := OutlineCacheMiss(cache, key(1), false, "", path, metrics, 0, 0)
	if !ok {
		t.Fatal("unhinted insert failed")
	}
	if hintedSlot == unhintedSlot {
		t.Errorf("hinted and unhinted rasterizations of the same glyph collided on one slot: %+v", hintedSlot)
	}

	hintedKey, unhintedKey := key(1), key(1)
	hintedKey.Hinted, unhintedKey.Hinted = true, false
	if got, hit := cache.Get(hintedKey, ""); !hit || got != hintedSlot {
		t.Errorf("Get(hinted) = %+v, %v; want %+v, true", got, hit, hintedSlot)
	}
	if got, hit := cache.Get(unhintedKey, ""); !hit || got != unhintedSlot {
		t.Errorf("Get(unhinted) = %+v, %v; want %+v, true", got, hit, unhintedSlot)
	}
}

type fakeColrPainter struct{ paints int }

func (p *fakeColrPainter) Paint(recorder *AtlasCommandRecorder, drawTransform impl.SkMatrix) {
	p.paints++
}

func TestRenderColrKeepsDifferentContextColorsSeparate(t *testing.T) {
	cache := NewGlyphAtlasCache(NewShelfAllocator(64, 64), 64, 64)
	identity := impl.NewMatrixScale(1, 1)
	red := models.Color4f{R: 1, A: 1}
	blue := models.Color4f{B: 1, A: 1}

	painter := &fakeColrPainter{}
	redSlot, ok, _ := RenderColr(cache, key(1), red, "", 4, 4, painter, identity, identity)
	if !ok {
		t.Fatal("red insert failed")
	}
	blueSlot, ok, _ := RenderColr(cache, key(1), blue, "", 4, 4, painter, identity, identity)
	if !ok {
		t.Fatal("blue insert failed")
	}
	if redSlot == blueSlot {
		t.Errorf("glyphs painted with different context colors collided on one slot: %+v", redSlot)
	}
	if painter.paints != 2 {
		t.Errorf("painter.paints = %d, want 2 (one per color, no false cache hit)", painter.paints)
	}

	// A repeat request with the same context color should now hit the cache.
	if _, hit, _ := RenderColr(cache, key(1), red, "", 4, 4, painter, identity, identity); !hit {
		t.Error("expected repeated red request to hit the cache")
	}
	if painter.paints != 2 {
		t.Errorf("painter.paints = %d after cache hit, want unchanged 2", painter.paints)
	}
}
