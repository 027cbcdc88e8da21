package atlas

import (
	"testing"

	"github.com/textkit/richlayout/skia/models"
)

func key(i int) GlyphCacheKey {
	return GlyphCacheKey{FontID: 1, GlyphID: uint16(i), Size: 16}
}

func TestInsertSlotsDoNotOverlapWithinAPage(t *testing.T) {
	cache := NewGlyphAtlasCache(NewShelfAllocator(64, 64), 64, 64)
	var slots []AtlasSlot
	for i := 0; i < 8; i++ {
		_, _, slot, _, ok := cache.Insert(key(i), "", 6, 6)
		if !ok {
			t.Fatalf("insert %d failed", i)
		}
		slots = append(slots, slot)
	}
	for i := range slots {
		for j := range slots {
			if i == j || slots[i].PageIndex != slots[j].PageIndex {
				continue
			}
			if rectsOverlap(slots[i], slots[j]) {
				t.Errorf("slot %d overlaps slot %d: %+v vs %+v", i, j, slots[i], slots[j])
			}
		}
	}
}

func rectsOverlap(a, b AtlasSlot) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

func TestGetReturnsSameSlotOnRepeatedLookup(t *testing.T) {
	cache := NewGlyphAtlasCache(NewShelfAllocator(64, 64), 64, 64)
	_, _, inserted, _, ok := cache.Insert(key(1), "", 5, 5)
	if !ok {
		t.Fatal("insert failed")
	}
	got, hit := cache.Get(key(1), "")
	if !hit {
		t.Fatal("expected cache hit")
	}
	if got != inserted {
		t.Errorf("Get returned %+v, want %+v", got, inserted)
	}
}

func TestInsertRejectsGlyphLargerThanMaxGlyphSize(t *testing.T) {
	cache := NewGlyphAtlasCache(NewShelfAllocator(512, 512), 512, 512)
	_, _, _, _, ok := cache.Insert(key(1), "", MaxGlyphSize+1, 10)
	if ok {
		t.Fatal("expected insert to fail for a glyph exceeding MaxGlyphSize")
	}
}

func TestStaticAndVariableEntriesForSameKeyDoNotCollide(t *testing.T) {
	cache := NewGlyphAtlasCache(NewShelfAllocator(64, 64), 64, 64)
	k := key(7)
	_, _, staticSlot, _, ok := cache.Insert(k, "", 4, 4)
	if !ok {
		t.Fatal("static insert failed")
	}
	_, _, varSlot, _, ok := cache.Insert(k, "wght=700", 4, 4)
	if !ok {
		t.Fatal("variable insert failed")
	}
	if staticSlot == varSlot {
		t.Errorf("static and variable entries for the same key collided: %+v", staticSlot)
	}
	if _, hit := cache.Get(k, ""); !hit {
		t.Error("expected static entry to still resolve")
	}
	if _, hit := cache.Get(k, "wght=700"); !hit {
		t.Error("expected variable entry to still resolve")
	}
}

// TestEvictionReclaimsOnlyStaleEntries mirrors spec.md §8's atlas
// eviction scenario: insert 100 keys, advance 100 frames while
// repeatedly touching the most recent 50, then Maintain should evict
// only the untouched half.
func TestEvictionReclaimsOnlyStaleEntries(t *testing.T) {
	cache := NewGlyphAtlasCache(NewShelfAllocator(512, 512), 512, 512)

	for i := 0; i < 100; i++ {
		if _, _, _, _, ok := cache.Insert(key(i), "", 4, 4); !ok {
			t.Fatalf("insert %d failed", i)
		}
	}

	for frame := 0; frame < 100; frame++ {
		cache.Tick()
		for i := 50; i < 100; i++ {
			cache.Get(key(i), "")
		}
	}

	cache.Maintain()

	for i := 0; i < 50; i++ {
		if _, hit := cache.Get(key(i), ""); hit {
			t.Errorf("key %d should have been evicted as stale", i)
		}
	}
	for i := 50; i < 100; i++ {
		if _, hit := cache.Get(key(i), ""); !hit {
			t.Errorf("key %d should still be cached", i)
		}
	}
}

func TestMaintainDoesNotRunBeforeCadenceThreshold(t *testing.T) {
	cache := NewGlyphAtlasCache(NewShelfAllocator(64, 64), 64, 64)
	cache.Insert(key(1), "", 4, 4)
	for i := 0; i < EvictionFrequency*200; i++ {
		cache.Tick()
	}
	cache.Maintain() // first call past the threshold evicts the stale entry

	cache.Insert(key(2), "", 4, 4)
	if _, hit := cache.Get(key(2), ""); !hit {
		t.Fatal("expected freshly inserted entry to be retrievable")
	}
	// A second Maintain call immediately after should be a no-op: not
	// enough frames have passed and the entry count is far below
	// CachedCountThreshold, so key(2) must survive.
	cache.Maintain()
	if _, hit := cache.Get(key(2), ""); !hit {
		t.Error("entry evicted even though the eviction cadence had not elapsed")
	}
}

func TestSubpixelBucketRoundsFractionalTranslation(t *testing.T) {
	tests := []struct {
		tx   float32
		want uint8
	}{
		{0.0, 0},
		{0.24, 1},
		{0.26, 1},
		{0.5, 2},
		{0.76, 3},
		{0.99, 3}, // rounds up to SubpixelBuckets and clamps back down
	}
	for _, tt := range tests {
		if got := SubpixelBucket(tt.tx); got != tt.want {
			t.Errorf("SubpixelBucket(%v) = %d, want %d", tt.tx, got, tt.want)
		}
	}
}

func TestAtlasCommandRecorderTakeDrainsAndResets(t *testing.T) {
	r := &AtlasCommandRecorder{}
	r.SetPaint(Paint{Solid: true})
	r.FillRect(models.Rect{Left: 0, Top: 0, Right: 1, Bottom: 1})
	cmds := r.Take()
	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2", len(cmds))
	}
	if len(r.Take()) != 0 {
		t.Error("expected recorder to be empty after Take")
	}
}
