package fontprovider

import (
	"testing"

	"github.com/go-text/typesetting/shaping"

	"github.com/textkit/richlayout/skia/interfaces"
	"github.com/textkit/richlayout/skia/models"
	"github.com/textkit/richlayout/text/itemize"
	"github.com/textkit/richlayout/text/style"
)

func glyph(clusterIndex int) shaping.Glyph {
	return shaping.Glyph{ClusterIndex: clusterIndex}
}

func TestClusterEndsFromGlyphsLogicalOrder(t *testing.T) {
	glyphs := []shaping.Glyph{glyph(0), glyph(0), glyph(2), glyph(4)}
	ends := clusterEndsFromGlyphs(glyphs, 0, 6)
	want := []int{2, 2, 4, 6}
	for i := range want {
		if ends[i] != want[i] {
			t.Errorf("ends[%d] = %d, want %d", i, ends[i], want[i])
		}
	}
}

// TestClusterEndsFromGlyphsReversedOrder mirrors an RTL run, where the
// shaper emits glyphs in visual (right-to-left) order so cluster values
// decrease across the array instead of increasing.
func TestClusterEndsFromGlyphsReversedOrder(t *testing.T) {
	glyphs := []shaping.Glyph{glyph(4), glyph(2), glyph(0), glyph(0)}
	ends := clusterEndsFromGlyphs(glyphs, 0, 6)
	want := []int{6, 4, 2, 2}
	for i := range want {
		if ends[i] != want[i] {
			t.Errorf("ends[%d] = %d, want %d", i, ends[i], want[i])
		}
	}
}

func TestClusterEndsFromGlyphsOffsetRunStart(t *testing.T) {
	glyphs := []shaping.Glyph{glyph(10), glyph(12)}
	ends := clusterEndsFromGlyphs(glyphs, 10, 4)
	want := []int{2, 4}
	for i := range want {
		if ends[i] != want[i] {
			t.Errorf("ends[%d] = %d, want %d", i, ends[i], want[i])
		}
	}
}

func TestToSkWidthSnapsToNearestKeyword(t *testing.T) {
	tests := []struct {
		in   style.FontWidth
		want models.FontWidth
	}{
		{50, 1},
		{100, 5},
		{200, 9},
		{90, 4},  // nearer 87.5 than 100
		{105, 5}, // nearer 100 than 112.5
	}
	for _, tt := range tests {
		if got := toSkWidth(tt.in); got != tt.want {
			t.Errorf("toSkWidth(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToSkSlantMapsStyleKind(t *testing.T) {
	tests := []struct {
		in   style.FontStyleKind
		want models.FontSlant
	}{
		{style.FontStyleNormal, models.FontSlantUpright},
		{style.FontStyleItalic, models.FontSlantItalic},
		{style.FontStyleOblique, models.FontSlantOblique},
	}
	for _, tt := range tests {
		got := toSkSlant(style.FontStyle{Kind: tt.in})
		if got != tt.want {
			t.Errorf("toSkSlant(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// fakeStyleSet backs fakeFontMgr's MatchFamily, returning a single fixed
// typeface regardless of requested style.
type fakeStyleSet struct {
	tf interfaces.SkTypeface
}

func (s *fakeStyleSet) Count() int                                            { return 1 }
func (s *fakeStyleSet) GetStyle(index int, style *models.FontStyle, name *string) {}
func (s *fakeStyleSet) CreateTypeface(index int) interfaces.SkTypeface        { return s.tf }
func (s *fakeStyleSet) MatchStyle(pattern models.FontStyle) interfaces.SkTypeface {
	return s.tf
}

// fakeFontMgr is a minimal interfaces.SkFontMgr stub that resolves every
// family lookup to the same registered fallback typeface, standing in
// for a real platform manager (fontconfig, CoreText) in Registry.Fallback
// tests.
type fakeFontMgr struct {
	tf interfaces.SkTypeface
}

func (m *fakeFontMgr) CountFamilies() int                { return 1 }
func (m *fakeFontMgr) GetFamilyName(index int) string     { return "fallback" }
func (m *fakeFontMgr) CreateStyleSet(index int) interfaces.SkFontStyleSet {
	return &fakeStyleSet{tf: m.tf}
}
func (m *fakeFontMgr) MatchFamily(familyName string) interfaces.SkFontStyleSet {
	return &fakeStyleSet{tf: m.tf}
}
func (m *fakeFontMgr) MatchFamilyStyle(familyName string, style models.FontStyle) interfaces.SkTypeface {
	return m.tf
}
func (m *fakeFontMgr) MatchFamilyStyleCharacter(familyName string, style models.FontStyle, bcp47 []string, character rune) interfaces.SkTypeface {
	return m.tf
}
func (m *fakeFontMgr) MakeFromData(data interfaces.SkData, ttcIndex int) interfaces.SkTypeface {
	return m.tf
}
func (m *fakeFontMgr) MakeFromFile(path string, ttcIndex int) interfaces.SkTypeface { return m.tf }
func (m *fakeFontMgr) LegacyMakeTypeface(familyName string, style models.FontStyle) interfaces.SkTypeface {
	return m.tf
}

func TestFallbackReturnsNoCandidatesWhenStackAndPlatformUnresolved(t *testing.T) {
	r := NewRegistry()

	item := itemize.Item{
		Style: style.Style{FontFamilies: []string{"Nonexistent Family"}},
	}

	// No face registered under "Nonexistent Family" and no system
	// fallback manager set: the stack and the platform fallback both
	// come back empty, so Fallback must report no candidates rather
	// than panicking.
	if got := r.Fallback(item); len(got) != 0 {
		t.Errorf("expected no candidates with nothing registered, got %d", len(got))
	}
}

// fakeTypeface is a minimal interfaces.SkTypeface used only as an
// opaque, comparable identity for fakeFontMgr to hand back; Registry
// only ever compares it against *impl.Typeface via a type assertion
// in backendFor, which this fake intentionally fails, exercising the
// "unregistered platform fallback typeface" skip path.
type fakeTypeface struct{ interfaces.SkTypeface }

func TestFallbackSkipsUnregisteredPlatformTypeface(t *testing.T) {
	r := NewRegistry()
	r.SetSystemFallback(&fakeFontMgr{tf: &fakeTypeface{}})

	item := itemize.Item{
		Style: style.Style{FontFamilies: []string{"Nonexistent Family"}},
	}

	// The platform manager resolves a typeface, but it was never
	// registered through RegisterFace (or RegisterTypefaceBackend), so
	// backendFor can't find a Backend wrapper for it and Fallback must
	// not report a candidate rather than returning a nil *Backend.
	if got := r.Fallback(item); len(got) != 0 {
		t.Errorf("expected no candidates for an unregistered fallback typeface, got %d", len(got))
	}
}
