package fontprovider

import (
	gofont "github.com/go-text/typesetting/font"

	"github.com/textkit/richlayout/skia/impl"
	"github.com/textkit/richlayout/skia/interfaces"
	"github.com/textkit/richlayout/skia/models"
	"github.com/textkit/richlayout/skia/paragraph"
	"github.com/textkit/richlayout/text/itemize"
	"github.com/textkit/richlayout/text/shape"
	"github.com/textkit/richlayout/text/style"
)

// Registry resolves a style's font stack plus platform fallback into
// ordered Backend candidates, implementing the func text/shape.Shaper's
// Fallback field expects (spec.md §4.4's "Font fallback": the primary
// family stack in order, then platform fallback for that script and
// locale).
//
// Grounded on: skia/paragraph/font_collection.go's FontCollection
// (reused directly as the asset/fallback manager bookkeeping) and
// typeface_font_provider.go's TypefaceFontProvider (reused directly as
// the registered-typeface family/style index), adapted from
// FontCollection.FindTypefaces's []SkTypeface result to this package's
// []shape.FontBackend by keeping a side table from each registered
// SkTypeface's UniqueID to the Backend that wraps it.
type Registry struct {
	collection *paragraph.FontCollection
	assets     *paragraph.TypefaceFontProvider
	backends   map[uint32]*Backend
	nextID     uint32
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	assets := paragraph.NewTypefaceFontProvider()
	collection := paragraph.NewFontCollection()
	collection.SetAssetFontManager(assets)
	return &Registry{
		collection: collection,
		assets:     assets,
		backends:   make(map[uint32]*Backend),
	}
}

// SetSystemFallback registers the host's platform font manager (e.g. a
// fontconfig- or CoreText-backed interfaces.SkFontMgr). Fallback asks
// it for each family in a style's stack after the registered faces,
// and asks it for a character fallback when no family resolved to a
// registered Backend (spec.md §4.4's "platform fallback").
func (r *Registry) SetSystemFallback(mgr interfaces.SkFontMgr) {
	r.collection.SetDefaultFontManager(mgr)
}

// RegisterFace loads face under familyName at the given style, wraps
// it in a Backend, and returns it. The caller is responsible for
// loading the *font.Face itself (e.g. via font.ParseTTF on file bytes);
// this registry only indexes already-parsed faces.
func (r *Registry) RegisterFace(familyName string, face *gofont.Face, sty models.FontStyle) *Backend {
	typeface := impl.NewTypefaceWithTypefaceFace(familyName, sty, face)
	r.assets.RegisterTypeface(typeface)

	r.nextID++
	backend := NewBackend(r.nextID, 0, typeface)
	r.backends[typeface.UniqueID()] = backend
	return backend
}

// RegisterFaceWithAlias is RegisterFace plus an additional family alias
// the style stack can name to reach this face.
func (r *Registry) RegisterFaceWithAlias(familyName, alias string, face *gofont.Face, sty models.FontStyle) *Backend {
	typeface := impl.NewTypefaceWithTypefaceFace(familyName, sty, face)
	r.assets.RegisterTypefaceWithAlias(typeface, alias)

	r.nextID++
	backend := NewBackend(r.nextID, 0, typeface)
	r.backends[typeface.UniqueID()] = backend
	return backend
}

// Fallback implements the func(itemize.Item) []shape.FontBackend shape
// required by text/shape.Shaper: resolve item.Style's family stack via
// FontCollection.FindTypefaces (the registered faces for every family,
// then the platform fallback manager for every family) and keep the
// typefaces that have a Backend. Only when none is left does it ask
// FontCollection.DefaultFallback for one more typeface.
func (r *Registry) Fallback(item itemize.Item) []shape.FontBackend {
	skStyle := toSkStyle(item.Style)
	typefaces := r.collection.FindTypefaces(item.Style.FontFamilies, skStyle)

	var candidates []shape.FontBackend
	for _, tf := range typefaces {
		if b, ok := r.backendFor(tf); ok {
			candidates = append(candidates, b)
		}
	}

	if len(candidates) == 0 {
		locale := item.Style.Locale
		if fallback := r.collection.DefaultFallback(0, skStyle, locale); fallback != nil {
			if b, ok := r.backendFor(fallback); ok {
				candidates = append(candidates, b)
			}
		}
	}

	return candidates
}

// backendFor resolves a typeface returned by FontCollection back to
// the Backend that registered it. Typefaces supplied by a system
// fallback manager (not registered through RegisterFace) have no
// Backend wrapper and are skipped; a caller wiring a real platform
// manager registers a Backend for any typeface it hands back the first
// time FindTypefaces resolves it, via RegisterTypefaceBackend.
func (r *Registry) backendFor(tf interfaces.SkTypeface) (*Backend, bool) {
	typeface, ok := tf.(*impl.Typeface)
	if !ok {
		return nil, false
	}
	b, ok := r.backends[typeface.UniqueID()]
	return b, ok
}

// RegisterTypefaceBackend indexes an already-constructed Backend for a
// typeface obtained from outside RegisterFace (e.g. one just returned
// by a system fallback manager), so a later Fallback call can find it.
func (r *Registry) RegisterTypefaceBackend(typeface *impl.Typeface, backend *Backend) {
	r.backends[typeface.UniqueID()] = backend
}

func toSkStyle(s style.Style) models.FontStyle {
	return models.FontStyle{
		Weight: models.FontWeight(s.Weight),
		Width:  toSkWidth(s.Width),
		Slant:  toSkSlant(s.FontStyle),
	}
}

// toSkWidth maps a CSS font-stretch percentage onto Skia's 1-9 width
// scale (skia/models/font_style.go), snapping to the nearest of the
// nine standard CSS stretch keywords.
func toSkWidth(w style.FontWidth) models.FontWidth {
	percentages := [9]float32{50, 62.5, 75, 87.5, 100, 112.5, 125, 150, 200}
	best := 0
	bestDist := float32(1 << 30)
	for i, p := range percentages {
		d := float32(w) - p
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return models.FontWidth(best + 1)
}

func toSkSlant(fs style.FontStyle) models.FontSlant {
	switch fs.Kind {
	case style.FontStyleItalic:
		return models.FontSlantItalic
	case style.FontStyleOblique:
		return models.FontSlantOblique
	default:
		return models.FontSlantUpright
	}
}
