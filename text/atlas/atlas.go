// Package atlas implements spec.md §4.9: a glyph atlas cache mapping
// GlyphCacheKey to AtlasSlot, backed by a host page allocator, plus
// the append-only per-page command recorder a renderer replays at
// flush time.
//
// Grounded on: gioui-gio's text/lru.go (layoutCache/pathCache — a map
// plus an intrusive doubly-linked sentinel list, remove/insert pointer
// surgery on every Get/Put, oldest-first eviction) for the
// entry-aging bookkeeping, generalized from gio's fixed-capacity LRU
// to spec.md's age-threshold eviction (maintain() walks the list from
// its oldest end evicting while serial_age exceeds MAX_ENTRY_AGE,
// stopping at the first entry still young enough, which the
// recency-ordered list makes a short walk); and
// other_examples/7aeca629_qeedquan-go-gfx__imgui-font_atlas.go.go's
// CustomRect (Width/Height/X/Y plus an IsPacked sentinel) for the
// default shelf allocator's packed-rectangle bookkeeping.
package atlas

import (
	"math"

	"github.com/textkit/richlayout/skia/enums"
	"github.com/textkit/richlayout/skia/impl"
	"github.com/textkit/richlayout/skia/interfaces"
	"github.com/textkit/richlayout/skia/models"
)

const (
	GlyphPadding         = 1
	MaxGlyphSize         = 128
	EvictionFrequency    = 64
	CachedCountThreshold = 512
	MaxEntryAge          = 64
	SubpixelBuckets      = 4
)

// GlyphCacheKey identifies one cached rasterization of a glyph
// (spec.md §3). Variation coordinates are not part of the key itself:
// entries for a variable font live in a separate map keyed by the
// serialized coordinate string (spec.md §4.9's "static and variable
// maps"). FontIndex distinguishes faces within a TrueType/OpenType
// collection sharing one FontID; Hinted must match
// text/glyphprep.HintPlan.Hinted for the same request, since a hinted
// and an unhinted rasterization of the same glyph/size/subpixel are
// not interchangeable; ContextColor is the COLR foreground color for
// color glyphs (zero value for glyphs with no color dependency).
type GlyphCacheKey struct {
	FontID       uint32
	FontIndex    uint32
	GlyphID      uint16
	Size         float32
	SubpixelX    uint8
	Hinted       bool
	ContextColor models.Color4f
}

// AtlasSlot is an allocated rectangle on an atlas page.
type AtlasSlot struct {
	PageIndex     int
	X, Y          int
	Width, Height int
}

// SubpixelBucket quantizes a transform's fractional x-translation into
// [0, SubpixelBuckets), per spec.md §4.9's subpixel keying. Y is not
// keyed because outline glyphs are vertically hinted to integers
// (text/glyphprep's PlanHinting).
func SubpixelBucket(tx float32) uint8 {
	frac := tx - float32(math.Floor(float64(tx)))
	b := int(math.Round(float64(frac) * SubpixelBuckets))
	if b < 0 {
		b = 0
	}
	if b >= SubpixelBuckets {
		b = SubpixelBuckets - 1
	}
	return uint8(b)
}

// PageAllocator is the host's shelf/skyline subdivision strategy for
// one atlas page (spec.md §4.9: "subdivision uses the host's
// shelf/skyline allocator (external collaborator)").
type PageAllocator interface {
	// Allocate reserves a width x height rectangle on page, returning
	// its origin. ok is false if the page has no room.
	Allocate(page, width, height int) (x, y int, ok bool)
	// Free returns a previously allocated rectangle to the allocator.
	Free(page, x, y, width, height int)
}

// Paint is a simplified solid/gradient paint description for recorded
// commands; gradients are out of scope here and recorded as an opaque
// descriptor id the renderer resolves.
type Paint struct {
	Solid      bool
	Color      models.Color4f
	GradientID uint32
}

// CommandKind tags one AtlasCommand's variant (spec.md §4.9's
// AtlasCommand enumeration).
type CommandKind int

const (
	CmdSetTransform CommandKind = iota
	CmdSetPaint
	CmdSetPaintTransform
	CmdFillPath
	CmdFillRect
	CmdPushClipLayer
	CmdPushBlendLayer
	CmdPopLayer
)

// AtlasCommand is one recorded rasterization instruction. Only the
// fields relevant to Kind are populated.
type AtlasCommand struct {
	Kind      CommandKind
	Transform impl.SkMatrix
	Paint     Paint
	Path      interfaces.SkPath
	Rect      models.Rect
	Blend     enums.BlendMode
}

// AtlasCommandRecorder is one page's append-only command log, drained
// and replayed by the renderer at flush time (spec.md §5: "append-only
// during recording and replayed verbatim at flush").
type AtlasCommandRecorder struct {
	commands []AtlasCommand
}

func (r *AtlasCommandRecorder) SetTransform(t impl.SkMatrix) {
	r.commands = append(r.commands, AtlasCommand{Kind: CmdSetTransform, Transform: t})
}

func (r *AtlasCommandRecorder) SetPaint(p Paint) {
	r.commands = append(r.commands, AtlasCommand{Kind: CmdSetPaint, Paint: p})
}

func (r *AtlasCommandRecorder) SetPaintTransform(t impl.SkMatrix) {
	r.commands = append(r.commands, AtlasCommand{Kind: CmdSetPaintTransform, Transform: t})
}

func (r *AtlasCommandRecorder) FillPath(p interfaces.SkPath) {
	r.commands = append(r.commands, AtlasCommand{Kind: CmdFillPath, Path: p})
}

func (r *AtlasCommandRecorder) FillRect(rect models.Rect) {
	r.commands = append(r.commands, AtlasCommand{Kind: CmdFillRect, Rect: rect})
}

func (r *AtlasCommandRecorder) PushClipLayer(rect models.Rect) {
	r.commands = append(r.commands, AtlasCommand{Kind: CmdPushClipLayer, Rect: rect})
}

func (r *AtlasCommandRecorder) PushBlendLayer(mode enums.BlendMode) {
	r.commands = append(r.commands, AtlasCommand{Kind: CmdPushBlendLayer, Blend: mode})
}

func (r *AtlasCommandRecorder) PopLayer() {
	r.commands = append(r.commands, AtlasCommand{Kind: CmdPopLayer})
}

// Take drains the recorder's commands for the renderer to replay.
func (r *AtlasCommandRecorder) Take() []AtlasCommand {
	cmds := r.commands
	r.commands = nil
	return cmds
}

// PendingBitmapUpload is a queued bitmap glyph awaiting upload to its
// atlas slot; bitmap glyphs bypass the command recorder entirely
// (spec.md §4.9: "Bitmap glyphs are not recorded").
type PendingBitmapUpload struct {
	ImageID uint64
	Pixmap  models.Pixmap
	Slot    AtlasSlot
}

type atlasEntry struct {
	key        GlyphCacheKey
	varCoords  string // "" for the static map
	slot       AtlasSlot
	serial     uint32
	hits       uint32
	next, prev *atlasEntry
}

// GlyphAtlasCache maps GlyphCacheKey (static fonts) or
// (varCoords, GlyphCacheKey) (variable fonts) to an AtlasSlot.
type GlyphAtlasCache struct {
	allocator  PageAllocator
	pageWidth  int
	pageHeight int

	static   map[GlyphCacheKey]*atlasEntry
	variable map[string]map[GlyphCacheKey]*atlasEntry

	head, tail *atlasEntry // sentinels; head.prev is the most recent, tail.next the oldest
	entryCount int

	serial              uint32
	framesSinceEviction uint32
	lastEvictionSerial  uint32

	pageCount      int
	recorders      map[int]*AtlasCommandRecorder
	pendingUploads []PendingBitmapUpload
}

// NewGlyphAtlasCache creates an empty cache backed by allocator, whose
// pages are pageWidth x pageHeight.
func NewGlyphAtlasCache(allocator PageAllocator, pageWidth, pageHeight int) *GlyphAtlasCache {
	head := &atlasEntry{}
	tail := &atlasEntry{}
	head.prev = tail
	tail.next = head
	return &GlyphAtlasCache{
		allocator:  allocator,
		pageWidth:  pageWidth,
		pageHeight: pageHeight,
		static:     make(map[GlyphCacheKey]*atlasEntry),
		variable:   make(map[string]map[GlyphCacheKey]*atlasEntry),
		head:       head,
		tail:       tail,
		recorders:  make(map[int]*AtlasCommandRecorder),
	}
}

func (c *GlyphAtlasCache) lookup(key GlyphCacheKey, varCoords string) *atlasEntry {
	if varCoords == "" {
		return c.static[key]
	}
	m := c.variable[varCoords]
	if m == nil {
		return nil
	}
	return m[key]
}

func (c *GlyphAtlasCache) store(e *atlasEntry) {
	if e.varCoords == "" {
		c.static[e.key] = e
		return
	}
	m := c.variable[e.varCoords]
	if m == nil {
		m = make(map[GlyphCacheKey]*atlasEntry)
		c.variable[e.varCoords] = m
	}
	m[e.key] = e
}

func (c *GlyphAtlasCache) delete(e *atlasEntry) {
	if e.varCoords == "" {
		delete(c.static, e.key)
		return
	}
	if m := c.variable[e.varCoords]; m != nil {
		delete(m, e.key)
		if len(m) == 0 {
			delete(c.variable, e.varCoords)
		}
	}
}

func (c *GlyphAtlasCache) unlink(e *atlasEntry) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

// insertRecent links e as the most-recently-used entry.
func (c *GlyphAtlasCache) insertRecent(e *atlasEntry) {
	e.next = c.head
	e.prev = c.head.prev
	e.prev.next = e
	e.next.prev = e
}

// Get looks up key, refreshing its serial to the current frame and
// counting a hit, per spec.md §4.9's get().
func (c *GlyphAtlasCache) Get(key GlyphCacheKey, varCoords string) (AtlasSlot, bool) {
	e := c.lookup(key, varCoords)
	if e == nil {
		return AtlasSlot{}, false
	}
	e.serial = c.serial
	e.hits++
	c.unlink(e)
	c.insertRecent(e)
	return e.slot, true
}

// Insert allocates width x height plus GLYPH_PADDING on each side,
// creating a new page if every existing page is full. ok is false if
// the glyph exceeds MAX_GLYPH_SIZE or allocation fails. On success x,y
// are the coordinates inside the padded region (offset by
// GLYPH_PADDING) and recorder is that page's command log.
func (c *GlyphAtlasCache) Insert(key GlyphCacheKey, varCoords string, width, height int) (x, y int, slot AtlasSlot, recorder *AtlasCommandRecorder, ok bool) {
	if max(width, height) > MaxGlyphSize {
		return 0, 0, AtlasSlot{}, nil, false
	}
	paddedW, paddedH := width+2*GlyphPadding, height+2*GlyphPadding

	page, px, py, allocated := c.allocateOnAnyPage(paddedW, paddedH)
	if !allocated {
		return 0, 0, AtlasSlot{}, nil, false
	}

	slot = AtlasSlot{PageIndex: page, X: px + GlyphPadding, Y: py + GlyphPadding, Width: width, Height: height}
	e := &atlasEntry{key: key, varCoords: varCoords, slot: slot, serial: c.serial}
	c.store(e)
	c.insertRecent(e)
	c.entryCount++

	return slot.X, slot.Y, slot, c.pageRecorder(page), true
}

func (c *GlyphAtlasCache) allocateOnAnyPage(w, h int) (page, x, y int, ok bool) {
	for p := 0; p < c.pageCount; p++ {
		if x, y, ok := c.allocator.Allocate(p, w, h); ok {
			return p, x, y, true
		}
	}
	page = c.pageCount
	c.pageCount++
	x, y, ok = c.allocator.Allocate(page, w, h)
	return page, x, y, ok
}

func (c *GlyphAtlasCache) pageRecorder(page int) *AtlasCommandRecorder {
	r := c.recorders[page]
	if r == nil {
		r = &AtlasCommandRecorder{}
		c.recorders[page] = r
	}
	return r
}

// Tick advances the cache's frame serial, with wrapping addition.
func (c *GlyphAtlasCache) Tick() {
	c.serial++
	c.framesSinceEviction++
}

// Maintain runs eviction when due (spec.md §4.9's cadence rule),
// reclaiming every entry whose serial age exceeds MaxEntryAge. The
// recency list keeps aged-out entries contiguous at the tail, so the
// walk stops at the first entry still young enough.
func (c *GlyphAtlasCache) Maintain() {
	if c.framesSinceEviction < EvictionFrequency && c.entryCount < CachedCountThreshold {
		return
	}
	c.lastEvictionSerial = c.serial
	c.framesSinceEviction = 0

	for e := c.tail.next; e != c.head; {
		next := e.next
		age := c.serial - e.serial
		if age <= MaxEntryAge {
			break
		}
		c.unlink(e)
		c.delete(e)
		c.entryCount--
		c.allocator.Free(e.slot.PageIndex, e.slot.X-GlyphPadding, e.slot.Y-GlyphPadding, e.slot.Width+2*GlyphPadding, e.slot.Height+2*GlyphPadding)
		e = next
	}
}

// QueueBitmapUpload enqueues a bitmap glyph for upload at flush time.
func (c *GlyphAtlasCache) QueueBitmapUpload(u PendingBitmapUpload) {
	c.pendingUploads = append(c.pendingUploads, u)
}

// TakePendingUploads drains the bitmap upload queue.
func (c *GlyphAtlasCache) TakePendingUploads() []PendingBitmapUpload {
	u := c.pendingUploads
	c.pendingUploads = nil
	return u
}

// TakePendingAtlasCommands drains every page's recorded commands.
func (c *GlyphAtlasCache) TakePendingAtlasCommands() map[int][]AtlasCommand {
	out := make(map[int][]AtlasCommand, len(c.recorders))
	for page, r := range c.recorders {
		if cmds := r.Take(); len(cmds) > 0 {
			out[page] = cmds
		}
	}
	return out
}
