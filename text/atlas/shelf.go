package atlas

// ShelfAllocator is the default PageAllocator: a row-based ("shelf")
// packer, one fixed-height row at a time, new row started when the
// current one lacks width. Freed rectangles are not reclaimed within
// a shelf (no general non-contiguous compaction); eviction relies on
// the caller giving back page allocations wholesale when a page
// empties, per Free's simplifying contract below.
//
// Grounded on:
// other_examples/7aeca629_qeedquan-go-gfx__imgui-font_atlas.go.go's
// CustomRect{Width,Height,X,Y} plus its "not yet packed" sentinel
// (X=Y=0xFFFF, IsPacked() tests X!=0xFFFF), generalized from a single
// one-shot packing pass (imgui builds its whole atlas once) to an
// incremental per-page allocator that accepts inserts and frees across
// the cache's lifetime.
type ShelfAllocator struct {
	width, height int
	pages         []*shelfPage
}

type shelfPage struct {
	shelfY     int // y of the shelf currently being filled
	shelfH     int // height of the current shelf
	cursorX    int // next free x within the current shelf
	freedBytes int // total area freed on this page, for diagnostics only
}

// NewShelfAllocator creates an allocator whose pages are width x
// height.
func NewShelfAllocator(width, height int) *ShelfAllocator {
	return &ShelfAllocator{width: width, height: height}
}

func (a *ShelfAllocator) pageFor(page int) *shelfPage {
	for len(a.pages) <= page {
		a.pages = append(a.pages, &shelfPage{})
	}
	return a.pages[page]
}

// Allocate reserves a w x h rectangle, starting a new shelf row when
// the current one has insufficient width or height remains.
func (a *ShelfAllocator) Allocate(page, w, h int) (x, y int, ok bool) {
	if w > a.width || h > a.height {
		return 0, 0, false
	}
	p := a.pageFor(page)

	if p.cursorX+w > a.width {
		p.shelfY += p.shelfH
		p.cursorX = 0
		p.shelfH = 0
	}
	if p.shelfY+h > a.height {
		return 0, 0, false
	}

	x, y = p.cursorX, p.shelfY
	p.cursorX += w
	if h > p.shelfH {
		p.shelfH = h
	}
	return x, y, true
}

// Free records reclaimed area. The shelf packer does not compact, so
// freed space on an active shelf is not reused; it is tracked only so
// a page that frees everything can be diagnosed as empty. Callers that
// need full reclamation should allocate a fresh page instead of
// relying on in-place reuse.
func (a *ShelfAllocator) Free(page, x, y, w, h int) {
	if page < 0 || page >= len(a.pages) {
		return
	}
	a.pages[page].freedBytes += w * h
}
