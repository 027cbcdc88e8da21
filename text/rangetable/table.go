package rangetable

import (
	"fmt"
	"math"
	"sort"
)

// MaxIndex is the largest text/span count the table accepts (32-bit domain
// per spec.md §4.1/§7 — the layout engine uses 32-bit indices pervasively).
const MaxIndex = math.MaxUint32

// span is an inserted (range, value) pair, tagged with its insertion order
// so Segment can report active spans in ascending application order.
type span[V any] struct {
	id    int
	r     TextRange
	value V
}

// Table is an ordered collection of possibly-overlapping byte ranges with
// arbitrary payloads. Its sole nontrivial operation is Segment, which
// partitions [0, n) into maximal non-overlapping pieces together with the
// list of spans active over each piece, in ascending insertion (id) order.
//
// Ported from: skia/paragraph/range.go + block.go (Block/BlockRange),
// generalized from a single TextStyle payload per block to an arbitrary
// value type and to overlapping, not just contiguous, spans.
type Table[V any] struct {
	spans []span[V]
}

// NewTable creates an empty Table.
func NewTable[V any]() *Table[V] {
	return &Table[V]{}
}

// Insert adds a span covering r with payload v. Zero-length ranges are
// retained as segmentation points but never appear in a segment's Active
// list (spec.md §4.1).
func (t *Table[V]) Insert(r TextRange, v V) {
	if r.Start > MaxIndex || r.End > MaxIndex {
		panic(fmt.Sprintf("rangetable: span bound %d exceeds %d", r.End, MaxIndex))
	}
	if len(t.spans) > MaxIndex {
		panic(fmt.Sprintf("rangetable: span count exceeds %d", MaxIndex))
	}
	t.spans = append(t.spans, span[V]{id: len(t.spans), r: r, value: v})
}

// Segment is one maximal piece of [0, n) together with the spans active
// over it, in ascending application (insertion) order.
type Segment[V any] struct {
	Range  TextRange
	Active []V
}

// Segment partitions [0, n) into non-overlapping segments covering every
// byte, annotating each with the spans active over it.
//
// Complexity: O((len(spans) + len(boundaries)) log len(spans)), following
// spec.md §4.1: collect boundaries, bucket spans into CSR start/end event
// arrays keyed by boundary index, then sweep maintaining a sorted active
// list via binary-search insert/remove.
func (t *Table[V]) Segment(n int) []Segment[V] {
	if n > MaxIndex {
		panic(fmt.Sprintf("rangetable: text length %d exceeds %d", n, MaxIndex))
	}

	boundarySet := map[int]struct{}{0: {}, n: {}}
	for _, s := range t.spans {
		boundarySet[s.r.Start] = struct{}{}
		boundarySet[s.r.End] = struct{}{}
	}
	boundaries := make([]int, 0, len(boundarySet))
	for b := range boundarySet {
		boundaries = append(boundaries, b)
	}
	sort.Ints(boundaries)
	boundaryIndex := make(map[int]int, len(boundaries))
	for i, b := range boundaries {
		boundaryIndex[b] = i
	}

	// CSR: startEvents[i] / endEvents[i] list span ids starting/ending at
	// boundaries[i].
	startEvents := make([][]int, len(boundaries))
	endEvents := make([][]int, len(boundaries))
	for _, s := range t.spans {
		if s.r.Start == s.r.End {
			continue // empty ranges are segmentation points only
		}
		startEvents[boundaryIndex[s.r.Start]] = append(startEvents[boundaryIndex[s.r.Start]], s.id)
		endEvents[boundaryIndex[s.r.End]] = append(endEvents[boundaryIndex[s.r.End]], s.id)
	}

	var active []int // span ids, kept sorted ascending
	removeID := func(id int) {
		i := sort.SearchInts(active, id)
		if i < len(active) && active[i] == id {
			active = append(active[:i], active[i+1:]...)
		}
	}
	insertID := func(id int) {
		i := sort.SearchInts(active, id)
		active = append(active, 0)
		copy(active[i+1:], active[i:])
		active[i] = id
	}

	segs := make([]Segment[V], 0, len(boundaries))
	for i := 0; i < len(boundaries)-1; i++ {
		for _, id := range endEvents[i] {
			removeID(id)
		}
		for _, id := range startEvents[i] {
			insertID(id)
		}
		start, end := boundaries[i], boundaries[i+1]
		if start == end {
			continue
		}
		seg := Segment[V]{Range: NewTextRange(start, end)}
		if len(active) > 0 {
			seg.Active = make([]V, len(active))
			for j, id := range active {
				seg.Active[j] = t.spans[id].value
			}
		}
		segs = append(segs, seg)
	}
	return segs
}
