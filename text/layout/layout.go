// Package layout holds the flat, indexed representation of a shaped
// paragraph (spec.md §3's Layout/LayoutData) and the read-only view
// types queried through it (spec.md §6).
//
// Grounded on: skia/paragraph/cluster.go's Cluster (owner + runIndex +
// flat start/end indices, resolving fields by calling back into an
// Owner interface) and skia/paragraph/text_line.go's TextLineOwner,
// generalized from a single ParagraphImpl owner to the immutable
// *LayoutData the design notes (spec.md §9) call for: every view type
// here carries only a *LayoutData pointer plus indices, never its own
// copy of the data.
package layout

import (
	"github.com/textkit/richlayout/text/itemize"
	"github.com/textkit/richlayout/text/rangetable"
	"github.com/textkit/richlayout/text/shape"
)

// GlyphRecord is one glyph in the layout's flat glyph buffer, already
// positioned relative to its run's origin.
type GlyphRecord struct {
	GlyphID    uint16
	X, Y       float32
	Advance    float32
	StyleIndex int
}

// ClusterRecord is one cluster in the layout's flat cluster buffer.
type ClusterRecord struct {
	TextRange              rangetable.TextRange
	RunIndex               int
	GlyphOffset            int
	GlyphLen               int
	Advance                float32
	IsLigatureStart        bool
	IsLigatureContinuation bool
	IsInlineBox            bool
	IsWordBoundary         bool
	IsSoftLineBreak        bool
	IsHardLineBreak        bool
}

// RunRecord is one shaped, itemized run in the layout's flat run
// buffer: a contiguous span of clusters sharing font/style/script/level.
type RunRecord struct {
	Item         itemize.Item
	TextRange    rangetable.TextRange
	ClusterStart int
	ClusterLen   int
	GlyphStart   int
	GlyphLen     int
	Ascent       float32
	Descent      float32
	Leading      float32
	Advance      float32
}

// IsRTL reports whether this run's bidi level is odd.
func (r RunRecord) IsRTL() bool { return r.Item.Level&1 == 1 }

// InlineBox is a host-supplied attachment placeholder (spec.md §6).
type InlineBox struct {
	ID     uint64
	Index  int
	Width  float32
	Height float32
}

// BreakReason classifies why a line ended.
type BreakReason int

const (
	BreakReasonNone BreakReason = iota
	BreakReasonRegular
	BreakReasonEmergency
	BreakReasonExplicit
)

// LineMetrics carries a line's vertical and horizontal extent.
type LineMetrics struct {
	Baseline                 float32
	Ascent                   float32
	Descent                  float32
	Leading                  float32
	LineHeight               float32
	MinCoord                 float32
	MaxCoord                 float32
	Advance                  float32
	TrailingWhitespaceAdvance float32
}

// LineItem records one run's placement within a line's visual order.
// Trailing-whitespace clusters are not trimmed from it.
type LineItem struct {
	RunIndex     int
	ClusterStart int
	ClusterLen   int
}

// Line is one laid-out line of text.
type Line struct {
	ClusterRange rangetable.Range[int] // logical-order [start, end) into LayoutData.Clusters
	TextRange    rangetable.TextRange
	Metrics      LineMetrics
	BreakReason  BreakReason
	Items        []LineItem // in visual order
	Offset       float32    // horizontal offset assigned by text/align
}

// LayoutData is the flat, mutable workspace a build produces: runs,
// clusters, and glyphs in logical order, plus the lines a line breaker
// appends on top of them. Once line-broken it is treated as read-only
// and queried through the Layout wrapper below (spec.md §3 Lifecycle).
type LayoutData struct {
	Scale     float32
	BaseLevel uint8
	Width     float32
	FullWidth float32
	Height    float32

	Runs        []RunRecord
	Clusters    []ClusterRecord
	Glyphs      []GlyphRecord
	InlineBoxes []InlineBox
	Lines       []Line
}

// New creates an empty workspace for a build at the given scale and
// paragraph base level.
func New(scale float32, baseLevel uint8) *LayoutData {
	return &LayoutData{Scale: scale, BaseLevel: baseLevel}
}

// AppendRun flattens one shape.Run's glyphs and clusters onto the end
// of the layout's buffers, recording a RunRecord that indexes into
// them. Runs must be appended in logical (not visual) order.
func (d *LayoutData) AppendRun(run shape.Run, styleIndex int) {
	glyphStart := len(d.Glyphs)
	for _, g := range run.Glyphs {
		d.Glyphs = append(d.Glyphs, GlyphRecord{
			GlyphID:    g.GlyphID,
			X:          g.XOffset,
			Y:          g.YOffset,
			Advance:    g.XAdvance,
			StyleIndex: styleIndex,
		})
	}

	clusterStart := len(d.Clusters)
	runIndex := len(d.Runs)
	for _, c := range run.Clusters {
		d.Clusters = append(d.Clusters, ClusterRecord{
			TextRange:              c.TextRange,
			RunIndex:               runIndex,
			GlyphOffset:            glyphStart + c.GlyphOffset,
			GlyphLen:               c.GlyphLen,
			Advance:                c.Advance,
			IsLigatureStart:        c.IsLigatureStart,
			IsLigatureContinuation: c.IsLigatureContinuation,
			IsInlineBox:            c.IsInlineBox,
		})
	}

	d.Runs = append(d.Runs, RunRecord{
		Item:         run.Item,
		TextRange:    run.Item.Range,
		ClusterStart: clusterStart,
		ClusterLen:   len(run.Clusters),
		GlyphStart:   glyphStart,
		GlyphLen:     len(run.Glyphs),
		Ascent:       run.Ascent,
		Descent:      run.Descent,
		Leading:      run.Leading,
		Advance:      run.TotalAdvance(),
	})
}

// Layout is the read-only product of a completed build (spec.md §6's
// opaque Layout, queried via the view types below).
type Layout struct {
	data *LayoutData
}

// Finish wraps a line-broken LayoutData as a read-only Layout. Callers
// must not mutate data after calling Finish.
func Finish(data *LayoutData) *Layout {
	return &Layout{data: data}
}

func (l *Layout) Data() *LayoutData { return l.data }

func (l *Layout) Lines() int { return len(l.data.Lines) }

func (l *Layout) Line(i int) LineView {
	return LineView{l: l, i: i}
}

// LineView is an indexed, non-owning view of one Line.
type LineView struct {
	l *Layout
	i int
}

func (v LineView) line() Line { return v.l.data.Lines[v.i] }

func (v LineView) TextRange() rangetable.TextRange { return v.line().TextRange }
func (v LineView) Metrics() LineMetrics            { return v.line().Metrics }
func (v LineView) BreakReason() BreakReason         { return v.line().BreakReason }
func (v LineView) Offset() float32                  { return v.line().Offset }

// Runs returns this line's runs in visual order.
func (v LineView) Runs() []RunView {
	items := v.line().Items
	out := make([]RunView, len(items))
	for i, it := range items {
		out[i] = RunView{l: v.l, runIndex: it.RunIndex, clusterStart: it.ClusterStart, clusterLen: it.ClusterLen}
	}
	return out
}

// RunView is an indexed, non-owning view of one run's participation in
// a single line; trailing-whitespace clusters are not trimmed from it.
type RunView struct {
	l            *Layout
	runIndex     int
	clusterStart int
	clusterLen   int
}

func (v RunView) record() RunRecord { return v.l.data.Runs[v.runIndex] }

func (v RunView) TextRange() rangetable.TextRange { return v.record().TextRange }
func (v RunView) IsRTL() bool                     { return v.record().IsRTL() }
func (v RunView) Advance() float32                { return v.record().Advance }
func (v RunView) Metrics() (ascent, descent, leading float32) {
	r := v.record()
	return r.Ascent, r.Descent, r.Leading
}

// Clusters returns this view's clusters in logical order; reverse it
// for visual order on an RTL run (spec.md §4.3 "RTL runs iterate
// clusters in reverse when producing visual order").
func (v RunView) Clusters() []ClusterView {
	out := make([]ClusterView, v.clusterLen)
	for i := 0; i < v.clusterLen; i++ {
		out[i] = ClusterView{l: v.l, index: v.clusterStart + i}
	}
	return out
}

// VisualClusters returns Clusters() reversed when the run is RTL.
func (v RunView) VisualClusters() []ClusterView {
	cs := v.Clusters()
	if !v.IsRTL() {
		return cs
	}
	for i, j := 0, len(cs)-1; i < j; i, j = i+1, j-1 {
		cs[i], cs[j] = cs[j], cs[i]
	}
	return cs
}

// ClusterView is an indexed, non-owning view of one cluster.
type ClusterView struct {
	l     *Layout
	index int
}

func (v ClusterView) record() ClusterRecord { return v.l.data.Clusters[v.index] }

// Index returns this view's position in the layout's flat cluster
// buffer, for callers (e.g. text/cursor) that need to index back in.
func (v ClusterView) Index() int { return v.index }

func (v ClusterView) TextRange() rangetable.TextRange { return v.record().TextRange }
func (v ClusterView) Advance() float32                { return v.record().Advance }

// Glyphs returns this cluster's glyphs.
func (v ClusterView) Glyphs() []GlyphRecord {
	r := v.record()
	return v.l.data.Glyphs[r.GlyphOffset : r.GlyphOffset+r.GlyphLen]
}

// ClusterInfo is the flag set ClusterView.Info returns, mirroring
// spec.md §6's Cluster.info() query surface. Info does not set
// IsSpaceOrNBSP; it is always false.
type ClusterInfo struct {
	IsLigatureStart        bool
	IsLigatureContinuation bool
	IsWordBoundary         bool
	IsSpaceOrNBSP          bool
	IsHardLineBreak        bool
	IsSoftLineBreak        bool
}

func (v ClusterView) Info() ClusterInfo {
	r := v.record()
	return ClusterInfo{
		IsLigatureStart:        r.IsLigatureStart,
		IsLigatureContinuation: r.IsLigatureContinuation,
		IsWordBoundary:         r.IsWordBoundary,
		IsHardLineBreak:        r.IsHardLineBreak,
		IsSoftLineBreak:        r.IsSoftLineBreak,
	}
}
