package linebreak

import (
	"testing"

	"github.com/textkit/richlayout/text/analysis"
	"github.com/textkit/richlayout/text/bidi"
	"github.com/textkit/richlayout/text/itemize"
	"github.com/textkit/richlayout/text/layout"
	"github.com/textkit/richlayout/text/rangetable"
	"github.com/textkit/richlayout/text/shape"
	"github.com/textkit/richlayout/text/style"
)

// buildSingleRun shapes one word-per-glyph run covering all of text
// with a fixed per-character advance, at the given bidi level.
func buildSingleRun(text []rune, level uint8, charAdvance float32) *layout.LayoutData {
	n := len(text)
	glyphs := make([]shape.Glyph, n)
	clusters := make([]shape.Cluster, n)
	for i := 0; i < n; i++ {
		glyphs[i] = shape.Glyph{GlyphID: uint16(i), XAdvance: charAdvance}
		clusters[i] = shape.Cluster{
			TextRange:   rangetable.NewTextRange(i, i+1),
			GlyphOffset: i,
			GlyphLen:    1,
			Advance:     charAdvance,
		}
	}
	run := shape.Run{
		Item:     itemize.Item{Range: rangetable.NewTextRange(0, n), Level: level, Style: style.Default()},
		Glyphs:   glyphs,
		Clusters: clusters,
		Ascent:   8, Descent: 2, Leading: 0,
	}
	d := layout.New(1, 0)
	d.AppendRun(run, 0)
	return d
}

func TestBreakSplitsOnSoftBreakWhenOverflowing(t *testing.T) {
	text := []rune("go fast now")
	r := analysis.Analyze(text, nil, bidi.DirectionLTR)
	d := buildSingleRun(text, 0, 10)

	lay := Break(d, text, r.Info, 65) // "go fast " = 8*10=80 already over; "go " =30 fits, "go fast " = 80 > 65
	if lay.Lines() < 2 {
		t.Fatalf("Lines() = %d, want >= 2", lay.Lines())
	}
	line0 := lay.Line(0)
	if line0.BreakReason() != layout.BreakReasonRegular {
		t.Errorf("line0.BreakReason() = %v, want Regular", line0.BreakReason())
	}
}

func TestBreakMandatoryBreakSplitsLine(t *testing.T) {
	text := []rune("hi\nbye")
	r := analysis.Analyze(text, nil, bidi.DirectionLTR)
	d := buildSingleRun(text, 0, 10)

	lay := Break(d, text, r.Info, 1000)
	if lay.Lines() != 2 {
		t.Fatalf("Lines() = %d, want 2", lay.Lines())
	}
	if lay.Line(0).BreakReason() != layout.BreakReasonExplicit {
		t.Errorf("line0.BreakReason() = %v, want Explicit", lay.Line(0).BreakReason())
	}
}

func TestBreakEmergencyBreaksOverlongWordWithOverflowWrap(t *testing.T) {
	text := []rune("xxxxxxxxxx")
	r := analysis.Analyze(text, nil, bidi.DirectionLTR)
	d := buildSingleRun(text, 0, 10)
	d.Runs[0].Item.Style.OverflowWrap = style.OverflowWrapAnywhere

	lay := Break(d, text, r.Info, 35)
	if lay.Lines() < 2 {
		t.Fatalf("Lines() = %d, want >= 2 (emergency breaks)", lay.Lines())
	}
	if lay.Line(0).BreakReason() != layout.BreakReasonEmergency {
		t.Errorf("line0.BreakReason() = %v, want Emergency", lay.Line(0).BreakReason())
	}
}

func TestBreakTrailingWhitespaceExcludedFromAdvance(t *testing.T) {
	text := []rune("hi   ")
	r := analysis.Analyze(text, nil, bidi.DirectionLTR)
	d := buildSingleRun(text, 0, 10)

	lay := Break(d, text, r.Info, 1000)
	m := lay.Line(0).Metrics()
	if m.Advance != 20 {
		t.Errorf("Advance = %v, want 20 (trailing spaces excluded)", m.Advance)
	}
	if m.TrailingWhitespaceAdvance != 30 {
		t.Errorf("TrailingWhitespaceAdvance = %v, want 30", m.TrailingWhitespaceAdvance)
	}
}

func TestBreakEmptyLayoutProducesOneEmptyLine(t *testing.T) {
	d := layout.New(1, 0)
	lay := Break(d, nil, nil, 100)
	if lay.Lines() != 1 {
		t.Fatalf("Lines() = %d, want 1", lay.Lines())
	}
}
