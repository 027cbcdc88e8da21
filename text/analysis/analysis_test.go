package analysis

import (
	"testing"

	"github.com/textkit/richlayout/text/bidi"
	"github.com/textkit/richlayout/text/rangetable"
	"github.com/textkit/richlayout/text/style"
)

func TestAnalyzeEmptyTextBecomesSpace(t *testing.T) {
	r := Analyze(nil, nil, bidi.DirectionAuto)
	if len(r.Text) != 1 || r.Text[0] != ' ' {
		t.Fatalf("Text = %q, want single space", string(r.Text))
	}
	if len(r.Info) != 1 {
		t.Fatalf("len(Info) = %d, want 1", len(r.Info))
	}
}

func TestAnalyzeWordBoundaries(t *testing.T) {
	text := []rune("go rocks")
	r := Analyze(text, nil, bidi.DirectionLTR)
	if r.Info[1].Boundary == BoundaryNone {
		t.Errorf("expected a boundary after %q", string(text[:2]))
	}
}

func TestAnalyzeMandatoryBreakAfterNewline(t *testing.T) {
	text := []rune("line one\nline two")
	r := Analyze(text, nil, bidi.DirectionLTR)
	nlIndex := 8
	if text[nlIndex] != '\n' {
		t.Fatalf("test text layout changed, index %d is %q", nlIndex, text[nlIndex])
	}
	if r.Info[nlIndex].Boundary != BoundaryMandatory {
		t.Errorf("Info[%d].Boundary = %v, want Mandatory", nlIndex, r.Info[nlIndex].Boundary)
	}
}

func TestAnalyzeControlAndShaping(t *testing.T) {
	text := []rune("a\tb")
	r := Analyze(text, nil, bidi.DirectionLTR)
	if !r.Info[1].IsControl {
		t.Errorf("tab should be classified as control")
	}
	if r.Info[1].ContributesToShaping {
		t.Errorf("a plain control character should not contribute to shaping")
	}
	if !r.Info[0].ContributesToShaping {
		t.Errorf("'a' should contribute to shaping")
	}
}

func TestAnalyzeForceNormalizeOnCombiningMark(t *testing.T) {
	// "é" as 'e' + combining acute accent (U+0301): the accent extends
	// the base letter's grapheme cluster and should force_normalize.
	text := []rune("é")
	r := Analyze(text, nil, bidi.DirectionLTR)
	if r.Info[0].GraphemeBreak != GraphemeBreakBoundary {
		t.Errorf("base letter should start a cluster")
	}
	if r.Info[1].GraphemeBreak != GraphemeBreakExtend {
		t.Errorf("combining accent should extend the cluster")
	}
	if !r.Info[1].ForceNormalize {
		t.Errorf("combining accent should force_normalize")
	}
}

func TestAnalyzeWordBreakBreakAllAddsLineBoundaryAfterEveryCharacter(t *testing.T) {
	text := []rune("cat")
	runs := rangetable.NewTable[style.WordBreak]()
	runs.Insert(rangetable.NewTextRange(0, len(text)), style.WordBreakBreakAll)
	r := Analyze(text, runs, bidi.DirectionLTR)
	if r.Info[0].Boundary < BoundaryLine {
		t.Errorf("Info[0].Boundary = %v, want at least Line under break-all", r.Info[0].Boundary)
	}
	if r.Info[1].Boundary < BoundaryLine {
		t.Errorf("Info[1].Boundary = %v, want at least Line under break-all", r.Info[1].Boundary)
	}
}

func TestAnalyzeWordBreakKeepAllSuppressesBreakBetweenSameScriptIdeographs(t *testing.T) {
	text := []rune("你好") // two adjacent Han ideographs, no spaces between them
	normal := Analyze(text, nil, bidi.DirectionLTR)
	if normal.Info[0].Boundary < BoundaryLine {
		t.Fatalf("Info[0].Boundary = %v, want at least Line between ideographs under word-break: normal", normal.Info[0].Boundary)
	}

	runs := rangetable.NewTable[style.WordBreak]()
	runs.Insert(rangetable.NewTextRange(0, len(text)), style.WordBreakKeepAll)
	keepAll := Analyze(text, runs, bidi.DirectionLTR)
	if keepAll.Info[0].Boundary != BoundaryNone {
		t.Errorf("Info[0].Boundary = %v, want None between same-script ideographs under word-break: keep-all", keepAll.Info[0].Boundary)
	}
}

func TestAnalyzeBidiLevelsPropagate(t *testing.T) {
	text := []rune("שלום")
	r := Analyze(text, nil, bidi.DirectionAuto)
	if r.BaseLevel != 1 {
		t.Fatalf("BaseLevel = %d, want 1", r.BaseLevel)
	}
	for i, ci := range r.Info {
		if ci.BidiLevel != 1 {
			t.Errorf("Info[%d].BidiLevel = %d, want 1", i, ci.BidiLevel)
		}
	}
}
