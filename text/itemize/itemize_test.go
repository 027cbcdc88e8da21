package itemize

import (
	"testing"

	"github.com/textkit/richlayout/text/analysis"
	"github.com/textkit/richlayout/text/bidi"
	"github.com/textkit/richlayout/text/rangetable"
	"github.com/textkit/richlayout/text/style"
)

func analyzeFor(t *testing.T, text []rune) *analysis.Result {
	t.Helper()
	return analysis.Analyze(text, nil, bidi.DirectionLTR)
}

func TestItemizeSplitsOnScriptChange(t *testing.T) {
	text := []rune("abcשלום")
	r := analyzeFor(t, text)
	items := Itemize(text, r.Info, nil)
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2 (%+v)", len(items), items)
	}
	if items[0].Script != "Latn" {
		t.Errorf("items[0].Script = %v, want Latn", items[0].Script)
	}
	if items[1].Script != "Hebr" {
		t.Errorf("items[1].Script = %v, want Hebr", items[1].Script)
	}
}

func TestItemizeMergesCommonIntoSurroundingScript(t *testing.T) {
	// A space (Common) between two Latin words should not split the item.
	text := []rune("go fast")
	r := analyzeFor(t, text)
	items := Itemize(text, r.Info, nil)
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1 (%+v)", len(items), items)
	}
}

func TestItemizeSplitsOnStyleChange(t *testing.T) {
	text := []rune("bigsmall")
	r := analyzeFor(t, text)
	big := style.Default()
	big.FontSize = 32
	small := style.Default()
	small.FontSize = 12
	styles := rangetable.NewTable[style.Style]()
	styles.Insert(rangetable.NewTextRange(0, 3), big)
	styles.Insert(rangetable.NewTextRange(3, 8), small)

	items := Itemize(text, r.Info, styles)
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2 (%+v)", len(items), items)
	}
	if items[0].Range != rangetable.NewTextRange(0, 3) {
		t.Errorf("items[0].Range = %v", items[0].Range)
	}
}
