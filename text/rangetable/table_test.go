package rangetable

import "testing"

func TestTableSegmentNonOverlapping(t *testing.T) {
	tab := NewTable[string]()
	tab.Insert(NewTextRange(0, 5), "a")
	tab.Insert(NewTextRange(5, 10), "b")

	segs := tab.Segment(10)
	if len(segs) != 2 {
		t.Fatalf("len(segs) = %d, want 2", len(segs))
	}
	if segs[0].Range != NewTextRange(0, 5) || len(segs[0].Active) != 1 || segs[0].Active[0] != "a" {
		t.Errorf("segs[0] = %+v", segs[0])
	}
	if segs[1].Range != NewTextRange(5, 10) || len(segs[1].Active) != 1 || segs[1].Active[0] != "b" {
		t.Errorf("segs[1] = %+v", segs[1])
	}
}

func TestTableSegmentOverlapping(t *testing.T) {
	tab := NewTable[string]()
	tab.Insert(NewTextRange(0, 10), "bold")
	tab.Insert(NewTextRange(3, 6), "italic")

	segs := tab.Segment(10)
	want := []struct {
		r      TextRange
		active []string
	}{
		{NewTextRange(0, 3), []string{"bold"}},
		{NewTextRange(3, 6), []string{"bold", "italic"}},
		{NewTextRange(6, 10), []string{"bold"}},
	}
	if len(segs) != len(want) {
		t.Fatalf("len(segs) = %d, want %d (%+v)", len(segs), len(want), segs)
	}
	for i, w := range want {
		if segs[i].Range != w.r {
			t.Errorf("segs[%d].Range = %v, want %v", i, segs[i].Range, w.r)
		}
		if len(segs[i].Active) != len(w.active) {
			t.Fatalf("segs[%d].Active = %v, want %v", i, segs[i].Active, w.active)
		}
		for j := range w.active {
			if segs[i].Active[j] != w.active[j] {
				t.Errorf("segs[%d].Active[%d] = %v, want %v", i, j, segs[i].Active[j], w.active[j])
			}
		}
	}
}

func TestTableSegmentEmptyRangeIsSplitPointOnly(t *testing.T) {
	tab := NewTable[string]()
	tab.Insert(NewTextRange(0, 10), "bold")
	tab.Insert(NewTextRange(5, 5), "marker")

	segs := tab.Segment(10)
	if len(segs) != 2 {
		t.Fatalf("len(segs) = %d, want 2 (%+v)", len(segs), segs)
	}
	for _, s := range segs {
		for _, a := range s.Active {
			if a == "marker" {
				t.Errorf("empty-range span leaked into Active: %+v", s)
			}
		}
	}
}

func TestTablePanicsOnOversizedLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for oversized text length")
		}
	}()
	tab := NewTable[string]()
	tab.Segment(MaxIndex + 1)
}
