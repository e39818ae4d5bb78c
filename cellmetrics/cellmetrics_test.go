package cellmetrics

import (
	"testing"

	"github.com/odvcencio/quill/editor"
)

func TestMeasureWidth(t *testing.T) {
	var p Provider

	if got := p.MeasureWidth("hello", 1, ""); got != 5 {
		t.Errorf("MeasureWidth(hello) = %v, want 5", got)
	}
	if got := p.MeasureWidth("hello", 2, ""); got != 10 {
		t.Errorf("MeasureWidth(hello, size 2) = %v, want 10", got)
	}
	if got := p.MeasureWidth("日本", 1, ""); got != 4 {
		t.Errorf("MeasureWidth(日本) = %v, want 4", got)
	}
	if got := p.MeasureWidth("💔", 1, ""); got != 2 {
		t.Errorf("MeasureWidth(💔) = %v, want 2", got)
	}
	if got := p.MeasureWidth("é", 1, ""); got != 1 {
		t.Errorf("MeasureWidth(e+combining) = %v, want 1", got)
	}
	if got := p.MeasureWidth("", 1, ""); got != 0 {
		t.Errorf("MeasureWidth(empty) = %v, want 0", got)
	}
}

func TestHitTest(t *testing.T) {
	var p Provider

	tests := []struct {
		x    float64
		want int
	}{
		{0, 0},
		{0.5, 0}, // midpoint tie stays left
		{0.6, 1},
		{1.2, 1},
		{1.6, 2},
		{99, 2}, // past the end lands after the last cluster
	}
	for _, tt := range tests {
		got, ok := p.HitTest("ab", 1, "", editor.Point{X: tt.x})
		if !ok {
			t.Fatalf("HitTest(%v) not ok", tt.x)
		}
		if got != tt.want {
			t.Errorf("HitTest(x=%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestHitTestWideCluster(t *testing.T) {
	var p Provider

	got, ok := p.HitTest("日x", 1, "", editor.Point{X: 1})
	if !ok || got != 0 {
		t.Errorf("HitTest(x=1) = %d, %v, want 0, true", got, ok)
	}
	got, ok = p.HitTest("日x", 1, "", editor.Point{X: 1.1})
	if !ok || got != 1 {
		t.Errorf("HitTest(x=1.1) = %d, %v, want 1, true", got, ok)
	}
}

func TestHitTestEmpty(t *testing.T) {
	var p Provider

	if _, ok := p.HitTest("", 1, "", editor.Point{X: 3}); ok {
		t.Error("HitTest on empty text reported ok")
	}
}

func TestHitTestScaled(t *testing.T) {
	var p Provider

	// With size 10 each ASCII cell spans 10 units.
	got, ok := p.HitTest("ab", 10, "", editor.Point{X: 12})
	if !ok || got != 1 {
		t.Errorf("HitTest(x=12, size 10) = %d, %v, want 1, true", got, ok)
	}
}

func TestClusters(t *testing.T) {
	got := Clusters("a💔")
	if len(got) != 2 {
		t.Fatalf("Clusters returned %d clusters, want 2", len(got))
	}
	if got[0].Text != "a" || got[0].Width != 1 {
		t.Errorf("cluster 0 = %+v, want {a 1}", got[0])
	}
	if got[1].Text != "💔" || got[1].Width != 2 {
		t.Errorf("cluster 1 = %+v, want {💔 2}", got[1])
	}

	got = Clusters("éx")
	if len(got) != 2 {
		t.Fatalf("Clusters returned %d clusters, want 2", len(got))
	}
	if got[0].Text != "é" || got[0].Width != 1 {
		t.Errorf("cluster 0 = %+v, want the combined cluster at width 1", got[0])
	}

	if got := Clusters(""); got != nil {
		t.Errorf("Clusters(empty) = %v, want nil", got)
	}
}

func TestMapperWithCellMetrics(t *testing.T) {
	// End to end: byte offsets map to columns and back through the
	// editor's mapper.
	m := &editor.Mapper{Metrics: Provider{}}
	b := editor.NewBuffer("\t日本go")

	// One tab (4 columns) plus two double-width characters.
	if got := m.OffsetXOfIndex(b, 7); got != 8 {
		t.Errorf("OffsetXOfIndex(7) = %v, want 8", got)
	}
	if got := m.MaxLineWidth(b); got != 10 {
		t.Errorf("MaxLineWidth = %v, want 10", got)
	}

	idx, ok := m.IndexAtPoint(b, editor.Point{X: 6, Y: 0})
	if !ok || idx != 4 {
		t.Errorf("IndexAtPoint(6) = %d, %v, want 4, true", idx, ok)
	}
}
