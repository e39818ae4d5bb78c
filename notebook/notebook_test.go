package notebook

import "testing"

func TestNewNotebookEmpty(t *testing.T) {
	n := NewNotebook()

	if n.Count() != 0 {
		t.Errorf("Count = %d, want 0", n.Count())
	}
	if n.Active() != -1 {
		t.Errorf("Active = %d, want -1", n.Active())
	}
	if n.ActivePane() != nil {
		t.Error("ActivePane should be nil when empty")
	}
	if panes := n.Panes(); len(panes) != 0 {
		t.Errorf("Panes length = %d, want 0", len(panes))
	}
}

func TestNewNotebookWithPane(t *testing.T) {
	n := NewNotebook(WithPane(NewPane("scratch")))

	if n.Count() != 1 {
		t.Fatalf("Count = %d, want 1", n.Count())
	}
	if n.Active() != 0 {
		t.Errorf("Active = %d, want 0", n.Active())
	}
	p := n.ActivePane()
	if p == nil {
		t.Fatal("ActivePane should not be nil")
	}
	if p.Title() != "scratch" {
		t.Errorf("Title = %q, want %q", p.Title(), "scratch")
	}
	// A fresh pane starts with one empty active cell.
	if p.Count() != 1 {
		t.Errorf("cell Count = %d, want 1", p.Count())
	}
	if p.ActiveCell() == nil {
		t.Fatal("ActiveCell should not be nil")
	}
	if p.ActiveCell().Contents() != "" {
		t.Errorf("fresh cell contents = %q, want empty", p.ActiveCell().Contents())
	}
}

func TestNewPaneMultiple(t *testing.T) {
	n := NewNotebook()

	idx0 := n.NewPane("one")
	idx1 := n.NewPane("two")
	idx2 := n.NewPane("three")

	if idx0 != 0 || idx1 != 1 || idx2 != 2 {
		t.Errorf("indices = (%d, %d, %d), want (0, 1, 2)", idx0, idx1, idx2)
	}
	if n.Count() != 3 {
		t.Errorf("Count = %d, want 3", n.Count())
	}
	// The last pane created is active.
	if n.Active() != 2 {
		t.Errorf("Active = %d, want 2", n.Active())
	}
}

func TestNotebookSetActive(t *testing.T) {
	n := NewNotebook()
	n.NewPane("a")
	n.NewPane("b")
	n.NewPane("c")

	n.SetActive(0)
	if n.Active() != 0 {
		t.Errorf("Active = %d, want 0", n.Active())
	}
	n.SetActive(2)
	if n.Active() != 2 {
		t.Errorf("Active = %d, want 2", n.Active())
	}

	// Out-of-range switches are no-ops.
	n.SetActive(-1)
	n.SetActive(5)
	if n.Active() != 2 {
		t.Errorf("Active = %d after out-of-range SetActive, want 2", n.Active())
	}
}

func TestPaneByIndex(t *testing.T) {
	n := NewNotebook()
	n.NewPane("a")
	n.NewPane("b")

	if n.Pane(0) == nil || n.Pane(1) == nil {
		t.Fatal("Pane(0) and Pane(1) should not be nil")
	}
	if n.Pane(0) == n.Pane(1) {
		t.Error("Pane(0) and Pane(1) should be different instances")
	}
	if n.Pane(-1) != nil || n.Pane(2) != nil {
		t.Error("out-of-range Pane should be nil")
	}
}

func TestClosePaneOnly(t *testing.T) {
	n := NewNotebook()
	n.NewPane("only")

	n.ClosePane(0)
	if n.Count() != 0 {
		t.Errorf("Count = %d, want 0", n.Count())
	}
	if n.Active() != -1 {
		t.Errorf("Active = %d, want -1", n.Active())
	}
	if n.ActivePane() != nil {
		t.Error("ActivePane should be nil after closing the last pane")
	}
}

func TestClosePaneActiveLast(t *testing.T) {
	n := NewNotebook()
	n.NewPane("a") // 0
	n.NewPane("b") // 1
	n.NewPane("c") // 2, active

	n.ClosePane(2)
	if n.Count() != 2 {
		t.Errorf("Count = %d, want 2", n.Count())
	}
	// Active clamps to the new last index.
	if n.Active() != 1 {
		t.Errorf("Active = %d, want 1", n.Active())
	}
}

func TestClosePaneBeforeActive(t *testing.T) {
	n := NewNotebook()
	n.NewPane("a") // 0
	n.NewPane("b") // 1
	n.NewPane("c") // 2

	n.SetActive(2)
	n.ClosePane(0)
	if n.Count() != 2 {
		t.Errorf("Count = %d, want 2", n.Count())
	}
	// The active pane keeps its identity at the shifted index.
	if n.Active() != 1 {
		t.Errorf("Active = %d, want 1", n.Active())
	}
	if n.ActivePane().Title() != "c" {
		t.Errorf("active title = %q, want %q", n.ActivePane().Title(), "c")
	}
}

func TestClosePaneAfterActive(t *testing.T) {
	n := NewNotebook()
	n.NewPane("a") // 0
	n.NewPane("b") // 1
	n.NewPane("c") // 2

	n.SetActive(0)
	n.ClosePane(2)
	if n.Count() != 2 {
		t.Errorf("Count = %d, want 2", n.Count())
	}
	if n.Active() != 0 {
		t.Errorf("Active = %d, want 0", n.Active())
	}
}

func TestClosePaneOutOfRange(t *testing.T) {
	n := NewNotebook()
	n.NewPane("a")

	n.ClosePane(-1)
	n.ClosePane(5)
	if n.Count() != 1 {
		t.Errorf("Count = %d after invalid close, want 1", n.Count())
	}
}

func TestPaneNewCell(t *testing.T) {
	p := NewPane("p")

	idx := p.NewCell()
	if idx != 1 {
		t.Errorf("NewCell index = %d, want 1", idx)
	}
	if p.Count() != 2 {
		t.Errorf("Count = %d, want 2", p.Count())
	}
	if p.Active() != 1 {
		t.Errorf("Active = %d, want 1", p.Active())
	}
	if p.Cell(0) == p.Cell(1) {
		t.Error("Cell(0) and Cell(1) should be different instances")
	}
}

func TestPaneSetActiveOutOfRange(t *testing.T) {
	p := NewPane("p")

	p.SetActive(-1)
	p.SetActive(3)
	if p.Active() != 0 {
		t.Errorf("Active = %d after out-of-range SetActive, want 0", p.Active())
	}
}

func TestPaneCloseCellAdjustsActive(t *testing.T) {
	p := NewPane("p")
	p.NewCell() // 1
	p.NewCell() // 2, active

	// Closing before the active cell shifts it down.
	p.CloseCell(0)
	if p.Count() != 2 {
		t.Errorf("Count = %d, want 2", p.Count())
	}
	if p.Active() != 1 {
		t.Errorf("Active = %d, want 1", p.Active())
	}

	// Closing the active last cell clamps to the new last.
	p.CloseCell(1)
	if p.Active() != 0 {
		t.Errorf("Active = %d, want 0", p.Active())
	}

	// Closing the only cell empties the pane.
	p.CloseCell(0)
	if p.Count() != 0 {
		t.Errorf("Count = %d, want 0", p.Count())
	}
	if p.Active() != -1 {
		t.Errorf("Active = %d, want -1", p.Active())
	}
	if p.ActiveCell() != nil {
		t.Error("ActiveCell should be nil for an empty pane")
	}
}

func TestPaneCellsKeepIndependentState(t *testing.T) {
	p := NewPane("p")
	p.Cell(0).SetContents("first")
	p.NewCell()
	p.ActiveCell().SetContents("second")

	if got := p.Cell(0).Contents(); got != "first" {
		t.Errorf("cell 0 = %q, want %q", got, "first")
	}
	if got := p.Cell(1).Contents(); got != "second" {
		t.Errorf("cell 1 = %q, want %q", got, "second")
	}
}
