package notebook

import "testing"

func TestNewCell(t *testing.T) {
	c := NewCell("print(1)")

	if c.Contents() != "print(1)" {
		t.Errorf("Contents = %q, want %q", c.Contents(), "print(1)")
	}
	if got := c.Cursor().End(c.Buffer()); got != 0 {
		t.Errorf("cursor = %d, want 0", got)
	}
	if len(c.Results()) != 0 {
		t.Errorf("new cell has %d results, want 0", len(c.Results()))
	}
}

func TestCellEditing(t *testing.T) {
	c := NewCell("")

	c.Editor().Insert('o')
	c.Editor().Insert('k')
	if c.Contents() != "ok" {
		t.Errorf("Contents = %q, want %q", c.Contents(), "ok")
	}
}

func TestCellSetContents(t *testing.T) {
	c := NewCell("old")

	c.SetContents("newer")
	if c.Contents() != "newer" {
		t.Errorf("Contents = %q, want %q", c.Contents(), "newer")
	}
	if got := c.Cursor().End(c.Buffer()); got != 5 {
		t.Errorf("cursor = %d, want 5", got)
	}
}

func TestCellResults(t *testing.T) {
	c := NewCell("1 + 1")

	c.AppendResult(Result{Kind: ResultSuccess, Text: "2"})
	c.AppendResult(Result{Kind: ResultWarning, Text: "unused value"})
	if len(c.Results()) != 2 {
		t.Fatalf("Results length = %d, want 2", len(c.Results()))
	}
	if c.Results()[0].Text != "2" {
		t.Errorf("first result = %q, want %q", c.Results()[0].Text, "2")
	}

	c.SetResults([]Result{{Kind: ResultError, Text: "boom"}})
	if len(c.Results()) != 1 || c.Results()[0].Kind != ResultError {
		t.Errorf("Results after SetResults = %+v", c.Results())
	}

	c.ClearResults()
	if len(c.Results()) != 0 {
		t.Errorf("Results after ClearResults = %+v", c.Results())
	}
}

func TestCellUndoRedoMovesCursor(t *testing.T) {
	c := NewCell("")

	c.Editor().Paste("hello")
	c.Editor().Paste(" world")
	if c.Contents() != "hello world" {
		t.Fatalf("Contents = %q, want %q", c.Contents(), "hello world")
	}

	if !c.Undo() {
		t.Fatal("Undo returned false")
	}
	if c.Contents() != "hello" {
		t.Errorf("Contents after undo = %q, want %q", c.Contents(), "hello")
	}
	if got := c.Cursor().End(c.Buffer()); got != 5 {
		t.Errorf("cursor after undo = %d, want 5", got)
	}

	if !c.Redo() {
		t.Fatal("Redo returned false")
	}
	if c.Contents() != "hello world" {
		t.Errorf("Contents after redo = %q, want %q", c.Contents(), "hello world")
	}
	if got := c.Cursor().End(c.Buffer()); got != 11 {
		t.Errorf("cursor after redo = %d, want 11", got)
	}

	c.Undo()
	c.Undo()
	if c.Undo() {
		t.Error("Undo returned true on empty history")
	}
	if c.Contents() != "" {
		t.Errorf("Contents after full undo = %q, want empty", c.Contents())
	}
}

func TestResultKindNames(t *testing.T) {
	for kind, want := range map[ResultKind]string{
		ResultSuccess: "success",
		ResultWarning: "warning",
		ResultError:   "error",
	} {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
		back, ok := ParseResultKind(want)
		if !ok || back != kind {
			t.Errorf("ParseResultKind(%q) = %v, %v, want %v, true", want, back, ok, kind)
		}
	}

	if _, ok := ParseResultKind("fatal"); ok {
		t.Error("ParseResultKind accepted an unknown name")
	}
}
