// Package notebook models a REPL notebook: panes of input cells, each
// cell an editable buffer with the results of its last evaluation. It is
// pure data management with no UI or transport dependency; hosts drive
// the cells through their editors and decide when and how to evaluate.
package notebook

import "github.com/odvcencio/quill/editor"

// ResultKind classifies an evaluation output attached to a cell.
type ResultKind int

const (
	ResultSuccess ResultKind = iota
	ResultWarning
	ResultError
)

// String returns the kind's wire name.
func (k ResultKind) String() string {
	switch k {
	case ResultWarning:
		return "warning"
	case ResultError:
		return "error"
	default:
		return "success"
	}
}

// ParseResultKind maps a wire name back to its kind. Unknown names
// report false.
func ParseResultKind(s string) (ResultKind, bool) {
	switch s {
	case "success":
		return ResultSuccess, true
	case "warning":
		return ResultWarning, true
	case "error":
		return ResultError, true
	}
	return ResultSuccess, false
}

// Result is one evaluation output.
type Result struct {
	Kind ResultKind
	Text string
}

// Cell couples one input buffer with its cursor and editor, plus the
// results of the cell's last evaluation.
type Cell struct {
	buf     *editor.Buffer
	cur     *editor.Cursor
	ed      *editor.Editor
	results []Result
}

// NewCell creates a cell holding initial with the cursor at offset 0.
func NewCell(initial string) *Cell {
	buf := editor.NewBuffer(initial)
	cur := &editor.Cursor{}
	return &Cell{
		buf: buf,
		cur: cur,
		ed:  editor.NewEditor(buf, cur),
	}
}

// Buffer returns the cell's text buffer.
func (c *Cell) Buffer() *editor.Buffer { return c.buf }

// Cursor returns the cell's cursor.
func (c *Cell) Cursor() *editor.Cursor { return c.cur }

// Editor returns the editing facade over the cell's buffer and cursor.
func (c *Cell) Editor() *editor.Editor { return c.ed }

// Contents returns the cell's full text.
func (c *Cell) Contents() string { return c.buf.Text() }

// SetContents replaces the cell's text as a single undoable edit and
// collapses the cursor to the end of the new text.
func (c *Cell) SetContents(text string) {
	c.buf.SetText(text)
	c.cur.MoveTo(c.buf, c.buf.Len())
}

// Results returns the cell's evaluation results in order.
func (c *Cell) Results() []Result { return c.results }

// SetResults replaces the cell's evaluation results.
func (c *Cell) SetResults(results []Result) { c.results = results }

// AppendResult adds one evaluation result.
func (c *Cell) AppendResult(r Result) { c.results = append(c.results, r) }

// ClearResults drops all evaluation results.
func (c *Cell) ClearResults() { c.results = nil }

// Undo reverses the cell's last edit and places the cursor just after
// the restored text. It reports whether anything was undone.
func (c *Cell) Undo() bool {
	at, ok := c.buf.Undo()
	if !ok {
		return false
	}
	c.cur.MoveTo(c.buf, at)
	return true
}

// Redo reapplies the cell's last undone edit and places the cursor just
// after the reapplied text. It reports whether anything was redone.
func (c *Cell) Redo() bool {
	at, ok := c.buf.Redo()
	if !ok {
		return false
	}
	c.cur.MoveTo(c.buf, at)
	return true
}
