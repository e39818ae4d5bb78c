package editor

// Editor applies the editing operations a host dispatches from key
// events to a Buffer and Cursor pair, keeping the two consistent. Every
// mutation returns the buffer's full contents so the host can propagate
// a change notification without a second query.
type Editor struct {
	buf *Buffer
	cur *Cursor
}

// NewEditor returns an Editor operating on the given buffer and cursor.
func NewEditor(b *Buffer, c *Cursor) *Editor {
	return &Editor{buf: b, cur: c}
}

// Buffer returns the buffer being edited.
func (e *Editor) Buffer() *Buffer { return e.buf }

// Cursor returns the cursor being driven.
func (e *Editor) Cursor() *Cursor { return e.cur }

// Contents returns the buffer's full contents.
func (e *Editor) Contents() string { return e.buf.Text() }

// SelectedText returns the selected substring, for the host to place on
// a clipboard. ok is false when nothing is selected.
func (e *Editor) SelectedText() (string, bool) {
	lo, hi, ok := e.cur.Selection(e.buf)
	if !ok {
		return "", false
	}
	return e.buf.Slice(lo, hi), true
}

// Insert replaces any selection with the character and leaves the
// cursor after it.
func (e *Editor) Insert(r rune) string {
	if lo, hi, ok := e.cur.Selection(e.buf); ok {
		e.deleteSelection(lo, hi)
	}
	e.buf.Insert(e.cur.End(e.buf), string(r))
	e.cur.MoveRight(e.buf)
	return e.buf.Text()
}

// Paste replaces any selection with text and leaves the cursor after
// it. The cursor advances by text's byte length, which lands on a
// cluster boundary whenever text itself starts and ends on one.
func (e *Editor) Paste(text string) string {
	n := len(text)
	if lo, hi, ok := e.cur.Selection(e.buf); ok {
		e.deleteSelection(lo, hi)
	}
	e.buf.Insert(e.cur.End(e.buf), text)
	e.cur.MoveRightByBytes(e.buf, n)
	return e.buf.Text()
}

// Backspace deletes the selection, or the grapheme cluster before the
// cursor when nothing is selected. At offset 0 it is a no-op.
func (e *Editor) Backspace() string {
	if lo, hi, ok := e.cur.Selection(e.buf); ok {
		e.deleteSelection(lo, hi)
		return e.buf.Text()
	}
	i := e.cur.End(e.buf)
	if i > 0 {
		prev := PreviousGrapheme(e.buf, i)
		e.cur.MoveTo(e.buf, prev)
		e.buf.Remove(prev, i)
	}
	return e.buf.Text()
}

// Delete deletes the selection, or the grapheme cluster after the
// cursor when nothing is selected. The cursor does not move in the
// latter case. At the end of the buffer it is a no-op.
func (e *Editor) Delete() string {
	if lo, hi, ok := e.cur.Selection(e.buf); ok {
		e.deleteSelection(lo, hi)
		return e.buf.Text()
	}
	i := e.cur.End(e.buf)
	if i < e.buf.Len() {
		e.buf.Remove(i, NextGrapheme(e.buf, i))
	}
	return e.buf.Text()
}

// deleteSelection collapses the cursor to the selection's left edge and
// removes the selected bytes. The cursor moves first so it never points
// past the shortened buffer.
func (e *Editor) deleteSelection(lo, hi int) {
	e.cur.MoveLeft(e.buf)
	e.buf.Remove(lo, hi)
}
