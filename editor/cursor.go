package editor

// Cursor tracks the insertion point or active selection within a
// Buffer, in byte offsets. The zero value is a cursor at offset 0.
//
// start is the selection anchor and end the moving head, so end sits
// left of start when the user selected backwards. Positions are clamped
// against the buffer passed to each call rather than stored clamped, so
// a cursor survives edits that shrink the buffer. Vertical movement
// remembers the column it started from so that hopping across short or
// empty lines does not lose the column; any horizontal movement or edit
// drops the remembered column.
type Cursor struct {
	start, end int
	hintX      float64
	hasHint    bool
}

// Start returns the selection anchor, clamped to the buffer.
func (c *Cursor) Start(b *Buffer) int { return b.clampIndex(c.start) }

// End returns the selection head, clamped to the buffer.
func (c *Cursor) End(b *Buffer) int { return b.clampIndex(c.end) }

func (c *Cursor) clamped(b *Buffer) (start, end int) {
	return b.clampIndex(c.start), b.clampIndex(c.end)
}

// Selection returns the selected range in ascending order. ok is false
// when the cursor is a plain insertion point.
func (c *Cursor) Selection(b *Buffer) (lo, hi int, ok bool) {
	s, e := c.clamped(b)
	if s == e {
		return 0, 0, false
	}
	if s < e {
		return s, e, true
	}
	return e, s, true
}

// IsSelection reports whether any text is selected.
func (c *Cursor) IsSelection(b *Buffer) bool {
	s, e := c.clamped(b)
	return s != e
}

// MoveTo collapses the cursor to an insertion point at i.
func (c *Cursor) MoveTo(b *Buffer, i int) {
	c.moveTo(b, i)
	c.clearHint()
}

// moveTo is MoveTo without touching the vertical movement column.
func (c *Cursor) moveTo(b *Buffer, i int) {
	i = b.clampIndex(i)
	c.start, c.end = i, i
}

// SelectRange selects from start to end. The arguments may arrive in
// either order; start becomes the anchor.
func (c *Cursor) SelectRange(b *Buffer, start, end int) {
	c.selectRange(b, start, end)
	c.clearHint()
}

func (c *Cursor) selectRange(b *Buffer, start, end int) {
	c.start = b.clampIndex(start)
	c.end = b.clampIndex(end)
}

// SelectAll selects the whole buffer.
func (c *Cursor) SelectAll(b *Buffer) {
	c.SelectRange(b, 0, b.Len())
}

// SelectWordAt selects the word surrounding byte offset i.
func (c *Cursor) SelectWordAt(b *Buffer, i int) {
	c.SelectRange(b, PreviousStartOfWord(b, i), NextEndOfWord(b, i))
}

// MoveLeft collapses a selection to its left edge, or steps the cursor
// one grapheme cluster left.
func (c *Cursor) MoveLeft(b *Buffer) {
	if lo, _, ok := c.Selection(b); ok {
		c.MoveTo(b, lo)
		return
	}
	c.MoveTo(b, PreviousGrapheme(b, c.End(b)))
}

// MoveRight collapses a selection to its right edge, or steps the
// cursor one grapheme cluster right.
func (c *Cursor) MoveRight(b *Buffer) {
	if _, hi, ok := c.Selection(b); ok {
		c.MoveTo(b, hi)
		return
	}
	c.MoveTo(b, NextGrapheme(b, c.End(b)))
}

// MoveRightByBytes advances the cursor n bytes, clamped to the end of
// the buffer. A selection collapses to its right edge without
// advancing. Hosts use it to place the cursor after a paste, where the
// inserted length is already known in bytes.
func (c *Cursor) MoveRightByBytes(b *Buffer, n int) {
	if _, hi, ok := c.Selection(b); ok {
		c.MoveTo(b, hi)
		return
	}
	i := c.End(b) + n
	if i > b.Len() {
		i = b.Len()
	}
	c.MoveTo(b, i)
}

// MoveLeftByWords moves to the start of the word left of the anchor.
func (c *Cursor) MoveLeftByWords(b *Buffer) {
	c.MoveTo(b, PreviousStartOfWord(b, c.Start(b)))
}

// MoveRightByWords moves to the end of the word right of the head.
func (c *Cursor) MoveRightByWords(b *Buffer) {
	c.MoveTo(b, NextEndOfWord(b, c.End(b)))
}

// MoveLeftByLine moves to the start of the line containing the anchor.
func (c *Cursor) MoveLeftByLine(b *Buffer) {
	c.MoveTo(b, StartOfLine(b, c.Start(b)))
}

// MoveRightByLine moves to the end of the line containing the head,
// before its terminator.
func (c *Cursor) MoveRightByLine(b *Buffer) {
	c.MoveTo(b, EndOfLine(b, c.End(b)))
}

// MoveUp moves to the visually nearest position on the line above,
// keeping the column across consecutive vertical moves. A selection
// collapses to its left edge first. On the first line the cursor lands
// on offset 0 and keeps whatever column was remembered.
func (c *Cursor) MoveUp(b *Buffer, m *Mapper) {
	if lo, _, ok := c.Selection(b); ok {
		idx, x := m.FindIndexAbove(b, lo, c.hintX, c.hasHint)
		c.moveTo(b, idx)
		c.setHint(x)
		return
	}
	i := c.End(b)
	if i == 0 {
		c.moveTo(b, 0)
		return
	}
	idx, x := m.FindIndexAbove(b, i, c.hintX, c.hasHint)
	c.moveTo(b, idx)
	c.setHint(x)
}

// MoveDown moves to the visually nearest position on the line below,
// keeping the column across consecutive vertical moves. A selection
// collapses to its right edge first.
func (c *Cursor) MoveDown(b *Buffer, m *Mapper) {
	from := c.End(b)
	if _, hi, ok := c.Selection(b); ok {
		from = hi
	}
	idx, x := m.FindIndexBelow(b, from, c.hintX, c.hasHint)
	c.moveTo(b, idx)
	c.setHint(x)
}

// SelectLeft extends the selection one grapheme cluster left of the
// head.
func (c *Cursor) SelectLeft(b *Buffer) {
	s, e := c.clamped(b)
	if e > 0 {
		c.selectRange(b, s, PreviousGrapheme(b, e))
	}
	c.clearHint()
}

// SelectRight extends the selection one grapheme cluster right of the
// head.
func (c *Cursor) SelectRight(b *Buffer) {
	s, e := c.clamped(b)
	if e < b.Len() {
		c.selectRange(b, s, NextGrapheme(b, e))
	}
	c.clearHint()
}

// SelectLeftByWords extends the selection to the start of the word left
// of the head.
func (c *Cursor) SelectLeftByWords(b *Buffer) {
	s, e := c.clamped(b)
	c.SelectRange(b, s, PreviousStartOfWord(b, e))
}

// SelectRightByWords extends the selection to the end of the word right
// of the head.
func (c *Cursor) SelectRightByWords(b *Buffer) {
	s, e := c.clamped(b)
	c.SelectRange(b, s, NextEndOfWord(b, e))
}

// SelectLeftByLine extends the selection to the start of the head's
// line.
func (c *Cursor) SelectLeftByLine(b *Buffer) {
	s, e := c.clamped(b)
	c.SelectRange(b, s, StartOfLine(b, e))
}

// SelectRightByLine extends the selection to the end of the head's
// line, before its terminator.
func (c *Cursor) SelectRightByLine(b *Buffer) {
	s, e := c.clamped(b)
	c.SelectRange(b, s, EndOfLine(b, e))
}

// SelectUp extends the selection to the visually nearest position on
// the line above the head, keeping the column across consecutive
// vertical selections. With the head already at offset 0 nothing
// changes.
func (c *Cursor) SelectUp(b *Buffer, m *Mapper) {
	s, e := c.clamped(b)
	if e == 0 {
		return
	}
	idx, x := m.FindIndexAbove(b, e, c.hintX, c.hasHint)
	c.selectRange(b, s, idx)
	c.setHint(x)
}

// SelectDown extends the selection to the visually nearest position on
// the line below the head, keeping the column across consecutive
// vertical selections. With the head already at the end of the buffer
// nothing changes.
func (c *Cursor) SelectDown(b *Buffer, m *Mapper) {
	s, e := c.clamped(b)
	if e >= b.Len() {
		return
	}
	idx, x := m.FindIndexBelow(b, e, c.hintX, c.hasHint)
	c.selectRange(b, s, idx)
	c.setHint(x)
}

func (c *Cursor) setHint(x float64) {
	c.hintX = x
	c.hasHint = true
}

func (c *Cursor) clearHint() {
	c.hintX = 0
	c.hasHint = false
}
