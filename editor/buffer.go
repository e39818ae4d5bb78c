// Package editor implements the text-editing engine behind quill's input
// cells: a byte-indexed UTF-8 buffer, grapheme/word/line navigation, a
// tab-aware coordinate mapper, and a cursor/selection state machine.
package editor

import (
	"sort"
	"strings"
)

// Range represents a byte range [Start, End) within buffer text.
type Range struct {
	Start, End int
}

// editOp records a single edit for undo/redo support.
type editOp struct {
	offset  int
	oldText string
	newText string
}

// Buffer owns the editable text of a single input cell, addressed by byte
// offset into its UTF-8 encoding. Every public method clamps incoming
// offsets to [0, Len()], so out-of-range positions are unrepresentable
// rather than an error. Offsets are expected to lie on rune boundaries;
// navigation and hit testing only ever produce such offsets. Lines are
// delimited by "\n" or "\r\n", and a "\r\n" pair is never split by any
// operation.
type Buffer struct {
	text       []byte
	lineStarts []int // byte offset of the first character of each line
	undoStack  []editOp
	redoStack  []editOp
}

// NewBuffer creates a buffer holding text.
func NewBuffer(text string) *Buffer {
	b := &Buffer{text: []byte(text)}
	b.lineStarts = scanLineStarts(b.text)
	return b
}

func scanLineStarts(text []byte) []int {
	starts := make([]int, 1, 8)
	for i, c := range text {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// Len returns the total byte length of the text.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Text returns the current contents as a string.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Byte returns the byte at offset i, clamped to the valid range, or 0 if
// the buffer is empty.
func (b *Buffer) Byte(i int) byte {
	if len(b.text) == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i >= len(b.text) {
		i = len(b.text) - 1
	}
	return b.text[i]
}

// Slice returns the text in [start, end). The bounds are clamped and
// swapped if inverted.
func (b *Buffer) Slice(start, end int) string {
	start, end = b.clampRange(start, end)
	return string(b.text[start:end])
}

// LineCount returns the number of lines. Text ending in a line terminator
// has a final empty line, and an empty buffer has a single empty line.
func (b *Buffer) LineCount() int {
	return len(b.lineStarts)
}

// ByteToLine returns the index of the line containing byte offset i.
func (b *Buffer) ByteToLine(i int) int {
	i = b.clampIndex(i)
	return sort.SearchInts(b.lineStarts, i+1) - 1
}

// LineToByte returns the byte offset of the first character of line. For
// any line index past the last line it returns Len().
func (b *Buffer) LineToByte(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(b.lineStarts) {
		return len(b.text)
	}
	return b.lineStarts[line]
}

// Line returns the text of line including its terminator, if any.
func (b *Buffer) Line(line int) string {
	return string(b.text[b.LineToByte(line):b.LineToByte(line+1)])
}

// Insert inserts text at byte offset i.
func (b *Buffer) Insert(i int, text string) {
	if text == "" {
		return
	}
	b.applyEdit(editOp{offset: b.clampIndex(i), newText: text})
}

// Remove deletes the text in [start, end).
func (b *Buffer) Remove(start, end int) {
	start, end = b.clampRange(start, end)
	if start == end {
		return
	}
	b.applyEdit(editOp{offset: start, oldText: string(b.text[start:end])})
}

// Replace replaces the text in [start, end) with replacement.
func (b *Buffer) Replace(start, end int, replacement string) {
	start, end = b.clampRange(start, end)
	if start == end && replacement == "" {
		return
	}
	b.applyEdit(editOp{
		offset:  start,
		oldText: string(b.text[start:end]),
		newText: replacement,
	})
}

// SetText replaces the whole contents, recording a single undoable edit.
func (b *Buffer) SetText(text string) {
	if text == string(b.text) {
		return
	}
	b.Replace(0, len(b.text), text)
}

// applyEdit pushes op on the undo stack, clears the redo stack, and
// applies the edit to the text.
func (b *Buffer) applyEdit(op editOp) {
	b.undoStack = append(b.undoStack, op)
	b.redoStack = nil
	b.splice(op.offset, op.offset+len(op.oldText), op.newText)
}

// Undo reverses the last edit. It returns the byte offset just after the
// restored text, which is where the cursor belongs, and whether an edit
// was undone.
func (b *Buffer) Undo() (int, bool) {
	if len(b.undoStack) == 0 {
		return 0, false
	}
	op := b.undoStack[len(b.undoStack)-1]
	b.undoStack = b.undoStack[:len(b.undoStack)-1]
	b.splice(op.offset, op.offset+len(op.newText), op.oldText)
	b.redoStack = append(b.redoStack, op)
	return op.offset + len(op.oldText), true
}

// Redo reapplies the last undone edit. It returns the byte offset just
// after the reapplied text and whether an edit was redone.
func (b *Buffer) Redo() (int, bool) {
	if len(b.redoStack) == 0 {
		return 0, false
	}
	op := b.redoStack[len(b.redoStack)-1]
	b.redoStack = b.redoStack[:len(b.redoStack)-1]
	b.splice(op.offset, op.offset+len(op.oldText), op.newText)
	b.undoStack = append(b.undoStack, op)
	return op.offset + len(op.newText), true
}

// splice replaces the bytes in [start, end) with repl and updates the line
// index incrementally: line starts strictly inside the removed range are
// dropped, later ones shift by the length delta, and a start is added
// after every newline in repl.
func (b *Buffer) splice(start, end int, repl string) {
	delta := len(repl) - (end - start)

	keep := sort.SearchInts(b.lineStarts, start+1)
	tail := sort.SearchInts(b.lineStarts, end+1)

	starts := make([]int, 0, keep+len(b.lineStarts)-tail+strings.Count(repl, "\n"))
	starts = append(starts, b.lineStarts[:keep]...)
	for i := 0; i < len(repl); i++ {
		if repl[i] == '\n' {
			starts = append(starts, start+i+1)
		}
	}
	for _, s := range b.lineStarts[tail:] {
		starts = append(starts, s+delta)
	}
	b.lineStarts = starts

	text := make([]byte, 0, len(b.text)+delta)
	text = append(text, b.text[:start]...)
	text = append(text, repl...)
	text = append(text, b.text[end:]...)
	b.text = text
}

func (b *Buffer) clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(b.text) {
		return len(b.text)
	}
	return i
}

func (b *Buffer) clampRange(start, end int) (int, int) {
	start = b.clampIndex(start)
	end = b.clampIndex(end)
	if start > end {
		start, end = end, start
	}
	return start, end
}
