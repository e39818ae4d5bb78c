package editor

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

// NextEndOfWord returns the byte offset of the end of the next word at or
// after i, per Unicode word segmentation restricted to the current line.
// Runs of whitespace are skipped as a unit. At a line's content end the
// next line's start is returned, so repeated word moves cross terminators
// one line at a time. When only whitespace remains on the line, the
// buffer length is returned.
func NextEndOfWord(b *Buffer, i int) int {
	i = b.clampIndex(i)
	if i == b.Len() {
		return i
	}
	lineEnd := EndOfLine(b, i)
	if i >= lineEnd {
		return b.LineToByte(b.ByteToLine(i) + 1)
	}

	pos := 0
	tokens := words.FromString(b.Slice(i, lineEnd))
	for tokens.Next() {
		tok := tokens.Value()
		if strings.TrimSpace(tok) != "" {
			return i + pos + len(tok)
		}
		pos += len(tok)
	}
	return b.Len()
}

// PreviousStartOfWord returns the byte offset of the start of the nearest
// word before i, per Unicode word segmentation restricted to the current
// line. At a line start the previous line's content end is returned. When
// only whitespace precedes i on the line, 0 is returned.
func PreviousStartOfWord(b *Buffer, i int) int {
	i = b.clampIndex(i)
	if i == 0 {
		return 0
	}
	lineStart := StartOfLine(b, i)
	if i == lineStart {
		return EndOfLine(b, i-1)
	}

	best := -1
	pos := 0
	tokens := words.FromString(b.Slice(lineStart, i))
	for tokens.Next() {
		tok := tokens.Value()
		if strings.TrimSpace(tok) != "" {
			best = lineStart + pos
		}
		pos += len(tok)
	}
	if best >= 0 {
		return best
	}
	return 0
}
