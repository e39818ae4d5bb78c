package editor

// StartOfLine returns the byte offset of the first character of the line
// containing i.
func StartOfLine(b *Buffer, i int) int {
	return b.LineToByte(b.ByteToLine(i))
}

// EndOfLine returns the byte offset immediately before the terminator of
// the line containing i, excluding both bytes of a "\r\n" pair together.
// The last line has no terminator, so there it returns Len().
func EndOfLine(b *Buffer, i int) int {
	line := b.ByteToLine(i)
	if line == b.LineCount()-1 {
		return b.Len()
	}
	next := b.LineToByte(line + 1)
	if next-2 >= b.LineToByte(line) && b.Byte(next-2) == '\r' {
		return next - 2
	}
	return next - 1
}
