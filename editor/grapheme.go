package editor

import "github.com/rivo/uniseg"

// NextGrapheme returns the byte offset one extended grapheme cluster after
// i, or Len() when i is at the end. Boundaries follow Unicode text
// segmentation; context is re-derived from the containing line start,
// which is always a cluster boundary (no cluster spans a newline, and
// "\r\n" is itself a single cluster).
func NextGrapheme(b *Buffer, i int) int {
	i = b.clampIndex(i)
	if i == b.Len() {
		return i
	}
	line := b.ByteToLine(i)
	pos := b.LineToByte(line)
	s := b.Slice(pos, b.LineToByte(line+1))
	state := -1
	for len(s) > 0 {
		cluster, rest, _, st := uniseg.StepString(s, state)
		next := pos + len(cluster)
		if next > i {
			return next
		}
		pos, s, state = next, rest, st
	}
	return b.Len()
}

// PreviousGrapheme returns the byte offset one extended grapheme cluster
// before i, or 0 when i is at the start.
func PreviousGrapheme(b *Buffer, i int) int {
	i = b.clampIndex(i)
	if i == 0 {
		return 0
	}
	start := StartOfLine(b, i)
	if start == i {
		// i sits at a line start; the cluster before it ends the
		// previous line.
		start = StartOfLine(b, i-1)
	}
	pos := start
	s := b.Slice(start, i)
	state := -1
	for len(s) > 0 {
		cluster, rest, _, st := uniseg.StepString(s, state)
		if pos+len(cluster) >= i {
			return pos
		}
		pos, s, state = pos+len(cluster), rest, st
	}
	return pos
}

// graphemeOffset returns the byte offset of the nth grapheme cluster in s,
// or len(s) when n is at or past the cluster count.
func graphemeOffset(s string, n int) int {
	pos := 0
	state := -1
	for i := 0; len(s) > 0; i++ {
		if i == n {
			return pos
		}
		cluster, rest, _, st := uniseg.StepString(s, state)
		pos += len(cluster)
		s, state = rest, st
	}
	return pos
}
