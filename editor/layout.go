package editor

import "strings"

// DefaultTabWidth is the number of columns a tab occupies unless the
// Mapper is configured otherwise.
const DefaultTabWidth = 4

// Mapper converts between byte offsets in a Buffer and on-screen
// positions under a tab width policy, measuring text through an injected
// Metrics provider. A tab occupies exactly TabWidth times the
// single-space advance width rather than its own glyph width. A zero
// Size or TabWidth falls back to the provider's default size and
// DefaultTabWidth.
type Mapper struct {
	Metrics  Metrics
	Font     Font
	Size     float64
	TabWidth int
}

func (m *Mapper) size() float64 {
	if m.Size > 0 {
		return m.Size
	}
	return m.Metrics.DefaultSize()
}

// LineHeight returns the vertical distance between line tops.
func (m *Mapper) LineHeight() float64 {
	if h := m.Metrics.DefaultLineHeight(); h > 0 {
		return h
	}
	return m.size()
}

func (m *Mapper) tabWidth() int {
	if m.TabWidth > 0 {
		return m.TabWidth
	}
	return DefaultTabWidth
}

func (m *Mapper) measureText(s string) float64 {
	return m.Metrics.MeasureWidth(s, m.size(), m.Font)
}

// ExpandTabs returns line with every tab replaced by TabWidth spaces.
func (m *Mapper) ExpandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	return strings.ReplaceAll(line, "\t", strings.Repeat(" ", m.tabWidth()))
}

// OffsetXOfIndex returns the width of the text from the start of the
// line containing i up to i, with tabs expanded.
func (m *Mapper) OffsetXOfIndex(b *Buffer, i int) float64 {
	i = b.clampIndex(i)
	return m.WidthOfRange(b, StartOfLine(b, i), i)
}

// OffsetOfIndex returns the position of the top-left corner of a cursor
// drawn at byte offset i.
func (m *Mapper) OffsetOfIndex(b *Buffer, i int) Point {
	return Point{
		X: m.OffsetXOfIndex(b, i),
		Y: float64(b.ByteToLine(i)) * m.LineHeight(),
	}
}

// WidthOfRange measures the text in [start, end) with every tab expanded
// to TabWidth spaces. Text runs between tabs are measured as written and
// runs of tabs contribute the space width times TabWidth per tab, so the
// result is byte-exact with measuring the fully expanded text.
func (m *Mapper) WidthOfRange(b *Buffer, start, end int) float64 {
	return m.widthOfText(b.Slice(start, end))
}

func (m *Mapper) widthOfText(s string) float64 {
	if s == "" {
		return 0
	}
	spaceWidth := m.measureText(" ")
	var width float64
	for len(s) > 0 {
		j := strings.IndexByte(s, '\t')
		if j < 0 {
			width += m.measureText(s)
			break
		}
		if j > 0 {
			width += m.measureText(s[:j])
		}
		k := j
		for k < len(s) && s[k] == '\t' {
			k++
		}
		width += spaceWidth * float64(m.tabWidth()) * float64(k-j)
		s = s[k:]
	}
	return width
}

// MaxLineWidth returns the width of the widest line, with tabs expanded.
// Hosts use it to clamp horizontal scrolling.
func (m *Mapper) MaxLineWidth(b *Buffer) float64 {
	var max float64
	for line := 0; line < b.LineCount(); line++ {
		if w := m.widthOfText(trimTerminator(b.Line(line))); w > max {
			max = w
		}
	}
	return max
}

// HitByteIndex maps a point over the given line to a byte offset within
// the line. The line is hit-tested with tabs expanded and the resulting
// grapheme boundary is mapped back through the expansion: every tab
// wholly before the hit contributes TabWidth-1 virtual bytes that are
// subtracted back out. It reports false only when the provider cannot
// resolve a hit.
func (m *Mapper) HitByteIndex(line string, p Point) (int, bool) {
	line = trimTerminator(line)
	expanded := m.ExpandTabs(line)
	g, ok := m.Metrics.HitTest(expanded, m.size(), m.Font, p)
	if !ok {
		return 0, false
	}
	target := graphemeOffset(expanded, g)

	tw := m.tabWidth()
	virtual := tw - 1
	i, tabs := 0, 0
	for k := 0; k < len(line); k++ {
		if i >= target {
			break
		}
		if line[k] == '\t' {
			if i+tw > target {
				// The hit falls inside this tab's expanded span:
				// round to the nearer side, ties toward the start.
				if target-i <= tw/2 {
					return i - tabs*virtual, true
				}
				return i - tabs*virtual + 1, true
			}
			i += tw
			tabs++
		} else {
			i++
		}
	}
	return i - tabs*virtual, true
}

// IndexAtPoint returns the byte offset closest to p, where p.Y selects
// the line and p.X the column. Points beyond the last line map to Len()
// and whitespace-only lines map to their start. It reports false only
// when the provider cannot resolve a hit; callers treat that as a
// placement no-op.
func (m *Mapper) IndexAtPoint(b *Buffer, p Point) (int, bool) {
	line := 0
	if lh := m.LineHeight(); lh > 0 && p.Y > 0 {
		line = int(p.Y / lh)
	}
	start := b.LineToByte(line)
	if line >= b.LineCount() || start >= b.Len() {
		return b.Len(), true
	}
	text := b.Line(line)
	if strings.TrimSpace(text) == "" {
		return start, true
	}
	idx, ok := m.HitByteIndex(text, p)
	if !ok {
		return 0, false
	}
	return start + idx, true
}

// FindIndexAbove locates the position on the previous line visually
// closest to the column of i. The hint, when present, overrides the
// column derived from i; the returned offset is the column used either
// way, so callers can seed the next vertical move with it. On the first
// line the result clamps to (0, 0).
func (m *Mapper) FindIndexAbove(b *Buffer, i int, hint float64, hasHint bool) (int, float64) {
	i = b.clampIndex(i)
	line := b.ByteToLine(i)
	if line == 0 {
		return 0, 0
	}

	offsetX := hint
	if !hasHint {
		offsetX = m.OffsetXOfIndex(b, i)
	}

	prevStart := b.LineToByte(line - 1)
	prev := b.Line(line - 1)
	if trimTerminator(prev) == "" {
		return prevStart, offsetX
	}

	idx, ok := m.HitByteIndex(prev, Point{X: offsetX, Y: m.LineHeight() / 2})
	if !ok {
		idx = m.nearestBoundary(prev, offsetX)
	}
	return prevStart + idx, offsetX
}

// FindIndexBelow locates the position on the next line visually closest
// to the column of i, with the same hint handling as FindIndexAbove. On
// the last line the result clamps to Len().
func (m *Mapper) FindIndexBelow(b *Buffer, i int, hint float64, hasHint bool) (int, float64) {
	i = b.clampIndex(i)
	line := b.ByteToLine(i)
	if line == b.LineCount()-1 {
		n := b.Len()
		return n, m.OffsetXOfIndex(b, n)
	}

	offsetX := hint
	if !hasHint {
		offsetX = m.OffsetXOfIndex(b, i)
	}

	nextStart := b.LineToByte(line + 1)
	next := b.Line(line + 1)
	if trimTerminator(next) == "" {
		return nextStart, offsetX
	}

	idx, ok := m.HitByteIndex(next, Point{X: offsetX, Y: m.LineHeight() / 2})
	if !ok {
		idx = m.nearestBoundary(next, offsetX)
	}
	return nextStart + idx, offsetX
}

// nearestBoundary is the fallback when a hit test fails: the nearer in x
// of the line's start and content end, ties toward the start.
func (m *Mapper) nearestBoundary(line string, offsetX float64) int {
	content := trimTerminator(line)
	if 2*offsetX > m.widthOfText(content) {
		return len(content)
	}
	return 0
}

// FollowCursor returns the scroll offset that keeps byte offset i inside
// a viewport of the given dimensions, starting from the current scroll.
func (m *Mapper) FollowCursor(b *Buffer, i int, scroll Point, width, height float64) Point {
	p := m.OffsetOfIndex(b, i)
	lh := m.LineHeight()

	x := scroll.X
	if p.X < scroll.X {
		x = p.X
	} else if p.X > scroll.X+width {
		x = p.X - width
	}

	y := scroll.Y
	if p.Y < scroll.Y {
		y = p.Y
	} else if p.Y+lh > scroll.Y+height {
		y = p.Y + lh - height
	}

	return Point{X: x, Y: y}
}

// trimTerminator strips one trailing line terminator, either "\n" or
// "\r\n". A bare carriage return is content, not a terminator.
func trimTerminator(line string) string {
	if before, ok := strings.CutSuffix(line, "\n"); ok {
		return strings.TrimSuffix(before, "\r")
	}
	return line
}
