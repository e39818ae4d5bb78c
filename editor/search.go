package editor

import "bytes"

// Find returns all byte ranges where query appears as a substring of the
// buffer text. It returns nil if query is empty or not found.
func (b *Buffer) Find(query string) []Range {
	if query == "" {
		return nil
	}
	q := []byte(query)
	var results []Range
	start := 0
	for {
		idx := bytes.Index(b.text[start:], q)
		if idx < 0 {
			break
		}
		abs := start + idx
		results = append(results, Range{Start: abs, End: abs + len(q)})
		start = abs + len(q)
	}
	return results
}

// ReplaceAll replaces every occurrence of query with replacement and
// returns the number of replacements made. Each replacement is recorded
// as a single undo operation, applied from back to front so that earlier
// offsets remain valid.
func (b *Buffer) ReplaceAll(query, replacement string) int {
	ranges := b.Find(query)
	for i := len(ranges) - 1; i >= 0; i-- {
		b.Replace(ranges[i].Start, ranges[i].End, replacement)
	}
	return len(ranges)
}
