// Package cellmetrics measures text in terminal cells for the editor's
// coordinate mapping. With the default size of 1, editor x offsets are
// column numbers and y offsets are row numbers, so a terminal host can
// use them directly.
package cellmetrics

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/odvcencio/quill/editor"
)

// Provider implements the editor's metrics contract over display cell
// widths. CJK characters and emoji occupy two cells, combining marks
// none.
type Provider struct{}

var _ editor.Metrics = Provider{}

// DefaultSize returns 1, one terminal cell per width unit.
func (Provider) DefaultSize() float64 { return 1 }

// DefaultLineHeight returns 1, one terminal row per line.
func (Provider) DefaultLineHeight() float64 { return 1 }

// MeasureWidth returns the display width of text scaled by size.
func (Provider) MeasureWidth(text string, size float64, _ editor.Font) float64 {
	return float64(runewidth.StringWidth(text)) * size
}

// HitTest returns the grapheme boundary nearest to p.X, with a tie at a
// cluster's midpoint going to the left boundary. It reports false only
// for empty text.
func (Provider) HitTest(text string, size float64, _ editor.Font, p editor.Point) (int, bool) {
	if text == "" {
		return 0, false
	}
	var acc float64
	idx := 0
	state := -1
	for len(text) > 0 {
		cluster, rest, _, st := uniseg.StepString(text, state)
		w := float64(runewidth.StringWidth(cluster)) * size
		if p.X < acc+w {
			if p.X-acc <= w/2 {
				return idx, true
			}
			return idx + 1, true
		}
		acc += w
		idx++
		text, state = rest, st
	}
	return idx, true
}

// Cluster is one grapheme cluster of a line and its display width in
// cells.
type Cluster struct {
	Text  string
	Width int
}

// Clusters splits text into grapheme clusters with their widths. Hosts
// draw cluster by cluster so that multi-cell and multi-rune characters
// stay intact.
func Clusters(text string) []Cluster {
	var out []Cluster
	state := -1
	for len(text) > 0 {
		cluster, rest, _, st := uniseg.StepString(text, state)
		out = append(out, Cluster{Text: cluster, Width: runewidth.StringWidth(cluster)})
		text, state = rest, st
	}
	return out
}
