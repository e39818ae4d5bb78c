package editor

// Point is a position in the host's coordinate space, relative to the
// text origin.
type Point struct {
	X, Y float64
}

// Font identifies a typeface to the metrics provider. The engine treats
// it as opaque; the zero value selects the provider's default.
type Font string

// Metrics measures rendered text for the coordinate mapper.
// Implementations must be pure synchronous queries: the same inputs
// always produce the same result, with no I/O and no blocking.
// MeasureWidth receives text with tabs already expanded to spaces.
// HitTest returns the index, in grapheme clusters, of the closest
// boundary at or before the point, and reports false only when it cannot
// resolve a hit, such as for empty text.
type Metrics interface {
	DefaultSize() float64
	DefaultLineHeight() float64
	MeasureWidth(text string, size float64, font Font) float64
	HitTest(text string, size float64, font Font, p Point) (int, bool)
}
