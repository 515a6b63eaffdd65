package metrics

import (
	"fmt"

	"github.com/npillmayer/u8str"
)

// CountingMetric is a type for metrics that count items in text. Possible
// items may be lines, words, emojis, …
type CountingMetric interface {
	Count(text *u8str.String, i, j int) (int, error)
}

// Count applies a counting metric to a text.
func Count(text *u8str.String, i, j int, metric CountingMetric) (int, error) {
	n, err := metric.Count(text, i, j)
	if err != nil {
		return -1, fmt.Errorf("metrics.Count could not be applied: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------

// A ScanningMetric searches a text for items (such as lines, words, emojis, …)
// and returns their locations as spans of characters.
type ScanningMetric interface {
	Locations(text *u8str.String, i, j int) ([]Span, error)
}

// Find applies a scanning metric to a text.
func Find(text *u8str.String, i, j int, metric ScanningMetric) ([]Span, error) {
	spans, err := metric.Locations(text, i, j)
	if err != nil {
		return []Span{}, fmt.Errorf("metrics.Find could not be applied: %w", err)
	}
	return spans, nil
}

// checkRange validates the character range [i, j) against text.
func checkRange(text *u8str.String, i, j int) error {
	if i < 0 || j < i || j > text.CharCount() {
		tracer().Debugf("metrics: illegal range [%d,%d)", i, j)
		return u8str.ErrIndexOutOfRange
	}
	return nil
}
