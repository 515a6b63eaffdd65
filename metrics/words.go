package metrics

import (
	"github.com/npillmayer/u8str"
	"github.com/npillmayer/u8str/codec"
)

// Span is a character-range descriptor inside a text.
//
// Pos is the start character index, Len is the span length in characters.
type Span struct {
	Pos int
	Len int
}

// WordsValue is the result of a word-materialization pass.
type WordsValue struct {
	Spans []Span
}

// WordCount returns the number of recognized words.
func (v WordsValue) WordCount() int {
	return len(v.Spans)
}

// WordsMetric is a materialized word metric. Words are maximal runs of
// characters which are not whitespace, as defined by codec.IsWhitespace.
type WordsMetric struct{}

// Words creates a materialized word metric.
func Words() WordsMetric {
	return WordsMetric{}
}

var _ CountingMetric = WordsMetric{}
var _ ScanningMetric = WordsMetric{}

// Apply scans characters [i,j) for words and returns word spans plus a
// materialized string.
//
// Materialization concatenates all recognized words in logical order and omits
// whitespace separators.
func (WordsMetric) Apply(text *u8str.String, i, j int) (WordsValue, *u8str.String, error) {
	if err := checkRange(text, i, j); err != nil {
		return WordsValue{}, nil, err
	}
	value := WordsValue{
		Spans: findWordSpans(text, i, j),
	}
	out := u8str.New()
	for _, span := range value.Spans {
		start, err := text.StrAt(span.Pos)
		if err != nil {
			return WordsValue{}, nil, err
		}
		end, err := codec.ByteOffset(start, span.Len)
		if err != nil {
			return WordsValue{}, nil, err
		}
		if err := out.Insert(start[:end]); err != nil {
			return WordsValue{}, nil, err
		}
	}
	return value, out, nil
}

// Count returns the number of words in characters [i,j).
func (m WordsMetric) Count(text *u8str.String, i, j int) (int, error) {
	spans, err := m.Locations(text, i, j)
	return len(spans), err
}

// Locations returns the spans of words in characters [i,j).
func (WordsMetric) Locations(text *u8str.String, i, j int) ([]Span, error) {
	if err := checkRange(text, i, j); err != nil {
		return nil, err
	}
	return findWordSpans(text, i, j), nil
}

func findWordSpans(text *u8str.String, i, j int) []Span {
	spans := make([]Span, 0, 8)
	inWord := false
	for k, c := range text.All() {
		if k < i {
			continue
		}
		if k >= j {
			break
		}
		if codec.IsWhitespace(c) {
			inWord = false
			continue
		}
		if !inWord {
			spans = append(spans, Span{Pos: k})
			inWord = true
		}
		spans[len(spans)-1].Len++
	}
	return spans
}
