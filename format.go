package u8str

import (
	"fmt"
)

// InsertFmt appends text formatted according to a format specifier, in the
// manner of fmt.Printf.
//
// The text is rendered before s is touched, so arguments may refer to s
// itself. The rendered text is subject to the same rules as for Insert; if it
// is not well-formed, an error wrapping ErrFormat is returned and s is left
// unchanged.
func (s *String) InsertFmt(format string, args ...any) error {
	text, err := render(format, args...)
	if err != nil {
		return err
	}
	return s.appendBytes(text)
}

// InsertFmtAt inserts formatted text in front of the character at index i.
// If i is not less than the number of characters, InsertFmtAt appends.
// Negative indices result in an *IndexError.
func (s *String) InsertFmtAt(i int, format string, args ...any) error {
	text, err := render(format, args...)
	if err != nil {
		return err
	}
	return s.insertBytesAt(i, text)
}

// render formats into a scratch slice and checks the result for insertion.
func render(format string, args ...any) ([]byte, error) {
	text := fmt.Appendf(nil, format, args...)
	if err := checkText(text); err != nil {
		T().Errorf("u8str: formatted text cannot be inserted: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return text, nil
}
