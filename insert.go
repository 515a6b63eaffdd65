package u8str

import (
	"errors"
	"fmt"

	"github.com/npillmayer/u8str/codec"
)

// Insert appends text to s.
//
// text must consist of complete UTF-8 encodings and must not contain zero
// bytes; otherwise an error is returned and s is left unchanged. text must not
// alias the storage of s.
func (s *String) Insert(text []byte) error {
	if err := checkText(text); err != nil {
		return err
	}
	return s.appendBytes(text)
}

// InsertString appends text to s.
func (s *String) InsertString(text string) error {
	return s.Insert([]byte(text))
}

// InsertScalar appends the UTF-8 encoding of c to s.
func (s *String) InsertScalar(c rune) error {
	var tmp [codec.UTFMax]byte
	size, err := encodeText(c, tmp[:])
	if err != nil {
		return err
	}
	return s.appendBytes(tmp[:size])
}

// InsertAt inserts text in front of the character at index i. If i is not
// less than the number of characters, InsertAt appends.
//
// Inserting in the middle moves the tail of the text, which makes InsertAt an
// O(n) operation. text must not alias the storage of s.
func (s *String) InsertAt(i int, text []byte) error {
	if err := checkText(text); err != nil {
		return err
	}
	return s.insertBytesAt(i, text)
}

// InsertStringAt inserts text in front of the character at index i.
func (s *String) InsertStringAt(i int, text string) error {
	return s.InsertAt(i, []byte(text))
}

// InsertScalarAt inserts the UTF-8 encoding of c in front of the character at
// index i.
func (s *String) InsertScalarAt(i int, c rune) error {
	var tmp [codec.UTFMax]byte
	size, err := encodeText(c, tmp[:])
	if err != nil {
		return err
	}
	return s.insertBytesAt(i, tmp[:size])
}

// Remove deletes count characters, starting at character index i. The
// capacity of s is not reduced.
//
// If the span [i, i+count) exceeds the text, Remove returns
// ErrIndexOutOfRange and s is left unchanged.
func (s *String) Remove(i, count int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrIllegalArguments, count)
	}
	base, err := codec.ByteOffset(s.Bytes(), i)
	if err != nil {
		return err
	}
	end, err := codec.ByteOffset(s.buf[base:s.n], count)
	if err != nil {
		var ie *codec.IndexError
		if errors.As(err, &ie) {
			return &codec.IndexError{Index: i + count, Max: i + ie.Max}
		}
		return err
	}
	end += base
	if end == base {
		return nil
	}
	copy(s.buf[base:], s.buf[end:s.n])
	s.n -= end - base
	s.buf[s.n] = 0
	return nil
}

// --- Helpers ---------------------------------------------------------------

func (s *String) appendBytes(text []byte) error {
	if len(text) == 0 {
		return nil
	}
	if err := s.Grow(len(text)); err != nil {
		return err
	}
	s.n += copy(s.buf[s.n:], text)
	s.buf[s.n] = 0
	return nil
}

func (s *String) insertBytesAt(i int, text []byte) error {
	off, err := s.insertionOffset(i)
	if err != nil {
		return err
	}
	if len(text) == 0 {
		return nil
	}
	if off == s.n {
		return s.appendBytes(text)
	}
	if err := s.openGap(off, len(text)); err != nil {
		return err
	}
	copy(s.buf[off:], text)
	return nil
}

// insertionOffset returns the byte offset for inserting in front of the
// character at index i. Indices beyond the text map to its end.
func (s *String) insertionOffset(i int) (int, error) {
	if i < 0 {
		return 0, &codec.IndexError{Index: i, Max: s.CharCount()}
	}
	off, err := codec.ByteOffset(s.Bytes(), i)
	if errors.Is(err, ErrIndexOutOfRange) {
		return s.n, nil
	}
	return off, err
}

// openGap makes room for size bytes at byte offset off, moving the tail of the
// text to the right. The gap contains stale bytes afterwards.
func (s *String) openGap(off, size int) error {
	if err := s.Grow(size); err != nil {
		return err
	}
	copy(s.buf[off+size:], s.buf[off:s.n])
	s.n += size
	s.buf[s.n] = 0
	return nil
}

// checkText makes sure text may become part of a String: it must not end in
// the middle of a multi-byte character and must not contain zero bytes.
func checkText(text []byte) error {
	off := 0
	for off < len(text) {
		if text[off] == 0 {
			return fmt.Errorf("%w: text contains a zero byte at offset %d", ErrIllegalArguments, off)
		}
		off += codec.CharSize(text[off])
	}
	if off > len(text) {
		return ErrTruncatedEncoding
	}
	return nil
}

// encodeText encodes c for insertion into a String. The zero scalar is
// rejected, as it would be mistaken for the sentinel.
func encodeText(c rune, out []byte) (int, error) {
	if c == 0 {
		return 0, fmt.Errorf("%w: cannot insert scalar 0", ErrIllegalArguments)
	}
	return codec.Encode(c, out)
}
