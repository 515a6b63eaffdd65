package codec

import (
	"errors"
	"iter"
)

// ByteCount returns the number of bytes of b up to (not including) the first
// zero byte, or len(b) if b holds no zero byte.
func ByteCount(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return len(b)
}

// CharCount returns the number of UTF-8 characters in b. Counting stops at
// the first zero byte or at the end of b.
func CharCount(b []byte) int {
	return CharCountN(b, len(b))
}

// CharCountN is like CharCount, but scans at most maxBytes bytes of b.
func CharCountN(b []byte, maxBytes int) int {
	if maxBytes > len(b) {
		maxBytes = len(b)
	}
	n := 0
	for off := 0; off < maxBytes && b[off] != 0; off += CharSize(b[off]) {
		n++
	}
	return n
}

// ByteOffset walks b character by character and returns the byte offset of
// character number index.
//
// An index equal to the number of characters in b is legal and yields the
// offset of the end of the text. Larger indices result in an *IndexError.
func ByteOffset(b []byte, index int) (int, error) {
	if index < 0 {
		return 0, &IndexError{Index: index}
	}
	off := 0
	for i := 0; i < index; i++ {
		if off >= len(b) || b[off] == 0 {
			return 0, &IndexError{Index: index, Max: i}
		}
		off += CharSize(b[off])
	}
	if off > len(b) { // last character truncated
		return 0, ErrTruncatedEncoding
	}
	return off, nil
}

// StrAt returns the sub-slice of b starting at character number index.
func StrAt(b []byte, index int) ([]byte, error) {
	off, err := ByteOffset(b, index)
	if err != nil {
		return nil, err
	}
	return b[off:], nil
}

// CharAt returns the scalar value of character number index in b.
// Unlike ByteOffset, an index equal to the character count is out of range.
func CharAt(b []byte, index int) (rune, error) {
	off, err := ByteOffset(b, index)
	if errors.Is(err, ErrTruncatedEncoding) {
		// the character in front of index is the last one
		return 0, &IndexError{Index: index, Max: index - 1}
	}
	if err != nil {
		return 0, err
	}
	if off >= len(b) || b[off] == 0 {
		return 0, &IndexError{Index: index, Max: index - 1}
	}
	return Decode(b[off:])
}

// All returns an iterator over (character index, scalar value) pairs of b.
//
// The sequence is lazy and may be ranged over repeatedly. It ends at the first
// zero byte, at the end of b, or at a truncated trailing character.
func All(b []byte) iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		i := 0
		for off := 0; off < len(b) && b[off] != 0; off += CharSize(b[off]) {
			c, err := Decode(b[off:])
			if err != nil {
				return
			}
			if !yield(i, c) {
				return
			}
			i++
		}
	}
}
