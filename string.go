package u8str

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bytes"
	"fmt"
	"math"

	"github.com/npillmayer/u8str/codec"
)

// DefaultCapacity is the capacity of the first allocation of a String.
const DefaultCapacity = 16

// MaxCapacity limits the byte capacity of a String. Growing beyond it results
// in ErrOutOfMemory.
const MaxCapacity = math.MaxInt / 4

// String is a growable buffer of UTF-8 text.
//
// A String created by
//
//	String{}
//
// is a valid object and behaves like the empty string. It does not allocate
// before the first insertion.
//
// Methods that take or return positions use character indices, not byte
// offsets. The text of a String always consists of complete UTF-8 encodings
// and never contains a zero byte, with the exception of texts read by
// ReadFrom, which are taken verbatim.
type String struct {
	buf []byte // the allocation; len(buf) is the capacity
	n   int    // length of the text in bytes; buf[n] == 0 if len(buf) > 0
}

// New creates an empty String.
func New() *String {
	return &String{}
}

// WithCapacity creates an empty String with room for at least n bytes of text.
// Negative values of n are treated as 0.
func WithCapacity(n int) *String {
	s := &String{}
	if n > 0 {
		err := s.Grow(n)
		assert(err == nil, "WithCapacity: cannot allocate")
	}
	return s
}

// FromString creates a String holding a copy of text.
//
// text must not end in the middle of a multi-byte character and must not
// contain zero bytes. Invalid input triggers an internal assertion panic;
// clients handling untrusted input should use FromBytes.
func FromString(text string) *String {
	s := &String{}
	err := s.InsertString(text)
	assert(err == nil, "FromString requires well-formed UTF-8 input")
	return s
}

// FromBytes creates a String holding a copy of text.
func FromBytes(text []byte) (*String, error) {
	s := &String{}
	if err := s.Insert(text); err != nil {
		return nil, err
	}
	return s, nil
}

// Adopt creates a String which takes over the allocation of b without
// copying. The text is b[:len(b)], the capacity is cap(b). There must be room
// for the sentinel, i.e. cap(b) > len(b), unless b is empty.
//
// The caller must not use b after handing it to Adopt.
func Adopt(b []byte) (*String, error) {
	if cap(b) == 0 {
		return &String{}, nil
	}
	if cap(b) <= len(b) {
		return nil, fmt.Errorf("%w: no room for sentinel (len=%d, cap=%d)", ErrIllegalArguments, len(b), cap(b))
	}
	if cap(b) > MaxCapacity {
		return nil, ErrOutOfMemory
	}
	s := &String{buf: b[:cap(b)], n: len(b)}
	s.buf[s.n] = 0
	T().Debugf("u8str: adopted allocation of %d bytes holding %d bytes of text", cap(b), len(b))
	return s, nil
}

// Clone returns a copy of s with its own allocation.
func (s *String) Clone() *String {
	c := &String{}
	if s == nil || s.n == 0 {
		return c
	}
	c.buf = make([]byte, len(s.buf))
	c.n = copy(c.buf, s.buf[:s.n])
	return c
}

// --- Accessors -------------------------------------------------------------

// Bytes returns the text of s. The slice aliases the storage of s and is valid
// until the next mutation of s.
func (s *String) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.buf[:s.n]
}

// Terminated returns the text of s including the trailing zero byte. For an
// unallocated String it returns a fresh one-byte slice. The slice aliases the
// storage of s and is valid until the next mutation of s.
func (s *String) Terminated() []byte {
	if s == nil || len(s.buf) == 0 {
		return []byte{0}
	}
	return s.buf[:s.n+1]
}

// String returns a copy of the text of s.
func (s *String) String() string {
	return string(s.Bytes())
}

// Len returns the length of the text in bytes, excluding the sentinel.
func (s *String) Len() int {
	if s == nil {
		return 0
	}
	return s.n
}

// Cap returns the allocated capacity in bytes, including room for the sentinel.
func (s *String) Cap() int {
	if s == nil {
		return 0
	}
	return len(s.buf)
}

// IsEmpty reports whether s holds no text.
func (s *String) IsEmpty() bool {
	return s.Len() == 0
}

// CharCount returns the number of characters of s. This is an O(n) operation.
func (s *String) CharCount() int {
	return codec.CharCount(s.Bytes())
}

// CharAt returns the scalar value at character index i.
func (s *String) CharAt(i int) (rune, error) {
	return codec.CharAt(s.Bytes(), i)
}

// StrAt returns the text of s starting at character index i. An index equal
// to the number of characters yields an empty slice. The slice aliases the
// storage of s.
func (s *String) StrAt(i int) ([]byte, error) {
	return codec.StrAt(s.Bytes(), i)
}

// Equal reports whether s holds exactly the bytes of text.
func (s *String) Equal(text []byte) bool {
	return bytes.Equal(s.Bytes(), text)
}

// EqualString reports whether s holds exactly text.
func (s *String) EqualString(text string) bool {
	return string(s.Bytes()) == text
}

// --- Allocation ------------------------------------------------------------

// Grow makes sure that s has room for additional bytes of text (plus the
// sentinel) without another allocation. Capacity starts at DefaultCapacity and
// doubles until it is large enough.
//
// If the required capacity exceeds MaxCapacity or cannot be allocated, Grow
// returns ErrOutOfMemory and s is left unchanged.
func (s *String) Grow(additional int) error {
	if additional < 0 {
		return ErrIllegalArguments
	}
	required := s.n + additional + 1
	if additional > MaxCapacity || required > MaxCapacity {
		T().Errorf("u8str: cannot grow string of %d bytes by %d bytes", s.n, additional)
		return ErrOutOfMemory
	}
	capacity := len(s.buf)
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	for capacity < required {
		capacity *= 2
	}
	if capacity <= len(s.buf) {
		return nil
	}
	buf, err := alloc(capacity)
	if err != nil {
		T().Errorf("u8str: allocation of %d bytes failed", capacity)
		return err
	}
	copy(buf, s.buf[:s.n])
	buf[s.n] = 0
	if len(s.buf) > 0 {
		T().Debugf("u8str: grow allocation %d -> %d bytes", len(s.buf), capacity)
	}
	s.buf = buf
	return nil
}

// Collapse shrinks the allocation of s to exactly fit the text and sentinel.
func (s *String) Collapse() {
	if len(s.buf) <= s.n+1 {
		return
	}
	buf := make([]byte, s.n+1)
	copy(buf, s.buf[:s.n])
	T().Debugf("u8str: collapse allocation %d -> %d bytes", len(s.buf), len(buf))
	s.buf = buf
}

// alloc allocates a zeroed byte slice, turning allocation panics into errors.
func alloc(size int) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()
	return make([]byte, size), nil
}

// --- Ownership -------------------------------------------------------------

// Release hands the allocation of s over to the caller and resets s to the
// empty String. The allocation is collapsed first. The returned slice holds
// the text; its capacity is one byte larger and covers the sentinel.
// Releasing an unallocated String returns nil.
func (s *String) Release() []byte {
	if len(s.buf) == 0 {
		return nil
	}
	s.Collapse()
	b := s.buf[:s.n:s.n+1]
	s.buf, s.n = nil, 0
	return b
}

// Move transfers the allocation of src to s, dropping the former text of s.
// src is reset to the empty String. A nil src counts as the empty String.
func (s *String) Move(src *String) {
	if s == src {
		return
	}
	if src == nil {
		s.Dispose()
		return
	}
	s.buf, s.n = src.buf, src.n
	src.buf, src.n = nil, 0
}

// Dispose drops the text and allocation of s, leaving the empty String.
func (s *String) Dispose() {
	s.buf, s.n = nil, 0
}

// Reset drops the text of s but keeps its allocation for re-use.
func (s *String) Reset() {
	s.n = 0
	if len(s.buf) > 0 {
		s.buf[0] = 0
	}
}
