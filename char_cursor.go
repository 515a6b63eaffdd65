package u8str

import (
	"iter"

	"github.com/npillmayer/u8str/codec"
)

// All returns an iterator over (character index, scalar value) pairs of s, in
// text order.
//
// The iterator works on the text as it is when All is called. Clients must not
// mutate s while iterating.
func (s *String) All() iter.Seq2[int, rune] {
	return codec.All(s.Bytes())
}

// CharCursor navigates the text of a String by character positions.
//
// The cursor is bound to the text as it is when the cursor is created.
// Movement is in character steps, while internal addressing uses byte offsets.
type CharCursor struct {
	text    []byte
	index   int
	byteOff int
}

// Begin creates a cursor positioned at the first character of s.
func (s *String) Begin() *CharCursor {
	return &CharCursor{text: s.Bytes()}
}

// End creates a cursor positioned behind the last character of s.
func (s *String) End() *CharCursor {
	return &CharCursor{
		text:    s.Bytes(),
		index:   s.CharCount(),
		byteOff: s.Len(),
	}
}

// Index returns the character index of the cursor.
func (cc *CharCursor) Index() int {
	if cc == nil {
		return 0
	}
	return cc.index
}

// ByteOffset returns the current cursor byte offset.
func (cc *CharCursor) ByteOffset() int {
	if cc == nil {
		return 0
	}
	return cc.byteOff
}

// AtEnd reports whether the cursor is positioned behind the last character.
func (cc *CharCursor) AtEnd() bool {
	return cc == nil || cc.byteOff >= len(cc.text) || cc.text[cc.byteOff] == 0
}

// Seek moves the cursor to absolute character index i.
func (cc *CharCursor) Seek(i int) error {
	if cc == nil {
		return ErrIllegalArguments
	}
	off, err := codec.ByteOffset(cc.text, i)
	if err != nil {
		return err
	}
	cc.index = i
	cc.byteOff = off
	return nil
}

// Value returns the character index and scalar value at the cursor position
// without moving the cursor. If the cursor is at the end, ok is false.
func (cc *CharCursor) Value() (i int, c rune, ok bool) {
	if cc.AtEnd() {
		return 0, 0, false
	}
	c, err := codec.Decode(cc.text[cc.byteOff:])
	if err != nil {
		return 0, 0, false
	}
	return cc.index, c, true
}

// Next returns the scalar value at the current cursor position and advances
// by one character.
//
// If the cursor is at the end of the text, ok is false.
func (cc *CharCursor) Next() (c rune, ok bool) {
	_, c, ok = cc.Value()
	if !ok {
		return 0, false
	}
	cc.byteOff += codec.CharSize(cc.text[cc.byteOff])
	cc.index++
	return c, true
}

// Prev returns the scalar value before the current cursor position and moves
// back by one character.
//
// If the cursor is at the start of the text, ok is false.
func (cc *CharCursor) Prev() (c rune, ok bool) {
	if cc == nil || cc.byteOff == 0 {
		return 0, false
	}
	off := cc.byteOff - 1
	for off > 0 && isContinuation(cc.text[off]) {
		off--
	}
	c, err := codec.Decode(cc.text[off:])
	if err != nil {
		return 0, false
	}
	cc.byteOff = off
	cc.index--
	return c, true
}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}
