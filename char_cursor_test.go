package u8str

import (
	"errors"
	"strings"
	"testing"
)

func TestCharCursorNextPrevRoundtrip(t *testing.T) {
	text := "a😀ב\nz"
	s := FromString(text)
	cc := s.Begin()

	var got []rune
	for {
		r, ok := cc.Next()
		if !ok {
			break
		}
		got = append(got, r)
	}
	want := []rune(text)
	if len(got) != len(want) {
		t.Fatalf("forward rune count=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("forward rune[%d]=%q want=%q", i, got[i], want[i])
		}
	}
	if end := s.End(); cc.Index() != end.Index() || cc.ByteOffset() != end.ByteOffset() {
		t.Fatalf("cursor after iteration at (%d,%d), End at (%d,%d)",
			cc.Index(), cc.ByteOffset(), end.Index(), end.ByteOffset())
	}

	var back []rune
	for {
		r, ok := cc.Prev()
		if !ok {
			break
		}
		back = append(back, r)
	}
	if len(back) != len(want) {
		t.Fatalf("backward rune count=%d want=%d", len(back), len(want))
	}
	for i := range want {
		if back[i] != want[len(want)-1-i] {
			t.Fatalf("backward rune[%d]=%q want=%q", i, back[i], want[len(want)-1-i])
		}
	}
	if cc.Index() != 0 {
		t.Fatalf("index after backward iteration=%d want=0", cc.Index())
	}
}

func TestCharCursorSeek(t *testing.T) {
	s := FromString("a😀b")
	cc := s.Begin()
	if err := cc.Seek(2); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	if cc.ByteOffset() != 5 {
		t.Fatalf("byte offset=%d want=5", cc.ByteOffset())
	}
	i, r, ok := cc.Value()
	if !ok || i != 2 || r != 'b' {
		t.Fatalf("Value after Seek(2) got (%d,%q,%v), want (2,'b',true)", i, r, ok)
	}
	r, ok = cc.Next()
	if !ok || r != 'b' {
		t.Fatalf("Next after Seek(2) got (%q,%v), want ('b',true)", r, ok)
	}
	if !cc.AtEnd() {
		t.Fatalf("cursor should be at end")
	}
	if err := cc.Seek(4); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestCharCursorLongText(t *testing.T) {
	text := strings.Repeat("a", 63) + "😀" + "z"
	s := FromString(text)
	cc := s.Begin()
	if err := cc.Seek(63); err != nil {
		t.Fatalf("Seek(63) failed: %v", err)
	}
	r, ok := cc.Next()
	if !ok || r != '😀' {
		t.Fatalf("first Next got (%q,%v), want ('😀',true)", r, ok)
	}
	if cc.ByteOffset() != 67 {
		t.Fatalf("byte offset after emoji=%d want=67", cc.ByteOffset())
	}
	r, ok = cc.Prev()
	if !ok || r != '😀' {
		t.Fatalf("Prev got (%q,%v), want ('😀',true)", r, ok)
	}
	if cc.ByteOffset() != 63 || cc.Index() != 63 {
		t.Fatalf("cursor after Prev at (%d,%d) want (63,63)", cc.Index(), cc.ByteOffset())
	}
}

func TestCharCursorEmpty(t *testing.T) {
	var s String
	cc := s.Begin()
	if _, ok := cc.Next(); ok {
		t.Fatalf("Next on empty string should fail")
	}
	if _, ok := cc.Prev(); ok {
		t.Fatalf("Prev on empty string should fail")
	}
	if !cc.AtEnd() || s.End().Index() != 0 {
		t.Fatalf("Begin and End of empty string differ")
	}
}
