package u8str

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/u8str/codec"
)

func TestInsertAtMiddle(t *testing.T) {
	s := FromString("ab")
	if err := s.InsertStringAt(1, "X"); err != nil {
		t.Fatal(err)
	}
	if s.String() != "aXb" {
		t.Fatalf("InsertStringAt=%q want=%q", s.String(), "aXb")
	}
	if n := s.CharCount(); n != 3 {
		t.Fatalf("CharCount=%d want=3", n)
	}
	checkInvariant(t, s)
}

func TestInsertAtSequence(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := FromString("hello😊world")
	if err := s.InsertStringAt(0, "llama💬"); err != nil {
		t.Fatal(err)
	}
	if err := s.InsertStringAt(6, "drama "); err != nil {
		t.Fatal(err)
	}
	want := "llama💬drama hello😊world"
	if s.String() != want {
		t.Fatalf("text=%q want=%q", s.String(), want)
	}
	checkInvariant(t, s)
}

func TestInsertScalar(t *testing.T) {
	s := FromString("Ñoo")
	for _, c := range []rune{'ß', 0x00DF, 's'} {
		if err := s.InsertScalar(c); err != nil {
			t.Fatal(err)
		}
	}
	if s.String() != "Ñooßßs" {
		t.Fatalf("text=%q want=%q", s.String(), "Ñooßßs")
	}
	if err := s.InsertScalarAt(1, '😊'); err != nil {
		t.Fatal(err)
	}
	if s.String() != "Ñ😊ooßßs" {
		t.Fatalf("text=%q want=%q", s.String(), "Ñ😊ooßßs")
	}
	checkInvariant(t, s)
}

func TestInsertAtEndIsAppend(t *testing.T) {
	for _, x := range []string{"X", "é", "😊", "xyz"} {
		a := FromString("héllo")
		b := FromString("héllo")
		if err := a.InsertStringAt(a.CharCount(), x); err != nil {
			t.Fatal(err)
		}
		if err := b.InsertString(x); err != nil {
			t.Fatal(err)
		}
		if !a.Equal(b.Bytes()) {
			t.Fatalf("InsertStringAt(count, %q)=%q, Insert=%q", x, a.String(), b.String())
		}
		c := FromString("héllo")
		_ = c.InsertStringAt(999, x)
		if !c.Equal(b.Bytes()) {
			t.Fatalf("InsertStringAt(999, %q)=%q want=%q", x, c.String(), b.String())
		}
	}
}

func TestInsertThenRemoveRestores(t *testing.T) {
	base := "a😊bé€c"
	inserts := []string{"X", "ü", "💬💬", "mixed ÀÉ 😊"}
	for i := 0; i <= codec.CharCount([]byte(base)); i++ {
		for _, x := range inserts {
			s := FromString(base)
			if err := s.InsertStringAt(i, x); err != nil {
				t.Fatal(err)
			}
			checkInvariant(t, s)
			if err := s.Remove(i, codec.CharCount([]byte(x))); err != nil {
				t.Fatalf("Remove(%d) failed: %v", i, err)
			}
			if s.String() != base {
				t.Fatalf("insert/remove %q at %d gives %q", x, i, s.String())
			}
			checkInvariant(t, s)
		}
	}
}

func TestRemove(t *testing.T) {
	s := FromString("hello")
	capBefore := s.Cap()
	if err := s.Remove(0, 1); err != nil {
		t.Fatal(err)
	}
	if s.String() != "ello" {
		t.Fatalf("Remove(0,1)=%q want=%q", s.String(), "ello")
	}
	if s.Cap() != capBefore {
		t.Fatalf("Remove changed capacity")
	}
	s = FromString("dr😊m😊")
	_ = s.Remove(1, 3)
	if s.String() != "d😊" {
		t.Fatalf("Remove(1,3)=%q want=%q", s.String(), "d😊")
	}
	_ = s.Remove(1, 0)
	if s.String() != "d😊" {
		t.Fatalf("Remove(1,0)=%q want=%q", s.String(), "d😊")
	}
	checkInvariant(t, s)
}

func TestRemoveOutOfRange(t *testing.T) {
	s := FromString("abc")
	err := s.Remove(2, 5)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	var ie *codec.IndexError
	if !errors.As(err, &ie) || ie.Index != 7 || ie.Max != 3 {
		t.Fatalf("unexpected index error %v", err)
	}
	if err := s.Remove(4, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := s.Remove(0, -1); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
	if s.String() != "abc" {
		t.Fatalf("failed Remove modified text: %q", s.String())
	}
	var empty String
	if err := empty.Remove(0, 0); err != nil {
		t.Fatalf("Remove(0,0) on empty failed: %v", err)
	}
}

func TestCharAtOutOfRange(t *testing.T) {
	s := FromString("café")
	if _, err := s.CharAt(s.CharCount()); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := s.CharAt(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange for negative index, got %v", err)
	}
}

func TestStrAt(t *testing.T) {
	s := FromString("llama💬llama")
	b, err := s.StrAt(5)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "💬llama" {
		t.Fatalf("StrAt(5)=%q", b)
	}
}

func TestInsertRejectsMalformed(t *testing.T) {
	s := FromString("keep")
	tests := []struct {
		name string
		err  error
		op   func() error
	}{
		{"truncated", ErrTruncatedEncoding, func() error { return s.Insert([]byte{'x', 0xE2, 0x82}) }},
		{"truncated at", ErrTruncatedEncoding, func() error { return s.InsertAt(1, []byte{0xF0}) }},
		{"zero byte", ErrIllegalArguments, func() error { return s.InsertString("a\x00b") }},
		{"zero scalar", ErrIllegalArguments, func() error { return s.InsertScalar(0) }},
		{"invalid scalar", ErrInvalidScalar, func() error { return s.InsertScalar(0x110000) }},
		{"invalid scalar at", ErrInvalidScalar, func() error { return s.InsertScalarAt(1, -3) }},
		{"negative index", ErrIndexOutOfRange, func() error { return s.InsertStringAt(-1, "x") }},
	}
	for _, tt := range tests {
		if err := tt.op(); !errors.Is(err, tt.err) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.err, err)
		}
		if s.String() != "keep" {
			t.Fatalf("%s: failed insert modified text to %q", tt.name, s.String())
		}
	}
	checkInvariant(t, s)
}

func TestIterationMatchesCharAt(t *testing.T) {
	s := FromString("!丨爻賳a盲bcß😊")
	n := 0
	for i, c := range s.All() {
		at, err := s.CharAt(i)
		if err != nil || at != c {
			t.Fatalf("All[%d]=%q CharAt=(%q,%v)", i, c, at, err)
		}
		n++
	}
	if n != s.CharCount() {
		t.Fatalf("iterated %d characters, CharCount=%d", n, s.CharCount())
	}
}
