package casemap

import (
	"testing"
)

func TestUnicodeSimpleMappings(t *testing.T) {
	m := Unicode{}
	tests := []struct {
		in, upper, lower rune
	}{
		{'a', 'A', 'a'},
		{'À', 'À', 'à'},
		{'ý', 'Ý', 'ý'},
		{'1', '1', '1'},
		{'😊', '😊', '😊'},
	}
	for _, tt := range tests {
		if got := m.ToUpper(tt.in); got != tt.upper {
			t.Errorf("ToUpper(%q)=%q want=%q", tt.in, got, tt.upper)
		}
		if got := m.ToLower(tt.in); got != tt.lower {
			t.Errorf("ToLower(%q)=%q want=%q", tt.in, got, tt.lower)
		}
	}
}

func TestUnicodeCasefold(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"BIG LETTERS ÀÈÌÒÙ", "big letters àèìòù"},
		{"Straße", "strasse"},
		{"ﬁne", "fine"},
		{"", ""},
	}
	for _, tt := range tests {
		in := []byte(tt.in)
		got := Default.Casefold(in)
		if string(got) != tt.want {
			t.Errorf("Casefold(%q)=%q want=%q", tt.in, got, tt.want)
		}
		if string(in) != tt.in {
			t.Errorf("Casefold modified its input to %q", in)
		}
	}
}
