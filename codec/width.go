package codec

import (
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// --- Display width ---------------------------------------------------------

// ColumnCount returns the number of fixed-width terminal columns the text in b
// occupies, stopping at the first zero byte. East Asian wide characters and
// most emoji take two columns.
func ColumnCount(b []byte) int {
	n := ByteCount(b)
	if n == 0 {
		return 0
	}
	setupWidth()
	gstr := grapheme.StringFromString(string(b[:n]))
	return uax11.StringWidth(gstr, uax11.LatinContext)
}

// ScalarColumns returns the number of fixed-width terminal columns of scalar c.
// Invalid scalars occupy no columns.
func ScalarColumns(c rune) int {
	var tmp [UTFMax]byte
	n, err := Encode(c, tmp[:])
	if err != nil {
		tracer().Debugf("codec: no column width for invalid scalar %#x", c)
		return 0
	}
	return ColumnCount(tmp[:n])
}

var graphemeSetup sync.Once

// setupWidth initializes the grapheme classes used by uax11.
func setupWidth() {
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
}
