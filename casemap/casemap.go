/*
Package casemap provides the case-mapping services used by u8str.

Case mapping is not implemented by the string buffer itself. The buffer calls
out to a Mapper for per-scalar upper- and lowercasing and for whole-text
casefolding. Clients may plug in their own Mapper, e.g. one backed by a
different Unicode version; Unicode is the default.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package casemap

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Mapper maps scalar values and texts between letter cases.
//
// ToUpper and ToLower are total over valid scalars and return c unchanged if
// it has no case mapping. Casefold returns a newly allocated UTF-8 text which
// the caller owns; it must not return (parts of) text.
type Mapper interface {
	ToUpper(c rune) rune
	ToLower(c rune) rune
	Casefold(text []byte) []byte
}

// Unicode maps with the simple case mappings of package unicode and folds
// according to NFKC_Casefold.
type Unicode struct{}

// Default is the mapper used by u8str if clients do not provide one.
var Default Mapper = Unicode{}

var _ Mapper = Unicode{}

// ToUpper returns the simple uppercase mapping of c.
func (Unicode) ToUpper(c rune) rune {
	return unicode.ToUpper(c)
}

// ToLower returns the simple lowercase mapping of c.
func (Unicode) ToLower(c rune) rune {
	return unicode.ToLower(c)
}

// Casefold folds text for caseless matching.
//
// The result is NFKC(fold(NFKC(text))), which is what the Unicode property
// NFKC_Casefold yields for all text free of default-ignorable code points.
func (Unicode) Casefold(text []byte) []byte {
	folder := cases.Fold()
	folded := folder.Bytes(norm.NFKC.Bytes(text))
	return norm.NFKC.Append(make([]byte, 0, len(folded)), folded...)
}
