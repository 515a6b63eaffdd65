package u8str

import (
	"github.com/npillmayer/u8str/casemap"
)

// ToUpper returns a new String with every character of s mapped to upper case
// by casemap.Default.
func (s *String) ToUpper() *String {
	u, err := s.ToUpperWith(casemap.Default)
	assert(err == nil, "ToUpper: default case mapping failed")
	return u
}

// ToLower returns a new String with every character of s mapped to lower case
// by casemap.Default.
func (s *String) ToLower() *String {
	l, err := s.ToLowerWith(casemap.Default)
	assert(err == nil, "ToLower: default case mapping failed")
	return l
}

// Casefold returns a new String holding the NFKC casefolded text of s, as
// produced by casemap.Default.
func (s *String) Casefold() *String {
	f, err := s.CasefoldWith(casemap.Default)
	assert(err == nil, "Casefold: default casefolding failed")
	return f
}

// ToUpperWith is like ToUpper, but uses mapper m.
func (s *String) ToUpperWith(m casemap.Mapper) (*String, error) {
	return s.mapChars(m.ToUpper)
}

// ToLowerWith is like ToLower, but uses mapper m.
func (s *String) ToLowerWith(m casemap.Mapper) (*String, error) {
	return s.mapChars(m.ToLower)
}

// CasefoldWith is like Casefold, but uses mapper m. The String adopts the
// allocation returned by m if it has room for the sentinel.
func (s *String) CasefoldWith(m casemap.Mapper) (*String, error) {
	folded := m.Casefold(s.Bytes())
	if err := checkText(folded); err != nil {
		return nil, err
	}
	if cap(folded) > len(folded) {
		return Adopt(folded)
	}
	out := WithCapacity(len(folded))
	return out, out.appendBytes(folded)
}

func (s *String) mapChars(mapping func(rune) rune) (*String, error) {
	out := WithCapacity(s.Len())
	for _, c := range s.All() {
		if err := out.InsertScalar(mapping(c)); err != nil {
			return nil, err
		}
	}
	return out, nil
}
