package codec

// IsWhitespace reports whether c is one of the Unicode whitespace
// characters (property White_Space).
func IsWhitespace(c rune) bool {
	return (c >= 0x0009 && c <= 0x000D) ||
		c == 0x0020 ||
		c == 0x0085 ||
		c == 0x00A0 ||
		c == 0x1680 ||
		(c >= 0x2000 && c <= 0x200A) ||
		c == 0x2028 ||
		c == 0x2029 ||
		c == 0x202F ||
		c == 0x205F ||
		c == 0x3000
}

// IsWhitespaceAt reports whether the character at the start of b is
// whitespace. An empty or truncated b is not whitespace.
func IsWhitespaceAt(b []byte) bool {
	c, err := Decode(b)
	return err == nil && IsWhitespace(c)
}
