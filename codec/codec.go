package codec

import "io"

// MaxScalar is the largest valid Unicode scalar value.
const MaxScalar = 0x10FFFF

// UTFMax is the maximum number of bytes of a UTF-8 encoded character.
const UTFMax = 4

// CharSize returns the number of bytes of the UTF-8 character starting with
// lead byte b. It looks at the high bits of b only and does not validate
// continuation bytes.
func CharSize(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	}
	return 4
}

// ScalarSize returns the number of bytes scalar c occupies when encoded.
// Values outside [0, 0x10FFFF] result in ErrInvalidScalar.
func ScalarSize(c rune) (int, error) {
	switch {
	case c < 0:
		return 0, ErrInvalidScalar
	case c < 0x80:
		return 1, nil
	case c < 0x800:
		return 2, nil
	case c < 0x10000:
		return 3, nil
	case c <= MaxScalar:
		return 4, nil
	}
	return 0, ErrInvalidScalar
}

// Decode reconstructs the scalar value encoded at the start of b.
//
// The number of bytes to consume is taken from the lead byte. If b is empty or
// shorter than that, Decode returns ErrTruncatedEncoding.
func Decode(b []byte) (rune, error) {
	if len(b) == 0 {
		return 0, ErrTruncatedEncoding
	}
	lead := rune(b[0])
	size := CharSize(b[0])
	if len(b) < size {
		return 0, ErrTruncatedEncoding
	}
	switch size {
	case 1:
		return lead, nil
	case 2:
		return (lead&0x1F)<<6 | rune(b[1]&0x3F), nil
	case 3:
		return (lead&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), nil
	}
	return (lead&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F), nil
}

// Encode writes the UTF-8 encoding of c into out and returns the number of
// bytes written. out must have room for ScalarSize(c) bytes, otherwise
// io.ErrShortBuffer is returned and out is left untouched.
func Encode(c rune, out []byte) (int, error) {
	size, err := ScalarSize(c)
	if err != nil {
		return 0, err
	}
	if len(out) < size {
		return 0, io.ErrShortBuffer
	}
	put(c, size, out)
	return size, nil
}

// AppendScalar appends the UTF-8 encoding of c to dst and returns the
// extended slice.
func AppendScalar(dst []byte, c rune) ([]byte, error) {
	size, err := ScalarSize(c)
	if err != nil {
		return dst, err
	}
	var tmp [UTFMax]byte
	put(c, size, tmp[:])
	return append(dst, tmp[:size]...), nil
}

// put does the bit-packing for a scalar of known size.
func put(c rune, size int, out []byte) {
	switch size {
	case 1:
		out[0] = byte(c)
	case 2:
		out[0] = 0xC0 | byte(c>>6)
		out[1] = 0x80 | byte(c&0x3F)
	case 3:
		out[0] = 0xE0 | byte(c>>12)
		out[1] = 0x80 | byte((c>>6)&0x3F)
		out[2] = 0x80 | byte(c&0x3F)
	default:
		out[0] = 0xF0 | byte(c>>18)
		out[1] = 0x80 | byte((c>>12)&0x3F)
		out[2] = 0x80 | byte((c>>6)&0x3F)
		out[3] = 0x80 | byte(c&0x3F)
	}
}
