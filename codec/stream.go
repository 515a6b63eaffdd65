package codec

import (
	"errors"
	"io"
)

// ReadChar reads one UTF-8 character from r into out and returns its size in
// bytes. It reads the lead byte first, then as many continuation bytes as
// the lead byte announces. out must have room for UTFMax bytes.
//
// At a clean end of input ReadChar returns 0, io.EOF. If the input ends in
// the middle of a character, the error is ErrTruncatedEncoding.
func ReadChar(r io.Reader, out []byte) (int, error) {
	if len(out) < UTFMax {
		return 0, io.ErrShortBuffer
	}
	if _, err := io.ReadFull(r, out[:1]); err != nil {
		return 0, err
	}
	size := CharSize(out[0])
	if size > 1 {
		if _, err := io.ReadFull(r, out[1:size]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				tracer().Errorf("codec: input ends in the middle of a %d-byte character", size)
				return 0, ErrTruncatedEncoding
			}
			return 0, err
		}
	}
	return size, nil
}

// ReadScalar reads one UTF-8 character from r and returns its scalar value.
// Errors are the same as for ReadChar.
func ReadScalar(r io.Reader) (rune, error) {
	var tmp [UTFMax]byte
	n, err := ReadChar(r, tmp[:])
	if err != nil {
		return 0, err
	}
	return Decode(tmp[:n])
}

// WriteChar writes the single UTF-8 character at the start of b to w and
// returns the number of bytes written.
func WriteChar(w io.Writer, b []byte) (int, error) {
	if len(b) == 0 {
		return 0, ErrTruncatedEncoding
	}
	size := CharSize(b[0])
	if len(b) < size {
		return 0, ErrTruncatedEncoding
	}
	return w.Write(b[:size])
}

// WriteScalar encodes c and writes it to w.
func WriteScalar(w io.Writer, c rune) (int, error) {
	var tmp [UTFMax]byte
	n, err := Encode(c, tmp[:])
	if err != nil {
		return 0, err
	}
	return WriteChar(w, tmp[:n])
}
