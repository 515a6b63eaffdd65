package u8str

import (
	"io"
)

// minRead is the minimum number of bytes ReadFrom makes room for.
const minRead = 512

// ReadFrom appends everything r delivers to s, until io.EOF. It returns the
// number of bytes read. Bytes are taken verbatim and are not checked for
// well-formed UTF-8.
//
// ReadFrom fills the existing capacity of s first. A String pre-sized to the
// length of the input therefore does not re-allocate.
func (s *String) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		if s.n+1 >= len(s.buf) {
			// no free space left: probe for more input before growing
			var probe [1]byte
			m, err := r.Read(probe[:])
			if m > 0 {
				if gerr := s.Grow(minRead); gerr != nil {
					return total, gerr
				}
				s.buf[s.n] = probe[0]
				s.n++
				s.buf[s.n] = 0
				total++
			}
			if err == io.EOF {
				return total, nil
			} else if err != nil {
				return total, err
			}
			continue
		}
		m, err := r.Read(s.buf[s.n : len(s.buf)-1])
		s.n += m
		s.buf[s.n] = 0
		total += int64(m)
		if err == io.EOF {
			return total, nil
		} else if err != nil {
			return total, err
		}
	}
}

// WriteTo writes the text of s to w, excluding the sentinel.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

// Reader returns a reader for the bytes of s.
func (s *String) Reader() io.Reader {
	return &stringReader{text: s.Bytes()}
}

type stringReader struct {
	text   []byte
	cursor int
}

func (sr *stringReader) Read(p []byte) (n int, err error) {
	if sr.cursor >= len(sr.text) {
		return 0, io.EOF
	}
	n = copy(p, sr.text[sr.cursor:])
	sr.cursor += n
	return n, nil
}
