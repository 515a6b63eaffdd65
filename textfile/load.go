package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/npillmayer/u8str"
	"github.com/npillmayer/u8str/codec"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// Load reads a file, which should be a text file, into a new string.
//
// The string is allocated to the size of the file up front, thus loading
// requires a single allocation. Errors concerning the file are wrapped with
// u8str.ErrIO.
func Load(name string) (*u8str.String, error) {
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	s := u8str.WithCapacity(int(tf.info.Size()))
	n, err := s.ReadFrom(tf.file)
	if err != nil {
		tracer().Errorf("textfile: error reading %q: %v", name, err)
		return nil, ioError("reading", name, err)
	}
	tracer().Debugf("textfile: loaded %d bytes from %q", n, name)
	return s, nil
}

// Store writes the exact bytes of s to file name, creating or truncating it.
func Store(s *u8str.String, name string) error {
	f, err := os.Create(name)
	if err != nil {
		tracer().Errorf("textfile: cannot open %q for writing: %v", name, err)
		return ioError("opening", name, err)
	}
	_, err = s.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return ioError("writing", name, err)
	}
	tracer().Debugf("textfile: stored %d bytes to %q", s.Len(), name)
	return nil
}

// Chars returns an iterator over the characters of file name, reading one
// UTF-8 character at a time. Each character is yielded as a byte slice, which
// is only valid until the next iteration step.
//
// Errors are yielded with a nil slice and end the iteration. A file which ends
// in the middle of a character yields codec.ErrTruncatedEncoding.
func Chars(name string) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		tf, err := openFile(name)
		if err != nil {
			yield(nil, err)
			return
		}
		defer tf.file.Close()
		var buf [codec.UTFMax]byte
		r := bufio.NewReader(tf.file)
		for {
			n, err := codec.ReadChar(r, buf[:])
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(buf[:n], nil) {
				return
			}
		}
	}
}

// textFile represents an OS file which will be loaded as a string.
type textFile struct {
	path string      // file name
	info os.FileInfo // result from Stat(path)
	file *os.File    // file handle
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, ioError("reading", name, err)
	} else if !fi.Mode().IsRegular() {
		return nil, ioError("reading", name, fmt.Errorf("file is not a regular file"))
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, ioError("reading", name, err)
	}
	return &textFile{
		path: name,
		info: fi,
		file: file,
	}, nil
}

func ioError(op, name string, err error) error {
	return fmt.Errorf("%w: error %s file %q: %w", u8str.ErrIO, op, name, err)
}
