/*
Package codec converts between UTF-8 byte sequences and Unicode scalar values.

All functions in this package are stateless and operate on borrowed byte
slices; none of them retains a slice beyond the call. Scalar values are
represented as Go runes in the range [0, 0x10FFFF].

Byte sequences are treated like C strings: scanning functions stop either at
the end of the slice or at the first zero byte, whichever comes first. This
allows clients to hand in buffers which carry a trailing sentinel byte.

Apart from CharSize (which classifies a lead byte by its high bits only), the
codec does not validate continuation bytes. Input is trusted to be well-formed
UTF-8; clients with untrusted input should check it with utf8.Valid first.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package codec

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracer traces to the global core tracer, if one is configured.
func tracer() tracing.Trace {
	if t := gtrace.CoreTracer; t != nil {
		return t
	}
	return fallback
}

var fallback = quietTracer()

func quietTracer() tracing.Trace {
	t := gologadapter.New()
	t.SetTraceLevel(tracing.LevelError)
	return t
}

// CodecError is an error type for the codec package.
type CodecError string

func (e CodecError) Error() string {
	return string(e)
}

// ErrInvalidScalar is flagged for scalar values outside [0, 0x10FFFF].
const ErrInvalidScalar = CodecError("scalar value out of UTF-8 range (must be 0 - 0x10FFFF)")

// ErrIndexOutOfRange is flagged whenever a character index is greater than
// the number of characters of a byte sequence.
const ErrIndexOutOfRange = CodecError("character index out of range")

// ErrTruncatedEncoding is flagged if a byte sequence or byte stream ends in
// the middle of a multi-byte character.
const ErrTruncatedEncoding = CodecError("unexpected end of input in the middle of a UTF-8 character")

// IndexError reports an out-of-range character index together with the
// maximum index which would have been valid.
//
// IndexError matches ErrIndexOutOfRange with errors.Is.
type IndexError struct {
	Index int // requested character index
	Max   int // maximum valid character index found while scanning
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("character index %d out of range, max index is %d", e.Index, e.Max)
}

// Is makes IndexError match ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
