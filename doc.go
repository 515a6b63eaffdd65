/*
Package u8str offers a growable, mutable UTF-8 string buffer which is
addressed by character position instead of byte position.

Strings

A String keeps its text as packed UTF-8 bytes, without an intermediate
representation as runes. Positions in the API are character indices, i.e.
ordinal positions of Unicode scalar values. One character is one scalar value,
not an extended grapheme cluster.

	s := u8str.FromString("hello😊world")
	s.InsertStringAt(0, "llama💬")   // llama💬hello😊world
	s.InsertFmtAt(6, "%d, ", 100)    // llama💬100, hello😊world

Converting a character index to a byte offset requires a scan from the start
of the text, as UTF-8 characters differ in width. Inserting or removing in the
middle of a String moves the tail of the text. Performance characteristics
are therefore:

	Operation     |   String
	--------------+----------
	Append        |   O(1) amortized per byte
	CharAt        |   O(i)
	Insert at i   |   O(n)
	Remove at i   |   O(n)
	Iterate       |   O(n)

Strings target small to medium sized texts. For large documents with many
edits, a rope or gap buffer is the better choice.

Storage

A String owns a single allocation. The byte following the text is always a
zero byte (the sentinel), which allows handing the text to APIs which expect
zero-terminated strings. Capacity grows by doubling, starting from
DefaultCapacity.

Errors

Operations report failure by returning an error; no operation aborts. A
failing mutator leaves the String unchanged.

Concurrency

Strings are not safe for concurrent use. A String has exactly one owner at a
time; ownership may be handed over with Release, Adopt and Move.

Encoding and decoding of single characters is done by package codec, case
mapping by package casemap.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package u8str

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/u8str/codec"
)

// T traces to a global core-tracer. If no core-tracer has been configured,
// T falls back to a Go logger which reports errors only.
func T() tracing.Trace {
	if t := gtrace.CoreTracer; t != nil {
		return t
	}
	return fallback
}

var fallback = func() tracing.Trace {
	t := gologadapter.New()
	t.SetTraceLevel(tracing.LevelError)
	return t
}()

// StringError is an error type for the u8str module
type StringError string

func (e StringError) Error() string {
	return string(e)
}

// ErrOutOfMemory is flagged if growing a String would exceed MaxCapacity or
// the allocation fails.
const ErrOutOfMemory = StringError("out of memory while growing string allocation")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = StringError("illegal arguments")

// ErrFormat is flagged if formatted output could not be rendered into a String.
const ErrFormat = StringError("cannot render formatted text")

// ErrIO is flagged, wrapping the underlying error, if a file cannot be read
// or written.
const ErrIO = StringError("I/O error")

// Errors of the codec layer, re-exported for convenience.
const (
	ErrInvalidScalar     = codec.ErrInvalidScalar
	ErrIndexOutOfRange   = codec.ErrIndexOutOfRange
	ErrTruncatedEncoding = codec.ErrTruncatedEncoding
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
