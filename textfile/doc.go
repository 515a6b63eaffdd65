/*
Package textfile provides API helpers to load UTF-8 text files as strings and
to store strings as files.

Files are loaded as a whole and are expected to fit into memory. Content is
taken verbatim: Load does not validate UTF-8, and Store writes the exact
bytes of a string. For processing a file character by character without
loading it, use Chars.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/u8str"
)

// tracer writes to the core tracer of u8str.
func tracer() tracing.Trace {
	return u8str.T()
}
