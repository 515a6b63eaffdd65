/*
Package metrics provides some pre-manufactured metrics on texts.

Metrics are applied to a range of characters [i, j) of a u8str.String.
Positions in results are character indices as well.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/u8str"
)

// tracer writes to the core tracer of u8str.
func tracer() tracing.Trace {
	return u8str.T()
}
