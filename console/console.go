/*
Package console prepares a terminal for UTF-8 output.

On most platforms terminals render UTF-8 out of the box. Windows consoles
default to a legacy code page and have to be switched to UTF-8 (code page
65001) before any output occurs. Setup does this and reports
ErrNoUTF8Terminal if the console refuses.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/u8str"
	"golang.org/x/term"
)

// ConsoleError is an error type for the console package.
type ConsoleError string

func (e ConsoleError) Error() string {
	return string(e)
}

// ErrNoUTF8Terminal is returned by Setup if the terminal cannot be switched
// to UTF-8.
const ErrNoUTF8Terminal = ConsoleError("A UTF-8 compatible terminal is required")

// UTF8CodePage is the Windows code page identifier for UTF-8.
const UTF8CodePage = 65001

// Setup switches the console to UTF-8 input and output, where the platform
// requires it. It has to be called before any output occurs.
func Setup() error {
	if err := setupCodePage(); err != nil {
		tracer().Errorf("console: %v", err)
		return err
	}
	return nil
}

// IsTerminal reports whether stdout is connected to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// DefaultLineWidth is the line width assumed if stdout is not a terminal.
const DefaultLineWidth = 65

// LineWidth returns the number of columns of the terminal connected to stdout.
// It returns DefaultLineWidth if stdout is not a terminal or its size is
// unknown.
func LineWidth() int {
	if !IsTerminal() {
		return DefaultLineWidth
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultLineWidth
	}
	tracer().P("console", "stdout").Debugf("terminal width is %d columns", w)
	return w
}

func tracer() tracing.Trace {
	return u8str.T()
}
