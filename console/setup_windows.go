//go:build windows

package console

import (
	"golang.org/x/sys/windows"
)

var (
	kernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procIsValidCodePage    = kernel32.NewProc("IsValidCodePage")
	procSetConsoleCP       = kernel32.NewProc("SetConsoleCP")
	procSetConsoleOutputCP = kernel32.NewProc("SetConsoleOutputCP")
)

func setupCodePage() error {
	if ok, _, _ := procIsValidCodePage.Call(UTF8CodePage); ok == 0 {
		return ErrNoUTF8Terminal
	}
	if ok, _, _ := procSetConsoleCP.Call(UTF8CodePage); ok == 0 {
		return ErrNoUTF8Terminal
	}
	if ok, _, _ := procSetConsoleOutputCP.Call(UTF8CodePage); ok == 0 {
		return ErrNoUTF8Terminal
	}
	tracer().Debugf("console: switched to code page %d", UTF8CodePage)
	return nil
}
