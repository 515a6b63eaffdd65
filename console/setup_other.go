//go:build !windows

package console

// Terminals on this platform are expected to be configured for UTF-8.
func setupCodePage() error {
	return nil
}
