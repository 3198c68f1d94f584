//go:build !windows

package console

import "os"

// EnableVirtualTerminal reports whether f is a terminal; ANSI escapes need no setup outside Windows.
func EnableVirtualTerminal(f *os.File) bool {
	return IsTerminal(f)
}
