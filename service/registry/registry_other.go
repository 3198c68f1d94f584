//go:build !windows

package registry

import "runtime"

type platformOpener struct{}

// OpenKey always fails: there is no registry outside Windows.
func (platformOpener) OpenKey(Key) (KeyReader, error) {
	return nil, &unsupportedError{goos: runtime.GOOS}
}

type unsupportedError struct {
	goos string
}

func (e *unsupportedError) Error() string {
	return "win32 registry API not available on " + e.goos
}

func (e *unsupportedError) Unwrap() error {
	return ErrUnsupported
}
