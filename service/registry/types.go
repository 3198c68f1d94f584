// Package registry reads string values from the Windows registry.
//
// Every failure is classified into one of the sentinel errors below so that
// callers can either branch on the kind (Lookup) or collapse it to a plain
// boolean (KeyExists, ReadValue).
package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Root identifies a predefined registry hive.
type Root int

const (
	LocalMachine Root = iota
	CurrentUser
)

func (r Root) String() string {
	switch r {
	case LocalMachine:
		return "HKLM"
	case CurrentUser:
		return "HKCU"
	default:
		return fmt.Sprintf("Root(%d)", int(r))
	}
}

// View selects which WOW64 registry view a key is opened in.
type View int

const (
	// View64 opens the 64-bit view (KEY_WOW64_64KEY).
	View64 View = iota
	// View32 opens the 32-bit view (KEY_WOW64_32KEY).
	View32
	// ViewNative lets the OS pick the view of the calling process.
	ViewNative
)

func (v View) String() string {
	switch v {
	case View64:
		return "64"
	case View32:
		return "32"
	case ViewNative:
		return "native"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// ParseView parses a config value into a View. Empty means View64.
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "64":
		return View64, nil
	case "32":
		return View32, nil
	case "native":
		return ViewNative, nil
	default:
		return 0, fmt.Errorf("unknown registry view %q (want 64, 32 or native)", s)
	}
}

// Key addresses a registry key.
type Key struct {
	Root Root
	Path string
	View View
}

func (k Key) String() string {
	return k.Root.String() + `\` + k.Path
}

var (
	ErrKeyNotFound   = errors.New("registry key not found")
	ErrValueNotFound = errors.New("registry value not found")
	ErrAccessDenied  = errors.New("registry access denied")
	ErrWrongType     = errors.New("registry value is not a string")
	ErrUnsupported   = errors.New("registry is not available on this platform")
)

// Kind returns a short label for a classified registry error.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrKeyNotFound):
		return "key_not_found"
	case errors.Is(err, ErrValueNotFound):
		return "value_not_found"
	case errors.Is(err, ErrAccessDenied):
		return "access_denied"
	case errors.Is(err, ErrWrongType):
		return "wrong_type"
	case errors.Is(err, ErrUnsupported):
		return "unsupported"
	default:
		return "unknown"
	}
}

// KeyOpener is the platform registry API used by the service.
// Implementations return errors wrapping the sentinel errors of this package.
type KeyOpener interface {
	OpenKey(key Key) (KeyReader, error)
}

// KeyReader is an open registry key.
type KeyReader interface {
	GetStringValue(name string) (string, error)
	Close() error
}

type service struct {
	opener            KeyOpener
	logger            *slog.Logger
	unsupportedLogged bool
}

// Service is the interface for the registry probe.
type Service interface {
	KeyExists(key Key) bool
	ReadValue(key Key, name string) (string, bool)
	Lookup(key Key, name string) (string, error)
}
