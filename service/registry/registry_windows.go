//go:build windows

package registry

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
	winreg "golang.org/x/sys/windows/registry"
)

type platformOpener struct{}

// OpenKey opens key with KEY_READ plus the WOW64 flag of its view.
func (platformOpener) OpenKey(key Key) (KeyReader, error) {
	root, err := rootKey(key.Root)
	if err != nil {
		return nil, err
	}

	k, err := winreg.OpenKey(root, key.Path, winreg.READ|viewAccess(key.View))
	if err != nil {
		return nil, classify(err, ErrKeyNotFound)
	}

	return &windowsKey{key: k}, nil
}

type windowsKey struct {
	key winreg.Key
}

// GetStringValue reads a REG_SZ or REG_EXPAND_SZ value.
func (w *windowsKey) GetStringValue(name string) (string, error) {
	value, _, err := w.key.GetStringValue(name)
	if err != nil {
		return "", classify(err, ErrValueNotFound)
	}

	return value, nil
}

func (w *windowsKey) Close() error {
	return w.key.Close()
}

func rootKey(r Root) (winreg.Key, error) {
	switch r {
	case LocalMachine:
		return winreg.LOCAL_MACHINE, nil
	case CurrentUser:
		return winreg.CURRENT_USER, nil
	default:
		return 0, fmt.Errorf("unsupported registry root %s: %w", r, ErrKeyNotFound)
	}
}

func viewAccess(v View) uint32 {
	switch v {
	case View64:
		return winreg.WOW64_64KEY
	case View32:
		return winreg.WOW64_32KEY
	default:
		return 0
	}
}

func classify(err error, notFound error) error {
	switch {
	case errors.Is(err, winreg.ErrNotExist), errors.Is(err, windows.ERROR_PATH_NOT_FOUND):
		return fmt.Errorf("%w: %w", notFound, err)
	case errors.Is(err, windows.ERROR_ACCESS_DENIED):
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	case errors.Is(err, winreg.ErrUnexpectedType):
		return fmt.Errorf("%w: %w", ErrWrongType, err)
	default:
		return err
	}
}
