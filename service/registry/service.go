package registry

import (
	"errors"
	"fmt"
	"log/slog"
)

// NewService creates a registry probe backed by the platform registry API.
func NewService(logger *slog.Logger) Service {
	return NewServiceWithOpener(platformOpener{}, logger)
}

// NewServiceWithOpener creates a registry probe backed by the given opener.
func NewServiceWithOpener(opener KeyOpener, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		opener: opener,
		logger: logger,
	}
}

// KeyExists reports whether key can be opened for reading.
func (s *service) KeyExists(key Key) bool {
	k, err := s.open(key)
	if err != nil {
		s.logger.Debug("registry key not readable", "key", key.String(), "kind", Kind(err), "error", err)
		return false
	}
	_ = k.Close()

	return true
}

// ReadValue returns the named string value under key, or false when it cannot be read.
func (s *service) ReadValue(key Key, name string) (string, bool) {
	value, err := s.Lookup(key, name)
	if err != nil {
		s.logger.Debug("registry value not readable", "key", key.String(), "value", name, "kind", Kind(err), "error", err)
		return "", false
	}

	return value, true
}

// Lookup reads the named string value under key and keeps the failure kind.
func (s *service) Lookup(key Key, name string) (string, error) {
	k, err := s.open(key)
	if err != nil {
		return "", err
	}
	defer k.Close()

	value, err := k.GetStringValue(name)
	if err != nil {
		return "", fmt.Errorf("read %s\\%s: %w", key, name, err)
	}

	return value, nil
}

func (s *service) open(key Key) (KeyReader, error) {
	if s.opener == nil {
		return nil, ErrUnsupported
	}

	k, err := s.opener.OpenKey(key)
	if err != nil {
		if errors.Is(err, ErrUnsupported) && !s.unsupportedLogged {
			s.unsupportedLogged = true
			s.logger.Debug("cannot load registry API", "error", err)
		}
		return nil, fmt.Errorf("open %s: %w", key, err)
	}

	return k, nil
}
