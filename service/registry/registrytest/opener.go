// Package registrytest provides an in-memory registry for tests.
package registrytest

import (
	"fmt"

	"github.com/thirukguru/firefox-fact/service/registry"
)

// Opener is an in-memory registry.KeyOpener.
type Opener struct {
	keys         map[string]map[string]any
	deniedKeys   map[string]bool
	deniedValues map[string]bool

	// Opened records every key path passed to OpenKey, in order.
	Opened []string
	// Open counts keys opened and not yet closed.
	Open int
}

// NewOpener returns an empty registry.
func NewOpener() *Opener {
	return &Opener{
		keys:         map[string]map[string]any{},
		deniedKeys:   map[string]bool{},
		deniedValues: map[string]bool{},
	}
}

// AddKey creates an empty key.
func (o *Opener) AddKey(key registry.Key) *Opener {
	if _, ok := o.keys[key.String()]; !ok {
		o.keys[key.String()] = map[string]any{}
	}
	return o
}

// SetValue creates key if needed and stores a value under it.
// Values other than strings are reported as the wrong type on read.
func (o *Opener) SetValue(key registry.Key, name string, value any) *Opener {
	o.AddKey(key)
	o.keys[key.String()][name] = value
	return o
}

// DenyKey makes OpenKey fail with access denied.
func (o *Opener) DenyKey(key registry.Key) *Opener {
	o.deniedKeys[key.String()] = true
	return o
}

// DenyValue makes reading a single value fail with access denied.
func (o *Opener) DenyValue(key registry.Key, name string) *Opener {
	o.deniedValues[key.String()+`\`+name] = true
	return o
}

func (o *Opener) OpenKey(key registry.Key) (registry.KeyReader, error) {
	path := key.String()
	o.Opened = append(o.Opened, path)

	if o.deniedKeys[path] {
		return nil, fmt.Errorf("%s: %w", path, registry.ErrAccessDenied)
	}
	values, ok := o.keys[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, registry.ErrKeyNotFound)
	}

	o.Open++
	return &reader{opener: o, path: path, values: values}, nil
}

type reader struct {
	opener *Opener
	path   string
	values map[string]any
	closed bool
}

func (r *reader) GetStringValue(name string) (string, error) {
	if r.opener.deniedValues[r.path+`\`+name] {
		return "", fmt.Errorf("%s: %w", name, registry.ErrAccessDenied)
	}
	v, ok := r.values[name]
	if !ok {
		return "", fmt.Errorf("%s: %w", name, registry.ErrValueNotFound)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s holds %T: %w", name, v, registry.ErrWrongType)
	}
	return s, nil
}

func (r *reader) Close() error {
	if !r.closed {
		r.closed = true
		r.opener.Open--
	}
	return nil
}
