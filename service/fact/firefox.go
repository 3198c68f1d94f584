package fact

import (
	"context"

	"github.com/thirukguru/firefox-fact/service/registry"
)

const (
	// FirefoxVersion is the name the Firefox version fact is reported under.
	FirefoxVersion = "firefox_version"

	// MozillaKeyPath is where the Mozilla installer records the installed version.
	MozillaKeyPath = `SOFTWARE\Wow6432Node\mozilla.org\Mozilla`
	// CurrentVersionValue holds the version string, e.g. "102.0 (x64 en-US)".
	CurrentVersionValue = "CurrentVersion"
)

// FirefoxOptions locates the Firefox version in the registry.
type FirefoxOptions struct {
	Key       registry.Key
	ValueName string
}

// DefaultFirefoxOptions reads HKLM\SOFTWARE\Wow6432Node\mozilla.org\Mozilla\CurrentVersion
// through the 64-bit view.
func DefaultFirefoxOptions() FirefoxOptions {
	return FirefoxOptions{
		Key: registry.Key{
			Root: registry.LocalMachine,
			Path: MozillaKeyPath,
			View: registry.View64,
		},
		ValueName: CurrentVersionValue,
	}
}

// NewFirefoxVersionFact builds the firefox_version fact, confined to Windows.
func NewFirefoxVersionFact(reg registry.Service, opts FirefoxOptions) Fact {
	return Fact{
		Name:    FirefoxVersion,
		Confine: map[string]string{ConfineOSFamily: "windows"},
		Resolve: func(context.Context) (string, bool) {
			if !reg.KeyExists(opts.Key) {
				return "", false
			}
			return reg.ReadValue(opts.Key, opts.ValueName)
		},
	}
}
