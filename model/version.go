// Package model defines the data structures shared across firefox-fact.
package model

import "fmt"

// VersionInfo contains build-time metadata about the binary.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("firefox-fact %s (commit %s, built %s)", v.Version, v.Commit, v.Date)
}
