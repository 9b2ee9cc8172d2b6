// ============================================================================
// calword - Calendar & Ordinal Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version information for CLI and server
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Application version
	Application = "0.1.0"

	// API version of the calendar gRPC service
	API = "v1"

	// Schema version of the computation journal
	JournalSchema = "2"
)

// Build metadata, set with -ldflags "-X github.com/msto63/calword/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	API       string `json:"api"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Version:   Application,
		API:       API,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a single-line summary
func (i Info) String() string {
	return fmt.Sprintf("calword %s (api %s, commit %s, built %s, %s, %s)",
		i.Version, i.API, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
