// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AppInfo carries build-time metadata and the process start time.
//
// Build values are injected by linker flags during CI/CD and are printed at
// startup. GET /health reports the configured APP_VERSION instead.
type AppInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string

	startedAt time.Time
}

// NewAppInfo constructs [AppInfo] from the provided build metadata and
// records the current time as the process start time.
func NewAppInfo(buildVersion, buildDate, buildCommit string) AppInfo {
	return AppInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
		startedAt:    time.Now(),
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppInfo) BuildVersion() string {
	return orNA(a.buildVersion)
}

// BuildDate returns the build timestamp string.
func (a AppInfo) BuildDate() string {
	return orNA(a.buildDate)
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppInfo) BuildCommit() string {
	return orNA(a.buildCommit)
}

// StartedAt returns the time the process started serving.
func (a AppInfo) StartedAt() time.Time {
	return a.startedAt
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
