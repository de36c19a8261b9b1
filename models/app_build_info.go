// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// NotAvailable stands in for build metadata that was not injected at link
// time.
const NotAvailable = "N/A"

// AppBuildInfo is the version metadata a binary was linked with. The client
// also records the version the server reported on /version/, once known.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string

	// ServerVersion is empty until the server was asked.
	ServerVersion string
}

// NewAppBuildInfo trims the linker-provided values and replaces missing ones
// with [NotAvailable].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// WithServerVersion returns a copy that carries the server's version.
func (a AppBuildInfo) WithServerVersion(version string) AppBuildInfo {
	a.ServerVersion = strings.TrimSpace(version)
	return a
}

// HasVersion reports whether a real version was linked in.
func (a AppBuildInfo) HasVersion() bool {
	return a.Version != "" && a.Version != NotAvailable
}

// String is the startup banner both binaries print.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		orNotAvailable(a.Version), orNotAvailable(a.Date), orNotAvailable(a.Commit))
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return NotAvailable
	}
	return v
}
