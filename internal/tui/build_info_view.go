// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-account-keeper/models"
)

// renderBuildInfoWindow shows the client build. serverVersion is empty in
// local mode and the line is left out.
func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Application: Account Keeper\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\nDate: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\nCommit: ")
	b.WriteString(info.BuildCommit())
	if serverVersion != "" {
		b.WriteString("\nServer: ")
		b.WriteString(serverVersion)
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}
