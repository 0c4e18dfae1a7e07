// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package utils

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TruncateWithEllipsis truncates a string to fit within maxWidth using display width (handles unicode/emoji properly).
// This should be used for terminal display where visual width matters.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	// Use runes to handle unicode properly when truncating
	runes := []rune(s)
	for i := len(runes); i > 0; i-- {
		truncated := string(runes[:i]) + "..."
		if lipgloss.Width(truncated) <= maxWidth {
			return truncated
		}
	}
	return "..."
}

// PadToWidth pads s with trailing spaces up to width display columns.
// Strings already at or past width are returned unchanged.
func PadToWidth(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
