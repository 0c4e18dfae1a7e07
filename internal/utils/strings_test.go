// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package utils

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "short", TruncateWithEllipsis("short", 10))
	assert.Equal(t, "long st...", TruncateWithEllipsis("long string here", 10))
	assert.Equal(t, "...", TruncateWithEllipsis("anything", 3))
	assert.Equal(t, "...", TruncateWithEllipsis("anything", 0))

	// Wide runes count by display width, not rune count.
	truncated := TruncateWithEllipsis("⏳ Loading resources from everywhere", 12)
	assert.LessOrEqual(t, lipgloss.Width(truncated), 12)
	assert.Contains(t, truncated, "...")
}

func TestPadToWidth(t *testing.T) {
	assert.Equal(t, "ab   ", PadToWidth("ab", 5))
	assert.Equal(t, "abcdef", PadToWidth("abcdef", 5))
	assert.Equal(t, "     ", PadToWidth("", 5))

	// Padding is computed from display width.
	padded := PadToWidth("⏳", 4)
	assert.Equal(t, 4, lipgloss.Width(padded))
}
