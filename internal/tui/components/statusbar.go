package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sequel-tui/sequel/internal/tui/styles"
	"github.com/sequel-tui/sequel/internal/utils"
)

const (
	// segmentSeparator joins the project, loading and shortcut segments.
	segmentSeparator = "  |  "
	// shortcutSeparator joins the individual shortcut labels.
	shortcutSeparator = " | "

	loadingSegment = "⏳ Loading..."
	readyFallback  = "Ready"
)

// shortcutLabels is the fixed hint list, in display order.
var shortcutLabels = []string{
	"Quit: q",
	"Refresh: r",
	"Help: ?",
	"Navigate: j/k/↑↓",
	"Collapse/Expand: h/l/←→",
	"Top/Bottom: g/G",
}

// StatusBar maintains the selected project and loading flag and renders
// them as a single line. The line is recomputed on every mutation and is
// a pure function of the held state.
type StatusBar struct {
	project       string
	hasProject    bool
	loading       bool
	showShortcuts bool
	width         int
	text          string
	style         lipgloss.Style
}

// NewStatusBar creates a status bar with no project, not loading, and the
// shortcut hints visible.
func NewStatusBar() *StatusBar {
	s := &StatusBar{
		showShortcuts: true,
		style:         styles.StatusBarStyle,
	}
	s.recompute()
	return s
}

// SetProject sets the currently selected project. An empty name is kept
// and rendered as an empty project label; use ClearProject to remove the
// segment entirely.
func (s *StatusBar) SetProject(name string) *StatusBar {
	s.project = name
	s.hasProject = true
	s.recompute()
	return s
}

// ClearProject removes the selected project.
func (s *StatusBar) ClearProject() *StatusBar {
	s.project = ""
	s.hasProject = false
	s.recompute()
	return s
}

// SetLoading sets the loading indicator.
func (s *StatusBar) SetLoading(loading bool) *StatusBar {
	s.loading = loading
	s.recompute()
	return s
}

// SetShowShortcuts toggles the shortcut hint segment. With the hints
// hidden, no project and not loading, the bar falls back to "Ready".
func (s *StatusBar) SetShowShortcuts(show bool) *StatusBar {
	s.showShortcuts = show
	s.recompute()
	return s
}

// SetWidth sets the render width. Width affects Render only, never the
// status text itself.
func (s *StatusBar) SetWidth(width int) *StatusBar {
	s.width = width
	return s
}

// StatusText returns the current unstyled status line.
func (s *StatusBar) StatusText() string {
	return s.text
}

func (s *StatusBar) recompute() {
	s.text = buildStatusText(s.project, s.hasProject, s.loading, s.showShortcuts)
}

// buildStatusText assembles the status line from its segments.
func buildStatusText(project string, hasProject, loading, showShortcuts bool) string {
	var parts []string

	if hasProject {
		parts = append(parts, "Project: "+project)
	}

	if loading {
		parts = append(parts, loadingSegment)
	}

	if showShortcuts {
		parts = append(parts, strings.Join(shortcutLabels, shortcutSeparator))
	}

	if len(parts) == 0 {
		return readyFallback
	}
	return strings.Join(parts, segmentSeparator)
}

// Render renders the status line padded or truncated to the current width.
func (s *StatusBar) Render() string {
	if s.width <= 0 {
		return ""
	}

	content := s.text
	if lipgloss.Width(content) > s.width {
		content = utils.TruncateWithEllipsis(content, s.width)
	}
	content = utils.PadToWidth(content, s.width)

	return s.style.
		Width(s.width).
		MaxWidth(s.width).
		MaxHeight(1).
		Render(content)
}
