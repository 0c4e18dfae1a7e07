package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sequel-tui/sequel/internal/tui/styles"
)

// LoadingProgress is the centered panel shown while resources load:
// a spinner, a status line and a progress bar.
type LoadingProgress struct {
	spinner      spinner.Model
	progress     progress.Model
	statusText   string
	progressText string
	percent      float64
	width        int
}

// NewLoadingProgress creates the panel in its initial "Loading..." state.
func NewLoadingProgress() *LoadingProgress {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.LoadingStyle

	return &LoadingProgress{
		spinner:    sp,
		progress:   progress.New(progress.WithDefaultGradient()),
		statusText: "Loading...",
	}
}

// Init starts the spinner animation.
func (l *LoadingProgress) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner; other messages are ignored.
func (l *LoadingProgress) Update(msg tea.Msg) tea.Cmd {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(tick)
		return cmd
	}
	return nil
}

// SetWidth sets the width the panel centers itself in.
func (l *LoadingProgress) SetWidth(width int) {
	l.width = width
	inner := width / 2
	if inner < 20 {
		inner = 20
	}
	l.progress.Width = inner
}

// UpdateProgress reports completed/total items and a status message.
func (l *LoadingProgress) UpdateProgress(current, total int, message string) {
	l.statusText = message
	if total > 0 {
		l.percent = float64(current) / float64(total)
		l.progressText = fmt.Sprintf("%d / %d", current, total)
	} else {
		l.percent = 0
		l.progressText = ""
	}
}

// View renders the bordered panel.
func (l *LoadingProgress) View() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		l.spinner.View()+" "+styles.LoadingStyle.Render(l.statusText),
		l.progressText,
		l.progress.ViewAs(l.percent),
	)

	panel := styles.OverlayStyle.Render(body)
	if l.width <= 0 {
		return panel
	}
	return lipgloss.PlaceHorizontal(l.width, lipgloss.Center, panel)
}
