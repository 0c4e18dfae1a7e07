package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sequel-tui/sequel/internal/config"
	"github.com/sequel-tui/sequel/internal/debug"
	"github.com/sequel-tui/sequel/internal/tui/components"
	"github.com/sequel-tui/sequel/internal/tui/keymap"
	"github.com/sequel-tui/sequel/internal/tui/styles"
	"github.com/sequel-tui/sequel/internal/utils"
	"github.com/sequel-tui/sequel/pkg/version"
)

// refreshDoneMsg ends a simulated refresh cycle.
type refreshDoneMsg struct{}

// App is the shell model. It owns the status bar exclusively: every
// project or loading change goes through the bar's setters from here.
type App struct {
	cfg       *config.Config
	keys      keymap.KeyMap
	statusBar *components.StatusBar
	toasts    *components.ToastStack
	loading   *components.LoadingProgress
	showHelp  bool
	isLoading bool
	width     int
	height    int
}

// NewApp creates the shell with an empty status state.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:       cfg,
		keys:      keymap.Default(),
		statusBar: components.NewStatusBar(),
		toasts:    components.NewToastStack(cfg.ToastDuration),
		loading:   components.NewLoadingProgress(),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	a.toasts.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		debug.LogToFilef("APP: window size %dx%d\n", msg.Width, msg.Height)
		a.width = msg.Width
		a.height = msg.Height
		a.statusBar.SetWidth(msg.Width)
		a.loading.SetWidth(msg.Width)
		return a, nil

	case spinner.TickMsg:
		if a.isLoading {
			return a, a.loading.Update(msg)
		}
		return a, nil

	case refreshDoneMsg:
		a.isLoading = false
		a.statusBar.SetLoading(false)
		return a, a.toasts.Push("Refresh complete", components.ToastSuccess)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.showHelp = !a.showHelp
		return a, nil

	case key.Matches(msg, a.keys.Refresh):
		if a.isLoading {
			return a, nil
		}
		debug.LogToFile("APP: refresh requested\n")
		return a, a.startRefresh()
	}

	// Tree navigation keys are advertised but land in a later phase.
	return a, nil
}

// startRefresh flips the loading state and schedules its end. There is no
// data source in this phase, so the cycle is a timed simulation.
func (a *App) startRefresh() tea.Cmd {
	a.isLoading = true
	a.statusBar.SetLoading(true)
	a.loading.UpdateProgress(0, 0, "Refreshing resources...")

	return tea.Batch(
		a.loading.Init(),
		tea.Tick(a.cfg.RefreshDelay, func(time.Time) tea.Msg {
			return refreshDoneMsg{}
		}),
	)
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}

	var body string
	switch {
	case a.showHelp:
		body = a.helpView()
	case a.isLoading:
		body = a.loading.View()
	default:
		body = a.welcomeView()
	}

	if toasts := a.toasts.View(); toasts != "" {
		body = toasts + "\n" + body
	}

	contentHeight := a.height - 1
	if contentHeight < 0 {
		contentHeight = 0
	}
	content := lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(body)

	return content + "\n" + a.statusBar.Render()
}

func (a *App) welcomeView() string {
	title := styles.TitleStyle.Render(fmt.Sprintf("Sequel v%s", version.GetVersion()))
	notice := styles.HelpStyle.Render("Resource browsing arrives in a later phase. Press ? for keys.")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", notice)
}

func (a *App) helpView() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for _, group := range a.keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				styles.HelpKeyStyle.Render(utils.PadToWidth(h.Key, 10)),
				styles.HelpStyle.Render(h.Desc)))
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.HelpStyle.Render("  Press ? to close help"))
	return b.String()
}

// Run starts the Bubble Tea program in the alternate screen.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
