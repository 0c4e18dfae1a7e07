package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sequel-tui/sequel/internal/config"
	"github.com/sequel-tui/sequel/internal/debug"
	"github.com/sequel-tui/sequel/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive Terminal User Interface",
	Long: `Launch the Sequel TUI shell.

The shell provides:
- A status bar with the selected project, loading state and key hints
- Toast notifications and a loading indicator
- Vim-style keybindings (the resource tree arrives in Phase 6)`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the TUI requires an interactive terminal")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch {
	case cfg.LogFile != "":
		debug.Enable(cfg.LogFile)
	case cfg.Debug:
		debug.Enable(filepath.Join(os.TempDir(), "sequel_debug.log"))
	}

	app := tui.NewApp(cfg)
	return app.Run()
}
