package cli

import (
	"log/slog"

	"github.com/alexanderramin/pomonotch/internal/service"
	"github.com/alexanderramin/pomonotch/internal/timer"
	"github.com/spf13/cobra"
)

// App holds the dependencies shared by all commands.
type App struct {
	Store    timer.SettingsStore
	Settings service.SettingsService
	Logger   *slog.Logger

	// StartCompact opens the TUI on the compact strip.
	StartCompact bool

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "pomonotch" command and registers all
// subcommands against the provided App. Without a subcommand it opens the
// TUI on a terminal and prints the settings otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "pomonotch",
		Short:         "Pomodoro timer for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(cmd.Context(), app, app.StartCompact)
			}
			return printSettings(cmd, app)
		},
	}

	root.AddCommand(
		newTUICmd(app),
		newSettingsCmd(app),
		newRunCmd(app),
	)

	return root
}
