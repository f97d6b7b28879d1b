package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pomonotch/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("tui requires an interactive terminal")
			}
			return runTUI(cmd.Context(), app, compact || app.StartCompact)
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "Start on the compact strip")
	return cmd
}

// runTUI wires a timer to a tick scheduler that feeds the bubbletea program,
// then runs the program until the user quits.
func runTUI(ctx context.Context, app *App, compact bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	ticks := newTeaScheduler()
	model := timer.New(app.Store, ticks, timer.WithLogger(app.Logger))
	state, unsubscribe := newSharedState(ctx, model, ticks)

	p := tea.NewProgram(
		newAppModel(state, unsubscribe, compact),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	ticks.Attach(p.Send)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
