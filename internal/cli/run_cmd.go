package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/pomonotch/internal/cli/formatter"
	"github.com/alexanderramin/pomonotch/internal/domain"
	"github.com/alexanderramin/pomonotch/internal/timer"
	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	var cycles int
	var flags durationFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the timer without the TUI, printing each transition",
		Long: `Run work sessions back to back, printing each state change.
Breaks start on their own; after each break the next work session is started
until --cycles work sessions have completed. Duration flags override the
saved settings for this run only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cycles < 1 {
				return fmt.Errorf("--cycles must be at least 1")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			loop := timer.NewLoop(16)
			model := timer.New(app.Store, loop, timer.WithLogger(app.Logger))
			model.LoadSettings(ctx)
			if flags.anyChanged(cmd.Flags()) {
				model.UpdateSettings(func(s *domain.Settings) { flags.apply(cmd.Flags(), s) })
				if err := model.Settings().Validate(); err != nil {
					return err
				}
			}

			err := runHeadless(ctx, loop, model, cycles, cmd.OutOrStdout())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVar(&cycles, "cycles", 1, "Number of work sessions to run")
	flags.register(cmd.Flags())
	return cmd
}

// runHeadless drives model on loop until cycles work sessions and their
// breaks have finished, or ctx is cancelled.
func runHeadless(ctx context.Context, loop *timer.Loop, model *timer.Model, cycles int, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var done bool
	last := model.State()
	unsubscribe := model.Subscribe(func(s timer.Snapshot) {
		if s.State == last {
			return
		}
		last = s.State
		fmt.Fprintf(out, "%s %s %s\n",
			formatter.Dim(time.Now().Format("15:04:05")),
			formatter.StatusIndicator(s.State),
			formatter.Dim(fmt.Sprintf("%s · %d done", timer.FormatTime(s.Remaining), s.Completed)))

		if s.State != domain.StateIdle {
			return
		}
		if s.Completed >= cycles {
			done = true
			cancel()
			return
		}
		_ = loop.Post(ctx, model.Start)
	})
	defer unsubscribe()

	if err := loop.Post(ctx, model.Start); err != nil {
		return err
	}
	err := loop.Run(ctx)
	model.Pause()
	loop.Wait()

	if done {
		fmt.Fprintln(out, formatter.StyleGreen.Render("✔")+fmt.Sprintf(" %d work sessions completed", model.Completed()))
		return nil
	}
	return err
}
