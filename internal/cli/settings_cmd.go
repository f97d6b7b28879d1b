package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/pomonotch/internal/cli/formatter"
	"github.com/alexanderramin/pomonotch/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the saved timer settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSettings(cmd, app)
		},
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		newSettingsEditCmd(app),
		newSettingsResetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSettings(cmd, app)
		},
	}
}

func printSettings(cmd *cobra.Command, app *App) error {
	s, stored, err := app.Settings.Get(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s, stored))
	return nil
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var flags durationFlags

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change individual settings",
		Example: `  pomonotch settings set --work 50 --short 10
  pomonotch settings set --cadence 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			if !flags.anyChanged(fs) {
				return fmt.Errorf("nothing to change: pass at least one of --work, --short, --long, --cadence")
			}
			updated, err := app.Settings.Update(cmd.Context(), func(s *domain.Settings) {
				flags.apply(fs, s)
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔")+" Settings saved")
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(updated, true))
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

func newSettingsEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit all settings in an interactive form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("settings edit requires an interactive terminal; use settings set")
			}
			current, _, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}

			values := newSettingsFormValues(current)
			if err := newSettingsForm(values).Run(); err != nil {
				return fmt.Errorf("settings form: %w", err)
			}

			updated, err := app.Settings.Update(cmd.Context(), values.apply)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(updated, true))
			return nil
		},
	}
}

func newSettingsResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved settings and use the defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔")+" Settings reset to defaults")
			return nil
		},
	}
}

// settingsFormValues holds the form's string inputs; durations are minutes.
type settingsFormValues struct {
	work, short, long, cadence string
}

func newSettingsFormValues(s domain.Settings) *settingsFormValues {
	return &settingsFormValues{
		work:    strconv.Itoa(s.WorkDuration / 60),
		short:   strconv.Itoa(s.ShortBreakDuration / 60),
		long:    strconv.Itoa(s.LongBreakDuration / 60),
		cadence: strconv.Itoa(s.SessionsBeforeLongBreak),
	}
}

// apply writes the validated inputs into s.
func (v *settingsFormValues) apply(s *domain.Settings) {
	s.WorkDuration = parsePositiveInt(v.work, s.WorkDuration/60) * 60
	s.ShortBreakDuration = parsePositiveInt(v.short, s.ShortBreakDuration/60) * 60
	s.LongBreakDuration = parsePositiveInt(v.long, s.LongBreakDuration/60) * 60
	s.SessionsBeforeLongBreak = parsePositiveInt(v.cadence, s.SessionsBeforeLongBreak)
}

func newSettingsForm(v *settingsFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Work (minutes)").Value(&v.work).Validate(validatePositiveInt),
			huh.NewInput().Title("Short break (minutes)").Value(&v.short).Validate(validatePositiveInt),
			huh.NewInput().Title("Long break (minutes)").Value(&v.long).Validate(validatePositiveInt),
			huh.NewInput().Title("Work sessions before a long break").Value(&v.cadence).Validate(validatePositiveInt),
		),
	).WithTheme(pomonotchHuhTheme()).WithShowHelp(false)
}
