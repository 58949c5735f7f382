// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// addProfileCommands adds profile lifecycle commands.
func addProfileCommands(rootCmd *cobra.Command, a *App) {
	rootCmd.AddCommand(newSignupCmd(a))
	rootCmd.AddCommand(newProfileCmd(a))
	rootCmd.AddCommand(newFocusCmd(a))
	rootCmd.AddCommand(newLogoutCmd(a))
}

func newSignupCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "signup <username>",
		Short: "Create your journal profile",
		Long: `Create the local journal profile.

The username needs at least 3 characters. Signup installs the default
template: BTC/ETH/SOL/XAU, London/NY/Asia sessions and the seven
built-in SMC confluences.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireJournal(a)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			if j.User() != nil {
				output.Warning("Profile %q already exists. Run 'smc-journal logout' to start over.", j.User().Username)
				return nil
			}
			if err := j.Signup(ctx, args[0]); err != nil {
				output.Error("%v", err)
				return err
			}
			j.EnterApp(ctx)

			output.Success("✓ Welcome, %s", j.User().Username)
			output.Dim("Log your first trade with 'smc-journal trade add'.")
			return nil
		},
	}
}

func newProfileCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile management",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}
			user := j.User()

			if output.IsJSON() {
				return output.JSON(user)
			}

			output.Bold("Profile")
			output.Printf("  Username:   %s\n", user.Username)
			if user.Email != "" {
				output.Printf("  Email:      %s\n", user.Email)
			}
			if user.Mobile != "" {
				output.Printf("  Mobile:     %s\n", user.Mobile)
			}
			output.Printf("  Timezone:   %s\n", user.Timezone)
			output.Println()

			output.Bold("Focus Budget")
			limit := int(user.DailyHourLimit * 60)
			output.Printf("  Today:      %d/%d minutes\n", user.TodayMinutes, limit)
			if limit > 0 && user.TodayMinutes >= limit {
				output.Warning("  Daily screen-time budget reached. Step away from the charts.")
			}
			output.Println()

			output.Bold("Streak")
			output.Printf("  Current:    %d day(s)\n", user.StreakCount)
			output.Printf("  Best:       %d day(s)\n", user.MaxStreak)
			return nil
		},
	})

	set := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			user := j.User()
			email := user.Email
			mobile := user.Mobile
			timezone := user.Timezone
			hours := user.DailyHourLimit

			if cmd.Flags().Changed("email") {
				email, _ = cmd.Flags().GetString("email")
			}
			if cmd.Flags().Changed("mobile") {
				mobile, _ = cmd.Flags().GetString("mobile")
			}
			if cmd.Flags().Changed("timezone") {
				timezone, _ = cmd.Flags().GetString("timezone")
			}
			if cmd.Flags().Changed("hours") {
				hours, _ = cmd.Flags().GetFloat64("hours")
			}

			if err := j.UpdateProfile(ctx, email, mobile, timezone, hours); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("✓ Profile updated")
			return nil
		},
	}
	set.Flags().String("email", "", "Email address")
	set.Flags().String("mobile", "", "Mobile number")
	set.Flags().String("timezone", "", "IANA timezone name")
	set.Flags().Float64("hours", 0, "Daily screen-time budget in hours")
	cmd.AddCommand(set)

	return cmd
}

func newFocusCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "focus",
		Short: "Run the screen-time ticker",
		Long: `Count chart time against the daily budget.

Adds one minute to today's total every minute until interrupted with
Ctrl-C. The counter resets automatically on the first tick of a new
day.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireProfile(a)
			if err != nil {
				return err
			}

			output.Info("Focus session started. Ctrl-C to stop.")

			ticker := time.NewTicker(time.Minute)
			defer ticker.Stop()
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			for {
				select {
				case <-ticker.C:
					ctx, cancel := commandContext()
					err := j.TickMinute(ctx)
					cancel()
					if err != nil {
						output.Error("%v", err)
						return err
					}
					user := j.User()
					limit := int(user.DailyHourLimit * 60)
					output.Printf("  %d/%d minutes today\n", user.TodayMinutes, limit)
					if limit > 0 && user.TodayMinutes == limit {
						output.Warning("  Daily budget reached.")
					}
				case <-stop:
					output.Println()
					output.Success("✓ Focus session ended: %d minutes today", j.User().TodayMinutes)
					return nil
				}
			}
		},
	}
}

func newLogoutCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Delete the profile and all journal data",
		Long: `Delete the profile, template and every logged trade from the local
database. This cannot be undone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j, err := requireJournal(a)
			if err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			confirmed, _ := cmd.Flags().GetBool("yes")
			if !confirmed {
				output.Warning("This deletes your profile and all trades. Re-run with --yes to confirm.")
				return nil
			}
			if err := j.Logout(ctx); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("✓ Journal cleared")
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}
