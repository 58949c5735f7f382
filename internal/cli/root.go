// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"smc-journal/internal/app"
	"smc-journal/internal/config"
	"smc-journal/internal/logging"
	"smc-journal/internal/store"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2024-01-01"
)

// App holds the application dependencies.
type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Store   store.StateStore
	Journal *app.Controller
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	dbPath := cfg.Storage.DBPath
	if dbPath == "" {
		dbPath = config.DefaultConfigDir() + "/journal.db"
	}
	stateStore, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, journal data unavailable")
	} else {
		a.Store = stateStore
		a.Journal = app.NewController(stateStore, logger)
		logger.Debug().Str("path", dbPath).Msg("SQLite store initialized")
	}

	rootCmd := &cobra.Command{
		Use:   "smc-journal",
		Short: "SMC Journal - Smart Money Concepts trading journal CLI",
		Long: `SMC Journal is a personal trading journal for Smart Money Concepts traders.

Log trades against a configurable confluence checklist, review win rate,
equity curve and per-setup breakdowns, and export your log to CSV.
All data stays in a local database.

Use 'smc-journal help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Handle debug flag
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				a.Logger = a.Logger.Level(zerolog.DebugLevel)
			}
			if a.Journal != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := a.Journal.Load(ctx); err != nil {
					a.Logger.Warn().Err(err).Msg("Failed to load journal state")
				}
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/smc-journal)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	// Add all command groups
	addCoreCommands(rootCmd, a)
	addProfileCommands(rootCmd, a)
	addTradeCommands(rootCmd, a)
	addStatsCommands(rootCmd, a)
	addTemplateCommands(rootCmd, a)
	addExportCommands(rootCmd, a)

	return rootCmd
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, a *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(a))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("SMC Journal v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(a.Config)
			}
			data, err := json.MarshalIndent(a.Config, "", "  ")
			if err != nil {
				return err
			}
			output.Bold("Current Configuration")
			output.Println(string(data))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := a.Config.Validate(); err != nil {
				output.Error("Configuration invalid: %v", err)
				return err
			}
			output.Success("✓ Configuration valid")
			return nil
		},
	})

	return cmd
}

// requireJournal returns the controller or an error when the store
// failed to initialize.
func requireJournal(a *App) (*app.Controller, error) {
	if a.Journal == nil {
		return nil, fmt.Errorf("journal store not available")
	}
	return a.Journal, nil
}

// requireProfile returns the controller only when a profile exists.
func requireProfile(a *App) (*app.Controller, error) {
	j, err := requireJournal(a)
	if err != nil {
		return nil, err
	}
	if j.User() == nil {
		return nil, fmt.Errorf("no profile found, run 'smc-journal signup <username>' first")
	}
	return j, nil
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
