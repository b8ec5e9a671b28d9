package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"daybreak/cmd/cli/commands"
	"daybreak/internal/config"
	"daybreak/pkg/contacts"
	"daybreak/pkg/notes"
	"daybreak/pkg/rotation"
	"daybreak/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "daybreak",
		Short: "Daybreak - a guided morning routine",
		Long:  `A personal daily-routine tool: contact-call rotations, contact notes, language study doses, weather, and timers.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "daily", "Environment name used for log files")

	app = &commands.AppContext{}
	rootCmd.AddCommand(commands.MorningCmd(app))
	rootCmd.AddCommand(commands.PromptCmd(app))
	rootCmd.AddCommand(commands.NotesCmd(app))
	rootCmd.AddCommand(commands.ContactsCmd(app))
	rootCmd.AddCommand(commands.DoseCmd(app))
	rootCmd.AddCommand(commands.WeatherCmd(app))
	rootCmd.AddCommand(commands.TimerCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger, configuration, and stores shared by all
// commands. The AppContext is filled in place so the command constructors can
// capture it before it is initialized.
func initApp() error {
	app.Ctx = context.Background()

	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = logger.With(zap.String("run_id", uuid.NewString()))

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded", zap.String("data_dir", app.Cfg.DataDir))

	app.Scheduler = rotation.NewScheduler(rotation.NewFileStore(app.Cfg.StatePath()), app.Logger)
	app.Notes = notes.NewStore(app.Cfg.NotesPath())
	app.Directory = contacts.NewDirectory(app.Cfg.ContactsPath())

	return nil
}
