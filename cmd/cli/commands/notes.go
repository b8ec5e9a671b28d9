package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"daybreak/pkg/core/services"
	"daybreak/pkg/prompt"
)

// NotesCmd creates the notes command: run today's interactive notes session
// for the scheduled contact.
func NotesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Update notes for today's scheduled contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runNotesSession(app, time.Now())
			return nil
		},
	}

	cmd.AddCommand(notesHistoryCmd(app))
	return cmd
}

func runNotesSession(app *AppContext, day time.Time) {
	session := prompt.NewSession(os.Stdin, os.Stdout, app.Notes)

	result, err := services.NotePrompt(
		app.Scheduler,
		app.Directory,
		session,
		app.Cfg.PromptSchedule,
		app.Logger,
		day,
	)
	if err != nil {
		app.Logger.Warn("Notes session failed", zap.Error(err))
		return
	}
	if result.ContactName == "" {
		fmt.Println("No contact notes scheduled today.")
	}
}

func notesHistoryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "history <name>",
		Short: "Show the full notes history for a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			history, err := app.Notes.History(name)
			if err != nil {
				return fmt.Errorf("failed to load notes history: %w", err)
			}
			if len(history) == 0 {
				fmt.Printf("No notes recorded for %s.\n", name)
				return nil
			}

			for _, rev := range history {
				fmt.Printf("--- %s ---\n%s\n\n", rev.Timestamp, rev.Text)
			}
			return nil
		},
	}
}
