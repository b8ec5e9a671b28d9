package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybreak/pkg/core/services"
)

// PromptCmd creates the prompt command: print today's call reminders.
func PromptCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Show today's contact-call reminders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printReminders(app)
			return nil
		},
	}
}

func printReminders(app *AppContext) {
	result := services.DailyPrompt(app.Scheduler, app.Logger)

	printed := false
	if result.FrequentDue {
		fmt.Printf("📞 Have you called %s this week?\n", result.FrequentContact)
		printed = true
	}
	if result.InfrequentDue {
		fmt.Printf("📞 Have you called %s this month?\n", result.InfrequentContact)
		printed = true
	}
	if !printed {
		fmt.Println("No calls outstanding. ✓")
	}
}
