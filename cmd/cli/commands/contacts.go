package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"daybreak/pkg/contacts"
	"daybreak/pkg/rotation"
)

// ContactsCmd creates the contacts command group: inspect the directory and
// manage the rotation lists.
func ContactsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Manage the contact directory and rotation lists",
	}

	cmd.AddCommand(contactsListCmd(app))
	cmd.AddCommand(contactsShowCmd(app))
	cmd.AddCommand(contactsSetCmd(app))
	cmd.AddCommand(contactsDoneCmd(app))
	return cmd
}

func contactsListCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rotation lists and directory records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			frequent, infrequent := app.Scheduler.Lists()
			fmt.Printf("Frequent rotation (%d):\n", len(frequent))
			for i, name := range frequent {
				fmt.Printf("  %2d. %s\n", i+1, name)
			}
			fmt.Printf("\nInfrequent rotation (%d):\n", len(infrequent))
			for i, name := range infrequent {
				fmt.Printf("  %2d. %s\n", i+1, name)
			}

			records, err := app.Directory.Load()
			if err != nil {
				return fmt.Errorf("failed to load contact directory: %w", err)
			}
			fmt.Printf("\nDirectory records (%d):\n", len(records))
			for _, c := range records {
				fmt.Printf("  - %s\n", c.Name())
			}
			return nil
		},
	}
}

func contactsShowCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a contact's directory record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Directory.Load()
			if err != nil {
				return fmt.Errorf("failed to load contact directory: %w", err)
			}

			c, ok := contacts.Find(records, args[0])
			if !ok {
				fmt.Printf("No record for %s.\n", args[0])
				return nil
			}

			keys := make([]string, 0, len(c))
			for k := range c {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("%s: %v\n", k, c[k])
			}
			return nil
		},
	}
}

func contactsSetCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <frequent|infrequent> <name>...",
		Short: "Replace a rotation list (resets its rotation to the first name)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cadence, err := parseCadence(args[0])
			if err != nil {
				return err
			}

			names := args[1:]
			if err := app.Scheduler.ReplaceList(cadence, names); err != nil {
				return err
			}

			app.Logger.Info("Rotation list replaced",
				zap.String("cadence", cadence.String()),
				zap.Int("count", len(names)))
			fmt.Printf("✓ %s list set to %d contacts; rotation restarts at %s.\n",
				cadence, len(names), names[0])
			return nil
		},
	}
}

func contactsDoneCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "done <frequent|infrequent>",
		Short: "Mark this period's call as made",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cadence, err := parseCadence(args[0])
			if err != nil {
				return err
			}

			if err := app.Scheduler.MarkSatisfied(cadence); err != nil {
				return err
			}
			fmt.Printf("✓ Marked the %s call done for this %s.\n", cadence, cadence.Period())
			return nil
		},
	}
}

func parseCadence(arg string) (rotation.Cadence, error) {
	switch arg {
	case "frequent":
		return rotation.Frequent, nil
	case "infrequent":
		return rotation.Infrequent, nil
	default:
		return 0, fmt.Errorf("cadence must be frequent or infrequent, got %q", arg)
	}
}
