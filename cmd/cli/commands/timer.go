package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"daybreak/pkg/timer"
)

// TimerCmd creates the timer command: run a named countdown.
func TimerCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "timer <name> <minutes>",
		Short: "Run a named countdown timer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(args[1])
			if err != nil || minutes < 1 {
				return fmt.Errorf("minutes must be a positive integer, got %q", args[1])
			}
			return timer.Run(args[0], time.Duration(minutes)*time.Minute)
		},
	}
}
