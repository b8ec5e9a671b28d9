package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"daybreak/pkg/timer"
)

// MorningCmd creates the morning command: the full guided routine. Each step
// logs and moves on when it fails so one broken API never blocks the rest of
// the morning.
func MorningCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "morning",
		Short: "Run the full guided morning routine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runMorning(app)
			return nil
		},
	}
}

func runMorning(app *AppContext) {
	t := app.Cfg.Timers

	fmt.Println("Good morning! ☀️")
	runStepTimer(app, "Prayer", t.PrayerMinutes)

	if err := runDose(app, "hebrew"); err != nil {
		app.Logger.Warn("Hebrew dose failed", zap.Error(err))
	}
	runStepTimer(app, "Hebrew Practice", t.HebrewPracticeMinutes)

	if err := runDose(app, "greek"); err != nil {
		app.Logger.Warn("Greek dose failed", zap.Error(err))
	}
	runStepTimer(app, "Greek Practice", t.GreekPracticeMinutes)

	runStepTimer(app, "Study", t.StudyMinutes)

	if err := printWeather(app); err != nil {
		app.Logger.Warn("Weather fetch failed", zap.Error(err))
	}

	fmt.Println("\nTime to write a scene. ✍️")
	runStepTimer(app, "Scene Writing", t.SceneWritingMinutes)

	fmt.Println("\nTime to generate an image for the scene. 🎨")
	runStepTimer(app, "Image Generation", t.ImageGenerationMinutes)

	printReminders(app)
	runNotesSession(app, time.Now())
}

// runStepTimer runs one countdown; a zero-minute configuration skips the step
// entirely.
func runStepTimer(app *AppContext, name string, minutes int) {
	if minutes <= 0 {
		return
	}
	if err := timer.Run(name, time.Duration(minutes)*time.Minute); err != nil {
		app.Logger.Warn("Timer failed", zap.String("name", name), zap.Error(err))
	}
}
