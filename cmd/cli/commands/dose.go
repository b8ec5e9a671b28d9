package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"daybreak/pkg/clients/verseclient"
	"daybreak/pkg/clients/youtubeclient"
	"daybreak/pkg/core/services"
	"daybreak/pkg/dose"
	"daybreak/pkg/utils"
)

// DoseCmd creates the dose command: open today's Daily Dose video for a
// language, print the verse's original text, and stage the translation
// workbook.
func DoseCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "dose <hebrew|greek>",
		Short:     "Open today's Daily Dose video and translation workbook",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"hebrew", "greek"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDose(app, args[0])
		},
	}
	return cmd
}

func runDose(app *AppContext, language string) error {
	result, err := fetchDose(app, language)
	if err != nil {
		return err
	}
	presentDose(app, result)
	return nil
}

func fetchDose(app *AppContext, language string) (*services.DoseResult, error) {
	finder, err := youtubeclient.NewClient(app.Ctx, app.Cfg.YouTubeAPIKey)
	if err != nil {
		return nil, err
	}

	var verses services.VerseFetcher
	if app.Cfg.RapidAPIKey != "" && app.Cfg.RapidAPIHost != "" {
		verses = verseclient.NewClient(app.Cfg.RapidAPIKey, app.Cfg.RapidAPIHost)
	} else {
		app.Logger.Warn("RapidAPI credentials not set, skipping verse text")
	}

	return services.FetchDose(app.Ctx, finder, verses, app.Cfg, app.Logger, language)
}

// presentDose prints the fetched dose and opens the video and workbook.
// Opening either is best effort; a missing browser or LibreOffice should not
// abort the routine.
func presentDose(app *AppContext, result *services.DoseResult) {
	fmt.Printf("\n%s\n%s\n", result.Title, result.URL)

	if len(result.Words) > 0 {
		fmt.Println()
		for _, word := range result.Words {
			fmt.Println(word)
		}
		fmt.Println()
	}

	if err := utils.OpenBrowser(result.URL); err != nil {
		app.Logger.Warn("Failed to open video", zap.Error(err))
	}
	if result.SheetPath != "" {
		if err := dose.OpenSpreadsheet(result.SheetPath); err != nil {
			app.Logger.Warn("Failed to open workbook", zap.Error(err))
		}
	}
}
