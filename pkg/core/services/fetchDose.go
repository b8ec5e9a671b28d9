package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"daybreak/internal/config"
	"daybreak/pkg/dose"
)

// DoseResult carries everything the command layer needs to present a daily
// dose: the video, the parsed verse, the original-language words, and the
// staged translation workbook.
type DoseResult struct {
	Query     string
	Title     string
	URL       string
	VerseID   string
	Slug      string
	Words     []string
	SheetPath string
}

// FetchDose looks up the latest Daily Dose video for the language, parses the
// verse reference from its title, fetches the verse's original text, and
// stages the translation workbook. Only the video lookup is fatal; every
// follow-up step degrades with a log line so the routine keeps moving.
func FetchDose(
	ctx context.Context,
	finder VideoFinder,
	verses VerseFetcher,
	cfg *config.Config,
	logger *zap.Logger,
	language string,
) (*DoseResult, error) {
	var query, translationFile string
	switch strings.ToLower(language) {
	case "hebrew":
		query = "Daily Dose of Hebrew"
		translationFile = cfg.HebrewTranslationFile
	case "greek":
		query = "Daily Dose of Greek"
		translationFile = cfg.GreekTranslationFile
	default:
		return nil, fmt.Errorf("language must be hebrew or greek, got %q", language)
	}

	logger.Info("Fetching daily dose", zap.String("query", query))
	video, err := finder.LatestVideo(query)
	if err != nil {
		return nil, fmt.Errorf("failed to find latest %s video: %w", query, err)
	}

	result := &DoseResult{
		Query: query,
		Title: video.Title,
		URL:   video.URL,
	}

	verseID, ok := dose.ParseReference(video.Title)
	if !ok {
		logger.Warn("Could not parse verse reference from title", zap.String("title", video.Title))
	} else {
		result.VerseID = verseID
		if slug, ok := dose.Slug(video.Title); ok {
			result.Slug = slug
		} else if slug, ok := dose.SlugFromVerseID(verseID); ok {
			result.Slug = slug
		}
	}

	if result.VerseID != "" && verses != nil {
		words, err := verses.OriginalText(ctx, result.VerseID)
		if err != nil {
			logger.Warn("Failed to fetch verse text", zap.Error(err))
		} else {
			result.Words = words
		}
	}

	if translationFile != "" {
		staged, err := dose.StageTranslationSheet(translationFile, cfg.DoseDir, result.Slug)
		if err != nil {
			logger.Warn("Failed to stage translation workbook", zap.Error(err))
		} else {
			result.SheetPath = staged
			logger.Info("Translation workbook staged", zap.String("path", staged))
		}
	}

	return result, nil
}
