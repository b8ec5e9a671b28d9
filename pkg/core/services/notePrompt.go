package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"daybreak/internal/config"
	"daybreak/pkg/contacts"
	"daybreak/pkg/rotation"
)

// NotePromptResult reports what the notes session did.
type NotePromptResult struct {
	ContactName string
	Updated     bool
	NewText     string
}

// NotePrompt runs the daily notes session: decide which cadence (if any) has
// a session scheduled today, select that cadence's current contact, offer an
// interactive notes update, and write the result back to the notes store and
// the contact directory.
func NotePrompt(
	sched ContactSelector,
	dir DirectoryStore,
	prompter NotesPrompter,
	schedule config.PromptSchedule,
	logger *zap.Logger,
	day time.Time,
) (*NotePromptResult, error) {
	cadence, scheduled, err := cadenceForDay(schedule, day)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate prompt schedule: %w", err)
	}
	if !scheduled {
		logger.Debug("No notes session scheduled", zap.String("day", day.Format("2006-01-02")))
		return &NotePromptResult{}, nil
	}

	name, ok, err := sched.Select(cadence)
	if err != nil {
		logger.Warn("Contact selection could not be persisted", zap.Error(err))
	}
	if !ok {
		logger.Debug("No contact scheduled", zap.String("cadence", cadence.String()))
		return &NotePromptResult{}, nil
	}

	logger.Info("Notes session", zap.String("cadence", cadence.String()), zap.String("contact", name))

	text, updated, err := prompter.UpdateNotes(name)
	if err != nil {
		return &NotePromptResult{ContactName: name}, err
	}
	if !updated {
		return &NotePromptResult{ContactName: name}, nil
	}

	// Mirror the new text onto the contact's directory record. A directory
	// that cannot be read degrades to a fresh list; the record is recreated
	// by the upsert.
	list, err := dir.Load()
	if err != nil {
		logger.Warn("Failed to load contact directory, starting fresh", zap.Error(err))
		list = []contacts.Contact{}
	}
	list = contacts.Upsert(list, name, map[string]any{"notes": text})
	if err := dir.Save(list, true); err != nil {
		return &NotePromptResult{ContactName: name, Updated: true, NewText: text},
			fmt.Errorf("failed to save contact directory: %w", err)
	}

	return &NotePromptResult{ContactName: name, Updated: true, NewText: text}, nil
}

// cadenceForDay returns which cadence has a notes session on the given day.
// The frequent cadence wins when both rules match.
func cadenceForDay(schedule config.PromptSchedule, day time.Time) (rotation.Cadence, bool, error) {
	rules := []struct {
		cadence rotation.Cadence
		rule    string
	}{
		{rotation.Frequent, schedule.FrequentRRule},
		{rotation.Infrequent, schedule.InfrequentRRule},
	}

	for _, r := range rules {
		match, err := ruleMatchesDay(r.rule, day)
		if err != nil {
			return 0, false, err
		}
		if match {
			return r.cadence, true, nil
		}
	}
	return 0, false, nil
}

func ruleMatchesDay(rule string, day time.Time) (bool, error) {
	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return false, fmt.Errorf("invalid rrule %q: %w", rule, err)
	}

	// Anchor well before any queried day so occurrences fall on day
	// boundaries regardless of when the rule is evaluated.
	r.DTStart(time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC))

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Second)
	return len(r.Between(dayStart, dayEnd, true)) > 0, nil
}
