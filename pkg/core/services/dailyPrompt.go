package services

import (
	"go.uber.org/zap"

	"daybreak/pkg/rotation"
)

// DailyPromptResult says who is due for a call under each cadence. A Due
// field is true only when a contact is scheduled and the period's obligation
// is still outstanding.
type DailyPromptResult struct {
	FrequentContact   string
	FrequentDue       bool
	InfrequentContact string
	InfrequentDue     bool
}

// DailyPrompt selects today's contact for both cadences and reports which
// obligations are outstanding. Selection failures are logged and degrade to
// "nothing scheduled" so the rest of the morning routine keeps running.
func DailyPrompt(sched ContactSelector, logger *zap.Logger) *DailyPromptResult {
	result := &DailyPromptResult{}

	for _, cadence := range []rotation.Cadence{rotation.Frequent, rotation.Infrequent} {
		name, ok, err := sched.Select(cadence)
		if err != nil {
			logger.Warn("Contact selection could not be persisted",
				zap.String("cadence", cadence.String()),
				zap.Error(err))
		}
		if !ok {
			logger.Debug("No contact scheduled", zap.String("cadence", cadence.String()))
			continue
		}

		due := !sched.Satisfied(cadence)
		if cadence == rotation.Frequent {
			result.FrequentContact = name
			result.FrequentDue = due
		} else {
			result.InfrequentContact = name
			result.InfrequentDue = due
		}
	}

	return result
}
