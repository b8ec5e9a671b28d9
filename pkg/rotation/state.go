package rotation

import (
	"fmt"
	"time"
)

// State is the persisted rotation record. The JSON field names are the legacy
// names used by the original contacts_state.json ("monthly" means the list of
// people contacted monthly, which rotates weekly; "quarterly" rotates monthly)
// so existing state files keep working.
type State struct {
	FrequentContacts   []string `json:"monthly_contacts"`
	InfrequentContacts []string `json:"quarterly_contacts"`
	FrequentIndex      int      `json:"current_monthly_index"`
	InfrequentIndex    int      `json:"current_quarterly_index"`
	FrequentPeriod     string   `json:"week_start,omitempty"`
	InfrequentPeriod   string   `json:"month_start,omitempty"`
	FrequentDone       bool     `json:"called_this_week"`
	InfrequentDone     bool     `json:"called_this_month"`
}

// DefaultState returns a fresh state: empty lists, uninitialized indices.
func DefaultState() State {
	return State{
		FrequentContacts:   []string{},
		InfrequentContacts: []string{},
		FrequentIndex:      -1,
		InfrequentIndex:    -1,
	}
}

// WeekKey returns the ISO-week period key for t, e.g. "2026-W35".
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%d", year, week)
}

// MonthKey returns the calendar-month period key for t, e.g. "2026-08".
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%d-%02d", t.Year(), int(t.Month()))
}
