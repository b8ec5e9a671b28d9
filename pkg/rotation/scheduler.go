package rotation

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Cadence identifies one of the two independent rotation cadences.
type Cadence int

const (
	// Frequent rotates once per ISO week.
	Frequent Cadence = iota
	// Infrequent rotates once per calendar month.
	Infrequent
)

// String returns the cadence name used in logs and prompts.
func (c Cadence) String() string {
	if c == Infrequent {
		return "infrequent"
	}
	return "frequent"
}

// Period returns the human name of the cadence's period ("week" or "month").
func (c Cadence) Period() string {
	if c == Infrequent {
		return "month"
	}
	return "week"
}

// Scheduler decides which contact is current for each cadence and whether the
// current period's obligation is outstanding. Both cadences run through the
// same rotator, parameterized by a period-key function.
type Scheduler struct {
	store  StateStore
	logger *zap.Logger
	now    func() time.Time
}

// NewScheduler creates a scheduler over the given state store.
func NewScheduler(store StateStore, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// cadenceView exposes one cadence's slice of the state as pointers so the
// rotation logic exists exactly once.
type cadenceView struct {
	list   *[]string
	index  *int
	period *string
	done   *bool
	key    func(time.Time) string
}

func view(state *State, c Cadence) cadenceView {
	if c == Infrequent {
		return cadenceView{
			list:   &state.InfrequentContacts,
			index:  &state.InfrequentIndex,
			period: &state.InfrequentPeriod,
			done:   &state.InfrequentDone,
			key:    MonthKey,
		}
	}
	return cadenceView{
		list:   &state.FrequentContacts,
		index:  &state.FrequentIndex,
		period: &state.FrequentPeriod,
		done:   &state.FrequentDone,
		key:    WeekKey,
	}
}

// load fetches the persisted state, degrading to a fresh default state when
// the store cannot be read. The failure is logged, never surfaced.
func (s *Scheduler) load() State {
	state, err := s.store.Load()
	if err != nil {
		s.logger.Warn("Failed to load rotation state, starting fresh", zap.Error(err))
	}
	return state
}

// Select returns the contact currently scheduled for the cadence, advancing
// the rotation exactly once when a new period has begun (or after a list
// replacement). ok is false when the list is empty or no rotation has
// happened yet. A non-nil error means the advanced state could not be
// persisted; the returned selection is still valid for this run.
func (s *Scheduler) Select(c Cadence) (name string, ok bool, err error) {
	state := s.load()
	v := view(&state, c)

	key := v.key(s.now())
	if *v.period != key || (*v.index < 0 && len(*v.list) > 0) {
		*v.period = key
		*v.index = (*v.index + 1) % max(len(*v.list), 1)
		*v.done = false
		if saveErr := s.store.Save(state); saveErr != nil {
			err = fmt.Errorf("failed to persist %s rotation: %w", c, saveErr)
		}
		s.logger.Debug("Rotation advanced",
			zap.String("cadence", c.String()),
			zap.String("period", key),
			zap.Int("index", *v.index))
	}

	if len(*v.list) == 0 || *v.index < 0 {
		return "", false, err
	}

	// A list that shrank or was replaced since the last advance can leave a
	// stale index past the end; clamp at read time.
	idx := *v.index % len(*v.list)
	return (*v.list)[idx], true, err
}

// Satisfied reports whether the cadence's obligation has been fulfilled for
// the current period. It never mutates state.
func (s *Scheduler) Satisfied(c Cadence) bool {
	state := s.load()
	return *view(&state, c).done
}

// MarkSatisfied records that the cadence's obligation has been fulfilled for
// the current period. Idempotent.
func (s *Scheduler) MarkSatisfied(c Cadence) error {
	state := s.load()
	*view(&state, c).done = true
	if err := s.store.Save(state); err != nil {
		return fmt.Errorf("failed to persist %s obligation: %w", c, err)
	}
	return nil
}

// ReplaceList overwrites the cadence's contact list and resets its index and
// period so the very next Select rotates to index 0.
func (s *Scheduler) ReplaceList(c Cadence, names []string) error {
	state := s.load()
	v := view(&state, c)
	*v.list = append([]string(nil), names...)
	*v.index = -1
	*v.period = ""
	if err := s.store.Save(state); err != nil {
		return fmt.Errorf("failed to persist %s contact list: %w", c, err)
	}
	return nil
}

// Lists returns the currently configured contact lists, for display.
func (s *Scheduler) Lists() (frequent, infrequent []string) {
	state := s.load()
	return state.FrequentContacts, state.InfrequentContacts
}
