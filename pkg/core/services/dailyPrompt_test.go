package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"daybreak/pkg/rotation"
)

// mockSelector scripts the scheduler for service tests.
type mockSelector struct {
	contacts  map[rotation.Cadence]string
	satisfied map[rotation.Cadence]bool
	marked    []rotation.Cadence
	selectErr error
}

func newMockSelector() *mockSelector {
	return &mockSelector{
		contacts:  map[rotation.Cadence]string{},
		satisfied: map[rotation.Cadence]bool{},
	}
}

func (m *mockSelector) Select(c rotation.Cadence) (string, bool, error) {
	name, ok := m.contacts[c]
	return name, ok, m.selectErr
}

func (m *mockSelector) Satisfied(c rotation.Cadence) bool {
	return m.satisfied[c]
}

func (m *mockSelector) MarkSatisfied(c rotation.Cadence) error {
	m.marked = append(m.marked, c)
	m.satisfied[c] = true
	return nil
}

func TestDailyPrompt_BothDue(t *testing.T) {
	sched := newMockSelector()
	sched.contacts[rotation.Frequent] = "Ann"
	sched.contacts[rotation.Infrequent] = "Xen"

	result := DailyPrompt(sched, zap.NewNop())

	assert.Equal(t, "Ann", result.FrequentContact)
	assert.True(t, result.FrequentDue)
	assert.Equal(t, "Xen", result.InfrequentContact)
	assert.True(t, result.InfrequentDue)
}

func TestDailyPrompt_SatisfiedObligationsNotDue(t *testing.T) {
	sched := newMockSelector()
	sched.contacts[rotation.Frequent] = "Ann"
	sched.satisfied[rotation.Frequent] = true

	result := DailyPrompt(sched, zap.NewNop())

	assert.Equal(t, "Ann", result.FrequentContact)
	assert.False(t, result.FrequentDue)
}

func TestDailyPrompt_EmptyLists(t *testing.T) {
	result := DailyPrompt(newMockSelector(), zap.NewNop())

	assert.Empty(t, result.FrequentContact)
	assert.False(t, result.FrequentDue)
	assert.Empty(t, result.InfrequentContact)
	assert.False(t, result.InfrequentDue)
}

func TestDailyPrompt_PersistFailureStillPrompts(t *testing.T) {
	sched := newMockSelector()
	sched.contacts[rotation.Frequent] = "Ann"
	sched.selectErr = errors.New("disk full")

	result := DailyPrompt(sched, zap.NewNop())

	assert.Equal(t, "Ann", result.FrequentContact)
	assert.True(t, result.FrequentDue)
}
