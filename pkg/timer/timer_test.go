package timer

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTick_CountsDownAndFinishes(t *testing.T) {
	var m tea.Model = New("Prayer", 2*time.Second)

	m, cmd := m.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.False(t, m.(Model).Done())

	m, cmd = m.Update(tickMsg(time.Now()))
	assert.True(t, m.(Model).Done())
	// The final command is tea.Quit, not another tick.
	require.NotNil(t, cmd)
}

func TestSkipKey_Quits(t *testing.T) {
	var m tea.Model = New("Study", time.Hour)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	require.NotNil(t, cmd)
	assert.False(t, m.(Model).Done())
}

func TestView_ShowsRemainingTime(t *testing.T) {
	m := New("Greek", 90*time.Second)
	assert.Contains(t, m.View(), "01:30")
	assert.Contains(t, m.View(), "Greek Timer")
}

func TestNew_MinimumOneSecond(t *testing.T) {
	m := New("instant", 0)
	assert.Equal(t, 1, m.remaining)
}
