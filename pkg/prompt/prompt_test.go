package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockNotes struct {
	current  map[string]string
	recorded []string
	saveErr  error
	loadErr  error
}

func newMockNotes() *mockNotes {
	return &mockNotes{current: map[string]string{}}
}

func (m *mockNotes) Current(key string) (string, error) {
	if m.loadErr != nil {
		return "", m.loadErr
	}
	return m.current[key], nil
}

func (m *mockNotes) Record(key, text string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.current[key] = text
	m.recorded = append(m.recorded, text)
	return nil
}

func TestUpdateNotes_YesWithText(t *testing.T) {
	notes := newMockNotes()
	var out bytes.Buffer
	session := NewSession(strings.NewReader("y\ncalled on Monday\nsounded well\n\n"), &out, notes)

	text, updated, err := session.UpdateNotes("Ann")
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "called on Monday\nsounded well", text)
	assert.Equal(t, []string{"called on Monday\nsounded well"}, notes.recorded)
	assert.Contains(t, out.String(), "No existing notes for Ann.")
	assert.Contains(t, out.String(), "Notes updated.")
}

func TestUpdateNotes_ShowsExistingNotes(t *testing.T) {
	notes := newMockNotes()
	notes.current["Ann"] = "loves gardening"
	var out bytes.Buffer
	session := NewSession(strings.NewReader("n\n"), &out, notes)

	_, updated, err := session.UpdateNotes("Ann")
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Contains(t, out.String(), "loves gardening")
}

func TestUpdateNotes_NoAnswerIsSideEffectFree(t *testing.T) {
	notes := newMockNotes()
	session := NewSession(strings.NewReader("n\n"), &bytes.Buffer{}, notes)

	text, updated, err := session.UpdateNotes("Ann")
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Empty(t, text)
	assert.Empty(t, notes.recorded)
}

func TestUpdateNotes_EmptyTextIsSideEffectFree(t *testing.T) {
	notes := newMockNotes()
	var out bytes.Buffer
	session := NewSession(strings.NewReader("y\n\n"), &out, notes)

	_, updated, err := session.UpdateNotes("Ann")
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Empty(t, notes.recorded)
	assert.Contains(t, out.String(), "No changes made.")
}

func TestUpdateNotes_EOFDuringEntryIsNoUpdate(t *testing.T) {
	// Input ends mid-entry with no blank line and no text at all after the
	// confirmation: treated as "no update".
	notes := newMockNotes()
	session := NewSession(strings.NewReader("y\n"), &bytes.Buffer{}, notes)

	_, updated, err := session.UpdateNotes("Ann")
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Empty(t, notes.recorded)
}

func TestUpdateNotes_SaveFailureIsReported(t *testing.T) {
	notes := newMockNotes()
	notes.saveErr = errors.New("disk full")
	session := NewSession(strings.NewReader("y\nsome text\n\n"), &bytes.Buffer{}, notes)

	_, updated, err := session.UpdateNotes("Ann")
	assert.Error(t, err)
	assert.False(t, updated)
}

func TestUpdateNotes_LoadFailureDegradesToEmpty(t *testing.T) {
	notes := newMockNotes()
	notes.loadErr = errors.New("corrupt file")
	var out bytes.Buffer
	session := NewSession(strings.NewReader("n\n"), &out, notes)

	_, updated, err := session.UpdateNotes("Ann")
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Contains(t, out.String(), "could not read existing notes")
}

func TestCollectText_StopsAtBlankLine(t *testing.T) {
	session := NewSession(strings.NewReader("one\ntwo\n\nthree\n"), &bytes.Buffer{}, newMockNotes())
	assert.Equal(t, "one\ntwo", session.CollectText())
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{" y \n", true},
		{"n\n", false},
		{"anything\n", false},
		{"", false}, // EOF
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input)+"_input", func(t *testing.T) {
			session := NewSession(strings.NewReader(tt.input), &bytes.Buffer{}, newMockNotes())
			assert.Equal(t, tt.want, session.Confirm("? "))
		})
	}
}
