package commands

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"daybreak/internal/config"
	"daybreak/pkg/contacts"
	"daybreak/pkg/notes"
	"daybreak/pkg/rotation"
)

func newTestApp(t *testing.T) *AppContext {
	t.Helper()
	tmp := t.TempDir()

	cfg := config.Default()
	cfg.DataDir = tmp

	return &AppContext{
		Cfg:       cfg,
		Scheduler: rotation.NewScheduler(rotation.NewFileStore(filepath.Join(tmp, "state.json")), zap.NewNop()),
		Notes:     notes.NewStore(filepath.Join(tmp, "notes.json")),
		Directory: contacts.NewDirectory(filepath.Join(tmp, "contacts.json")),
		Logger:    zap.NewNop(),
		Ctx:       context.Background(),
	}
}

func newTestSession(app *AppContext) map[string]*cobra.Command {
	root := &cobra.Command{Use: "daybreak"}
	root.AddCommand(PromptCmd(app))
	root.AddCommand(ContactsCmd(app))
	root.AddCommand(NotesCmd(app))
	root.AddCommand(InteractiveCmd(app))
	return sessionCommands(root)
}

func TestSession_LeafCommand(t *testing.T) {
	app := newTestApp(t)
	in := strings.NewReader("prompt\nexit\n")

	err := runSession(in, newTestSession(app))
	require.NoError(t, err)
}

func TestSession_GroupCommandDescendsToSubcommand(t *testing.T) {
	app := newTestApp(t)
	in := strings.NewReader("contacts set frequent Ann Bob\ncontacts done frequent\nexit\n")

	err := runSession(in, newTestSession(app))
	require.NoError(t, err)

	frequent, _ := app.Scheduler.Lists()
	assert.Equal(t, []string{"Ann", "Bob"}, frequent)
	assert.True(t, app.Scheduler.Satisfied(rotation.Frequent))
}

func TestSession_QuotedArgumentStaysWhole(t *testing.T) {
	app := newTestApp(t)
	in := strings.NewReader("contacts set infrequent \"Ann Smith\"\nexit\n")

	err := runSession(in, newTestSession(app))
	require.NoError(t, err)

	_, infrequent := app.Scheduler.Lists()
	assert.Equal(t, []string{"Ann Smith"}, infrequent)
}

func TestSession_NestedSubcommandWithArgs(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.Notes.Record("Ann", "called, doing well"))
	in := strings.NewReader("notes history Ann\nexit\n")

	err := runSession(in, newTestSession(app))
	require.NoError(t, err)
}

func TestSession_BareGroupCommandShowsHelp(t *testing.T) {
	app := newTestApp(t)
	in := strings.NewReader("contacts\nexit\n")

	err := runSession(in, newTestSession(app))
	require.NoError(t, err)
}

func TestSession_UnknownCommandContinues(t *testing.T) {
	app := newTestApp(t)
	in := strings.NewReader("bogus\nprompt\nexit\n")

	err := runSession(in, newTestSession(app))
	require.NoError(t, err)
}

func TestSession_EOFEndsSession(t *testing.T) {
	app := newTestApp(t)
	err := runSession(strings.NewReader(""), newTestSession(app))
	require.NoError(t, err)
}

func TestDispatch_GroupCommandWithSubcommandArgs(t *testing.T) {
	app := newTestApp(t)

	require.NotPanics(t, func() {
		dispatch(ContactsCmd(app), []string{"list"})
	})
}

func TestDispatch_GroupCommandWithoutArgs(t *testing.T) {
	app := newTestApp(t)

	require.NotPanics(t, func() {
		dispatch(ContactsCmd(app), nil)
	})
}

func TestDispatch_BadSubcommandArgs(t *testing.T) {
	app := newTestApp(t)

	// done wants exactly one cadence; the error is printed, never panicked.
	require.NotPanics(t, func() {
		dispatch(ContactsCmd(app), []string{"done"})
	})
	assert.False(t, app.Scheduler.Satisfied(rotation.Frequent))
}

func TestSplitCommandLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr bool
	}{
		{"plain words", "contacts set frequent Ann", []string{"contacts", "set", "frequent", "Ann"}, false},
		{"double quotes", `contacts show "Ann Smith"`, []string{"contacts", "show", "Ann Smith"}, false},
		{"single quotes", "timer 'Scene Writing' 15", []string{"timer", "Scene Writing", "15"}, false},
		{"empty line", "", nil, false},
		{"unclosed quote", `contacts show "Ann`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitCommandLine(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
