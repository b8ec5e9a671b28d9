// Package prompt implements the interactive notes-update session: a yes/no
// confirmation followed by blank-line-terminated free-text entry. The input
// source is injected so tests can feed a fixed script.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// NotesStore is the slice of the notes store the session needs.
type NotesStore interface {
	Current(key string) (string, error)
	Record(key, text string) error
}

// Session reads answers line by line from in and writes questions to out.
type Session struct {
	scanner *bufio.Scanner
	out     io.Writer
	notes   NotesStore
}

// NewSession creates an interactive session over the given reader and writer.
func NewSession(in io.Reader, out io.Writer, notes NotesStore) *Session {
	return &Session{
		scanner: bufio.NewScanner(in),
		out:     out,
		notes:   notes,
	}
}

// Confirm asks a yes/no question and reads one line. Anything other than
// y/yes (EOF and read errors included) counts as no.
func (s *Session) Confirm(question string) bool {
	fmt.Fprint(s.out, question)
	if !s.scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(s.scanner.Text()))
	return answer == "y" || answer == "yes"
}

// CollectText reads lines until the first empty line (or EOF, which is
// treated the same way) and joins them with newlines. An interrupted or
// failed read simply ends collection; nothing is persisted here.
func (s *Session) CollectText() string {
	var lines []string
	for s.scanner.Scan() {
		line := s.scanner.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// UpdateNotes shows key's current notes and offers to replace them. It is the
// single interactive decision point of the tool: answering no, or entering no
// text, changes nothing. On yes with non-empty text the new revision is
// recorded and returned.
func (s *Session) UpdateNotes(key string) (text string, updated bool, err error) {
	current, err := s.notes.Current(key)
	if err != nil {
		// Unreadable notes degrade to "none"; the update can still proceed.
		fmt.Fprintf(s.out, "Warning: could not read existing notes: %v\n", err)
		current = ""
	}

	if current != "" {
		fmt.Fprintf(s.out, "Current notes for %s:\n%s\n\n", key, current)
	} else {
		fmt.Fprintf(s.out, "No existing notes for %s.\n\n", key)
	}

	if !s.Confirm("Update these notes? (y/n) ") {
		return "", false, nil
	}

	fmt.Fprintln(s.out, "Enter new notes. Finish with a blank line:")
	text = s.CollectText()
	if text == "" {
		fmt.Fprintln(s.out, "No changes made.")
		return "", false, nil
	}

	if err := s.notes.Record(key, text); err != nil {
		return "", false, fmt.Errorf("failed to record notes for %s: %w", key, err)
	}
	fmt.Fprintln(s.out, "Notes updated.")
	return text, true, nil
}
