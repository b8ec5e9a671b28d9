package services

import (
	"context"

	"daybreak/pkg/clients/youtubeclient"
	"daybreak/pkg/contacts"
	"daybreak/pkg/rotation"
)

// ContactSelector is the slice of the rotation scheduler the prompt services
// use.
type ContactSelector interface {
	Select(c rotation.Cadence) (name string, ok bool, err error)
	Satisfied(c rotation.Cadence) bool
	MarkSatisfied(c rotation.Cadence) error
}

// DirectoryStore is the slice of the contact directory the note prompt uses.
type DirectoryStore interface {
	Load() ([]contacts.Contact, error)
	Save(list []contacts.Contact, backup bool) error
}

// NotesPrompter runs the interactive notes-update session for a key.
type NotesPrompter interface {
	UpdateNotes(key string) (text string, updated bool, err error)
}

// VideoFinder locates a channel's latest upload.
type VideoFinder interface {
	LatestVideo(query string) (*youtubeclient.Video, error)
}

// VerseFetcher returns the original-language words of a verse.
type VerseFetcher interface {
	OriginalText(ctx context.Context, verseID string) ([]string, error)
}
