package commands

import (
	"context"

	"go.uber.org/zap"

	"daybreak/internal/config"
	"daybreak/pkg/contacts"
	"daybreak/pkg/notes"
	"daybreak/pkg/rotation"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg       *config.Config
	Scheduler *rotation.Scheduler
	Notes     *notes.Store
	Directory *contacts.Directory
	Logger    *zap.Logger
	Ctx       context.Context
}
