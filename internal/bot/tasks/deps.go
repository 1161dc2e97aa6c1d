// Package tasks implements scheduled tasks for the timetable bot and their
// registration.
package tasks

import (
	"log/slog"

	"rozkladbot/internal/config"
	"rozkladbot/internal/database"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
	Config *config.Config
}
