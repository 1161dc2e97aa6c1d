package handlers

import (
	"log/slog"

	"rozkladbot/internal/config"
	"rozkladbot/internal/database"
	"rozkladbot/internal/timetable"
	"rozkladbot/internal/worker"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger    *slog.Logger
	Config    *config.Config
	Store     database.Store
	Timetable *timetable.Client
	Pool      *worker.Pool
}
