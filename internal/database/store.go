package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// Store defines the read and bind operations the bot performs against the
// relational schema. A missing row is a valid negative result (nil or
// found=false), never an error; errors mean the store itself failed.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// FindUserByPhone returns the user with the given phone number, or
	// nil, nil when no such user exists.
	FindUserByPhone(ctx context.Context, phone string) (*User, error)

	// BindTelegram upserts the telegram_id → user_id binding. An existing
	// binding for the same telegram_id is overwritten.
	BindTelegram(ctx context.Context, telegramID, userID int64) error

	// UserByTelegramID resolves a Telegram identity to its bound user via
	// the binding table, or nil, nil when the identity is not bound.
	UserByTelegramID(ctx context.Context, telegramID int64) (*User, error)

	// GroupCodeByID returns the external group code for an internal group
	// id. found is false when the group does not exist.
	GroupCodeByID(ctx context.Context, groupID int64) (code string, found bool, err error)

	// TeacherAPIIDByID returns the external API id for an internal teacher
	// id. found is false when the teacher does not exist.
	TeacherAPIIDByID(ctx context.Context, teacherID int64) (apiID int64, found bool, err error)

	// RunMaintenance refreshes planner statistics for the owned binding table.
	RunMaintenance(ctx context.Context) error
}

// sqlxStore implements Store on top of sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a new Store backed by sqlx. It requires a connected
// sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlxStore) FindUserByPhone(ctx context.Context, phone string) (*User, error) {
	var user User
	query := `
        SELECT id, phone, group_id, teacher_id
        FROM public.users
        WHERE phone = $1
        LIMIT 1;
    `

	err := s.db.GetContext(ctx, &user, query, phone)
	if errors.Is(err, sql.ErrNoRows) {
		s.logger.DebugContext(ctx, "No user for phone", "phone", phone)
		return nil, nil
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Error finding user by phone", "error", err)
		return nil, fmt.Errorf("failed to find user by phone: %w", err)
	}

	return &user, nil
}

func (s *sqlxStore) BindTelegram(ctx context.Context, telegramID, userID int64) error {
	query := `
        INSERT INTO telegram_users (telegram_id, user_id)
        VALUES ($1, $2)
        ON CONFLICT (telegram_id) DO UPDATE SET user_id = EXCLUDED.user_id;
    `

	if _, err := s.db.ExecContext(ctx, query, telegramID, userID); err != nil {
		s.logger.ErrorContext(ctx, "Error binding telegram identity",
			"telegram_id", telegramID, "user_id", userID, "error", err)
		return fmt.Errorf("failed to bind telegram id %d to user %d: %w", telegramID, userID, err)
	}

	s.logger.DebugContext(ctx, "Telegram identity bound", "telegram_id", telegramID, "user_id", userID)
	return nil
}

func (s *sqlxStore) UserByTelegramID(ctx context.Context, telegramID int64) (*User, error) {
	var user User
	query := `
        SELECT u.id, u.phone, u.group_id, u.teacher_id
        FROM public.users u
        JOIN telegram_users t ON t.user_id = u.id
        WHERE t.telegram_id = $1
        LIMIT 1;
    `

	err := s.db.GetContext(ctx, &user, query, telegramID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Error resolving user by telegram id",
			"telegram_id", telegramID, "error", err)
		return nil, fmt.Errorf("failed to resolve user by telegram id %d: %w", telegramID, err)
	}

	return &user, nil
}

func (s *sqlxStore) GroupCodeByID(ctx context.Context, groupID int64) (string, bool, error) {
	var code string
	query := `SELECT code FROM public.groups WHERE id = $1 LIMIT 1;`

	err := s.db.GetContext(ctx, &code, query, groupID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Error looking up group code", "group_id", groupID, "error", err)
		return "", false, fmt.Errorf("failed to look up group code for id %d: %w", groupID, err)
	}

	return code, true, nil
}

func (s *sqlxStore) TeacherAPIIDByID(ctx context.Context, teacherID int64) (int64, bool, error) {
	var apiID int64
	query := `SELECT api_id FROM public.teachers WHERE id = $1 LIMIT 1;`

	err := s.db.GetContext(ctx, &apiID, query, teacherID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Error looking up teacher api id", "teacher_id", teacherID, "error", err)
		return 0, false, fmt.Errorf("failed to look up teacher api id for id %d: %w", teacherID, err)
	}

	return apiID, true, nil
}

func (s *sqlxStore) RunMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Running database maintenance (ANALYZE telegram_users)")

	if _, err := s.db.ExecContext(ctx, "ANALYZE telegram_users;"); err != nil {
		s.logger.ErrorContext(ctx, "Database maintenance failed", "error", err)
		return fmt.Errorf("failed to analyze telegram_users: %w", err)
	}

	return nil
}
