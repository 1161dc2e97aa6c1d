package database

import (
	"database/sql"
	"time"
)

// User is a row of the externally owned public.users table. Exactly one of
// GroupID or TeacherID is expected to be set in practice; this is not
// enforced by the schema.
type User struct {
	ID        int64         `db:"id"`
	Phone     string        `db:"phone"`
	GroupID   sql.NullInt64 `db:"group_id"`
	TeacherID sql.NullInt64 `db:"teacher_id"`
}

// TelegramUser maps a Telegram identity to an internal user record.
// At most one binding exists per telegram_id; re-registration overwrites
// the user_id (last write wins).
type TelegramUser struct {
	TelegramID   int64     `db:"telegram_id"`
	UserID       int64     `db:"user_id"`
	RegisteredAt time.Time `db:"registered_at"`
}
