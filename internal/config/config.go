// Package config provides configuration loading and validation for the
// timetable bot. Values come from defaults, an optional config.yaml, and
// BOT_* environment variables, in that order of precedence.
package config

import "time"

// Config holds the full application configuration.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Timetable TimetableConfig `mapstructure:"timetable"`
	Worker    WorkerConfig    `mapstructure:"worker"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Messages  MessagesConfig  `mapstructure:"messages"`
}

// LoggerConfig controls log level and output format.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds Telegram transport settings.
type TelegramConfig struct {
	Token string `mapstructure:"token" validate:"required"`
}

// DatabaseConfig holds PostgreSQL connection settings. URL is a standard
// postgres:// connection string.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url" validate:"required"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gt=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// TimetableConfig holds remote timetable API settings.
type TimetableConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Format  string        `mapstructure:"format" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1s,max=5m"`
}

// WorkerConfig bounds the pool that runs blocking lookups and fetches off
// the update dispatch path.
type WorkerConfig struct {
	PoolSize int64 `mapstructure:"pool_size" validate:"gt=0"`
}

// SchedulerConfig holds per-task scheduling settings keyed by task name.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// TaskConfig enables a registered scheduled task with a cron expression.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// MessagesConfig is the catalog of user-facing reply texts. Defaults are
// Ukrainian; any entry can be overridden from config.
type MessagesConfig struct {
	Usage               string `mapstructure:"usage"`
	GroupUsage          string `mapstructure:"group_usage"`
	TeacherUsage        string `mapstructure:"teacher_usage"`
	TeacherIDNotNumber  string `mapstructure:"teacher_id_not_number"`
	RegisterUsage       string `mapstructure:"register_usage"`
	PhoneNotFound       string `mapstructure:"phone_not_found"`
	Registered          string `mapstructure:"registered"`
	NotRegistered       string `mapstructure:"not_registered"`
	QueryingGroupFmt    string `mapstructure:"querying_group_fmt"`
	QueryingTeacherFmt  string `mapstructure:"querying_teacher_fmt"`
	QueryingMyGroupFmt  string `mapstructure:"querying_my_group_fmt"`
	QueryingMeFmt       string `mapstructure:"querying_me_fmt"`
	GroupInconsistent   string `mapstructure:"group_inconsistent"`
	TeacherInconsistent string `mapstructure:"teacher_inconsistent"`
	ProfileIncomplete   string `mapstructure:"profile_incomplete"`
	HTTPErrorFmt        string `mapstructure:"http_error_fmt"`
	GeneralErrorFmt     string `mapstructure:"general_error_fmt"`
}
