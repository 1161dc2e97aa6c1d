package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from:
// 1. Default values
// 2. The YAML file at configPath (optional; missing file is not an error)
// 3. BOT_* environment variables (e.g. BOT_TELEGRAM_TOKEN, BOT_DATABASE_URL)
//
// The result is validated; a missing Telegram token or database URL is a
// hard failure so the process refuses to start without them.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		// Missing config file is fine, defaults plus env cover everything.
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.json", false)

	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	v.SetDefault("timetable.base_url", "http://rozklad.ksaeu.kherson.ua/cgi-bin/timetable_export.cgi")
	v.SetDefault("timetable.format", "json")
	v.SetDefault("timetable.timeout", 15*time.Second)

	v.SetDefault("worker.pool_size", 8)

	v.SetDefault("scheduler.tasks.db_maintenance.enabled", true)
	v.SetDefault("scheduler.tasks.db_maintenance.schedule", "0 0 4 * * *")

	v.SetDefault("messages.usage", defaultUsage)
	v.SetDefault("messages.group_usage", "Використання: /group <код_групи> [begin YYYY-MM-DD] [end YYYY-MM-DD]")
	v.SetDefault("messages.teacher_usage", "Використання: /teacher <api_id> [begin YYYY-MM-DD] [end YYYY-MM-DD]")
	v.SetDefault("messages.teacher_id_not_number", "api_id має бути числом.")
	v.SetDefault("messages.register_usage", "Використання: /register <phone>. Наприклад: /register +380501234567")
	v.SetDefault("messages.phone_not_found", "Користувача з таким телефоном не знайдено в БД.")
	v.SetDefault("messages.registered", "Зв'язок встановлено. Тепер використай /me, щоб отримувати свій розклад.")
	v.SetDefault("messages.not_registered", "Тебе не знайдено. Зареєструйся: /register <phone>")
	v.SetDefault("messages.querying_group_fmt", "Запитую розклад для групи %s з %s по %s...")
	v.SetDefault("messages.querying_teacher_fmt", "Запитую розклад для викладача %d з %s по %s...")
	v.SetDefault("messages.querying_my_group_fmt", "Запитую розклад для твоєї групи %s з %s по %s...")
	v.SetDefault("messages.querying_me_fmt", "Запитую розклад для тебе (teacher id=%d) з %s по %s...")
	v.SetDefault("messages.group_inconsistent", "У твоєму профілі є group_id, але не знайдено відповідної групи.")
	v.SetDefault("messages.teacher_inconsistent", "У твоєму профілі є teacher_id, але не знайдено відповідного викладача.")
	v.SetDefault("messages.profile_incomplete", "У твоєму профілі не вказано ні group_id, ні teacher_id.")
	v.SetDefault("messages.http_error_fmt", "HTTP error при зверненні до розкладу: %v")
	v.SetDefault("messages.general_error_fmt", "Помилка: %v")
}

const defaultUsage = "Привіт! Я бот розкладу.\n\n" +
	"Команди:\n" +
	"/group <код групи> [begin YYYY-MM-DD] [end YYYY-MM-DD] — отримати розклад групи\n" +
	"/teacher <api_id> [begin YYYY-MM-DD] [end YYYY-MM-DD] — отримати розклад викладача\n" +
	"/register <phone> — зареєструвати свій аккаунт (пошук у users.phone) для команди /me\n" +
	"/me [begin YYYY-MM-DD] [end YYYY-MM-DD] — отримати твій розклад (якщо зареєстровано у DB)\n" +
	"/help — показати це повідомлення\n\n" +
	"Приклад: /group 202-1-Д\n"
