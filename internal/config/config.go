package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const tokenSecretPath = "/run/secrets/telegram_bot_token"

// Config holds everything but the bot token, which comes from a Docker
// secret or the environment (see BotToken).
type Config struct {
	DBPath       string   `yaml:"db_path"`
	TasksFile    string   `yaml:"tasks_file"`
	AirdropTimes []string `yaml:"airdrop_times"` // "HH:MM", local time
	MaxAttempts  int      `yaml:"max_attempts"`  // wrong tries before a task fails
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DBPath:       "bot.db",
		TasksFile:    "task_data.json",
		AirdropTimes: []string{"12:00"},
		MaxAttempts:  1,
	}
}

// Load reads YAML config from path, filling unset fields with defaults.
// An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "bot.db"
	}
	if cfg.TasksFile == "" {
		cfg.TasksFile = "task_data.json"
	}
	if len(cfg.AirdropTimes) == 0 {
		cfg.AirdropTimes = []string{"12:00"}
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return cfg, nil
}

// BotToken resolves the Telegram token: Docker secret first, then the
// TELEGRAM_BOT_TOKEN environment variable.
func BotToken() (string, error) {
	if data, err := os.ReadFile(tokenSecretPath); err == nil {
		if token := strings.TrimSpace(string(data)); token != "" {
			return token, nil
		}
	}
	if token := strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")); token != "" {
		return token, nil
	}
	return "", errors.New("токен не найден: отсутствует и Docker Secret, и переменная окружения")
}
