package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"telegram-quiz-bot/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.DBPath != "bot.db" || cfg.TasksFile != "task_data.json" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.MaxAttempts != 1 {
		t.Fatalf("default must be single strike, got %d", cfg.MaxAttempts)
	}
	if len(cfg.AirdropTimes) == 0 {
		t.Fatal("expected a default airdrop time")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
db_path: /data/quiz.db
tasks_file: /data/tasks.json
airdrop_times: ["09:00", "21:00"]
max_attempts: 3
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/data/quiz.db" || cfg.TasksFile != "/data/tasks.json" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if len(cfg.AirdropTimes) != 2 || cfg.AirdropTimes[1] != "21:00" {
		t.Fatalf("unexpected times %v", cfg.AirdropTimes)
	}
	if cfg.MaxAttempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", cfg.MaxAttempts)
	}
}

func TestLoadClampsMaxAttempts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("max_attempts: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxAttempts != 1 {
		t.Fatalf("expected clamp to 1, got %d", cfg.MaxAttempts)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
