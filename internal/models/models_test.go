package models_test

import (
	"testing"
	"time"

	"telegram-quiz-bot/internal/models"
)

func TestLevelValid(t *testing.T) {
	for _, l := range models.Levels {
		if !l.Valid() {
			t.Fatalf("%s must be valid", l)
		}
	}
	for _, bad := range []models.Level{"", "expert", "EASY"} {
		if bad.Valid() {
			t.Fatalf("%q must be invalid", bad)
		}
	}
}

func TestAirdroppedToday(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 30, 0, 0, time.Local)

	u := &models.User{}
	if u.AirdroppedToday(now) {
		t.Fatal("never airdropped")
	}

	u.LastAirdrop = now.Add(-2 * time.Hour).Unix()
	if !u.AirdroppedToday(now) {
		t.Fatal("same calendar day must count")
	}

	u.LastAirdrop = now.AddDate(0, 0, -1).Unix()
	if u.AirdroppedToday(now) {
		t.Fatal("yesterday must not count")
	}

	// Just before midnight vs just after: different calendar days.
	u.LastAirdrop = time.Date(2025, 2, 28, 23, 59, 0, 0, time.Local).Unix()
	if u.AirdroppedToday(time.Date(2025, 3, 1, 0, 1, 0, 0, time.Local)) {
		t.Fatal("midnight rollover must start a new day")
	}
}

func TestHasPendingAirdrop(t *testing.T) {
	u := &models.User{}
	if u.HasPendingAirdrop() {
		t.Fatal("empty slot")
	}
	u.PendingLevel = "easy"
	u.PendingText = "2+2?"
	if !u.HasPendingAirdrop() {
		t.Fatal("expected pending airdrop")
	}
}
