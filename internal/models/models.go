package models

import "time"

// Level is a task difficulty tier.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelNormal Level = "normal"
	LevelHard   Level = "hard"
)

// Levels lists all difficulty tiers in menu order.
var Levels = []Level{LevelEasy, LevelNormal, LevelHard}

// Valid reports whether l is one of the known tiers.
func (l Level) Valid() bool {
	switch l {
	case LevelEasy, LevelNormal, LevelHard:
		return true
	}
	return false
}

// Task is a quiz question. Immutable after catalog load, always passed by value.
type Task struct {
	Level    Level  `json:"-"`
	Question string `json:"question"`
	Answer   string `json:"answer"` // matched case-insensitively
	Reward   int    `json:"reward"`
}

// User is the persistent per-user ledger record.
type User struct {
	ID             int64  `db:"user_id"`
	Balance        int    `db:"balance"`
	CorrectAnswers int    `db:"correct_answers"`
	TotalQuestions int    `db:"total_questions"`
	PendingLevel   string `db:"pending_airdrop_level"`    // empty -> nothing pending
	PendingText    string `db:"pending_airdrop_question"` // question text of the offered airdrop
	LastAirdrop    int64  `db:"last_airdrop"`             // unix seconds, 0 -> never
	CreatedAt      int64  `db:"created_at"`
}

// HasPendingAirdrop reports whether an offered airdrop awaits a claim.
func (u *User) HasPendingAirdrop() bool {
	return u.PendingText != ""
}

// AirdroppedToday reports whether the user was already offered an airdrop on
// the calendar day of now (the dedup key is the day, not the schedule slot).
func (u *User) AirdroppedToday(now time.Time) bool {
	if u.LastAirdrop == 0 {
		return false
	}
	last := time.Unix(u.LastAirdrop, 0).In(now.Location())
	return last.Format("2006-01-02") == now.Format("2006-01-02")
}

// AnswerLog is one row of the append-only answer history.
type AnswerLog struct {
	ID          int64  `db:"id"`
	UserID      int64  `db:"user_id"`
	Question    string `db:"question"`
	AnswerGiven string `db:"answer_given"` // normalized form that was compared
	IsCorrect   bool   `db:"is_correct"`
	Level       Level  `db:"level"`
	CreatedAt   int64  `db:"created_at"`
}
