package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"telegram-quiz-bot/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

// DB is the persistent user ledger over sqlite.
type DB struct{ *sql.DB }

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	if err = migrate(db); err != nil {
		return nil, err
	}
	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}

// ---------- users -----------------------------------------------------------

// GetOrCreateUser returns the ledger row for userID, inserting a fresh one on
// first contact. Idempotent.
func (d *DB) GetOrCreateUser(ctx context.Context, userID int64) (*models.User, error) {
	_, err := d.ExecContext(ctx, `
        INSERT INTO users (user_id, created_at) VALUES (?,?)
        ON CONFLICT(user_id) DO NOTHING
    `, userID, time.Now().Unix())
	if err != nil {
		return nil, err
	}
	return d.GetUser(ctx, userID)
}

func (d *DB) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	var u models.User
	err := d.QueryRowContext(ctx, `
        SELECT user_id, balance, correct_answers, total_questions,
               pending_airdrop_level, pending_airdrop_question, last_airdrop, created_at
        FROM users WHERE user_id=?`, userID,
	).Scan(&u.ID, &u.Balance, &u.CorrectAnswers, &u.TotalQuestions,
		&u.PendingLevel, &u.PendingText, &u.LastAirdrop, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *DB) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := d.QueryContext(ctx, `
        SELECT user_id, balance, correct_answers, total_questions,
               pending_airdrop_level, pending_airdrop_question, last_airdrop, created_at
        FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Balance, &u.CorrectAnswers, &u.TotalQuestions,
			&u.PendingLevel, &u.PendingText, &u.LastAirdrop, &u.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	return res, rows.Err()
}

// ---------- answers ---------------------------------------------------------

// ApplyAnswer commits the outcome of one scored answer as a single
// transaction: the stat counters, the optional balance credit and the
// answer-log row land together or not at all.
func (d *DB) ApplyAnswer(ctx context.Context, entry models.AnswerLog, reward int) error {
	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	credit := 0
	correct := 0
	if entry.IsCorrect {
		credit = reward
		correct = 1
	}
	res, err := tx.ExecContext(ctx, `
        UPDATE users SET balance = balance + ?,
                         correct_answers = correct_answers + ?,
                         total_questions = total_questions + 1
        WHERE user_id = ?`, credit, correct, entry.UserID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return fmt.Errorf("apply answer: user %d not found", entry.UserID)
	}

	if entry.CreatedAt == 0 {
		entry.CreatedAt = time.Now().Unix()
	}
	if _, err := tx.ExecContext(ctx, `
        INSERT INTO answers (user_id, question, answer_given, is_correct, level, created_at)
        VALUES (?,?,?,?,?,?)`,
		entry.UserID, entry.Question, entry.AnswerGiven, entry.IsCorrect, string(entry.Level), entry.CreatedAt,
	); err != nil {
		return err
	}
	return tx.Commit()
}

// CountAnswers returns the number of answer-log rows for a user.
func (d *DB) CountAnswers(ctx context.Context, userID int64) (int, error) {
	var n int
	err := d.QueryRowContext(ctx, `SELECT COUNT(*) FROM answers WHERE user_id=?`, userID).Scan(&n)
	return n, err
}

// ---------- airdrops --------------------------------------------------------

// SetPendingAirdrop stores an offered airdrop and stamps last_airdrop in one
// write. The scheduler checks eligibility before calling; the WHERE guard
// keeps a live pending slot from being overwritten regardless.
func (d *DB) SetPendingAirdrop(ctx context.Context, userID int64, task models.Task, now time.Time) error {
	res, err := d.ExecContext(ctx, `
        UPDATE users SET pending_airdrop_level = ?,
                         pending_airdrop_question = ?,
                         last_airdrop = ?
        WHERE user_id = ? AND pending_airdrop_question = ''`,
		string(task.Level), task.Question, now.Unix(), userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return fmt.Errorf("set pending airdrop: user %d missing or already pending", userID)
	}
	return nil
}

// TakePendingAirdrop reads and clears the pending slot in one transaction, so
// a duplicate claim observes an empty slot. ok is false when nothing was
// pending.
func (d *DB) TakePendingAirdrop(ctx context.Context, userID int64) (level models.Level, question string, ok bool, err error) {
	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return "", "", false, err
	}
	defer tx.Rollback()

	var lvl, text string
	err = tx.QueryRowContext(ctx, `
        SELECT pending_airdrop_level, pending_airdrop_question
        FROM users WHERE user_id = ?`, userID).Scan(&lvl, &text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", false, nil
	}
	if err != nil {
		return "", "", false, err
	}
	if text == "" {
		return "", "", false, nil
	}

	if _, err = tx.ExecContext(ctx, `
        UPDATE users SET pending_airdrop_level = '', pending_airdrop_question = ''
        WHERE user_id = ?`, userID); err != nil {
		return "", "", false, err
	}
	if err = tx.Commit(); err != nil {
		return "", "", false, err
	}
	return models.Level(lvl), text, true, nil
}

// ---------- schedule --------------------------------------------------------

// ScheduleTimes returns the configured airdrop times of day ("HH:MM"), sorted.
func (d *DB) ScheduleTimes(ctx context.Context) ([]string, error) {
	rows, err := d.QueryContext(ctx, `SELECT time_of_day FROM airdrop_schedule ORDER BY time_of_day`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

// SeedSchedule inserts the given times if the table is still empty, so a
// deployed database keeps its own schedule across config changes.
func (d *DB) SeedSchedule(ctx context.Context, times []string) error {
	var n int
	if err := d.QueryRowContext(ctx, `SELECT COUNT(*) FROM airdrop_schedule`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, t := range times {
		if _, err := d.ExecContext(ctx, `
            INSERT INTO airdrop_schedule (time_of_day) VALUES (?)
            ON CONFLICT(time_of_day) DO NOTHING`, t); err != nil {
			return err
		}
	}
	return nil
}
