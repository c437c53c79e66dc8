package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"telegram-quiz-bot/internal/models"
	"telegram-quiz-bot/internal/session"
)

var (
	// ErrNoTasks is returned when the chosen level has no loaded tasks.
	ErrNoTasks = errors.New("no tasks for this level")
	// ErrNothingToClaim is returned when a claim arrives with no pending airdrop.
	ErrNothingToClaim = errors.New("no pending airdrop to claim")
	// ErrAirdropExpired is returned when a pending airdrop no longer resolves
	// against the catalog; the slot is cleared as part of the claim.
	ErrAirdropExpired = errors.New("pending airdrop expired")
	// ErrNoActiveTask is returned when an answer arrives while the user is idle.
	ErrNoActiveTask = errors.New("no active task")
)

// Ledger is the persistent store the engine commits outcomes to.
type Ledger interface {
	GetOrCreateUser(ctx context.Context, userID int64) (*models.User, error)
	ApplyAnswer(ctx context.Context, entry models.AnswerLog, reward int) error
	TakePendingAirdrop(ctx context.Context, userID int64) (models.Level, string, bool, error)
}

// Catalog selects and resolves quiz tasks.
type Catalog interface {
	Pick(level models.Level) (models.Task, error)
	Find(level models.Level, question string) (models.Task, bool)
}

// Outcome classifies the result of a submitted answer.
type Outcome int

const (
	// OutcomeCorrect: answer matched, reward credited, session idle again.
	OutcomeCorrect Outcome = iota
	// OutcomeWrong: final mismatch, stats recorded, session idle again.
	OutcomeWrong
	// OutcomeRetry: mismatch with attempts left, task still active.
	OutcomeRetry
)

// AnswerResult reports how a submission was scored.
type AnswerResult struct {
	Outcome      Outcome
	Reward       int // credited amount, only for OutcomeCorrect
	AttemptsLeft int // only meaningful for OutcomeRetry
}

// Engine drives the per-user interaction state machine. All transitions for
// one user run under that user's session lock; different users proceed in
// parallel.
type Engine struct {
	sessions    *session.Store
	ledger      Ledger
	catalog     Catalog
	maxAttempts int
}

// New builds an engine. maxAttempts is the number of wrong tries before a
// task is failed; values below 1 mean single strike.
func New(sessions *session.Store, ledger Ledger, catalog Catalog, maxAttempts int) *Engine {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Engine{
		sessions:    sessions,
		ledger:      ledger,
		catalog:     catalog,
		maxAttempts: maxAttempts,
	}
}

// Start registers the user on first contact and returns the ledger record.
func (e *Engine) Start(ctx context.Context, userID int64) (*models.User, error) {
	return e.ledger.GetOrCreateUser(ctx, userID)
}

// Balance returns the user's current coin balance.
func (e *Engine) Balance(ctx context.Context, userID int64) (int, error) {
	u, err := e.ledger.GetOrCreateUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return u.Balance, nil
}

// ChooseLevel assigns a random task of the given level and moves the session
// to awaiting-answer. An active task, if any, is discarded first: a menu
// action always restarts from idle.
func (e *Engine) ChooseLevel(ctx context.Context, userID int64, level models.Level) (models.Task, error) {
	if _, err := e.ledger.GetOrCreateUser(ctx, userID); err != nil {
		return models.Task{}, err
	}

	var task models.Task
	var outErr error
	e.sessions.Do(userID, func(s *session.Session) {
		s.Reset()
		t, err := e.catalog.Pick(level)
		if err != nil {
			outErr = ErrNoTasks
			return
		}
		s.Assign(t, models.ModeAwaitingAnswer)
		task = t
	})
	return task, outErr
}

// ClaimAirdrop consumes the user's pending airdrop and turns it into an
// active question. The pending slot is cleared in the same store transaction
// that reads it, so a duplicate claim sees ErrNothingToClaim.
func (e *Engine) ClaimAirdrop(ctx context.Context, userID int64) (models.Task, error) {
	var task models.Task
	var outErr error
	e.sessions.Do(userID, func(s *session.Session) {
		s.Reset()

		level, question, ok, err := e.ledger.TakePendingAirdrop(ctx, userID)
		if err != nil {
			outErr = fmt.Errorf("take pending airdrop: %w", err)
			return
		}
		if !ok {
			outErr = ErrNothingToClaim
			return
		}

		// The catalog stays the source of truth; a stored question that no
		// longer resolves is treated as expired and the slot stays cleared.
		t, found := e.catalog.Find(level, question)
		if !found {
			outErr = ErrAirdropExpired
			return
		}
		s.Assign(t, models.ModeAwaitingAirdropAnswer)
		task = t
	})
	return task, outErr
}

// SubmitAnswer scores free text against the active task. Matching is
// case-insensitive with surrounding whitespace ignored. The balance credit,
// stat counters and answer-log row commit as one transaction; on storage
// failure the session is forced idle and no partial credit survives.
func (e *Engine) SubmitAnswer(ctx context.Context, userID int64, text string) (AnswerResult, error) {
	var res AnswerResult
	var outErr error
	e.sessions.Do(userID, func(s *session.Session) {
		if s.Mode == models.ModeIdle {
			outErr = ErrNoActiveTask
			return
		}
		task := s.Task
		given := normalize(text)

		if given == normalize(task.Answer) {
			entry := models.AnswerLog{
				UserID:      userID,
				Question:    task.Question,
				AnswerGiven: given,
				IsCorrect:   true,
				Level:       task.Level,
				CreatedAt:   time.Now().Unix(),
			}
			if err := e.ledger.ApplyAnswer(ctx, entry, task.Reward); err != nil {
				s.Reset()
				outErr = fmt.Errorf("commit answer: %w", err)
				return
			}
			s.Reset()
			res = AnswerResult{Outcome: OutcomeCorrect, Reward: task.Reward}
			return
		}

		s.Attempts++
		if s.Attempts < e.maxAttempts {
			res = AnswerResult{Outcome: OutcomeRetry, AttemptsLeft: e.maxAttempts - s.Attempts}
			return
		}

		entry := models.AnswerLog{
			UserID:      userID,
			Question:    task.Question,
			AnswerGiven: given,
			IsCorrect:   false,
			Level:       task.Level,
			CreatedAt:   time.Now().Unix(),
		}
		if err := e.ledger.ApplyAnswer(ctx, entry, 0); err != nil {
			s.Reset()
			outErr = fmt.Errorf("commit answer: %w", err)
			return
		}
		s.Reset()
		res = AnswerResult{Outcome: OutcomeWrong}
	})
	return res, outErr
}

// Cancel discards the active task without scoring. Reports whether a task
// was actually active.
func (e *Engine) Cancel(userID int64) bool {
	var had bool
	e.sessions.Do(userID, func(s *session.Session) {
		had = s.Mode != models.ModeIdle
		s.Reset()
	})
	return had
}

// Mode returns the user's current conversation mode.
func (e *Engine) Mode(userID int64) models.Mode {
	return e.sessions.Peek(userID).Mode
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
