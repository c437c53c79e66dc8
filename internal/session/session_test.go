package session_test

import (
	"sync"
	"testing"

	"telegram-quiz-bot/internal/models"
	"telegram-quiz-bot/internal/session"
)

func TestAssignAndReset(t *testing.T) {
	st := session.NewStore()

	task := models.Task{Level: models.LevelEasy, Question: "2+2?", Answer: "4", Reward: 1}
	st.Do(1, func(s *session.Session) {
		s.Attempts = 3
		s.Assign(task, models.ModeAwaitingAnswer)
	})

	got := st.Peek(1)
	if got.Mode != models.ModeAwaitingAnswer || got.Task.Question != "2+2?" {
		t.Fatalf("unexpected session %+v", got)
	}
	if got.Attempts != 0 {
		t.Fatalf("assign must reset attempts, got %d", got.Attempts)
	}

	st.Do(1, func(s *session.Session) { s.Reset() })
	got = st.Peek(1)
	if got.Mode != models.ModeIdle || got.Task != (models.Task{}) {
		t.Fatalf("reset left state behind: %+v", got)
	}
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	st := session.NewStore()
	st.Do(1, func(s *session.Session) {
		s.Assign(models.Task{Question: "q1", Answer: "a"}, models.ModeAwaitingAnswer)
	})
	if got := st.Peek(2); got.Mode != models.ModeIdle {
		t.Fatalf("user 2 must start idle, got %+v", got)
	}
}

func TestDoSerializesPerUser(t *testing.T) {
	st := session.NewStore()
	const n = 100

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.Do(1, func(s *session.Session) { s.Attempts++ })
		}()
	}
	wg.Wait()

	if got := st.Peek(1).Attempts; got != n {
		t.Fatalf("expected %d serialized increments, got %d", n, got)
	}
}
