package session

import (
	"sync"

	"telegram-quiz-bot/internal/models"
)

// Session is the transient conversation state of one user. Lost on restart.
type Session struct {
	Mode     models.Mode
	Task     models.Task // meaningful only while Mode != ModeIdle
	Attempts int
}

// Reset discards the active task and returns the session to idle.
func (s *Session) Reset() {
	s.Mode = models.ModeIdle
	s.Task = models.Task{}
	s.Attempts = 0
}

// Assign installs a fresh task and zeroes the attempt counter.
func (s *Session) Assign(task models.Task, mode models.Mode) {
	s.Mode = mode
	s.Task = task
	s.Attempts = 0
}

type entry struct {
	mu sync.Mutex
	s  Session
}

// Store keeps one Session per user with per-user mutual exclusion: Do for the
// same user serializes, different users run independently.
type Store struct {
	mu      sync.Mutex
	entries map[int64]*entry
}

func NewStore() *Store {
	return &Store{entries: make(map[int64]*entry)}
}

func (st *Store) get(userID int64) *entry {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.entries[userID]
	if !ok {
		e = &entry{}
		st.entries[userID] = e
	}
	return e
}

// Do runs fn with exclusive access to the user's session. Events for one user
// are therefore handled in arrival order.
func (st *Store) Do(userID int64, fn func(s *Session)) {
	e := st.get(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.s)
}

// Peek returns a copy of the user's current session.
func (st *Store) Peek(userID int64) Session {
	e := st.get(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.s
}
