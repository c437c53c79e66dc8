package scheduler

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"telegram-quiz-bot/internal/models"
)

var timeRx = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Ledger is the slice of the persistent store the airdrop wave touches.
type Ledger interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	SetPendingAirdrop(ctx context.Context, userID int64, task models.Task, now time.Time) error
}

// Catalog draws the shared task for a wave.
type Catalog interface {
	PickAny() (models.Task, error)
}

// Notifier pushes the airdrop offer to the user. A failed send is logged and
// the pending write is retained, so a later claim still works.
type Notifier interface {
	NotifyAirdrop(userID int64, task models.Task) error
}

// Scheduler fires an airdrop broadcast wave at configured times of day. The
// check runs on a coarse minute tick: a configured boundary fires once it
// falls inside (previous tick, current tick], so firing may lag by up to the
// polling interval but never repeats for the same boundary.
type Scheduler struct {
	ledger   Ledger
	catalog  Catalog
	notifier Notifier
	times    []string

	mu   sync.Mutex
	last time.Time

	now func() time.Time
}

// New validates the HH:MM schedule and builds a scheduler.
func New(ledger Ledger, catalog Catalog, notifier Notifier, times []string) (*Scheduler, error) {
	for _, t := range times {
		if !timeRx.MatchString(t) {
			return nil, fmt.Errorf("bad schedule time %q, want HH:MM", t)
		}
	}
	return &Scheduler{
		ledger:   ledger,
		catalog:  catalog,
		notifier: notifier,
		times:    times,
		now:      time.Now,
	}, nil
}

// Start registers the minute tick with gocron and starts it. The returned
// gocron scheduler is shut down by the caller on exit.
func (s *Scheduler) Start() (gocron.Scheduler, error) {
	gs, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	if _, err = gs.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(s.Tick),
	); err != nil {
		return nil, err
	}
	gs.Start()
	return gs, nil
}

// Tick advances the boundary check once. Exposed for the gocron job and for
// tests.
func (s *Scheduler) Tick() {
	now := s.now()

	s.mu.Lock()
	prev := s.last
	s.last = now
	s.mu.Unlock()

	if prev.IsZero() {
		// First tick after startup: arm the check, do not fire boundaries
		// that passed while the process was down.
		return
	}
	for range s.crossed(prev, now) {
		s.RunWave(now)
	}
}

// crossed lists configured boundaries inside (prev, now].
func (s *Scheduler) crossed(prev, now time.Time) []time.Time {
	var out []time.Time
	day := time.Date(prev.Year(), prev.Month(), prev.Day(), 0, 0, 0, 0, prev.Location())
	for !day.After(now) {
		for _, hm := range s.times {
			var h, m int
			fmt.Sscanf(hm, "%d:%d", &h, &m)
			b := time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
			if b.After(prev) && !b.After(now) {
				out = append(out, b)
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return out
}

// RunWave draws one shared task and offers it to every eligible user. Writes
// commit per user; one user's storage or send failure never blocks the rest.
func (s *Scheduler) RunWave(now time.Time) {
	ctx := context.Background()

	task, err := s.catalog.PickAny()
	if err != nil {
		log.Printf("airdrop wave: no tasks loaded, skipping: %v", err)
		return
	}

	users, err := s.ledger.ListUsers(ctx)
	if err != nil {
		log.Printf("airdrop wave: list users: %v", err)
		return
	}

	offered := 0
	for _, u := range users {
		if u.HasPendingAirdrop() || u.AirdroppedToday(now) {
			continue
		}
		if err := s.ledger.SetPendingAirdrop(ctx, u.ID, task, now); err != nil {
			log.Printf("airdrop wave: user %d: %v", u.ID, err)
			continue
		}
		offered++
		if err := s.notifier.NotifyAirdrop(u.ID, task); err != nil {
			// Keep the pending write: the user can still claim later.
			log.Printf("airdrop wave: notify user %d: %v", u.ID, err)
		}
	}
	log.Printf("airdrop wave: level %s, %d of %d users offered", task.Level, offered, len(users))
}
