package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"telegram-quiz-bot/internal/models"
)

// ErrNoTasks is returned when a level has no loaded tasks.
var ErrNoTasks = errors.New("no tasks for level")

// Catalog is an immutable in-memory index of tasks grouped by level.
// Built once at startup, safe for concurrent readers.
type Catalog struct {
	byLevel map[models.Level][]models.Task
}

// Load reads the tasks JSON file ({"easy":[{question,answer,reward}],...}),
// drops malformed entries with a warning and indexes the rest.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tasks file: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from raw tasks JSON.
func Parse(data []byte) (*Catalog, error) {
	var raw map[string][]models.Task
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse tasks file: %w", err)
	}

	c := &Catalog{byLevel: make(map[models.Level][]models.Task)}
	for name, tasks := range raw {
		level := models.Level(name)
		if !level.Valid() {
			log.Printf("catalog: unknown level %q, skipping %d tasks", name, len(tasks))
			continue
		}
		for _, t := range tasks {
			if strings.TrimSpace(t.Question) == "" || strings.TrimSpace(t.Answer) == "" {
				log.Printf("catalog: dropping malformed task at level %s (empty question or answer)", level)
				continue
			}
			t.Level = level
			if t.Reward <= 0 {
				t.Reward = 1
			}
			c.byLevel[level] = append(c.byLevel[level], t)
		}
	}
	return c, nil
}

// Pick returns a uniformly random task of the given level. Draws are
// independent, repeats allowed.
func (c *Catalog) Pick(level models.Level) (models.Task, error) {
	tasks := c.byLevel[level]
	if len(tasks) == 0 {
		return models.Task{}, ErrNoTasks
	}
	return tasks[rand.Intn(len(tasks))], nil
}

// PickAny draws a uniformly random non-empty level, then a uniformly random
// task from it. Used by the airdrop wave.
func (c *Catalog) PickAny() (models.Task, error) {
	var nonEmpty []models.Level
	for _, l := range models.Levels {
		if len(c.byLevel[l]) > 0 {
			nonEmpty = append(nonEmpty, l)
		}
	}
	if len(nonEmpty) == 0 {
		return models.Task{}, ErrNoTasks
	}
	return c.Pick(nonEmpty[rand.Intn(len(nonEmpty))])
}

// Find resolves a question text back to its task at the given level.
// The claim path uses it to re-validate a stored airdrop against the
// catalog, which stays the source of truth.
func (c *Catalog) Find(level models.Level, question string) (models.Task, bool) {
	for _, t := range c.byLevel[level] {
		if t.Question == question {
			return t, true
		}
	}
	return models.Task{}, false
}

// Size returns the number of loaded tasks for a level.
func (c *Catalog) Size(level models.Level) int {
	return len(c.byLevel[level])
}
