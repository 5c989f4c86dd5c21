package scores

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
)

const (
	// DefaultKey is the store key the browser build has always used.
	DefaultKey = "snake_last5_scores"
	// DefaultSize is how many scores are kept.
	DefaultSize = 5
)

// History is a bounded, most-recent-first list of scores persisted as a JSON
// array under one key.
type History struct {
	kv        KV
	key       string
	size      int
	scores    []int
	listeners []func([]int)
	logger    *log.Logger
}

// Load reads the history stored under key. Missing, unreadable or malformed
// data yields an empty history; the problem is logged, never returned.
func Load(kv KV, key string, size int, logger *log.Logger) *History {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := &History{
		kv:     kv,
		key:    key,
		size:   max(size, 1),
		logger: logger,
	}

	raw, ok, err := kv.Get(key)
	switch {
	case err != nil:
		logger.Warn("could not read score history", "key", key, "error", err)
		return h
	case !ok || raw == "":
		return h
	}

	var stored []int
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logger.Warn("discarding malformed score history", "key", key, "error", err)
		return h
	}
	if len(stored) > h.size {
		stored = stored[:h.size]
	}
	h.scores = stored
	return h
}

// Append records score as the most recent entry, drops entries past the
// size limit and persists the list. The in-memory list advances even when
// persisting fails.
func (h *History) Append(score int) error {
	next := make([]int, 0, h.size)
	next = append(next, score)
	next = append(next, h.scores...)
	if len(next) > h.size {
		next = next[:h.size]
	}
	h.scores = next

	err := h.save()
	if err != nil {
		h.logger.Warn("could not save score history", "key", h.key, "error", err)
	}

	for _, fn := range h.listeners {
		fn(h.Scores())
	}
	return err
}

func (h *History) save() error {
	data, err := json.Marshal(h.scores)
	if err != nil {
		return fmt.Errorf("scores: encode history: %w", err)
	}
	if err := h.kv.Set(h.key, string(data)); err != nil {
		return fmt.Errorf("scores: persist history: %w", err)
	}
	return nil
}

// Scores returns a copy of the history, most recent first.
func (h *History) Scores() []int {
	return slices.Clone(h.scores)
}

// Len returns the number of stored scores.
func (h *History) Len() int {
	return len(h.scores)
}

// OnChange registers fn to receive the history after every Append.
func (h *History) OnChange(fn func([]int)) {
	h.listeners = append(h.listeners, fn)
}

// Lines formats the history for display, one "Game N: score" line per
// entry, or a single placeholder line when empty.
func Lines(scores []int) []string {
	if len(scores) == 0 {
		return []string{"No games played yet."}
	}
	lines := make([]string, len(scores))
	for i, s := range scores {
		lines[i] = fmt.Sprintf("Game %d: %d", i+1, s)
	}
	return lines
}
