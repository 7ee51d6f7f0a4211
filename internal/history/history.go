// Package history persists the chat transcript as an append-only,
// file-backed log.
package history

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/slicelab/pizza-agent/internal/store"
	"github.com/slicelab/pizza-agent/pkg/log"
)

// Message roles recorded in the transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one transcript entry. Messages are immutable once
// appended; the transcript only ever grows.
type Message struct {
	Role      string `json:"role"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}

// Now returns the current time as an epoch-millisecond timestamp.
func Now() int64 {
	return time.Now().UnixMilli()
}

// FileRepo keeps the transcript in memory and mirrors it to a single
// JSON file. AddMessage persists immediately; an optional periodic
// flush re-saves on a fixed cadence as a guard against any future
// mutation path that forgets to save.
type FileRepo struct {
	store *store.Store[[]Message]

	mu      sync.Mutex
	history []Message
	flusher *cron.Cron
}

// NewFileRepo creates a repository backed by the file at path.
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{store: store.New[[]Message](path)}
}

// LoadHistory reloads the full transcript from disk and returns it in
// insertion order. A missing or unreadable file yields the empty
// transcript.
func (r *FileRepo) LoadHistory() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = r.store.Load()
	out := make([]Message, len(r.history))
	copy(out, r.history)
	return out
}

// AddMessage appends a message and immediately persists the full
// transcript.
func (r *FileRepo) AddMessage(msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, msg)
	return r.save()
}

// SaveHistory persists the in-memory transcript, overwriting the
// backing file.
func (r *FileRepo) SaveHistory() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save()
}

func (r *FileRepo) save() error {
	return r.store.Save(r.history)
}

// StartPeriodicSave schedules a recurring flush of the transcript.
// Only one schedule is active at a time; starting again replaces the
// previous one. The schedule runs until StopPeriodicSave is called and
// must be stopped before process exit.
func (r *FileRepo) StartPeriodicSave(interval time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.flusher != nil {
		r.flusher.Stop()
		r.flusher = nil
	}

	c := cron.New()
	_, err := c.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		if err := r.SaveHistory(); err != nil {
			log.Warn("Periodic history save failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule periodic save: %w", err)
	}
	c.Start()
	r.flusher = c
	return nil
}

// StopPeriodicSave stops the recurring flush, if one is active.
func (r *FileRepo) StopPeriodicSave() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.flusher != nil {
		r.flusher.Stop()
		r.flusher = nil
	}
}
