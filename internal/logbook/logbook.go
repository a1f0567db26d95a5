// ABOUTME: Log repository owning the DailyLog collection inside AppState.
// ABOUTME: Every mutation triggers a full-state write-back.
package logbook

import (
	"errors"
	"sort"
	"strings"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/store"
)

// ErrNotFound is the soft sentinel for a missing log id.
var ErrNotFound = errors.New("log not found")

// ErrAmbiguous is returned when an id prefix matches multiple logs.
var ErrAmbiguous = errors.New("ambiguous id prefix")

// Saver persists the full AppState after a mutation.
type Saver interface {
	SaveState(*models.AppState) error
}

// Book is the single source of truth for recorded sessions. It mutates
// AppState.Logs in place; a failed write is surfaced as a
// *store.WriteError and never rolls the mutation back.
type Book struct {
	state *models.AppState
	saver Saver
}

// New creates a log book over the given state.
func New(state *models.AppState, saver Saver) *Book {
	return &Book{state: state, saver: saver}
}

// Upsert replaces the log with the same id, or appends when the id is
// new. Replacement is wholesale, never a merge.
func (b *Book) Upsert(l models.DailyLog) error {
	replaced := false
	for i := range b.state.Logs {
		if b.state.Logs[i].ID == l.ID {
			b.state.Logs[i] = l
			replaced = true
			break
		}
	}
	if !replaced {
		b.state.Logs = append(b.state.Logs, l)
	}
	return b.flush()
}

// Delete removes the matching log. Missing ids are a no-op.
func (b *Book) Delete(id string) error {
	for i := range b.state.Logs {
		if b.state.Logs[i].ID == id {
			b.state.Logs = append(b.state.Logs[:i], b.state.Logs[i+1:]...)
			return b.flush()
		}
	}
	return nil
}

// Find returns the log with the exact id, or ErrNotFound.
func (b *Book) Find(id string) (models.DailyLog, error) {
	for _, l := range b.state.Logs {
		if l.ID == id {
			return l, nil
		}
	}
	return models.DailyLog{}, ErrNotFound
}

// Resolve returns the single log whose id starts with idOrPrefix.
// ErrAmbiguous when more than one matches.
func (b *Book) Resolve(idOrPrefix string) (models.DailyLog, error) {
	var matches []models.DailyLog
	for _, l := range b.state.Logs {
		if strings.HasPrefix(l.ID, idOrPrefix) {
			matches = append(matches, l)
		}
	}
	switch len(matches) {
	case 0:
		return models.DailyLog{}, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return models.DailyLog{}, ErrAmbiguous
	}
}

// All returns a copy of the log collection. Order is unspecified;
// callers sort as needed.
func (b *Book) All() []models.DailyLog {
	out := make([]models.DailyLog, len(b.state.Logs))
	copy(out, b.state.Logs)
	return out
}

// Recent returns up to limit logs sorted by date descending.
func (b *Book) Recent(limit int) []models.DailyLog {
	logs := b.All()
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Date.After(logs[j].Date)
	})
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return logs
}

// flush writes the whole state back after a mutation.
func (b *Book) flush() error {
	if err := b.saver.SaveState(b.state); err != nil {
		return &store.WriteError{Err: err}
	}
	return nil
}
