// ABOUTME: Badger-backed key-value store for the persisted AppState blob.
// ABOUTME: Whole state lives under one key; the edit draft under a second.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	badger "github.com/dgraph-io/badger/v3"

	"github.com/harperreed/fitlog/internal/models"
)

var (
	stateKey = []byte("fitlog:appstate")
	draftKey = []byte("fitlog:draft")
)

// ErrNoDraft is returned by LoadDraft when no edit session is saved.
var ErrNoDraft = errors.New("no draft in progress")

// WriteError marks a failed persistence write. The in-memory mutation
// that triggered the write has already been applied and must not be
// rolled back; callers surface this as a non-fatal warning.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("state not persisted: %v", e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Store wraps the badger database holding the fitlog blobs.
type Store struct {
	db *badger.DB
}

// Open opens or creates the store in the given data directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(filepath.Join(dir, "kv")).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens an ephemeral store, used in tests.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadState reads the persisted AppState. A missing blob yields the
// default empty state. A corrupt blob also yields the default state,
// logged as a warning; startup must never fail on bad data.
func (s *Store) LoadState() (*models.AppState, error) {
	data, err := s.get(stateKey)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return models.DefaultAppState(), nil
		}
		return nil, fmt.Errorf("load state: %w", err)
	}

	state, err := unmarshalJSON[models.AppState](data)
	if err != nil {
		log.Warn("persisted state is unreadable, starting fresh", "err", err)
		return models.DefaultAppState(), nil
	}
	if state.Logs == nil {
		state.Logs = []models.DailyLog{}
	}
	if state.CustomExercises == nil {
		state.CustomExercises = []models.Exercise{}
	}
	if state.ReminderTime == "" {
		state.ReminderTime = models.DefaultReminderTime
	}
	return state, nil
}

// SaveState writes the whole AppState back under the state key.
func (s *Store) SaveState(state *models.AppState) error {
	data, err := marshalJSON(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := s.set(stateKey, data); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// SaveDraft persists the in-progress edit session under its own key,
// independent of the committed state.
func (s *Store) SaveDraft(draft *models.DailyLog) error {
	data, err := marshalJSON(draft)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	if err := s.set(draftKey, data); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// LoadDraft reads the in-progress edit session, if any.
func (s *Store) LoadDraft() (*models.DailyLog, error) {
	data, err := s.get(draftKey)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrNoDraft
		}
		return nil, fmt.Errorf("load draft: %w", err)
	}

	draft, err := unmarshalJSON[models.DailyLog](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal draft: %w", err)
	}
	return draft, nil
}

// ClearDraft removes the saved edit session.
func (s *Store) ClearDraft() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(draftKey)
	})
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

// get reads a single value.
func (s *Store) get(key []byte) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	return data, err
}

// set stores a single value.
func (s *Store) set(key, data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}
