// ABOUTME: Tests for the badger-backed state and draft storage.
// ABOUTME: Uses in-memory databases; covers fallback behavior on bad blobs.
package store

import (
	"errors"
	"testing"
	"time"

	"github.com/harperreed/fitlog/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadStateMissingBlob(t *testing.T) {
	s := newTestStore(t)

	state, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if len(state.Logs) != 0 || len(state.CustomExercises) != 0 {
		t.Error("expected empty default state")
	}
	if state.ReminderTime != models.DefaultReminderTime {
		t.Errorf("ReminderTime = %s, want %s", state.ReminderTime, models.DefaultReminderTime)
	}
}

func TestSaveAndLoadState(t *testing.T) {
	s := newTestStore(t)

	w := 80.0
	state := models.DefaultAppState()
	state.RemindersEnabled = true
	state.ReminderTime = "07:30"
	state.CustomExercises = append(state.CustomExercises,
		models.NewCustomExercise("臀桥", models.GroupLegs))
	l := models.NewDailyLog()
	l.Date = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	l.Weight = &w
	state.Logs = append(state.Logs, l)

	if err := s.SaveState(state); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	got, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if len(got.Logs) != 1 || len(got.CustomExercises) != 1 {
		t.Fatalf("unexpected state shape: %d logs, %d customs", len(got.Logs), len(got.CustomExercises))
	}
	if got.Logs[0].ID != l.ID {
		t.Errorf("log id = %s, want %s", got.Logs[0].ID, l.ID)
	}
	if got.Logs[0].Weight == nil || *got.Logs[0].Weight != 80.0 {
		t.Errorf("weight = %v, want 80", got.Logs[0].Weight)
	}
	if !got.RemindersEnabled || got.ReminderTime != "07:30" {
		t.Errorf("reminder settings lost: %+v", got)
	}
}

func TestLoadStateCorruptBlob(t *testing.T) {
	s := newTestStore(t)

	if err := s.set(stateKey, []byte("{not json")); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}

	state, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState should not fail on corrupt data: %v", err)
	}
	if len(state.Logs) != 0 {
		t.Error("expected default state after corrupt blob")
	}
}

func TestLoadStateBackfillsNilSlices(t *testing.T) {
	s := newTestStore(t)

	if err := s.set(stateKey, []byte(`{"remindersEnabled":true}`)); err != nil {
		t.Fatalf("seed blob: %v", err)
	}

	state, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if state.Logs == nil || state.CustomExercises == nil {
		t.Error("expected nil slices to be backfilled")
	}
	if state.ReminderTime != models.DefaultReminderTime {
		t.Errorf("ReminderTime = %s, want default", state.ReminderTime)
	}
	if !state.RemindersEnabled {
		t.Error("expected remindersEnabled to survive")
	}
}

func TestDraftLifecycle(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.LoadDraft(); !errors.Is(err, ErrNoDraft) {
		t.Fatalf("expected ErrNoDraft, got %v", err)
	}

	draft := models.NewDailyLog()
	draft.Notes = "leg day"
	if err := s.SaveDraft(&draft); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	got, err := s.LoadDraft()
	if err != nil {
		t.Fatalf("LoadDraft: %v", err)
	}
	if got.ID != draft.ID || got.Notes != "leg day" {
		t.Errorf("draft round trip = %+v", got)
	}

	if err := s.ClearDraft(); err != nil {
		t.Fatalf("ClearDraft: %v", err)
	}
	if _, err := s.LoadDraft(); !errors.Is(err, ErrNoDraft) {
		t.Errorf("expected ErrNoDraft after clear, got %v", err)
	}

	// Clearing again is a no-op.
	if err := s.ClearDraft(); err != nil {
		t.Errorf("second ClearDraft: %v", err)
	}
}

func TestDraftIndependentOfState(t *testing.T) {
	s := newTestStore(t)

	draft := models.NewDailyLog()
	if err := s.SaveDraft(&draft); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if err := s.SaveState(models.DefaultAppState()); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	got, err := s.LoadDraft()
	if err != nil {
		t.Fatalf("LoadDraft after SaveState: %v", err)
	}
	if got.ID != draft.ID {
		t.Error("state write clobbered the draft")
	}
}

func TestWriteErrorUnwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := &WriteError{Err: inner}
	if !errors.Is(err, inner) {
		t.Error("expected WriteError to unwrap to its cause")
	}
}
