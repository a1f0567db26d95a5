// ABOUTME: AppState, the entire persisted world of the fitness log.
// ABOUTME: Read once at startup and written back wholesale on every mutation.
package models

// DefaultReminderTime is the reminder time a fresh install starts with.
const DefaultReminderTime = "18:00"

// AppState aggregates everything the app persists. Logs are unique by
// id and unordered at rest; readers sort by date as needed.
type AppState struct {
	Logs             []DailyLog `json:"logs"`
	CustomExercises  []Exercise `json:"customExercises"`
	RemindersEnabled bool       `json:"remindersEnabled"`
	ReminderTime     string     `json:"reminderTime"`
}

// DefaultAppState returns the empty shape used when no blob exists yet.
func DefaultAppState() *AppState {
	return &AppState{
		Logs:            []DailyLog{},
		CustomExercises: []Exercise{},
		ReminderTime:    DefaultReminderTime,
	}
}
