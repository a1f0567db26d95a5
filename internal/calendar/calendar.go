// ABOUTME: Calendar-day index over the log collection plus Gregorian
// ABOUTME: month arithmetic for the calendar view.
package calendar

import (
	"time"

	"github.com/harperreed/fitlog/internal/models"
)

// Index maps local-time calendar days to the logs recorded on them.
type Index struct {
	byDay map[string][]models.DailyLog
}

// NewIndex builds a day index from a snapshot of the logs.
func NewIndex(logs []models.DailyLog) *Index {
	ix := &Index{byDay: make(map[string][]models.DailyLog, len(logs))}
	for _, l := range logs {
		key := l.Date.Local().Format("2006-01-02")
		ix.byDay[key] = append(ix.byDay[key], l)
	}
	return ix
}

// LogsOnDay returns all logs dated on the given local calendar day,
// in collection order. Empty when none.
func (ix *Index) LogsOnDay(year int, month time.Month, day int) []models.DailyLog {
	key := time.Date(year, month, day, 0, 0, 0, 0, time.Local).Format("2006-01-02")
	return ix.byDay[key]
}

// DaysInMonth returns the number of days in the month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// FirstWeekday returns the weekday of the 1st, 0=Sunday..6=Saturday.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday())
}

// PrevMonth steps one month back, rolling the year over at January.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

// NextMonth steps one month forward, rolling the year over at December.
func NextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}
