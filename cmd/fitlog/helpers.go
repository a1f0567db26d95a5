// ABOUTME: Shared CLI helpers: formatting, group colors, warning output.
package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/harperreed/fitlog/internal/analytics"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/store"
)

// groupColors maps each muscle group to a terminal color, mirroring the
// group palette of the original app.
var groupColors = map[models.MuscleGroup]*color.Color{
	models.GroupChest:     color.New(color.FgBlue),
	models.GroupShoulders: color.New(color.FgYellow),
	models.GroupBack:      color.New(color.FgGreen),
	models.GroupLegs:      color.New(color.FgMagenta),
	models.GroupArms:      color.New(color.FgRed),
	models.GroupCore:      color.New(color.FgHiYellow),
	models.GroupCardio:    color.New(color.FgCyan),
}

func groupTag(g models.MuscleGroup) string {
	c, ok := groupColors[g]
	if !ok {
		return models.GroupLabels[g]
	}
	return c.Sprint(models.GroupLabels[g])
}

// warnIfWriteFailed downgrades a failed persistence write to a yellow
// warning. The in-memory mutation has already applied; the session
// stays usable and the edit is not discarded.
func warnIfWriteFailed(err error) error {
	if err == nil {
		return nil
	}
	var we *store.WriteError
	if errors.As(err, &we) {
		color.Yellow("⚠ %v", we)
		return nil
	}
	return err
}

// shortID trims long ids for display; short ids pass through whole.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// printLog renders one session in full.
func printLog(l models.DailyLog) {
	faint := color.New(color.Faint)
	fmt.Printf("Session: %s\n", faint.Sprint(shortID(l.ID)))
	fmt.Printf("Date: %s  %s\n", l.Date.Local().Format("2006-01-02"), l.Mood)
	if l.Weight != nil {
		bodyFat := "--"
		if l.BodyFat != nil {
			bodyFat = formatNumber(*l.BodyFat) + "%"
		}
		fmt.Printf("Body: %s kg / %s\n", formatNumber(*l.Weight), bodyFat)
	}

	for i, ex := range l.Exercises {
		fmt.Printf("\n%d. %s (%s)\n", i+1, ex.ExerciseName, groupTag(ex.Group))
		for j, set := range ex.Sets {
			mark := faint.Sprint("·")
			if set.Completed {
				mark = color.GreenString("✓")
			}
			fmt.Printf("   %d) %s kg × %d  %s\n", j+1, formatNumber(set.Weight), set.Reps, mark)
		}
		if len(ex.Sets) == 0 {
			fmt.Println(faint.Sprint("   (no sets)"))
		}
	}

	if l.Notes != "" {
		fmt.Printf("\nNotes: %s\n", l.Notes)
	}
	fmt.Printf("\nVolume: %s kg\n", formatNumber(analytics.LogVolume(l)))
}

// parseIndex parses a 1-based CLI index into a 0-based one.
func parseIndex(arg, what string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s number: %s", what, arg)
	}
	return n - 1, nil
}
