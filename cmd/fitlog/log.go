// ABOUTME: CLI commands for the session edit workflow.
// ABOUTME: A draft persists between invocations until saved or discarded.
package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fitlog/internal/editor"
	"github.com/harperreed/fitlog/internal/logbook"
	"github.com/harperreed/fitlog/internal/store"
)

var (
	setWeight  float64
	setReps    int
	setDone    bool
	setTodo    bool
	bodyWeight float64
	bodyFat    float64
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a workout session",
	Long: `Build up one workout session as a draft, then save it.

The draft is written to the store after every edit, so a session can be
built across many invocations. Only one draft exists at a time.

WORKFLOW:

  1. Start:          fitlog log new           (or: log edit <id>)
  2. Add exercises:  fitlog log exercise 深蹲
  3. Fill sets:      fitlog log set 1 1 --weight 100 --reps 5 --done
                     fitlog log add-set 1     (weight/reps carry forward)
  4. Extras:         fitlog log mood 🔥 / log notes ... / log body -w 82.5
  5. Finish:         fitlog log save          (or: log discard)

Exercise and set numbers shown by 'log show' are 1-based.`,
}

var logNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new session draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := st.LoadDraft(); err == nil {
			return fmt.Errorf("an edit session is already in progress; 'log save' or 'log discard' it first")
		}

		d := editor.Begin(nil, st)
		color.Green("✓ Started new session")
		fmt.Printf("  ID: %s\n", shortID(d.Log().ID))
		return nil
	},
}

var logEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing session as a draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := st.LoadDraft(); err == nil {
			return fmt.Errorf("an edit session is already in progress; 'log save' or 'log discard' it first")
		}

		l, err := book.Resolve(args[0])
		if err != nil {
			if errors.Is(err, logbook.ErrNotFound) {
				return fmt.Errorf("no session matching %s", args[0])
			}
			return err
		}

		editor.Begin(&l, st)
		color.Green("✓ Editing session %s (%s)", shortID(l.ID), l.Date.Local().Format("2006-01-02"))
		return nil
	},
}

var logExerciseCmd = &cobra.Command{
	Use:     "exercise <name-or-id>",
	Aliases: []string{"ex"},
	Short:   "Add an exercise to the session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := activeDraft()
		if err != nil {
			return err
		}

		ex, err := library.Find(args[0])
		if err != nil {
			return fmt.Errorf("no exercise named %q; see 'fitlog exercise list'", args[0])
		}

		d.AddExercise(ex)
		color.Green("✓ Added %s (%s)", ex.Name, groupTag(ex.Group))
		fmt.Printf("  Exercise #%d, one empty set seeded\n", len(d.Log().Exercises))
		return nil
	},
}

var logAddSetCmd = &cobra.Command{
	Use:   "add-set <exercise#>",
	Short: "Add a set (weight/reps carry forward)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := activeDraft()
		if err != nil {
			return err
		}

		exIdx, err := parseIndex(args[0], "exercise")
		if err != nil {
			return err
		}
		if err := d.AddSet(exIdx); err != nil {
			return err
		}

		ex := d.Log().Exercises[exIdx]
		last := ex.Sets[len(ex.Sets)-1]
		color.Green("✓ Set %d added to %s", len(ex.Sets), ex.ExerciseName)
		fmt.Printf("  %s kg × %d\n", formatNumber(last.Weight), last.Reps)
		return nil
	},
}

var logSetCmd = &cobra.Command{
	Use:   "set <exercise#> <set#>",
	Short: "Update a set",
	Long: `Update weight, reps, or completion of one set.

Examples:
  fitlog log set 1 1 --weight 100 --reps 5
  fitlog log set 1 2 --done
  fitlog log set 2 1 --todo          # mark not done again`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := activeDraft()
		if err != nil {
			return err
		}

		exIdx, err := parseIndex(args[0], "exercise")
		if err != nil {
			return err
		}
		setIdx, err := parseIndex(args[1], "set")
		if err != nil {
			return err
		}
		if setDone && setTodo {
			return fmt.Errorf("--done and --todo are mutually exclusive")
		}

		var patch editor.SetPatch
		if cmd.Flags().Changed("weight") {
			patch.Weight = &setWeight
		}
		if cmd.Flags().Changed("reps") {
			patch.Reps = &setReps
		}
		if setDone {
			t := true
			patch.Completed = &t
		}
		if setTodo {
			f := false
			patch.Completed = &f
		}

		if err := d.UpdateSet(exIdx, setIdx, patch); err != nil {
			return err
		}

		set := d.Log().Exercises[exIdx].Sets[setIdx]
		mark := "·"
		if set.Completed {
			mark = color.GreenString("✓")
		}
		color.Green("✓ Updated set %d.%d", exIdx+1, setIdx+1)
		fmt.Printf("  %s kg × %d  %s\n", formatNumber(set.Weight), set.Reps, mark)
		return nil
	},
}

var logRmSetCmd = &cobra.Command{
	Use:   "rm-set <exercise#> <set#>",
	Short: "Remove a set",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := activeDraft()
		if err != nil {
			return err
		}

		exIdx, err := parseIndex(args[0], "exercise")
		if err != nil {
			return err
		}
		setIdx, err := parseIndex(args[1], "set")
		if err != nil {
			return err
		}
		if err := d.RemoveSet(exIdx, setIdx); err != nil {
			return err
		}
		color.Green("✓ Removed set %d.%d", exIdx+1, setIdx+1)
		return nil
	},
}

var logRmExerciseCmd = &cobra.Command{
	Use:   "rm-exercise <exercise#>",
	Short: "Remove an exercise from the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := activeDraft()
		if err != nil {
			return err
		}

		exIdx, err := parseIndex(args[0], "exercise")
		if err != nil {
			return err
		}
		name := ""
		if exIdx < len(d.Log().Exercises) {
			name = d.Log().Exercises[exIdx].ExerciseName
		}
		if err := d.RemoveExercise(exIdx); err != nil {
			return err
		}
		color.Green("✓ Removed %s", name)
		return nil
	},
}

var logMoodCmd = &cobra.Command{
	Use:   "mood <mood>",
	Short: "Set the session mood",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := activeDraft()
		if err != nil {
			return err
		}
		d.SetMood(args[0])
		color.Green("✓ Mood set to %s", args[0])
		return nil
	},
}

var logNotesCmd = &cobra.Command{
	Use:   "notes <text>...",
	Short: "Set the session notes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := activeDraft()
		if err != nil {
			return err
		}
		d.SetNotes(strings.Join(args, " "))
		color.Green("✓ Notes updated")
		return nil
	},
}

var logDateCmd = &cobra.Command{
	Use:   "date <YYYY-MM-DD>",
	Short: "Move the session to another date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := activeDraft()
		if err != nil {
			return err
		}
		t, err := time.ParseInLocation("2006-01-02", args[0], time.Local)
		if err != nil {
			return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", args[0])
		}
		d.SetDate(t)
		color.Green("✓ Session dated %s", args[0])
		return nil
	},
}

var logBodyCmd = &cobra.Command{
	Use:   "body",
	Short: "Record body weight and body fat for the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := activeDraft()
		if err != nil {
			return err
		}

		// Keep values the caller didn't mention.
		current := d.Log()
		weight := current.Weight
		fat := current.BodyFat
		if cmd.Flags().Changed("weight") {
			weight = &bodyWeight
		}
		if cmd.Flags().Changed("fat") {
			fat = &bodyFat
		}
		d.SetBodyMetrics(weight, fat)

		updated := d.Log()
		color.Green("✓ Body metrics updated")
		if updated.Weight != nil {
			fmt.Printf("  Weight: %s kg\n", formatNumber(*updated.Weight))
		}
		if updated.BodyFat != nil {
			fmt.Printf("  Body fat: %s%%\n", formatNumber(*updated.BodyFat))
		}
		return nil
	},
}

var logShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the session draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := activeDraft()
		if err != nil {
			return err
		}
		printLog(d.Log())
		return nil
	},
}

var logSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Commit the session to the log",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := activeDraft()
		if err != nil {
			return err
		}

		l := d.Commit()
		if err := warnIfWriteFailed(book.Upsert(l)); err != nil {
			return err
		}
		color.Green("✓ Saved session %s", shortID(l.ID))
		fmt.Printf("  %s, %d exercise(s)\n", l.Date.Local().Format("2006-01-02"), len(l.Exercises))
		return nil
	},
}

var logDiscardCmd = &cobra.Command{
	Use:   "discard",
	Short: "Abandon the session draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := activeDraft()
		if err != nil {
			return err
		}
		d.Discard()
		color.Green("✓ Draft discarded")
		return nil
	},
}

// activeDraft resumes the persisted edit session.
func activeDraft() (*editor.Draft, error) {
	saved, err := st.LoadDraft()
	if err != nil {
		if errors.Is(err, store.ErrNoDraft) {
			return nil, fmt.Errorf("no edit session in progress; start one with 'fitlog log new'")
		}
		return nil, err
	}
	return editor.Resume(*saved, st), nil
}

func init() {
	logSetCmd.Flags().Float64VarP(&setWeight, "weight", "w", 0, "set weight in kg")
	logSetCmd.Flags().IntVarP(&setReps, "reps", "r", 0, "set reps")
	logSetCmd.Flags().BoolVar(&setDone, "done", false, "mark the set completed")
	logSetCmd.Flags().BoolVar(&setTodo, "todo", false, "mark the set not completed")

	logBodyCmd.Flags().Float64VarP(&bodyWeight, "weight", "w", 0, "body weight in kg")
	logBodyCmd.Flags().Float64VarP(&bodyFat, "fat", "f", 0, "body fat percentage")

	logCmd.AddCommand(logNewCmd)
	logCmd.AddCommand(logEditCmd)
	logCmd.AddCommand(logExerciseCmd)
	logCmd.AddCommand(logAddSetCmd)
	logCmd.AddCommand(logSetCmd)
	logCmd.AddCommand(logRmSetCmd)
	logCmd.AddCommand(logRmExerciseCmd)
	logCmd.AddCommand(logMoodCmd)
	logCmd.AddCommand(logNotesCmd)
	logCmd.AddCommand(logDateCmd)
	logCmd.AddCommand(logBodyCmd)
	logCmd.AddCommand(logShowCmd)
	logCmd.AddCommand(logSaveCmd)
	logCmd.AddCommand(logDiscardCmd)
	rootCmd.AddCommand(logCmd)
}
