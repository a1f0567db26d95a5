// ABOUTME: CLI commands for browsing recorded sessions.
// ABOUTME: list shows recent history, show prints one session in full.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fitlog/internal/analytics"
	"github.com/harperreed/fitlog/internal/logbook"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List recent sessions",
	Long: `List recorded sessions, most recent first.

OUTPUT FORMAT:

  Each line shows: ID  DATE  MOOD  EXERCISES  VOLUME

  The ID is an 8-character prefix you can use with show, edit and
  delete commands.

EXAMPLES:

  fitlog list          # Show last 20 sessions
  fitlog list -n 5     # Show last 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logs := book.Recent(listLimit)
		if len(logs) == 0 {
			fmt.Println("No sessions recorded yet. Start one with 'fitlog log new'.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, l := range logs {
			notes := ""
			if l.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(l.Notes, 30))
			}
			fmt.Printf("%s %s %s %s %s kg%s\n",
				faint.Sprint(shortID(l.ID)),
				faint.Sprint(l.Date.Local().Format("2006-01-02")),
				l.Mood,
				padRight(fmt.Sprintf("%d exercise(s)", len(l.Exercises)), 14),
				formatNumber(analytics.LogVolume(l)),
				notes)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show session details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := book.Resolve(args[0])
		if err != nil {
			if errors.Is(err, logbook.ErrNotFound) {
				return fmt.Errorf("no session matching %s", args[0])
			}
			return err
		}
		printLog(l)
		return nil
	},
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}
