// ABOUTME: CLI command for deleting a recorded session.
// ABOUTME: Deleting is idempotent; a missing id is not an error.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fitlog/internal/logbook"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := book.Resolve(args[0])
		if err != nil {
			if errors.Is(err, logbook.ErrNotFound) {
				fmt.Printf("No session matching %s; nothing deleted.\n", args[0])
				return nil
			}
			return err
		}

		if err := warnIfWriteFailed(book.Delete(l.ID)); err != nil {
			return err
		}
		color.Green("✓ Deleted session %s (%s)", shortID(l.ID), l.Date.Local().Format("2006-01-02"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
