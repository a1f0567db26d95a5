// ABOUTME: CLI command rendering the month calendar of training days.
// ABOUTME: Days with logs are marked; --month navigates with year rollover.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fitlog/internal/calendar"
)

var calendarMonth string

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Show the training calendar",
	Long: `Show a month grid with training days marked.

EXAMPLES:

  fitlog calendar              # Current month
  fitlog calendar -m 2026-01   # A specific month`,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		year, month := now.Year(), now.Month()
		if calendarMonth != "" {
			t, err := time.ParseInLocation("2006-01", calendarMonth, time.Local)
			if err != nil {
				return fmt.Errorf("invalid month format: %s (use YYYY-MM)", calendarMonth)
			}
			year, month = t.Year(), t.Month()
		}

		ix := calendar.NewIndex(book.All())

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		trained := color.New(color.FgBlue, color.Bold)
		today := color.New(color.FgYellow, color.Bold)

		bold.Printf("%s %d\n", month, year)
		fmt.Println(faint.Sprint(" Su  Mo  Tu  We  Th  Fr  Sa"))

		cell := 0
		for i := 0; i < calendar.FirstWeekday(year, month); i++ {
			fmt.Print("    ")
			cell++
		}
		for day := 1; day <= calendar.DaysInMonth(year, month); day++ {
			label := fmt.Sprintf("%3d", day)
			switch {
			case len(ix.LogsOnDay(year, month, day)) > 0:
				fmt.Print(trained.Sprint(label) + "•")
			case isToday(now, year, month, day):
				fmt.Print(today.Sprint(label) + " ")
			default:
				fmt.Print(label + " ")
			}
			cell++
			if cell%7 == 0 {
				fmt.Println()
			}
		}
		if cell%7 != 0 {
			fmt.Println()
		}

		fmt.Println()
		fmt.Printf("%s training day   %s today\n", trained.Sprint("•"), today.Sprint("·"))
		return nil
	},
}

func isToday(now time.Time, year int, month time.Month, day int) bool {
	return now.Year() == year && now.Month() == month && now.Day() == day
}

func init() {
	calendarCmd.Flags().StringVarP(&calendarMonth, "month", "m", "", "month to show (YYYY-MM)")
	rootCmd.AddCommand(calendarCmd)
}
