// ABOUTME: CLI command for aggregate analytics.
// ABOUTME: Personal records, summary, volume trend, distribution, body series.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fitlog/internal/analytics"
)

const barWidth = 30

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show training analytics",
	Long: `Show aggregate analytics computed from the recorded sessions.

SECTIONS:

  Records       squat/bench/deadlift max completed-set weight
  Summary       total sessions, current day streak, top exercise
  Volume        per-session volume (Σ weight×reps of completed sets),
                last 15 sessions
  Muscle groups completed sets per body region
  Body          weight / body-fat series, last 10 entries

Incomplete sets never count toward records or volume.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logs := book.All()
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		prs := analytics.SBDRecords(logs)
		bold.Println("Personal Records")
		printRecord("深蹲 (S)", prs.Squat)
		printRecord("卧推 (B)", prs.Bench)
		printRecord("硬拉 (D)", prs.Deadlift)

		summary := analytics.Summarize(logs)
		fmt.Println()
		bold.Println("Summary")
		fmt.Printf("  Sessions: %d   Streak: %d day(s)", summary.TotalWorkouts, summary.StreakDays)
		if summary.TopExercise != "" {
			fmt.Printf("   Top exercise: %s", summary.TopExercise)
		}
		fmt.Println()

		trend := analytics.VolumeTrend(logs)
		if len(trend) > 0 {
			var maxVolume float64
			for _, p := range trend {
				if p.Volume > maxVolume {
					maxVolume = p.Volume
				}
			}
			fmt.Println()
			bold.Println("Volume Trend (kg)")
			for _, p := range trend {
				fmt.Printf("  %s %7s %s\n", faint.Sprint(p.Date), formatNumber(p.Volume), bar(p.Volume, maxVolume))
			}
		}

		dist := analytics.MuscleDistribution(logs)
		if len(dist) > 0 {
			maxSets := 0
			for _, gc := range dist {
				if gc.Sets > maxSets {
					maxSets = gc.Sets
				}
			}
			fmt.Println()
			bold.Println("Muscle Groups (completed sets)")
			for _, gc := range dist {
				c := groupColors[gc.Group]
				fmt.Printf("  %s %3d %s\n",
					padRight(groupTag(gc.Group), 20),
					gc.Sets,
					c.Sprint(bar(float64(gc.Sets), float64(maxSets))))
			}
		}

		body := analytics.BodyMetricSeries(logs)
		if len(body) > 0 {
			fmt.Println()
			bold.Println("Body Metrics")
			for _, p := range body {
				fat := "--"
				if p.BodyFat != nil {
					fat = formatNumber(*p.BodyFat) + "%"
				}
				fmt.Printf("  %s %6s kg  %s\n", faint.Sprint(p.Date), formatNumber(p.Weight), fat)
			}
		}

		return nil
	},
}

func printRecord(label string, kg float64) {
	value := "--"
	if kg > 0 {
		value = formatNumber(kg) + " kg"
	}
	fmt.Printf("  %s  %s\n", label, value)
}

func bar(value, max float64) string {
	if max <= 0 {
		return ""
	}
	n := int(value / max * barWidth)
	if n < 1 && value > 0 {
		n = 1
	}
	return strings.Repeat("▇", n)
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
