package main

import (
	"fmt"
	"strings"
	"time"
	"timekeep/internal"
	"timekeep/internal/services"
	"timekeep/internal/timeutil"

	"github.com/spf13/cobra"
)

const chartWidth = 40

var reportCmd = &cobra.Command{
	Use:       "report [today|week|month]",
	Short:     "Per-project totals and a daily chart for a period",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"today", "week", "month"},
	Run:       runReport,
}

func runReport(cmd *cobra.Command, args []string) {
	app := openApp()
	defer app.Close()

	period := "today"
	if len(args) == 1 {
		period = args[0]
	}

	now := time.Now()
	var start, end time.Time
	var daily []services.DayTotal
	switch period {
	case "week":
		start, end = timeutil.WeekRange(now)
		daily = app.Reports.WeekDailyTotals(now)
	case "month":
		start, end = timeutil.MonthRange(now)
		daily = app.Reports.MonthDailyTotals(now)
	default:
		start, end = timeutil.DayRange(now)
	}

	summaries := app.Reports.ProjectSummaries(start, end)
	if len(summaries) == 0 {
		fmt.Println("No time tracked")
		return
	}

	var total time.Duration
	for _, s := range summaries {
		total += s.Total
	}
	for _, s := range summaries {
		fmt.Printf("%-20s %8s  %s\n", s.Project.Name, timeutil.FormatHM(s.Total), bar(s.Total, total))
	}
	fmt.Printf("%-20s %8s\n", "Total", timeutil.FormatHM(total))

	if len(daily) > 0 {
		fmt.Println()
		printDaily(daily)
	}
	if period == "today" {
		printGoal(app, now)
	}
}

func printDaily(daily []services.DayTotal) {
	var max time.Duration
	for _, d := range daily {
		if d.Total > max {
			max = d.Total
		}
	}
	for _, d := range daily {
		fmt.Printf("%s %8s  %s\n", d.Date.Format("Mon 02"), timeutil.FormatHM(d.Total), bar(d.Total, max))
	}
}

func printGoal(app *internal.App, day time.Time) {
	tracked, goal := app.Reports.GoalProgress(day, app.Settings.Current())
	if goal == 0 {
		return
	}
	fmt.Printf("Goal: %s of %s\n", timeutil.FormatHM(tracked), timeutil.FormatHM(goal))
}

func bar(value, max time.Duration) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(int64(value) * chartWidth / int64(max))
	if n == 0 {
		n = 1
	}
	return strings.Repeat("▇", n)
}

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Consecutive days meeting the streak target",
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		defer app.Close()

		target := time.Duration(app.Settings.Current().StreakTargetMins) * time.Minute
		days := app.Store.Streak(target)
		fmt.Printf("%d day streak (target %s/day)\n", days, timeutil.FormatHM(target))
	},
}

var (
	goalDay    string
	goalMins   int
	goalStreak int
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show or set daily goals and the streak target",
	Run:   runGoal,
}

func init() {
	goalCmd.Flags().StringVar(&goalDay, "day", "", "Weekday to set, e.g. mon")
	goalCmd.Flags().IntVar(&goalMins, "mins", 0, "Goal minutes for --day")
	goalCmd.Flags().IntVar(&goalStreak, "streak-target", 0, "Streak target minutes per day")
}

var weekdays = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

func runGoal(cmd *cobra.Command, args []string) {
	app := openApp()
	defer app.Close()

	settings := app.Settings.Current()
	changed := false

	if cmd.Flags().Changed("day") {
		idx := -1
		for i, d := range weekdays {
			if strings.EqualFold(goalDay, d) {
				idx = i
			}
		}
		if idx < 0 {
			fatal("invalid weekday %q, want one of %s", goalDay, strings.Join(weekdays, " "))
		}
		settings.DailyGoalMins[idx] = goalMins
		changed = true
	}
	if cmd.Flags().Changed("streak-target") {
		settings.StreakTargetMins = goalStreak
		changed = true
	}

	if changed {
		if err := app.Settings.Save(settings); err != nil {
			fatal("goal: %v", err)
		}
	}

	for i, d := range weekdays {
		fmt.Printf("%s %4dm\n", d, settings.DailyGoalMins[i])
	}
	fmt.Printf("streak target: %dm\n", settings.StreakTargetMins)
}
