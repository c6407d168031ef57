package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	"timekeep/internal"
	"timekeep/internal/timeutil"

	"github.com/spf13/cobra"
)

var statusWatch bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the timer state and today's total",
	Run:   runStatus,
}

func init() {
	statusCmd.Flags().BoolVarP(&statusWatch, "watch", "w", false, "Refresh the elapsed display every second")
}

func runStatus(cmd *cobra.Command, args []string) {
	app := openApp()
	defer app.Close()

	if !statusWatch {
		printStatus(app)
		return
	}

	// Read-only tick: refreshes the display, never mutates state.
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	for {
		fmt.Print("\r\033[K")
		state := app.Timer.State()
		if state.Running() {
			fmt.Printf("%s  %s", state.ProjectID, timeutil.FormatHMS(app.Timer.Elapsed()))
		} else {
			fmt.Print("idle")
		}
		select {
		case <-ticker.C:
		case <-stop:
			fmt.Println()
			return
		}
	}
}

func printStatus(app *internal.App) {
	state := app.Timer.State()
	if state.Running() {
		name := state.ProjectID
		if p, ok := app.Store.GetProject(state.ProjectID); ok {
			name = p.Name
		}
		fmt.Printf("Tracking %s since %s (%s)\n", name,
			timeutil.FormatClock(*state.StartTime),
			timeutil.FormatHMS(app.Timer.Elapsed()))
	} else {
		fmt.Println("Idle")
	}

	today := app.Store.TodaySessions()
	start, end := timeutil.DayRange(time.Now())
	total := app.Store.TotalTimeInRange(today, start, end) + app.Timer.Elapsed()
	fmt.Printf("Today: %s\n", timeutil.FormatHM(total))
}
