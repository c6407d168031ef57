package main

import (
	"fmt"
	"timekeep/internal/models"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start <project>",
	Short: "Start tracking a project (switches if already running)",
	Args:  cobra.ExactArgs(1),
	Run:   runStart,
}

func runStart(cmd *cobra.Command, args []string) {
	app := openApp()
	defer app.Close()

	project := resolveProject(app, args[0])
	prev := app.Timer.State()
	if err := app.Timer.Start(project.ID); err != nil {
		fatal("start: %v", err)
	}
	if prev.Running() {
		fmt.Printf("Switched from %s to %s\n", prev.ProjectID, project.Name)
		return
	}
	fmt.Printf("Tracking %s\n", project.Name)
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running timer and record the session",
	Run:   runStop,
}

func runStop(cmd *cobra.Command, args []string) {
	app := openApp()
	defer app.Close()

	state := app.Timer.State()
	if state.Status == models.StatusIdle {
		fmt.Println("Nothing is running")
		return
	}
	elapsed := app.Timer.Elapsed()
	if err := app.Timer.Stop(); err != nil {
		fatal("stop: %v", err)
	}
	fmt.Printf("Recorded %s on %s\n", formatElapsed(elapsed), state.ProjectID)
}

var discardCmd = &cobra.Command{
	Use:   "discard",
	Short: "Drop the in-progress interval without recording it",
	Run:   runDiscard,
}

func runDiscard(cmd *cobra.Command, args []string) {
	app := openApp()
	defer app.Close()

	if err := app.Timer.Discard(); err != nil {
		fatal("discard: %v", err)
	}
	fmt.Println("Discarded")
}
