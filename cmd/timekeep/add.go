package main

import (
	"errors"
	"fmt"
	"timekeep/internal/models"
	"timekeep/internal/timeutil"

	"github.com/spf13/cobra"
)

var (
	addProject string
	addDate    string
	addFrom    string
	addTo      string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a session manually (backfill untracked time)",
	Run:   runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addProject, "project", "p", "", "Project id or name (required)")
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Day as YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&addFrom, "from", "", "Start as HH:MM (required)")
	addCmd.Flags().StringVar(&addTo, "to", "", "End as HH:MM (required)")
	for _, f := range []string{"project", "from", "to"} {
		if err := addCmd.MarkFlagRequired(f); err != nil {
			panic(fmt.Sprintf("Failed to mark %s flag as required: %v", f, err))
		}
	}
}

func runAdd(cmd *cobra.Command, args []string) {
	app := openApp()
	defer app.Close()

	project := resolveProject(app, addProject)
	day := parseDay(addDate)
	start := parseClock(day, addFrom)
	end := parseClock(day, addTo)

	err := app.Timer.AddManual(project.ID, start, end)
	if errors.Is(err, models.ErrInvalidRange) {
		fatal("end must be after start")
	}
	if err != nil {
		fatal("add: %v", err)
	}
	fmt.Printf("Added %s on %s\n", timeutil.FormatHM(end.Sub(start)), project.Name)
}
