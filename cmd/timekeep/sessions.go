package main

import (
	"errors"
	"fmt"
	"timekeep/internal/models"
	"timekeep/internal/services"
	"timekeep/internal/timeutil"

	"github.com/spf13/cobra"
)

var (
	sessionsDate    string
	sessionsProject string
	sessionsFrom    string
	sessionsTo      string
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List a day's sessions",
	Run:   runSessions,
}

var sessionsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a recorded session",
	Args:  cobra.ExactArgs(1),
	Run:   runSessionsEdit,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded session",
	Args:  cobra.ExactArgs(1),
	Run:   runSessionsDelete,
}

func init() {
	sessionsCmd.Flags().StringVarP(&sessionsDate, "date", "d", "", "Day as YYYY-MM-DD (default today)")
	sessionsEditCmd.Flags().StringVarP(&sessionsProject, "project", "p", "", "Move the session to another project")
	sessionsEditCmd.Flags().StringVar(&sessionsFrom, "from", "", "New start as HH:MM")
	sessionsEditCmd.Flags().StringVar(&sessionsTo, "to", "", "New end as HH:MM")
	sessionsCmd.AddCommand(sessionsEditCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
}

func runSessions(cmd *cobra.Command, args []string) {
	app := openApp()
	defer app.Close()

	day := parseDay(sessionsDate)
	start, end := timeutil.DayRange(day)
	sessions := app.Store.SessionsInRange(start, end)
	if len(sessions) == 0 {
		fmt.Println("No sessions")
		return
	}
	printSessions(app, sessions)
	fmt.Printf("Total: %s\n", timeutil.FormatHM(app.Store.TotalTimeInRange(sessions, start, end)))
}

func findSession(app interface {
	Sessions() []models.Session
}, id string) (models.Session, bool) {
	for _, s := range app.Sessions() {
		if s.ID == id {
			return s, true
		}
	}
	return models.Session{}, false
}

func runSessionsEdit(cmd *cobra.Command, args []string) {
	app := openApp()
	defer app.Close()

	session, ok := findSession(app.Store, args[0])
	if !ok {
		fatal("no session with id %s", args[0])
	}

	start, end, projectID := session.Start, session.End, session.Project
	if cmd.Flags().Changed("from") {
		start = parseClock(session.Start, sessionsFrom)
	}
	if cmd.Flags().Changed("to") {
		end = parseClock(session.End, sessionsTo)
	}
	if cmd.Flags().Changed("project") {
		projectID = resolveProject(app, sessionsProject).ID
	}

	err := app.Store.UpdateSession(session.ID, start, end, projectID)
	switch {
	case errors.Is(err, models.ErrInvalidRange):
		fatal("end must be after start")
	case errors.Is(err, services.ErrNoSuchSession):
		fatal("session disappeared, re-run: timekeep sessions")
	case err != nil:
		fatal("sessions edit: %v", err)
	}
	fmt.Println("Updated")
}

func runSessionsDelete(cmd *cobra.Command, args []string) {
	app := openApp()
	defer app.Close()

	err := app.Store.DeleteSession(args[0])
	if errors.Is(err, services.ErrNoSuchSession) {
		fatal("no session with id %s", args[0])
	}
	if err != nil {
		fatal("sessions delete: %v", err)
	}
	fmt.Println("Deleted")
}
