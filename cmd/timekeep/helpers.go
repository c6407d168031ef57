package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"timekeep/internal"
	"timekeep/internal/di"
	"timekeep/internal/models"
	"timekeep/internal/structures"
	"timekeep/internal/timeutil"
)

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "timekeep", "config.yaml")
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// openApp builds the full application via the injector. Callers must
// Close() it when done.
func openApp() *internal.App {
	app, err := di.InitApp(&structures.CliFlags{
		ConfigPath: flagConfig,
		DebugMode:  flagDebug,
	})
	if err != nil {
		fatal("timekeep: %v", err)
	}
	return app
}

// resolveProject accepts a project id or name, case-sensitive id first.
func resolveProject(app *internal.App, ref string) models.Project {
	if p, ok := app.Store.GetProject(ref); ok {
		return p
	}
	for _, p := range app.Store.Projects() {
		if p.Name == ref {
			return p
		}
	}
	fatal("unknown project %q (try: timekeep project list)", ref)
	return models.Project{}
}

// parseDay accepts YYYY-MM-DD in local time; empty means today.
func parseDay(value string) time.Time {
	if value == "" {
		return time.Now()
	}
	day, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		fatal("invalid date %q, want YYYY-MM-DD", value)
	}
	return day
}

// parseClock combines a HH:MM clock value with a day.
func parseClock(day time.Time, value string) time.Time {
	clock, err := time.Parse("15:04", value)
	if err != nil {
		fatal("invalid time %q, want HH:MM", value)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, day.Location())
}

func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return timeutil.FormatHMS(d)
	}
	return timeutil.FormatHM(d)
}

func printSessions(app *internal.App, sessions []models.Session) {
	for _, s := range sessions {
		name := s.Project
		if p, ok := app.Store.GetProject(s.Project); ok {
			name = p.Name
		}
		fmt.Printf("%s  %s–%s  %-8s  %s\n",
			s.Start.Format("2006-01-02"),
			timeutil.FormatClock(s.Start),
			timeutil.FormatClock(s.End),
			timeutil.FormatHM(s.Duration()),
			name,
		)
		fmt.Printf("    id: %s\n", s.ID)
	}
}
