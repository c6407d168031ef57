package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"
	"timekeep/internal/models"
	"timekeep/internal/providers"
	"timekeep/internal/tracking"

	"github.com/google/uuid"
)

// Generates a populated time-data document for eyeballing reports
// against something more interesting than an empty store.

const (
	numDays        = 60
	maxSessionsDay = 4
)

var projects = []models.Project{
	{ID: "work", Name: "Work", Color: "#5f8eed", Icon: "briefcase"},
	{ID: "personal", Name: "Personal", Color: "#50c878", Icon: "home"},
	{ID: "reading", Name: "Reading", Color: "#e8a33d", Icon: "book"},
	{ID: "exercise", Name: "Exercise", Color: "#d35d6e", Icon: "dumbbell"},
}

type stderrLogger struct{}

func (stderrLogger) logf(level string, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "["+level+"] "+format+"\n", args...)
}
func (l stderrLogger) Errorf(_ providers.TypeEnum, f string, a ...interface{}) { l.logf("error", f, a...) }
func (l stderrLogger) Warnf(_ providers.TypeEnum, f string, a ...interface{})  { l.logf("warn", f, a...) }
func (l stderrLogger) Infof(_ providers.TypeEnum, f string, a ...interface{})  { l.logf("info", f, a...) }
func (l stderrLogger) Debugf(_ providers.TypeEnum, f string, a ...interface{}) { l.logf("debug", f, a...) }
func (l stderrLogger) Fatalf(_ providers.TypeEnum, f string, a ...interface{}) { l.logf("fatal", f, a...) }
func (stderrLogger) Close()                                                    {}

func main() {
	out := flag.String("out", "time-data.json", "Output data file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	data := &models.TimeData{
		Version:  models.DataVersion,
		Projects: projects,
		Sessions: []models.Session{},
	}

	day := time.Now().AddDate(0, 0, -numDays)
	for i := 0; i < numDays; i++ {
		day = day.AddDate(0, 0, 1)
		if rng.Intn(10) == 0 {
			continue // untracked day
		}
		cursor := time.Date(day.Year(), day.Month(), day.Day(), 8+rng.Intn(3), rng.Intn(60), 0, 0, time.Local)
		for s := 0; s < 1+rng.Intn(maxSessionsDay); s++ {
			length := time.Duration(20+rng.Intn(160)) * time.Minute
			data.Sessions = append(data.Sessions, models.Session{
				ID:      uuid.NewString(),
				Project: projects[rng.Intn(len(projects))].ID,
				Start:   cursor,
				End:     cursor.Add(length),
			})
			cursor = cursor.Add(length + time.Duration(10+rng.Intn(90))*time.Minute)
		}
	}

	fm := tracking.NewFileManager(stderrLogger{})
	if err := fm.Save(*out, data); err != nil {
		fmt.Fprintf(os.Stderr, "save: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s: %d projects, %d sessions over %d days (seed %d)\n",
		*out, len(data.Projects), len(data.Sessions), numDays, *seed)
}
