package services

import (
	"errors"
	"sync"
	"time"
	"timekeep/internal/models"
	"timekeep/internal/providers"
	"timekeep/internal/timeutil"

	"github.com/google/uuid"
)

// ErrNoSuchSession is returned when a session id does not resolve,
// typically because the session was deleted under a stale view.
var ErrNoSuchSession = errors.New("no session with that id")

// PersistDataFunc writes the full time-data document. The store calls
// it synchronously after every mutation; it does not know where the
// document lives.
type PersistDataFunc func(*models.TimeData) error

type StoreServiceInterface interface {
	PutData(data *models.TimeData)
	Snapshot() *models.TimeData
	Save() error
	Revision() uint64

	Projects() []models.Project
	GetProject(id string) (models.Project, bool)
	AddProject(p models.Project) (models.Project, error)
	UpdateProject(id string, upd models.ProjectUpdate) error
	DeleteProject(id string) error

	Sessions() []models.Session
	AddSession(s models.Session) (models.Session, error)
	UpdateSession(id string, start, end time.Time, projectID string) error
	DeleteSession(id string) error

	SessionsInRange(start, end time.Time) []models.Session
	TodaySessions() []models.Session
	WeekSessions() []models.Session
	MonthSessions() []models.Session

	TotalTime(sessions []models.Session) time.Duration
	TotalTimeInRange(sessions []models.Session, start, end time.Time) time.Duration
	Streak(target time.Duration) int
	StreakAt(now time.Time, target time.Duration) int
}

// StoreService owns the in-memory project and session collections.
// Single-writer by design: the mutex guards against a multi-threaded
// host, but two processes writing the same file still race (last
// writer wins), same as any whole-document store.
type StoreService struct {
	mu       sync.RWMutex
	data     *models.TimeData
	revision uint64
	persist  PersistDataFunc
	logger   providers.Logger
}

func NewStoreService(logger providers.Logger, persist PersistDataFunc) StoreServiceInterface {
	return &StoreService{
		data:    models.NewTimeData(),
		persist: persist,
		logger:  logger,
	}
}

// PutData replaces the collections with a freshly loaded document.
func (ss *StoreService) PutData(data *models.TimeData) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.data = data.Clone()
	ss.revision++
}

func (ss *StoreService) Snapshot() *models.TimeData {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.data.Clone()
}

func (ss *StoreService) Save() error {
	return ss.persist(ss.Snapshot())
}

// Revision increments on every mutation. Report caches embed it in
// their keys so stale entries are never served.
func (ss *StoreService) Revision() uint64 {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.revision
}

// saveLocked persists under the write lock so mutation+write behave as
// one logical unit. The in-memory change survives a failed write; the
// error propagates to the caller.
func (ss *StoreService) saveLocked() error {
	ss.revision++
	return ss.persist(ss.data.Clone())
}

// Projects

func (ss *StoreService) Projects() []models.Project {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	out := make([]models.Project, len(ss.data.Projects))
	copy(out, ss.data.Projects)
	return out
}

func (ss *StoreService) GetProject(id string) (models.Project, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	for _, p := range ss.data.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

func (ss *StoreService) AddProject(p models.Project) (models.Project, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	ss.data.Projects = append(ss.data.Projects, p)
	ss.logger.Infof(providers.TypeStore, "Added project %s (%s)", p.Name, p.ID)
	return p, ss.saveLocked()
}

func (ss *StoreService) UpdateProject(id string, upd models.ProjectUpdate) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	for i := range ss.data.Projects {
		if ss.data.Projects[i].ID == id {
			upd.Apply(&ss.data.Projects[i])
			return ss.saveLocked()
		}
	}
	return nil
}

// DeleteProject cascades: every session referencing the project goes
// with it. The store allows deleting the last project; the host is the
// one that forbids it.
func (ss *StoreService) DeleteProject(id string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	projects := ss.data.Projects[:0]
	for _, p := range ss.data.Projects {
		if p.ID != id {
			projects = append(projects, p)
		}
	}
	ss.data.Projects = projects

	sessions := ss.data.Sessions[:0]
	removed := 0
	for _, s := range ss.data.Sessions {
		if s.Project != id {
			sessions = append(sessions, s)
		} else {
			removed++
		}
	}
	ss.data.Sessions = sessions

	ss.logger.Infof(providers.TypeStore, "Deleted project %s and %d sessions", id, removed)
	return ss.saveLocked()
}

// Sessions

func (ss *StoreService) Sessions() []models.Session {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	out := make([]models.Session, len(ss.data.Sessions))
	copy(out, ss.data.Sessions)
	return out
}

func (ss *StoreService) AddSession(s models.Session) (models.Session, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	ss.data.Sessions = append(ss.data.Sessions, s)
	return s, ss.saveLocked()
}

// UpdateSession edits a stored session in place. Intervals where
// end <= start are rejected, never silently dropped.
func (ss *StoreService) UpdateSession(id string, start, end time.Time, projectID string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	for i := range ss.data.Sessions {
		if ss.data.Sessions[i].ID != id {
			continue
		}
		updated := models.Session{ID: id, Project: projectID, Start: start, End: end}
		if err := updated.Validate(); err != nil {
			return err
		}
		ss.data.Sessions[i] = updated
		return ss.saveLocked()
	}
	return ErrNoSuchSession
}

func (ss *StoreService) DeleteSession(id string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	for i := range ss.data.Sessions {
		if ss.data.Sessions[i].ID == id {
			ss.data.Sessions = append(ss.data.Sessions[:i], ss.data.Sessions[i+1:]...)
			return ss.saveLocked()
		}
	}
	return ErrNoSuchSession
}

// Queries

// SessionsInRange filters on the start timestamp only: a session
// belongs to [start, end) when it began there, however long it ran
// past the end. Period totals clamp separately via TotalTimeInRange.
func (ss *StoreService) SessionsInRange(start, end time.Time) []models.Session {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	var out []models.Session
	for _, s := range ss.data.Sessions {
		if !s.Start.Before(start) && s.Start.Before(end) {
			out = append(out, s)
		}
	}
	return out
}

func (ss *StoreService) TodaySessions() []models.Session {
	start, end := timeutil.DayRange(time.Now())
	return ss.SessionsInRange(start, end)
}

func (ss *StoreService) WeekSessions() []models.Session {
	start, end := timeutil.WeekRange(time.Now())
	return ss.SessionsInRange(start, end)
}

func (ss *StoreService) MonthSessions() []models.Session {
	start, end := timeutil.MonthRange(time.Now())
	return ss.SessionsInRange(start, end)
}

func (ss *StoreService) TotalTime(sessions []models.Session) time.Duration {
	var total time.Duration
	for _, s := range sessions {
		total += s.Duration()
	}
	return total
}

func (ss *StoreService) TotalTimeInRange(sessions []models.Session, start, end time.Time) time.Duration {
	var total time.Duration
	for _, s := range sessions {
		total += s.Overlap(start, end)
	}
	return total
}

func (ss *StoreService) Streak(target time.Duration) int {
	return ss.StreakAt(time.Now(), target)
}

// StreakAt counts consecutive calendar days ending at now whose
// clamped total meets the target. A short today breaks the streak at
// zero no matter the history.
func (ss *StoreService) StreakAt(now time.Time, target time.Duration) int {
	if target <= 0 {
		return 0
	}
	sessions := ss.Sessions()
	streak := 0
	day := now
	for {
		start, end := timeutil.DayRange(day)
		if ss.TotalTimeInRange(sessions, start, end) < target {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
