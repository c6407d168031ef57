package services

import (
	"sync"
	"time"
	"timekeep/internal/models"
	"timekeep/internal/providers"

	"github.com/google/uuid"
)

// PersistStateFunc stores the timer state after every transition. The
// timer does not know or care where it ends up.
type PersistStateFunc func(models.TimerState) error

type TimerServiceInterface interface {
	Load(state models.TimerState)
	State() models.TimerState
	Elapsed() time.Duration
	Start(projectID string) error
	Stop() error
	Discard() error
	AddManual(projectID string, start, end time.Time) error
	Subscribe(fn func()) (unsubscribe func())
}

// TimerService is the two-state machine idle ⟷ running. It owns the
// live TimerState exclusively and reaches into the store only to append
// finalized sessions.
type TimerService struct {
	mu      sync.Mutex
	state   models.TimerState
	store   StoreServiceInterface
	persist PersistStateFunc
	logger  providers.Logger
	now     func() time.Time

	subMu  sync.Mutex
	subs   map[int]func()
	nextID int
}

func NewTimerService(store StoreServiceInterface, persist PersistStateFunc, logger providers.Logger) TimerServiceInterface {
	return &TimerService{
		state:   models.IdleState(),
		store:   store,
		persist: persist,
		logger:  logger,
		now:     time.Now,
		subs:    make(map[int]func()),
	}
}

// Load installs a previously persisted state, so a restart resumes the
// running display. Elapsed time stays correct because it is recomputed
// from StartTime, never accumulated.
func (ts *TimerService) Load(state models.TimerState) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if !state.Running() {
		state = models.IdleState()
	}
	ts.state = state
}

func (ts *TimerService) State() models.TimerState {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.state
}

func (ts *TimerService) Elapsed() time.Duration {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if !ts.state.Running() {
		return 0
	}
	return ts.now().Sub(*ts.state.StartTime)
}

// Start switches tracking to projectID. A run already in progress is
// finalized into a session first; start never rejects.
func (ts *TimerService) Start(projectID string) error {
	ts.mu.Lock()
	if ts.state.Running() {
		if err := ts.finalizeLocked(); err != nil {
			ts.mu.Unlock()
			return err
		}
	}
	start := ts.now()
	ts.state = models.TimerState{
		Status:    models.StatusRunning,
		ProjectID: projectID,
		StartTime: &start,
	}
	err := ts.persist(ts.state)
	ts.mu.Unlock()

	ts.logger.Infof(providers.TypeTimer, "Started tracking %s", projectID)
	ts.notify()
	return err
}

// Stop finalizes the current run into a session and returns to idle.
// No-op when already idle.
func (ts *TimerService) Stop() error {
	ts.mu.Lock()
	if !ts.state.Running() {
		ts.mu.Unlock()
		return nil
	}
	if err := ts.finalizeLocked(); err != nil {
		ts.mu.Unlock()
		return err
	}
	ts.state = models.IdleState()
	err := ts.persist(ts.state)
	ts.mu.Unlock()

	ts.notify()
	return err
}

// Discard forces idle without recording a session; the in-progress
// interval is deliberately lost.
func (ts *TimerService) Discard() error {
	ts.mu.Lock()
	ts.state = models.IdleState()
	err := ts.persist(ts.state)
	ts.mu.Unlock()

	ts.logger.Infof(providers.TypeTimer, "Discarded in-progress interval")
	ts.notify()
	return err
}

// AddManual backfills a session without touching the live timer state.
func (ts *TimerService) AddManual(projectID string, start, end time.Time) error {
	s := models.Session{
		ID:      uuid.NewString(),
		Project: projectID,
		Start:   start,
		End:     end,
	}
	if err := s.Validate(); err != nil {
		return err
	}
	_, err := ts.store.AddSession(s)
	return err
}

// Subscribe registers a change observer, fired synchronously after
// every state mutation. The returned func unregisters it.
func (ts *TimerService) Subscribe(fn func()) func() {
	ts.subMu.Lock()
	defer ts.subMu.Unlock()
	id := ts.nextID
	ts.nextID++
	ts.subs[id] = fn
	return func() {
		ts.subMu.Lock()
		defer ts.subMu.Unlock()
		delete(ts.subs, id)
	}
}

// finalizeLocked appends the running interval as a session. The state
// is left untouched if the append fails.
func (ts *TimerService) finalizeLocked() error {
	session := models.Session{
		ID:      uuid.NewString(),
		Project: ts.state.ProjectID,
		Start:   *ts.state.StartTime,
		End:     ts.now(),
	}
	if _, err := ts.store.AddSession(session); err != nil {
		return err
	}
	ts.logger.Infof(providers.TypeTimer, "Recorded %s session of %s", session.Project, session.Duration())
	return nil
}

// notify runs outside the state lock so observers may query the timer.
func (ts *TimerService) notify() {
	ts.subMu.Lock()
	fns := make([]func(), 0, len(ts.subs))
	for _, fn := range ts.subs {
		fns = append(fns, fn)
	}
	ts.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
