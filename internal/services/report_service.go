package services

import (
	"fmt"
	"sort"
	"time"
	"timekeep/internal/models"
	"timekeep/internal/providers"
	"timekeep/internal/timeutil"

	json "github.com/goccy/go-json"
)

// ProjectSummary is a project's clamped total within a report range.
type ProjectSummary struct {
	Project models.Project `json:"project"`
	Total   time.Duration  `json:"total"`
}

// DayTotal is one chart bucket: a calendar day and its clamped total.
type DayTotal struct {
	Date  time.Time     `json:"date"`
	Total time.Duration `json:"total"`
}

type ReportServiceInterface interface {
	ProjectSummaries(start, end time.Time) []ProjectSummary
	DailyTotals(from time.Time, days int) []DayTotal
	WeekDailyTotals(now time.Time) []DayTotal
	MonthDailyTotals(now time.Time) []DayTotal
	GoalProgress(day time.Time, settings models.Settings) (tracked, goal time.Duration)
}

// ReportService is the read-only aggregation layer over the store. It
// holds no mutable state of its own and is safe to call at refresh
// frequency; results are cached by store revision.
type ReportService struct {
	store  StoreServiceInterface
	cache  providers.CacheProviderInterface
	logger providers.Logger
}

func NewReportService(store StoreServiceInterface, cache providers.CacheProviderInterface, logger providers.Logger) ReportServiceInterface {
	return &ReportService{store: store, cache: cache, logger: logger}
}

// GroupByProject buckets sessions by project id, preserving first-seen
// group order.
func GroupByProject(sessions []models.Session) (order []string, groups map[string][]models.Session) {
	groups = make(map[string][]models.Session)
	for _, s := range sessions {
		if _, ok := groups[s.Project]; !ok {
			order = append(order, s.Project)
		}
		groups[s.Project] = append(groups[s.Project], s)
	}
	return order, groups
}

// ProjectSummaries totals each project's overlap with [start, end),
// sorted by descending total. Sessions referencing a deleted project
// keep showing under the bare id until the cascade cleans them up.
func (rs *ReportService) ProjectSummaries(start, end time.Time) []ProjectSummary {
	key := fmt.Sprintf("psum:%d:%d:%d", rs.store.Revision(), start.UnixMilli(), end.UnixMilli())
	if raw, ok := rs.cache.Get(key); ok {
		var cached []ProjectSummary
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached
		}
	}

	sessions := rs.store.SessionsInRange(start, end)
	order, groups := GroupByProject(sessions)

	summaries := make([]ProjectSummary, 0, len(order))
	for _, id := range order {
		project, ok := rs.store.GetProject(id)
		if !ok {
			project = models.Project{ID: id, Name: id, Color: "#888888"}
		}
		summaries = append(summaries, ProjectSummary{
			Project: project,
			Total:   rs.store.TotalTimeInRange(groups[id], start, end),
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Total > summaries[j].Total
	})

	if raw, err := json.Marshal(summaries); err == nil {
		rs.cache.Set(key, raw)
	} else {
		rs.logger.Warnf(providers.TypeReport, "Failed to cache summaries: %s", err)
	}
	return summaries
}

// DailyTotals buckets the clamped totals of `days` consecutive days
// starting at from's day.
func (rs *ReportService) DailyTotals(from time.Time, days int) []DayTotal {
	sessions := rs.store.Sessions()
	totals := make([]DayTotal, 0, days)
	day := from
	for i := 0; i < days; i++ {
		start, end := timeutil.DayRange(day)
		totals = append(totals, DayTotal{
			Date:  start,
			Total: rs.store.TotalTimeInRange(sessions, start, end),
		})
		day = day.AddDate(0, 0, 1)
	}
	return totals
}

func (rs *ReportService) WeekDailyTotals(now time.Time) []DayTotal {
	start, _ := timeutil.WeekRange(now)
	return rs.DailyTotals(start, 7)
}

func (rs *ReportService) MonthDailyTotals(now time.Time) []DayTotal {
	start, _ := timeutil.MonthRange(now)
	return rs.DailyTotals(start, timeutil.DaysInMonth(now))
}

// GoalProgress reports the day's clamped total against that weekday's
// configured goal. A zero goal means none is set.
func (rs *ReportService) GoalProgress(day time.Time, settings models.Settings) (time.Duration, time.Duration) {
	start, end := timeutil.DayRange(day)
	tracked := rs.store.TotalTimeInRange(rs.store.Sessions(), start, end)
	goal := time.Duration(settings.DailyGoalMins[int(day.Weekday())]) * time.Minute
	return tracked, goal
}
