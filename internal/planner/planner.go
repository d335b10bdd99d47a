package planner

import (
	"context"
	"strings"
	"time"

	"github.com/limaJavier/coursescheduler/internal/logger"
	"github.com/limaJavier/coursescheduler/internal/metrics"
	"github.com/limaJavier/coursescheduler/pkg/model"
	"github.com/samber/lo"
)

// Planner answers schedule requests against a loaded database with a fixed strategy.
// It is safe for concurrent use since the database is never modified
type Planner struct {
	database  model.Database
	strategy  string
	scheduler model.Scheduler
	log       logger.Logger
	recorder  metrics.Recorder
}

func New(database model.Database, strategy string, log logger.Logger, recorder metrics.Recorder) (*Planner, error) {
	scheduler, err := model.NewScheduler(strategy)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}
	return &Planner{
		database:  database,
		strategy:  strategy,
		scheduler: scheduler,
		log:       log,
		recorder:  recorder,
	}, nil
}

func (planner *Planner) Database() model.Database {
	return planner.database
}

func (planner *Planner) Strategy() string {
	return planner.strategy
}

// Schedules returns every conflict-free schedule of the requested courses.
// The context is only checked before generation starts
func (planner *Planner) Schedules(ctx context.Context, courseNames []string) ([]model.Schedule, error) {
	start := time.Now()
	event := metrics.PlanEvent{Strategy: planner.strategy, Outcome: metrics.OutcomeError}
	defer func() {
		event.Duration = time.Since(start)
		planner.recorder.RecordPlan(event)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	domains, err := model.ResolveCandidates(courseNames, planner.database)
	if err != nil {
		planner.log.Warnf("cannot resolve %v: %v", courseNames, err)
		return nil, err
	}
	event.Combinations = model.CrossProductSize(domains)
	planner.log.Debugw("resolved candidates", map[string]any{
		"courses":      courseNames,
		"candidates":   lo.Map(domains, func(domain []model.Section, _ int) int { return len(domain) }),
		"combinations": event.Combinations,
	})

	schedules := planner.scheduler.Generate(domains)
	if !planner.scheduler.Verify(schedules) {
		planner.log.Errorf("generated schedules for %v contain conflicts", courseNames)
	}

	event.Outcome = metrics.OutcomeSuccess
	event.Accepted = len(schedules)
	planner.log.Infof("generated %d of %d combinations for %v in %v", len(schedules), event.Combinations, courseNames, time.Since(start))
	return schedules, nil
}

// Plan runs Schedules and serializes the result
func (planner *Planner) Plan(ctx context.Context, courseNames []string) ([][]model.ScheduleEntry, error) {
	schedules, err := planner.Schedules(ctx, courseNames)
	if err != nil {
		return nil, err
	}
	return model.SerializeAll(schedules), nil
}

// ParseCourses splits a comma separated request ("CPSC 221,MATH 100") into trimmed course names
func ParseCourses(raw string) []string {
	courses := lo.Map(strings.Split(raw, ","), func(course string, _ int) string {
		return strings.TrimSpace(course)
	})
	return lo.Compact(courses)
}
