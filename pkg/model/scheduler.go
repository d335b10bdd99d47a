package model

import (
	"fmt"
	"iter"
	"slices"

	"github.com/samber/lo"
)

// Scheduler builds every conflict-free schedule from the per-course candidate lists (domains).
// All strategies accept exactly the same schedules, in the order they have in the full cross product
type Scheduler interface {
	Generate(domains [][]Section) []Schedule

	Stream(domains [][]Section) iter.Seq[Schedule]

	Verify(schedules []Schedule) bool
}

const (
	ExhaustiveStrategy = "exhaustive"
	StreamingStrategy  = "streaming"
	PruningStrategy    = "pruning"
)

var schedulers = map[string]func() Scheduler{
	ExhaustiveStrategy: NewExhaustiveScheduler,
	StreamingStrategy:  NewStreamingScheduler,
	PruningStrategy:    NewPruningScheduler,
}

func Strategies() []string {
	strategies := lo.Keys(schedulers)
	slices.Sort(strategies)
	return strategies
}

func NewScheduler(strategy string) (Scheduler, error) {
	constructor, ok := schedulers[strategy]
	if !ok {
		return nil, fmt.Errorf("%v is not a valid strategy, allowed values are %v", strategy, Strategies())
	}
	return constructor(), nil
}

// Runs the whole pipeline for the requested course names. Any error aborts the request and no schedule is returned
func CreateSchedules(courseNames []string, database Database, scheduler Scheduler) ([]Schedule, error) {
	domains, err := ResolveCandidates(courseNames, database)
	if err != nil {
		return nil, err
	}
	return scheduler.Generate(domains), nil
}
