package model

import (
	"iter"
	"slices"
)

// Enumerates the unpruned cross product lazily and filters complete combinations as they are produced,
// so only one combination is alive at a time
type streamingScheduler struct{}

func NewStreamingScheduler() Scheduler {
	return &streamingScheduler{}
}

func (scheduler *streamingScheduler) Generate(domains [][]Section) []Schedule {
	return collect(scheduler.Stream(domains))
}

func (scheduler *streamingScheduler) Stream(domains [][]Section) iter.Seq[Schedule] {
	combinations := newCombinationGenerator(domains).Combinations(nil)
	return func(yield func(Schedule) bool) {
		for combination := range combinations {
			if NoConflicts(combination) && !yield(combination) {
				return
			}
		}
	}
}

func (scheduler *streamingScheduler) Verify(schedules []Schedule) bool {
	return verify(schedules)
}

func collect(schedules iter.Seq[Schedule]) []Schedule {
	result := slices.Collect(schedules)
	if result == nil {
		return []Schedule{}
	}
	return result
}
