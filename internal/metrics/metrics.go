package metrics

import "time"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// PlanEvent describes one schedule request handled by the planner.
type PlanEvent struct {
	Strategy     string
	Outcome      string
	Duration     time.Duration
	Combinations uint64
	Accepted     int
}

// Recorder receives one event per schedule request.
type Recorder interface {
	RecordPlan(event PlanEvent)
}

type NopRecorder struct{}

func (NopRecorder) RecordPlan(PlanEvent) {}
