// Package api provides the planner service shared by the CLI and the gRPC
// transport.
package api

import (
	"context"
	"fmt"
	"time"

	"github.com/solatis/railplanner/internal/core/history"
	"github.com/solatis/railplanner/internal/core/logging"
	"github.com/solatis/railplanner/internal/input"
	"github.com/solatis/railplanner/internal/planner"
	"github.com/solatis/railplanner/internal/types"
)

// PlannerService runs the cost engine and optionally records each run.
// Thin orchestration layer delegating to input, planner and history packages.
type PlannerService struct {
	recorder *history.Recorder // nil disables history
	limits   input.Limits
}

// NewPlannerService creates service instance with dependencies.
// recorder may be nil when no database is configured.
func NewPlannerService(recorder *history.Recorder, limits input.Limits) (*PlannerService, error) {
	if limits.MaxTargetLength <= 0 || limits.MaxSegments <= 0 || limits.MaxTableCells <= 0 {
		return nil, fmt.Errorf("limits must be positive, got %+v", limits)
	}
	return &PlannerService{recorder: recorder, limits: limits}, nil
}

// Limits returns the validation limits applied to incoming plans.
func (s *PlannerService) Limits() input.Limits {
	return s.limits
}

// Outcome is the result of one planner run.
type Outcome struct {
	Result   planner.Result
	RunID    types.RunID // empty when history is disabled
	Duration time.Duration
}

// Run computes plan and records it under source.
// The computation itself is synchronous and not interruptible; ctx only
// bounds the history write.
func (s *PlannerService) Run(ctx context.Context, source string, plan *input.Plan) (Outcome, error) {
	logger := logging.FromContext(ctx)

	start := time.Now()
	res := planner.MinimumCost(plan.TargetLength, plan.Catalog)
	out := Outcome{Result: res, Duration: time.Since(start)}

	logger.Debug("planner run complete",
		"source", source,
		"target_length", plan.TargetLength,
		"connections", plan.Catalog.AlphabetSize(),
		"segments", plan.Catalog.Len(),
		"result", res.String(),
		"duration", out.Duration,
	)

	if s.recorder == nil {
		return out, nil
	}

	run, err := s.recorder.Record(ctx, history.Run{
		Source:       source,
		TargetLength: plan.TargetLength,
		Alphabet:     plan.Catalog.Alphabet().String(),
		SegmentCount: plan.Catalog.Len(),
		Reachable:    res.IsReachable(),
		Price:        res.Legacy(),
		DurationUs:   out.Duration.Microseconds(),
	})
	if err != nil {
		return out, err
	}
	out.RunID = run.RunID
	return out, nil
}
