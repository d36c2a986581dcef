// Package history records planner runs for later inspection.
//
// Each planner invocation (CLI or gRPC) may store one row: what was asked
// (target length, alphabet, segment count), what came back (reachable,
// price) and how long the fill took. Segment lists are not stored.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/solatis/railplanner/internal/types"
)

// Queries interface defines database operations needed for run history.
// Implemented by *db.Queries.
type Queries interface {
	ExecContext(ctx context.Context, name string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, name string, dest any, args ...any) error
	SelectContext(ctx context.Context, name string, dest any, args ...any) error
}

// Run is one recorded planner invocation.
type Run struct {
	RunID        types.RunID `db:"run_id"`
	Source       string      `db:"source"`
	TargetLength int         `db:"target_length"`
	Alphabet     string      `db:"alphabet"`
	SegmentCount int         `db:"segment_count"`
	Reachable    bool        `db:"reachable"`
	Price        int64       `db:"price"` // -1 when unreachable
	DurationUs   int64       `db:"duration_us"`
	CreatedAt    time.Time   `db:"created_at"`
}

// Duration returns the recorded computation time.
func (r Run) Duration() time.Duration {
	return time.Duration(r.DurationUs) * time.Microsecond
}

// DefaultListLimit caps List when the caller passes a non-positive limit.
const DefaultListLimit = 20

// Recorder stores and reads planner runs.
type Recorder struct {
	queries Queries
	now     func() time.Time
}

// NewRecorder creates a recorder backed by queries.
func NewRecorder(queries Queries) *Recorder {
	return &Recorder{queries: queries, now: time.Now}
}

// Record stores run, filling RunID and CreatedAt when unset, and returns the
// stored value.
func (r *Recorder) Record(ctx context.Context, run Run) (Run, error) {
	if run.RunID == "" {
		run.RunID = types.NewRunID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = r.now().UTC()
	}

	_, err := r.queries.ExecContext(ctx, "insert-run",
		string(run.RunID), run.Source, run.TargetLength, run.Alphabet, run.SegmentCount,
		run.Reachable, run.Price, run.DurationUs, run.CreatedAt,
	)
	if err != nil {
		return Run{}, fmt.Errorf("database error: failed to record run: %w", err)
	}
	return run, nil
}

// Get returns the run with id, or types.ErrRunNotFound.
func (r *Recorder) Get(ctx context.Context, id types.RunID) (Run, error) {
	var run Run
	err := r.queries.GetContext(ctx, "get-run", &run, string(id))
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, types.ErrRunNotFound
	}
	if err != nil {
		return Run{}, fmt.Errorf("database error: %w", err)
	}
	return run, nil
}

// List returns up to limit runs, newest first.
// UUIDv7 run IDs sort by creation time, so ordering uses the primary key.
func (r *Recorder) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	var runs []Run
	if err := r.queries.SelectContext(ctx, "list-runs", &runs, limit); err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return runs, nil
}
