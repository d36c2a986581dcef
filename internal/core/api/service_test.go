package api

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/solatis/railplanner/internal/core/db"
	"github.com/solatis/railplanner/internal/core/history"
	"github.com/solatis/railplanner/internal/input"
	"github.com/solatis/railplanner/internal/planner"
	"github.com/solatis/railplanner/internal/types"
)

func newRecorder(t *testing.T) *history.Recorder {
	t.Helper()
	database, err := db.Open("sqlite://" + filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	_, err = db.MigrateUp(database)
	require.NoError(t, err)
	q, err := db.LoadQueries(database)
	require.NoError(t, err)
	return history.NewRecorder(q)
}

func mustPlan(t *testing.T, text string) *input.Plan {
	t.Helper()
	plan, err := input.Parse(strings.NewReader(text), input.DefaultLimits())
	require.NoError(t, err)
	return plan
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func TestNewPlannerService(t *testing.T) {
	_, err := NewPlannerService(nil, input.Limits{})
	assert.Error(t, err)

	svc, err := NewPlannerService(nil, input.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, input.DefaultLimits(), svc.Limits())
}

func TestPlannerService_RunWithoutHistory(t *testing.T) {
	svc, err := NewPlannerService(nil, input.DefaultLimits())
	require.NoError(t, err)

	out, err := svc.Run(context.Background(), "test", mustPlan(t, "6\n1\nA\nA,A,3,7\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(14), out.Result.Legacy())
	assert.Empty(t, out.RunID)
}

func TestPlannerService_RunRecordsHistory(t *testing.T) {
	rec := newRecorder(t)
	svc, err := NewPlannerService(rec, input.DefaultLimits())
	require.NoError(t, err)

	ctx := context.Background()
	out, err := svc.Run(ctx, "input.txt", mustPlan(t, "4\n1\nA\nA,A,3,7\n"))
	require.NoError(t, err)
	assert.False(t, out.Result.IsReachable())
	require.NotEmpty(t, out.RunID)

	run, err := rec.Get(ctx, out.RunID)
	require.NoError(t, err)
	assert.Equal(t, "input.txt", run.Source)
	assert.Equal(t, 4, run.TargetLength)
	assert.Equal(t, "A", run.Alphabet)
	assert.Equal(t, 1, run.SegmentCount)
	assert.False(t, run.Reachable)
	assert.Equal(t, int64(-1), run.Price)
}

func TestEncodeDecodePlan(t *testing.T) {
	plan := mustPlan(t, "2\n2\nA,B\nA,B,1,10\nB,A,1,5\n")

	req, err := EncodePlan(plan)
	require.NoError(t, err)

	decoded, err := DecodePlan(req, input.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, plan.TargetLength, decoded.TargetLength)
	assert.Equal(t, plan.Catalog.Segments(), decoded.Catalog.Segments())
	assert.Equal(t, plan.Catalog.Alphabet().String(), decoded.Catalog.Alphabet().String())
}

func TestDecodePlan_Errors(t *testing.T) {
	validSeg := map[string]any{"left": "A", "right": "A", "length": 3, "price": 7}

	tests := []struct {
		name    string
		req     map[string]any
		wantErr error
	}{
		{
			name:    "missing target",
			req:     map[string]any{"connections": []any{"A"}},
			wantErr: errBadRequest,
		},
		{
			name:    "fractional target",
			req:     map[string]any{"target_length": 1.5, "connections": []any{"A"}},
			wantErr: errBadRequest,
		},
		{
			name:    "negative target",
			req:     map[string]any{"target_length": -3, "connections": []any{"A"}},
			wantErr: types.ErrInvalidTargetLength,
		},
		{
			name:    "no connections",
			req:     map[string]any{"target_length": 3},
			wantErr: types.ErrEmptyAlphabet,
		},
		{
			name:    "numeric connection",
			req:     map[string]any{"target_length": 3, "connections": []any{1}},
			wantErr: errBadRequest,
		},
		{
			name:    "duplicate connection",
			req:     map[string]any{"target_length": 3, "connections": []any{"A", "A"}},
			wantErr: types.ErrDuplicateConnection,
		},
		{
			name: "segment not an object",
			req: map[string]any{"target_length": 3, "connections": []any{"A"},
				"segments": []any{"A,A,3,7"}},
			wantErr: errBadRequest,
		},
		{
			name: "segment long symbol",
			req: map[string]any{"target_length": 3, "connections": []any{"A"},
				"segments": []any{map[string]any{"left": "AA", "right": "A", "length": 3, "price": 7}}},
			wantErr: errBadRequest,
		},
		{
			name: "segment unknown symbol",
			req: map[string]any{"target_length": 3, "connections": []any{"A"},
				"segments": []any{validSeg, map[string]any{"left": "B", "right": "A", "length": 3, "price": 7}}},
			wantErr: types.ErrUnknownConnection,
		},
		{
			name: "segment zero price",
			req: map[string]any{"target_length": 3, "connections": []any{"A"},
				"segments": []any{map[string]any{"left": "A", "right": "A", "length": 3, "price": 0}}},
			wantErr: types.ErrNonPositiveValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePlan(mustStruct(t, tt.req), input.DefaultLimits())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, codes.InvalidArgument, status.Code(statusFromError(err)))
		})
	}
}

func TestDecodePlan_TooManySegments(t *testing.T) {
	seg := map[string]any{"left": "A", "right": "A", "length": 1, "price": 1}
	req := mustStruct(t, map[string]any{
		"target_length": 1,
		"connections":   []any{"A"},
		"segments":      []any{seg, seg},
	})
	_, err := DecodePlan(req, input.Limits{MaxTargetLength: 10, MaxSegments: 1, MaxLineLength: 10})
	assert.ErrorIs(t, err, types.ErrTooManySegments)
}

func TestDecodePlan_TableTooLarge(t *testing.T) {
	connections := make([]any, 128)
	for i := range connections {
		connections[i] = string(rune(i))
	}
	request := func(length int) *structpb.Struct {
		return mustStruct(t, map[string]any{
			"target_length": 1_000_000,
			"connections":   connections,
			"segments": []any{
				map[string]any{"left": "A", "right": "A", "length": length, "price": 1},
			},
		})
	}

	_, err := DecodePlan(request(1_000_000), input.DefaultLimits())
	assert.ErrorIs(t, err, types.ErrTableTooLarge)
	assert.Equal(t, codes.InvalidArgument, status.Code(statusFromError(err)))

	plan, err := DecodePlan(request(3), input.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, 4*128, planner.TableCells(plan.TargetLength, plan.Catalog))
}

func TestStatusFromError(t *testing.T) {
	assert.NoError(t, statusFromError(nil))
	assert.Equal(t, codes.DeadlineExceeded, status.Code(statusFromError(fmt.Errorf("x: %w", context.DeadlineExceeded))))
	assert.Equal(t, codes.Canceled, status.Code(statusFromError(context.Canceled)))
	assert.Equal(t, codes.Unavailable, status.Code(statusFromError(errors.New("database error: locked"))))
	assert.Equal(t, codes.Internal, status.Code(statusFromError(errors.New("boom"))))
}

func TestMinimumCost_Direct(t *testing.T) {
	svc, err := NewPlannerService(nil, input.DefaultLimits())
	require.NoError(t, err)

	resp, err := svc.MinimumCost(context.Background(), mustStruct(t, map[string]any{
		"target_length": 2,
		"connections":   []any{"A", "B"},
		"segments": []any{
			map[string]any{"left": "A", "right": "B", "length": 1, "price": 10},
			map[string]any{"left": "B", "right": "A", "length": 1, "price": 5},
		},
	}))
	require.NoError(t, err)
	assert.True(t, resp.GetFields()["reachable"].GetBoolValue())
	assert.Equal(t, "15", resp.GetFields()["price"].GetStringValue())
	assert.Equal(t, "", resp.GetFields()["run_id"].GetStringValue())
}
