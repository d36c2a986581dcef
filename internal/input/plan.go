package input

import (
	"fmt"

	"github.com/solatis/railplanner/internal/catalog"
	"github.com/solatis/railplanner/internal/types"
)

// NewPlan validates already-decoded request fields (e.g. from the gRPC API)
// under the same rules the file format enforces.
func NewPlan(target int, labels []string, segments []types.Segment, limits Limits) (*Plan, error) {
	if target < 0 || target > limits.MaxTargetLength {
		return nil, fmt.Errorf("%w: %d", types.ErrInvalidTargetLength, target)
	}
	if len(labels) == 0 {
		return nil, types.ErrEmptyAlphabet
	}
	if len(segments) > limits.MaxSegments {
		return nil, fmt.Errorf("%w: %d > %d", types.ErrTooManySegments, len(segments), limits.MaxSegments)
	}

	symbols := make([]types.Symbol, len(labels))
	for i, label := range labels {
		if len(label) != 1 {
			return nil, fmt.Errorf("%w: %q", types.ErrInvalidConnection, label)
		}
		symbols[i] = types.Symbol(label[0])
	}

	alphabet, err := catalog.NewAlphabet(symbols)
	if err != nil {
		return nil, err
	}
	c, err := catalog.New(alphabet, segments)
	if err != nil {
		return nil, err
	}
	if err := checkTableSize(target, c, limits); err != nil {
		return nil, err
	}
	return &Plan{TargetLength: target, Catalog: c}, nil
}
