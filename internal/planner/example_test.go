package planner_test

import (
	"fmt"

	"github.com/solatis/railplanner/internal/catalog"
	"github.com/solatis/railplanner/internal/planner"
	"github.com/solatis/railplanner/internal/types"
)

func ExampleMinimumCost() {
	alphabet, _ := catalog.NewAlphabet([]types.Symbol{'A', 'B'})
	c, _ := catalog.New(alphabet, []types.Segment{
		{Length: 1, Left: 'A', Right: 'B', Price: 10},
		{Length: 1, Left: 'B', Right: 'A', Price: 5},
	})

	fmt.Println(planner.MinimumCost(2, c))
	fmt.Println(planner.MinimumCost(2, c).Legacy())

	loop, _ := catalog.NewAlphabet([]types.Symbol{'A'})
	c, _ = catalog.New(loop, []types.Segment{{Length: 3, Left: 'A', Right: 'A', Price: 7}})
	fmt.Println(planner.MinimumCost(4, c))
	// Output:
	// 15
	// 15
	// unreachable
}
