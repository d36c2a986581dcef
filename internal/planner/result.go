package planner

import "strconv"

// Result is the outcome of a planner run: either a reachable minimum price
// or Unreachable. The zero value is Unreachable.
type Result struct {
	price     int64
	reachable bool
}

// Reachable returns a result carrying price.
func Reachable(price int64) Result {
	return Result{price: price, reachable: true}
}

// Unreachable returns the result for targets no chain can cover exactly.
func Unreachable() Result {
	return Result{}
}

// Price returns the minimum price and whether the target was reachable.
func (r Result) Price() (int64, bool) {
	return r.price, r.reachable
}

// IsReachable reports whether a chain exists.
func (r Result) IsReachable() bool {
	return r.reachable
}

// Legacy renders the result as the single number the original file format
// reports: the price, or -1 when unreachable.
func (r Result) Legacy() int64 {
	if !r.reachable {
		return -1
	}
	return r.price
}

// String implements fmt.Stringer.
func (r Result) String() string {
	if !r.reachable {
		return "unreachable"
	}
	return strconv.FormatInt(r.price, 10)
}

// less orders reachable results by price and puts Unreachable last.
func (r Result) less(o Result) bool {
	if !r.reachable {
		return false
	}
	if !o.reachable {
		return true
	}
	return r.price < o.price
}
