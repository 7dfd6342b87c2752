package feasibility

import (
	"github.com/katalvlaran/trajplan/search"
	"github.com/katalvlaran/trajplan/vehicle"
)

// Chain accepts a state only when every member accepts it. Members are
// consulted in order and evaluation stops at the first rejection. Nil
// members are skipped; an empty Chain accepts everything.
type Chain []search.Oracle

// All builds a Chain from oracles.
func All(oracles ...search.Oracle) Chain {
	return Chain(oracles)
}

// Feasible implements search.Oracle.
func (c Chain) Feasible(s vehicle.State) bool {
	for _, o := range c {
		if o == nil {
			continue
		}
		if !o.Feasible(s) {
			return false
		}
	}
	return true
}
