package scheduler

import (
	"sort"

	"github.com/wbaizer/naologic-reflow/internal/app"
	"github.com/wbaizer/naologic-reflow/internal/domain"
)

// Linearize returns the center's orders in an order compatible with their
// predecessor relation using Kahn's algorithm. Ties between ready orders
// resolve in input order, so identical inputs always linearize identically.
//
// Fails with missing_predecessor when an order names a predecessor outside
// the input set, and with cycle when no full linearization exists; the
// cycle error names every order still carrying unmet predecessors.
func Linearize(orders []domain.WorkOrder) ([]domain.WorkOrder, error) {
	index := make(map[string]int, len(orders))
	for i, o := range orders {
		index[o.Number] = i
	}

	var missing []string
	seenMissing := make(map[string]bool)
	inDegree := make([]int, len(orders))
	successors := make(map[string][]int)

	for i, o := range orders {
		for _, dep := range o.DependsOn {
			if _, ok := index[dep]; !ok {
				if !seenMissing[dep] {
					seenMissing[dep] = true
					missing = append(missing, dep)
				}
				continue
			}
			successors[dep] = append(successors[dep], i)
			inDegree[i]++
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &app.ScheduleError{
			Code:    app.ErrMissingPredecessor,
			Message: "predecessor not present in the work center's orders",
			IDs:     missing,
		}
	}

	// FIFO queue seeded in input order keeps the walk deterministic.
	var queue []int
	for i, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, i)
		}
	}

	linearized := make([]domain.WorkOrder, 0, len(orders))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		linearized = append(linearized, orders[i])

		for _, succ := range successors[orders[i].Number] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	if len(linearized) != len(orders) {
		var stuck []string
		for i, deg := range inDegree {
			if deg > 0 {
				stuck = append(stuck, orders[i].Number)
			}
		}
		return nil, &app.ScheduleError{
			Code:    app.ErrCycle,
			Message: "dependency graph has a cycle",
			IDs:     stuck,
		}
	}

	return linearized, nil
}
