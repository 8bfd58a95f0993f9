// Package scheduler recomputes a feasible schedule for one work center:
// it linearizes the order dependency graph, places fixed maintenance
// orders at their contractual windows, and walks movable orders to their
// earliest feasible starts, explaining every displacement.
package scheduler

import (
	"fmt"

	"github.com/wbaizer/naologic-reflow/internal/app"
	"github.com/wbaizer/naologic-reflow/internal/calendar"
	"github.com/wbaizer/naologic-reflow/internal/domain"
)

// ScheduleCenter runs one full per-center invocation. The returned result
// lists orders and change records in the input's original order; inputs
// are never mutated. Any failure aborts the invocation with no partial
// schedule.
func ScheduleCenter(center domain.WorkCenter, orders []domain.WorkOrder) (*app.CenterResult, error) {
	if err := validateOrders(center, orders); err != nil {
		return nil, err
	}

	cal, err := calendar.New(center)
	if err != nil {
		return nil, err
	}

	// The full set linearizes together so predecessors are respected
	// across the fixed/movable split.
	linearized, err := Linearize(orders)
	if err != nil {
		return nil, err
	}

	p := newPlacer(cal)
	records := make(map[string]app.ChangeRecord, len(orders))

	for _, o := range orders {
		if o.Maintenance {
			records[o.Number] = p.placeFixed(o)
		}
	}
	for _, o := range linearized {
		if o.Maintenance {
			continue
		}
		record, err := p.placeMovable(o)
		if err != nil {
			return nil, err
		}
		records[o.Number] = record
	}

	result := &app.CenterResult{Center: center.Name}
	for _, o := range orders {
		iv := p.byNumber[o.Number]
		result.Orders = append(result.Orders, o.WithSchedule(iv.start, iv.end))

		record := records[o.Number]
		result.Changes = append(result.Changes, record)

		switch {
		case o.Maintenance:
			result.Summary.Fixed++
		case record.NewStart.Equal(record.OriginalStart) && record.NewEnd.Equal(record.OriginalEnd):
			result.Summary.Unchanged++
		default:
			result.Summary.Changed++
		}
		if record.DisplacementMin > 0 {
			result.Summary.TotalDisplacedMin += record.DisplacementMin
		}
	}

	return result, nil
}

func validateOrders(center domain.WorkCenter, orders []domain.WorkOrder) error {
	var foreign []string
	for _, o := range orders {
		if o.WorkCenter != center.Name {
			foreign = append(foreign, o.Number)
		}
	}
	if len(foreign) > 0 {
		return &app.ScheduleError{
			Code:    app.ErrForeignOrder,
			Message: fmt.Sprintf("orders do not belong to work center %q", center.Name),
			IDs:     foreign,
		}
	}

	var invalid []string
	seen := make(map[string]bool, len(orders))
	for _, o := range orders {
		switch {
		case o.Number == "":
			invalid = append(invalid, "(empty order number)")
		case seen[o.Number]:
			invalid = append(invalid, o.Number)
		case o.DurationMin <= 0 || o.End.Before(o.Start):
			invalid = append(invalid, o.Number)
		}
		seen[o.Number] = true
	}
	if len(invalid) > 0 {
		return &app.ScheduleError{
			Code:    app.ErrInputInvalid,
			Message: "orders with duplicate numbers, non-positive durations, or end before start",
			IDs:     invalid,
		}
	}

	return nil
}
