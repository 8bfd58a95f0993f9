package service

import (
	"context"

	"github.com/wbaizer/naologic-reflow/internal/contract"
)

type ScheduleService interface {
	// Schedule recomputes a feasible schedule for every work center in
	// the request. The engine is stateless: nothing persists between
	// invocations and any failure returns no partial schedule.
	Schedule(ctx context.Context, req contract.ScheduleRequest) (*contract.ScheduleResponse, error)
}
