package app

import (
	"time"

	"github.com/wbaizer/naologic-reflow/internal/domain"
)

type ScheduleRequest struct {
	Centers []domain.WorkCenter
	Orders  []domain.WorkOrder
	Now     *time.Time
}

func NewScheduleRequest(centers []domain.WorkCenter, orders []domain.WorkOrder) ScheduleRequest {
	return ScheduleRequest{
		Centers: centers,
		Orders:  orders,
	}
}

// CenterResult bundles one work center's recomputed schedule. Orders and
// Changes keep the input's original order; only start/end instants differ
// from the input records.
type CenterResult struct {
	Center  string
	Orders  []domain.WorkOrder
	Changes []ChangeRecord
	Summary CenterSummary
}

type CenterSummary struct {
	Changed           int
	Unchanged         int
	Fixed             int
	TotalDisplacedMin int
}

type ScheduleResponse struct {
	RunID       string
	GeneratedAt time.Time
	Centers     []CenterResult
	Summary     CenterSummary
}
