package contract

import (
	"github.com/wbaizer/naologic-reflow/internal/app"
	"github.com/wbaizer/naologic-reflow/internal/domain"
)

type ScheduleRequest = app.ScheduleRequest

func NewScheduleRequest(centers []domain.WorkCenter, orders []domain.WorkOrder) ScheduleRequest {
	return app.NewScheduleRequest(centers, orders)
}

type CenterResult = app.CenterResult

type CenterSummary = app.CenterSummary

type ScheduleResponse = app.ScheduleResponse
