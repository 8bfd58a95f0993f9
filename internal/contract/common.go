package contract

import "github.com/wbaizer/naologic-reflow/internal/app"

type ChangeReasonCode = app.ChangeReasonCode

const (
	ReasonNoChange          ChangeReasonCode = app.ReasonNoChange
	ReasonFixedMaintenance  ChangeReasonCode = app.ReasonFixedMaintenance
	ReasonPredecessor       ChangeReasonCode = app.ReasonPredecessor
	ReasonCenterBusy        ChangeReasonCode = app.ReasonCenterBusy
	ReasonMaintenanceWindow ChangeReasonCode = app.ReasonMaintenanceWindow
)

type ChangeRecord = app.ChangeRecord

type ScheduleErrorCode = app.ScheduleErrorCode

const (
	ErrInputInvalid       ScheduleErrorCode = app.ErrInputInvalid
	ErrForeignOrder       ScheduleErrorCode = app.ErrForeignOrder
	ErrMissingPredecessor ScheduleErrorCode = app.ErrMissingPredecessor
	ErrCycle              ScheduleErrorCode = app.ErrCycle
	ErrNoWorkingTime      ScheduleErrorCode = app.ErrNoWorkingTime
	ErrNoShifts           ScheduleErrorCode = app.ErrNoShifts
)

type ScheduleError = app.ScheduleError
