package app

import (
	"strings"
	"time"

	"github.com/wbaizer/naologic-reflow/internal/domain"
)

type ChangeReasonCode string

const (
	ReasonNoChange          ChangeReasonCode = "no_change"
	ReasonFixedMaintenance  ChangeReasonCode = "fixed_maintenance"
	ReasonPredecessor       ChangeReasonCode = "predecessor"
	ReasonCenterBusy        ChangeReasonCode = "center_busy"
	ReasonMaintenanceWindow ChangeReasonCode = "maintenance_window"
)

// ChangeRecord explains why a work order's schedule moved (or did not).
// BlockedBy carries the offending predecessor or blocking order number for
// the predecessor and center_busy reasons; Window carries the overlapped
// blackout for maintenance_window.
type ChangeRecord struct {
	OrderNumber     string
	Reason          ChangeReasonCode
	OriginalStart   time.Time
	OriginalEnd     time.Time
	NewStart        time.Time
	NewEnd          time.Time
	DisplacementMin int
	BlockedBy       string
	Window          *domain.MaintenanceWindow
	Message         string
}

type ScheduleErrorCode string

const (
	ErrInputInvalid       ScheduleErrorCode = "input_invalid"
	ErrForeignOrder       ScheduleErrorCode = "foreign_order"
	ErrMissingPredecessor ScheduleErrorCode = "missing_predecessor"
	ErrCycle              ScheduleErrorCode = "cycle"
	ErrNoWorkingTime      ScheduleErrorCode = "no_working_time"
	ErrNoShifts           ScheduleErrorCode = "no_shifts"
)

// ScheduleError carries every input and calendar failure of the engine;
// only the placer's internal invariant check returns a plain error. IDs
// name the offending inputs so a caller can locate them; nothing is
// retried internally.
type ScheduleError struct {
	Code    ScheduleErrorCode
	Message string
	IDs     []string
}

func (e *ScheduleError) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if len(e.IDs) > 0 {
		msg += " [" + strings.Join(e.IDs, ", ") + "]"
	}
	return msg
}
