// Package testutil provides fixture builders shared by the engine tests.
// Builders default to a Monday-anchored week so calendars line up without
// per-test date arithmetic.
package testutil

import (
	"time"

	"github.com/wbaizer/naologic-reflow/internal/domain"
)

// BaseMonday anchors fixture instants; 2024-03-04 is a Monday.
var BaseMonday = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

// At returns an instant on the fixture week: day offsets from BaseMonday
// plus a wall-clock hour and minute.
func At(day, hour, min int) time.Time {
	return BaseMonday.AddDate(0, 0, day).Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

// WeekdayShifts builds Monday through Friday shifts with the given hours.
func WeekdayShifts(startHour, endHour int) []domain.Shift {
	days := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	shifts := make([]domain.Shift, 0, len(days))
	for _, d := range days {
		shifts = append(shifts, domain.Shift{Weekday: d, StartHour: startHour, EndHour: endHour})
	}
	return shifts
}

// Work center options
type CenterOption func(*domain.WorkCenter)

func WithShifts(shifts ...domain.Shift) CenterOption {
	return func(c *domain.WorkCenter) {
		c.Shifts = shifts
	}
}

func WithMaintenance(windows ...domain.MaintenanceWindow) CenterOption {
	return func(c *domain.WorkCenter) {
		c.Maintenance = windows
	}
}

// NewTestCenter builds a work center with a Mon–Fri 08:00–17:00 calendar
// unless shifts are overridden.
func NewTestCenter(name string, opts ...CenterOption) domain.WorkCenter {
	c := domain.WorkCenter{
		Name:   name,
		Shifts: WeekdayShifts(8, 17),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Work order options
type OrderOption func(*domain.WorkOrder)

func OnCenter(name string) OrderOption {
	return func(o *domain.WorkOrder) {
		o.WorkCenter = name
	}
}

// Window sets the original interval and keeps DurationMin consistent with
// its wall-clock span; override duration after Window when they differ.
func Window(start, end time.Time) OrderOption {
	return func(o *domain.WorkOrder) {
		o.Start = start
		o.End = end
		o.DurationMin = int(end.Sub(start).Minutes())
	}
}

func Duration(min int) OrderOption {
	return func(o *domain.WorkOrder) {
		o.DurationMin = min
	}
}

func DependsOn(numbers ...string) OrderOption {
	return func(o *domain.WorkOrder) {
		o.DependsOn = numbers
	}
}

func AsMaintenance() OrderOption {
	return func(o *domain.WorkOrder) {
		o.Maintenance = true
	}
}

func ForManufacturingOrder(id string) OrderOption {
	return func(o *domain.WorkOrder) {
		o.ManufacturingOrderID = id
	}
}

// NewTestOrder builds a movable one-hour order starting Monday 08:00 on
// center "mill-a" unless overridden.
func NewTestOrder(number string, opts ...OrderOption) domain.WorkOrder {
	o := domain.WorkOrder{
		Number:      number,
		WorkCenter:  "mill-a",
		Start:       At(0, 8, 0),
		End:         At(0, 9, 0),
		DurationMin: 60,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
