// Package calendar answers working-time questions for a single work center:
// whether an instant is inside a shift and outside every maintenance
// blackout, and where a run of working minutes starting at some instant
// actually ends on the wall clock.
package calendar

import (
	"fmt"
	"time"

	"github.com/wbaizer/naologic-reflow/internal/app"
	"github.com/wbaizer/naologic-reflow/internal/domain"
)

const (
	// nextWorkingHorizon bounds the forward scan for the next working
	// instant. A center whose calendar yields nothing inside the horizon
	// fails the invocation.
	nextWorkingHorizon = 30 * 24 * time.Hour

	// maxScanMinutes caps the EndOfWork cursor walk. It is an
	// infinite-loop guard, not a wall-clock timeout.
	maxScanMinutes = 10_000
)

// Calendar evaluates working time for one work center. It is pure: all
// methods are read-only and safe for concurrent use.
type Calendar struct {
	center domain.WorkCenter
}

// New builds a calendar for the center. A center without shifts can never
// produce, so construction fails with no_shifts.
func New(center domain.WorkCenter) (*Calendar, error) {
	if len(center.Shifts) == 0 {
		return nil, &app.ScheduleError{
			Code:    app.ErrNoShifts,
			Message: fmt.Sprintf("work center %q has no shifts", center.Name),
		}
	}
	return &Calendar{center: center}, nil
}

// Maintenance exposes the center's blackout windows for reason
// classification; the returned slice must not be mutated.
func (c *Calendar) Maintenance() []domain.MaintenanceWindow {
	return c.center.Maintenance
}

// IsWorking reports whether t is a working instant: inside some shift and
// outside every maintenance window. Shift bounds are half-open minutes
// (start*60 <= tod < end*60); a midnight-spanning shift contributes its
// tail to the following weekday. Maintenance windows block with closed
// bounds, so both endpoints are non-working.
func (c *Calendar) IsWorking(t time.Time) bool {
	if !c.inShift(t) {
		return false
	}
	for _, w := range c.center.Maintenance {
		if w.Contains(t) {
			return false
		}
	}
	return true
}

func (c *Calendar) inShift(t time.Time) bool {
	weekday := t.Weekday()
	tod := t.Hour()*60 + t.Minute()

	for _, s := range c.center.Shifts {
		if !s.SpansMidnight() {
			if weekday == s.Weekday && tod >= s.StartHour*60 && tod < s.EndHour*60 {
				return true
			}
			continue
		}
		// Pre-midnight part on the shift's own weekday.
		if weekday == s.Weekday && tod >= s.StartHour*60 {
			return true
		}
		// Post-midnight tail on the following weekday.
		if weekday == (s.Weekday+1)%7 && tod < s.EndHour*60 {
			return true
		}
	}
	return false
}

// NextWorking returns the smallest working instant t' >= t, scanning in
// minute steps. Fails with no_working_time when the calendar stays dark
// for the whole horizon.
func (c *Calendar) NextWorking(t time.Time) (time.Time, error) {
	limit := t.Add(nextWorkingHorizon)
	for cur := t; !cur.After(limit); cur = cur.Add(time.Minute) {
		if c.IsWorking(cur) {
			return cur, nil
		}
	}
	return time.Time{}, &app.ScheduleError{
		Code: app.ErrNoWorkingTime,
		Message: fmt.Sprintf("no working time on %q within %d days of %s",
			c.center.Name, int(nextWorkingHorizon.Hours()/24), t.Format(time.RFC3339)),
	}
}

// EndOfWork walks a minute cursor from start until durationMin working
// minutes have elapsed and returns the instant just past the last working
// minute. Minutes are physical: adding a minute crosses DST transitions
// rather than repeating or skipping clock minutes.
func (c *Calendar) EndOfWork(start time.Time, durationMin int) (time.Time, error) {
	remaining := durationMin
	cur := start
	for scanned := 0; remaining > 0; scanned++ {
		if scanned >= maxScanMinutes {
			return time.Time{}, &app.ScheduleError{
				Code: app.ErrNoWorkingTime,
				Message: fmt.Sprintf("consuming %d working minutes on %q from %s exceeded the %d minute scan cap",
					durationMin, c.center.Name, start.Format(time.RFC3339), maxScanMinutes),
			}
		}
		if c.IsWorking(cur) {
			remaining--
		}
		cur = cur.Add(time.Minute)
	}
	return cur, nil
}
