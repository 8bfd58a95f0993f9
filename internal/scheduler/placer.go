package scheduler

import (
	"fmt"
	"time"

	"github.com/wbaizer/naologic-reflow/internal/app"
	"github.com/wbaizer/naologic-reflow/internal/calendar"
	"github.com/wbaizer/naologic-reflow/internal/domain"
)

// placedInterval is one committed placement. Committed intervals are
// immutable for the rest of the run and are keyed by the order's stable
// number only.
type placedInterval struct {
	number string
	start  time.Time
	end    time.Time
}

func (p placedInterval) overlaps(start, end time.Time) bool {
	return p.start.Before(end) && p.end.After(start)
}

// placer walks a linearization and assigns each order the earliest feasible
// start respecting predecessor completion, the working-time calendar, and
// exclusivity against everything already committed.
type placer struct {
	cal       *calendar.Calendar
	committed []placedInterval
	byNumber  map[string]placedInterval
}

func newPlacer(cal *calendar.Calendar) *placer {
	return &placer{
		cal:      cal,
		byNumber: make(map[string]placedInterval),
	}
}

func (p *placer) commit(number string, start, end time.Time) {
	iv := placedInterval{number: number, start: start, end: end}
	p.committed = append(p.committed, iv)
	p.byNumber[number] = iv
}

// firstConflict returns the earliest-committed interval overlapping
// [start, end), or nil. Ties at endpoints are not conflicts.
func (p *placer) firstConflict(start, end time.Time) *placedInterval {
	for i := range p.committed {
		if p.committed[i].overlaps(start, end) {
			return &p.committed[i]
		}
	}
	return nil
}

// placeFixed commits a maintenance-class order at its original interval,
// unchanged by contract. It still occupies the center for exclusivity and
// satisfies predecessors like any other placement.
func (p *placer) placeFixed(o domain.WorkOrder) app.ChangeRecord {
	p.commit(o.Number, o.Start, o.End)
	return app.ChangeRecord{
		OrderNumber:   o.Number,
		Reason:        app.ReasonFixedMaintenance,
		OriginalStart: o.Start,
		OriginalEnd:   o.End,
		NewStart:      o.Start,
		NewEnd:        o.End,
		Message:       fmt.Sprintf("maintenance order %s held at its original window", o.Number),
	}
}

// placeMovable finds the earliest feasible start for o and commits it.
// The floor starts at the order's original start, rises to the latest
// predecessor end, then climbs past conflicting placements: snap the floor
// to working time, compute the end, and if anything committed overlaps,
// restart from the blocker's end. Every bump strictly raises the floor and
// each committed interval can bump at most once, so the loop terminates.
func (p *placer) placeMovable(o domain.WorkOrder) (app.ChangeRecord, error) {
	floor := o.Start
	var latestPred *placedInterval
	for _, dep := range o.DependsOn {
		pred, ok := p.byNumber[dep]
		if !ok {
			return app.ChangeRecord{}, fmt.Errorf("internal: predecessor %q of order %q not placed before it", dep, o.Number)
		}
		if pred.end.After(floor) {
			floor = pred.end
		}
		if latestPred == nil || pred.end.After(latestPred.end) {
			iv := pred
			latestPred = &iv
		}
	}

	var start, end time.Time
	for {
		var err error
		start, err = p.cal.NextWorking(floor)
		if err != nil {
			return app.ChangeRecord{}, err
		}
		end, err = p.cal.EndOfWork(start, o.DurationMin)
		if err != nil {
			return app.ChangeRecord{}, err
		}
		if conflict := p.firstConflict(start, end); conflict != nil {
			floor = conflict.end
			continue
		}
		break
	}

	record := p.classify(o, latestPred, start, end)
	p.commit(o.Number, start, end)
	return record, nil
}

// classify tags the dominant displacement reason for a freshly placed
// order. Priority: predecessor, then a busy center, then a maintenance
// window overlapping the original interval; anything else (including pure
// shift-boundary snapping) reports no_change.
func (p *placer) classify(o domain.WorkOrder, latestPred *placedInterval, start, end time.Time) app.ChangeRecord {
	record := app.ChangeRecord{
		OrderNumber:     o.Number,
		OriginalStart:   o.Start,
		OriginalEnd:     o.End,
		NewStart:        start,
		NewEnd:          end,
		DisplacementMin: int(start.Sub(o.Start).Minutes()),
	}

	if start.Equal(o.Start) && end.Equal(o.End) {
		record.Reason = app.ReasonNoChange
		record.Message = fmt.Sprintf("order %s keeps its original schedule", o.Number)
		return record
	}

	if latestPred != nil && latestPred.end.After(o.Start) {
		record.Reason = app.ReasonPredecessor
		record.BlockedBy = latestPred.number
		record.Message = fmt.Sprintf("order %s waits %d min for predecessor %s to finish",
			o.Number, record.DisplacementMin, latestPred.number)
		return record
	}

	if conflict := p.firstConflict(o.Start, o.End); conflict != nil {
		record.Reason = app.ReasonCenterBusy
		record.BlockedBy = conflict.number
		record.Message = fmt.Sprintf("order %s displaced %d min behind order %s occupying the center",
			o.Number, record.DisplacementMin, conflict.number)
		return record
	}

	// Maintenance overlap classifies with half-open bounds, unlike the
	// calendar's closed-bound blocking.
	for _, w := range p.cal.Maintenance() {
		if o.Start.Before(w.End) && o.End.After(w.Start) {
			win := w
			record.Reason = app.ReasonMaintenanceWindow
			record.Window = &win
			record.Message = fmt.Sprintf("order %s displaced %d min around maintenance from %s to %s",
				o.Number, record.DisplacementMin,
				w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
			return record
		}
	}

	record.Reason = app.ReasonNoChange
	record.Message = fmt.Sprintf("order %s snapped %d min to the next working instant", o.Number, record.DisplacementMin)
	return record
}
