package importer

import (
	"fmt"
	"time"
)

// instant layouts accepted in the stream: full RFC 3339, or a local civil
// date-time without zone.
var instantLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

func parseInstant(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range instantLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ValidateInput checks each record's local shape before conversion and
// returns every problem found. Cross-record problems (unknown work
// centers, missing predecessors, cycles) are the engine's to report with
// their own codes, so they are deliberately not duplicated here.
func ValidateInput(schema *InputSchema) []error {
	var errs []error

	centerNames := make(map[string]bool)
	errs = append(errs, validateWorkCenters(schema.WorkCenters, centerNames)...)

	orderNumbers := make(map[string]bool)
	errs = append(errs, validateWorkOrders(schema.WorkOrders, orderNumbers)...)

	if len(schema.WorkCenters) == 0 {
		errs = append(errs, fmt.Errorf("input contains no work centers"))
	}

	return errs
}

func validateWorkCenters(centers []WorkCenterPayload, names map[string]bool) []error {
	var errs []error

	for i, c := range centers {
		prefix := fmt.Sprintf("workCenter[%d]", i)

		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		} else if names[c.Name] {
			errs = append(errs, fmt.Errorf("%s.name: duplicate work center %q", prefix, c.Name))
		} else {
			names[c.Name] = true
		}

		if len(c.Shifts) == 0 {
			errs = append(errs, fmt.Errorf("%s.shifts: at least one shift is required", prefix))
		}
		for j, s := range c.Shifts {
			sp := fmt.Sprintf("%s.shifts[%d]", prefix, j)
			if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
				errs = append(errs, fmt.Errorf("%s.dayOfWeek: %d outside 0..6", sp, s.DayOfWeek))
			}
			if s.StartHour < 0 || s.StartHour > 23 {
				errs = append(errs, fmt.Errorf("%s.startHour: %d outside 0..23", sp, s.StartHour))
			}
			if s.EndHour < 0 || s.EndHour > 23 {
				errs = append(errs, fmt.Errorf("%s.endHour: %d outside 0..23", sp, s.EndHour))
			}
		}

		for j, w := range c.MaintenanceWindows {
			wp := fmt.Sprintf("%s.maintenanceWindows[%d]", prefix, j)
			start, startErr := parseInstant(w.StartDate)
			if startErr != nil {
				errs = append(errs, fmt.Errorf("%s.startDate: invalid instant %q", wp, w.StartDate))
			}
			end, endErr := parseInstant(w.EndDate)
			if endErr != nil {
				errs = append(errs, fmt.Errorf("%s.endDate: invalid instant %q", wp, w.EndDate))
			}
			if startErr == nil && endErr == nil && end.Before(start) {
				errs = append(errs, fmt.Errorf("%s: endDate %q before startDate %q", wp, w.EndDate, w.StartDate))
			}
		}
	}

	return errs
}

func validateWorkOrders(orders []WorkOrderPayload, numbers map[string]bool) []error {
	var errs []error

	for i, o := range orders {
		prefix := fmt.Sprintf("workOrder[%d]", i)

		if o.WorkOrderNumber == "" {
			errs = append(errs, fmt.Errorf("%s.workOrderNumber is required", prefix))
		} else if numbers[o.WorkOrderNumber] {
			errs = append(errs, fmt.Errorf("%s.workOrderNumber: duplicate order %q", prefix, o.WorkOrderNumber))
		} else {
			numbers[o.WorkOrderNumber] = true
		}

		if o.WorkCenterID == "" {
			errs = append(errs, fmt.Errorf("%s.workCenterId is required", prefix))
		}
		if o.DurationMinutes <= 0 {
			errs = append(errs, fmt.Errorf("%s.durationMinutes must be positive, got %d", prefix, o.DurationMinutes))
		}

		start, startErr := parseInstant(o.StartDate)
		if o.StartDate == "" || startErr != nil {
			errs = append(errs, fmt.Errorf("%s.startDate: invalid instant %q", prefix, o.StartDate))
		}
		end, endErr := parseInstant(o.EndDate)
		if o.EndDate == "" || endErr != nil {
			errs = append(errs, fmt.Errorf("%s.endDate: invalid instant %q", prefix, o.EndDate))
		}
		if startErr == nil && endErr == nil && end.Before(start) {
			errs = append(errs, fmt.Errorf("%s: endDate %q before startDate %q", prefix, o.EndDate, o.StartDate))
		}

		for j, dep := range o.DependsOnWorkOrderIDs {
			if dep == "" {
				errs = append(errs, fmt.Errorf("%s.dependsOnWorkOrderIds[%d] is empty", prefix, j))
			}
		}
	}

	return errs
}
