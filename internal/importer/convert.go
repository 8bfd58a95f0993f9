package importer

import (
	"fmt"
	"time"

	"github.com/wbaizer/naologic-reflow/internal/domain"
)

// Convert transforms a validated InputSchema into domain entities. Call
// ValidateInput first; Convert assumes the schema is valid.
func Convert(schema *InputSchema) ([]domain.WorkCenter, []domain.WorkOrder, error) {
	centers := make([]domain.WorkCenter, 0, len(schema.WorkCenters))
	for _, c := range schema.WorkCenters {
		center := domain.WorkCenter{Name: c.Name}

		for _, s := range c.Shifts {
			center.Shifts = append(center.Shifts, domain.Shift{
				Weekday:   time.Weekday(s.DayOfWeek),
				StartHour: s.StartHour,
				EndHour:   s.EndHour,
			})
		}

		for _, w := range c.MaintenanceWindows {
			start, err := parseInstant(w.StartDate)
			if err != nil {
				return nil, nil, fmt.Errorf("work center %q: parsing maintenance startDate: %w", c.Name, err)
			}
			end, err := parseInstant(w.EndDate)
			if err != nil {
				return nil, nil, fmt.Errorf("work center %q: parsing maintenance endDate: %w", c.Name, err)
			}
			center.Maintenance = append(center.Maintenance, domain.MaintenanceWindow{
				Start:  start,
				End:    end,
				Reason: w.Reason,
			})
		}

		centers = append(centers, center)
	}

	orders := make([]domain.WorkOrder, 0, len(schema.WorkOrders))
	for _, o := range schema.WorkOrders {
		start, err := parseInstant(o.StartDate)
		if err != nil {
			return nil, nil, fmt.Errorf("work order %q: parsing startDate: %w", o.WorkOrderNumber, err)
		}
		end, err := parseInstant(o.EndDate)
		if err != nil {
			return nil, nil, fmt.Errorf("work order %q: parsing endDate: %w", o.WorkOrderNumber, err)
		}

		orders = append(orders, domain.WorkOrder{
			Number:               o.WorkOrderNumber,
			ManufacturingOrderID: o.ManufacturingOrderID,
			WorkCenter:           o.WorkCenterID,
			Start:                start,
			End:                  end,
			DurationMin:          o.DurationMinutes,
			Maintenance:          o.IsMaintenance,
			DependsOn:            append([]string(nil), o.DependsOnWorkOrderIDs...),
		})
	}

	return centers, orders, nil
}

// ManufacturingOrderNames indexes manufacturing order display names by ID
// for report annotation.
func ManufacturingOrderNames(schema *InputSchema) map[string]string {
	names := make(map[string]string, len(schema.ManufacturingOrders))
	for _, m := range schema.ManufacturingOrders {
		if m.ID == "" {
			continue
		}
		names[m.ID] = m.Name
	}
	return names
}
