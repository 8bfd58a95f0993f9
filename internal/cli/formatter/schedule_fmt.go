package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/wbaizer/naologic-reflow/internal/app"
)

const instantLayout = "Mon 2006-01-02 15:04"

// Instant renders a wall-clock instant compactly for report tables.
func Instant(t time.Time) string {
	return t.Format(instantLayout)
}

// Displacement renders a signed minute count: "+90 min", dimmed "0 min".
func Displacement(min int) string {
	switch {
	case min > 0:
		return StyleYellow.Render(fmt.Sprintf("+%d min", min))
	case min < 0:
		return StyleRed.Render(fmt.Sprintf("%d min", min))
	default:
		return Dim("0 min")
	}
}

// RenderRunSummary renders the top-level outcome block of a schedule run.
func RenderRunSummary(resp *app.ScheduleResponse) string {
	var b strings.Builder

	b.WriteString(Header("Reschedule Results"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Run:        %s\n", Dim(resp.RunID))
	fmt.Fprintf(&b, "  Generated:  %s\n", Instant(resp.GeneratedAt))
	fmt.Fprintf(&b, "  Centers:    %d\n", len(resp.Centers))
	fmt.Fprintf(&b, "  Orders:     %d moved, %d unchanged, %d fixed\n",
		resp.Summary.Changed, resp.Summary.Unchanged, resp.Summary.Fixed)
	fmt.Fprintf(&b, "  Displaced:  %s\n", Displacement(resp.Summary.TotalDisplacedMin))

	return b.String()
}

// RenderCenterResult renders one work center's schedule table. With
// verbose set, every order appears; otherwise only displaced orders do.
// moNames maps manufacturing order IDs to display names for annotation.
func RenderCenterResult(result *app.CenterResult, moNames map[string]string, verbose bool) string {
	var b strings.Builder

	b.WriteString(Bold(result.Center))
	fmt.Fprintf(&b, "  %s\n", Dim(fmt.Sprintf("%d moved · %d unchanged · %d fixed · +%d min total",
		result.Summary.Changed, result.Summary.Unchanged, result.Summary.Fixed,
		result.Summary.TotalDisplacedMin)))

	headers := []string{"Order", "Reason", "Scheduled", "Ends", "Shift", "Detail"}
	var rows [][]string
	for i, change := range result.Changes {
		if !verbose && change.Reason == app.ReasonNoChange {
			continue
		}
		detail := changeDetail(change)
		if name, ok := moNames[result.Orders[i].ManufacturingOrderID]; ok && name != "" {
			detail = name + " — " + detail
		}
		rows = append(rows, []string{
			change.OrderNumber,
			ReasonIndicator(change.Reason),
			Instant(change.NewStart),
			Instant(change.NewEnd),
			Displacement(change.DisplacementMin),
			detail,
		})
	}

	if len(rows) == 0 {
		b.WriteString(Dim("  Nothing displaced.\n"))
		return b.String()
	}

	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

func changeDetail(change app.ChangeRecord) string {
	switch change.Reason {
	case app.ReasonPredecessor:
		return "after " + change.BlockedBy
	case app.ReasonCenterBusy:
		return "behind " + change.BlockedBy
	case app.ReasonMaintenanceWindow:
		if change.Window == nil {
			return ""
		}
		label := "maintenance"
		if change.Window.Reason != "" {
			label = change.Window.Reason
		}
		return fmt.Sprintf("%s until %s", label, Instant(change.Window.End))
	case app.ReasonFixedMaintenance:
		return "held in place"
	default:
		return ""
	}
}
