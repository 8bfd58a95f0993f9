package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wbaizer/naologic-reflow/internal/cli/formatter"
	"github.com/wbaizer/naologic-reflow/internal/domain"
	"github.com/wbaizer/naologic-reflow/internal/importer"
)

func newInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <input.jsonl>",
		Short: "Print the parsed entities without scheduling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadInput(args[0])
			if err != nil {
				return err
			}
			centers, orders, err := importer.Convert(schema)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			fmt.Fprintln(out, formatter.Header("Work Centers"))
			for _, c := range centers {
				fmt.Fprintf(out, "%s\n", formatter.Bold(c.Name))
				for _, s := range c.Shifts {
					fmt.Fprintf(out, "  shift  %s\n", describeShift(s))
				}
				for _, w := range c.Maintenance {
					label := w.Reason
					if label == "" {
						label = "maintenance"
					}
					fmt.Fprintf(out, "  block  %s → %s  %s\n",
						formatter.Instant(w.Start), formatter.Instant(w.End), formatter.Dim(label))
				}
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.Header("Work Orders"))
			headers := []string{"Order", "Center", "Start", "End", "Duration", "Depends on"}
			rows := make([][]string, 0, len(orders))
			for _, o := range orders {
				kind := ""
				if o.Maintenance {
					kind = " " + formatter.Dim("(maintenance)")
				}
				rows = append(rows, []string{
					o.Number + kind,
					o.WorkCenter,
					formatter.Instant(o.Start),
					formatter.Instant(o.End),
					fmt.Sprintf("%d min", o.DurationMin),
					strings.Join(o.DependsOn, ", "),
				})
			}
			fmt.Fprint(out, formatter.RenderTable(headers, rows))

			return nil
		},
	}
}

func describeShift(s domain.Shift) string {
	desc := fmt.Sprintf("%s %02d:00–%02d:00", s.Weekday, s.StartHour, s.EndHour)
	if s.SpansMidnight() {
		desc += " " + formatter.Dim("(spans midnight)")
	}
	return desc
}
