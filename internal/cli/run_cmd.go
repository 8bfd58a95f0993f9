package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wbaizer/naologic-reflow/internal/cli/formatter"
	"github.com/wbaizer/naologic-reflow/internal/contract"
	"github.com/wbaizer/naologic-reflow/internal/importer"
)

func newRunCmd(app *App) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run <input.jsonl>",
		Short: "Recompute the schedule from a JSONL document stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadInput(args[0])
			if err != nil {
				return err
			}
			if errs := importer.ValidateInput(schema); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "invalid input: %v\n", e)
				}
				return fmt.Errorf("input validation failed with %d problem(s)", len(errs))
			}

			centers, orders, err := importer.Convert(schema)
			if err != nil {
				return err
			}

			resp, err := app.Schedule.Schedule(cmd.Context(), contract.NewScheduleRequest(centers, orders))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.RenderRunSummary(resp))

			moNames := importer.ManufacturingOrderNames(schema)
			for i := range resp.Centers {
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.RenderCenterResult(&resp.Centers[i], moNames, verbose))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show unchanged orders in center tables")

	return cmd
}
