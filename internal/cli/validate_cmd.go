package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wbaizer/naologic-reflow/internal/cli/formatter"
	"github.com/wbaizer/naologic-reflow/internal/importer"
)

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input.jsonl>",
		Short: "Parse and validate an input stream without scheduling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadInput(args[0])
			if err != nil {
				return err
			}

			errs := importer.ValidateInput(schema)
			if len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "invalid input: %v\n", e)
				}
				return fmt.Errorf("input validation failed with %d problem(s)", len(errs))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d work center(s), %d work order(s), %d manufacturing order(s)\n",
				formatter.Bold("Valid:"),
				len(schema.WorkCenters), len(schema.WorkOrders), len(schema.ManufacturingOrders))
			return nil
		},
	}
}
