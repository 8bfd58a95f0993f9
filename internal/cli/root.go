package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/wbaizer/naologic-reflow/internal/service"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Schedule service.ScheduleService
}

// NewRootCmd creates the top-level "reflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:   "reflow",
		Short: "Recompute feasible production schedules after a disruption",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
		},
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors in output")

	root.AddCommand(
		newRunCmd(app),
		newValidateCmd(app),
		newInspectCmd(app),
	)

	return root
}
