package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/wbaizer/naologic-reflow/internal/cli"
	"github.com/wbaizer/naologic-reflow/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Plain output when stdout is piped into another tool.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	app := &cli.App{
		Schedule: service.NewScheduleService(service.NewLogRunObserver(os.Stderr)),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
