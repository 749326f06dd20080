package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Show the forecast (or last year's weather) for each day",
	Args:  cobra.NoArgs,
	RunE:  runWeather,
}

var historicalStyle = lipgloss.NewStyle().Italic(true).Faint(true)

func runWeather(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	deps, cleanup, err := loadDependencies(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	for _, w := range deps.Services.Weather.Refresh(ctx) {
		line := fmt.Sprintf("Day %d  %-16s %-14s %-6s 富士山 %s", w.Day, w.Date, w.Temp, w.Desc, w.FujiVisibility)
		if w.IsHistorical {
			line = historicalStyle.Render(line + "  (去年同期)")
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
