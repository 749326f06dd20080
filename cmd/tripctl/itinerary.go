package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"fuji-trip/tripmap/internal/models/dtos"
)

var itineraryDay int

var itineraryCmd = &cobra.Command{
	Use:   "itinerary",
	Short: "List the schedule day by day",
	Args:  cobra.NoArgs,
	RunE:  runItinerary,
}

func init() {
	itineraryCmd.Flags().IntVar(&itineraryDay, "day", 0, "show a single day")
}

var (
	timeStyle  = lipgloss.NewStyle().Bold(true).Width(6)
	noteStyle  = lipgloss.NewStyle().Faint(true)
	alertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
)

func runItinerary(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	deps, cleanup, err := loadDependencies(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	var days []dtos.DayView
	if itineraryDay != 0 {
		day, err := deps.Services.Itinerary.Day(ctx, itineraryDay)
		if err != nil {
			return err
		}
		days = []dtos.DayView{day}
	} else {
		days = deps.Services.Itinerary.Itinerary(ctx)
	}

	out := cmd.OutOrStdout()
	for _, d := range days {
		printDay(out, d)
	}
	return nil
}

func printDay(out io.Writer, d dtos.DayView) {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(d.Color)).
		Padding(0, 1)

	fmt.Fprintln(out, header.Render(fmt.Sprintf("Day %d  %s  %s", d.Day, d.Date, d.Title)))

	for _, e := range d.Events {
		line := timeStyle.Render(e.Time) + e.Location + " · " + e.Activity
		if e.LegDistanceKm != nil {
			line += noteStyle.Render(fmt.Sprintf("  (+%.1f km)", *e.LegDistanceKm))
		}
		fmt.Fprintln(out, line)

		if details := strings.TrimSpace(e.EffectiveDetails); details != "" {
			fmt.Fprintln(out, "      "+noteStyle.Render(details))
		}
		if e.ImportantNotes != "" {
			fmt.Fprintln(out, "      "+alertStyle.Render("! "+e.ImportantNotes))
		}
	}
	fmt.Fprintln(out, noteStyle.Render(fmt.Sprintf("      total %.1f km", d.TotalDistanceKm)))
	fmt.Fprintln(out)
}
