package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"fuji-trip/tripmap/internal/services"
)

var (
	exportRender    bool
	exportNoWeather bool
	exportOutput    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the itinerary as a markdown table",
	Long: `Prints one markdown row per event with its map link and the day's
weather. Use --render to format the table for the terminal.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportRender, "render", false, "render the markdown for the terminal")
	exportCmd.Flags().BoolVar(&exportNoWeather, "no-weather", false, "skip weather lookups")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write the markdown to a file")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	deps, cleanup, err := loadDependencies(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	exporter := deps.Services.Export
	if exportNoWeather {
		exporter = services.NewExportService(deps.Services.Itinerary, nil)
	}
	md := exporter.Markdown(ctx)

	if exportOutput != "" {
		if err := os.WriteFile(exportOutput, []byte(md), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOutput, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", exportOutput)
		return nil
	}

	if !exportRender {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(160),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
