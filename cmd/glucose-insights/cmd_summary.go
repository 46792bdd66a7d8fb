package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/uyouii/glucose-insights/config"
	"github.com/uyouii/glucose-insights/kde"
	"github.com/uyouii/glucose-insights/render"
	"github.com/uyouii/glucose-insights/server"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ds, loadErr := loadDataset(cmd.Context(), cfg)
	if loadErr != nil {
		fmt.Fprintln(out, errorStyle.Render("Error loading data: "+loadErr.Error()))
	}

	controls := render.Controls{StartDate: startDate, EndDate: endDate}
	if cmd.Flags().Changed("min") {
		controls.ValueMin = &valueMin
	}
	if cmd.Flags().Changed("max") {
		controls.ValueMax = &valueMax
	}
	state := render.RenderControls(ds, controls)

	fmt.Fprintln(out, titleStyle.Render(server.AppTitle))
	printLines(out, state.Lines)

	if !distribution {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("Time in Range"))
	printLines(out, []string{
		fmt.Sprintf("Below 70 mg/dL: %.1f%%", state.Ranges.BelowRange*100),
		fmt.Sprintf("70-180 mg/dL: %.1f%%", state.Ranges.InRange*100),
		fmt.Sprintf("Above 180 mg/dL: %.1f%%", state.Ranges.AboveRange*100),
	})

	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("Distribution"))
	dist := state.Distribution(cmd.Context())
	if dist == nil {
		fmt.Fprintln(out, mutedStyle.Render("not enough readings"))
		return nil
	}
	for _, p := range kde.AllCalculateQuantiles {
		if q, ok := dist.GetQuantileValue(p); ok {
			fmt.Fprintf(out, "%.0fth percentile: %.1f mg/dL\n", p*100, q.Value)
		}
	}
	return nil
}

func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
