package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#78a9ff"))
	cellStyle   = lipgloss.NewStyle().Width(14).Align(lipgloss.Right)
	nameStyle   = lipgloss.NewStyle().Width(12)
)

func renderRow(name string, cells ...string) string {
	parts := []string{nameStyle.Render(name)}
	for _, c := range cells {
		parts = append(parts, cellStyle.Render(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderResults lays the results out as a table, one strategy per row,
// with each strategy's speedup relative to the first.
func renderResults(results []result) string {
	rows := []string{headerStyle.Render(renderRow("strategy", "nodes", "per op", "speedup"))}
	for _, r := range results {
		speedup := "-"
		if base := results[0].perOp(); r.perOp() > 0 {
			speedup = strconv.FormatFloat(float64(base)/float64(r.perOp()), 'f', 2, 64) + "x"
		}
		rows = append(rows, renderRow(r.name, strconv.Itoa(r.nodes), r.perOp().String(), speedup))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
