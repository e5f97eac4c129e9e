package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/gogpu/rose"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#667eea"))
	peakStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196f3"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)
}

// formatReport renders the report as a sequence of terminal tables.
func formatReport(r rose.Report) string {
	var b strings.Builder
	section := func(title string, t *table.Table) {
		b.WriteString(headingStyle.Render(title))
		b.WriteString("\n")
		b.WriteString(t.String())
		b.WriteString("\n")
	}

	desc := newTable("Statistic", "Value", "Description")
	for _, row := range r.Descriptive {
		desc.Row(row.Name, row.Value, row.Description)
	}
	section("Descriptive statistics", desc)

	if len(r.Uniformity) > 0 {
		uni := newTable("Test", "Statistic", "p-value", "Interpretation")
		for _, row := range r.Uniformity {
			uni.Row(row.Test, row.Statistic, row.PValue, row.Verdict)
		}
		section("Uniformity tests", uni)
	}

	sym := newTable("Ratio", "Interpretation", "Before mean", "After mean", "Direction")
	sym.Row(r.Symmetry.Ratio, r.Symmetry.Verdict, r.Symmetry.Before, r.Symmetry.After, r.Symmetry.Direction)
	section("Symmetry", sym)

	peaks := newTable("Rank", "Time slot", "Count", "Share")
	for i, p := range r.Peaks {
		peaks.Row(strconv.Itoa(i+1), p.Label, strconv.FormatUint(uint64(p.Count), 10), p.Share)
	}
	section("Peak hours", peaks)

	blocks := newTable("Block", "Count", "Percentage")
	for _, bl := range r.Blocks {
		label := bl.Label
		if bl.Peak {
			label = peakStyle.Render(label + " *")
		}
		blocks.Row(label, strconv.FormatUint(uint64(bl.Count), 10), bl.Percentage)
	}
	section("Time blocks", blocks)

	b.WriteString(headingStyle.Render("Findings"))
	b.WriteString("\n")
	for _, f := range r.Findings {
		b.WriteString("  - " + f + "\n")
	}
	return b.String()
}
