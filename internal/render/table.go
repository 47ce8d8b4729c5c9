package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ledgertree/ledgertree/internal/budget"
	"github.com/ledgertree/ledgertree/internal/model"
)

// Output formats accepted by the commands.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// CheckFormat rejects unknown output formats.
func CheckFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON:
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be one of %s, %s)", format, FormatTable, FormatJSON)
}

func newTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}

// TreeTable lays the rows out as ACCOUNT / BALANCES / TOTAL.
func TreeTable(rows []Row) *table.Table {
	t := newTable("ACCOUNT", "BALANCES", "TOTAL", "STATUS")
	for _, r := range rows {
		detail := FormatDetail(r.Amount.Detail)
		if detail == "" {
			detail = "-"
		}
		status := ""
		if r.Closed {
			status = string(model.AccountStatusClose)
		}
		t.Row(r.Name, detail, FormatSummary(r.Amount), status)
	}
	return t
}

// BudgetTable lists each category followed by one total row per
// commodity. Every amount is shown in its own commodity.
func BudgetTable(summaries []budget.CategorySummary) *table.Table {
	t := newTable("CATEGORY", "ASSIGNED", "ACTIVITY", "AVAILABLE", "USED")
	row := func(name string, s budget.CategorySummary) {
		t.Row(name,
			FormatAmount(s.Assigned, s.Commodity),
			FormatAmount(s.Activity, s.Commodity),
			FormatAmount(s.Available, s.Commodity),
			s.Percentage.StringFixed(1)+"%")
	}
	for _, s := range summaries {
		row(s.Category, s)
	}
	for _, total := range budget.Totals(summaries) {
		row("Total", total)
	}
	return t
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}
