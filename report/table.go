package report

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/massalabs/attest/framework"
)

// TableSummary renders the results as a table with one row per executed test
// and the summary in the footer.
func TableSummary(title string, results framework.Results) string {
	t := table.NewWriter()
	if title != "" {
		t.SetTitle(title)
	}
	t.AppendHeader(table.Row{"#", "Test", "Result", "Kind", "Duration", "Message"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Test", WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Duration", Align: text.AlignRight},
		{Name: "Message", WidthMax: 80, WidthMaxEnforcer: text.WrapSoft},
	})

	for i, r := range results.Tests {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		t.AppendRow(table.Row{i + 1, r.Name, status, string(r.Kind), r.Duration.String(), r.Message})
	}

	t.AppendFooter(table.Row{"", "TOTAL", results.Summary(), "", "", ""})
	t.SetStyle(table.StyleLight)
	return t.Render()
}
