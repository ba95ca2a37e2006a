// Package presentation decides which chart, if any, accompanies a report.
//
// The mapping is a static function of the report name. Result shapes are
// never inspected to pick a chart.
package presentation

import (
	"spesegen/internal/core"
	"spesegen/internal/reports"
)

// ChartKind names a chart type.
type ChartKind string

const (
	Bar  ChartKind = "bar"
	Line ChartKind = "line"
	Pie  ChartKind = "pie"
)

// Visualization describes a chart over a report table: Index is the label
// column, Values the numeric columns. Empty Values means every column
// other than Index.
type Visualization struct {
	Kind   ChartKind `json:"kind"`
	Index  string    `json:"index"`
	Values []string  `json:"values,omitempty"`
}

var byReport = map[string]Visualization{
	reports.SpendingTrend:           {Kind: Line, Index: "Date"},
	reports.TotalPerCategory:        {Kind: Bar, Index: keyColumn(reports.TotalPerCategory)},
	reports.PaymentModeDistribution: {Kind: Bar, Index: keyColumn(reports.PaymentModeDistribution)},
}

func keyColumn(name string) string {
	r, _ := reports.Lookup(name)
	return r.KeyColumn
}

// ChooseVisualization returns the chart for a catalog report. The second
// result is false when the report is shown as a table only, including for
// names outside the catalog. The result only fills in the value columns:
// every column other than the index.
func ChooseVisualization(reportName string, result core.Table) (Visualization, bool) {
	v, ok := byReport[reportName]
	if !ok {
		return Visualization{}, false
	}
	for _, c := range result.Columns {
		if c != v.Index {
			v.Values = append(v.Values, c)
		}
	}
	return v, true
}

// CategoryTotals returns the charts of the category insights view: a bar
// chart and a pie chart of total spent per category.
func CategoryTotals() []Visualization {
	return []Visualization{
		{Kind: Bar, Index: "Category", Values: []string{"Total_Spent"}},
		{Kind: Pie, Index: "Category", Values: []string{"Total_Spent"}},
	}
}
