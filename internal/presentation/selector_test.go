package presentation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spesegen/internal/core"
	"spesegen/internal/presentation"
	"spesegen/internal/reports"
)

func TestChooseVisualization(t *testing.T) {
	trend := core.Table{Columns: []string{"Date", "Daily_Spent"}}
	perCategory := core.Table{Columns: []string{"Category", "Total_Spent"}}
	distribution := core.Table{Columns: []string{"Payment_Mode", "Transaction_Count", "Total_Spent"}}

	tests := []struct {
		name   string
		report string
		result core.Table
		want   presentation.Visualization
		ok     bool
	}{
		{
			name:   "trend is a line keyed by date",
			report: reports.SpendingTrend,
			result: trend,
			want:   presentation.Visualization{Kind: presentation.Line, Index: "Date", Values: []string{"Daily_Spent"}},
			ok:     true,
		},
		{
			name:   "category totals are bars keyed by first column",
			report: reports.TotalPerCategory,
			result: perCategory,
			want:   presentation.Visualization{Kind: presentation.Bar, Index: "Category", Values: []string{"Total_Spent"}},
			ok:     true,
		},
		{
			name:   "payment mode distribution is bars keyed by first column",
			report: reports.PaymentModeDistribution,
			result: distribution,
			want: presentation.Visualization{
				Kind:   presentation.Bar,
				Index:  "Payment_Mode",
				Values: []string{"Transaction_Count", "Total_Spent"},
			},
			ok: true,
		},
		{name: "top expenses has no chart", report: reports.TopExpenses, result: core.Table{Columns: []string{"Date"}}},
		{name: "monthly breakdown has no chart", report: reports.MonthlyBreakdown, result: perCategory},
		{name: "unknown report degrades to table", report: "Nonexistent Report", result: perCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := presentation.ChooseVisualization(tt.report, tt.result)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChooseVisualization_TrendIgnoresResultShape(t *testing.T) {
	// an empty result still yields the line chart keyed by Date
	got, ok := presentation.ChooseVisualization(reports.SpendingTrend, core.Table{})
	require.True(t, ok)
	assert.Equal(t, presentation.Line, got.Kind)
	assert.Equal(t, "Date", got.Index)
}

func TestChooseVisualization_EveryCatalogName(t *testing.T) {
	charted := map[string]bool{
		reports.SpendingTrend:           true,
		reports.TotalPerCategory:        true,
		reports.PaymentModeDistribution: true,
	}
	for _, name := range reports.Names() {
		_, ok := presentation.ChooseVisualization(name, core.Table{})
		assert.Equal(t, charted[name], ok, name)
	}
}

func TestCategoryTotals(t *testing.T) {
	charts := presentation.CategoryTotals()
	require.Len(t, charts, 2)
	assert.Equal(t, presentation.Bar, charts[0].Kind)
	assert.Equal(t, presentation.Pie, charts[1].Kind)
	for _, c := range charts {
		assert.Equal(t, "Category", c.Index)
		assert.Equal(t, []string{"Total_Spent"}, c.Values)
	}
}

func TestProject(t *testing.T) {
	tbl := core.Table{
		Columns: []string{"Payment_Mode", "Transaction_Count", "Total_Spent"},
		Rows: [][]any{
			{"Cash", int64(2), 150.5},
			{"UPI", int64(1), nil},
		},
	}
	vis, ok := presentation.ChooseVisualization(reports.PaymentModeDistribution, tbl)
	require.True(t, ok)

	series, err := presentation.Project(vis, tbl)
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.Equal(t, "Transaction_Count", series[0].Name)
	assert.Equal(t, []string{"Cash", "UPI"}, series[0].Labels)
	assert.Equal(t, []float64{2, 1}, series[0].Values)
	assert.Equal(t, []float64{150.5, 0}, series[1].Values)

	_, err = presentation.Project(presentation.Visualization{Kind: presentation.Bar, Index: "Nope"}, tbl)
	assert.Error(t, err)
}
