// Package reports holds the fixed catalog of named, parameterless
// aggregation queries over the expenses table.
package reports

import (
	"context"
	"fmt"
	"strconv"

	"spesegen/internal/core"
)

// HighValueThreshold is the amount above which a transaction is listed by
// the "Transactions above 500" report.
const HighValueThreshold = 500

// Report names, in catalog order.
const (
	TotalPerCategory           = "Total spent per category"
	MonthlyBreakdown           = "Monthly spending breakdown"
	TopExpenses                = "Top 5 Highest Expenses"
	CashbackPerPaymentMode     = "Cashback summary per payment mode"
	PaymentModeDistribution    = "Payment-mode distribution"
	SpendingTrend              = "Spending trend over time"
	CategoryPerPaymentMode     = "Category spending per payment mode"
	AveragePerPaymentMode      = "Average expense per payment mode"
	TopCategoriesByCashback    = "Top 5 categories by cashback"
	TransactionsAboveThreshold = "Transactions above 500"
)

// Report is one catalog entry.
type Report struct {
	Name string
	SQL  string
	// KeyColumn is the first output column, used as the chart index.
	KeyColumn string
}

var catalog = []Report{
	{
		Name:      TotalPerCategory,
		SQL:       "SELECT Category, SUM(Amount_Paid) AS Total_Spent FROM expenses GROUP BY Category",
		KeyColumn: "Category",
	},
	{
		Name:      MonthlyBreakdown,
		SQL:       "SELECT Month, SUM(Amount_Paid) AS Total_Spent FROM expenses GROUP BY Month",
		KeyColumn: "Month",
	},
	{
		Name:      TopExpenses,
		SQL:       "SELECT * FROM expenses ORDER BY Amount_Paid DESC LIMIT 5",
		KeyColumn: "Date",
	},
	{
		Name:      CashbackPerPaymentMode,
		SQL:       "SELECT Payment_Mode, SUM(Cashback) AS Total_Cashback FROM expenses GROUP BY Payment_Mode",
		KeyColumn: "Payment_Mode",
	},
	{
		Name:      PaymentModeDistribution,
		SQL:       "SELECT Payment_Mode, COUNT(*) AS Transaction_Count, SUM(Amount_Paid) AS Total_Spent FROM expenses GROUP BY Payment_Mode",
		KeyColumn: "Payment_Mode",
	},
	{
		Name:      SpendingTrend,
		SQL:       "SELECT Date, SUM(Amount_Paid) AS Daily_Spent FROM expenses GROUP BY Date ORDER BY Date",
		KeyColumn: "Date",
	},
	{
		Name:      CategoryPerPaymentMode,
		SQL:       "SELECT Category, Payment_Mode, SUM(Amount_Paid) AS Total_Spent FROM expenses GROUP BY Category, Payment_Mode",
		KeyColumn: "Category",
	},
	{
		Name:      AveragePerPaymentMode,
		SQL:       "SELECT Payment_Mode, AVG(Amount_Paid) AS Avg_Spending FROM expenses GROUP BY Payment_Mode",
		KeyColumn: "Payment_Mode",
	},
	{
		Name:      TopCategoriesByCashback,
		SQL:       "SELECT Category, SUM(Cashback) AS Total_Cashback FROM expenses GROUP BY Category ORDER BY Total_Cashback DESC LIMIT 5",
		KeyColumn: "Category",
	},
	{
		Name:      TransactionsAboveThreshold,
		SQL:       "SELECT * FROM expenses WHERE Amount_Paid > " + strconv.Itoa(HighValueThreshold) + " ORDER BY Amount_Paid DESC",
		KeyColumn: "Date",
	},
}

// Querier runs trusted SQL. The catalog never forwards user text to it.
type Querier interface {
	QueryTrusted(ctx context.Context, sqlText string) (core.Table, error)
}

// Catalog runs named reports against a store.
type Catalog struct {
	q Querier
}

func NewCatalog(q Querier) *Catalog {
	return &Catalog{q: q}
}

// Names lists the report names in catalog order.
func Names() []string {
	out := make([]string, len(catalog))
	for i, r := range catalog {
		out[i] = r.Name
	}
	return out
}

// Lookup returns the report registered under name.
func Lookup(name string) (Report, bool) {
	for _, r := range catalog {
		if r.Name == name {
			return r, true
		}
	}
	return Report{}, false
}

// Run executes the named report.
func (c *Catalog) Run(ctx context.Context, name string) (core.Table, error) {
	r, ok := Lookup(name)
	if !ok {
		return core.Table{}, fmt.Errorf("%w: %q", core.ErrUnknownQuery, name)
	}

	t, err := c.q.QueryTrusted(ctx, r.SQL)
	if err != nil {
		return core.Table{}, fmt.Errorf("run report %q: %w", name, err)
	}
	return t, nil
}
