package reports_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spesegen/internal/core"
	"spesegen/internal/generator"
	"spesegen/internal/reports"
	"spesegen/internal/storage"
)

func newStore(t *testing.T) *storage.Store {
	t.Helper()

	s, err := storage.NewStore(filepath.Join(t.TempDir(), "expenses.db"))
	require.NoError(t, err)
	require.NoError(t, s.EnsureSchema(context.Background()))

	return s
}

func expense(category string, amount string) core.Expense {
	return core.Expense{
		Date:        core.NewDate(2025, 1, 10),
		Category:    category,
		PaymentMode: "Cash",
		Description: "test.",
		AmountPaid:  decimal.RequireFromString(amount),
		Cashback:    decimal.RequireFromString("1.00"),
		Month:       "January",
	}
}

func TestNames_CatalogOrder(t *testing.T) {
	names := reports.Names()
	require.Len(t, names, 10)
	assert.Equal(t, reports.TotalPerCategory, names[0])
	assert.Equal(t, reports.TransactionsAboveThreshold, names[9])

	for _, n := range names {
		r, ok := reports.Lookup(n)
		require.True(t, ok, n)
		assert.NotEmpty(t, r.SQL)
		assert.NotEmpty(t, r.KeyColumn)
	}
}

func TestRun_EveryReportSucceeds(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	g, err := generator.New(generator.Config{
		Categories:   core.Categories,
		PaymentModes: core.PaymentModes,
		Seed:         5,
	})
	require.NoError(t, err)
	records, err := g.Generate("January", 60)
	require.NoError(t, err)
	require.NoError(t, s.Append(ctx, records))

	c := reports.NewCatalog(s)
	for _, name := range reports.Names() {
		t.Run(name, func(t *testing.T) {
			tbl, err := c.Run(ctx, name)
			require.NoError(t, err)
			assert.NotEmpty(t, tbl.Columns)
			assert.NotZero(t, tbl.Len())

			r, _ := reports.Lookup(name)
			assert.Equal(t, r.KeyColumn, tbl.Columns[0])
		})
	}
}

func TestRun_EmptyTable(t *testing.T) {
	c := reports.NewCatalog(newStore(t))

	tbl, err := c.Run(context.Background(), reports.TotalPerCategory)
	require.NoError(t, err)
	assert.Zero(t, tbl.Len())
}

func TestRun_MissingTable(t *testing.T) {
	s, err := storage.NewStore(filepath.Join(t.TempDir(), "none.db"))
	require.NoError(t, err)

	_, err = reports.NewCatalog(s).Run(context.Background(), reports.SpendingTrend)
	require.ErrorIs(t, err, core.ErrQuery)
}

func TestRun_UnknownQuery(t *testing.T) {
	c := reports.NewCatalog(newStore(t))

	_, err := c.Run(context.Background(), "Nonexistent Report")
	require.ErrorIs(t, err, core.ErrUnknownQuery)
}

func TestRun_TotalPerCategory(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Append(ctx, []core.Expense{
		expense("Food", "100.00"),
		expense("Food", "50.00"),
	}))

	tbl, err := reports.NewCatalog(s).Run(ctx, reports.TotalPerCategory)
	require.NoError(t, err)

	assert.Equal(t, []string{"Category", "Total_Spent"}, tbl.Columns)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "Food", tbl.Rows[0][0])
	assert.InDelta(t, 150.00, tbl.Rows[0][1], 1e-9)
}

func TestRun_TransactionsAboveThreshold(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Append(ctx, []core.Expense{
		expense("Bills", "400"),
		expense("Bills", "500"),
		expense("Travel", "600"),
	}))

	tbl, err := reports.NewCatalog(s).Run(ctx, reports.TransactionsAboveThreshold)
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 1)
	amount := tbl.ColumnIndex("Amount_Paid")
	require.GreaterOrEqual(t, amount, 0)
	assert.InDelta(t, 600.0, tbl.Rows[0][amount], 1e-9)
	assert.Equal(t, "Travel", tbl.Rows[0][tbl.ColumnIndex("Category")])
}

func TestRun_SpendingTrendOrderedByDate(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	late := expense("Food", "10")
	late.Date = core.NewDate(2025, 12, 1)
	early := expense("Food", "20")
	early.Date = core.NewDate(2025, 2, 1)
	sameDay := expense("Dining", "5")
	sameDay.Date = core.NewDate(2025, 2, 1)
	require.NoError(t, s.Append(ctx, []core.Expense{late, early, sameDay}))

	tbl, err := reports.NewCatalog(s).Run(ctx, reports.SpendingTrend)
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "2025-02-01", tbl.Rows[0][0])
	assert.InDelta(t, 25.0, tbl.Rows[0][1], 1e-9)
	assert.Equal(t, "2025-12-01", tbl.Rows[1][0])
}
