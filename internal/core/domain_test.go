package core

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDateString(t *testing.T) {
	if got := NewDate(2025, 3, 9).String(); got != "2025-03-09" {
		t.Fatalf("got %q", got)
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		Date:        NewDate(2025, 1, 1),
		Category:    "Food",
		PaymentMode: "Cash",
		Description: "ok",
		AmountPaid:  decimal.RequireFromString("10.50"),
		Cashback:    decimal.Zero,
		Month:       "January",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	zeroAmount := good
	zeroAmount.AmountPaid = decimal.Zero
	if err := zeroAmount.Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	negativeCashback := good
	negativeCashback.Cashback = decimal.RequireFromString("-0.01")
	if err := negativeCashback.Validate(); !errors.Is(err, ErrInvalidCashback) {
		t.Fatalf("expected ErrInvalidCashback, got %v", err)
	}

	noDate := good
	noDate.Date = Date{}
	if err := noDate.Validate(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestQueryErrorKinds(t *testing.T) {
	err := error(NewQueryError("DROP TABLE expenses", ErrReadOnly))
	if !errors.Is(err, ErrQuery) {
		t.Fatalf("QueryError should match ErrQuery")
	}
	if !errors.Is(err, ErrReadOnly) {
		t.Fatalf("QueryError should unwrap to its cause")
	}
	var qe *QueryError
	if !errors.As(err, &qe) || qe.SQL != "DROP TABLE expenses" {
		t.Fatalf("unexpected QueryError: %#v", qe)
	}
	if errors.Is(err, ErrUnknownQuery) {
		t.Fatalf("QueryError must not match ErrUnknownQuery")
	}
}

func TestTableHelpers(t *testing.T) {
	tbl := Table{
		Columns: []string{"Category", "Total_Spent"},
		Rows:    [][]any{{"Food", 150.0}, {"Bills", 20.0}},
	}
	if tbl.ColumnIndex("Total_Spent") != 1 || tbl.ColumnIndex("nope") != -1 {
		t.Fatalf("unexpected column index")
	}
	col, ok := tbl.Column("Category")
	if !ok || col[0] != "Food" || col[1] != "Bills" {
		t.Fatalf("unexpected column: %v", col)
	}
	if tbl.Head(1).Len() != 1 || tbl.Head(10).Len() != 2 {
		t.Fatalf("unexpected head length")
	}
}
