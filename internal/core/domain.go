package core

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is how dates are written to the expenses table.
const DateLayout = "2006-01-02"

type (
	// Date is a calendar date without a time component.
	Date struct {
		time.Time
	}

	// Expense is one transaction row of the expenses table.
	Expense struct {
		Date        Date
		Category    string
		PaymentMode string
		Description string
		AmountPaid  decimal.Decimal
		Cashback    decimal.Decimal
		// Month is a free-text label supplied by the caller. It is not
		// derived from Date and may disagree with it.
		Month string
	}
)

// Categories is the closed set of labels used for synthetic records.
var Categories = []string{
	"Food", "Transportation", "Bills", "Groceries", "Entertainment",
	"Healthcare", "Shopping", "Travel", "Dining", "Subscriptions",
}

// PaymentModes is the closed set of payment modes used for synthetic records.
var PaymentModes = []string{
	"Cash", "Wallet", "Credit Card", "Debit Card", "UPI", "Netbanking",
}

var (
	ErrInvalidDate     = errors.New("date cannot be zero")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCashback = errors.New("invalid cashback")
)

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// String formats the date as stored in the database.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Validate checks that a record has a date and valid amounts. Categories and payment
// modes are free text here: only synthetic records are bound to the closed sets.
func (e Expense) Validate() error {
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	if !e.AmountPaid.IsPositive() {
		return ErrInvalidAmount
	}
	if e.Cashback.IsNegative() {
		return ErrInvalidCashback
	}
	return nil
}

// Contains reports whether v is one of set.
func Contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
