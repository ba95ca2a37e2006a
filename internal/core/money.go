// Package core provides money rounding helpers.
//
// Amounts are kept as decimal.Decimal in memory and written to the REAL
// columns of the expenses table as float64.
package core

import "github.com/shopspring/decimal"

// RoundAmount rounds a float to two decimal places, half away from zero.
func RoundAmount(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

// Float converts a rounded amount to the float64 stored in the database.
func Float(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
