package core

// Table is a tabular query result: column names plus rows of cells. Cells are
// nil, int64, float64 or string.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns all cells of the named column.
func (t Table) Column(name string) ([]any, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	out := make([]any, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			out[i] = row[idx]
		}
	}
	return out, true
}

// Head returns a copy of the table limited to the first n rows.
func (t Table) Head(n int) Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return Table{Columns: t.Columns, Rows: t.Rows[:n]}
}

// ExpensesTable renders records with the column names of the expenses table.
func ExpensesTable(records []Expense) Table {
	t := Table{
		Columns: []string{"Date", "Category", "Payment_Mode", "Description", "Amount_Paid", "Cashback", "Month"},
		Rows:    make([][]any, 0, len(records)),
	}
	for _, e := range records {
		t.Rows = append(t.Rows, []any{
			e.Date.String(), e.Category, e.PaymentMode, e.Description,
			Float(e.AmountPaid), Float(e.Cashback), e.Month,
		})
	}
	return t
}
