package sheets

import (
	"strconv"
	"strings"

	"spesegen/internal/core"
)

// maxTitleLen is the longest tab title the Sheets API accepts.
const maxTitleLen = 100

// TabTitle turns a report name into a valid sheet tab title.
func TabTitle(name string) string {
	title := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', '*', '?', '/', '\\', ':':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if r := []rune(title); len(r) > maxTitleLen {
		title = string(r[:maxTitleLen])
	}
	if title == "" {
		title = "Report"
	}
	return title
}

// QuoteTab quotes a tab title for use in A1 notation.
func QuoteTab(tab string) string {
	return "'" + strings.ReplaceAll(tab, "'", "''") + "'"
}

// ColumnLetter returns the A1 column name for a 1-based column index.
func ColumnLetter(n int) string {
	if n < 1 {
		return ""
	}
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

// BlockRange is the A1 range covered by a block of rows×cols anchored at A1.
func BlockRange(tab string, rows, cols int) string {
	if rows < 1 || cols < 1 {
		return QuoteTab(tab) + "!A1"
	}
	return QuoteTab(tab) + "!A1:" + ColumnLetter(cols) + strconv.Itoa(rows)
}

// Values renders a table as a header row followed by the data rows, with
// NULLs as empty cells.
func Values(t core.Table) [][]any {
	out := make([][]any, 0, len(t.Rows)+1)
	header := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	out = append(out, header)
	for _, row := range t.Rows {
		r := make([]any, len(row))
		for i, v := range row {
			if v == nil {
				r[i] = ""
				continue
			}
			r[i] = v
		}
		out = append(out, r)
	}
	return out
}
