package sheets

import (
	"strings"
	"testing"

	"spesegen/internal/core"
)

func TestColumnLetter(t *testing.T) {
	tests := map[int]string{1: "A", 7: "G", 26: "Z", 27: "AA", 52: "AZ", 703: "AAA", 0: ""}
	for in, want := range tests {
		if got := ColumnLetter(in); got != want {
			t.Errorf("ColumnLetter(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestTabTitle(t *testing.T) {
	if got := TabTitle("Top 5 Highest Expenses"); got != "Top 5 Highest Expenses" {
		t.Errorf("unexpected title %q", got)
	}
	if got := TabTitle("a/b:c[d]"); got != "a_b_c_d_" {
		t.Errorf("unexpected sanitized title %q", got)
	}
	if got := TabTitle(strings.Repeat("x", 150)); len(got) != maxTitleLen {
		t.Errorf("title not truncated: %d", len(got))
	}
	if got := TabTitle("  "); got != "Report" {
		t.Errorf("empty title fallback = %q", got)
	}
}

func TestBlockRange(t *testing.T) {
	if got := BlockRange("Payment-mode distribution", 7, 2); got != "'Payment-mode distribution'!A1:B7" {
		t.Errorf("BlockRange = %q", got)
	}
	if got := BlockRange("O'Neil", 0, 0); got != "'O''Neil'!A1" {
		t.Errorf("BlockRange empty = %q", got)
	}
}

func TestValues(t *testing.T) {
	tbl := core.Table{
		Columns: []string{"Category", "Total_Spent"},
		Rows:    [][]any{{"Food", 150.0}, {nil, 2.5}},
	}
	got := Values(tbl)
	if len(got) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(got))
	}
	if got[0][0] != "Category" || got[1][1] != 150.0 || got[2][0] != "" {
		t.Errorf("unexpected values %v", got)
	}
}
