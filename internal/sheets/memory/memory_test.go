package memory

import (
	"context"
	"errors"
	"testing"

	"spesegen/internal/core"
)

func TestExporterExportAndRead(t *testing.T) {
	e := New()
	tbl := core.Table{
		Columns: []string{"Category", "Total_Spent"},
		Rows:    [][]any{{"Food", 150.0}, {"Travel", 80.25}},
	}

	ref, err := e.Export(context.Background(), "Total spent per category", tbl)
	if err != nil || ref != "mem:'Total spent per category'!A1:B3" {
		t.Fatalf("unexpected export: ref=%q err=%v", ref, err)
	}

	got, ok := e.Tab("Total spent per category")
	if !ok || len(got) != 3 || got[0][1] != "Total_Spent" || got[2][0] != "Travel" {
		t.Fatalf("unexpected tab content: %v", got)
	}

	got[0][0] = "mutated"
	again, _ := e.Tab("Total spent per category")
	if again[0][0] != "Category" {
		t.Fatalf("Tab should return a copy")
	}
}

func TestExporterReplacesTab(t *testing.T) {
	e := New()
	ctx := context.Background()
	_, _ = e.Export(ctx, "r", core.Table{Columns: []string{"a"}, Rows: [][]any{{1}, {2}}})
	_, _ = e.Export(ctx, "r", core.Table{Columns: []string{"a"}, Rows: [][]any{{3}}})

	got, _ := e.Tab("r")
	if len(got) != 2 || got[1][0] != 3 {
		t.Fatalf("tab not replaced: %v", got)
	}
	if tabs := e.Tabs(); len(tabs) != 1 || tabs[0] != "r" {
		t.Fatalf("unexpected tabs: %v", tabs)
	}
}

func TestExporterRejectsEmptyTable(t *testing.T) {
	_, err := New().Export(context.Background(), "r", core.Table{})
	if !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
