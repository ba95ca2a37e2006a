package google

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"spesegen/internal/core"

	goption "google.golang.org/api/option"
)

// fakeSheets is a minimal stand-in for the Sheets REST API.
type fakeSheets struct {
	mu      sync.Mutex
	tabs    []string
	added   []string
	cleared []string
	written map[string][][]any
}

func (f *fakeSheets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")

	path := r.URL.Path
	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(path, "/spreadsheets/sheet-1"):
		sheets := make([]map[string]any, 0, len(f.tabs))
		for _, t := range f.tabs {
			sheets = append(sheets, map[string]any{"properties": map[string]any{"title": t}})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"sheets": sheets})

	case r.Method == http.MethodPost && strings.HasSuffix(path, ":batchUpdate"):
		var req struct {
			Requests []struct {
				AddSheet struct {
					Properties struct {
						Title string `json:"title"`
					} `json:"properties"`
				} `json:"addSheet"`
			} `json:"requests"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		for _, rq := range req.Requests {
			f.added = append(f.added, rq.AddSheet.Properties.Title)
			f.tabs = append(f.tabs, rq.AddSheet.Properties.Title)
		}
		_, _ = w.Write([]byte(`{}`))

	case r.Method == http.MethodPost && strings.HasSuffix(path, ":clear"):
		rng := path[strings.Index(path, "/values/")+len("/values/") : len(path)-len(":clear")]
		f.cleared = append(f.cleared, rng)
		_, _ = w.Write([]byte(`{}`))

	case r.Method == http.MethodPut && strings.Contains(path, "/values/"):
		rng := path[strings.Index(path, "/values/")+len("/values/"):]
		var body struct {
			Values [][]any `json:"values"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if f.written == nil {
			f.written = map[string][][]any{}
		}
		f.written[rng] = body.Values
		_ = json.NewEncoder(w).Encode(map[string]any{"updatedRange": rng})

	default:
		http.Error(w, `{"error":{"code":404,"message":"not found"}}`, http.StatusNotFound)
	}
}

func newTestExporter(t *testing.T, fake *fakeSheets) *Exporter {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	e, err := New(context.Background(), "sheet-1",
		goption.WithEndpoint(srv.URL+"/"),
		goption.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}

func TestExporter_CreatesMissingTab(t *testing.T) {
	fake := &fakeSheets{tabs: []string{"Sheet1"}}
	e := newTestExporter(t, fake)

	tbl := core.Table{
		Columns: []string{"Category", "Total_Spent"},
		Rows:    [][]any{{"Food", 150.0}},
	}
	rng, err := e.Export(context.Background(), "Total spent per category", tbl)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if rng != "'Total spent per category'!A1" {
		t.Errorf("Export() range = %q", rng)
	}
	if len(fake.added) != 1 || fake.added[0] != "Total spent per category" {
		t.Errorf("expected tab to be added, got %v", fake.added)
	}
	if len(fake.cleared) != 1 {
		t.Errorf("expected one clear call, got %v", fake.cleared)
	}
	got := fake.written[rng]
	if len(got) != 2 || got[0][0] != "Category" || got[1][0] != "Food" || got[1][1] != 150.0 {
		t.Errorf("unexpected written values %v", got)
	}
}

func TestExporter_ReusesExistingTab(t *testing.T) {
	fake := &fakeSheets{tabs: []string{"Top 5 Highest Expenses"}}
	e := newTestExporter(t, fake)

	_, err := e.Export(context.Background(), "Top 5 Highest Expenses", core.Table{
		Columns: []string{"Description"},
		Rows:    [][]any{{"x."}},
	})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if len(fake.added) != 0 {
		t.Errorf("existing tab should not be re-added: %v", fake.added)
	}
}

func TestExporter_RejectsEmptyTable(t *testing.T) {
	e := &Exporter{spreadsheetID: "sheet-1"}
	_, err := e.Export(context.Background(), "x", core.Table{})
	if !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestExporter_NilService(t *testing.T) {
	e := &Exporter{spreadsheetID: "sheet-1"}
	_, err := e.Export(context.Background(), "x", core.Table{Columns: []string{"a"}})
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("expected not initialized error, got %v", err)
	}
}

func TestNew_MissingSpreadsheetID(t *testing.T) {
	_, err := New(context.Background(), "  ")
	if err == nil || err.Error() != "missing spreadsheet ID" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestServiceAccountCredentials(t *testing.T) {
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
	ctx := context.Background()

	t.Run("inline wins", func(t *testing.T) {
		got, err := serviceAccountCredentials(ctx, `{"type":"service_account"}`, "/does/not/matter")
		if err != nil || string(got) != `{"type":"service_account"}` {
			t.Fatalf("got %q, %v", got, err)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sa.json")
		if err := os.WriteFile(path, []byte(`{"k":1}`), 0o600); err != nil {
			t.Fatal(err)
		}
		got, err := serviceAccountCredentials(ctx, "", path)
		if err != nil || string(got) != `{"k":1}` {
			t.Fatalf("got %q, %v", got, err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := serviceAccountCredentials(ctx, "", "/non/existent.json")
		if err == nil || !strings.Contains(err.Error(), "read service account file") {
			t.Fatalf("unexpected error %v", err)
		}
	})

	t.Run("nothing configured", func(t *testing.T) {
		_, err := serviceAccountCredentials(ctx, "", "")
		if err == nil || !strings.Contains(err.Error(), "missing service account credentials") {
			t.Fatalf("unexpected error %v", err)
		}
	})
}
