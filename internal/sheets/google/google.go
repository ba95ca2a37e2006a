package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"spesegen/internal/core"
	ports "spesegen/internal/sheets"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Exporter writes report tables into tabs of one spreadsheet.
type Exporter struct {
	svc           *gsheet.Service
	spreadsheetID string
}

// Ensure interface conformance
var _ ports.ReportExporter = (*Exporter)(nil)

// New creates an exporter over an explicitly configured Sheets service.
func New(ctx context.Context, spreadsheetID string, opts ...goption.ClientOption) (*Exporter, error) {
	spreadsheetID = strings.TrimSpace(spreadsheetID)
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	svc, err := gsheet.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Exporter{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// NewWithServiceAccount creates an exporter authenticated with service
// account credentials, given inline or as a file path. Inline JSON wins.
func NewWithServiceAccount(ctx context.Context, spreadsheetID, credentialsJSON, credentialsFile string) (*Exporter, error) {
	creds, err := serviceAccountCredentials(ctx, credentialsJSON, credentialsFile)
	if err != nil {
		return nil, err
	}
	return New(ctx, spreadsheetID,
		goption.WithCredentialsJSON(creds),
		goption.WithScopes(gsheet.SpreadsheetsScope))
}

func serviceAccountCredentials(ctx context.Context, inline, file string) ([]byte, error) {
	inline = strings.TrimSpace(inline)
	file = strings.TrimSpace(file)
	if inline == "" && file == "" {
		file = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	switch {
	case inline != "":
		slog.DebugContext(ctx, "Using inline service account credentials", "json_length", len(inline))
		return []byte(inline), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		slog.DebugContext(ctx, "Read service account credentials", "path", file, "size", len(data))
		return data, nil
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}
}

// Export replaces the content of tab with the table, creating the tab if the
// spreadsheet does not have it yet.
func (e *Exporter) Export(ctx context.Context, tab string, t core.Table) (string, error) {
	if len(t.Columns) == 0 {
		return "", fmt.Errorf("%w: nothing to export", core.ErrInvalidArgument)
	}
	if e.svc == nil {
		return "", errors.New("sheets service not initialized")
	}

	if err := e.ensureTab(ctx, tab); err != nil {
		return "", err
	}

	quoted := ports.QuoteTab(tab)
	if _, err := e.svc.Spreadsheets.Values.Clear(e.spreadsheetID, quoted, &gsheet.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("clear tab %q: %w", tab, err)
	}

	vr := &gsheet.ValueRange{Values: ports.Values(t)}
	resp, err := e.svc.Spreadsheets.Values.Update(e.spreadsheetID, quoted+"!A1", vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("write tab %q: %w", tab, err)
	}

	slog.InfoContext(ctx, "Report exported to Google Sheets",
		"tab", tab,
		"rows", len(t.Rows),
		"range", resp.UpdatedRange)
	return resp.UpdatedRange, nil
}

func (e *Exporter) ensureTab(ctx context.Context, tab string) error {
	ss, err := e.svc.Spreadsheets.Get(e.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("read spreadsheet: %w", err)
	}
	for _, s := range ss.Sheets {
		if s.Properties != nil && s.Properties.Title == tab {
			return nil
		}
	}

	req := &gsheet.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheet.Request{{
			AddSheet: &gsheet.AddSheetRequest{
				Properties: &gsheet.SheetProperties{Title: tab},
			},
		}},
	}
	if _, err := e.svc.Spreadsheets.BatchUpdate(e.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("add tab %q: %w", tab, err)
	}
	slog.DebugContext(ctx, "Created spreadsheet tab", "tab", tab)
	return nil
}
