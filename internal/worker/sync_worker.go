// Package worker mirrors catalog reports to the export backend when batch
// events arrive.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"spesegen/internal/amqp"
	applog "spesegen/internal/log"
	"spesegen/internal/reports"
	"spesegen/internal/services"
	"spesegen/internal/sheets"
)

// DefaultReports are the summary reports kept up to date on the export backend.
var DefaultReports = []string{
	reports.TotalPerCategory,
	reports.MonthlyBreakdown,
	reports.CashbackPerPaymentMode,
}

// SyncWorker re-exports a fixed set of reports after every appended batch.
type SyncWorker struct {
	reports  services.ReportRunner
	exporter services.ReportExporter
	names    []string
	logger   *applog.Logger

	mu       sync.Mutex
	lastSync time.Time
}

// NewSyncWorker builds a worker for names; an empty list means DefaultReports.
func NewSyncWorker(runner services.ReportRunner, exporter services.ReportExporter, names []string, logger *applog.Logger) *SyncWorker {
	if len(names) == 0 {
		names = DefaultReports
	}
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &SyncWorker{
		reports:  runner,
		exporter: exporter,
		names:    append([]string(nil), names...),
		logger:   logger.WithComponent(applog.ComponentExport),
	}
}

// HandleBatchAppended processes a single batch event from AMQP
func (w *SyncWorker) HandleBatchAppended(ctx context.Context, msg *amqp.BatchAppendedMessage) error {
	fields := applog.NewFields().WithBatch(msg.Month, msg.Count)
	fields[applog.FieldBatchID] = msg.BatchID.String()
	w.logger.InfoContext(ctx, "Processing batch event", fields.ToSlice()...)

	if err := w.SyncReports(ctx); err != nil {
		return fmt.Errorf("sync reports for batch %s: %w", msg.BatchID, err)
	}
	return nil
}

// SyncReports exports every configured report. All reports are attempted;
// the failures are joined.
func (w *SyncWorker) SyncReports(ctx context.Context) error {
	var errs []error
	for _, name := range w.names {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := w.syncReport(ctx, name); err != nil {
			w.logger.ErrorContext(ctx, "Failed to sync report",
				applog.FieldReport, name,
				applog.FieldError, err)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	w.mu.Lock()
	w.lastSync = time.Now()
	w.mu.Unlock()

	w.logger.InfoContext(ctx, "Reports synced", "reports", len(w.names))
	return nil
}

// LastSync returns the time of the last fully successful sync.
func (w *SyncWorker) LastSync() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSync
}

func (w *SyncWorker) syncReport(ctx context.Context, name string) error {
	t, err := w.reports.Run(ctx, name)
	if err != nil {
		return fmt.Errorf("run %q: %w", name, err)
	}

	rng, err := w.exporter.Export(ctx, sheets.TabTitle(name), t)
	if err != nil {
		return fmt.Errorf("export %q: %w", name, err)
	}

	fields := applog.NewFields().WithReport(name, t.Len()).WithOperation(applog.OpExport)
	fields["range"] = rng
	w.logger.DebugContext(ctx, "Report exported", fields.ToSlice()...)
	return nil
}
