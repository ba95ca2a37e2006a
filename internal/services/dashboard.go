package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"spesegen/internal/amqp"
	"spesegen/internal/cache"
	"spesegen/internal/core"
	applog "spesegen/internal/log"
	"spesegen/internal/presentation"
	"spesegen/internal/reports"
	"spesegen/internal/sheets"
)

// Batch size bounds applied by the dashboard surfaces. The generator itself
// accepts any positive count.
const (
	MinBatchSize     = 50
	MaxBatchSize     = 1000
	DefaultBatchSize = 200
	DefaultMonth     = "January"

	// PreviewRows is how many generated rows are echoed back after a batch.
	PreviewRows = 5
)

// ErrExportDisabled is returned by ExportReport when no exporter is wired.
var ErrExportDisabled = errors.New("report export is not configured")

// ClampBatchSize bounds a requested batch size to [MinBatchSize, MaxBatchSize].
func ClampBatchSize(n int) int {
	switch {
	case n < MinBatchSize:
		return MinBatchSize
	case n > MaxBatchSize:
		return MaxBatchSize
	default:
		return n
	}
}

// Chart is a visualization together with the series it plots.
type Chart struct {
	presentation.Visualization
	Series []presentation.Series `json:"series"`
}

// GenerateResult describes a committed batch.
type GenerateResult struct {
	BatchID string     `json:"batch_id"`
	Month   string     `json:"month"`
	Count   int        `json:"count"`
	Preview core.Table `json:"preview"`
}

// Insights is the category totals view.
type Insights struct {
	Table  core.Table `json:"table"`
	Charts []Chart    `json:"charts"`
}

// ReportResult is a catalog report with its optional chart.
type ReportResult struct {
	Name   string     `json:"name"`
	Table  core.Table `json:"table"`
	Chart  *Chart     `json:"chart,omitempty"`
	Cached bool       `json:"cached"`
}

// ExportResult describes where a report was written.
type ExportResult struct {
	Report string `json:"report"`
	Tab    string `json:"tab"`
	Range  string `json:"range"`
	Rows   int    `json:"rows"`
}

// Dashboard orchestrates the five dashboard modes over the core: generate,
// view all, category insights, ad-hoc query and catalog reports.
type Dashboard struct {
	store     ExpenseStore
	reports   ReportRunner
	generator ExpenseGenerator
	publisher BatchPublisher
	exporter  ReportExporter
	cache     *cache.ReportCache
	logger    *applog.Logger
}

// Option configures optional collaborators of a Dashboard.
type Option func(*Dashboard)

// WithPublisher announces every committed batch through p.
func WithPublisher(p BatchPublisher) Option {
	return func(d *Dashboard) { d.publisher = p }
}

// WithExporter enables report export.
func WithExporter(e ReportExporter) Option {
	return func(d *Dashboard) { d.exporter = e }
}

// WithReportCache memoizes catalog results between appends.
func WithReportCache(c *cache.ReportCache) Option {
	return func(d *Dashboard) {
		if c != nil {
			d.cache = c
		}
	}
}

// WithLogger sets the logger used for operation records.
func WithLogger(l *applog.Logger) Option {
	return func(d *Dashboard) {
		if l != nil {
			d.logger = l
		}
	}
}

func NewDashboard(store ExpenseStore, runner ReportRunner, gen ExpenseGenerator, opts ...Option) *Dashboard {
	d := &Dashboard{
		store:     store,
		reports:   runner,
		generator: gen,
		cache:     cache.NewReportCache(0, 0),
		logger:    applog.New(applog.DefaultConfig()),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Generate synthesizes count records labelled month, appends them in one
// batch and returns the first rows. count is not clamped here; surfaces call
// ClampBatchSize first.
func (d *Dashboard) Generate(ctx context.Context, month string, count int) (GenerateResult, error) {
	records, err := d.generator.Generate(month, count)
	if err != nil {
		return GenerateResult{}, err
	}

	if err := d.store.Append(ctx, records); err != nil {
		return GenerateResult{}, fmt.Errorf("append batch: %w", err)
	}
	d.cache.Invalidate()

	msg := amqp.NewBatchAppendedMessage(month, len(records))
	d.publish(ctx, msg)

	fields := applog.NewFields().
		WithBatch(month, len(records)).
		WithOperation(applog.OpGenerate)
	fields[applog.FieldBatchID] = msg.BatchID.String()
	d.logger.InfoContext(ctx, "Expense batch generated", fields.ToSlice()...)

	return GenerateResult{
		BatchID: msg.BatchID.String(),
		Month:   month,
		Count:   len(records),
		Preview: core.ExpensesTable(records).Head(PreviewRows),
	}, nil
}

// publish never fails the batch: the rows are already committed.
func (d *Dashboard) publish(ctx context.Context, msg *amqp.BatchAppendedMessage) {
	if d.publisher == nil {
		return
	}
	if err := d.publisher.PublishBatchAppended(ctx, msg); err != nil {
		d.logger.WarnContext(ctx, "Failed to publish batch event",
			applog.FieldBatchID, msg.BatchID.String(),
			applog.FieldError, err,
			applog.FieldOperation, applog.OpPublish)
	}
}

// ViewAll returns every stored record.
func (d *Dashboard) ViewAll(ctx context.Context) (core.Table, error) {
	t, err := d.store.All(ctx)
	if err != nil {
		return core.Table{}, err
	}
	d.logger.DebugContext(ctx, "Listed expenses", applog.FieldRows, t.Len(), applog.FieldOperation, applog.OpList)
	return t, nil
}

// CategoryInsights returns total spent per category with its bar and pie
// charts.
func (d *Dashboard) CategoryInsights(ctx context.Context) (Insights, error) {
	t, _, err := d.runCached(ctx, reports.TotalPerCategory)
	if err != nil {
		return Insights{}, err
	}

	vis := presentation.CategoryTotals()
	charts := make([]Chart, 0, len(vis))
	for _, v := range vis {
		series, err := presentation.Project(v, t)
		if err != nil {
			return Insights{}, fmt.Errorf("project %s chart: %w", v.Kind, err)
		}
		charts = append(charts, Chart{Visualization: v, Series: series})
	}
	return Insights{Table: t, Charts: charts}, nil
}

// AdHocQuery runs user-supplied SQL on the read-only path. Failures come
// back as errors for the caller to display.
func (d *Dashboard) AdHocQuery(ctx context.Context, sqlText string) (core.Table, error) {
	if strings.TrimSpace(sqlText) == "" {
		return core.Table{}, fmt.Errorf("%w: empty query", core.ErrInvalidArgument)
	}

	start := time.Now()
	t, err := d.store.Query(ctx, sqlText)
	fields := applog.NewFields().
		WithSQL(sqlText).
		WithOperation(applog.OpQuery).
		WithError(err)
	fields[applog.FieldDuration] = time.Since(start).Milliseconds()
	if err != nil {
		d.logger.WarnContext(ctx, "Ad-hoc query failed", fields.ToSlice()...)
		return core.Table{}, err
	}
	fields[applog.FieldRows] = t.Len()
	d.logger.InfoContext(ctx, "Ad-hoc query executed", fields.ToSlice()...)
	return t, nil
}

// ReportNames lists the catalog in display order.
func (d *Dashboard) ReportNames() []string {
	return reports.Names()
}

// RunReport runs a catalog report and attaches its chart, if it has one.
func (d *Dashboard) RunReport(ctx context.Context, name string) (ReportResult, error) {
	t, hit, err := d.runCached(ctx, name)
	if err != nil {
		return ReportResult{}, err
	}

	res := ReportResult{Name: name, Table: t, Cached: hit}
	if v, ok := presentation.ChooseVisualization(name, t); ok {
		series, err := presentation.Project(v, t)
		if err != nil {
			return ReportResult{}, fmt.Errorf("project chart for %q: %w", name, err)
		}
		res.Chart = &Chart{Visualization: v, Series: series}
	}

	d.logger.InfoContext(ctx, "Report served", applog.NewFields().
		WithReport(name, t.Len()).
		WithOperation(applog.OpReport).
		ToSlice()...)
	return res, nil
}

func (d *Dashboard) runCached(ctx context.Context, name string) (core.Table, bool, error) {
	if _, ok := reports.Lookup(name); !ok {
		return core.Table{}, false, fmt.Errorf("%w: %q", core.ErrUnknownQuery, name)
	}
	return d.cache.Get(ctx, name, func(ctx context.Context) (core.Table, error) {
		return d.reports.Run(ctx, name)
	})
}

// ExportReport runs a catalog report and writes it to a sheet tab named
// after the report.
func (d *Dashboard) ExportReport(ctx context.Context, name string) (ExportResult, error) {
	if d.exporter == nil {
		return ExportResult{}, ErrExportDisabled
	}

	t, _, err := d.runCached(ctx, name)
	if err != nil {
		return ExportResult{}, err
	}

	tab := sheets.TabTitle(name)
	rng, err := d.exporter.Export(ctx, tab, t)
	if err != nil {
		return ExportResult{}, fmt.Errorf("export %q: %w", name, err)
	}

	d.logger.InfoContext(ctx, "Report exported", applog.NewFields().
		WithReport(name, t.Len()).
		WithOperation(applog.OpExport).
		ToSlice()...)
	return ExportResult{Report: name, Tab: tab, Range: rng, Rows: t.Len()}, nil
}
