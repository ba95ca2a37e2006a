package worker_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"spesegen/internal/amqp"
	"spesegen/internal/core"
	applog "spesegen/internal/log"
	"spesegen/internal/reports"
	"spesegen/internal/services"
	"spesegen/internal/sheets"
	"spesegen/internal/sheets/memory"
	"spesegen/internal/worker"
)

func quietLogger() *applog.Logger {
	return applog.New(applog.Config{Output: io.Discard})
}

func summary(key string) core.Table {
	return core.Table{
		Columns: []string{key, "Total_Spent"},
		Rows:    [][]any{{"Food", 120.5}, {"Travel", 80.0}},
	}
}

func TestSyncWorker_HandleBatchAppended(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := services.NewMockReportRunner(ctrl)
	exporter := memory.New()

	for _, name := range worker.DefaultReports {
		runner.EXPECT().Run(gomock.Any(), name).Return(summary("Key"), nil)
	}

	w := worker.NewSyncWorker(runner, exporter, nil, quietLogger())
	require.True(t, w.LastSync().IsZero())

	err := w.HandleBatchAppended(context.Background(), amqp.NewBatchAppendedMessage("March", 200))
	require.NoError(t, err)

	assert.False(t, w.LastSync().IsZero())
	assert.Len(t, exporter.Tabs(), len(worker.DefaultReports))
	rows, ok := exporter.Tab(sheets.TabTitle(reports.TotalPerCategory))
	require.True(t, ok)
	require.Len(t, rows, 3)
	assert.Equal(t, []any{"Key", "Total_Spent"}, rows[0])
}

func TestSyncWorker_ContinuesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := services.NewMockReportRunner(ctrl)
	exporter := services.NewMockReportExporter(ctrl)

	names := []string{reports.TotalPerCategory, reports.MonthlyBreakdown}
	runner.EXPECT().Run(gomock.Any(), reports.TotalPerCategory).Return(core.Table{}, core.NewQueryError("x", errors.New("no such table")))
	runner.EXPECT().Run(gomock.Any(), reports.MonthlyBreakdown).Return(summary("Month"), nil)
	exporter.EXPECT().Export(gomock.Any(), sheets.TabTitle(reports.MonthlyBreakdown), gomock.Any()).Return("'Monthly spending breakdown'!A1:B3", nil)

	w := worker.NewSyncWorker(runner, exporter, names, quietLogger())
	err := w.SyncReports(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrQuery)
	assert.True(t, w.LastSync().IsZero(), "partial sync does not count")
}

func TestSyncWorker_ExportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := services.NewMockReportRunner(ctrl)
	exporter := services.NewMockReportExporter(ctrl)

	exportErr := errors.New("quota exceeded")
	runner.EXPECT().Run(gomock.Any(), reports.TopExpenses).Return(summary("Date"), nil)
	exporter.EXPECT().Export(gomock.Any(), gomock.Any(), gomock.Any()).Return("", exportErr)

	w := worker.NewSyncWorker(runner, exporter, []string{reports.TopExpenses}, quietLogger())
	err := w.HandleBatchAppended(context.Background(), amqp.NewBatchAppendedMessage("May", 50))

	require.ErrorIs(t, err, exportErr)
	assert.Contains(t, err.Error(), reports.TopExpenses)
}

func TestSyncWorker_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := services.NewMockReportRunner(ctrl)
	exporter := services.NewMockReportExporter(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := worker.NewSyncWorker(runner, exporter, nil, quietLogger())
	require.ErrorIs(t, w.SyncReports(ctx), context.Canceled)
}
