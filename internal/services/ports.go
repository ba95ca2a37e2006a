package services

import (
	"context"

	"spesegen/internal/amqp"
	"spesegen/internal/core"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=services

// ExpenseStore is the persistence side of the dashboard.
type ExpenseStore interface {
	Append(ctx context.Context, records []core.Expense) error
	Query(ctx context.Context, sqlText string) (core.Table, error)
	All(ctx context.Context) (core.Table, error)
}

// ReportRunner runs catalog reports by name.
type ReportRunner interface {
	Run(ctx context.Context, name string) (core.Table, error)
}

// ExpenseGenerator synthesizes expense batches.
type ExpenseGenerator interface {
	Generate(month string, count int) ([]core.Expense, error)
}

// BatchPublisher announces committed batches.
type BatchPublisher interface {
	PublishBatchAppended(ctx context.Context, msg *amqp.BatchAppendedMessage) error
}

// ReportExporter pushes a report table to an external sheet.
type ReportExporter interface {
	Export(ctx context.Context, tab string, t core.Table) (string, error)
}
