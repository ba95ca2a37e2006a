package backend

import (
	"context"
	"time"

	"spesegen/internal/cache"
	"spesegen/internal/services"
	"spesegen/internal/storage"
)

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// BackendResult is a fully wired dashboard and the resources behind it
type BackendResult struct {
	Dashboard *services.Dashboard
	Store     *storage.Store
	Reports   services.ReportRunner
	Exporter  services.ReportExporter
	Cache     *cache.ReportCache
	Cleanup   CleanupFunc
}

// Factory creates dashboards based on configuration
type Factory interface {
	// CreateBackend wires store, generator, catalog, cache, exporter and
	// publisher according to config
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// Config holds configuration for backend creation
type Config struct {
	SQLiteDBPath  string
	GeneratorSeed uint64

	ReportCacheSize int
	ReportCacheTTL  time.Duration

	// AMQP is optional; an empty URL disables batch events
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Export backend
	Export                   ExportType
	GoogleSpreadsheetID      string
	GoogleServiceAccountJSON string
	GoogleServiceAccountFile string
}

// ExportType represents the report export destination
type ExportType string

const (
	MemoryExport ExportType = "memory"
	SheetsExport ExportType = "sheets"
)

// String implements fmt.Stringer
func (et ExportType) String() string {
	return string(et)
}

// IsValid returns true if the export type is valid
func (et ExportType) IsValid() bool {
	switch et {
	case MemoryExport, SheetsExport:
		return true
	default:
		return false
	}
}
