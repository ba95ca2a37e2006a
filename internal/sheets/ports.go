package sheets

import (
	"context"

	"spesegen/internal/core"
)

// Ports for outbound adapters.
type (
	// ReportExporter writes a result table to a named tab, replacing whatever
	// the tab held before. It returns the A1 range that was written.
	ReportExporter interface {
		Export(ctx context.Context, tab string, t core.Table) (writtenRange string, err error)
	}
)
