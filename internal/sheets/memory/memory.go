package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"spesegen/internal/core"
	ports "spesegen/internal/sheets"
)

var _ ports.ReportExporter = (*Exporter)(nil)

// Exporter keeps exported tabs in process memory. It backs the default
// export backend and tests.
type Exporter struct {
	mu   sync.Mutex
	tabs map[string][][]any
}

func New() *Exporter {
	return &Exporter{tabs: make(map[string][][]any)}
}

// Export replaces the tab's content with the table.
func (e *Exporter) Export(ctx context.Context, tab string, t core.Table) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(t.Columns) == 0 {
		return "", fmt.Errorf("%w: nothing to export", core.ErrInvalidArgument)
	}
	values := ports.Values(t)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.tabs[tab] = values
	return "mem:" + ports.BlockRange(tab, len(values), len(t.Columns)), nil
}

// Tab returns a copy of a previously exported tab.
func (e *Exporter) Tab(name string) ([][]any, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.tabs[name]
	if !ok {
		return nil, false
	}
	out := make([][]any, len(v))
	for i, row := range v {
		out[i] = append([]any(nil), row...)
	}
	return out, true
}

// Tabs lists exported tab names in sorted order.
func (e *Exporter) Tabs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	names := make([]string, 0, len(e.tabs))
	for n := range e.tabs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
