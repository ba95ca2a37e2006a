package presentation

import (
	"fmt"
	"strconv"

	"spesegen/internal/core"
)

// Series is one plottable column: a value per label.
type Series struct {
	Name   string    `json:"name"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Project extracts the series described by v from t. Missing columns are
// reported as an error; non-numeric cells count as zero.
func Project(v Visualization, t core.Table) ([]Series, error) {
	labels, ok := t.Column(v.Index)
	if !ok {
		return nil, fmt.Errorf("index column %q not in result", v.Index)
	}

	names := v.Values
	if len(names) == 0 {
		for _, c := range t.Columns {
			if c != v.Index {
				names = append(names, c)
			}
		}
	}

	out := make([]Series, 0, len(names))
	for _, name := range names {
		cells, ok := t.Column(name)
		if !ok {
			return nil, fmt.Errorf("value column %q not in result", name)
		}
		s := Series{
			Name:   name,
			Labels: make([]string, len(labels)),
			Values: make([]float64, len(cells)),
		}
		for i := range labels {
			s.Labels[i] = Label(labels[i])
			s.Values[i] = Number(cells[i])
		}
		out = append(out, s)
	}
	return out, nil
}

// Label renders a cell as text.
func Label(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// Number converts a cell to float64.
func Number(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	case int:
		return float64(x)
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
