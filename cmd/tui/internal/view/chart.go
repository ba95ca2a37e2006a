package view

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spesegen/internal/presentation"
	"spesegen/internal/services"
)

const (
	barRune   = "█"
	pointRune = "●"
	noData    = "(no data)"
)

var palette = []lipgloss.Color{"205", "39", "214", "46", "141", "203", "45", "228", "99", "160"}

func sliceStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(palette[i%len(palette)])
}

// RenderChart draws c in a box of roughly width columns.
func RenderChart(c services.Chart, width int) string {
	var parts []string
	for _, s := range c.Series {
		var body string
		switch c.Kind {
		case presentation.Bar:
			body = RenderBars(s, width)
		case presentation.Pie:
			body = RenderPie(s, width)
		case presentation.Line:
			body = RenderLine(s, width, 10)
		default:
			body = noData
		}
		header := titleStyle.Render(fmt.Sprintf("%s chart: %s by %s", c.Kind, s.Name, c.Index))
		parts = append(parts, header+"\n"+body)
	}
	return strings.Join(parts, "\n\n")
}

// RenderBars draws one horizontal bar per label, scaled to the largest value.
// Negative values are drawn as empty bars.
func RenderBars(s presentation.Series, width int) string {
	if len(s.Values) == 0 {
		return noData
	}

	labelWidth := 0
	valueWidth := 0
	peak := 0.0
	for i, v := range s.Values {
		labelWidth = max(labelWidth, lipgloss.Width(s.Labels[i]))
		valueWidth = max(valueWidth, lipgloss.Width(FormatNumber(v)))
		peak = math.Max(peak, v)
	}

	barWidth := max(width-labelWidth-valueWidth-3, 1)

	var b strings.Builder
	for i, v := range s.Values {
		n := 0
		if peak > 0 && v > 0 {
			n = int(math.Round(v / peak * float64(barWidth)))
		}
		fmt.Fprintf(&b, "%-*s %s %*s\n",
			labelWidth, s.Labels[i],
			sliceStyle(0).Render(strings.Repeat(barRune, n))+strings.Repeat(" ", barWidth-n),
			valueWidth, FormatNumber(v))
	}
	return strings.TrimRight(b.String(), "\n")
}

// pieCells splits width cells among values in proportion, using the largest
// remainder so the cells add up to width exactly. Non-positive values get none.
func pieCells(values []float64, width int) []int {
	total := 0.0
	for _, v := range values {
		if v > 0 {
			total += v
		}
	}
	cells := make([]int, len(values))
	if total == 0 || width <= 0 {
		return cells
	}

	type rem struct {
		idx  int
		frac float64
	}
	rems := make([]rem, 0, len(values))
	used := 0
	for i, v := range values {
		if v <= 0 {
			continue
		}
		exact := v / total * float64(width)
		cells[i] = int(exact)
		used += cells[i]
		rems = append(rems, rem{i, exact - float64(cells[i])})
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for i := 0; used < width; i++ {
		cells[rems[i%len(rems)].idx]++
		used++
	}
	return cells
}

// RenderPie draws the share of each label as a proportional two-row strip
// with a legend listing the percentages.
func RenderPie(s presentation.Series, width int) string {
	total := 0.0
	for _, v := range s.Values {
		if v > 0 {
			total += v
		}
	}
	if total == 0 {
		return noData
	}

	cells := pieCells(s.Values, max(width, 10))

	var strip strings.Builder
	for i, n := range cells {
		strip.WriteString(sliceStyle(i).Render(strings.Repeat(barRune, n)))
	}

	labelWidth := 0
	for _, l := range s.Labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}

	var legend strings.Builder
	for i, v := range s.Values {
		share := 0.0
		if v > 0 {
			share = v / total
		}
		fmt.Fprintf(&legend, "%s %-*s %7s  %s\n",
			sliceStyle(i).Render("■"),
			labelWidth, s.Labels[i],
			FormatPercent(share),
			FormatNumber(v))
	}

	return strip.String() + "\n" + strip.String() + "\n\n" + strings.TrimRight(legend.String(), "\n")
}

// downsample averages values into at most n buckets.
func downsample(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	out := make([]float64, n)
	for i := range n {
		lo := i * len(values) / n
		hi := (i + 1) * len(values) / n
		sum := 0.0
		for _, v := range values[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}

// RenderLine plots the values left to right on a grid of height rows, with
// the first and last labels under the x axis.
func RenderLine(s presentation.Series, width, height int) string {
	if len(s.Values) == 0 {
		return noData
	}
	height = max(height, 2)

	lo, hi := s.Values[0], s.Values[0]
	for _, v := range s.Values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	axisWidth := max(lipgloss.Width(FormatNumber(lo)), lipgloss.Width(FormatNumber(hi)))
	points := downsample(s.Values, max(width-axisWidth-2, 1))

	grid := make([][]string, height)
	for r := range grid {
		grid[r] = make([]string, len(points))
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	for c, v := range points {
		row := height - 1
		if hi > lo {
			row = height - 1 - int(math.Round((v-lo)/(hi-lo)*float64(height-1)))
		}
		grid[row][c] = sliceStyle(1).Render(pointRune)
	}

	var b strings.Builder
	for r, cells := range grid {
		axis := ""
		switch r {
		case 0:
			axis = FormatNumber(hi)
		case height - 1:
			axis = FormatNumber(lo)
		}
		fmt.Fprintf(&b, "%*s │%s\n", axisWidth, axis, strings.Join(cells, ""))
	}
	fmt.Fprintf(&b, "%*s └%s\n", axisWidth, "", strings.Repeat("─", len(points)))

	first, last := s.Labels[0], s.Labels[len(s.Labels)-1]
	gap := max(len(points)-lipgloss.Width(first)-lipgloss.Width(last), 1)
	fmt.Fprintf(&b, "%*s  %s%s%s", axisWidth, "", first, strings.Repeat(" ", gap), last)
	return b.String()
}
