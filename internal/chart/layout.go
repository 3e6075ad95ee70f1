package chart

import (
	"fmt"
	"math"

	"github.com/rpgo/investment-calculator/internal/domain"
	money "github.com/rpgo/investment-calculator/pkg/decimal"
)

// Geometry of the bar chart viewbox. Renderers scale it to their own canvas.
const (
	ViewBoxWidth  = 100.0
	ViewBoxHeight = 100.0
	TickCount     = 5
	BarSpacing    = 0.5
	minBarWidth   = 0.1
)

// NoDataMessage is shown instead of a chart when there is nothing to plot.
const NoDataMessage = "No data to display chart."

// xLabelOffsets are the year offsets labelled under the chart at 0/25/50/75%.
var xLabelOffsets = []int{0, 8, 16, 24}

// Bar is one year of the series in viewbox coordinates (y grows downwards).
type Bar struct {
	Index  int
	Year   int
	Value  float64
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Tick is a horizontal grid line with its currency label.
type Tick struct {
	Value float64
	Y     float64
	Label string
}

// AxisLabel is a calendar year placed at a percentage of the chart width.
type AxisLabel struct {
	Percent float64
	Year    int
}

// Tooltip is the hover text for one bar.
type Tooltip struct {
	Year  int
	Value float64
	Label string
}

// Layout is the computed geometry for a single-series bar chart.
type Layout struct {
	StartYear int
	Min       float64
	Max       float64
	Bars      []Bar
	Ticks     []Tick
	NoData    bool
	Message   string
}

// NewLayout scales the balances of a series into the viewbox. Bars are
// measured from the series minimum, so the smallest value has zero height.
// An empty series or one with no range produces a NoData layout.
func NewLayout(series domain.ProjectionSeries, startYear int) Layout {
	values := make([]float64, len(series))
	for i, p := range series {
		values[i] = p.Balance.InexactFloat64()
	}
	return NewLayoutFromValues(values, startYear)
}

// NewLayoutFromValues is NewLayout for raw year-end values.
func NewLayoutFromValues(values []float64, startYear int) Layout {
	l := Layout{StartYear: startYear}
	if len(values) == 0 {
		return noData(l)
	}

	l.Min, l.Max = values[0], values[0]
	for _, v := range values[1:] {
		l.Min = math.Min(l.Min, v)
		l.Max = math.Max(l.Max, v)
	}
	span := l.Max - l.Min
	if span == 0 {
		return noData(l)
	}

	n := float64(len(values))
	width := math.Max(ViewBoxWidth/n-1-BarSpacing, minBarWidth)
	l.Bars = make([]Bar, len(values))
	for i, v := range values {
		height := (v - l.Min) / span * ViewBoxHeight
		l.Bars[i] = Bar{
			Index:  i,
			Year:   startYear + i,
			Value:  v,
			X:      float64(i)/n*ViewBoxWidth + BarSpacing/2,
			Y:      ViewBoxHeight - height,
			Width:  width,
			Height: height,
		}
	}

	for _, v := range NiceTicks(l.Min, l.Max, TickCount) {
		l.Ticks = append(l.Ticks, Tick{
			Value: v,
			Y:     ViewBoxHeight - (v-l.Min)/span*ViewBoxHeight,
			Label: money.NewMoney(v).FormatCompact(),
		})
	}
	return l
}

func noData(l Layout) Layout {
	l.NoData = true
	l.Message = NoDataMessage
	return l
}

// BarAt maps a pointer x (viewbox units) to the bar whose slot contains it.
func (l Layout) BarAt(x float64) (Bar, bool) {
	if l.NoData || len(l.Bars) == 0 || x < 0 || x > ViewBoxWidth {
		return Bar{}, false
	}
	i := int(x / ViewBoxWidth * float64(len(l.Bars)))
	if i >= len(l.Bars) {
		i = len(l.Bars) - 1
	}
	return l.Bars[i], true
}

// Tooltip returns the hover text for bar i as "YEAR: $VALUE".
func (l Layout) Tooltip(i int) (Tooltip, bool) {
	if i < 0 || i >= len(l.Bars) {
		return Tooltip{}, false
	}
	b := l.Bars[i]
	return Tooltip{
		Year:  b.Year,
		Value: b.Value,
		Label: fmt.Sprintf("%d: %s", b.Year, money.NewMoney(b.Value).FormatCompact()),
	}, true
}

// XAxisLabels returns the start year, +8, +16, +24 and the final year.
func (l Layout) XAxisLabels() []AxisLabel {
	if l.NoData || len(l.Bars) == 0 {
		return nil
	}
	labels := make([]AxisLabel, 0, len(xLabelOffsets)+1)
	for i, off := range xLabelOffsets {
		labels = append(labels, AxisLabel{Percent: float64(i) * 25, Year: l.StartYear + off})
	}
	return append(labels, AxisLabel{Percent: 100, Year: l.StartYear + len(l.Bars) - 1})
}
