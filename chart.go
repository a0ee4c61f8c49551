// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package chartgrid computes the geometric and numeric mapping needed to
// plot labeled data series onto a fixed-size rectangular grid: it
// normalizes heterogeneous series input into aligned labels and values,
// auto-selects a sensible axis range and tick spacing, and converts data
// values into fractional positions within the grid. Drawing is left to a
// rendering collaborator; the package produces pure numeric and geometric
// results and is agnostic of the output format.
package chartgrid

import (
	"fmt"
	"strconv"
)

// Plotter is the drawing strategy a chart is composed with. Concrete
// chart kinds (bars, lines, and so on) implement it against the
// coordinates and markers the chart exposes.
type Plotter interface {
	Plot(c *Chart) error
}

// Chart holds the normalized data, the working axis range, the planned
// markers, and the grid geometry for one chart. Every field is computed
// once during New and never mutated afterwards, so a Chart is safe for
// concurrent read-only use.
type Chart struct {
	grid     Grid
	labels   []Label
	series   []normalSeries
	maxValue float64

	lowest, highest float64

	markers         []float64
	tickSpacing     float32
	markerPrecision int

	slotWidth, barWidth float32

	// Time-mode linear scale, fixed at construction.
	minLabel, maxLabel float64
	xScale             float64

	xmode          string
	transform      ValueTransform
	headingPrinter func(Label) string
	plotter        Plotter
}

// New builds a chart from the configuration and one or more data series.
// It normalizes the series, selects the axis range, plans markers when
// requested, and freezes the coordinate mapping. The configuration must
// carry an origin point; in time mode every label must be numeric.
func New(cfg Config, data ...Series) (*Chart, error) {
	if cfg.At == nil {
		return nil, ErrMissingOrigin
	}

	xmode := cfg.XAxis
	switch xmode {
	case "":
		xmode = XAxisNormal
	case XAxisNormal, XAxisTime:
	default:
		return nil, fmt.Errorf("%w: %q", ErrAxisMode, cfg.XAxis)
	}

	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.AutoscaleMargin == 0 {
		cfg.AutoscaleMargin = DefaultAutoscaleMargin
	}

	c := &Chart{
		grid: Grid{
			PointType: *cfg.At,
			SizeType:  SizeType{Wd: cfg.Width, Ht: cfg.Height},
			Downward:  cfg.Downward,
		},
		xmode:          xmode,
		transform:      cfg.Transform,
		headingPrinter: cfg.HeadingPrinter,
		plotter:        cfg.Plotter,
	}

	c.labels, c.series, c.maxValue = normalize(data)

	if xmode == XAxisTime {
		for _, l := range c.labels {
			if _, numeric := l.Numeric(); !numeric {
				return nil, fmt.Errorf("%w: label %q", ErrTimeAxisLabel, l.String())
			}
		}
	}

	c.lowest, c.highest = scaleAxis(c.maxValue, &cfg)

	switch {
	case len(cfg.MarkerValues) > 0:
		c.markers = append([]float64(nil), cfg.MarkerValues...)
	case cfg.NiceMarkers:
		c.markers, c.markerPrecision = Tickmarks(c.lowest, c.highest)
	case cfg.AutoTicks:
		c.tickSpacing, c.markers = planTicks(c.lowest, c.highest, cfg.Height)
		if len(c.markers) > 1 {
			c.markerPrecision = TickmarkPrecision(c.markers[1] - c.markers[0])
		}
	}

	if n := len(c.labels); n > 0 {
		c.slotWidth = cfg.Width / float32(n)
	} else {
		c.slotWidth = cfg.Width
	}
	c.barWidth = c.slotWidth / 2

	if xmode == XAxisTime && len(c.labels) > 0 {
		// Labels are fully numeric here, and normalize sorted them, so
		// the extremes sit at the ends.
		c.minLabel, _ = c.labels[0].Numeric()
		c.maxLabel, _ = c.labels[len(c.labels)-1].Numeric()
		if span := c.maxLabel - c.minLabel; span > 0 {
			c.xScale = float64(c.grid.Wd-c.barWidth) / span
		}
	}

	return c, nil
}

// Plot invokes the injected plot strategy on the computed chart. A chart
// composed without one fails with ErrNoPlotter.
func (c *Chart) Plot() error {
	if c.plotter == nil {
		return ErrNoPlotter
	}
	return c.plotter.Plot(c)
}

// Grid returns the plotting area geometry.
func (c *Chart) Grid() Grid {
	return c.grid
}

// Labels returns the normalized label set in slot order.
func (c *Chart) Labels() []Label {
	return c.labels
}

// SeriesCount returns the number of normalized series.
func (c *Chart) SeriesCount() int {
	return len(c.series)
}

// Value returns the value the given series holds at label, and whether a
// data point is present there.
func (c *Chart) Value(series int, label Label) (float64, bool) {
	if series < 0 || series >= len(c.series) {
		return 0, false
	}
	v, ok := c.series[series].values[label]
	return v, ok
}

// HasValue reports whether the given series holds a data point at the
// label slot.
func (c *Chart) HasValue(series, slot int) bool {
	if series < 0 || series >= len(c.series) || slot < 0 {
		return false
	}
	return c.series[series].present.Test(uint(slot))
}

// MaxValue returns the maximum present value across all series, or zero
// when there is none.
func (c *Chart) MaxValue() float64 {
	return c.maxValue
}

// Lowest returns the lower bound of the working axis range.
func (c *Chart) Lowest() float64 {
	return c.lowest
}

// Highest returns the upper bound of the working axis range. It is
// always strictly greater than Lowest.
func (c *Chart) Highest() float64 {
	return c.highest
}

// Markers returns the marker values for gridlines and axis labels, or
// nil when only the two range endpoints are labeled.
func (c *Chart) Markers() []float64 {
	return c.markers
}

// TickSpacing returns the on-grid spacing between successive gridlines,
// or zero when no tick plan was requested.
func (c *Chart) TickSpacing() float32 {
	return c.tickSpacing
}

// Heading renders a label for display, through the configured heading
// printer when one is set.
func (c *Chart) Heading(label Label) string {
	if c.headingPrinter != nil {
		return c.headingPrinter(label)
	}
	return label.String()
}

// MarkerLabel formats a marker value at a precision suited to the marker
// spacing.
func (c *Chart) MarkerLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', c.markerPrecision, 64)
}
