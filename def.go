// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chartgrid

import "errors"

// Default grid extents and autoscale margin, used when the corresponding
// Config fields are left at their zero values.
const (
	DefaultWidth           = 500
	DefaultHeight          = 200
	DefaultAutoscaleMargin = 0.02
)

const (
	// XAxisNormal addresses the horizontal axis categorically: one
	// equally sized slot per label, in label-set order, independent of
	// the label's value.
	XAxisNormal = "normal"

	// XAxisTime addresses the horizontal axis continuously: points are
	// placed by linear interpolation of the label's numeric value, so
	// unevenly spaced labels land at their correct relative positions.
	XAxisTime = "time"
)

var (
	// ErrMissingOrigin is returned by New when no origin point is
	// supplied in the configuration.
	ErrMissingOrigin = errors.New("chartgrid: no origin point supplied")

	// ErrNoPlotter is returned by Chart.Plot when the chart was composed
	// without a concrete plot strategy.
	ErrNoPlotter = errors.New("chartgrid: no plot strategy attached")

	// ErrAxisMode is returned by New for an unrecognized x-axis mode.
	ErrAxisMode = errors.New("chartgrid: invalid x-axis mode")

	// ErrTimeAxisLabel signals use of a non-numeric label on a time
	// axis, which is a contract violation by the integrator.
	ErrTimeAxisLabel = errors.New("chartgrid: time axis requires numeric labels")
)

// SizeType fields Wd and Ht specify the horizontal and vertical extents of
// the plotting area.
type SizeType struct {
	Wd, Ht float32
}

// PointType fields X and Y specify the horizontal and vertical coordinates
// of a point, typically the grid origin.
type PointType struct {
	X, Y float32
}

// XY returns the X and Y components of the receiver point.
func (p PointType) XY() (float32, float32) {
	return p.X, p.Y
}

// Grid is the rectangular plotting area data values are positioned
// against. Downward flips the vertical axis so that increasing values map
// toward the bottom edge instead of the top.
type Grid struct {
	PointType
	SizeType
	Downward bool
}

// Right returns the horizontal coordinate of the grid's right edge.
func (g Grid) Right() float32 {
	return g.X + g.Wd
}

// Bottom returns the vertical coordinate of the grid's bottom edge.
func (g Grid) Bottom() float32 {
	return g.Y + g.Ht
}

// Config carries every recognized chart option. The zero value of a field
// selects its stated default; At is the one required field.
type Config struct {
	// At is the grid origin. Required; New fails with ErrMissingOrigin
	// when nil. The zero point is a valid origin.
	At *PointType

	// Width and Height are the grid extents, defaulting to 500×200.
	Width  float32
	Height float32

	// MinimumValue is the lower bound of the plotted range. Default 0.
	MinimumValue float64

	// MaximumValue, when non-nil, fixes the upper bound of the plotted
	// range. When nil the upper bound is auto-scaled from the data.
	MaximumValue *float64

	// AutoscaleMargin is the fraction of the data spread added as
	// breathing room during auto-scaling. Zero selects the default 0.02.
	AutoscaleMargin float64

	// AutoTicks enables automatic selection of an evenly dividing tick
	// count and the resulting marker values.
	AutoTicks bool

	// NiceMarkers selects nice-number tickmarks (Tickmarks) instead of
	// the evenly dividing tick plan. Ignored when MarkerValues is set.
	NiceMarkers bool

	// MarkerValues overrides any computed markers with an explicit list.
	MarkerValues []float64

	// Transform optionally remaps values before vertical positioning.
	Transform ValueTransform

	// Downward flips the vertical axis of the grid.
	Downward bool

	// XAxis is XAxisNormal or XAxisTime. Empty selects XAxisNormal.
	XAxis string

	// HeadingPrinter optionally renders a label for display. The default
	// prints the label's own text.
	HeadingPrinter func(Label) string

	// Plotter is the injected drawing strategy invoked by Chart.Plot.
	Plotter Plotter
}
