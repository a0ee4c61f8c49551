package chartgrid_test

import (
	"testing"

	chartgrid "github.com/kofi-q/chartgrid-go"
	"github.com/stretchr/testify/require"
)

func TestExplicitMaximum(t *testing.T) {
	chart, err := chartgrid.New(
		chartgrid.Config{At: at(0, 0), MaximumValue: fptr(40)},
		chartgrid.Series{chartgrid.Pt(chartgrid.StringLabel("a"), 7)},
	)
	require.NoError(t, err)
	require.Equal(t, 0.0, chart.Lowest())
	require.Equal(t, 40.0, chart.Highest())
}

func TestExplicitMaximumEqualToMinimumBumps(t *testing.T) {
	chart, err := chartgrid.New(
		chartgrid.Config{At: at(0, 0), MinimumValue: 10, MaximumValue: fptr(10)},
	)
	require.NoError(t, err)
	require.Equal(t, 10.0, chart.Lowest())
	require.Equal(t, 11.0, chart.Highest())
}

func TestAutoscaleRoundsToMagnitude(t *testing.T) {
	// Spread 173 pads to 176.46 with the default 2% margin; the leading
	// digit's magnitude is 100, so the round-up works in tens: 180.
	chart, err := chartgrid.New(
		chartgrid.Config{At: at(0, 0)},
		chartgrid.Series{chartgrid.Pt(chartgrid.StringLabel("a"), 173)},
	)
	require.NoError(t, err)
	require.Equal(t, 0.0, chart.Lowest())
	require.Equal(t, 180.0, chart.Highest())
}

func TestAutoscaleLowersBaselineAboveZero(t *testing.T) {
	chart, err := chartgrid.New(
		chartgrid.Config{At: at(0, 0), MinimumValue: 100},
		chartgrid.Series{chartgrid.Pt(chartgrid.StringLabel("a"), 200)},
	)
	require.NoError(t, err)
	// Breathing room below the data applies only when the baseline is
	// not already zero.
	require.Equal(t, 98.0, chart.Lowest())
	require.Greater(t, chart.Highest(), 200.0)
}

func TestAutoscaleFlatDataStaysDefined(t *testing.T) {
	// All values equal to the baseline would produce a zero-width
	// spread; the scaler clamps it instead of taking log10(0).
	chart, err := chartgrid.New(
		chartgrid.Config{At: at(0, 0)},
		chartgrid.Series{
			chartgrid.Pt(chartgrid.StringLabel("a"), 0),
			chartgrid.Pt(chartgrid.StringLabel("b"), 0),
		},
	)
	require.NoError(t, err)
	require.Equal(t, 0.0, chart.Lowest())
	require.Equal(t, 1.0, chart.Highest())
}

func TestScaleNeverDegenerate(t *testing.T) {
	cases := []struct {
		name string
		max  float64
		cfg  chartgrid.Config
	}{
		{"zero data", 0, chartgrid.Config{At: at(0, 0)}},
		{"tiny data", 0.004, chartgrid.Config{At: at(0, 0)}},
		{"negative data", -5, chartgrid.Config{At: at(0, 0)}},
		{"data at baseline", 50, chartgrid.Config{At: at(0, 0), MinimumValue: 50}},
		{"explicit max below min", 3, chartgrid.Config{At: at(0, 0), MinimumValue: 5, MaximumValue: fptr(2)}},
		{"large data", 9.7e8, chartgrid.Config{At: at(0, 0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chart, err := chartgrid.New(
				tc.cfg,
				chartgrid.Series{chartgrid.Pt(chartgrid.StringLabel("a"), tc.max)},
			)
			require.NoError(t, err)
			require.Greater(t, chart.Highest(), chart.Lowest())
		})
	}
}
