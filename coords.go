// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chartgrid

import "fmt"

// FractionOf converts a data value into its normalized position between
// the chart's lowest and highest bounds: 0 at the lowest, 1 at the
// highest. The value transform, when configured, is applied to the value
// and to both endpoints before the ratio is taken. If the transformed
// endpoints collapse to a zero-width span, the untransformed values are
// used instead so the ratio stays defined.
func (c *Chart) FractionOf(value float64) float64 {
	lo := c.transform.apply(c.lowest)
	hi := c.transform.apply(c.highest)
	v := c.transform.apply(value)
	if hi-lo == 0 {
		lo, hi, v = c.lowest, c.highest, value
	}
	return (v - lo) / (hi - lo)
}

// HeightOf converts a data value into a vertical extent within the grid,
// rounded to the nearest unit. With a downward grid the result is flipped
// so that larger values plot lower.
func (c *Chart) HeightOf(value float64) float32 {
	h := round(c.grid.Ht * float32(c.FractionOf(value)))
	if c.grid.Downward {
		h = c.grid.Ht - h
	}
	return h
}

// XOffsetOf converts a label into an absolute horizontal offset. In
// normal mode the offset is purely positional: one equally sized slot per
// label, addressed by index. In time mode the label's numeric value is
// interpolated linearly between the smallest and largest label values;
// string labels fail with ErrTimeAxisLabel.
func (c *Chart) XOffsetOf(label Label, index int) (float32, error) {
	if c.xmode == XAxisTime {
		v, numeric := label.Numeric()
		if !numeric {
			return 0, fmt.Errorf("%w: label %q", ErrTimeAxisLabel, label.String())
		}
		return c.grid.X + c.barWidth/2 + float32((v-c.minLabel)*c.xScale), nil
	}
	return c.grid.X + float32(index)*c.slotWidth + 1, nil
}

// SlotWidth returns the width of one categorical label slot.
func (c *Chart) SlotWidth() float32 {
	return c.slotWidth
}

// BarWidth returns the width renderers should draw a bar at, half a
// label slot.
func (c *Chart) BarWidth() float32 {
	return c.barWidth
}
