// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chartgrid

import "math"

// scaleAxis computes the working numeric range [lowest, highest] the
// chart plots against.
//
// An explicit maximum is taken as-is, bumped by one only if it would
// produce an empty or inverted range. Otherwise the maximum is
// auto-scaled: the data spread is padded by the autoscale margin (below
// the data too, but only when the baseline is above zero) and the padded
// spread is rounded up at one order of magnitude below its leading digit,
// so a spread of 173 lands on 180 rather than 200.
//
// The result always satisfies highest > lowest.
func scaleAxis(maxValue float64, cfg *Config) (lowest, highest float64) {
	lowest = cfg.MinimumValue

	if cfg.MaximumValue != nil {
		highest = *cfg.MaximumValue
		if highest <= lowest {
			highest = lowest + 1
		}
		return lowest, highest
	}

	margin := cfg.AutoscaleMargin * (maxValue - lowest)
	if lowest > 0 {
		lowest -= margin
	}
	padded := maxValue + margin

	delta := padded - lowest
	if delta <= 0 {
		// Flat or empty data. Clamp to a minimum positive span so the
		// magnitude step below stays defined.
		delta = 1
	}

	magnitude := floor(math.Log10(delta)) - 1
	pow := math.Pow(10, magnitude)
	normalized := ceil(delta / pow)
	normalized = ceil(normalized * pow)

	highest = floor(lowest + normalized)
	if highest <= lowest {
		highest = lowest + 1
	}
	return lowest, highest
}
