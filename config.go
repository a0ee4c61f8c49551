// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chartgrid

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type yamlConfig struct {
	At              []float32 `yaml:"at"`
	Width           float32   `yaml:"width"`
	Height          float32   `yaml:"height"`
	MinimumValue    float64   `yaml:"minimum_value"`
	MaximumValue    *float64  `yaml:"maximum_value"`
	AutoscaleMargin float64   `yaml:"autoscale_margin"`
	AutoTicks       bool      `yaml:"autoticks"`
	NiceMarkers     bool      `yaml:"nice_markers"`
	MarkerValues    []float64 `yaml:"marker_values"`
	Downward        bool      `yaml:"downward"`
	XAxis           string    `yaml:"xaxis"`
}

// ParseConfig decodes a YAML option bag into a Config. Only data options
// are representable; function-typed options (Transform, HeadingPrinter,
// Plotter) remain code-only. An absent "at" key leaves Config.At nil, so
// New will still reject the configuration with ErrMissingOrigin.
func ParseConfig(in []byte) (Config, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(in, &raw); err != nil {
		return Config{}, fmt.Errorf("chartgrid: parsing config: %w", err)
	}

	cfg := Config{
		Width:           raw.Width,
		Height:          raw.Height,
		MinimumValue:    raw.MinimumValue,
		MaximumValue:    raw.MaximumValue,
		AutoscaleMargin: raw.AutoscaleMargin,
		AutoTicks:       raw.AutoTicks,
		NiceMarkers:     raw.NiceMarkers,
		MarkerValues:    raw.MarkerValues,
		Downward:        raw.Downward,
		XAxis:           raw.XAxis,
	}
	if raw.At != nil {
		if len(raw.At) != 2 {
			return Config{}, fmt.Errorf("chartgrid: config \"at\" must be a two-element [x, y] list, got %d elements", len(raw.At))
		}
		cfg.At = &PointType{X: raw.At[0], Y: raw.At[1]}
	}
	return cfg, nil
}
