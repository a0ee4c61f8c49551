// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chartgrid

import (
	"sort"
	"strconv"
	"time"

	"github.com/bits-and-blooms/bitset"
)

type labelKind uint8

const (
	labelString labelKind = iota
	labelNumber
	labelTime
)

// Label is an opaque comparable axis key: a string, a number, or an
// instant in time. Labels are usable as map keys and compare equal only
// when built from equal inputs of the same flavor.
type Label struct {
	text string
	num  float64
	kind labelKind
}

// StringLabel returns a categorical label displaying as s.
func StringLabel(s string) Label {
	return Label{text: s}
}

// NumberLabel returns a numeric label positioned at v on a continuous
// axis.
func NumberLabel(v float64) Label {
	return Label{
		text: strconv.FormatFloat(v, 'g', -1, 64),
		num:  v,
		kind: labelNumber,
	}
}

// TimeLabel returns a label positioned at t's Unix time on a continuous
// axis.
func TimeLabel(t time.Time) Label {
	return Label{
		text: t.Format(time.RFC3339),
		num:  float64(t.Unix()),
		kind: labelTime,
	}
}

// String returns the label's display text. See also Config.HeadingPrinter
// for caller-supplied formatting.
func (l Label) String() string {
	return l.text
}

// Numeric returns the label's position on a continuous axis. The second
// return value is false for string labels, which have no such position.
func (l Label) Numeric() (float64, bool) {
	return l.num, l.kind != labelString
}

// Point is one (label, value) pair of a series. Missing marks a label
// that carries no data point, which is distinct from a zero value.
type Point struct {
	Label   Label
	Value   float64
	Missing bool
}

// Pt returns a data point at label with the given value.
func Pt(label Label, value float64) Point {
	return Point{Label: label, Value: value}
}

// Gap returns a missing data point at label.
func Gap(label Label) Point {
	return Point{Label: label, Missing: true}
}

// Series is one ordered sequence of (label, value) pairs as given by the
// caller.
type Series []Point

// normalSeries is a series after normalization: values keyed by label,
// plus a presence mask over the chart's label slots. A label absent from
// the map (bit clear in the mask) means "no data point".
type normalSeries struct {
	values  map[Label]float64
	present *bitset.BitSet
}

// normalize turns raw series input into the deduplicated label set, the
// per-series label→value mappings, and the maximum present value.
//
// The label set is the union of every series' labels in first-seen order
// across the series list. When every label is numeric (number or time
// flavored), the set is instead sorted ascending, so chronological and
// numeric axes need no pre-sorting by the caller. Missing points never
// contribute to the maximum; empty input yields an empty label set and a
// maximum of zero.
func normalize(list []Series) (labels []Label, series []normalSeries, maxValue float64) {
	series = make([]normalSeries, 0, len(list))
	seen := make(map[Label]struct{})
	allNumeric := true
	haveValue := false

	for _, s := range list {
		ns := normalSeries{values: make(map[Label]float64, len(s))}
		for _, pt := range s {
			if _, ok := seen[pt.Label]; !ok {
				seen[pt.Label] = struct{}{}
				labels = append(labels, pt.Label)
				if _, numeric := pt.Label.Numeric(); !numeric {
					allNumeric = false
				}
			}
			if pt.Missing {
				continue
			}
			ns.values[pt.Label] = pt.Value
			if !haveValue || pt.Value > maxValue {
				maxValue = pt.Value
				haveValue = true
			}
		}
		series = append(series, ns)
	}

	if allNumeric && len(labels) > 0 {
		sort.SliceStable(labels, func(i, j int) bool {
			return labels[i].num < labels[j].num
		})
	}

	// Presence masks are indexed by final slot order, so they can only
	// be filled in once the label set is settled.
	for i := range series {
		mask := bitset.New(uint(len(labels)))
		for slot, label := range labels {
			if _, ok := series[i].values[label]; ok {
				mask.Set(uint(slot))
			}
		}
		series[i].present = mask
	}

	return labels, series, maxValue
}
