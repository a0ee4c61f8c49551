// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chartgrid

// ValueTransform remaps a data value before it is positioned on the
// vertical axis, a logarithmic display for example. It is applied
// uniformly to the value and to both range endpoints, so it only ever
// affects a value's relative position, never the stored range itself.
type ValueTransform func(float64) (float64, error)

// apply runs the transform on v. If the transform is absent, returns an
// error, or panics, the untransformed value is substituted; failures
// never escape into the coordinate mapper.
func (t ValueTransform) apply(v float64) (out float64) {
	if t == nil {
		return v
	}
	out = v
	defer func() {
		if recover() != nil {
			out = v
		}
	}()
	tv, err := t(v)
	if err != nil {
		return v
	}
	return tv
}
