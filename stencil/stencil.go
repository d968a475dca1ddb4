// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stencil

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/bradtreece/numeric/dense"
	"github.com/bradtreece/numeric/internal/debug"
)

// stencilWidth is the number of consecutive samples each output value draws on.
const stencilWidth = 5

// advisoryLen is the axis length below which a low-sample advisory is emitted:
// with fewer than twice the stencil width, at least half the samples
// contribute to every output value.
const advisoryLen = 2 * stencilWidth

// FirstDerivative computes the first derivative of uniformly sampled 1-D or
// 2-D data with the given step. The result is a freshly allocated array of the
// same shape as the input; the input is not modified. The derivative is
// accurate through 4th-order polynomials at every point, boundaries included.
func FirstDerivative(data *dense.Float64, step float64, opts ...Option) (*dense.Float64, error) {
	return derivative(data, step, d1Kernels, opts)
}

// SecondDerivative computes the second derivative of uniformly sampled 1-D or
// 2-D data with the given step. The result is a freshly allocated array of the
// same shape as the input; the input is not modified.
func SecondDerivative(data *dense.Float64, step float64, opts ...Option) (*dense.Float64, error) {
	return derivative(data, step, d2Kernels, opts)
}

func derivative(data *dense.Float64, step float64, ks kernelSet, opts []Option) (*dense.Float64, error) {
	cfg := newConfig(opts)
	if err := validate(data, step, cfg); err != nil {
		return nil, err
	}

	out := dense.NewFloat64(cfg.mem, data.Shape(), data.DimNames())

	// differentiate along the last axis of transposed views when the first
	// axis is requested; the views share the buffers, so no data moves and
	// out is filled in place
	src, dst := data, out
	if data.NumDims() == 2 && cfg.axis == AxisFirst {
		src = data.T()
		defer src.Release()
		dst = out.T()
		defer dst.Release()
	}

	n := src.Shape()[src.NumDims()-1]
	if n < advisoryLen && cfg.advise != nil {
		cfg.advise(Advisory{
			AxisLen:      n,
			StencilWidth: stencilWidth,
			Msg:          "at least half the samples contribute to the derivative at each point",
		})
	}

	if src.NumDims() == 1 {
		applyRow(rowView(dst, 0), rowView(src, 0), step, ks)
		return out, nil
	}

	rows := src.Shape()[0]
	if cfg.parallelism > 1 {
		var eg errgroup.Group
		eg.SetLimit(cfg.parallelism)
		for j := int64(0); j < rows; j++ {
			j := j
			eg.Go(func() error {
				applyRow(rowView(dst, j), rowView(src, j), step, ks)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			out.Release()
			return nil, err
		}
		return out, nil
	}

	for j := int64(0); j < rows; j++ {
		applyRow(rowView(dst, j), rowView(src, j), step, ks)
	}
	return out, nil
}

// validate applies the hard error checks, in order, before any computation.
func validate(data *dense.Float64, step float64, cfg *config) error {
	if data == nil || data.Values() == nil {
		return fmt.Errorf("%w: nil or released array", ErrType)
	}

	ndim := data.NumDims()
	if ndim != 1 && ndim != 2 {
		return fmt.Errorf("%w: got %d dimensions", ErrShape, ndim)
	}

	switch cfg.axis {
	case AxisLast:
	case AxisFirst:
		if ndim != 2 {
			return fmt.Errorf("%w: axis %q requires 2-dimensional data", ErrInvalidAxis, cfg.axis)
		}
	default:
		return fmt.Errorf("%w: %d", ErrInvalidAxis, int(cfg.axis))
	}

	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return fmt.Errorf("%w: got %v", ErrStep, step)
	}

	n := data.Shape()[ndim-1]
	if ndim == 2 && cfg.axis == AxisFirst {
		n = data.Shape()[0]
	}
	if n < stencilWidth {
		return fmt.Errorf("%w: axis %q has %d samples", ErrInsufficientData, cfg.axis, n)
	}
	return nil
}

// vector is one logical row of an array: a strided window over the backing
// buffer.
type vector struct {
	data   []float64
	offset int64
	stride int64
	n      int64
}

func (v vector) at(i int64) float64     { return v.data[v.offset+i*v.stride] }
func (v vector) set(i int64, x float64) { v.data[v.offset+i*v.stride] = x }

// rowView returns row j of a rank-1 or rank-2 array. For rank 1 there is a
// single row, the array itself.
func rowView(a *dense.Float64, j int64) vector {
	if a.NumDims() == 1 {
		debug.Assert(j == 0, "rank-1 arrays have a single row")
		return vector{data: a.Values(), stride: a.Strides()[0], n: a.Shape()[0]}
	}
	return vector{
		data:   a.Values(),
		offset: j * a.Strides()[0],
		stride: a.Strides()[1],
		n:      a.Shape()[1],
	}
}

// applyRow fills one output row from one input row of n >= 5 samples: a
// forward and a near-forward kernel over the first five samples, centered
// kernels across the interior, and a near-backward and a backward kernel over
// the last five samples.
func applyRow(dst, src vector, h float64, ks kernelSet) {
	debug.Assert(src.n >= stencilWidth, "row shorter than the stencil")
	debug.Assert(dst.n == src.n, "output row length mismatch")

	n := src.n
	dst.set(0, ks.forward(src.at(0), src.at(1), src.at(2), src.at(3), src.at(4), h))
	dst.set(1, ks.nearForward(src.at(0), src.at(1), src.at(2), src.at(3), src.at(4), h))
	for i := int64(2); i < n-2; i++ {
		dst.set(i, ks.centered(src.at(i-2), src.at(i-1), src.at(i), src.at(i+1), src.at(i+2), h))
	}
	dst.set(n-2, ks.nearBackward(src.at(n-5), src.at(n-4), src.at(n-3), src.at(n-2), src.at(n-1), h))
	dst.set(n-1, ks.backward(src.at(n-5), src.at(n-4), src.at(n-3), src.at(n-2), src.at(n-1), h))
}
