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

package stencil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradtreece/numeric/dense"
	"github.com/bradtreece/numeric/memory"
	"github.com/bradtreece/numeric/stencil"
)

// sample fills a fresh 1-D array with f evaluated at x0, x0+h, ...
func sample(mem memory.Allocator, f func(float64) float64, x0, h float64, n int) *dense.Float64 {
	arr := dense.NewFloat64(mem, []int64{int64(n)}, nil)
	vs := arr.Values()
	for i := range vs {
		vs[i] = f(x0 + float64(i)*h)
	}
	return arr
}

func TestFirstDerivativeLinearSequence(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	data := dense.NewFloat64Data([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, []int64{10}, nil, nil)
	defer data.Release()

	out, err := stencil.FirstDerivative(data, 1.0, stencil.WithAllocator(mem))
	require.NoError(t, err)
	defer out.Release()

	// integer-weighted sums over an integer ramp divide exactly
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, out.Values())
	assert.Equal(t, data.Shape(), out.Shape())
}

func TestDerivativesOfConstant(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	data := sample(mem, func(float64) float64 { return 4.25 }, 0, 0.1, 17)
	defer data.Release()

	d1, err := stencil.FirstDerivative(data, 0.1, stencil.WithAllocator(mem))
	require.NoError(t, err)
	defer d1.Release()

	d2, err := stencil.SecondDerivative(data, 0.1, stencil.WithAllocator(mem))
	require.NoError(t, err)
	defer d2.Release()

	for i, v := range d1.Values() {
		assert.Zerof(t, v, "d1[%d]", i)
	}
	for i, v := range d2.Values() {
		assert.Zerof(t, v, "d2[%d]", i)
	}
}

func TestDerivativesOfQuadratic(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	const (
		a, b, c = 2.5, -1.5, 0.75
		x0, h   = -3.0, 0.25
		n       = 40
	)

	data := sample(mem, func(x float64) float64 { return a + b*x + c*x*x }, x0, h, n)
	defer data.Release()

	d1, err := stencil.FirstDerivative(data, h, stencil.WithAllocator(mem))
	require.NoError(t, err)
	defer d1.Release()

	d2, err := stencil.SecondDerivative(data, h, stencil.WithAllocator(mem))
	require.NoError(t, err)
	defer d2.Release()

	for i, v := range d1.Values() {
		x := x0 + float64(i)*h
		assert.InDeltaf(t, b+2*c*x, v, 1e-10, "d1[%d]", i)
	}
	for i, v := range d2.Values() {
		assert.InDeltaf(t, 2*c, v, 1e-10, "d2[%d]", i)
	}
}

func TestDerivativesOfSine(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	const n = 101
	h := 2 * math.Pi / (n - 1)

	data := sample(mem, math.Sin, 0, h, n)
	defer data.Release()

	d1, err := stencil.FirstDerivative(data, h, stencil.WithAllocator(mem))
	require.NoError(t, err)
	defer d1.Release()

	d2, err := stencil.SecondDerivative(data, h, stencil.WithAllocator(mem))
	require.NoError(t, err)
	defer d2.Release()

	for i := 0; i < n; i++ {
		x := float64(i) * h
		assert.InDeltaf(t, math.Cos(x), d1.Values()[i], 1e-4, "d1[%d]", i)
		assert.InDeltaf(t, -math.Sin(x), d2.Values()[i], 1e-2, "d2[%d]", i)
	}
}

func TestRowsAreIndependent(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	// row 0 is a ramp of slope 2, row 1 a ramp of slope -5; each output row
	// must only reflect its own input row
	grid := dense.NewFloat64(mem, []int64{2, 12}, nil)
	defer grid.Release()
	for i := int64(0); i < 12; i++ {
		grid.SetValue(2*float64(i), []int64{0, i})
		grid.SetValue(-5*float64(i), []int64{1, i})
	}

	out, err := stencil.FirstDerivative(grid, 1.0, stencil.WithAllocator(mem))
	require.NoError(t, err)
	defer out.Release()

	assert.Equal(t, []int64{2, 12}, out.Shape())
	for i := int64(0); i < 12; i++ {
		assert.InDeltaf(t, 2, out.Value([]int64{0, i}), 1e-12, "row0[%d]", i)
		assert.InDeltaf(t, -5, out.Value([]int64{1, i}), 1e-12, "row1[%d]", i)
	}
}

func TestAxisFirst(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	// values vary down the columns: v(i,j) = 3i, so d/di == 3 everywhere
	grid := dense.NewFloat64(mem, []int64{7, 4}, nil)
	defer grid.Release()
	for i := int64(0); i < 7; i++ {
		for j := int64(0); j < 4; j++ {
			grid.SetValue(3*float64(i), []int64{i, j})
		}
	}

	out, err := stencil.FirstDerivative(grid, 1.0,
		stencil.WithAxis(stencil.AxisFirst), stencil.WithAllocator(mem))
	require.NoError(t, err)
	defer out.Release()

	assert.Equal(t, []int64{7, 4}, out.Shape())
	assert.True(t, out.IsRowMajor())
	for i := int64(0); i < 7; i++ {
		for j := int64(0); j < 4; j++ {
			assert.InDeltaf(t, 3, out.Value([]int64{i, j}), 1e-12, "out[%d,%d]", i, j)
			assert.Equalf(t, 3*float64(i), grid.Value([]int64{i, j}), "input modified at [%d,%d]", i, j)
		}
	}
}

func TestTransposeConsistency(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	// an arbitrary smooth grid
	grid := dense.NewFloat64(mem, []int64{6, 12}, nil)
	defer grid.Release()
	for i := int64(0); i < 6; i++ {
		for j := int64(0); j < 12; j++ {
			x, y := float64(i)*0.2, float64(j)*0.1
			grid.SetValue(math.Sin(x)*math.Exp(-y)+x*y, []int64{i, j})
		}
	}

	first, err := stencil.FirstDerivative(grid, 0.2,
		stencil.WithAxis(stencil.AxisFirst), stencil.WithAllocator(mem))
	require.NoError(t, err)
	defer first.Release()

	tr := grid.T()
	defer tr.Release()

	last, err := stencil.FirstDerivative(tr, 0.2, stencil.WithAllocator(mem))
	require.NoError(t, err)
	defer last.Release()

	lastT := last.T()
	defer lastT.Release()

	// the two paths walk the same samples in the same order, so the results
	// are identical, not merely close
	assert.True(t, dense.Equal(first, lastT))
}

func TestParallelMatchesSerial(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	grid := dense.NewFloat64(mem, []int64{8, 64}, nil)
	defer grid.Release()
	for i := int64(0); i < 8; i++ {
		for j := int64(0); j < 64; j++ {
			grid.SetValue(math.Cos(float64(i)+0.05*float64(j)), []int64{i, j})
		}
	}

	serial, err := stencil.SecondDerivative(grid, 0.05, stencil.WithAllocator(mem))
	require.NoError(t, err)
	defer serial.Release()

	parallel, err := stencil.SecondDerivative(grid, 0.05,
		stencil.WithAllocator(mem), stencil.WithParallelism(4))
	require.NoError(t, err)
	defer parallel.Release()

	assert.True(t, dense.Equal(serial, parallel))
}

func TestValidationErrors(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	short := dense.NewFloat64Data([]float64{1, 2, 3, 4}, []int64{4}, nil, nil)
	defer short.Release()

	line := dense.NewFloat64Data([]float64{1, 2, 3, 4, 5, 6}, []int64{6}, nil, nil)
	defer line.Release()

	cube := dense.NewFloat64Data(make([]float64, 125), []int64{5, 5, 5}, nil, nil)
	defer cube.Release()

	shortRows := dense.NewFloat64Data(make([]float64, 15), []int64{3, 5}, nil, nil)
	defer shortRows.Release()

	released := dense.NewFloat64(memory.NewGoAllocator(), []int64{8}, nil)
	released.Release()

	for _, tc := range []struct {
		name string
		data *dense.Float64
		step float64
		opts []stencil.Option
		err  error
	}{
		{name: "nil-input", data: nil, step: 1, err: stencil.ErrType},
		{name: "released-input", data: released, step: 1, err: stencil.ErrType},
		{name: "rank-3", data: cube, step: 1, err: stencil.ErrShape},
		{name: "first-axis-on-1d", data: line, step: 1,
			opts: []stencil.Option{stencil.WithAxis(stencil.AxisFirst)}, err: stencil.ErrInvalidAxis},
		{name: "unknown-axis", data: line, step: 1,
			opts: []stencil.Option{stencil.WithAxis(stencil.Axis(7))}, err: stencil.ErrInvalidAxis},
		{name: "zero-step", data: line, step: 0, err: stencil.ErrStep},
		{name: "negative-step", data: line, step: -0.5, err: stencil.ErrStep},
		{name: "nan-step", data: line, step: math.NaN(), err: stencil.ErrStep},
		{name: "too-few-samples", data: short, step: 1, err: stencil.ErrInsufficientData},
		{name: "too-few-rows-on-first-axis", data: shortRows, step: 1,
			opts: []stencil.Option{stencil.WithAxis(stencil.AxisFirst)}, err: stencil.ErrInsufficientData},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opts := append([]stencil.Option{stencil.WithAllocator(mem)}, tc.opts...)

			out, err := stencil.FirstDerivative(tc.data, tc.step, opts...)
			require.ErrorIs(t, err, tc.err)
			assert.Nil(t, out)

			out, err = stencil.SecondDerivative(tc.data, tc.step, opts...)
			require.ErrorIs(t, err, tc.err)
			assert.Nil(t, out)
		})
	}
}

func TestLowSampleAdvisory(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	data := dense.NewFloat64Data([]float64{0, 1, 2, 3, 4, 5, 6}, []int64{7}, nil, nil)
	defer data.Release()

	var advisories []stencil.Advisory
	out, err := stencil.FirstDerivative(data, 1.0,
		stencil.WithAllocator(mem),
		stencil.WithAdvisoryHandler(func(a stencil.Advisory) { advisories = append(advisories, a) }))
	require.NoError(t, err)
	defer out.Release()

	// the advisory is delivered alongside a valid result
	require.Len(t, advisories, 1)
	assert.Equal(t, int64(7), advisories[0].AxisLen)
	assert.Equal(t, 5, advisories[0].StencilWidth)
	assert.NotEmpty(t, advisories[0].String())
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1, 1}, out.Values())
}

func TestNoAdvisoryAtTenSamples(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	data := dense.NewFloat64Data(make([]float64, 10), []int64{10}, nil, nil)
	defer data.Release()

	called := 0
	out, err := stencil.FirstDerivative(data, 1.0,
		stencil.WithAllocator(mem),
		stencil.WithAdvisoryHandler(func(stencil.Advisory) { called++ }))
	require.NoError(t, err)
	defer out.Release()

	assert.Zero(t, called)
}

func TestNoAdvisoryOnHardFailure(t *testing.T) {
	data := dense.NewFloat64Data([]float64{1, 2, 3}, []int64{3}, nil, nil)
	defer data.Release()

	called := 0
	_, err := stencil.FirstDerivative(data, 1.0,
		stencil.WithAdvisoryHandler(func(stencil.Advisory) { called++ }))
	require.ErrorIs(t, err, stencil.ErrInsufficientData)
	assert.Zero(t, called)
}
