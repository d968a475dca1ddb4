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

// Package dense provides dense n-dimensional arrays of float64 values.
//
// An array is a shape and a set of per-dimension strides over a flat backing
// buffer. Strides are expressed in elements, not bytes, since there is a
// single fixed-width element type. Transposition is a view: it reverses the
// shape and strides and shares the buffer, so no data moves.
package dense

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"

	"github.com/bradtreece/numeric/internal/debug"
	"github.com/bradtreece/numeric/memory"
)

// Float64 is a dense n-dimensional array of float64 values.
type Float64 struct {
	refCount int64
	mem      memory.Allocator // nil when the backing data is caller-owned
	parent   *Float64         // set for views; the owner of the backing data
	data     []float64
	shape    []int64
	strides  []int64
	names    []string
}

// NewFloat64 returns a new zero-filled array of the given shape, allocated
// through mem. If names is nil, a slice of empty strings will be created.
//
// Release the array to return the buffer to the allocator.
func NewFloat64(mem memory.Allocator, shape []int64, names []string) *Float64 {
	n := int64(1)
	for _, v := range shape {
		n *= v
	}
	a := &Float64{
		refCount: 1,
		mem:      mem,
		data:     mem.Allocate(int(n)),
		shape:    slices.Clone(shape),
		strides:  rowMajorStrides(shape),
	}
	a.names = dimNames(names, len(shape))
	return a
}

// NewFloat64Data returns a new array over the provided caller-owned backing
// data. The data is never copied and never returned to an allocator.
// If strides is nil, row-major strides will be inferred.
// If names is nil, a slice of empty strings will be created.
//
// NewFloat64Data panics if the backing data cannot cover the extent described
// by the shape and strides.
func NewFloat64Data(data []float64, shape, strides []int64, names []string) *Float64 {
	if len(strides) == 0 {
		strides = rowMajorStrides(shape)
	}
	if len(strides) != len(shape) {
		panic(fmt.Errorf("numeric/dense: mismatched rank: %d strides for %d dimensions", len(strides), len(shape)))
	}
	if ext := extent(shape, strides); int64(len(data)) < ext {
		panic(fmt.Errorf("numeric/dense: backing data too short: have %d elements, shape needs %d", len(data), ext))
	}
	return &Float64{
		refCount: 1,
		data:     data,
		shape:    slices.Clone(shape),
		strides:  slices.Clone(strides),
		names:    dimNames(names, len(shape)),
	}
}

// Retain increases the reference count by 1.
// Retain may be called simultaneously from multiple goroutines.
func (a *Float64) Retain() {
	atomic.AddInt64(&a.refCount, 1)
}

// Release decreases the reference count by 1.
// Release may be called simultaneously from multiple goroutines.
// When the reference count goes to zero, allocator-owned buffers are freed
// and views release their parent.
func (a *Float64) Release() {
	debug.Assert(atomic.LoadInt64(&a.refCount) > 0, "too many releases")

	if atomic.AddInt64(&a.refCount, -1) == 0 {
		switch {
		case a.parent != nil:
			a.parent.Release()
			a.parent = nil
		case a.mem != nil:
			a.mem.Free(a.data)
		}
		a.data = nil
	}
}

// Len returns the number of elements in the array.
func (a *Float64) Len() int {
	o := int64(1)
	for _, v := range a.shape {
		o *= v
	}
	return int(o)
}

func (a *Float64) Shape() []int64       { return a.shape }
func (a *Float64) Strides() []int64     { return a.strides }
func (a *Float64) NumDims() int         { return len(a.shape) }
func (a *Float64) DimName(i int) string { return a.names[i] }
func (a *Float64) DimNames() []string   { return a.names }

// Values returns the flat backing buffer. For views the buffer is shared with
// the parent array and may cover more elements than the view addresses.
func (a *Float64) Values() []float64 { return a.data }

// Value returns the element at the given index.
func (a *Float64) Value(index []int64) float64 {
	return a.data[a.offset(index)]
}

// SetValue sets the element at the given index.
func (a *Float64) SetValue(v float64, index []int64) {
	a.data[a.offset(index)] = v
}

func (a *Float64) offset(index []int64) int64 {
	debug.Assert(len(index) == len(a.shape), "index rank mismatch")
	var offset int64
	for i, v := range index {
		offset += v * a.strides[i]
	}
	return offset
}

// T returns the transposed view of the array: the shape and strides are
// reversed and the backing buffer is shared. The view holds a reference on
// the receiver; Release it when done.
func (a *Float64) T() *Float64 {
	a.Retain()
	return &Float64{
		refCount: 1,
		parent:   a,
		data:     a.data,
		shape:    reversed(a.shape),
		strides:  reversed(a.strides),
		names:    reversedStrings(a.names),
	}
}

func (a *Float64) IsContiguous() bool {
	return a.IsRowMajor() || a.IsColMajor()
}

func (a *Float64) IsRowMajor() bool {
	return slices.Equal(rowMajorStrides(a.shape), a.strides)
}

func (a *Float64) IsColMajor() bool {
	return slices.Equal(colMajorStrides(a.shape), a.strides)
}

// Linspace returns a 1-D array of n uniformly spaced values covering
// [start, stop]. It panics if n < 2.
func Linspace(mem memory.Allocator, start, stop float64, n int) *Float64 {
	a := NewFloat64(mem, []int64{int64(n)}, nil)
	floats.Span(a.Values(), start, stop)
	return a
}

func rowMajorStrides(shape []int64) []int64 {
	rem := int64(1)
	for _, v := range shape {
		rem *= v
	}

	if rem == 0 {
		strides := make([]int64, len(shape))
		for i := range strides {
			strides[i] = 1
		}
		return strides
	}

	var strides []int64
	for _, v := range shape {
		rem /= v
		strides = append(strides, rem)
	}
	return strides
}

func colMajorStrides(shape []int64) []int64 {
	total := int64(1)
	for _, v := range shape {
		if v == 0 {
			strides := make([]int64, len(shape))
			for i := range strides {
				strides[i] = 1
			}
			return strides
		}
	}

	var strides []int64
	for _, v := range shape {
		strides = append(strides, total)
		total *= v
	}
	return strides
}

// extent is the number of backing elements needed to address every index of
// the given shape with the given strides.
func extent(shape, strides []int64) int64 {
	for _, v := range shape {
		if v == 0 {
			return 0
		}
	}
	ext := int64(1)
	for i, v := range shape {
		ext += (v - 1) * strides[i]
	}
	return ext
}

func dimNames(names []string, ndim int) []string {
	if names != nil {
		return slices.Clone(names)
	}
	return make([]string, ndim)
}

func reversed(v []int64) []int64 {
	out := make([]int64, len(v))
	for i, x := range v {
		out[len(v)-1-i] = x
	}
	return out
}

func reversedStrings(v []string) []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[len(v)-1-i] = x
	}
	return out
}
