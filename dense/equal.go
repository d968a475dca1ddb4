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

package dense

import (
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Equal reports whether two arrays have the same shape and exactly equal
// elements. The layouts need not match: a row-major array and its
// double-transpose compare equal element by element.
func Equal(a, b *Float64) bool {
	return equal(a, b, func(x, y float64) bool { return x == y })
}

// ApproxEqual reports whether two arrays have the same shape and elements
// equal within the given absolute-or-relative tolerance.
func ApproxEqual(a, b *Float64, tol float64) bool {
	return equal(a, b, func(x, y float64) bool {
		return scalar.EqualWithinAbsOrRel(x, y, tol, tol)
	})
}

func equal(a, b *Float64, eq func(x, y float64) bool) bool {
	if !slices.Equal(a.shape, b.shape) {
		return false
	}
	n := a.Len()
	if n == 0 {
		return true
	}

	// contiguous row-major arrays are compared directly over the buffer
	if a.IsRowMajor() && b.IsRowMajor() {
		av, bv := a.data[:n], b.data[:n]
		if floats.Equal(av, bv) {
			return true
		}
		for i := range av {
			if !eq(av[i], bv[i]) {
				return false
			}
		}
		return true
	}

	index := make([]int64, a.NumDims())
	for {
		if !eq(a.Value(index), b.Value(index)) {
			return false
		}
		if !nextIndex(index, a.shape) {
			return true
		}
	}
}

// nextIndex advances a row-major multi-index, returning false when the index
// wraps past the end of the shape.
func nextIndex(index, shape []int64) bool {
	for i := len(index) - 1; i >= 0; i-- {
		index[i]++
		if index[i] < shape[i] {
			return true
		}
		index[i] = 0
	}
	return false
}
