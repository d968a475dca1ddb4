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
	"fmt"
	"log"

	"github.com/bradtreece/numeric/dense"
	"github.com/bradtreece/numeric/stencil"
)

// This example differentiates a linear ramp sampled with unit spacing: the
// slope is 1 at every point, boundaries included.
func ExampleFirstDerivative() {
	data := dense.NewFloat64Data([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, []int64{10}, nil, nil)
	defer data.Release()

	deriv, err := stencil.FirstDerivative(data, 1.0)
	if err != nil {
		log.Fatal(err)
	}
	defer deriv.Release()

	fmt.Println(deriv.Values())

	// Output:
	// [1 1 1 1 1 1 1 1 1 1]
}

// This example recovers the constant curvature of a parabola, f(x) = x².
func ExampleSecondDerivative() {
	data := dense.NewFloat64Data([]float64{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}, []int64{10}, nil, nil)
	defer data.Release()

	deriv, err := stencil.SecondDerivative(data, 1.0)
	if err != nil {
		log.Fatal(err)
	}
	defer deriv.Release()

	fmt.Println(deriv.Values())

	// Output:
	// [2 2 2 2 2 2 2 2 2 2]
}
