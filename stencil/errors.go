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
	"errors"
	"fmt"
)

// Hard validation failures. All are raised before any computation begins and
// no partial result is ever produced; match them with errors.Is.
var (
	// ErrType reports an input that is not a usable dense array, such as a
	// nil pointer or an array whose buffer was already released.
	ErrType = errors.New("numeric/stencil: input is not a dense numeric array")

	// ErrShape reports an input whose rank is neither 1 nor 2.
	ErrShape = errors.New("numeric/stencil: input must be 1- or 2-dimensional")

	// ErrInvalidAxis reports an axis outside {AxisLast, AxisFirst}, or
	// AxisFirst requested on 1-dimensional data.
	ErrInvalidAxis = errors.New("numeric/stencil: invalid axis")

	// ErrInsufficientData reports fewer than five samples along the
	// differentiation axis; a five-point stencil cannot be constructed.
	ErrInsufficientData = errors.New("numeric/stencil: cannot apply a five-point stencil to fewer than 5 samples")

	// ErrStep reports a step size that is not a positive finite number.
	ErrStep = errors.New("numeric/stencil: step must be positive and finite")
)

// Advisory is a non-fatal diagnostic delivered through WithAdvisoryHandler.
// Computation proceeds normally after an advisory.
type Advisory struct {
	// AxisLen is the number of samples along the differentiation axis.
	AxisLen int64
	// StencilWidth is the number of samples each output value draws on.
	StencilWidth int
	Msg          string
}

func (a Advisory) String() string {
	return fmt.Sprintf("numeric/stencil: advisory: %s (axis length %d, stencil width %d)",
		a.Msg, a.AxisLen, a.StencilWidth)
}
