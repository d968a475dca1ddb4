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
	"github.com/bradtreece/numeric/memory"
)

// Axis selects the dimension of a 2-D array along which the derivative is
// taken. For 1-D data only AxisLast is valid.
type Axis int

const (
	// AxisLast differentiates along the last (innermost) dimension.
	AxisLast Axis = iota
	// AxisFirst differentiates along the first dimension; 2-D data only.
	AxisFirst
)

func (a Axis) String() string {
	switch a {
	case AxisLast:
		return "last"
	case AxisFirst:
		return "first"
	default:
		return "invalid"
	}
}

type config struct {
	axis        Axis
	mem         memory.Allocator
	advise      func(Advisory)
	parallelism int
}

// Option configures a derivative computation.
type Option func(*config)

func newConfig(opts []Option) *config {
	cfg := &config{
		axis: AxisLast,
		mem:  memory.DefaultAllocator,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithAxis selects the axis along which the derivative is taken.
// The default is AxisLast.
func WithAxis(axis Axis) Option {
	return func(cfg *config) {
		cfg.axis = axis
	}
}

// WithAllocator specifies the allocator used for the output array.
func WithAllocator(mem memory.Allocator) Option {
	return func(cfg *config) {
		cfg.mem = mem
	}
}

// WithAdvisoryHandler registers a handler for non-fatal advisories, such as a
// low sample count relative to the stencil width. Advisories are dropped when
// no handler is registered.
func WithAdvisoryHandler(fn func(Advisory)) Option {
	return func(cfg *config) {
		cfg.advise = fn
	}
}

// WithParallelism fans the rows of a 2-D computation out across at most n
// goroutines. Rows are independent, so the result is identical to the serial
// one. Values of n below 2 keep the computation serial.
func WithParallelism(n int) Option {
	return func(cfg *config) {
		cfg.parallelism = n
	}
}
