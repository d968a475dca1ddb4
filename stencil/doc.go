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

// Package stencil computes first and second derivatives of uniformly sampled
// 1-D and 2-D data using five-point finite-difference stencils.
//
// Interior points use a centered stencil. The two points nearest each edge use
// one-sided and asymmetric stencils built from the same five samples, so the
// order of accuracy is preserved without extrapolating beyond the data. All
// twelve kernels are the exact derivatives of the degree-4 interpolant through
// their five samples: both derivatives are reproduced without truncation error
// for polynomials up to degree 4.
//
// Derivatives of 2-D data are taken along the last axis by default; WithAxis
// selects the first axis instead, in which case the computation runs through
// transposed views of the input and output with no data movement. Rows are
// independent of one another and may be fanned out across goroutines with
// WithParallelism.
package stencil
