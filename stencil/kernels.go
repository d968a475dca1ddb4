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

// A kernel computes one derivative value from five consecutive samples
// p0..p4 and the step h. Which of the five samples the value belongs to
// depends on the kernel: forward evaluates at p0, nearForward at p1,
// centered at p2, nearBackward at p3 and backward at p4.
type kernel func(p0, p1, p2, p3, p4, h float64) float64

// kernelSet groups the five kernels of one derivative order by boundary
// position. The dispatcher picks a member from the output index alone.
type kernelSet struct {
	forward      kernel
	nearForward  kernel
	centered     kernel
	nearBackward kernel
	backward     kernel
}

var d1Kernels = kernelSet{
	forward:      d1Forward,
	nearForward:  d1NearForward,
	centered:     d1Centered,
	nearBackward: d1NearBackward,
	backward:     d1Backward,
}

var d2Kernels = kernelSet{
	forward:      d2Forward,
	nearForward:  d2NearForward,
	centered:     d2Centered,
	nearBackward: d2NearBackward,
	backward:     d2Backward,
}

// first derivative, evaluated at p2
func d1Centered(p0, p1, p2, p3, p4, h float64) float64 {
	return (8*(p3-p1) - (p4 - p0)) / (12 * h)
}

// first derivative, evaluated at p1
func d1NearForward(p0, p1, p2, p3, p4, h float64) float64 {
	return (-10*p1 + 18*p2 - 3*p0 - 6*p3 + p4) / (12 * h)
}

// first derivative, evaluated at p3
func d1NearBackward(p0, p1, p2, p3, p4, h float64) float64 {
	return (10*p3 + 3*p4 - 18*p2 + 6*p1 - p0) / (12 * h)
}

// first derivative, evaluated at p0
func d1Forward(p0, p1, p2, p3, p4, h float64) float64 {
	return (-25*p0 + 48*p1 - 36*p2 + 16*p3 - 3*p4) / (12 * h)
}

// first derivative, evaluated at p4
func d1Backward(p0, p1, p2, p3, p4, h float64) float64 {
	return (25*p4 - 48*p3 + 36*p2 - 16*p1 + 3*p0) / (12 * h)
}

// second derivative, evaluated at p2
func d2Centered(p0, p1, p2, p3, p4, h float64) float64 {
	return (-30*p2 + 16*(p1+p3) - (p0 + p4)) / (12 * h * h)
}

// second derivative, evaluated at p1
func d2NearForward(p0, p1, p2, p3, p4, h float64) float64 {
	return (11*p0 - 20*p1 + 6*p2 + 4*p3 - p4) / (12 * h * h)
}

// second derivative, evaluated at p3
func d2NearBackward(p0, p1, p2, p3, p4, h float64) float64 {
	return (-p0 + 4*p1 + 6*p2 - 20*p3 + 11*p4) / (12 * h * h)
}

// second derivative, evaluated at p0
func d2Forward(p0, p1, p2, p3, p4, h float64) float64 {
	return (35*p0 - 104*p1 + 114*p2 - 56*p3 + 11*p4) / (12 * h * h)
}

// second derivative, evaluated at p4
func d2Backward(p0, p1, p2, p3, p4, h float64) float64 {
	return (11*p0 - 56*p1 + 114*p2 - 104*p3 + 35*p4) / (12 * h * h)
}
