/*
 * Copyright (c) 2024 The playground authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package data holds the labeled-point containers produced by the
// dataset generators, together with the small geometric and
// sequence helpers shared by all of them.
package data

import (
	"math"
)

// Point is a location on the two-dimensional plane. It has no identity
// beyond its value.
type Point struct {
	X float64
	Y float64
}

// Example is a point together with its label. Classification datasets
// use the labels +1 and -1; regression datasets attach a continuous
// value.
type Example struct {
	Point
	Label float64
}

// Dataset wraps a slice of examples. A generator fully populates the
// dataset before returning it, and the caller owns it exclusively;
// no state is shared between generator calls apart from the random
// source in use.
type Dataset []Example

// NewExample returns an example at the given coordinates carrying the
// given label.
func NewExample(x, y, label float64) Example {
	return Example{
		Point: Point{X: x, Y: y},
		Label: label,
	}
}

// Dist returns the Euclidean distance between points p and q.
func Dist(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Split partitions the dataset into a training part and a test part.
// ratio is the fraction of examples assigned to the training part and
// is clamped to [0, 1]. The two returned datasets share the backing
// array of d.
func (d Dataset) Split(ratio float64) (train, test Dataset) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	n := int(float64(len(d)) * ratio)

	return d[:n], d[n:]
}
