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

package sample

import (
	"math"
)

// Normal samples random values from the Normal (Gaussian) probability
// distribution with the given mean and variance, using the Marsaglia
// polar method.
type Normal struct {
	mean     float64
	variance float64
	src      Source
}

// NewNormal returns an instance of the Normal sampler drawing from the
// process-wide source.
func NewNormal(mean, variance float64) *Normal {
	return NewNormalSource(mean, variance, Default)
}

// NewNormalSource returns an instance of the Normal sampler drawing
// from the provided source.
func NewNormalSource(mean, variance float64, src Source) *Normal {
	return &Normal{
		mean:     mean,
		variance: variance,
		src:      src,
	}
}

// Sample draws a value based on rejection sampling: pairs (v1, v2) are
// drawn uniformly from [-1, 1] until s = v1^2 + v2^2 falls in (0, 1].
// A candidate pair is accepted with probability pi/4, so the expected
// number of iterations is about 1.27; the loop carries no artificial
// iteration cap, as a cap would change the distribution.
//
// A variance of 0 yields exactly the mean.
func (n *Normal) Sample() float64 {
	var v1, v2, s float64
	for {
		v1 = 2*n.src.Float64() - 1
		v2 = 2*n.src.Float64() - 1
		s = v1*v1 + v2*v2
		if s > 0 && s <= 1 {
			break
		}
	}
	result := math.Sqrt(-2*math.Log(s)/s) * v1
	return n.mean + math.Sqrt(n.variance)*result
}
