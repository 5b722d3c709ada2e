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

package sample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Felix-Do/playground/sample"
)

type paramBounds struct {
	meanLow  float64
	meanHigh float64
	varLow   float64
	varHigh  float64
}

func TestSample_Normal(t *testing.T) {
	var tests = []struct {
		name     string
		mean     float64
		variance float64
		expect   paramBounds
	}{
		{
			name:     "standard",
			mean:     0,
			variance: 1,
			expect: paramBounds{
				meanLow:  -0.05,
				meanHigh: 0.05,
				varLow:   0.9,
				varHigh:  1.1,
			},
		},
		{
			name:     "shifted, variance 4",
			mean:     2,
			variance: 4,
			expect: paramBounds{
				meanLow:  1.9,
				meanHigh: 2.1,
				varLow:   3.6,
				varHigh:  4.4,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			n := sample.NewNormalSource(test.mean, test.variance, sample.NewSource(1))
			vec := make([]float64, 10000)
			for i := 0; i < len(vec); i++ {
				vec[i] = n.Sample()
			}
			me := mean(vec)
			v := variance(vec)
			assert.True(t, me > test.expect.meanLow, "mean value of the normal distribution is too small")
			assert.True(t, me < test.expect.meanHigh, "mean value of the normal distribution is too big")
			assert.True(t, v > test.expect.varLow, "variance of the normal distribution is too small")
			assert.True(t, v < test.expect.varHigh, "variance of the normal distribution is too big")
		})
	}
}

func TestSample_NormalZeroVariance(t *testing.T) {
	// The scale term sqrt(variance) vanishes, so every draw must be
	// exactly the mean.
	n := sample.NewNormalSource(5, 0, sample.NewSource(1))
	for i := 0; i < 100; i++ {
		assert.Equal(t, 5.0, n.Sample())
	}
}
