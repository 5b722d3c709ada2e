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

package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Felix-Do/playground/classify"
	"github.com/Felix-Do/playground/data"
	"github.com/Felix-Do/playground/internal"
	"github.com/Felix-Do/playground/sample"
)

func generators(src sample.Source) map[string]data.Generator {
	return map[string]data.Generator{
		"two gauss": classify.NewTwoGaussWithSource(src),
		"spiral":    classify.NewSpiralWithSource(src),
		"circle":    classify.NewCircleWithSource(src),
		"donut":     classify.NewDonutWithSource(src),
		"bullseye":  classify.NewBullseyeRings(4, src),
		"star":      classify.NewStarWithSource(src),
		"xor":       classify.NewXORWithSource(src),
	}
}

func TestGenerate_NegativeNumSamples(t *testing.T) {
	for name, g := range generators(sample.NewSource(1)) {
		t.Run(name, func(t *testing.T) {
			_, err := g.Generate(-1, 0)
			assert.ErrorIs(t, err, internal.ErrNumSamples)
		})
	}
}

func TestGenerate_ZeroNumSamples(t *testing.T) {
	for name, g := range generators(sample.NewSource(1)) {
		t.Run(name, func(t *testing.T) {
			ds, err := g.Generate(0, 0.5)
			assert.NoError(t, err)
			assert.Equal(t, 0, len(ds))
		})
	}
}

func TestGenerate_SignLabels(t *testing.T) {
	for name, g := range generators(sample.NewSource(1)) {
		t.Run(name, func(t *testing.T) {
			ds, err := g.Generate(201, 0.2)
			assert.NoError(t, err)
			for _, e := range ds {
				assert.True(t, e.Label == 1 || e.Label == -1,
					"classification label must be +1 or -1")
			}
		})
	}
}

func TestGenerate_LengthQuantization(t *testing.T) {
	src := sample.NewSource(1)
	var tests = []struct {
		name       string
		gen        data.Generator
		numSamples int
		expectLen  int
	}{
		{name: "two gauss odd", gen: classify.NewTwoGaussWithSource(src), numSamples: 101, expectLen: 100},
		{name: "spiral odd", gen: classify.NewSpiralWithSource(src), numSamples: 77, expectLen: 76},
		{name: "circle odd", gen: classify.NewCircleWithSource(src), numSamples: 33, expectLen: 32},
		{name: "donut odd", gen: classify.NewDonutWithSource(src), numSamples: 99, expectLen: 98},
		{name: "bullseye non-divisible", gen: classify.NewBullseyeRings(4, src), numSamples: 103, expectLen: 100},
		{name: "star non-divisible", gen: classify.NewStarWithSource(src), numSamples: 103, expectLen: 100},
		{name: "xor exact", gen: classify.NewXORWithSource(src), numSamples: 103, expectLen: 103},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ds, err := test.gen.Generate(test.numSamples, 0.1)
			assert.NoError(t, err)
			assert.Equal(t, test.expectLen, len(ds))
		})
	}
}
