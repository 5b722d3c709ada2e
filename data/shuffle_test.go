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

package data_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Felix-Do/playground/data"
	"github.com/Felix-Do/playground/sample"
)

func TestShuffle_Permutation(t *testing.T) {
	src := sample.NewSource(7)
	vec := make([]int, 100)
	for i := range vec {
		vec[i] = i
	}
	orig := make([]int, len(vec))
	copy(orig, vec)

	data.Shuffle(vec, src)

	// Same multiset of elements.
	sorted := make([]int, len(vec))
	copy(sorted, vec)
	sort.Ints(sorted)
	assert.Equal(t, orig, sorted)
}

func TestShuffle_Short(t *testing.T) {
	src := sample.NewSource(7)

	empty := []int{}
	data.Shuffle(empty, src)
	assert.Equal(t, []int{}, empty)

	one := []int{42}
	data.Shuffle(one, src)
	assert.Equal(t, []int{42}, one)
}

func TestShuffle_Reproducible(t *testing.T) {
	v1 := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	v2 := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	data.Shuffle(v1, sample.NewSource(3))
	data.Shuffle(v2, sample.NewSource(3))
	assert.Equal(t, v1, v2)
}

func TestDatasetShuffle(t *testing.T) {
	ds := make(data.Dataset, 50)
	for i := range ds {
		ds[i] = data.NewExample(float64(i), 0, 1)
	}

	ds.Shuffle()

	xs := make([]float64, len(ds))
	for i, e := range ds {
		xs[i] = e.X
	}
	sort.Float64s(xs)
	for i := range xs {
		assert.Equal(t, float64(i), xs[i])
	}
}
