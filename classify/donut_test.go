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
	"github.com/Felix-Do/playground/sample"
)

func TestDonut_Bands(t *testing.T) {
	g := classify.NewDonutWithSource(sample.NewSource(9))
	ds, err := g.Generate(1000, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1000, len(ds))

	// Band radii for extent 5: center 0.6, half-width 0.15.
	inner := (0.6 - 0.15) * 5
	outer := (0.6 + 0.15) * 5

	pos, hole, beyond := 0, 0, 0
	for _, e := range ds {
		r := data.Dist(e.Point, data.Point{})
		if e.Label == 1 {
			pos++
			assert.True(t, r >= inner && r < outer, "positive point outside the band")
			continue
		}
		if r < inner {
			hole++
		} else {
			beyond++
			assert.True(t, r >= outer && r < 5, "negative point inside the band")
		}
	}

	assert.Equal(t, 500, pos)
	// A fifth of the negative points fill the hole.
	assert.Equal(t, 100, hole)
	assert.Equal(t, 400, beyond)
}
