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
	"math/rand/v2"
)

// Sampler is the interface for drawing successive random values from a
// probability distribution.
type Sampler interface {
	// Sample returns the next value drawn from the distribution.
	Sample() float64
}

// Source is the interface for the uniform primitive that samplers and
// dataset generators build on. It is satisfied by *rand.Rand from
// math/rand/v2.
type Source interface {
	// Float64 returns a pseudo-random value uniformly distributed
	// over [0, 1).
	Float64() float64
}

// Default is the process-wide source. It delegates to the top-level
// math/rand/v2 functions, which are safe for concurrent use.
var Default Source = defaultSource{}

type defaultSource struct{}

func (defaultSource) Float64() float64 {
	return rand.Float64()
}

// NewSource returns a source seeded with the given seed. Two sources
// created with the same seed produce identical streams.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}
