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

package classify

import (
	"github.com/pkg/errors"

	"github.com/Felix-Do/playground/data"
	"github.com/Felix-Do/playground/internal"
	"github.com/Felix-Do/playground/sample"
)

// XOR generates points over the square [-5, 5]^2 labeled by quadrant:
// +1 where x*y >= 0 and -1 elsewhere. A padding of 0.3 pushes every
// point away from both axes, leaving a dead zone around them. The
// label is computed after adding jitter of magnitude 5 * noise per
// axis; the stored coordinates are the padded, pre-noise ones.
type XOR struct {
	radius  float64
	padding float64
	src     sample.Source
}

// NewXOR returns an instance of the XOR generator drawing from the
// process-wide source.
func NewXOR() *XOR {
	return NewXORWithSource(sample.Default)
}

// NewXORWithSource returns an instance of the XOR generator drawing
// from the provided source.
func NewXORWithSource(src sample.Source) *XOR {
	return &XOR{
		radius:  5,
		padding: 0.3,
		src:     src,
	}
}

// Generate returns a dataset of exactly numSamples examples.
func (g *XOR) Generate(numSamples int, noise float64) (data.Dataset, error) {
	if numSamples < 0 {
		return nil, errors.Wrap(internal.ErrNumSamples, "xor")
	}

	coord := sample.NewUniformSource(-g.radius, g.radius, g.src)
	jitter := sample.NewUniformSource(-g.radius, g.radius, g.src)

	ds := make(data.Dataset, 0, numSamples)
	for i := 0; i < numSamples; i++ {
		x := g.pad(coord.Sample())
		y := g.pad(coord.Sample())
		noiseX := jitter.Sample() * noise
		noiseY := jitter.Sample() * noise
		label := -1.0
		if (x+noiseX)*(y+noiseY) >= 0 {
			label = 1
		}
		ds = append(ds, data.NewExample(x, y, label))
	}

	return ds, nil
}

// pad pushes v away from zero, clearing the dead zone along the axis.
func (g *XOR) pad(v float64) float64 {
	if v > 0 {
		return v + g.padding
	}

	return v - g.padding
}
