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
	"math"

	"github.com/pkg/errors"

	"github.com/Felix-Do/playground/data"
	"github.com/Felix-Do/playground/internal"
	"github.com/Felix-Do/playground/sample"
)

// Spiral generates two interleaved Archimedean spirals of half the
// requested samples each. The arm at phase 0 is labeled +1, the arm at
// phase pi is labeled -1. Along each arm the radius grows from 0 to
// the full extent while the angle winds 2.5 turns. Noise is additive
// uniform jitter of magnitude noise on each coordinate, independent of
// the radius.
type Spiral struct {
	radius float64
	src    sample.Source
}

// NewSpiral returns an instance of the Spiral generator drawing from
// the process-wide source.
func NewSpiral() *Spiral {
	return NewSpiralWithSource(sample.Default)
}

// NewSpiralWithSource returns an instance of the Spiral generator
// drawing from the provided source.
func NewSpiralWithSource(src sample.Source) *Spiral {
	return &Spiral{
		radius: 5.2,
		src:    src,
	}
}

// Generate returns a dataset of 2 * floor(numSamples / 2) examples,
// half per arm.
func (g *Spiral) Generate(numSamples int, noise float64) (data.Dataset, error) {
	if numSamples < 0 {
		return nil, errors.Wrap(internal.ErrNumSamples, "spiral")
	}

	half := numSamples / 2

	ds := make(data.Dataset, 0, 2*half)
	ds = g.arm(ds, half, 0, 1, noise)
	ds = g.arm(ds, half, math.Pi, -1, noise)

	return ds, nil
}

func (g *Spiral) arm(ds data.Dataset, n int, deltaT, label, noise float64) data.Dataset {
	jitter := sample.NewUniformSource(-1, 1, g.src)
	for i := 0; i < n; i++ {
		r := float64(i) / float64(n) * g.radius
		t := 2.5*float64(i+1)/float64(n)*2*math.Pi + deltaT
		x := r*math.Sin(t) + jitter.Sample()*noise
		y := r*math.Cos(t) + jitter.Sample()*noise
		ds = append(ds, data.NewExample(x, y, label))
	}

	return ds
}
