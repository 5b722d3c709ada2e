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

// Donut generates a ring-shaped band of +1 points against -1 points
// everywhere else. The band is centered at a fraction rSize of the
// full extent and spans thickness of the extent to each side. Half of
// the requested samples form the band; of the other half, one fifth
// falls in the inner hole and the remainder outside the outer edge.
//
// Labels are fixed per generation pass and never recomputed from the
// position, so jitter of magnitude extent * noise per axis is applied
// directly to the stored coordinates.
type Donut struct {
	radius    float64
	rSize     float64
	thickness float64
	src       sample.Source
}

// NewDonut returns an instance of the Donut generator drawing from
// the process-wide source.
func NewDonut() *Donut {
	return NewDonutWithSource(sample.Default)
}

// NewDonutWithSource returns an instance of the Donut generator
// drawing from the provided source.
func NewDonutWithSource(src sample.Source) *Donut {
	return &Donut{
		radius:    5,
		rSize:     0.6,
		thickness: 0.15,
		src:       src,
	}
}

// Generate returns a dataset of 2 * floor(numSamples / 2) examples,
// half in the band and half outside it.
func (g *Donut) Generate(numSamples int, noise float64) (data.Dataset, error) {
	if numSamples < 0 {
		return nil, errors.Wrap(internal.ErrNumSamples, "donut")
	}

	half := numSamples / 2
	inner := (g.rSize - g.thickness) * g.radius
	outer := (g.rSize + g.thickness) * g.radius

	ds := make(data.Dataset, 0, 2*half)
	ds = g.pass(ds, half, inner, outer, 1, noise)

	// Negative pass: a fifth of the points fill the hole, the rest
	// land beyond the outer edge.
	hole := half / 5
	ds = g.pass(ds, hole, 0, inner, -1, noise)
	ds = g.pass(ds, half-hole, outer, g.radius, -1, noise)

	return ds, nil
}

func (g *Donut) pass(ds data.Dataset, n int, rLo, rHi, label, noise float64) data.Dataset {
	rs := sample.NewUniformSource(rLo, rHi, g.src)
	angle := sample.NewUniformSource(0, 2*math.Pi, g.src)
	jitter := sample.NewUniformSource(-g.radius, g.radius, g.src)
	for i := 0; i < n; i++ {
		r := rs.Sample()
		t := angle.Sample()
		x := r*math.Sin(t) + jitter.Sample()*noise
		y := r*math.Cos(t) + jitter.Sample()*noise
		ds = append(ds, data.NewExample(x, y, label))
	}

	return ds
}
