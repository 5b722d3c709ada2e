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

// Bullseye generates concentric rings of alternating label, starting
// with +1 on the innermost ring. Each ring receives an equal share of
// the requested samples, with radii drawn inside the ring band leaving
// a gap of a tenth of the ring thickness at each band edge.
//
// Labels are fixed per ring, so jitter of magnitude extent * noise per
// axis is applied directly to the stored coordinates.
type Bullseye struct {
	radius    float64
	ringCount int
	src       sample.Source
}

// NewBullseye returns an instance of the Bullseye generator with four
// rings, drawing from the process-wide source.
func NewBullseye() *Bullseye {
	return NewBullseyeRings(4, sample.Default)
}

// NewBullseyeRings returns an instance of the Bullseye generator with
// the given number of rings, drawing from the provided source.
func NewBullseyeRings(ringCount int, src sample.Source) *Bullseye {
	return &Bullseye{
		radius:    5,
		ringCount: ringCount,
		src:       src,
	}
}

// Generate returns a dataset of ringCount * floor(numSamples /
// ringCount) examples. A ring count of zero or less yields an empty
// dataset.
func (g *Bullseye) Generate(numSamples int, noise float64) (data.Dataset, error) {
	if numSamples < 0 {
		return nil, errors.Wrap(internal.ErrNumSamples, "bullseye")
	}
	if g.ringCount <= 0 {
		return data.Dataset{}, nil
	}

	perRing := numSamples / g.ringCount
	thickness := g.radius / float64(g.ringCount)
	gap := 0.1 * thickness

	angle := sample.NewUniformSource(0, 2*math.Pi, g.src)
	jitter := sample.NewUniformSource(-g.radius, g.radius, g.src)

	ds := make(data.Dataset, 0, g.ringCount*perRing)
	for ring := 0; ring < g.ringCount; ring++ {
		label := ringLabel(ring)
		rs := sample.NewUniformSource(float64(ring)*thickness+gap, float64(ring+1)*thickness-gap, g.src)
		for i := 0; i < perRing; i++ {
			r := rs.Sample()
			t := angle.Sample()
			x := r*math.Sin(t) + jitter.Sample()*noise
			y := r*math.Cos(t) + jitter.Sample()*noise
			ds = append(ds, data.NewExample(x, y, label))
		}
	}

	return ds, nil
}

// ringLabel alternates starting from +1 on ring 0: the label is -1
// whenever ring+1 is even.
func ringLabel(ring int) float64 {
	if (ring+1)%2 == 0 {
		return -1
	}

	return 1
}
