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

// Star generates a bladed star pattern of concentric rings with the
// same alternating ring labels as Bullseye. Each point picks a blade
// and a blend factor toward the blade's peak angle: the angle
// interpolates from the valley between blades to the peak, and the
// radial distance shrinks toward a body ratio of the ring radius at
// the valleys, so the rings bulge outward along the blades.
//
// The geometry is experimental and non-canonical; it is kept as a
// work-in-progress shape and may change.
type Star struct {
	radius    float64
	blades    int
	ringCount int
	bodyRatio float64
	src       sample.Source
}

// NewStar returns an instance of the Star generator with six blades
// and four rings, drawing from the process-wide source.
func NewStar() *Star {
	return NewStarWithSource(sample.Default)
}

// NewStarWithSource returns an instance of the Star generator drawing
// from the provided source.
func NewStarWithSource(src sample.Source) *Star {
	return &Star{
		radius:    5.6,
		blades:    6,
		ringCount: 4,
		bodyRatio: 0.6,
		src:       src,
	}
}

// Generate returns a dataset of ringCount * floor(numSamples /
// ringCount) examples. A ring count of zero or less yields an empty
// dataset.
func (g *Star) Generate(numSamples int, noise float64) (data.Dataset, error) {
	if numSamples < 0 {
		return nil, errors.Wrap(internal.ErrNumSamples, "star")
	}
	if g.ringCount <= 0 {
		return data.Dataset{}, nil
	}

	perRing := numSamples / g.ringCount
	thickness := g.radius / float64(g.ringCount)
	width := 2 * math.Pi / float64(g.blades)

	unit := sample.NewUniformSource(0, 1, g.src)
	side := sample.NewUniformSource(-1, 1, g.src)
	jitter := sample.NewUniformSource(-g.radius, g.radius, g.src)

	ds := make(data.Dataset, 0, g.ringCount*perRing)
	for ring := 0; ring < g.ringCount; ring++ {
		label := ringLabel(ring)
		rs := sample.NewUniformSource(float64(ring)*thickness, float64(ring+1)*thickness, g.src)
		for i := 0; i < perRing; i++ {
			blade := math.Floor(unit.Sample() * float64(g.blades))
			peak := (blade + 0.5) * width

			// blend 1 sits on the blade peak, blend 0 in the
			// valley between two blades.
			blend := unit.Sample()
			t := peak + sign(side.Sample())*(1-blend)*width/2
			r := rs.Sample() * (g.bodyRatio + (1-g.bodyRatio)*blend)

			x := r*math.Sin(t) + jitter.Sample()*noise
			y := r*math.Cos(t) + jitter.Sample()*noise
			ds = append(ds, data.NewExample(x, y, label))
		}
	}

	return ds, nil
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}

	return 1
}
