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

package regress

import (
	"math"

	"github.com/pkg/errors"

	"github.com/Felix-Do/playground/data"
	"github.com/Felix-Do/playground/internal"
	"github.com/Felix-Do/playground/sample"
)

// bump is one Gaussian hill (sign +1) or pit (sign -1) of the surface
// sampled by the Gaussian generator.
type bump struct {
	center data.Point
	sign   float64
}

// bumps are visited in a fixed order; GaussianLabel keeps the first
// response seen under a strict greater-than comparison, so ties
// resolve to the earliest bump.
var bumps = []bump{
	{data.Point{X: -4, Y: 2.5}, 1},
	{data.Point{X: 0, Y: 2.5}, -1},
	{data.Point{X: 4, Y: 2.5}, 1},
	{data.Point{X: -4, Y: -2.5}, -1},
	{data.Point{X: 0, Y: -2.5}, 1},
	{data.Point{X: 4, Y: -2.5}, -1},
}

// Gaussian generates points uniformly over the square [-6, 6]^2
// labeled by a surface of six Gaussian bumps of alternating sign.
// Each bump responds with its sign scaled by the distance to its
// center, mapped from [0, 2] down to [1, 0] and clamped; the label is
// the response with the largest absolute value. Noise jitters each
// axis of the labeling position by up to extent * noise; the stored
// coordinates are the pre-noise ones.
type Gaussian struct {
	radius float64
	src    sample.Source
}

// NewGaussian returns an instance of the Gaussian generator drawing
// from the process-wide source.
func NewGaussian() *Gaussian {
	return NewGaussianWithSource(sample.Default)
}

// NewGaussianWithSource returns an instance of the Gaussian generator
// drawing from the provided source.
func NewGaussianWithSource(src sample.Source) *Gaussian {
	return &Gaussian{
		radius: 6,
		src:    src,
	}
}

// Generate returns a dataset of exactly numSamples examples.
func (g *Gaussian) Generate(numSamples int, noise float64) (data.Dataset, error) {
	if numSamples < 0 {
		return nil, errors.Wrap(internal.ErrNumSamples, "gaussian")
	}

	coord := sample.NewUniformSource(-g.radius, g.radius, g.src)
	jitter := sample.NewUniformSource(-g.radius, g.radius, g.src)

	ds := make(data.Dataset, 0, numSamples)
	for i := 0; i < numSamples; i++ {
		x := coord.Sample()
		y := coord.Sample()
		noiseX := jitter.Sample() * noise
		noiseY := jitter.Sample() * noise
		label := GaussianLabel(data.Point{X: x + noiseX, Y: y + noiseY})
		ds = append(ds, data.NewExample(x, y, label))
	}

	return ds, nil
}

// GaussianLabel returns the label of the bump surface at p: the
// largest-magnitude response among all six bumps.
func GaussianLabel(p data.Point) float64 {
	label := 0.0
	for _, b := range bumps {
		response := b.sign * internal.Clamp(internal.Rescale(data.Dist(p, b.center), 0, 2, 1, 0), 0, 1)
		if math.Abs(response) > math.Abs(label) {
			label = response
		}
	}

	return label
}
