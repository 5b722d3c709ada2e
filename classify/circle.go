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

// Circle generates an inner disk of +1 points surrounded by an
// annulus of -1 points, separated by an empty margin. Half of the
// requested samples land in the disk (radial distance up to 0.4 of
// the full extent), half in the annulus (radial distance from 0.45 of
// the full extent outward).
//
// Noise perturbs the labeling position only: the label is recomputed
// from the jittered point, while the stored coordinates remain the
// pre-noise ones.
type Circle struct {
	radius float64
	src    sample.Source
}

// NewCircle returns an instance of the Circle generator drawing from
// the process-wide source.
func NewCircle() *Circle {
	return NewCircleWithSource(sample.Default)
}

// NewCircleWithSource returns an instance of the Circle generator
// drawing from the provided source.
func NewCircleWithSource(src sample.Source) *Circle {
	return &Circle{
		radius: 5.2,
		src:    src,
	}
}

// Generate returns a dataset of 2 * floor(numSamples / 2) examples,
// half per region.
func (g *Circle) Generate(numSamples int, noise float64) (data.Dataset, error) {
	if numSamples < 0 {
		return nil, errors.Wrap(internal.ErrNumSamples, "circle")
	}

	half := numSamples / 2

	ds := make(data.Dataset, 0, 2*half)
	ds = g.region(ds, half, 0, 0.4*g.radius, noise)
	ds = g.region(ds, half, (0.4+0.05)*g.radius, g.radius, noise)

	return ds, nil
}

func (g *Circle) region(ds data.Dataset, n int, rLo, rHi, noise float64) data.Dataset {
	rs := sample.NewUniformSource(rLo, rHi, g.src)
	angle := sample.NewUniformSource(0, 2*math.Pi, g.src)
	jitter := sample.NewUniformSource(-g.radius, g.radius, g.src)
	for i := 0; i < n; i++ {
		r := rs.Sample()
		t := angle.Sample()
		x := r * math.Sin(t)
		y := r * math.Cos(t)
		noiseX := jitter.Sample() * noise
		noiseY := jitter.Sample() * noise
		label := g.label(data.Point{X: x + noiseX, Y: y + noiseY})
		ds = append(ds, data.NewExample(x, y, label))
	}

	return ds
}

// label is +1 for points within 0.4 of the full extent from the
// origin, -1 otherwise.
func (g *Circle) label(p data.Point) float64 {
	if data.Dist(p, data.Point{}) < g.radius*0.4 {
		return 1
	}

	return -1
}
