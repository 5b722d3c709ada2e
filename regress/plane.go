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
	"github.com/pkg/errors"

	"github.com/Felix-Do/playground/data"
	"github.com/Felix-Do/playground/internal"
	"github.com/Felix-Do/playground/sample"
)

// Plane generates points uniformly over the square [-6, 6]^2 labeled
// by a tilted plane: the label maps x+y linearly from [-10, 10] to
// [-1, 1] without clamping, so far corners may exceed the unit range.
// Noise jitters each axis of the labeling position by up to
// extent * noise; the stored coordinates are the pre-noise ones.
type Plane struct {
	radius float64
	src    sample.Source
}

// NewPlane returns an instance of the Plane generator drawing from
// the process-wide source.
func NewPlane() *Plane {
	return NewPlaneWithSource(sample.Default)
}

// NewPlaneWithSource returns an instance of the Plane generator
// drawing from the provided source.
func NewPlaneWithSource(src sample.Source) *Plane {
	return &Plane{
		radius: 6,
		src:    src,
	}
}

// Generate returns a dataset of exactly numSamples examples.
func (g *Plane) Generate(numSamples int, noise float64) (data.Dataset, error) {
	if numSamples < 0 {
		return nil, errors.Wrap(internal.ErrNumSamples, "plane")
	}

	coord := sample.NewUniformSource(-g.radius, g.radius, g.src)
	jitter := sample.NewUniformSource(-g.radius, g.radius, g.src)

	ds := make(data.Dataset, 0, numSamples)
	for i := 0; i < numSamples; i++ {
		x := coord.Sample()
		y := coord.Sample()
		noiseX := jitter.Sample() * noise
		noiseY := jitter.Sample() * noise
		label := internal.Rescale(x+noiseX+y+noiseY, -10, 10, -1, 1)
		ds = append(ds, data.NewExample(x, y, label))
	}

	return ds, nil
}
