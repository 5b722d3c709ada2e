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

// TwoGauss generates two Gaussian blobs, one centered at (2, 2) and
// labeled +1, the other centered at (-2, -2) and labeled -1. Each blob
// receives half of the requested samples, drawn with independent-axis
// normal sampling. The blob variance grows linearly with noise: noise
// 0 gives variance 0.5, noise 0.5 gives variance 4.
type TwoGauss struct {
	src sample.Source
}

// NewTwoGauss returns an instance of the TwoGauss generator drawing
// from the process-wide source.
func NewTwoGauss() *TwoGauss {
	return NewTwoGaussWithSource(sample.Default)
}

// NewTwoGaussWithSource returns an instance of the TwoGauss generator
// drawing from the provided source.
func NewTwoGaussWithSource(src sample.Source) *TwoGauss {
	return &TwoGauss{
		src: src,
	}
}

// Generate returns a dataset of 2 * floor(numSamples / 2) examples,
// half per blob.
func (g *TwoGauss) Generate(numSamples int, noise float64) (data.Dataset, error) {
	if numSamples < 0 {
		return nil, errors.Wrap(internal.ErrNumSamples, "two gauss")
	}

	variance := internal.Rescale(noise, 0, 0.5, 0.5, 4)
	half := numSamples / 2

	ds := make(data.Dataset, 0, 2*half)
	ds = g.blob(ds, half, data.Point{X: 2, Y: 2}, variance, 1)
	ds = g.blob(ds, half, data.Point{X: -2, Y: -2}, variance, -1)

	return ds, nil
}

func (g *TwoGauss) blob(ds data.Dataset, n int, center data.Point, variance, label float64) data.Dataset {
	xs := sample.NewNormalSource(center.X, variance, g.src)
	ys := sample.NewNormalSource(center.Y, variance, g.src)
	for i := 0; i < n; i++ {
		ds = append(ds, data.NewExample(xs.Sample(), ys.Sample(), label))
	}

	return ds
}
