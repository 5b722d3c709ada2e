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

// Uniform samples random values from the interval [a, b).
type Uniform struct {
	a   float64
	b   float64
	src Source
}

// NewUniform returns an instance of the Uniform sampler drawing from
// the process-wide source. It accepts lower and upper bounds on the
// sampled values.
func NewUniform(a, b float64) *Uniform {
	return NewUniformSource(a, b, Default)
}

// NewUniformSource returns an instance of the Uniform sampler drawing
// from the provided source.
func NewUniformSource(a, b float64, src Source) *Uniform {
	return &Uniform{
		a:   a,
		b:   b,
		src: src,
	}
}

// Sample returns a value uniformly distributed over [a, b). Bounds are
// not validated; if a > b the effective interval is reversed and the
// formula remains valid.
func (u *Uniform) Sample() float64 {
	return u.a + u.src.Float64()*(u.b-u.a)
}
