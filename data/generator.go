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

package data

// Generator is the interface implemented by all dataset generators.
//
// numSamples is the requested number of examples. Generators that
// divide their samples across sub-groups (halves, rings) may return
// slightly fewer examples due to integer truncation of the per-group
// counts; this quantization is part of the contract. A negative
// numSamples yields an error.
//
// noise is a dimensionless scale factor, typically in [0, 0.5],
// applied to a per-generator spatial extent to produce coordinate or
// labeling jitter. At noise 0 every generator produces its exact
// geometric shape, subject only to the randomness of position
// sampling.
type Generator interface {
	Generate(numSamples int, noise float64) (Dataset, error)
}
