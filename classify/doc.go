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

// Package classify includes generators of synthetic two-dimensional
// datasets for binary classification.
//
// Every generator produces points following a distinct geometric
// pattern (two Gaussian blobs, interleaved spirals, concentric
// circles, a ring band, a bullseye, a star, quadrant regions), each
// labeled +1 or -1, with a configurable amount of random jitter.
//
// All generators implement the data.Generator interface. Each one has
// a plain constructor drawing randomness from the process-wide source
// and a WithSource variant accepting an injected sample.Source for
// reproducible output.
package classify
