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

// Package regress includes generators of synthetic two-dimensional
// datasets for regression.
//
// Every generator produces uniformly placed points carrying a
// continuous label computed from the point's position: a tilted plane
// or a surface of Gaussian bumps. Noise jitters the position used for
// labeling while the stored coordinates stay put.
//
// All generators implement the data.Generator interface, with the
// same constructor conventions as package classify.
package regress
