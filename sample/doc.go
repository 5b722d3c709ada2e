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

// Package sample includes samplers for sampling random values
// from different probability distributions.
//
// Package sample provides the Sampler interface
// along with different implementations of this interface,
// and the Source interface describing the uniform [0, 1)
// primitive that every sampler is built on.
//
// Implementations of the Sampler interface can be used,
// for instance, to fill dataset structures with
// the desired random data. Every sampler accepts an explicit
// Source, so callers that need reproducible draws can inject
// a seeded or deterministic source; the package-level Default
// source is a convenience for callers that do not care.
package sample
