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

package internal

// Rescale linearly maps v from the interval [fromLo, fromHi] to the
// interval [toLo, toHi]. Values outside the source interval are
// extrapolated, not clamped; combine with Clamp where a bounded result
// is needed.
func Rescale(v, fromLo, fromHi, toLo, toHi float64) float64 {
	return toLo + (v-fromLo)/(fromHi-fromLo)*(toHi-toLo)
}

// Clamp limits v to the interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
