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

import (
	"github.com/Felix-Do/playground/sample"
)

// Shuffle permutes s in place with the Fisher-Yates algorithm driven
// by the provided source: for each index i from the last down to 1,
// the element at i is swapped with the element at a uniformly random
// index in 0..i inclusive. Slices of length 1 or less are left
// untouched.
func Shuffle[T any](s []T, src sample.Source) {
	for i := len(s) - 1; i > 0; i-- {
		j := int(src.Float64() * float64(i+1))
		s[i], s[j] = s[j], s[i]
	}
}

// Shuffle permutes the dataset in place using the process-wide source.
func (d Dataset) Shuffle() {
	Shuffle(d, sample.Default)
}
