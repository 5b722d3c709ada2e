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

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// DetSource is a deterministic source producing its uniform stream
// from a Salsa20 keystream. Two sources created with the same key
// produce identical streams, making every dataset generated from them
// reproducible. Not safe for concurrent use; give each goroutine its
// own instance.
type DetSource struct {
	key     *[32]byte
	counter uint64
}

// NewDetSource returns an instance of the DetSource generator.
// key determines the pseudo-random stream.
func NewDetSource(key *[32]byte) *DetSource {
	return &DetSource{
		key: key,
	}
}

// Float64 returns the next keystream value mapped uniformly to [0, 1).
// The top 53 bits of each 8-byte keystream block form the mantissa, so
// every representable step in [0, 1) is reachable.
func (d *DetSource) Float64() float64 {
	in := make([]byte, 8)
	out := make([]byte, 8)
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, d.counter)
	d.counter++

	salsa20.XORKeyStream(out, in, nonce, d.key)
	v := binary.LittleEndian.Uint64(out)

	return float64(v>>11) / (1 << 53)
}
