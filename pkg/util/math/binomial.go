// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package math

import "math/bits"

// Binomial computes the binomial coefficient "n choose k".  The boolean return
// indicates whether the result fits in 64 bits.
func Binomial(n, k uint64) (uint64, bool) {
	if k > n {
		return 0, true
	} else if k > n-k {
		k = n - k
	}
	//
	var result uint64 = 1
	//
	for i := uint64(1); i <= k; i++ {
		// result * (n-k+i) / i is always integral, since it equals C(n-k+i, i).
		hi, lo := bits.Mul64(result, n-k+i)
		//
		if hi >= i {
			// quotient would overflow
			return 0, false
		}
		//
		result, _ = bits.Div64(hi, lo, i)
	}
	//
	return result, true
}

// Sum an array of unsigned numbers.
func Sum[T uint8 | uint16 | uint32 | uint64 | uint](items ...T) T {
	var sum T
	//
	for _, item := range items {
		sum += item
	}
	//
	return sum
}
