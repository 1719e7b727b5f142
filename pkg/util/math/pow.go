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

// PowTable returns the powers base^0, base^1, ..., base^n, each obtained from
// the previous by a single multiplication.
func PowTable(base float64, n uint) []float64 {
	table := make([]float64, n+1)
	table[0] = 1
	//
	for i := uint(1); i <= n; i++ {
		table[i] = table[i-1] * base
	}
	//
	return table
}
