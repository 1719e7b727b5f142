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
package tpsa

import (
	"bytes"
	"fmt"
)

// String produces a human-readable listing of the non-zero coefficients of
// this series, one per line, in slot order.  Each line gives the slot, the
// coefficient, the degree and the exponent of each variable.  There is no
// guarantee this can be parsed back.
func (p *Series) String() string {
	var (
		buf   bytes.Buffer
		basis = p.algebra.basis
		empty = true
	)
	//
	buf.WriteString(fmt.Sprintf("%6s  %23s  %5s  %s\n", "I", "COEFFICIENT", "ORDER", "EXPONENTS"))
	//
	for s, c := range p.coeffs {
		if c == 0 {
			continue
		}
		//
		empty = false
		//
		buf.WriteString(fmt.Sprintf("%6d  %23.16e  %5d  %s\n", s+1, c, basis.Degree(uint(s)),
			basis.MultiIndex(uint(s)).String()))
	}
	//
	if empty {
		buf.WriteString("  ALL COMPONENTS ZERO\n")
	}
	//
	return buf.String()
}
