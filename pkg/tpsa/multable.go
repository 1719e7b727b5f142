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

// MulTable records, for every pair of slots in a basis whose combined degree
// does not exceed the order, the slot of their product.  Pairs whose combined
// degree exceeds the order are truncated and have no product.
//
// Since slots are ordered by degree, the slots b which can be multiplied with
// a given slot a (i.e. those with degree(b) <= order - degree(a)) always form a
// prefix of the basis.  Hence, the table is stored as a sequence of ragged rows
// where row a covers exactly that prefix.
type MulTable struct {
	basis *Basis
	// Start of each row within the products array.  There are n+1 entries,
	// with the final entry being the total number of products.
	rows []uint
	// Product slots, flattened row by row.
	products []uint32
}

// NewMulTable constructs the multiplication table for a given basis.
func NewMulTable(basis *Basis) *MulTable {
	var (
		n     = basis.Len()
		order = basis.Order()
		rows  = make([]uint, n+1)
		sum   = make(MultiIndex, basis.Vars())
	)
	// Determine row layout
	for a := uint(0); a < n; a++ {
		rows[a+1] = rows[a] + basis.Offset(order-basis.Degree(a)+1)
	}
	//
	products := make([]uint32, rows[n])
	//
	for a := uint(0); a < n; a++ {
		width := rows[a+1] - rows[a]
		//
		for b := uint(0); b < width; b++ {
			if b < a {
				// Exploit symmetry.  Observe row b must contain a, since
				// degree(a) + degree(b) <= order.
				products[rows[a]+b] = products[rows[b]+a]
				continue
			}
			// Compute exponent-wise sum
			for i := range sum {
				sum[i] = basis.Exponent(a, uint(i)) + basis.Exponent(b, uint(i))
			}
			//
			c, ok := basis.SlotOf(sum)
			// Sanity check
			if !ok {
				panic("missing product in basis")
			}
			//
			products[rows[a]+b] = uint32(c)
		}
	}
	//
	return &MulTable{basis, rows, products}
}

// Basis returns the basis on which this table is defined.
func (p *MulTable) Basis() *Basis {
	return p.basis
}

// Len returns the number of (ordered) slot pairs which are not truncated.
func (p *MulTable) Len() uint {
	return uint(len(p.products))
}

// Product returns the slot holding the product of the monomials in two given
// slots, or false if that product is truncated.
func (p *MulTable) Product(a, b uint) (uint, bool) {
	if row := p.row(a); b < uint(len(row)) {
		return uint(row[b]), true
	}
	//
	return 0, false
}

// Returns the products for a given slot, such that the ith entry holds the
// product of that slot with slot i.
func (p *MulTable) row(a uint) []uint32 {
	return p.products[p.rows[a]:p.rows[a+1]]
}
