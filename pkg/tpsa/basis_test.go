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
	"slices"
	"testing"

	"github.com/consensys/go-tpsa/pkg/util/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Basis_01(t *testing.T) {
	// Size of basis is C(N+D,D)
	for vars := uint(1); vars <= 6; vars++ {
		for order := uint(0); order <= 6; order++ {
			basis, err := NewBasis(vars, order)
			require.NoError(t, err)
			//
			expected, _ := math.Binomial(uint64(order+vars), uint64(vars))
			assert.Equal(t, uint(expected), basis.Len(), "vars=%d, order=%d", vars, order)
		}
	}
}

func Test_Basis_02(t *testing.T) {
	checkBijection(t, 1, 5)
	checkBijection(t, 2, 4)
	checkBijection(t, 3, 3)
	checkBijection(t, 6, 4)
	checkBijection(t, 4, 4)
	checkBijection(t, 10, 3)
}

func Test_Basis_03(t *testing.T) {
	basis, err := NewBasis(2, 2)
	require.NoError(t, err)
	//
	expected := []MultiIndex{{0, 0}, {1, 0}, {0, 1}, {2, 0}, {1, 1}, {0, 2}}
	//
	require.Equal(t, uint(len(expected)), basis.Len())
	//
	for i, m := range expected {
		assert.Equal(t, m, basis.MultiIndex(uint(i)))
	}
}

func Test_Basis_04(t *testing.T) {
	basis, err := NewBasis(6, 4)
	require.NoError(t, err)
	// Slot 1+i is always variable i
	for i := uint(0); i < 6; i++ {
		m := make(MultiIndex, 6)
		m[i] = 1
		//
		slot, ok := basis.SlotOf(m)
		assert.True(t, ok)
		assert.Equal(t, 1+i, slot)
	}
}

func Test_Basis_05(t *testing.T) {
	_, err := NewBasis(0, 4)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	//
	_, err = NewBasis(2, 256)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	//
	_, err = NewBasis(20, 10)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	//
	_, err = NewBasis(65, 1)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	// Too many monomials
	_, err = NewBasis(12, 15)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	// Too many variables, even without any monomials beyond the constant
	_, err = NewBasis(MAX_BASIS_SIZE+1, 0)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	//
	basis, err := NewBasis(3, 0)
	require.NoError(t, err)
	assert.Equal(t, uint(1), basis.Len())
	_, ok := basis.Raise(0, 2)
	assert.False(t, ok)
}

func Test_Basis_06(t *testing.T) {
	basis, err := NewBasis(3, 3)
	require.NoError(t, err)
	//
	for s := uint(0); s < basis.Len(); s++ {
		for i := uint(0); i < 3; i++ {
			m := basis.MultiIndex(s)
			// Check raise
			r, ok := basis.Raise(s, i)
			assert.Equal(t, basis.Degree(s) < 3, ok)
			//
			if ok {
				m[i]++
				assert.Equal(t, m, basis.MultiIndex(r))
				m[i]--
			}
			// Check lower
			l, ok := basis.Lower(s, i)
			assert.Equal(t, m[i] > 0, ok)
			//
			if ok {
				m[i]--
				assert.Equal(t, m, basis.MultiIndex(l))
			}
		}
	}
}

func Test_Basis_07(t *testing.T) {
	basis, err := NewBasis(3, 2)
	require.NoError(t, err)
	// Degree too high
	_, ok := basis.SlotOf(MultiIndex{1, 1, 1})
	assert.False(t, ok)
	// Exponent too high
	_, ok = basis.SlotOf(MultiIndex{3, 0, 0})
	assert.False(t, ok)
	// Wrong number of variables
	_, ok = basis.SlotOf(MultiIndex{1, 0})
	assert.False(t, ok)
	// Order zero has only the constant
	basis, err = NewBasis(3, 0)
	require.NoError(t, err)
	assert.Equal(t, uint(1), basis.Len())
	//
	slot, ok := basis.SlotOf(MultiIndex{0, 0, 0})
	assert.True(t, ok)
	assert.Equal(t, uint(0), slot)
}

func Test_Basis_08(t *testing.T) {
	// Independently built bases agree
	b1, err := NewBasis(4, 3)
	require.NoError(t, err)
	b2, err := NewBasis(4, 3)
	require.NoError(t, err)
	//
	for s := uint(0); s < b1.Len(); s++ {
		assert.Equal(t, b1.MultiIndex(s), b2.MultiIndex(s))
	}
}

func Test_Basis_09(t *testing.T) {
	basis, err := NewBasis(3, 3)
	require.NoError(t, err)
	//
	for k := uint(0); k <= 3; k++ {
		for s := basis.Offset(k); s < basis.Offset(k+1); s++ {
			assert.Equal(t, k, basis.Degree(s))
		}
	}
	//
	assert.Equal(t, basis.Len(), basis.Offset(4))
	assert.Equal(t, "1 0 2", MultiIndex{1, 0, 2}.String())
	assert.Equal(t, uint(3), MultiIndex{1, 0, 2}.Degree())
}

// Check every slot maps to a distinct multi-index which maps back to it, and
// the order is graded and descending lexicographic within each degree.
func checkBijection(t *testing.T, vars uint, order uint) {
	basis, err := NewBasis(vars, order)
	require.NoError(t, err)
	//
	var prev MultiIndex
	//
	for s := uint(0); s < basis.Len(); s++ {
		m := basis.MultiIndex(s)
		slot, ok := basis.SlotOf(m)
		//
		require.True(t, ok)
		require.Equal(t, s, slot)
		require.Equal(t, m.Degree(), basis.Degree(s))
		require.LessOrEqual(t, m.Degree(), order)
		//
		if prev != nil {
			if prev.Degree() == m.Degree() {
				require.Equal(t, 1, slices.Compare(prev, m), "slot %d out of order", s)
			} else {
				require.Less(t, prev.Degree(), m.Degree())
			}
		}
		//
		prev = m
	}
}
