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
	"math/bits"

	"github.com/consensys/go-tpsa/pkg/util/math"
)

// MAX_BASIS_SIZE determines the largest number of monomials supported in a
// single basis.  Series are stored densely, hence this bounds the memory used
// by every series (and, much more so, by the multiplication table).
const MAX_BASIS_SIZE = 1 << 22

// MAX_ORDER determines the largest truncation order supported.  Exponents are
// stored in a single byte.
const MAX_ORDER = 255

// MultiIndex holds the exponent of each variable in a given monomial.  For
// example, with three variables, the monomial x0*x2^2 has multi-index (1 0 2).
type MultiIndex []uint

// Degree returns the total degree of this multi-index (i.e. the sum of its
// exponents).
func (m MultiIndex) Degree() uint {
	return math.Sum(m...)
}

// String returns a space separated list of exponents.
func (m MultiIndex) String() string {
	var buf bytes.Buffer
	//
	for i, e := range m {
		if i != 0 {
			buf.WriteString(" ")
		}
		//
		buf.WriteString(fmt.Sprintf("%d", e))
	}
	//
	return buf.String()
}

// Basis enumerates every monomial in a given number of variables whose total
// degree does not exceed a given order, and assigns each a unique slot.
// Monomials are ordered first by total degree (ascending) and then, within a
// degree, by descending lexicographic order of their exponents.  Thus, slot 0
// is always the constant monomial and slot 1+i is always variable i.  This
// ordering is entirely determined by the number of variables and the order,
// hence independently constructed bases of the same shape always agree.
//
// A basis is immutable after construction and can be safely shared between
// goroutines.
type Basis struct {
	vars  uint
	order uint
	// Exponents of each slot, flattened.  That is, the exponent of variable i
	// in slot s is held at index s*vars+i.
	exponents []uint8
	// Total degree of each slot.
	degrees []uint8
	// First slot of each degree.  There are order+2 entries, with the final
	// entry being the basis size.
	offsets []uint
	// Number of bits used for each exponent within a packed key.
	width uint
	// Maps packed multi-indices to their slots.
	index map[uint64]uint32
	// Slot obtained by incrementing (resp. decrementing) the exponent of a
	// given variable, or -1 if no such slot exists.  Flattened as for
	// exponents.
	raise []int32
	lower []int32
}

// NewBasis constructs the basis for a given number of variables and a given
// truncation order.  This fails with ErrInvalidDimension if there are no
// variables, or the basis would be too large.
func NewBasis(vars uint, order uint) (*Basis, error) {
	var width = uint(bits.Len(order))
	// Sanity checks
	if vars == 0 {
		return nil, fmt.Errorf("%w: algebra requires at least one variable", ErrInvalidDimension)
	} else if order > MAX_ORDER {
		return nil, fmt.Errorf("%w: order %d exceeds maximum of %d", ErrInvalidDimension, order, MAX_ORDER)
	} else if vars > MAX_BASIS_SIZE || vars*width > 64 {
		return nil, fmt.Errorf("%w: %d variables of order %d cannot be indexed", ErrInvalidDimension, vars, order)
	}
	//
	size, ok := math.Binomial(uint64(order+vars), uint64(vars))
	//
	if !ok || size > MAX_BASIS_SIZE {
		return nil, fmt.Errorf("%w: %d variables of order %d exceeds maximum basis size", ErrInvalidDimension,
			vars, order)
	}
	//
	basis := &Basis{
		vars:      vars,
		order:     order,
		exponents: make([]uint8, 0, uint(size)*vars),
		degrees:   make([]uint8, 0, size),
		offsets:   make([]uint, order+2),
		width:     width,
		index:     make(map[uint64]uint32, size),
	}
	// Enumerate monomials degree by degree
	tuple := make([]uint8, vars)
	//
	for k := uint(0); k <= order; k++ {
		basis.offsets[k] = uint(len(basis.degrees))
		basis.enumerate(tuple, 0, k, uint8(k))
	}
	//
	basis.offsets[order+1] = uint(len(basis.degrees))
	// Sanity check
	if basis.Len() != uint(size) {
		panic("unreachable")
	}
	// Construct neighbour tables
	basis.initNeighbours()
	//
	return basis, nil
}

// Vars returns the number of variables of monomials in this basis.
func (p *Basis) Vars() uint {
	return p.vars
}

// Order returns the maximum total degree of monomials in this basis.
func (p *Basis) Order() uint {
	return p.order
}

// Len returns the number of slots in this basis.
func (p *Basis) Len() uint {
	return uint(len(p.degrees))
}

// Degree returns the total degree of the monomial in a given slot.
func (p *Basis) Degree(slot uint) uint {
	return uint(p.degrees[slot])
}

// Offset returns the first slot whose monomial has a given degree.  Since
// slots are ordered by degree, the monomials of degree k occupy exactly the
// slots Offset(k) upto (but not including) Offset(k+1).  For degrees beyond the
// order of this basis, this returns the basis size.
func (p *Basis) Offset(degree uint) uint {
	if degree > p.order {
		return p.Len()
	}
	//
	return p.offsets[degree]
}

// Exponent returns the exponent of a given variable in a given slot.
func (p *Basis) Exponent(slot uint, variable uint) uint {
	return uint(p.exponents[slot*p.vars+variable])
}

// MultiIndex returns the multi-index of the monomial in a given slot.  The
// returned multi-index is a fresh copy.
func (p *Basis) MultiIndex(slot uint) MultiIndex {
	var (
		m      = make(MultiIndex, p.vars)
		offset = slot * p.vars
	)
	//
	for i := range m {
		m[i] = uint(p.exponents[offset+uint(i)])
	}
	//
	return m
}

// SlotOf returns the slot of a given multi-index, or false if the multi-index
// is not part of this basis (e.g. because its degree exceeds the order).
func (p *Basis) SlotOf(m MultiIndex) (uint, bool) {
	if uint(len(m)) != p.vars {
		return 0, false
	}
	//
	var key uint64
	//
	for i, e := range m {
		if e > p.order {
			return 0, false
		}
		//
		key |= uint64(e) << (uint(i) * p.width)
	}
	//
	slot, ok := p.index[key]
	//
	return uint(slot), ok
}

// Raise returns the slot obtained by incrementing the exponent of a given
// variable in a given slot, or false if that would exceed the order.
func (p *Basis) Raise(slot uint, variable uint) (uint, bool) {
	s := p.raise[slot*p.vars+variable]
	return uint(s), s >= 0
}

// Lower returns the slot obtained by decrementing the exponent of a given
// variable in a given slot, or false if that exponent is zero.
func (p *Basis) Lower(slot uint, variable uint) (uint, bool) {
	s := p.lower[slot*p.vars+variable]
	return uint(s), s >= 0
}

// Enumerate all tuples from a given position onwards which sum to a given
// amount, in descending lexicographic order.
func (p *Basis) enumerate(tuple []uint8, pos uint, degree uint, remaining uint8) {
	if pos+1 == p.vars {
		tuple[pos] = remaining
		p.append(tuple, degree)
		//
		return
	}
	//
	for v := int(remaining); v >= 0; v-- {
		tuple[pos] = uint8(v)
		p.enumerate(tuple, pos+1, degree, remaining-uint8(v))
	}
}

// Append a new monomial onto the end of this basis.
func (p *Basis) append(tuple []uint8, degree uint) {
	var (
		slot = uint32(len(p.degrees))
		key  uint64
	)
	//
	for i, e := range tuple {
		key |= uint64(e) << (uint(i) * p.width)
	}
	//
	p.exponents = append(p.exponents, tuple...)
	p.degrees = append(p.degrees, uint8(degree))
	p.index[key] = slot
}

func (p *Basis) initNeighbours() {
	var (
		n     = p.Len()
		tuple = make(MultiIndex, p.vars)
	)
	//
	p.raise = make([]int32, n*p.vars)
	p.lower = make([]int32, n*p.vars)
	//
	for s := uint(0); s < n; s++ {
		offset := s * p.vars
		//
		for i := uint(0); i < p.vars; i++ {
			tuple[i] = uint(p.exponents[offset+i])
		}
		//
		for i := uint(0); i < p.vars; i++ {
			p.raise[offset+i] = -1
			p.lower[offset+i] = -1
			// Raise (if possible)
			if p.Degree(s) < p.order {
				tuple[i]++
				slot, _ := p.SlotOf(tuple)
				p.raise[offset+i] = int32(slot)
				tuple[i]--
			}
			// Lower (if possible)
			if tuple[i] > 0 {
				tuple[i]--
				slot, _ := p.SlotOf(tuple)
				p.lower[offset+i] = int32(slot)
				tuple[i]++
			}
		}
	}
}
