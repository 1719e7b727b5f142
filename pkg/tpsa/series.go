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
	"fmt"
	"iter"
	"math"
	"slices"
)

// Series represents a multivariate Taylor series truncated at the order of its
// algebra.  Coefficients are held densely, with one coefficient for each slot
// of the algebra's basis.  The algebra of a series is fixed for its lifetime.
//
// Operations which are not explicitly in-place (i.e. those whose names do not
// end in "Assign") always return a fresh series, and never share coefficients
// with their operands.
type Series struct {
	algebra *Algebra
	coeffs  []float64
}

// Zero constructs the zero series of a given algebra.
func Zero(alg *Algebra) *Series {
	return &Series{alg, make([]float64, alg.Len())}
}

// Constant constructs a series which holds a given constant (and is zero
// otherwise).
func Constant(alg *Algebra, c float64) *Series {
	p := Zero(alg)
	p.coeffs[0] = c
	//
	return p
}

// Variable constructs the series c + xi, where xi is the ith variable of a
// given algebra.  In other words, this is the identity map of variable i when
// expanded around the point c.  In an algebra of order zero, xi is truncated
// and this is simply the constant c.
func Variable(alg *Algebra, i uint, c float64) (*Series, error) {
	if i >= alg.Vars() {
		return nil, fmt.Errorf("%w: variable %d (algebra has %d variables)", ErrInvalidVariable, i, alg.Vars())
	}
	//
	p := Constant(alg, c)
	//
	if alg.Order() > 0 {
		p.coeffs[1+i] = 1
	}
	//
	return p, nil
}

// FromCoefficients constructs a series from the constant coefficient followed
// by the linear coefficient of each variable, in variable order.  Missing
// entries are taken as zero, whilst all higher degree coefficients are zero.
// In an algebra of order zero the linear coefficients are truncated (though
// still checked).  This fails with ErrInvalidCoefficients if more coefficients
// are provided than there are variables (plus one), or if any coefficient is
// not finite.
func FromCoefficients(alg *Algebra, coeffs ...float64) (*Series, error) {
	if uint(len(coeffs)) > alg.Vars()+1 {
		return nil, fmt.Errorf("%w: %d coefficients given for %d variables", ErrInvalidCoefficients, len(coeffs),
			alg.Vars())
	}
	//
	p := Zero(alg)
	//
	for i, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("%w: coefficient %d is %f", ErrInvalidCoefficients, i, c)
		}
		// Since slots are ordered by degree, slot 1+i is variable i.
		if uint(i) < p.Len() {
			p.coeffs[i] = c
		}
	}
	//
	return p, nil
}

// Algebra returns the algebra to which this series belongs.
func (p *Series) Algebra() *Algebra {
	return p.algebra
}

// Len returns the number of coefficients in this series.
func (p *Series) Len() uint {
	return uint(len(p.coeffs))
}

// Copy returns an independent copy of this series.
func (p *Series) Copy() *Series {
	return &Series{p.algebra, slices.Clone(p.coeffs)}
}

// Scalar returns the constant part of this series (i.e. its value at the
// expansion point).
func (p *Series) Scalar() float64 {
	return p.coeffs[0]
}

// At returns the coefficient held in a given slot of this series.
func (p *Series) At(slot uint) float64 {
	return p.coeffs[slot]
}

// Coefficients returns a copy of the coefficients of this series, indexed by
// slot.
func (p *Series) Coefficients() []float64 {
	return slices.Clone(p.coeffs)
}

// Coefficient returns the coefficient of a given monomial in this series.  Any
// monomial not in the basis (e.g. because its degree exceeds the order) has a
// zero coefficient.
func (p *Series) Coefficient(m MultiIndex) float64 {
	if slot, ok := p.algebra.basis.SlotOf(m); ok {
		return p.coeffs[slot]
	}
	//
	return 0
}

// SetCoefficient assigns the coefficient of a given monomial in this series.
// This fails if the monomial is not part of the basis, or the value is not
// finite.
func (p *Series) SetCoefficient(m MultiIndex, value float64) error {
	slot, ok := p.algebra.basis.SlotOf(m)
	//
	if !ok {
		return fmt.Errorf("%w: monomial (%s) not in algebra %s", ErrInvalidCoefficients, m.String(), p.algebra)
	} else if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: coefficient is %f", ErrInvalidCoefficients, value)
	}
	//
	p.coeffs[slot] = value
	//
	return nil
}

// Terms returns an iterator over the non-zero terms of this series, in slot
// order.
func (p *Series) Terms() iter.Seq2[MultiIndex, float64] {
	return func(yield func(MultiIndex, float64) bool) {
		for i, c := range p.coeffs {
			if c != 0 && !yield(p.algebra.basis.MultiIndex(uint(i)), c) {
				return
			}
		}
	}
}

// IsZero checks whether every coefficient of this series is zero.
func (p *Series) IsZero() bool {
	_, _, ok := p.algebra.degreeRange(p.coeffs)
	return !ok
}

// MaxDegree returns the highest degree with a non-zero coefficient, or false if
// this is the zero series.
func (p *Series) MaxDegree() (uint, bool) {
	_, hi, ok := p.algebra.degreeRange(p.coeffs)
	return hi, ok
}

// Equal checks whether two series belong to the same algebra and have exactly
// the same coefficients.
func (p *Series) Equal(other *Series) bool {
	return p.algebra == other.algebra && slices.Equal(p.coeffs, other.coeffs)
}

// ApproxEqual checks whether two series belong to the same algebra and each
// pair of coefficients differs by no more than a given tolerance.
func (p *Series) ApproxEqual(other *Series, tolerance float64) bool {
	if p.algebra != other.algebra {
		return false
	}
	//
	for i, c := range p.coeffs {
		if math.Abs(c-other.coeffs[i]) > tolerance {
			return false
		}
	}
	//
	return true
}

// Check that two series belong to the same algebra.
func (p *Series) checkAlgebra(op string, other *Series) error {
	if p.algebra != other.algebra {
		return fmt.Errorf("%w: cannot %s series of %s and %s", ErrMismatchedAlgebra, op, p.algebra, other.algebra)
	}
	//
	return nil
}
