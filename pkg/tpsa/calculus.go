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

	"github.com/consensys/go-tpsa/pkg/util/math"
)

// Derivative returns the partial derivative of this series with respect to a
// given variable.
func (p *Series) Derivative(variable uint) (*Series, error) {
	var basis = p.algebra.basis
	//
	if variable >= basis.vars {
		return nil, fmt.Errorf("%w: cannot differentiate by variable %d (algebra has %d variables)",
			ErrInvalidVariable, variable, basis.vars)
	}
	//
	res := Zero(p.algebra)
	// Constant slot never contributes
	for s := uint(1); s < basis.Len(); s++ {
		if c := p.coeffs[s]; c != 0 {
			if t, ok := basis.Lower(s, variable); ok {
				res.coeffs[t] += float64(basis.Exponent(s, variable)) * c
			}
		}
	}
	//
	return res, nil
}

// Integrate returns the indefinite integral of this series with respect to a
// given variable, where the constant of integration is zero.  Terms whose
// degree would exceed the order of the algebra are discarded.
func (p *Series) Integrate(variable uint) (*Series, error) {
	var basis = p.algebra.basis
	//
	if variable >= basis.vars {
		return nil, fmt.Errorf("%w: cannot integrate by variable %d (algebra has %d variables)",
			ErrInvalidVariable, variable, basis.vars)
	}
	//
	res := Zero(p.algebra)
	// Monomials of maximum degree are always truncated
	for s := uint(0); s < basis.Offset(basis.order); s++ {
		if c := p.coeffs[s]; c != 0 {
			t, _ := basis.Raise(s, variable)
			res.coeffs[t] += c / float64(basis.Exponent(s, variable)+1)
		}
	}
	//
	return res, nil
}

// Eval evaluates this series (as a polynomial) at a given point, where the
// point provides one value for each variable.  Terms are summed in ascending
// order of degree.
func (p *Series) Eval(point ...float64) (float64, error) {
	var (
		basis = p.algebra.basis
		vars  = basis.vars
	)
	//
	if uint(len(point)) != vars {
		return 0, fmt.Errorf("%w: %d values given for %d variables", ErrInvalidVariable, len(point), vars)
	}
	// Precompute powers
	powers := make([][]float64, vars)
	//
	for i, x := range point {
		powers[i] = math.PowTable(x, basis.order)
	}
	//
	var sum float64
	//
	for s, c := range p.coeffs {
		if c == 0 {
			continue
		}
		//
		term := c
		//
		for i := uint(0); i < vars; i++ {
			term *= powers[i][basis.Exponent(uint(s), i)]
		}
		//
		sum += term
	}
	//
	return sum, nil
}

// Compose substitutes one series for each variable of this series, producing
// p(args[0], ..., args[n-1]).  All arguments must belong to the same algebra,
// which determines the algebra of the result (this need not be the algebra of
// this series).  The result is truncated at every step.
func (p *Series) Compose(args ...*Series) (*Series, error) {
	var basis = p.algebra.basis
	//
	if uint(len(args)) != basis.vars {
		return nil, fmt.Errorf("%w: %d arguments given for %d variables", ErrInvalidVariable, len(args),
			basis.vars)
	}
	//
	target := args[0].algebra
	//
	for _, arg := range args[1:] {
		if err := args[0].checkAlgebra("compose", arg); err != nil {
			return nil, err
		}
	}
	//
	res := Constant(target, p.coeffs[0])
	// Nothing more to do if this is a constant
	maxDegree, ok := p.MaxDegree()
	if !ok || maxDegree == 0 {
		return res, nil
	}
	// One buffer per degree holds the monomial currently being visited at that
	// degree, evaluated on the arguments.
	buffers := make([][]float64, maxDegree+1)
	//
	for k := range buffers {
		buffers[k] = make([]float64, target.Len())
	}
	//
	buffers[0][0] = 1
	p.composeFrom(res, args, buffers, 0, 0)
	//
	return res, nil
}

// Visit the monomials extending a given slot by variables no smaller than
// first, in depth-first order, and accumulate their contribution to the
// result.  Every monomial is reached exactly once, from the slot obtained by
// decrementing its last variable, hence at most one monomial per degree is
// held at any time.
func (p *Series) composeFrom(res *Series, args []*Series, buffers [][]float64, slot uint, first uint) {
	var (
		basis  = p.algebra.basis
		target = res.algebra
		degree = basis.Degree(slot)
	)
	//
	if degree+1 >= uint(len(buffers)) {
		return
	}
	//
	parent, monomial := buffers[degree], buffers[degree+1]
	//
	for i := first; i < basis.vars; i++ {
		child, _ := basis.Raise(slot, i)
		//
		clear(monomial)
		target.mul(monomial, parent, args[i].coeffs)
		//
		if c := p.coeffs[child]; c != 0 {
			for j, m := range monomial {
				res.coeffs[j] += c * m
			}
		}
		//
		p.composeFrom(res, args, buffers, child, i)
	}
}
