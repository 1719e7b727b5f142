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
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Algebra identifies a truncated power series algebra in a fixed number of
// variables and truncated at a fixed order.  It bundles the monomial basis and
// multiplication table shared by every series of that shape.  Algebras are
// immutable and are obtained via NewAlgebra, which guarantees that at most one
// algebra exists for any given shape.  Hence, two series belong to the same
// algebra exactly when their algebras are identical.
type Algebra struct {
	basis *Basis
	table *MulTable
}

// algebraKey identifies an algebra within the cache.
type algebraKey struct {
	vars  uint
	order uint
}

// Process-wide cache of algebras.  Entries are built at most once, and never
// removed or modified after being added.
var (
	algebraLock sync.RWMutex
	algebras    = make(map[algebraKey]*Algebra)
)

// NewAlgebra returns the algebra for a given number of variables and a given
// truncation order.  The first request for a given shape builds its basis and
// multiplication table, whilst subsequent requests return the same algebra.
// This is safe for concurrent use and, in particular, concurrent first
// requests for the same shape build it exactly once.
func NewAlgebra(vars uint, order uint) (*Algebra, error) {
	var key = algebraKey{vars, order}
	// Since we anticipate a large number of cache hits compared with cache
	// misses, we first check under a read lock.
	algebraLock.RLock()
	alg, ok := algebras[key]
	algebraLock.RUnlock()
	//
	if ok {
		algebraLookups.WithLabelValues("hit").Inc()
		return alg, nil
	}
	// Begin critical section
	algebraLock.Lock()
	defer algebraLock.Unlock()
	// Recheck whether algebra was built in between the read lock being released
	// (unlikely, but it is possible).
	if alg, ok = algebras[key]; ok {
		algebraLookups.WithLabelValues("hit").Inc()
		return alg, nil
	}
	//
	algebraLookups.WithLabelValues("miss").Inc()
	//
	alg, err := buildAlgebra(vars, order)
	//
	if err == nil {
		algebras[key] = alg
		algebrasCached.Set(float64(len(algebras)))
	}
	//
	return alg, err
}

// MustAlgebra returns the algebra for a given number of variables and a given
// order, and panics if no such algebra can exist.  This is intended for shapes
// which are fixed at compile time.
func MustAlgebra(vars uint, order uint) *Algebra {
	alg, err := NewAlgebra(vars, order)
	//
	if err != nil {
		panic(err)
	}
	//
	return alg
}

func buildAlgebra(vars uint, order uint) (*Algebra, error) {
	start := time.Now()
	//
	basis, err := NewBasis(vars, order)
	if err != nil {
		return nil, err
	}
	//
	table := NewMulTable(basis)
	elapsed := time.Since(start)
	//
	algebraBuildSeconds.Observe(elapsed.Seconds())
	log.Debugf("built algebra (vars=%d, order=%d) with %d monomials and %d products in %s", vars, order,
		basis.Len(), table.Len(), elapsed)
	//
	return &Algebra{basis, table}, nil
}

// Vars returns the number of variables in this algebra.
func (p *Algebra) Vars() uint {
	return p.basis.vars
}

// Order returns the truncation order of this algebra.
func (p *Algebra) Order() uint {
	return p.basis.order
}

// Len returns the number of monomials (i.e. coefficients) in any series of
// this algebra.
func (p *Algebra) Len() uint {
	return p.basis.Len()
}

// Basis returns the monomial basis of this algebra.
func (p *Algebra) Basis() *Basis {
	return p.basis
}

// MulTable returns the multiplication table of this algebra.
func (p *Algebra) MulTable() *MulTable {
	return p.table
}

func (p *Algebra) String() string {
	return fmt.Sprintf("(vars=%d, order=%d)", p.Vars(), p.Order())
}

// Determine the lowest and highest degrees with a non-zero coefficient in a
// given coefficient vector.  This returns false if all coefficients are zero.
func (p *Algebra) degreeRange(coeffs []float64) (uint, uint, bool) {
	var (
		lo, hi = -1, -1
	)
	//
	for i, c := range coeffs {
		if c != 0 {
			lo = i
			break
		}
	}
	//
	if lo < 0 {
		return 0, 0, false
	}
	//
	for i := len(coeffs) - 1; i >= lo; i-- {
		if coeffs[i] != 0 {
			hi = i
			break
		}
	}
	//
	return p.basis.Degree(uint(lo)), p.basis.Degree(uint(hi)), true
}

// Accumulate the truncated product of two coefficient vectors into a third.
// Only pairs whose combined degree is within the order are visited, and these
// are further pruned by the degree range of each operand.  The target must not
// alias either operand.
func (p *Algebra) mul(target []float64, lhs []float64, rhs []float64) {
	var (
		basis = p.basis
		order = basis.order
	)
	//
	llo, lhi, lok := p.degreeRange(lhs)
	rlo, rhi, rok := p.degreeRange(rhs)
	// Check for zero operands, or a product which is entirely truncated.
	if !lok || !rok || llo+rlo > order {
		return
	}
	//
	rstart := basis.Offset(rlo)
	//
	for a := basis.Offset(llo); a < basis.Offset(lhi+1); a++ {
		var (
			x   = lhs[a]
			deg = basis.Degree(a)
		)
		//
		if deg+rlo > order {
			// all remaining slots have at least this degree
			break
		} else if x == 0 {
			continue
		}
		//
		var (
			row  = p.table.row(a)
			rend = basis.Offset(min(rhi, order-deg) + 1)
		)
		//
		for b := rstart; b < rend; b++ {
			if y := rhs[b]; y != 0 {
				target[row[b]] += x * y
			}
		}
	}
}

// Accumulate scale * x_j * y_m into a target, where x_j is the homogeneous
// part of degree j from x and y_m is the homogeneous part of degree m from y.
// This requires j+m <= order.  The target may alias x when m > 0, and may alias
// y when j > 0, since the parts read are then disjoint from the part written.
func (p *Algebra) mulHomogeneous(target []float64, scale float64, x []float64, j uint, y []float64, m uint) {
	var (
		basis  = p.basis
		ystart = basis.Offset(m)
		yend   = basis.Offset(m + 1)
	)
	//
	for a := basis.Offset(j); a < basis.Offset(j+1); a++ {
		xa := x[a]
		//
		if xa == 0 {
			continue
		}
		//
		xa *= scale
		row := p.table.row(a)
		//
		for b := ystart; b < yend; b++ {
			if yb := y[b]; yb != 0 {
				target[row[b]] += xa * yb
			}
		}
	}
}
