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

import "slices"

// Add returns the sum of this series and another.
func (p *Series) Add(other *Series) (*Series, error) {
	res := p.Copy()
	//
	if err := res.AddAssign(other); err != nil {
		return nil, err
	}
	//
	return res, nil
}

// AddAssign adds another series onto this series, such that this series is
// updated in place.
func (p *Series) AddAssign(other *Series) error {
	if err := p.checkAlgebra("add", other); err != nil {
		return err
	}
	//
	for i, c := range other.coeffs {
		p.coeffs[i] += c
	}
	//
	return nil
}

// Sub returns the difference of this series and another.
func (p *Series) Sub(other *Series) (*Series, error) {
	res := p.Copy()
	//
	if err := res.SubAssign(other); err != nil {
		return nil, err
	}
	//
	return res, nil
}

// SubAssign subtracts another series from this series, such that this series
// is updated in place.
func (p *Series) SubAssign(other *Series) error {
	if err := p.checkAlgebra("subtract", other); err != nil {
		return err
	}
	//
	for i, c := range other.coeffs {
		p.coeffs[i] -= c
	}
	//
	return nil
}

// Mul returns the truncated product of this series and another.  Terms whose
// degree exceeds the order of the algebra are discarded.
func (p *Series) Mul(other *Series) (*Series, error) {
	if err := p.checkAlgebra("multiply", other); err != nil {
		return nil, err
	}
	//
	res := Zero(p.algebra)
	p.algebra.mul(res.coeffs, p.coeffs, other.coeffs)
	//
	return res, nil
}

// MulAssign multiplies this series by another, such that this series is
// updated in place.  The other series may be this series.
func (p *Series) MulAssign(other *Series) error {
	res, err := p.Mul(other)
	//
	if err == nil {
		copy(p.coeffs, res.coeffs)
	}
	//
	return err
}

// Scale returns this series multiplied by a scalar.
func (p *Series) Scale(scalar float64) *Series {
	res := p.Copy()
	res.ScaleAssign(scalar)
	//
	return res
}

// ScaleAssign multiplies this series by a scalar, such that this series is
// updated in place.
func (p *Series) ScaleAssign(scalar float64) {
	if scalar == 0 {
		// Ensures no NaNs are propagated from infinite coefficients.
		clear(p.coeffs)
		return
	}
	//
	for i := range p.coeffs {
		p.coeffs[i] *= scalar
	}
}

// AddConstant returns this series with a given constant added to its constant
// part.
func (p *Series) AddConstant(c float64) *Series {
	res := p.Copy()
	res.coeffs[0] += c
	//
	return res
}

// Neg returns the negation of this series.
func (p *Series) Neg() *Series {
	return p.Scale(-1)
}

// Deviation returns this series with its constant part removed.
func (p *Series) Deviation() *Series {
	res := &Series{p.algebra, slices.Clone(p.coeffs)}
	res.coeffs[0] = 0
	//
	return res
}
