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
	"math"
)

// Elementary functions are computed one homogeneous degree at a time.  Writing
// u = u0 + u1 + ... + uN for the homogeneous parts of the argument, and
// f = f0 + f1 + ... + fN for those of the result, every function here
// satisfies a first-order ODE f' = g(f, u) u'.  Applying the Euler operator
// (which multiplies each homogeneous part by its degree) to both sides and
// matching degrees yields, for example,
//
//	k*fk = sum(j*uj*g(k-j), j=1..k)
//
// where the right-hand side refers only to parts of degree less than k.  Each
// product uj*g(k-j) is a product of homogeneous polynomials whose degree is
// exactly k, hence no truncation arises and the result agrees exactly with the
// Taylor expansion of f(u) upto the order of the algebra.

// Sin returns the sine of this series.
func (p *Series) Sin() (*Series, error) {
	s, _, err := p.SinCos()
	return s, err
}

// Cos returns the cosine of this series.
func (p *Series) Cos() (*Series, error) {
	_, c, err := p.SinCos()
	return c, err
}

// SinCos returns both the sine and cosine of this series, which are computed
// together since each is defined in terms of the other: sin' = cos*u' and
// cos' = -sin*u'.
func (p *Series) SinCos() (*Series, *Series, error) {
	if err := p.checkDomain("sin", finite); err != nil {
		return nil, nil, err
	}
	//
	var (
		alg   = p.algebra
		basis = alg.basis
		u     = p.coeffs
		sin   = Zero(alg)
		cos   = Zero(alg)
		s     = sin.coeffs
		c     = cos.coeffs
	)
	//
	s[0], c[0] = math.Sincos(u[0])
	//
	for k := uint(1); k <= basis.order; k++ {
		for j := uint(1); j <= k; j++ {
			w := float64(j) / float64(k)
			alg.mulHomogeneous(s, w, u, j, c, k-j)
			alg.mulHomogeneous(c, -w, u, j, s, k-j)
		}
	}
	//
	return sin, cos, nil
}

// Sinh returns the hyperbolic sine of this series.
func (p *Series) Sinh() (*Series, error) {
	s, _, err := p.sinhCosh()
	return s, err
}

// Cosh returns the hyperbolic cosine of this series.
func (p *Series) Cosh() (*Series, error) {
	_, c, err := p.sinhCosh()
	return c, err
}

// As for SinCos, except that sinh' = cosh*u' and cosh' = sinh*u'.
func (p *Series) sinhCosh() (*Series, *Series, error) {
	if err := p.checkDomain("sinh", finite); err != nil {
		return nil, nil, err
	}
	//
	var (
		alg   = p.algebra
		basis = alg.basis
		u     = p.coeffs
		sinh  = Zero(alg)
		cosh  = Zero(alg)
		s     = sinh.coeffs
		c     = cosh.coeffs
	)
	//
	s[0], c[0] = math.Sinh(u[0]), math.Cosh(u[0])
	//
	for k := uint(1); k <= basis.order; k++ {
		for j := uint(1); j <= k; j++ {
			w := float64(j) / float64(k)
			alg.mulHomogeneous(s, w, u, j, c, k-j)
			alg.mulHomogeneous(c, w, u, j, s, k-j)
		}
	}
	//
	return sinh, cosh, nil
}

// Exp returns the exponential of this series, using exp' = exp*u'.
func (p *Series) Exp() (*Series, error) {
	if err := p.checkDomain("exp", finite); err != nil {
		return nil, err
	}
	//
	var (
		alg   = p.algebra
		basis = alg.basis
		u     = p.coeffs
		res   = Zero(alg)
		e     = res.coeffs
	)
	//
	e[0] = math.Exp(u[0])
	//
	for k := uint(1); k <= basis.order; k++ {
		for j := uint(1); j <= k; j++ {
			alg.mulHomogeneous(e, float64(j)/float64(k), u, j, e, k-j)
		}
	}
	//
	return res, nil
}

// Log returns the natural logarithm of this series, which requires a positive
// constant part.  Since log' = u'/u, we have u*log' = u' and, hence,
//
//	k*u0*lk = k*uk - sum((k-j)*uj*l(k-j), j=1..k-1)
func (p *Series) Log() (*Series, error) {
	if err := p.checkDomain("log", positive); err != nil {
		return nil, err
	}
	//
	var (
		alg   = p.algebra
		basis = alg.basis
		u     = p.coeffs
		u0    = u[0]
		res   = Zero(alg)
		l     = res.coeffs
	)
	//
	l[0] = math.Log(u0)
	//
	for k := uint(1); k <= basis.order; k++ {
		for s := basis.Offset(k); s < basis.Offset(k+1); s++ {
			l[s] = u[s] / u0
		}
		//
		for j := uint(1); j < k; j++ {
			alg.mulHomogeneous(l, -float64(k-j)/(float64(k)*u0), u, j, l, k-j)
		}
	}
	//
	return res, nil
}

// Sqrt returns the square root of this series, which requires a positive
// constant part.  Since r*r = u, matching degree k gives
//
//	2*r0*rk = uk - sum(rj*r(k-j), j=1..k-1)
func (p *Series) Sqrt() (*Series, error) {
	if err := p.checkDomain("sqrt", positive); err != nil {
		return nil, err
	}
	//
	var (
		alg   = p.algebra
		basis = alg.basis
		u     = p.coeffs
		res   = Zero(alg)
		r     = res.coeffs
	)
	//
	r[0] = math.Sqrt(u[0])
	//
	for k := uint(1); k <= basis.order; k++ {
		for s := basis.Offset(k); s < basis.Offset(k+1); s++ {
			r[s] = u[s] / (2 * r[0])
		}
		//
		for j := uint(1); j < k; j++ {
			alg.mulHomogeneous(r, -1/(2*r[0]), r, j, r, k-j)
		}
	}
	//
	return res, nil
}

// Inv returns the multiplicative inverse of this series, which requires a
// non-zero constant part.  Since u*w = 1, matching degree k gives
//
//	u0*wk = -sum(uj*w(k-j), j=1..k)
func (p *Series) Inv() (*Series, error) {
	if err := p.checkDomain("invert", nonZero); err != nil {
		return nil, err
	}
	//
	var (
		alg   = p.algebra
		basis = alg.basis
		u     = p.coeffs
		res   = Zero(alg)
		w     = res.coeffs
	)
	//
	w[0] = 1 / u[0]
	//
	for k := uint(1); k <= basis.order; k++ {
		for j := uint(1); j <= k; j++ {
			alg.mulHomogeneous(w, -w[0], u, j, w, k-j)
		}
	}
	//
	return res, nil
}

// Div returns this series divided by another, which requires the divisor to
// have a non-zero constant part.
func (p *Series) Div(other *Series) (*Series, error) {
	if err := p.checkAlgebra("divide", other); err != nil {
		return nil, err
	}
	//
	inv, err := other.Inv()
	if err != nil {
		return nil, err
	}
	//
	return p.Mul(inv)
}

// Pow returns this series raised to a real power, which requires a positive
// constant part.  Since P' = a*P*u'/u, we have u*P' = a*P*u' and, hence,
//
//	k*u0*Pk = sum((a*j - (k-j))*uj*P(k-j), j=1..k)
func (p *Series) Pow(exponent float64) (*Series, error) {
	if err := p.checkDomain("pow", positive); err != nil {
		return nil, err
	}
	//
	var (
		alg   = p.algebra
		basis = alg.basis
		u     = p.coeffs
		u0    = u[0]
		res   = Zero(alg)
		r     = res.coeffs
	)
	//
	r[0] = math.Pow(u0, exponent)
	//
	for k := uint(1); k <= basis.order; k++ {
		for j := uint(1); j <= k; j++ {
			w := (exponent*float64(j) - float64(k-j)) / (float64(k) * u0)
			alg.mulHomogeneous(r, w, u, j, r, k-j)
		}
	}
	//
	return res, nil
}

// PowInt returns this series raised to an integer power using repeated
// squaring.  Negative powers require a non-zero constant part.
func (p *Series) PowInt(n int) (*Series, error) {
	var (
		base = p
		err  error
	)
	//
	if n < 0 {
		if base, err = p.Inv(); err != nil {
			return nil, err
		}
		//
		n = -n
	}
	//
	res := Constant(p.algebra, 1)
	//
	for n != 0 {
		if n&1 == 1 {
			if res, err = res.Mul(base); err != nil {
				return nil, err
			}
		}
		// div 2
		n >>= 1
		//
		if n != 0 {
			if base, err = base.Mul(base); err != nil {
				return nil, err
			}
		}
	}
	//
	return res, nil
}

// Domain restrictions on the constant part of an argument.
type domain uint8

const (
	finite domain = iota
	positive
	nonZero
)

// Check the constant part of this series lies within a given domain.  This is
// performed before any coefficient work begins.
func (p *Series) checkDomain(fn string, dom domain) error {
	u0 := p.coeffs[0]
	//
	switch {
	case math.IsNaN(u0) || math.IsInf(u0, 0):
		return fmt.Errorf("%w: %s of non-finite value %f", ErrDomain, fn, u0)
	case dom == positive && u0 <= 0:
		return fmt.Errorf("%w: %s requires positive constant part (was %f)", ErrDomain, fn, u0)
	case dom == nonZero && u0 == 0:
		return fmt.Errorf("%w: %s requires non-zero constant part", ErrDomain, fn)
	}
	//
	return nil
}
