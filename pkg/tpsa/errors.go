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

import "errors"

var (
	// ErrInvalidDimension is returned when an algebra is requested with zero
	// variables, a negative order, or a shape too large to be represented
	// densely.
	ErrInvalidDimension = errors.New("invalid algebra dimension")

	// ErrMismatchedAlgebra is returned when the operands of a binary operation
	// belong to algebras with different (variables, order).
	ErrMismatchedAlgebra = errors.New("mismatched algebras")

	// ErrInvalidCoefficients is returned when a coefficient list supplies more
	// entries than the constant plus linear slots, or contains a non-finite
	// value.
	ErrInvalidCoefficients = errors.New("invalid coefficients")

	// ErrDomain is returned when an elementary function is applied to a series
	// whose constant part lies outside the domain of that function.
	ErrDomain = errors.New("domain error")

	// ErrInvalidVariable is returned when a variable index is out of range, or
	// when the number of values supplied does not match the number of
	// variables.
	ErrInvalidVariable = errors.New("invalid variable")
)
