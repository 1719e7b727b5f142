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
// Package fixed provides truncated power series types of a fixed shape, which
// wrap the generic series of package tpsa.  The types in this package are
// generated by internal/generator, and share a single cached algebra per
// shape.
package fixed

import (
	"fmt"

	"github.com/consensys/go-tpsa/pkg/tpsa"
)

// Ring operations between two values of the same fixed type cannot mismatch.
func must(s *tpsa.Series, err error) *tpsa.Series {
	if err != nil {
		panic(err.Error())
	}
	//
	return s
}

func mustAssign(err error) {
	if err != nil {
		panic(err.Error())
	}
}

func checkShape(s *tpsa.Series, alg *tpsa.Algebra) error {
	if s.Algebra() != alg {
		return fmt.Errorf("%w: expected series of %s, got %s", tpsa.ErrMismatchedAlgebra, alg, s.Algebra())
	}
	//
	return nil
}
