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
package math

import (
	"math"
	"testing"
)

func Test_Pow_0(t *testing.T) {
	check(0, t)
}

func Test_Pow_1(t *testing.T) {
	check(1, t)
}

func Test_Pow_2(t *testing.T) {
	check(2, t)
}

func Test_Pow_3(t *testing.T) {
	check(3, t)
}

func Test_Pow_4(t *testing.T) {
	check(-2, t)
}

func Test_Pow_5(t *testing.T) {
	check(0.5, t)
}

func Test_PowTable_01(t *testing.T) {
	table := PowTable(3, 5)
	//
	for i, v := range table {
		if e := bruteForce(3, uint(i)); v != e {
			t.Errorf("3^%d == %f != %f", i, v, e)
		}
	}
}

func Test_Binomial_01(t *testing.T) {
	checkBinomial(t, 0, 0, 1)
	checkBinomial(t, 5, 0, 1)
	checkBinomial(t, 5, 5, 1)
	checkBinomial(t, 5, 6, 0)
}

func Test_Binomial_02(t *testing.T) {
	checkBinomial(t, 10, 6, 210)
	checkBinomial(t, 8, 4, 70)
	checkBinomial(t, 20, 10, 184756)
	checkBinomial(t, 52, 5, 2598960)
}

func Test_Binomial_03(t *testing.T) {
	// Pascal's rule
	for n := uint64(1); n < 40; n++ {
		for k := uint64(1); k < n; k++ {
			a, _ := Binomial(n-1, k-1)
			b, _ := Binomial(n-1, k)
			checkBinomial(t, n, k, a+b)
		}
	}
}

func Test_Binomial_04(t *testing.T) {
	if _, ok := Binomial(200, 100); ok {
		t.Errorf("C(200,100) should overflow")
	}
	//
	if v, ok := Binomial(66, 33); !ok || v != 7219428434016265740 {
		t.Errorf("C(66,33) == %d (%t)", v, ok)
	}
}

func Test_Sum_01(t *testing.T) {
	if s := Sum[uint](); s != 0 {
		t.Errorf("empty sum == %d", s)
	}
	//
	if s := Sum[uint](1, 2, 3, 4); s != 10 {
		t.Errorf("1+2+3+4 == %d", s)
	}
}

func check(base float64, t *testing.T) {
	table := PowTable(base, 9)
	//
	if len(table) != 10 {
		t.Fatalf("expected 10 powers, got %d", len(table))
	}
	//
	for i := uint(0); i < 10; i++ {
		// Bruteforce solution
		e := bruteForce(base, i)
		// Check for a match
		if x := table[i]; x != e && math.Abs(x-e) > 1e-12 {
			t.Errorf("%f^%d == %f != %f", base, i, x, e)
		}
	}
}

func checkBinomial(t *testing.T, n, k, expected uint64) {
	if v, ok := Binomial(n, k); !ok || v != expected {
		t.Errorf("C(%d,%d) == %d (expected %d)", n, k, v, expected)
	}
}

func bruteForce(base float64, exp uint) float64 {
	acc := 1.0
	for i := uint(0); i < exp; i++ {
		acc *= base
	}

	return acc
}
