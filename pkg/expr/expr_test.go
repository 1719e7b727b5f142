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
package expr

import (
	"errors"
	"math"
	"testing"

	"github.com/consensys/go-tpsa/pkg/tpsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Parser
// ============================================================================

func Test_Parse_01(t *testing.T) {
	checkParse(t, "x0", "x0")
	checkParse(t, "()", "()")
	checkParse(t, "(())", "(())")
	checkParse(t, "(+ x0 1)", "(+ x0 1)")
	checkParse(t, "  (sin\n\t(* x0   x1))  ", "(sin (* x0 x1))")
}

func Test_Parse_02(t *testing.T) {
	checkParse(t, "; comment\n(+ x0 ; inner\n 2)", "(+ x0 2)")
	checkParse(t, "(+(* x0 x1)x1)", "(+ (* x0 x1) x1)")
}

func Test_Parse_03(t *testing.T) {
	e, err := Parse("(sin (+ x0 1))")
	require.NoError(t, err)
	//
	l := e.(*List)
	assert.Equal(t, NewSpan(0, 14), l.Span())
	assert.Equal(t, NewSpan(1, 4), l.Elements[0].Span())
	assert.Equal(t, NewSpan(5, 13), l.Elements[1].Span())
	assert.Equal(t, "sin", l.Head())
}

func Test_Parse_04(t *testing.T) {
	checkParseError(t, "", NewSpan(0, 1))
	checkParseError(t, "(+ x0", NewSpan(0, 5))
	checkParseError(t, ")", NewSpan(0, 1))
	checkParseError(t, "(+ x0))", NewSpan(6, 7))
	checkParseError(t, "x0 x1", NewSpan(3, 5))
}

func Test_Highlight_01(t *testing.T) {
	err := &SyntaxError{NewSpan(3, 5), "oops", nil}
	assert.Equal(t, "x0 x1\n   ^^", err.Highlight("x0 x1"))
	//
	// Only the enclosing line is shown
	err = &SyntaxError{NewSpan(9, 11), "oops", nil}
	assert.Equal(t, "(* x1\n   ^^", err.Highlight("(+ x0\n(* x1\n x2)"))
	// Errors at the end of input
	err = &SyntaxError{NewSpan(2, 3), "oops", nil}
	assert.Equal(t, "ab\n  ^", err.Highlight("ab"))
}

// ============================================================================
// Evaluator
// ============================================================================

func Test_Evaluate_01(t *testing.T) {
	// Expanding around x0 = 2 at order 1 truncates the quadratic term.
	s := evaluate(t, tpsa.MustAlgebra(1, 1), "(* x0 x0)", 2.0)
	assert.Equal(t, []float64{4, 4}, s.Coefficients())
	//
	s = evaluate(t, tpsa.MustAlgebra(1, 2), "(* x0 x0)", 2.0)
	assert.Equal(t, []float64{4, 4, 1}, s.Coefficients())
}

func Test_Evaluate_02(t *testing.T) {
	s := evaluate(t, tpsa.MustAlgebra(1, 4), "(sin (/ pi 2))", 0.0)
	assert.InDelta(t, 1.0, s.Scalar(), 1e-15)
	assert.Equal(t, uint(0), maxDegree(s))
}

func Test_Evaluate_03(t *testing.T) {
	alg := tpsa.MustAlgebra(2, 4)
	x0, _ := tpsa.Variable(alg, 0, 0.5)
	x1, _ := tpsa.Variable(alg, 1, 1.5)
	// Build the same function directly
	prod, _ := x0.Mul(x1)
	sin, _ := prod.Sin()
	exp, _ := x1.Exp()
	expected, _ := sin.Sub(exp)
	expected = expected.Scale(2.0)
	//
	s := evaluate(t, alg, "(* 2 (- (sin (* x0 x1)) (exp x1)))", 0.5, 1.5)
	assert.True(t, expected.ApproxEqual(s, 1e-14))
}

func Test_Evaluate_04(t *testing.T) {
	alg := tpsa.MustAlgebra(2, 3)
	// Identities which hold exactly up to rounding.
	checkIdentity(t, alg, "(+ (* (sin x0) (sin x0)) (* (cos x0) (cos x0)))", "1", 0.3, -0.7)
	checkIdentity(t, alg, "(exp (log x1))", "x1", 0.3, 2.5)
	checkIdentity(t, alg, "(pow (sqrt x0) 2)", "x0", 1.3, 0.5)
	checkIdentity(t, alg, "(* x0 (inv x0))", "1", -1.3, 0.5)
	checkIdentity(t, alg, "(/ x0 x0 x1)", "(/ x1)", 1.3, 0.5)
	checkIdentity(t, alg, "(- (cosh x1) (sinh x1))", "(exp (- x1))", 0, 0.5)
	checkIdentity(t, alg, "(pow x1 0.5)", "(sqrt x1)", 0, 2.0)
	checkIdentity(t, alg, "(pow x1 -2)", "(inv (* x1 x1))", 0, -2.0)
	checkIdentity(t, alg, "(- x0 x1 x1)", "(+ x0 (* -2 x1))", 1, 2)
}

func Test_Evaluate_05(t *testing.T) {
	alg := tpsa.MustAlgebra(2, 3)
	checkIdentity(t, alg, "(deriv (* x0 x1) x1)", "x0", 1, 2)
	checkIdentity(t, alg, "(deriv (* x0 x0 x1) 0)", "(* 2 x0 x1)", 1, 2)
	checkIdentity(t, alg, "(deriv (integ (* x0 x1) x0) x0)", "(* x0 x1)", 1, 2)
}

func Test_Evaluate_06(t *testing.T) {
	alg := tpsa.MustAlgebra(2, 3)
	//
	checkEvalError(t, alg, "(foo x0)", NewSpan(1, 4), nil)
	checkEvalError(t, alg, "()", NewSpan(0, 2), nil)
	checkEvalError(t, alg, "(sin x0 x1)", NewSpan(0, 11), nil)
	checkEvalError(t, alg, "(+)", NewSpan(0, 3), nil)
	checkEvalError(t, alg, "(pow x0 (+ 1 1))", NewSpan(8, 15), nil)
	checkEvalError(t, alg, "(+ x0 y)", NewSpan(6, 7), nil)
	checkEvalError(t, alg, "(+ x0 x2)", NewSpan(6, 8), tpsa.ErrInvalidVariable)
	checkEvalError(t, alg, "(deriv x0 x5)", NewSpan(0, 13), tpsa.ErrInvalidVariable)
	checkEvalError(t, alg, "(* x0 inf)", NewSpan(6, 9), tpsa.ErrInvalidCoefficients)
	checkEvalError(t, alg, "(log (- x0 1))", NewSpan(0, 14), tpsa.ErrDomain)
	checkEvalError(t, alg, "(+ 1 (sqrt (- x1)))", NewSpan(5, 18), tpsa.ErrDomain)
	checkEvalError(t, alg, "(/ x1 (- x0 1))", NewSpan(0, 15), tpsa.ErrDomain)
}

func Test_Evaluate_07(t *testing.T) {
	_, err := NewEvaluator(tpsa.MustAlgebra(2, 3), 1.0)
	assert.True(t, errors.Is(err, tpsa.ErrInvalidVariable))
	//
	ev, err := NewEvaluator(tpsa.MustAlgebra(2, 3), 1.0, 2.0)
	require.NoError(t, err)
	assert.Equal(t, tpsa.MustAlgebra(2, 3), ev.Algebra())
	// Variables are not shared between evaluations
	s1, err := ev.Evaluate("x0")
	require.NoError(t, err)
	s1.ScaleAssign(0)
	s2, err := ev.Evaluate("x0")
	require.NoError(t, err)
	assert.Equal(t, 1.0, s2.Scalar())
}

func Test_Evaluate_08(t *testing.T) {
	// Only constant parts survive at order zero
	alg := tpsa.MustAlgebra(2, 0)
	s := evaluate(t, alg, "(* (sin x0) (exp x1))", 0.5, 2.0)
	//
	assert.Equal(t, uint(1), s.Len())
	assert.InDelta(t, math.Sin(0.5)*math.Exp(2), s.Scalar(), 1e-15)
	assert.True(t, evaluate(t, alg, "(deriv x0 0)", 0.5, 2.0).IsZero())
}

// ============================================================================
// Helpers
// ============================================================================

func checkParse(t *testing.T, input string, expected string) {
	t.Helper()
	//
	e, err := Parse(input)
	require.NoError(t, err)
	assert.Equal(t, expected, e.String())
}

func checkParseError(t *testing.T, input string, span Span) {
	t.Helper()
	//
	_, err := Parse(input)
	require.Error(t, err)
	//
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, span, serr.Span(), "input %q: %s", input, err)
}

func checkEvalError(t *testing.T, alg *tpsa.Algebra, input string, span Span, cause error) {
	t.Helper()
	//
	ev, err := NewEvaluator(alg, 1, 0)
	require.NoError(t, err)
	//
	_, err = ev.Evaluate(input)
	require.Error(t, err, "input %q", input)
	//
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, span, serr.Span(), "input %q: %s", input, err)
	//
	if cause != nil {
		assert.True(t, errors.Is(err, cause), "input %q: %s", input, err)
	}
}

func checkIdentity(t *testing.T, alg *tpsa.Algebra, lhs string, rhs string, point ...float64) {
	t.Helper()
	//
	l := evaluate(t, alg, lhs, point...)
	r := evaluate(t, alg, rhs, point...)
	//
	for i, c := range r.Coefficients() {
		assert.InDelta(t, c, l.At(uint(i)), 1e-12*math.Max(1, math.Abs(c)), "%s = %s (slot %d)", lhs, rhs, i)
	}
}

func evaluate(t *testing.T, alg *tpsa.Algebra, input string, point ...float64) *tpsa.Series {
	t.Helper()
	//
	ev, err := NewEvaluator(alg, point...)
	require.NoError(t, err)
	//
	s, err := ev.Evaluate(input)
	require.NoError(t, err, "input %q", input)
	//
	return s
}

func maxDegree(s *tpsa.Series) uint {
	d, _ := s.MaxDegree()
	return d
}
