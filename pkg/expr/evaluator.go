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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/consensys/go-tpsa/pkg/tpsa"
)

// UnaryRule translates a list with exactly one (already translated) argument.
type UnaryRule func(*tpsa.Series) (*tpsa.Series, error)

// RecursiveRule translates a list with one or more (already translated)
// arguments.
type RecursiveRule func([]*tpsa.Series) (*tpsa.Series, error)

// ScalarRule translates a list whose first argument is a (translated)
// expression, and whose second argument is a symbol.
type ScalarRule func(*tpsa.Series, string) (*tpsa.Series, error)

type listRule func(*Evaluator, *List) (*tpsa.Series, error)

// Evaluator translates S-Expressions over the variables of a given algebra
// into truncated power series.  Each variable xi is expanded around a given
// point, so that an expression evaluates to the Taylor expansion of the
// function it describes around that point.
type Evaluator struct {
	algebra *tpsa.Algebra
	vars    []*tpsa.Series
	lists   map[string]listRule
}

// NewEvaluator constructs an evaluator for a given algebra, expanding around
// a given point.  The point must have one coordinate per variable.
func NewEvaluator(alg *tpsa.Algebra, point ...float64) (*Evaluator, error) {
	if uint(len(point)) != alg.Vars() {
		return nil, fmt.Errorf("%w: expected point with %d coordinates, got %d", tpsa.ErrInvalidVariable,
			alg.Vars(), len(point))
	}
	//
	vars := make([]*tpsa.Series, len(point))
	//
	for i, c := range point {
		v, err := tpsa.Variable(alg, uint(i), c)
		if err != nil {
			return nil, err
		}
		//
		vars[i] = v
	}
	//
	p := &Evaluator{alg, vars, make(map[string]listRule)}
	p.addDefaultRules()
	//
	return p, nil
}

// Algebra returns the algebra of series produced by this evaluator.
func (p *Evaluator) Algebra() *tpsa.Algebra {
	return p.algebra
}

// Evaluate parses and translates a given string.
func (p *Evaluator) Evaluate(text string) (*tpsa.Series, error) {
	e, err := Parse(text)
	if err != nil {
		return nil, err
	}
	//
	return p.Translate(e)
}

// Translate a given S-Expression into a series.
func (p *Evaluator) Translate(e SExp) (*tpsa.Series, error) {
	switch e := e.(type) {
	case *List:
		rule, ok := p.lists[e.Head()]
		//
		if len(e.Elements) == 0 {
			return nil, &SyntaxError{e.Span(), "empty list", nil}
		} else if !ok {
			return nil, &SyntaxError{e.Elements[0].Span(), "unknown operation", nil}
		}
		//
		return rule(p, e)
	case *Symbol:
		return p.translateSymbol(e)
	}
	//
	panic("unreachable")
}

// AddUnaryRule registers a list operation with exactly one argument.
func (p *Evaluator) AddUnaryRule(name string, t UnaryRule) {
	p.lists[name] = func(p *Evaluator, l *List) (*tpsa.Series, error) {
		if len(l.Elements) != 2 {
			return nil, arityError(l, "exactly one argument")
		}
		//
		arg, err := p.Translate(l.Elements[1])
		if err != nil {
			return nil, err
		}
		//
		result, err := t(arg)
		//
		return wrap(l, result, err)
	}
}

// AddRecursiveRule registers a list operation with one or more arguments.
func (p *Evaluator) AddRecursiveRule(name string, t RecursiveRule) {
	p.lists[name] = func(p *Evaluator, l *List) (*tpsa.Series, error) {
		if len(l.Elements) < 2 {
			return nil, arityError(l, "at least one argument")
		}
		// Translate arguments
		args := make([]*tpsa.Series, len(l.Elements)-1)
		//
		for i, s := range l.Elements[1:] {
			var err error
			//
			if args[i], err = p.Translate(s); err != nil {
				return nil, err
			}
		}
		//
		result, err := t(args)
		//
		return wrap(l, result, err)
	}
}

// AddScalarRule registers a list operation with an expression argument
// followed by a symbol argument.
func (p *Evaluator) AddScalarRule(name string, t ScalarRule) {
	p.lists[name] = func(p *Evaluator, l *List) (*tpsa.Series, error) {
		if len(l.Elements) != 3 {
			return nil, arityError(l, "exactly two arguments")
		}
		//
		arg, err := p.Translate(l.Elements[1])
		if err != nil {
			return nil, err
		}
		//
		sym, ok := l.Elements[2].(*Symbol)
		if !ok {
			return nil, &SyntaxError{l.Elements[2].Span(), "expected symbol", nil}
		}
		//
		result, err := t(arg, sym.Value)
		//
		return wrap(l, result, err)
	}
}

func (p *Evaluator) addDefaultRules() {
	p.AddRecursiveRule("+", fold((*tpsa.Series).Add))
	p.AddRecursiveRule("*", fold((*tpsa.Series).Mul))
	p.AddRecursiveRule("-", func(args []*tpsa.Series) (*tpsa.Series, error) {
		if len(args) == 1 {
			return args[0].Neg(), nil
		}
		//
		return fold((*tpsa.Series).Sub)(args)
	})
	p.AddRecursiveRule("/", func(args []*tpsa.Series) (*tpsa.Series, error) {
		if len(args) == 1 {
			return args[0].Inv()
		}
		//
		return fold((*tpsa.Series).Div)(args)
	})
	p.AddUnaryRule("sin", (*tpsa.Series).Sin)
	p.AddUnaryRule("cos", (*tpsa.Series).Cos)
	p.AddUnaryRule("sinh", (*tpsa.Series).Sinh)
	p.AddUnaryRule("cosh", (*tpsa.Series).Cosh)
	p.AddUnaryRule("exp", (*tpsa.Series).Exp)
	p.AddUnaryRule("log", (*tpsa.Series).Log)
	p.AddUnaryRule("sqrt", (*tpsa.Series).Sqrt)
	p.AddUnaryRule("inv", (*tpsa.Series).Inv)
	p.AddScalarRule("pow", translatePow)
	p.AddScalarRule("deriv", func(arg *tpsa.Series, v string) (*tpsa.Series, error) {
		i, err := parseVariable(v)
		if err != nil {
			return nil, err
		}
		//
		return arg.Derivative(i)
	})
	p.AddScalarRule("integ", func(arg *tpsa.Series, v string) (*tpsa.Series, error) {
		i, err := parseVariable(v)
		if err != nil {
			return nil, err
		}
		//
		return arg.Integrate(i)
	})
}

func (p *Evaluator) translateSymbol(s *Symbol) (*tpsa.Series, error) {
	if s.Value == "pi" {
		return tpsa.Constant(p.algebra, math.Pi), nil
	} else if strings.HasPrefix(s.Value, "x") {
		i, err := parseVariable(s.Value)
		//
		if err != nil {
			return nil, &SyntaxError{s.Span(), "invalid variable", err}
		} else if i >= uint(len(p.vars)) {
			return nil, &SyntaxError{s.Span(), "unknown variable",
				fmt.Errorf("%w: %d >= %d", tpsa.ErrInvalidVariable, i, len(p.vars))}
		}
		//
		return p.vars[i].Copy(), nil
	}
	//
	val, err := strconv.ParseFloat(s.Value, 64)
	if err != nil {
		return nil, &SyntaxError{s.Span(), "unknown symbol", nil}
	}
	//
	result, err := tpsa.FromCoefficients(p.algebra, val)
	//
	return wrap(s, result, err)
}

// (pow e p) with integral p uses repeated squaring, which also admits
// non-positive bases.
func translatePow(arg *tpsa.Series, exponent string) (*tpsa.Series, error) {
	val, err := strconv.ParseFloat(exponent, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid exponent %q", exponent)
	} else if val == math.Trunc(val) && math.Abs(val) <= math.MaxInt32 {
		return arg.PowInt(int(val))
	}
	//
	return arg.Pow(val)
}

// Variables are written either as an index or as x followed by an index.
func parseVariable(v string) (uint, error) {
	i, err := strconv.ParseUint(strings.TrimPrefix(v, "x"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", tpsa.ErrInvalidVariable, v)
	}
	//
	return uint(i), nil
}

func fold(op func(*tpsa.Series, *tpsa.Series) (*tpsa.Series, error)) RecursiveRule {
	return func(args []*tpsa.Series) (*tpsa.Series, error) {
		acc := args[0]
		//
		for _, arg := range args[1:] {
			var err error
			//
			if acc, err = op(acc, arg); err != nil {
				return nil, err
			}
		}
		//
		return acc, nil
	}
}

func arityError(l *List, expected string) *SyntaxError {
	return &SyntaxError{l.Span(), fmt.Sprintf("%s expects %s", l.Head(), expected), nil}
}

// Attach the position of a given S-Expression to a failed series operation.
func wrap(e SExp, s *tpsa.Series, err error) (*tpsa.Series, error) {
	if err != nil {
		return nil, &SyntaxError{e.Span(), "cannot evaluate " + e.String(), err}
	}
	//
	return s, nil
}
