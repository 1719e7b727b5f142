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
	"strings"
)

// SExp is an S-Expression, which is either a List of zero or more
// S-Expressions or a Symbol.
type SExp interface {
	// IsList checks whether this S-Expression is a list.
	IsList() bool
	// IsSymbol checks whether this S-Expression is a symbol.
	IsSymbol() bool
	// Span returns the region of the original text covered by this
	// S-Expression.
	Span() Span
	// String generates a string representation.
	String() string
}

// Span represents a contiguous slice of the original text.  Spans are
// half-open, and are measured in runes.
type Span struct {
	start int
	end   int
}

// NewSpan constructs a new span.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}
	//
	return Span{start, end}
}

// Start returns the first index of this span.
func (p Span) Start() int { return p.start }

// End returns one past the last index of this span.
func (p Span) End() int { return p.end }

// ===================================================================
// List
// ===================================================================

// List represents a list of zero or more S-Expressions.
type List struct {
	Elements []SExp
	span     Span
}

var _ SExp = (*List)(nil)

// IsList sets that is a list.
func (l *List) IsList() bool { return true }

// IsSymbol that a List is not a Symbol.
func (l *List) IsSymbol() bool { return false }

// Span of this list, including its braces.
func (l *List) Span() Span { return l.span }

// Len gets the number of elements in this list.
func (l *List) Len() int { return len(l.Elements) }

// Head returns the leading symbol of this list, or "" if there is none.
func (l *List) Head() string {
	if len(l.Elements) > 0 {
		if s, ok := l.Elements[0].(*Symbol); ok {
			return s.Value
		}
	}
	//
	return ""
}

func (l *List) String() string {
	var s strings.Builder
	//
	s.WriteString("(")
	//
	for i, e := range l.Elements {
		if i != 0 {
			s.WriteString(" ")
		}
		//
		s.WriteString(e.String())
	}
	//
	s.WriteString(")")
	//
	return s.String()
}

// ===================================================================
// Symbol
// ===================================================================

// Symbol represents a terminating symbol.
type Symbol struct {
	Value string
	span  Span
}

var _ SExp = (*Symbol)(nil)

// IsList sets that A Symbol is not a List.
func (s *Symbol) IsList() bool { return false }

// IsSymbol sets tha is a Symbol.
func (s *Symbol) IsSymbol() bool { return true }

// Span of this symbol.
func (s *Symbol) Span() Span { return s.span }

func (s *Symbol) String() string { return s.Value }

// ===================================================================
// Errors
// ===================================================================

// SyntaxError is a structured error which retains the region of the original
// text where the error arose.  Errors raised by series operations are
// retained as the cause.
type SyntaxError struct {
	span  Span
	msg   string
	cause error
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Unwrap returns the underlying cause of this error (if any).
func (p *SyntaxError) Unwrap() error {
	return p.cause
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	if p.cause != nil {
		return fmt.Sprintf("%d:%d:%s (%v)", p.span.Start(), p.span.End(), p.msg, p.cause)
	}
	//
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.msg)
}

// Highlight renders the line of text containing this error, followed by a
// line of carets underneath the offending region.
func (p *SyntaxError) Highlight(text string) string {
	var (
		runes = []rune(text)
		start = min(p.span.Start(), len(runes))
		end   = min(max(p.span.End(), start+1), len(runes)+1)
		first = start
		last  = start
	)
	// Find enclosing line
	for first > 0 && runes[first-1] != '\n' {
		first--
	}
	//
	for last < len(runes) && runes[last] != '\n' {
		last++
	}
	//
	end = min(end, last+1)
	//
	return fmt.Sprintf("%s\n%s%s", string(runes[first:last]), strings.Repeat(" ", start-first),
		strings.Repeat("^", end-start))
}
