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
package termio

import (
	"fmt"
	"io"
	"strings"
)

// Alignment determines how the contents of a column are padded.
type Alignment uint8

const (
	// ALIGN_RIGHT pads cells on the left.
	ALIGN_RIGHT Alignment = iota
	// ALIGN_LEFT pads cells on the right.
	ALIGN_LEFT
)

// TablePrinter is useful for printing tables to the terminal.
type TablePrinter struct {
	widths        []uint
	alignment     []Alignment
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
	separator     string
}

// NewTablePrinter constructs a new table with given dimensions.
func NewTablePrinter(width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	alignment := make([]Alignment, width)
	rows := make([][]string, height)
	escapes := make([][]string, height)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
		escapes[i] = make([]string, width)
	}

	return &TablePrinter{widths, alignment, rows, escapes, true, "  "}
}

// Set the contents of a given cell in this table
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], uint(len(val)))
	p.rows[row][col] = val
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// SetEscape set the colour to use when printing the contents of a given cell
func (p *TablePrinter) SetEscape(col uint, row uint, escape string) {
	p.escapes[row][col] = escape
}

// SetRowEscape sets the escape used for every cell of a given row.
func (p *TablePrinter) SetRowEscape(row uint, escape string) {
	for col := range p.escapes[row] {
		p.escapes[row][col] = escape
	}
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Escapes should be disabled when the output is not a terminal as,
// otherwise, the escape characters become visible.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetAlignment determines how the cells of a given column are padded.
func (p *TablePrinter) SetAlignment(col uint, alignment Alignment) {
	p.alignment[col] = alignment
}

// SetSeparator sets the string printed between columns.
func (p *TablePrinter) SetSeparator(separator string) {
	p.separator = separator
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = max(p.widths[i], uint(len(vals[i])))
	}
	// Done
	p.rows[row] = vals
}

// SetMaxWidth puts an upper bound on the width of a given column.  Cells
// which exceed this are truncated when printed.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], max(width, 3))
}

// FitTo shrinks the widest column until the table fits within a given total
// width, or no column can shrink further.
func (p *TablePrinter) FitTo(total uint) {
	for p.lineWidth() > total {
		var widest uint
		//
		for i, w := range p.widths {
			if w > p.widths[widest] {
				widest = uint(i)
			}
		}
		//
		if p.widths[widest] <= 3 {
			return
		}
		//
		p.widths[widest]--
	}
}

// Print the table to a given writer.
func (p *TablePrinter) Print(out io.Writer) error {
	var line strings.Builder
	//
	for i := 0; i < len(p.rows); i++ {
		row := p.rows[i]
		escapes := p.escapes[i]
		//
		line.Reset()
		//
		for j, col := range row {
			jth_width := p.widths[j]
			jth_escape := escapes[j]
			//
			if j > 0 {
				line.WriteString(p.separator)
			}
			// Print colour (if applicable)
			if p.enableEscapes && jth_escape != "" {
				line.WriteString(jth_escape)
			}
			// Truncate data (if applicable)
			if uint(len(col)) > jth_width {
				col = col[0:jth_width-2] + ".."
			}
			//
			if p.alignment[j] == ALIGN_LEFT {
				fmt.Fprintf(&line, "%-*s", jth_width, col)
			} else {
				fmt.Fprintf(&line, "%*s", jth_width, col)
			}
			// Cancel colour (if applicable)
			if p.enableEscapes && jth_escape != "" {
				line.WriteString(ResetAnsiEscape().Build())
			}
		}
		// Trailing padding is dropped
		if _, err := io.WriteString(out, strings.TrimRight(line.String(), " ")+"\n"); err != nil {
			return err
		}
	}
	//
	return nil
}

func (p *TablePrinter) lineWidth() uint {
	var total uint
	//
	for _, w := range p.widths {
		total += w
	}
	//
	if n := uint(len(p.widths)); n > 1 {
		total += (n - 1) * uint(len(p.separator))
	}
	//
	return total
}
