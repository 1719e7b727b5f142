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
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-tpsa/pkg/tpsa"
	"github.com/consensys/go-tpsa/pkg/util/termio"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	log "github.com/sirupsen/logrus"
)

// seriesJson is the JSON form of a series, listing only its non-zero terms.
type seriesJson struct {
	Vars  uint       `json:"vars"`
	Order uint       `json:"order"`
	Point []float64  `json:"point,omitempty"`
	Terms []termJson `json:"terms"`
}

type termJson struct {
	Exponents   tpsa.MultiIndex `json:"exponents"`
	Degree      uint            `json:"degree"`
	Coefficient float64         `json:"coefficient"`
}

func toJson(s *tpsa.Series, point []float64) seriesJson {
	var terms = make([]termJson, 0)
	//
	for m, c := range s.Terms() {
		terms = append(terms, termJson{m, m.Degree(), c})
	}
	//
	return seriesJson{s.Algebra().Vars(), s.Algebra().Order(), point, terms}
}

func writeSeriesJson(out io.Writer, s *tpsa.Series, point []float64) error {
	bytes, err := json.MarshalIndent(toJson(s, point), "", "  ")
	if err != nil {
		return err
	}
	//
	_, err = fmt.Fprintln(out, string(bytes))
	//
	return err
}

// Construct a table of the non-zero coefficients of a given series.
func seriesTable(s *tpsa.Series) *termio.TablePrinter {
	var (
		basis = s.Algebra().Basis()
		rows  = []uint{}
	)
	//
	for i := range s.Len() {
		if s.At(i) != 0 {
			rows = append(rows, i)
		}
	}
	//
	tab := termio.NewTablePrinter(4, uint(len(rows))+1)
	tab.SetRow(0, "I", "COEFFICIENT", "ORDER", "EXPONENTS")
	tab.SetRowEscape(0, termio.BoldAnsiEscape().Build())
	tab.SetAlignment(3, termio.ALIGN_LEFT)
	//
	for i, slot := range rows {
		colour := termio.TERM_GREEN
		//
		if s.At(slot) < 0 {
			colour = termio.TERM_RED
		}
		//
		tab.SetEscape(1, uint(i+1), termio.NewAnsiEscape().FgColour(colour).Build())
		tab.SetRow(uint(i+1),
			fmt.Sprintf("%d", slot+1),
			fmt.Sprintf("%.16e", s.At(slot)),
			fmt.Sprintf("%d", basis.Degree(slot)),
			basis.MultiIndex(slot).String())
	}
	//
	return tab
}

// Construct a table listing the monomials of a given basis.
func basisTable(basis *tpsa.Basis) *termio.TablePrinter {
	tab := termio.NewTablePrinter(3, basis.Len()+1)
	tab.SetRow(0, "I", "ORDER", "EXPONENTS")
	tab.SetRowEscape(0, termio.BoldAnsiEscape().Build())
	tab.SetAlignment(2, termio.ALIGN_LEFT)
	//
	for slot := range basis.Len() {
		tab.SetRow(slot+1,
			fmt.Sprintf("%d", slot+1),
			fmt.Sprintf("%d", basis.Degree(slot)),
			basis.MultiIndex(slot).String())
		// Highlight first monomial of each degree
		if basis.Offset(basis.Degree(slot)) == slot {
			tab.SetEscape(1, slot+1, termio.NewAnsiEscape().FgColour(termio.TERM_BLUE).Build())
		}
	}
	//
	return tab
}

// Print a table to stdout, fitted to a given width or, if this is zero, to the
// terminal (if any).
func printTable(tab *termio.TablePrinter, width uint) {
	if width == 0 {
		width = termio.Width(os.Stdout)
	}
	//
	tab.AnsiEscapes(termio.IsTerminal(os.Stdout))
	tab.FitTo(width)
	//
	if err := tab.Print(os.Stdout); err != nil {
		log.Error(err)
	}
}

// Log the current state of all metrics exposed by a given registry.
func logMetrics(reg *prometheus.Registry) {
	if reg == nil {
		return
	}
	//
	families, err := reg.Gather()
	if err != nil {
		log.Warnf("gathering metrics: %v", err)
		return
	}
	//
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			log.Debugf("%s%s = %s", family.GetName(), formatLabels(metric.GetLabel()), formatValue(metric))
		}
	}
}

func formatLabels(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	//
	items := make([]string, len(labels))
	//
	for i, l := range labels {
		items[i] = fmt.Sprintf("%s=%q", l.GetName(), l.GetValue())
	}
	//
	return "{" + strings.Join(items, ",") + "}"
}

func formatValue(metric *dto.Metric) string {
	switch {
	case metric.Counter != nil:
		return fmt.Sprintf("%g", metric.GetCounter().GetValue())
	case metric.Gauge != nil:
		return fmt.Sprintf("%g", metric.GetGauge().GetValue())
	case metric.Histogram != nil:
		h := metric.GetHistogram()
		return fmt.Sprintf("%d samples, %gs total", h.GetSampleCount(), h.GetSampleSum())
	default:
		return "?"
	}
}
