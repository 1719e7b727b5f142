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
	"os"
	"strings"

	"github.com/consensys/go-tpsa/pkg/expr"
	"github.com/consensys/go-tpsa/pkg/util"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression",
	Short: "expand an expression as a truncated power series.",
	Long: `Expand a given S-expression as a truncated power series around a given point.
	 Variables are written x0, x1, etc.  The supported operations are + - * /
	 sin cos sinh cosh exp log sqrt inv, (pow e p) for a numeric power p, and
	 (deriv e xi) / (integ e xi) for the derivative and integral with respect to xi.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		reg := configure(cmd)
		text := strings.Join(args, " ")
		//
		alg, err := readAlgebra(cmd)
		if err != nil {
			exitWithError(err, text)
		}
		// Expand around the origin by default
		point := GetFloats(cmd, "at")
		if len(point) == 0 {
			point = make([]float64, alg.Vars())
		}
		//
		evaluator, err := expr.NewEvaluator(alg, point...)
		if err != nil {
			exitWithError(err, text)
		}
		//
		stats := util.NewPerfStats()
		result, err := evaluator.Evaluate(text)
		//
		if err != nil {
			exitWithError(err, text)
		}
		//
		stats.Log("Evaluating expression")
		//
		if GetFlag(cmd, "json") {
			if err := writeSeriesJson(os.Stdout, result, point); err != nil {
				exitWithError(err, text)
			}
		} else {
			printTable(seriesTable(result), GetUint(cmd, "width"))
		}
		//
		logMetrics(reg)
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().IntP("vars", "d", 1, "number of variables")
	evalCmd.Flags().IntP("order", "n", 1, "truncation order")
	evalCmd.Flags().Float64Slice("at", nil, "point around which to expand (defaults to the origin)")
	evalCmd.Flags().Uint("width", 0, "maximum table width (defaults to the terminal width)")
	evalCmd.Flags().Bool("json", false, "print the result as JSON")
}
