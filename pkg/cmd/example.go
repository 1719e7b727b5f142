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
	"math"
	"os"

	"github.com/consensys/go-tpsa/pkg/tpsa/fixed"
	"github.com/consensys/go-tpsa/pkg/util"
	"github.com/spf13/cobra"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "run a small getting-started workload.",
	Long: `Run a small workload over series with six variables truncated at order
	 four: squaring a series, evaluating sin(pi/2) and comparing sin with a
	 Taylor expansion summed in the algebra.`,
	Run: func(cmd *cobra.Command, args []string) {
		reg := configure(cmd)
		stats := util.NewPerfStats()
		//
		if err := runExample(os.Stdout); err != nil {
			exitWithError(err, "")
		}
		//
		stats.Log("Running example")
		logMetrics(reg)
	},
}

// Terms summed after the first in the Taylor expansion of sin, which reaches
// x^19.
const exampleTerms = 9

func runExample(out io.Writer) error {
	// x = 2 + x0
	x, err := fixed.NewTpsa6D4(2.0, 1.0)
	if err != nil {
		return err
	}
	//
	fmt.Fprintf(out, "x =\n%s\n", x)
	fmt.Fprintf(out, "x * x =\n%s\n", x.Mul(x))
	// sin(pi/2)
	y, err := fixed.NewTpsa6D4(math.Pi / 2)
	if err != nil {
		return err
	}
	//
	sy, err := y.Sin()
	if err != nil {
		return err
	}
	//
	fmt.Fprintf(out, "sin(pi/2) = %.16f\n\n", sy.Scalar())
	// sin(z) around z = 0.5 + 0.1*x0 + ... + 0.6*x5
	z, err := fixed.NewTpsa6D4(0.5, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6)
	if err != nil {
		return err
	}
	//
	taylor := taylorSin(z, exampleTerms)
	//
	engine, err := z.Sin()
	if err != nil {
		return err
	}
	//
	diff := taylor.Copy()
	diff.AddAssign(engine.MulScalar(-1))
	//
	var worst float64
	for _, c := range diff.Series().Coefficients() {
		worst = max(worst, math.Abs(c))
	}
	//
	fmt.Fprintf(out, "sin(z) =\n%s\n", engine)
	fmt.Fprintf(out, "max |taylor(z) - sin(z)| = %.3e\n", worst)
	//
	return nil
}

// Sum the Taylor expansion of sin around zero, up to (and including) the
// term of degree 2n+1.
func taylorSin(x *fixed.Tpsa6D4, n int) *fixed.Tpsa6D4 {
	var (
		sum  = x.Copy()
		term = x.Copy()
		x2   = x.Mul(x)
	)
	//
	for k := 1; k <= n; k++ {
		term.MulAssign(x2).MulScalarAssign(-1.0 / float64((2*k)*(2*k+1)))
		sum.AddAssign(term)
	}
	//
	return sum
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}
