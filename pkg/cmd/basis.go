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

	"github.com/consensys/go-tpsa/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var basisCmd = &cobra.Command{
	Use:   "basis [flags]",
	Short: "print the monomial basis of an algebra.",
	Long: `Print the monomials of the algebra with a given number of variables
	 and truncation order, in slot order.`,
	Run: func(cmd *cobra.Command, args []string) {
		reg := configure(cmd)
		stats := util.NewPerfStats()
		//
		alg, err := readAlgebra(cmd)
		if err != nil {
			exitWithError(err, "")
		}
		//
		stats.Log("Constructing algebra")
		//
		if GetFlag(cmd, "summary") {
			fmt.Printf("%d monomials, %d products\n", alg.Len(), alg.MulTable().Len())
		} else {
			printTable(basisTable(alg.Basis()), GetUint(cmd, "width"))
		}
		//
		log.Debugf("algebra %s has %d monomials", alg, alg.Len())
		logMetrics(reg)
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(basisCmd)
	basisCmd.Flags().IntP("vars", "d", 1, "number of variables")
	basisCmd.Flags().IntP("order", "n", 1, "truncation order")
	basisCmd.Flags().Uint("width", 0, "maximum table width (defaults to the terminal width)")
	basisCmd.Flags().Bool("summary", false, "only report the size of the basis and multiplication table")
}
