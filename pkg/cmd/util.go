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
	"errors"
	"fmt"
	"os"

	"github.com/consensys/go-tpsa/pkg/expr"
	"github.com/consensys/go-tpsa/pkg/tpsa"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected signed int, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned int, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetFloats gets an expected list of floats, or exits if an error arises.
func GetFloats(cmd *cobra.Command, flag string) []float64 {
	r, err := cmd.Flags().GetFloat64Slice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure logging and, when verbose, a registry to expose algebra cache
// metrics.  Returns nil when not verbose.
func configure(cmd *cobra.Command) *prometheus.Registry {
	if !GetFlag(cmd, "verbose") {
		return nil
	}
	//
	log.SetLevel(log.DebugLevel)
	//
	reg := prometheus.NewRegistry()
	if err := tpsa.RegisterMetrics(reg); err != nil {
		log.Warnf("metrics unavailable: %v", err)
		return nil
	}
	//
	return reg
}

// Construct the algebra determined by the "vars" and "order" flags.
func readAlgebra(cmd *cobra.Command) (*tpsa.Algebra, error) {
	vars := GetInt(cmd, "vars")
	order := GetInt(cmd, "order")
	//
	if vars <= 0 || order < 0 {
		return nil, fmt.Errorf("%w: (vars=%d, order=%d)", tpsa.ErrInvalidDimension, vars, order)
	}
	//
	return tpsa.NewAlgebra(uint(vars), uint(order))
}

// Report an error and terminate.  Syntax errors highlight the offending
// region of the given text.
func exitWithError(err error, text string) {
	var serr *expr.SyntaxError
	//
	if errors.As(err, &serr) {
		fmt.Printf("error: %s\n", err)
		fmt.Println(serr.Highlight(text))
	} else {
		fmt.Printf("error: %s\n", err)
	}
	//
	os.Exit(2)
}
