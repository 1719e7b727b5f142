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
package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-tpsa")

	shapes := []shapeSpecs{
		{Name: "Tpsa6D4", Vars: 6, Order: 4},
		{Name: "Tpsa4D4", Vars: 4, Order: 4},
	}

	for _, shape := range shapes {
		cfg, err := shape.config()
		assertNoError(err, "for shape \"%s\"", shape.Name)

		assertNoError(bgen.Generate(cfg, "fixed", "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../%s.go", cfg.FileName),
				Templates: []string{"fixed.go.tmpl"},
			},
			bavard.Entry{
				File:      fmt.Sprintf("../../%s_test.go", cfg.FileName),
				Templates: []string{"fixed.test.go.tmpl"},
			},
		), "for shape \"%s\"", shape.Name)
	}
	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../")

	// run goimports on whole directory
	runCmd("goimports", "-w", "../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type shapeSpecs struct {
	Name  string
	Vars  uint
	Order uint
}

type shapeConfig struct {
	shapeSpecs
	// Name of generated file (without extension)
	FileName string
	// Name of the package-level algebra variable
	AlgebraVar string
	// Number of monomials in the basis, C(Order+Vars, Vars)
	Size uint64
}

func (s shapeSpecs) config() (*shapeConfig, error) {
	if s.Vars == 0 || s.Vars > 10 || s.Order > 10 {
		return nil, fmt.Errorf("unsupported shape (vars=%d, order=%d)", s.Vars, s.Order)
	}
	//
	lower := strings.ToLower(s.Name)
	//
	return &shapeConfig{
		shapeSpecs: s,
		FileName:   lower,
		AlgebraVar: lower + "Algebra",
		Size:       binomial(uint64(s.Order+s.Vars), uint64(s.Vars)),
	}, nil
}

func binomial(n, k uint64) uint64 {
	var r uint64 = 1
	//
	for i := uint64(1); i <= k; i++ {
		r = r * (n - k + i) / i
	}
	//
	return r
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
