/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gofvm/InputParameters"
	"github.com/notargets/gofvm/LinearSolvers"
)

// CaseCmd runs a case described by a YAML file
var CaseCmd = &cobra.Command{
	Use:   "case",
	Short: "Solve a convection diffusion case read from a YAML file",
	Long: `
Reads the case from a YAML input file and solves it, for example:
` + InputParameters.ExampleFile,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.InputParameters1D
		)
		if ip, err = readCase(viper.GetString("inputConditionsFile")); err != nil {
			return
		}
		ip.Print()
		return RunCase(ip, viper.GetString("plot"), viper.GetBool("printCoefficients"))
	},
}

func init() {
	rootCmd.AddCommand(CaseCmd)
	CaseCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with the case parameters")
	CaseCmd.Flags().StringP("plot", "p", "", "write a plot of the solution to this file (.png, .svg, .pdf)")
	CaseCmd.Flags().Bool("printCoefficients", false, "print the assembled coefficients")
}

func readCase(fileName string) (ip *InputParameters.InputParameters1D, err error) {
	var (
		data []byte
	)
	if len(fileName) == 0 {
		fmt.Printf("Example File:%s\n", InputParameters.ExampleFile)
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)")
		return
	}
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	ip = &InputParameters.InputParameters1D{}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("parsing %s: %w", fileName, err)
	}
	return
}

func RunCase(ip *InputParameters.InputParameters1D, plotFile string, printCoefficients bool) (err error) {
	var (
		st = LinearSolvers.Banded
	)
	p, err := ip.Parameters()
	if err != nil {
		return
	}
	if len(strings.TrimSpace(ip.Solver)) != 0 {
		if st, err = LinearSolvers.ParseSolverType(ip.Solver); err != nil {
			return
		}
	}
	return runCase(p, st, ip.Transient, plotFile, printCoefficients)
}
