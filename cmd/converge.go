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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gofvm/FVM1D"
	"github.com/notargets/gofvm/LinearSolvers"
	"github.com/notargets/gofvm/analytic_solutions"
	"github.com/notargets/gofvm/model_problems/ConvectionDiffusion1D"
	"github.com/notargets/gofvm/types"
)

// ConvergeCmd runs a grid convergence study against the analytic steady profile
var ConvergeCmd = &cobra.Command{
	Use:   "converge",
	Short: "Grid convergence study of the steady solution",
	Long: `
Solves the steady problem on a sequence of meshes, compares each solution with the
exact exponential profile and writes the error norms to a CSV file that tools/convOrder reads,

gofvm converge --scheme CENTRAL --nodes 11,21,41,81 -o central.csv`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			scheme FVM1D.Scheme
			st     LinearSolvers.SolverType
			nodes  []int
		)
		if scheme, err = FVM1D.ParseScheme(viper.GetString("scheme")); err != nil {
			return
		}
		if st, err = LinearSolvers.ParseSolverType(viper.GetString("solver")); err != nil {
			return
		}
		if nodes, err = cmd.Flags().GetIntSlice("nodes"); err != nil {
			return
		}
		p := ConvectionDiffusion1D.Parameters{
			Rho:    viper.GetFloat64("rho"),
			Gamma:  viper.GetFloat64("gamma"),
			U:      viper.GetFloat64("u"),
			Length: viper.GetFloat64("length"),
			Scheme: scheme,
			Left:   ConvectionDiffusion1D.Dirichlet(viper.GetFloat64("phiA")),
			Right:  ConvectionDiffusion1D.Dirichlet(viper.GetFloat64("phiB")),
			Dt:     1,
		}
		return Converge(p, st, nodes, viper.GetString("output"))
	},
}

func init() {
	rootCmd.AddCommand(ConvergeCmd)
	ConvergeCmd.Flags().StringP("scheme", "s", "CENTRAL", "advection scheme: CENTRAL, UPWIND1, UPWIND2, QUICK, CENTRAL_TRANSIENT")
	ConvergeCmd.Flags().String("solver", "banded", "linear solver: lu, banded, gauss_seidel")
	ConvergeCmd.Flags().IntSliceP("nodes", "n", []int{11, 21, 41, 81, 161}, "node counts of the mesh sequence")
	ConvergeCmd.Flags().Float64P("length", "l", 1, "domain length")
	ConvergeCmd.Flags().Float64("rho", 1, "density")
	ConvergeCmd.Flags().Float64("gamma", 0.1, "diffusivity")
	ConvergeCmd.Flags().Float64("u", 2.5, "uniform velocity")
	ConvergeCmd.Flags().Float64("phiA", 1, "left wall value")
	ConvergeCmd.Flags().Float64("phiB", 0, "right wall value")
	ConvergeCmd.Flags().StringP("output", "o", "convergence.csv", "CSV file for the error norms")
}

type ConvergenceEntry struct {
	Nodes        int
	Dx           float64
	L1, L2, LInf float64
}

// Converge solves p on every mesh in nodes and writes the error norms to fileName
func Converge(p ConvectionDiffusion1D.Parameters, st LinearSolvers.SolverType, nodes []int,
	fileName string) (err error) {
	var (
		entries []ConvergenceEntry
		f       *os.File
	)
	if entries, err = ConvergenceStudy(p, st, nodes); err != nil {
		return
	}
	if f, err = os.Create(fileName); err != nil {
		return
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = writeStudy(f, p.Scheme, entries); err != nil {
		return
	}
	printStudy(p.Scheme, entries)
	log.WithField("file", fileName).Info("wrote convergence study")
	return
}

// writeStudy writes entries as CSV with the columns Scheme,Nodes,Dx,L1,L2,LInf
func writeStudy(out io.Writer, scheme FVM1D.Scheme, entries []ConvergenceEntry) (err error) {
	w := csv.NewWriter(out)
	if err = w.Write([]string{"Scheme", "Nodes", "Dx", "L1", "L2", "LInf"}); err != nil {
		return
	}
	for _, e := range entries {
		if err = w.Write([]string{
			scheme.String(),
			strconv.Itoa(e.Nodes),
			strconv.FormatFloat(e.Dx, 'g', -1, 64),
			strconv.FormatFloat(e.L1, 'g', -1, 64),
			strconv.FormatFloat(e.L2, 'g', -1, 64),
			strconv.FormatFloat(e.LInf, 'g', -1, 64),
		}); err != nil {
			return
		}
	}
	w.Flush()
	return w.Error()
}

func ConvergenceStudy(p ConvectionDiffusion1D.Parameters, st LinearSolvers.SolverType,
	nodes []int) (entries []ConvergenceEntry, err error) {
	for _, n := range nodes {
		var (
			solver LinearSolvers.Solver
			c      *ConvectionDiffusion1D.ConvectionDiffusion
			res    ConvectionDiffusion1D.Result
		)
		p.Nodes = n
		if solver, err = LinearSolvers.NewSolver(st); err != nil {
			return
		}
		if c, err = ConvectionDiffusion1D.NewConvectionDiffusion(p, solver); err != nil {
			return
		}
		if res, err = c.SolveSteady(); err != nil {
			return
		}
		exact, ok := c.Exact()
		if !ok {
			err = FVM1D.NewConfigurationError("ConvergenceStudy", "case has no analytic solution, walls must be %s",
				types.BC_Dirichlet)
			return
		}
		e := ConvergenceEntry{Nodes: n, Dx: c.Mesh.Delta()}
		e.L1, e.L2, e.LInf = analytic_solutions.ErrorNorms(res.Phi, exact)
		entries = append(entries, e)
		log.WithFields(log.Fields{
			"nodes": n,
			"L2":    e.L2,
			"LInf":  e.LInf,
		}).Debug("convergence step")
	}
	return
}

func printStudy(scheme FVM1D.Scheme, entries []ConvergenceEntry) {
	var (
		h, e2, eInf []float64
	)
	for _, e := range entries {
		h = append(h, e.Dx)
		e2 = append(e2, e.L2)
		eInf = append(eInf, e.LInf)
	}
	o2 := analytic_solutions.ObservedOrder(h, e2)
	oInf := analytic_solutions.ObservedOrder(h, eInf)
	fmt.Printf("Scheme = %s\n", scheme)
	fmt.Printf("%6s %10s %12s %12s %8s %8s\n", "nodes", "dx", "L2", "LInf", "p(L2)", "p(LInf)")
	for i, e := range entries {
		if i == 0 {
			fmt.Printf("%6d %10.5f %12.4e %12.4e\n", e.Nodes, e.Dx, e.L2, e.LInf)
			continue
		}
		fmt.Printf("%6d %10.5f %12.4e %12.4e %8.3f %8.3f\n", e.Nodes, e.Dx, e.L2, e.LInf, o2[i-1], oInf[i-1])
	}
}
