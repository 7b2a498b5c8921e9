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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gofvm/FVM1D"
	"github.com/notargets/gofvm/LinearSolvers"
	"github.com/notargets/gofvm/model_problems/ConvectionDiffusion1D"
	"github.com/notargets/gofvm/types"
	"github.com/notargets/gofvm/utils"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One Dimensional Convection Diffusion",
	Long: `
Assembles and solves the finite volume convection diffusion problem set by the flags,

gofvm 1D --scheme QUICK --nodes 6 --u 0.1 --gamma 0.1 --phiA 1 --phiB 0`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		m1d := &Model1D{}
		if m1d.Scheme, err = FVM1D.ParseScheme(viper.GetString("scheme")); err != nil {
			return
		}
		if m1d.Solver, err = LinearSolvers.ParseSolverType(viper.GetString("solver")); err != nil {
			return
		}
		m1d.Rho = viper.GetFloat64("rho")
		m1d.Gamma = viper.GetFloat64("gamma")
		m1d.U = viper.GetFloat64("u")
		m1d.Length = viper.GetFloat64("length")
		m1d.Nodes = viper.GetInt("nodes")
		m1d.LeftBC = viper.GetString("leftBC")
		m1d.RightBC = viper.GetString("rightBC")
		m1d.PhiA = viper.GetFloat64("phiA")
		m1d.PhiB = viper.GetFloat64("phiB")
		m1d.Q = viper.GetFloat64("q")
		m1d.Sp = viper.GetFloat64("sp")
		m1d.Transient = viper.GetBool("transient")
		m1d.Dt = viper.GetFloat64("dt")
		m1d.FinalTime = viper.GetFloat64("finalTime")
		m1d.Phi0 = viper.GetFloat64("phi0")
		m1d.LogFrequency = viper.GetInt("logFrequency")
		m1d.PlotFile = viper.GetString("plot")
		m1d.PrintCoefficients = viper.GetBool("printCoefficients")
		return Run1D(m1d)
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	var (
		Nodes  = 6
		Length = 1.
		Rho    = 1.
		Gamma  = 0.1
		U      = 0.1
	)
	OneDCmd.Flags().StringP("scheme", "s", "QUICK", "advection scheme: CENTRAL, UPWIND1, UPWIND2, QUICK, CENTRAL_TRANSIENT")
	OneDCmd.Flags().String("solver", "banded", "linear solver: lu, banded, gauss_seidel")
	OneDCmd.Flags().IntP("nodes", "n", Nodes, "number of mesh nodes, volumes = nodes + 1")
	OneDCmd.Flags().Float64P("length", "l", Length, "domain length")
	OneDCmd.Flags().Float64("rho", Rho, "density")
	OneDCmd.Flags().Float64("gamma", Gamma, "diffusivity")
	OneDCmd.Flags().Float64("u", U, "uniform velocity")
	OneDCmd.Flags().String("leftBC", "dirichlet", "left wall condition: dirichlet or neumann")
	OneDCmd.Flags().String("rightBC", "dirichlet", "right wall condition: dirichlet or neumann")
	OneDCmd.Flags().Float64("phiA", 1, "left wall value, or gradient for neumann")
	OneDCmd.Flags().Float64("phiB", 0, "right wall value, or gradient for neumann")
	OneDCmd.Flags().Float64("q", 0, "uniform source per unit length")
	OneDCmd.Flags().Float64("sp", 0, "linear source coefficient, S = q + sp*phi")
	OneDCmd.Flags().BoolP("transient", "t", false, "march in time instead of solving the steady problem")
	OneDCmd.Flags().Float64("dt", 0.1, "time step")
	OneDCmd.Flags().Float64("finalTime", 10, "the target end time for the sim")
	OneDCmd.Flags().Float64("phi0", 0, "initial interior value")
	OneDCmd.Flags().Int("logFrequency", 50, "steps between progress log lines")
	OneDCmd.Flags().StringP("plot", "p", "", "write a plot of the solution to this file (.png, .svg, .pdf)")
	OneDCmd.Flags().Bool("printCoefficients", false, "print the assembled coefficients")
}

type Model1D struct {
	Scheme                FVM1D.Scheme
	Solver                LinearSolvers.SolverType
	Nodes                 int
	Rho, Gamma, U, Length float64
	LeftBC, RightBC       string
	PhiA, PhiB            float64
	Q, Sp                 float64
	Transient             bool
	Dt, FinalTime, Phi0   float64
	LogFrequency          int
	PlotFile              string
	PrintCoefficients     bool
}

func (m1d *Model1D) Parameters() (p ConvectionDiffusion1D.Parameters) {
	p = ConvectionDiffusion1D.Parameters{
		Rho:          m1d.Rho,
		Gamma:        m1d.Gamma,
		U:            m1d.U,
		Length:       m1d.Length,
		Nodes:        m1d.Nodes,
		Scheme:       m1d.Scheme,
		Left:         ConvectionDiffusion1D.BoundaryCondition{Kind: types.NewBCFLAG(m1d.LeftBC), Value: m1d.PhiA},
		Right:        ConvectionDiffusion1D.BoundaryCondition{Kind: types.NewBCFLAG(m1d.RightBC), Value: m1d.PhiB},
		Q:            m1d.Q,
		Sp:           m1d.Sp,
		Phi0:         m1d.Phi0,
		LogFrequency: m1d.LogFrequency,
	}
	if m1d.Transient || m1d.Scheme.IsTransient() {
		p.Dt = m1d.Dt
	}
	if m1d.Transient {
		p.FinalTime = m1d.FinalTime
	}
	return
}

func Run1D(m1d *Model1D) (err error) {
	return runCase(m1d.Parameters(), m1d.Solver, m1d.Transient, m1d.PlotFile, m1d.PrintCoefficients)
}

func runCase(p ConvectionDiffusion1D.Parameters, st LinearSolvers.SolverType, transient bool,
	plotFile string, printCoefficients bool) (err error) {
	var (
		solver LinearSolvers.Solver
		c      *ConvectionDiffusion1D.ConvectionDiffusion
		res    ConvectionDiffusion1D.Result
	)
	if solver, err = LinearSolvers.NewSolver(st); err != nil {
		return
	}
	if c, err = ConvectionDiffusion1D.NewConvectionDiffusion(p, solver); err != nil {
		return
	}
	c.Print(os.Stdout)
	log.WithFields(log.Fields{
		"scheme": p.Scheme.String(),
		"solver": solver.Name(),
		"nodes":  p.Nodes,
	}).Debug("starting solve")
	if transient {
		res, err = c.Run()
	} else {
		res, err = c.SolveSteady()
	}
	if err != nil {
		return fmt.Errorf("%s solve: %w", p.Scheme, err)
	}
	if printCoefficients {
		c.PrintCoefficients()
	}
	c.PrintResult(os.Stdout, res)
	log.WithField("memory", utils.GetMemUsage()).Debug("solve done")
	if len(plotFile) != 0 {
		if err = plotResult(plotFile, c, res); err != nil {
			return
		}
		log.WithField("file", plotFile).Info("wrote plot")
	}
	return
}

func plotResult(fileName string, c *ConvectionDiffusion1D.ConvectionDiffusion, res ConvectionDiffusion1D.Result) error {
	var (
		p      = c.P
		series = []utils.Series{{Name: p.Scheme.String(), X: res.X, Y: res.Phi, Points: true}}
	)
	X := utils.Linspace(0, c.Mesh.Length(), 201)
	if exact, frame, ok := c.ExactFor(X, res); ok {
		series = append(series, utils.Series{Name: "exact " + frame, X: X, Y: exact})
	}
	title := fmt.Sprintf("%s, Pe = %5.2f, nodes = %d", p.Scheme, c.Peclet(c.Mesh.Length()), p.Nodes)
	if res.Steps > 0 {
		title += fmt.Sprintf(", t = %6.3f", res.Time)
	}
	return utils.PlotSeries(fileName, title, "x", "phi", series...)
}
