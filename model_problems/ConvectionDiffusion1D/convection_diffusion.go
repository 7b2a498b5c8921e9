package ConvectionDiffusion1D

import (
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/gofvm/FVM1D"
	"github.com/notargets/gofvm/LinearSolvers"
	"github.com/notargets/gofvm/analytic_solutions"
	"github.com/notargets/gofvm/types"
	"github.com/notargets/gofvm/utils"
)

var ErrDiverged = errors.New("convection diffusion: non-finite solution")

type ConvectionDiffusion struct {
	P         Parameters
	Mesh      *FVM1D.Mesh
	X         []float64
	Phi       []float64
	store     *FVM1D.Store
	diffusion *FVM1D.DiffusionTerm
	advection *FVM1D.AdvectionTerm
	solver    LinearSolvers.Solver
}

type Result struct {
	X, Phi []float64
	Steps  int
	Time   float64
	// Residual is the max norm of the assembled equations at Phi
	Residual float64
	// Change is the max norm of the update in the last time step
	Change float64
}

func NewConvectionDiffusion(p Parameters, solver LinearSolvers.Solver) (c *ConvectionDiffusion, err error) {
	if err = p.Validate(); err != nil {
		return
	}
	if solver == nil {
		if solver, err = LinearSolvers.NewSolver(LinearSolvers.Banded); err != nil {
			return
		}
	}
	if p.LogFrequency <= 0 {
		p.LogFrequency = 50
	}
	c = &ConvectionDiffusion{
		P:      p,
		Mesh:   FVM1D.NewMesh(p.Nodes, 0, p.Length),
		solver: solver,
	}
	if c.X, err = c.Mesh.CreateCoordinates(); err != nil {
		return nil, err
	}
	dx := c.Mesh.Delta()
	if c.store, err = FVM1D.NewStore(c.Mesh.Volumes(), dx); err != nil {
		return nil, err
	}
	c.diffusion = FVM1D.NewDiffusionTerm(c.store, p.Gamma, dx)
	if c.advection, err = FVM1D.NewAdvectionTerm(c.store, p.Scheme, p.Rho, dx); err != nil {
		return nil, err
	}
	if len(p.Velocity) != 0 {
		if err = c.advection.SetVelocity(p.Velocity); err != nil {
			return nil, err
		}
	} else {
		c.advection.SetUniformVelocity(p.U)
	}
	c.Phi = utils.ConstArray(c.Mesh.Volumes(), p.Phi0)
	c.setWalls(c.Phi)
	return
}

/*
Assemble rebuilds the store for one solve: diffusion, advection, temporal,
sources and finally the wall conditions. A nil phiOld assembles the steady
equations. CentralTransient is integrated over the step, so every other
term is multiplied by dt with it.
*/
func (c *ConvectionDiffusion) Assemble(phiOld []float64, dt float64) (err error) {
	var (
		p     = c.P
		dx    = c.Mesh.Delta()
		scale = 1.
	)
	if p.Scheme.IsTransient() {
		scale = p.Dt
	}
	c.store.Clean()
	c.diffusion.Gamma = p.Gamma * scale
	c.diffusion.CalcCoef()
	if err = c.advection.CalcCoef(FVM1D.SchemeParams{
		PhiA: p.Left.Value,
		PhiB: p.Right.Value,
		D:    p.Gamma / dx,
		Dt:   p.Dt,
	}); err != nil {
		return
	}
	if phiOld != nil {
		tdt := dt
		if p.Scheme.IsTransient() {
			tdt = 1
		}
		var temporal *FVM1D.TemporalTerm
		if temporal, err = FVM1D.NewTemporalTerm(c.store, p.Rho, dx, tdt); err != nil {
			return
		}
		if err = temporal.CalcCoef(phiOld); err != nil {
			return
		}
	}
	if p.Q != 0 {
		c.store.AddSource(p.Q * scale)
	}
	if p.Sp != 0 {
		c.store.AddLinearSource(p.Sp * scale)
	}
	if p.Scheme.FoldsBoundaries() {
		return
	}
	for _, w := range []types.Wall{types.Left_Wall, types.Right_Wall} {
		bc := c.bc(w)
		switch bc.Kind {
		case types.BC_Dirichlet:
			c.store.ApplyDirichlet(w, bc.Value)
		case types.BC_Neuman:
			c.store.ApplyNeumann(w, bc.Value)
		}
	}
	return
}

func (c *ConvectionDiffusion) bc(w types.Wall) BoundaryCondition {
	if w == types.Left_Wall {
		return c.P.Left
	}
	return c.P.Right
}

// Coefficients is a copy of the last assembled store
func (c *ConvectionDiffusion) Coefficients() FVM1D.Coefficients {
	return c.store.Snapshot()
}

// solve builds and solves the assembled system and writes the unknowns into c.Phi
func (c *ConvectionDiffusion) solve() (err error) {
	var (
		sys *FVM1D.LinearSystem
		x   []float64
	)
	if sys, err = FVM1D.BuildSystem(c.store); err != nil {
		return
	}
	if x, err = c.solver.Solve(sys); err != nil {
		return
	}
	copy(c.Phi[1:len(c.Phi)-1], x)
	c.setWalls(c.Phi)
	if utils.IsNan(c.Phi) {
		err = ErrDiverged
	}
	return
}

// setWalls fills the wall entries, Neumann walls are extrapolated over the half volume
func (c *ConvectionDiffusion) setWalls(phi []float64) {
	var (
		last = len(phi) - 1
		hdx  = 0.5 * c.Mesh.Delta()
	)
	switch c.P.Left.Kind {
	case types.BC_Dirichlet:
		phi[0] = c.P.Left.Value
	case types.BC_Neuman:
		phi[0] = phi[1] - c.P.Left.Value*hdx
	}
	switch c.P.Right.Kind {
	case types.BC_Dirichlet:
		phi[last] = c.P.Right.Value
	case types.BC_Neuman:
		phi[last] = phi[last-1] + c.P.Right.Value*hdx
	}
}

func (c *ConvectionDiffusion) result(steps int, time float64) (res Result, err error) {
	var r []float64
	if r, err = c.store.Residuals(c.Phi); err != nil {
		return
	}
	res = Result{
		X:        append([]float64{}, c.X...),
		Phi:      append([]float64{}, c.Phi...),
		Steps:    steps,
		Time:     time,
		Residual: utils.MaxAbs(r),
	}
	return
}

func (c *ConvectionDiffusion) SolveSteady() (res Result, err error) {
	if err = c.Assemble(nil, 0); err != nil {
		return
	}
	if err = c.solve(); err != nil {
		log.WithFields(log.Fields{
			"scheme": c.P.Scheme.String(),
			"solver": c.solver.Name(),
		}).Error(err)
		return
	}
	return c.result(0, 0)
}

// Run marches the implicit Euler equations from Phi0 to FinalTime. The step is
// shortened so that a whole number of steps lands on FinalTime.
func (c *ConvectionDiffusion) Run() (res Result, err error) {
	var (
		p      = c.P
		phiOld = make([]float64, len(c.Phi))
		Time   float64
		change float64
	)
	if p.Dt <= 0 || p.FinalTime <= 0 {
		err = FVM1D.NewConfigurationError("Run", "time step and final time must be positive, have %v, %v",
			p.Dt, p.FinalTime)
		return
	}
	Ns := math.Ceil(p.FinalTime/p.Dt - utils.NODETOL)
	dt := p.FinalTime / Ns
	Nsteps := int(Ns)
	if p.Scheme.IsTransient() {
		c.P.Dt = dt
	}
	for tstep := 0; tstep < Nsteps; tstep++ {
		copy(phiOld, c.Phi)
		if err = c.Assemble(phiOld, dt); err != nil {
			return
		}
		if err = c.solve(); err != nil {
			log.WithFields(log.Fields{
				"scheme": p.Scheme.String(),
				"step":   tstep,
				"time":   Time,
			}).Error(err)
			return
		}
		Time += dt
		change = 0
		for i := range phiOld {
			change = math.Max(change, math.Abs(c.Phi[i]-phiOld[i]))
		}
		if tstep%p.LogFrequency == 0 || tstep == Nsteps-1 {
			log.WithFields(log.Fields{
				"scheme": p.Scheme.String(),
				"step":   tstep,
				"time":   fmt.Sprintf("%8.4f", Time),
				"change": change,
			}).Info("time step")
		}
	}
	if res, err = c.result(Nsteps, Time); err != nil {
		return
	}
	res.Change = change
	return
}

// SettledTol is the last step change below which a transient run is compared with the steady profile
const SettledTol = 1.e-6

// Exact returns the analytic steady profile at X when the case has one
func (c *ConvectionDiffusion) Exact() (phi []float64, ok bool) {
	return c.ExactAt(c.X)
}

func (c *ConvectionDiffusion) ExactAt(X []float64) (phi []float64, ok bool) {
	p := c.P
	if !p.Uniform() {
		return
	}
	return analytic_solutions.SteadyConvectionDiffusion(X, p.Rho, p.velocity(), p.Gamma, c.Mesh.Length(),
		p.Left.Value, p.Right.Value), true
}

/*
ExactFor returns the analytic profile at X that res should be compared with.
A steady solve uses the steady profile. A run from rest with the right wall at
zero uses the step response at res.Time while the front, u*t + 4*sqrt(D*t),
is inside the domain and the steady profile once the run has settled. Frame is
"steady" or "transient".
*/
func (c *ConvectionDiffusion) ExactFor(X []float64, res Result) (phi []float64, frame string, ok bool) {
	if res.Steps == 0 {
		phi, ok = c.ExactAt(X)
		return phi, "steady", ok
	}
	p := c.P
	if !p.Uniform() || p.Phi0 != 0 || p.Right.Value != 0 {
		return
	}
	var (
		u     = p.velocity()
		D     = p.Gamma / p.Rho
		front = u*res.Time + 4*math.Sqrt(D*res.Time)
	)
	switch {
	case u >= 0 && front <= c.Mesh.Length():
		phi = analytic_solutions.TransientStep(X, res.Time, p.Rho, u, p.Gamma)
		for i := range phi {
			phi[i] *= p.Left.Value
		}
		return phi, "transient", true
	case res.Change < SettledTol:
		phi, ok = c.ExactAt(X)
		return phi, "steady", ok
	}
	return
}
