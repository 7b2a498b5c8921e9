package ConvectionDiffusion1D

import (
	"fmt"
	"io"
	"math"

	"github.com/notargets/gofvm/analytic_solutions"
)

func (c *ConvectionDiffusion) Print(w io.Writer) {
	var (
		p = c.P
	)
	fmt.Fprintf(w, "Convection Diffusion 1D, scheme = %s, solver = %s\n", p.Scheme, c.solver.Name())
	fmt.Fprintf(w, "%s\n", c.Mesh)
	fmt.Fprintf(w, "rho = %8.5f, Gamma = %8.5f, u = %8.5f, Peclet = %8.5f, cell Peclet = %8.5f\n",
		p.Rho, p.Gamma, p.velocity(), c.Peclet(c.Mesh.Length()), c.Peclet(c.Mesh.Delta()))
	fmt.Fprintf(w, "left  %-9s = %8.5f\n", p.Left.Kind, p.Left.Value)
	fmt.Fprintf(w, "right %-9s = %8.5f\n", p.Right.Kind, p.Right.Value)
	if p.Q != 0 || p.Sp != 0 {
		fmt.Fprintf(w, "source Su = %8.5f, Sp = %8.5f\n", p.Q, p.Sp)
	}
	if p.FinalTime > 0 {
		fmt.Fprintf(w, "dt = %8.5f, final time = %8.5f\n", p.Dt, p.FinalTime)
	}
}

// Peclet is rho*u*l/Gamma
func (c *ConvectionDiffusion) Peclet(l float64) float64 {
	return c.P.Rho * c.P.velocity() * l / c.P.Gamma
}

// PrintResult writes the solution table, with the analytic profile and the error norms when they apply
func (c *ConvectionDiffusion) PrintResult(w io.Writer, res Result) {
	exact, frame, ok := c.ExactFor(res.X, res)
	if res.Steps > 0 {
		fmt.Fprintf(w, "steps = %d, time = %8.5f, last change = %8.5g\n", res.Steps, res.Time, res.Change)
	}
	if !ok {
		fmt.Fprintf(w, "%4s %10s %12s\n", "i", "x", "phi")
		for i := range res.X {
			fmt.Fprintf(w, "%4d %10.5f %12.8f\n", i, res.X[i], res.Phi[i])
		}
		fmt.Fprintf(w, "max residual = %8.5g\n", res.Residual)
		return
	}
	fmt.Fprintf(w, "exact profile: %s\n", frame)
	fmt.Fprintf(w, "%4s %10s %12s %12s %12s\n", "i", "x", "phi", "exact", "error")
	for i := range res.X {
		fmt.Fprintf(w, "%4d %10.5f %12.8f %12.8f %12.4e\n", i, res.X[i], res.Phi[i], exact[i],
			math.Abs(res.Phi[i]-exact[i]))
	}
	L1, L2, LInf := analytic_solutions.ErrorNorms(res.Phi, exact)
	fmt.Fprintf(w, "||error||: L1 = %8.5g, L2 = %8.5g, LInf = %8.5g, max residual = %8.5g\n",
		L1, L2, LInf, res.Residual)
}

// PrintCoefficients prints the last assembled store
func (c *ConvectionDiffusion) PrintCoefficients() {
	c.store.Print()
}
