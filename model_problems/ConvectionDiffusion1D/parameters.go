package ConvectionDiffusion1D

import (
	"github.com/notargets/gofvm/FVM1D"
	"github.com/notargets/gofvm/types"
)

// BoundaryCondition is a wall value for Dirichlet walls or a gradient dphi/dx for Neumann walls
type BoundaryCondition struct {
	Kind  types.BCFLAG
	Value float64
}

func Dirichlet(phi float64) BoundaryCondition {
	return BoundaryCondition{Kind: types.BC_Dirichlet, Value: phi}
}

func Neumann(flux float64) BoundaryCondition {
	return BoundaryCondition{Kind: types.BC_Neuman, Value: flux}
}

type Parameters struct {
	Rho, Gamma float64
	// U is the uniform velocity, Velocity overrides it with one value per face
	U        float64
	Velocity []float64
	Length   float64
	Nodes    int
	Scheme   FVM1D.Scheme
	Left     BoundaryCondition
	Right    BoundaryCondition
	// Source linearized as Q + Sp*phi, per unit length
	Q, Sp        float64
	Dt           float64
	FinalTime    float64
	Phi0         float64
	LogFrequency int
}

func (p Parameters) Validate() (err error) {
	var (
		op = "Parameters.Validate"
	)
	switch {
	case p.Rho <= 0:
		err = FVM1D.NewConfigurationError(op, "density must be positive, have %v", p.Rho)
	case p.Gamma <= 0:
		err = FVM1D.NewConfigurationError(op, "diffusivity must be positive, have %v", p.Gamma)
	case p.Length <= 0:
		err = FVM1D.NewConfigurationError(op, "length must be positive, have %v", p.Length)
	case p.Nodes < 2:
		err = FVM1D.NewConfigurationError(op, "need at least 2 nodes, have %d", p.Nodes)
	case !p.Scheme.Valid():
		err = &FVM1D.ConfigurationError{Op: op, Index: -1, Scheme: p.Scheme.String(), Msg: "unknown advection scheme"}
	case p.Scheme.IsTransient() && p.Dt <= 0:
		err = &FVM1D.ConfigurationError{Op: op, Index: -1, Scheme: p.Scheme.String(), Msg: "time step must be positive"}
	case len(p.Velocity) != 0 && len(p.Velocity) != p.Nodes:
		err = FVM1D.NewConfigurationError(op, "len(Velocity) = %d, want one value per face, %d", len(p.Velocity), p.Nodes)
	}
	if err != nil {
		return
	}
	for _, bc := range []BoundaryCondition{p.Left, p.Right} {
		switch bc.Kind {
		case types.BC_Dirichlet:
		case types.BC_Neuman:
			if p.Scheme.FoldsBoundaries() {
				return &FVM1D.ConfigurationError{Op: op, Index: -1, Scheme: p.Scheme.String(),
					Msg: "scheme folds wall values and needs Dirichlet walls"}
			}
		default:
			return FVM1D.NewConfigurationError(op, "wall condition %s is not supported", bc.Kind)
		}
	}
	return
}

// Uniform is true when the analytic steady profile applies
func (p Parameters) Uniform() bool {
	if p.Q != 0 || p.Sp != 0 || p.Left.Kind != types.BC_Dirichlet || p.Right.Kind != types.BC_Dirichlet {
		return false
	}
	for _, u := range p.Velocity {
		if u != p.Velocity[0] {
			return false
		}
	}
	return true
}

func (p Parameters) velocity() float64 {
	if len(p.Velocity) != 0 {
		return p.Velocity[0]
	}
	return p.U
}
