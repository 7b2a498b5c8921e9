package LinearSolvers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofvm/FVM1D"
	"github.com/notargets/gofvm/types"
	"github.com/notargets/gofvm/utils"
)

// diffusionSystem is Gamma = 1, dx = 0.25, q = 100, phiA = 2, phiB = 1
func diffusionSystem(t *testing.T) (sys *FVM1D.LinearSystem) {
	s, err := FVM1D.NewStore(6, 0.25)
	require.NoError(t, err)
	FVM1D.NewDiffusionTerm(s, 1, 0.25).CalcCoef()
	s.AddSource(100)
	s.ApplyDirichlet(types.Left_Wall, 2)
	s.ApplyDirichlet(types.Right_Wall, 1)
	sys, err = FVM1D.BuildSystem(s)
	require.NoError(t, err)
	return
}

// quickSystem is the convection diffusion case with a pentadiagonal matrix
func quickSystem(t *testing.T) (sys *FVM1D.LinearSystem) {
	var (
		m   = FVM1D.NewMesh(11, 0, 1)
		dx  = m.Delta()
		nvx = m.Volumes()
	)
	s, err := FVM1D.NewStore(nvx, dx)
	require.NoError(t, err)
	FVM1D.NewDiffusionTerm(s, 0.1, dx).CalcCoef()
	a, err := FVM1D.NewAdvectionTerm(s, FVM1D.QUICK, 1, dx)
	require.NoError(t, err)
	a.SetUniformVelocity(0.2)
	require.NoError(t, a.CalcCoef(FVM1D.SchemeParams{PhiA: 1, PhiB: 0, D: 0.1 / dx}))
	sys, err = FVM1D.BuildSystem(s)
	require.NoError(t, err)
	require.Equal(t, 2, sys.KL)
	return
}

func TestParseSolverType(t *testing.T) {
	for label, want := range map[string]SolverType{"LU": LU, "tdma": Banded, "Gauss_Seidel": GaussSeidel} {
		st, err := ParseSolverType(label)
		require.NoError(t, err)
		assert.Equal(t, want, st)
	}
	_, err := ParseSolverType("cg")
	assert.True(t, errors.Is(err, FVM1D.ErrConfiguration))
	_, err = NewSolver(SolverType(9))
	assert.True(t, errors.Is(err, FVM1D.ErrConfiguration))
}

func TestSolvers(t *testing.T) {
	// Exact solution of the discrete diffusion system
	want := []float64{8.125, 14.125, 13.875, 7.375}
	for _, sys := range []*FVM1D.LinearSystem{diffusionSystem(t), quickSystem(t)} {
		var ref []float64
		for _, st := range []SolverType{LU, Banded, GaussSeidel} {
			solver, err := NewSolver(st)
			require.NoError(t, err)
			x, err := solver.Solve(sys)
			require.NoError(t, err, solver.Name())
			r, err := sys.Residual(x)
			require.NoError(t, err)
			assert.Less(t, utils.MaxAbs(r), 1.e-9, solver.Name())
			if ref == nil {
				ref = x
				continue
			}
			assert.InDeltaSlice(t, ref, x, 1.e-9, solver.Name())
		}
		if sys.N == 4 {
			assert.InDeltaSlice(t, want, ref, 1.e-12)
		}
	}
}

func TestSingular(t *testing.T) {
	s, err := FVM1D.NewStore(6, 0.25)
	require.NoError(t, err)
	FVM1D.NewDiffusionTerm(s, 1, 0.25).CalcCoef()
	s.AddSource(100)
	// Both walls insulated: the rows sum to zero
	s.Borrow(func(k *FVM1D.Coefficients) {
		k.AP[1] -= k.AW[1]
		k.AP[4] -= k.AE[4]
	})
	sys, err := FVM1D.BuildSystem(s)
	require.NoError(t, err)
	{
		_, err = (&LUSolver{}).Solve(sys)
		var lse *FVM1D.LinearSolveError
		require.True(t, errors.As(err, &lse))
		assert.Equal(t, "LU", lse.Solver)
		assert.True(t, errors.Is(err, FVM1D.ErrLinearSolve))
		assert.True(t, errors.Is(err, FVM1D.ErrSingular))
	}
	{
		_, err = (&BandSolver{}).Solve(sys)
		var lse *FVM1D.LinearSolveError
		require.True(t, errors.As(err, &lse))
		assert.Equal(t, 3, lse.Row)
		assert.True(t, errors.Is(err, FVM1D.ErrSingular))
	}
	{
		gs := NewGaussSeidelSolver(1.e-12, 200)
		_, err = gs.Solve(sys)
		assert.True(t, errors.Is(err, FVM1D.ErrNotConverged))
		assert.True(t, errors.Is(err, FVM1D.ErrLinearSolve))
	}
	{
		_, err = (&BandSolver{}).Solve(nil)
		assert.True(t, errors.Is(err, FVM1D.ErrLinearSolve))
	}
}
