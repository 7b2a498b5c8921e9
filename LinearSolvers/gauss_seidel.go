package LinearSolvers

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gofvm/FVM1D"
)

// GaussSeidelSolver sweeps the CSR form of the system until the max norm of the
// residual relative to the right hand side falls under Tol.
type GaussSeidelSolver struct {
	Tol        float64
	MaxIter    int
	Iterations int
	Residual   float64
}

func NewGaussSeidelSolver(tol float64, maxIter int) *GaussSeidelSolver {
	return &GaussSeidelSolver{Tol: tol, MaxIter: maxIter}
}

func (s *GaussSeidelSolver) Name() string { return GaussSeidel.String() }

func (s *GaussSeidelSolver) Solve(sys *FVM1D.LinearSystem) (x []float64, err error) {
	if err = checkSystem(s.Name(), sys); err != nil {
		return
	}
	var (
		N     = sys.N
		A     = sys.Sparse()
		b     = sys.RHS()
		diag  = make([]float64, N)
		bNorm = math.Max(floats.Norm(b, math.Inf(1)), 1)
		r     []float64
	)
	for i := 0; i < N; i++ {
		if diag[i] = A.At(i, i); diag[i] == 0 {
			err = &FVM1D.LinearSolveError{Solver: s.Name(), Row: i, Err: FVM1D.ErrSingular}
			return
		}
	}
	x = make([]float64, N)
	for s.Iterations = 1; s.Iterations <= s.MaxIter; s.Iterations++ {
		for i := 0; i < N; i++ {
			sum := b[i]
			A.DoRowNonZero(i, func(i, j int, v float64) {
				if j != i {
					sum -= v * x[j]
				}
			})
			x[i] = sum / diag[i]
		}
		if r, err = sys.Residual(x); err != nil {
			return
		}
		s.Residual = floats.Norm(r, math.Inf(1)) / bNorm
		if math.IsNaN(s.Residual) || math.IsInf(s.Residual, 0) {
			break
		}
		if s.Residual < s.Tol {
			log.WithFields(log.Fields{
				"iterations": s.Iterations,
				"residual":   s.Residual,
			}).Debug("gauss seidel converged")
			return
		}
	}
	err = &FVM1D.LinearSolveError{Solver: s.Name(), Row: -1,
		Err: fmt.Errorf("%w: residual %8.5g after %d sweeps", FVM1D.ErrNotConverged, s.Residual, s.MaxIter)}
	return
}
