package LinearSolvers

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gofvm/FVM1D"
)

// LUSolver factors a dense copy of the system with partial pivoting
type LUSolver struct {
	cond float64
}

func (s *LUSolver) Name() string { return LU.String() }

// Cond is the condition number estimate of the last factorization
func (s *LUSolver) Cond() float64 { return s.cond }

func (s *LUSolver) Solve(sys *FVM1D.LinearSystem) (x []float64, err error) {
	if err = checkSystem(s.Name(), sys); err != nil {
		return
	}
	var (
		lu  mat.LU
		X   = mat.NewVecDense(sys.N, nil)
		err2 error
	)
	lu.Factorize(sys.Dense())
	s.cond = lu.Cond()
	if err2 = lu.SolveVecTo(X, false, sys.B); err2 != nil {
		err = &FVM1D.LinearSolveError{Solver: s.Name(), Row: -1,
			Err: fmt.Errorf("%w: %v", FVM1D.ErrSingular, err2)}
		return
	}
	x = X.RawVector().Data
	return
}
