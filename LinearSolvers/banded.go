package LinearSolvers

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gofvm/FVM1D"
)

/*
BandSolver is Gaussian elimination without pivoting restricted to the band.
Without row exchanges the factors keep the KL/KU band of the system, so the
work is O(N*KL*KU). For KL = KU = 1 this is the tridiagonal (Thomas) algorithm.
*/
type BandSolver struct{}

func (s *BandSolver) Name() string { return Banded.String() }

func (s *BandSolver) Solve(sys *FVM1D.LinearSystem) (x []float64, err error) {
	if err = checkSystem(s.Name(), sys); err != nil {
		return
	}
	var (
		N, KL, KU = sys.N, sys.KL, sys.KU
		A         = mat.NewBandDense(N, N, KL, KU, nil)
		b         = sys.RHS()
	)
	for i := 0; i < N; i++ {
		for j := max(0, i-KL); j <= min(N-1, i+KU); j++ {
			A.SetBand(i, j, sys.A.At(i, j))
		}
	}
	// Forward elimination
	for k := 0; k < N; k++ {
		piv := A.At(k, k)
		if math.Abs(piv) < tiny {
			err = &FVM1D.LinearSolveError{Solver: s.Name(), Row: k, Err: FVM1D.ErrSingular}
			return
		}
		for i := k + 1; i <= min(N-1, k+KL); i++ {
			l := A.At(i, k) / piv
			if l == 0 {
				continue
			}
			for j := k; j <= min(N-1, k+KU); j++ {
				A.SetBand(i, j, A.At(i, j)-l*A.At(k, j))
			}
			b[i] -= l * b[k]
		}
	}
	// Back substitution
	x = make([]float64, N)
	for i := N - 1; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j <= min(N-1, i+KU); j++ {
			sum -= A.At(i, j) * x[j]
		}
		x[i] = sum / A.At(i, i)
	}
	return
}

const tiny = 1.e-300
