package FVM1D

import (
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gofvm/utils"
)

/*
LinearSystem is A*x = B over the interior unknowns, N = volumes - 2.

	nx = 5, nvx = 6
	0     1     2     3     4     5  <-- Volumes
	o--|--x--|--x--|--x--|--x--|--o
	      0     1     2     3        <-- Unknowns

	Diffusion only, Gamma = 1, dx = 0.25, Dirichlet at both walls:
	       0   1   2   3
	--+------------------
	0 | [ 12  -4   0   0 ]
	1 | [ -4   8  -4   0 ]
	2 | [  0  -4   8  -4 ]
	3 | [  0   0  -4  12 ]
*/
type LinearSystem struct {
	N, KL, KU int
	A         *mat.BandDense
	B         *mat.VecDense
}

// BuildSystem packs the store into a banded matrix. The band is symmetric:
// KL = KU = 2 when any far neighbor coefficient inside the matrix is non-zero,
// 1 otherwise.
func BuildSystem(s *Store) (sys *LinearSystem, err error) {
	var (
		nvx = s.Volumes()
		N   = nvx - 2
		k   = s.k
		bw  = 1
	)
	if N < 1 {
		err = NewConfigurationError("BuildSystem", "no interior unknowns, volumes = %d", nvx)
		return
	}
	for i := 0; i < N; i++ {
		if (i < N-2 && k.AEE[i+1] != 0) || (i > 1 && k.AWW[i+1] != 0) {
			bw = 2
			break
		}
	}
	if bw > N-1 {
		bw = max(N-1, 0)
	}
	sys = &LinearSystem{
		N:  N,
		KL: bw,
		KU: bw,
		A:  mat.NewBandDense(N, N, bw, bw, nil),
		B:  mat.NewVecDense(N, nil),
	}
	for i := 0; i < N; i++ {
		v := i + 1
		sys.A.SetBand(i, i, k.AP[v])
		if i+1 < N {
			sys.A.SetBand(i, i+1, -k.AE[v])
		}
		if i > 0 {
			sys.A.SetBand(i, i-1, -k.AW[v])
		}
		if bw > 1 && i < N-2 {
			sys.A.SetBand(i, i+2, -k.AEE[v])
		}
		if bw > 1 && i > 1 {
			sys.A.SetBand(i, i-2, -k.AWW[v])
		}
		sys.B.SetVec(i, k.Su[v])
	}
	return
}

func (sys *LinearSystem) Dense() (A *mat.Dense) {
	return mat.DenseCopyOf(sys.A)
}

func (sys *LinearSystem) Sparse() (A *sparse.CSR) {
	dok := sparse.NewDOK(sys.N, sys.N)
	sys.doBand(func(i, j int, v float64) {
		if v != 0 {
			dok.Set(i, j, v)
		}
	})
	return dok.ToCSR()
}

// RHS returns a copy of the right hand side
func (sys *LinearSystem) RHS() (b []float64) {
	b = make([]float64, sys.N)
	copy(b, sys.B.RawVector().Data)
	return
}

func (sys *LinearSystem) doBand(fn func(i, j int, v float64)) {
	for i := 0; i < sys.N; i++ {
		for j := max(0, i-sys.KL); j <= min(sys.N-1, i+sys.KU); j++ {
			fn(i, j, sys.A.At(i, j))
		}
	}
}

// Residual returns B - A*x
func (sys *LinearSystem) Residual(x []float64) (r []float64, err error) {
	if len(x) != sys.N {
		err = NewConfigurationError("Residual", "len(x) = %d, want %d", len(x), sys.N)
		return
	}
	r = sys.RHS()
	sys.doBand(func(i, j int, v float64) {
		r[i] -= v * x[j]
	})
	return
}

// DiagonalMargins returns, per row, |diagonal| minus the sum of |off diagonal| entries
func (sys *LinearSystem) DiagonalMargins() (m []float64) {
	m = make([]float64, sys.N)
	sys.doBand(func(i, j int, v float64) {
		if i == j {
			m[i] += math.Abs(v)
		} else {
			m[i] -= math.Abs(v)
		}
	})
	return
}

// IsDiagonallyDominant is the weak row criterion with at least one strict row
func (sys *LinearSystem) IsDiagonallyDominant() bool {
	var strict bool
	for _, m := range sys.DiagonalMargins() {
		if m < -utils.NODETOL {
			return false
		}
		if m > utils.NODETOL {
			strict = true
		}
	}
	return strict
}
