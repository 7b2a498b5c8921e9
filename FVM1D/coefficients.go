package FVM1D

import (
	"fmt"

	"github.com/notargets/gofvm/types"
)

// Coefficients holds the stencil of every volume, indexed by volume
type Coefficients struct {
	AP, AE, AW, AEE, AWW, Su []float64
}

func newCoefficients(n int) Coefficients {
	return Coefficients{
		AP:  make([]float64, n),
		AE:  make([]float64, n),
		AW:  make([]float64, n),
		AEE: make([]float64, n),
		AWW: make([]float64, n),
		Su:  make([]float64, n),
	}
}

func (k Coefficients) arrays() [6][]float64 {
	return [6][]float64{k.AP, k.AE, k.AW, k.AEE, k.AWW, k.Su}
}

func (k Coefficients) Copy() (R Coefficients) {
	R = newCoefficients(len(k.AP))
	copy(R.AP, k.AP)
	copy(R.AE, k.AE)
	copy(R.AW, k.AW)
	copy(R.AEE, k.AEE)
	copy(R.AWW, k.AWW)
	copy(R.Su, k.Su)
	return
}

/*
Store is the single coefficient store shared by all terms of one mesh. Terms
mutate it in sequence: diffusion, advection, temporal, sources, then boundary
conditions. Callers never hold the live arrays: terms get scoped access through
Borrow and everyone else reads a copy through Snapshot.
*/
type Store struct {
	nvx   int
	delta float64
	k     Coefficients
}

func NewStore(volumes int, delta float64) (s *Store, err error) {
	s = &Store{delta: delta}
	if err = s.Allocate(volumes); err != nil {
		return nil, err
	}
	return
}

// Allocate replaces all six arrays with zeroed arrays of length n
func (s *Store) Allocate(n int) (err error) {
	if n < 3 {
		return NewConfigurationError("Allocate", "need at least 3 volumes (one unknown), have %d", n)
	}
	s.nvx = n
	s.k = newCoefficients(n)
	return
}

// Clean zeroes the coefficients in place, used between time steps
func (s *Store) Clean() {
	for _, a := range s.k.arrays() {
		for i := range a {
			a[i] = 0
		}
	}
}

func (s *Store) Volumes() int   { return s.nvx }
func (s *Store) Delta() float64 { return s.delta }

func (s *Store) SetDelta(delta float64) { s.delta = delta }

// Borrow gives fn mutable access to the live arrays for the duration of the call only
func (s *Store) Borrow(fn func(k *Coefficients)) {
	fn(&s.k)
}

func (s *Store) Snapshot() Coefficients {
	return s.k.Copy()
}

// ApplyDirichlet folds a known wall value into the wall adjacent volume. The
// ghost volume has zero width, so the half volume conductance is doubled.
// Calling it twice accumulates.
func (s *Store) ApplyDirichlet(wall types.Wall, phi float64) {
	var (
		k = s.k
	)
	switch wall {
	case types.Left_Wall:
		k.AP[1] += k.AW[1]
		k.Su[1] += 2 * k.AW[1] * phi
	case types.Right_Wall:
		i := s.nvx - 2
		k.AP[i] += k.AE[i]
		k.Su[i] += 2 * k.AE[i] * phi
	}
}

// ApplyNeumann folds a specified wall flux into the wall adjacent volume
func (s *Store) ApplyNeumann(wall types.Wall, flux float64) {
	var (
		k = s.k
	)
	switch wall {
	case types.Left_Wall:
		k.AP[1] -= k.AW[1]
		k.Su[1] -= k.AW[1] * flux * s.delta
	case types.Right_Wall:
		i := s.nvx - 2
		k.AP[i] -= k.AE[i]
		k.Su[i] += k.AE[i] * flux * s.delta
	}
}

// AddSource adds a uniform volumetric source q over the interior volumes
func (s *Store) AddSource(q float64) {
	for i := 1; i < s.nvx-1; i++ {
		s.k.Su[i] += q * s.delta
	}
}

// AddLinearSource adds the Sp part of a source linearized as Su + Sp*phi
func (s *Store) AddLinearSource(sp float64) {
	for i := 1; i < s.nvx-1; i++ {
		s.k.AP[i] -= sp * s.delta
	}
}

// Residuals returns, per unknown, the imbalance of the assembled equation for
// phi, which has one entry per volume. Wall values are ignored: their effect is
// already folded into AP and Su, so the result matches the residual of the
// matrix built by BuildSystem.
func (s *Store) Residuals(phi []float64) (r []float64, err error) {
	if len(phi) != s.nvx {
		err = NewConfigurationError("Residuals", "len(phi) = %d, want %d", len(phi), s.nvx)
		return
	}
	var (
		k = s.k
		N = s.nvx - 2
	)
	r = make([]float64, N)
	for i := 0; i < N; i++ {
		v := i + 1
		res := k.AP[v]*phi[v] - k.Su[v]
		if i+1 < N {
			res -= k.AE[v] * phi[v+1]
		}
		if i > 0 {
			res -= k.AW[v] * phi[v-1]
		}
		if i < N-2 {
			res -= k.AEE[v] * phi[v+2]
		}
		if i > 1 {
			res -= k.AWW[v] * phi[v-2]
		}
		r[i] = res
	}
	return
}

func (s *Store) Print() {
	var (
		k = s.k
	)
	fmt.Printf("aP  = %8.5f\n", k.AP)
	fmt.Printf("aE  = %8.5f\n", k.AE)
	fmt.Printf("aW  = %8.5f\n", k.AW)
	fmt.Printf("aEE = %8.5f\n", k.AEE)
	fmt.Printf("aWW = %8.5f\n", k.AWW)
	fmt.Printf("Su  = %8.5f\n", k.Su)
}
