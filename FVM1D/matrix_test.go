package FVM1D

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gofvm/types"
)

func TestBuildSystem(t *testing.T) {
	{ // Diffusion with a source and two Dirichlet walls
		s := diffusionStore(t, 6, 1, 0.25)
		s.AddSource(100)
		s.ApplyDirichlet(types.Left_Wall, 2)
		s.ApplyDirichlet(types.Right_Wall, 1)
		sys, err := BuildSystem(s)
		require.NoError(t, err)
		assert.Equal(t, 4, sys.N)
		assert.Equal(t, 1, sys.KL)
		assert.Equal(t, 1, sys.KU)
		want := mat.NewDense(4, 4, []float64{
			12, -4, 0, 0,
			-4, 8, -4, 0,
			0, -4, 8, -4,
			0, 0, -4, 12,
		})
		assert.True(t, mat.Equal(want, sys.Dense()))
		assert.Equal(t, []float64{41, 25, 25, 33}, sys.RHS())
		sp := sys.Sparse()
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				assert.Equal(t, want.At(i, j), sp.At(i, j))
			}
		}
		assert.Equal(t, 10, sp.NNZ())
		r, err := sys.Residual(make([]float64, 4))
		require.NoError(t, err)
		assert.Equal(t, sys.RHS(), r)
		_, err = sys.Residual(make([]float64, 3))
		assert.True(t, errors.Is(err, ErrConfiguration))
		assert.Equal(t, []float64{8, 0, 0, 8}, sys.DiagonalMargins())
		assert.True(t, sys.IsDiagonallyDominant())
	}
	{ // One unknown
		s := diffusionStore(t, 3, 1, 1)
		s.ApplyDirichlet(types.Left_Wall, 1)
		sys, err := BuildSystem(s)
		require.NoError(t, err)
		assert.Equal(t, 1, sys.N)
		assert.Equal(t, 0, sys.KL)
		assert.Equal(t, 3., sys.A.At(0, 0))
		assert.Equal(t, []float64{2}, sys.RHS())
	}
	{ // Zero margin on every row
		s := diffusionStore(t, 6, 1, 0.25)
		s.Borrow(func(k *Coefficients) {
			k.AP[1] -= k.AW[1]
			k.AP[4] -= k.AE[4]
		})
		sys, err := BuildSystem(s)
		require.NoError(t, err)
		assert.False(t, sys.IsDiagonallyDominant())
	}
}

func TestBuildSystemQUICK(t *testing.T) {
	s := quickStore(t)
	sys, err := BuildSystem(s)
	require.NoError(t, err)
	assert.Equal(t, 5, sys.N)
	assert.Equal(t, 2, sys.KL)
	assert.Equal(t, 2, sys.KU)
	A := sys.Dense()
	// Far upstream couplings exist from the third row on
	assert.InDelta(t, -0.6, A.At(1, 0), 1.e-15)
	assert.InDelta(t, 0.0125, A.At(2, 0), 1.e-15)
	assert.InDelta(t, 0.0125, A.At(3, 1), 1.e-15)
	assert.InDelta(t, 0.0125, A.At(4, 2), 1.e-15)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0., A.At(i, i+2))
	}
	for i := 0; i < 5; i++ {
		assert.Greater(t, A.At(i, i), 0.)
	}
	// The wall rows are strictly dominant, the far upstream term of the interior
	// rows makes them fall short by 2*|aWW|
	m := sys.DiagonalMargins()
	assert.Greater(t, m[0], 0.)
	assert.Greater(t, m[4], 0.)
	for i := 1; i < 4; i++ {
		assert.InDelta(t, -0.025, m[i], 1.e-12)
	}
	// The store residual and the matrix residual agree
	phi := []float64{1, 0.9, 0.7, 0.5, 0.3, 0.1, 0}
	rs, err := s.Residuals(phi)
	require.NoError(t, err)
	rm, err := sys.Residual(phi[1:6])
	require.NoError(t, err)
	for i := range rs {
		assert.InDelta(t, -rs[i], rm[i], 1.e-14)
	}
}

func TestBuildSystemErrors(t *testing.T) {
	s := &Store{}
	_, err := BuildSystem(s)
	assert.True(t, errors.Is(err, ErrConfiguration))
}
