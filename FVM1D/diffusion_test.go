package FVM1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffusion(t *testing.T) {
	{
		s := diffusionStore(t, 7, 0.1, 0.2)
		k := s.Snapshot()
		for i := 1; i < 6; i++ {
			assert.Equal(t, k.AE[i]+k.AW[i], k.AP[i])
			assert.InDelta(t, 0.5, k.AE[i], 1.e-15)
		}
		// Walls are left to the boundary conditions
		for _, i := range []int{0, 6} {
			assert.Equal(t, 0., k.AP[i])
			assert.Equal(t, 0., k.AE[i])
		}
		assert.Equal(t, make([]float64, 7), k.AEE)
		assert.Equal(t, make([]float64, 7), k.Su)
	}
	{ // Additive over repeated passes
		s := diffusionStore(t, 5, 2, 1)
		NewDiffusionTerm(s, 2, 1).CalcCoef()
		k := s.Snapshot()
		assert.Equal(t, []float64{0, 8, 8, 8, 0}, k.AP)
	}
}
