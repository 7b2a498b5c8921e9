package analytic_solutions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gofvm/utils"
)

func TestSteadyConvectionDiffusion(t *testing.T) {
	X := utils.Linspace(0, 1, 21)
	{ // Walls
		for _, u := range []float64{-2.5, -0.1, 0, 0.1, 2.5, 100} {
			Phi := SteadyConvectionDiffusion(X, 1, u, 0.1, 1, 1, 0)
			assert.InDelta(t, 1, Phi[0], 1.e-12)
			assert.InDelta(t, 0, Phi[20], 1.e-12)
			assert.False(t, utils.IsNan(Phi))
			for i := 1; i < len(Phi); i++ {
				assert.LessOrEqual(t, Phi[i], Phi[i-1]+1.e-15)
			}
		}
	}
	{ // No flow is linear
		Phi := SteadyConvectionDiffusion(X, 1, 0, 0.1, 1, 2, 1)
		for i, x := range X {
			assert.InDelta(t, 2-x, Phi[i], 1.e-14)
		}
	}
	{ // Pe = 1
		Phi := SteadyConvectionDiffusion([]float64{0.5}, 1, 0.1, 0.1, 1, 1, 0)
		want := 1 - (math.Exp(0.5)-1)/(math.E-1)
		assert.InDelta(t, want, Phi[0], 1.e-14)
	}
	{ // Large Peclet number: boundary layer at the outflow wall
		Phi := SteadyConvectionDiffusion([]float64{0.5, 0.99}, 1, 1000, 1, 1, 1, 0)
		assert.InDelta(t, 1, Phi[0], 1.e-12)
		assert.InDelta(t, 1-math.Exp(-10), Phi[1], 1.e-12)
	}
}

func TestTransientStep(t *testing.T) {
	X := utils.Linspace(0, 2, 41)
	{
		Phi := TransientStep(X, 0, 1, 0.1, 0.01)
		assert.Equal(t, 1., Phi[0])
		assert.Equal(t, 0., Phi[1])
	}
	{ // The wall value holds and the front travels with the flow
		Phi := TransientStep(X, 5, 1, 0.2, 0.00001)
		assert.InDelta(t, 1, Phi[0], 1.e-12)
		assert.False(t, utils.IsNan(Phi))
		// front at x = 1
		assert.InDelta(t, 0.5, Phi[20], 0.01)
		assert.Greater(t, Phi[18], 0.99)
		assert.Less(t, Phi[22], 0.01)
	}
	{ // Pure diffusion reduces to erfc
		Phi := TransientStep([]float64{0.3}, 2, 1, 0, 0.05)
		assert.InDelta(t, math.Erfc(0.3/(2*math.Sqrt(0.1))), Phi[0], 1.e-14)
	}
	{ // exp(u*x/D) overflows on its own here
		Phi := TransientStep([]float64{2}, 1, 1, 1, 0.001)
		assert.False(t, utils.IsNan(Phi))
		assert.InDelta(t, 0, Phi[0], 1.e-12)
		assert.InDelta(t, math.Exp(9)*math.Erfc(3), erfcx(3), 1.e-12)
		assert.InDelta(t, 1/(30*math.SqrtPi), erfcx(30), 1.e-4)
	}
}

func TestErrorNorms(t *testing.T) {
	L1, L2, LInf := ErrorNorms([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 2})
	assert.InDelta(t, 0.5, L1, 1.e-15)
	assert.InDelta(t, 1, L2, 1.e-15)
	assert.InDelta(t, 2, LInf, 1.e-15)
}

func TestObservedOrder(t *testing.T) {
	h := []float64{0.1, 0.05, 0.025}
	e := []float64{0.04, 0.01, 0.0025}
	assert.InDeltaSlice(t, []float64{2, 2}, ObservedOrder(h, e), 1.e-12)
	assert.Nil(t, ObservedOrder(h[:1], e))
}
