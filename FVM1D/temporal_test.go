package FVM1D

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemporal(t *testing.T) {
	{
		s, _ := NewStore(6, 0.5)
		_, err := NewTemporalTerm(s, 1, 0.5, 0)
		assert.True(t, errors.Is(err, ErrConfiguration))
	}
	{ // A zero previous solution leaves the source alone
		s := diffusionStore(t, 6, 1, 0.5)
		s.AddSource(3)
		before := s.Snapshot()
		tt, err := NewTemporalTerm(s, 2, 0.5, 0.25)
		require.NoError(t, err)
		require.NoError(t, tt.CalcCoef(make([]float64, 6)))
		k := s.Snapshot()
		assert.Equal(t, before.Su, k.Su)
		for i := 1; i < 5; i++ {
			assert.InDelta(t, before.AP[i]+4, k.AP[i], 1.e-14)
		}
		assert.Equal(t, 0., k.AP[0])
		assert.Equal(t, 0., k.AP[5])
	}
	{ // The source injection is linear in phiOld
		phi := []float64{9, 1, 2, 3, 4, 9}
		s1, _ := NewStore(6, 0.5)
		t1, _ := NewTemporalTerm(s1, 1, 0.5, 0.1)
		require.NoError(t, t1.CalcCoef(phi))
		s2, _ := NewStore(6, 0.5)
		t2, _ := NewTemporalTerm(s2, 1, 0.5, 0.1)
		phi2 := make([]float64, len(phi))
		for i := range phi {
			phi2[i] = 2 * phi[i]
		}
		require.NoError(t, t2.CalcCoef(phi2))
		k1, k2 := s1.Snapshot(), s2.Snapshot()
		for i := 1; i < 5; i++ {
			assert.InDelta(t, 2*k1.Su[i], k2.Su[i], 1.e-12)
			assert.InDelta(t, phi[i]*5, k1.Su[i], 1.e-12)
		}
		// Walls are not unknowns
		assert.Equal(t, 0., k1.Su[0])
	}
	{
		s, _ := NewStore(6, 0.5)
		tt, _ := NewTemporalTerm(s, 1, 0.5, 0.1)
		assert.True(t, errors.Is(tt.CalcCoef(make([]float64, 4)), ErrConfiguration))
	}
}
