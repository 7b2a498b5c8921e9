package FVM1D

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofvm/utils"
)

func TestMesh(t *testing.T) {
	{
		m := NewMesh(6, 0, 1)
		assert.Equal(t, 6, m.Nodes())
		assert.Equal(t, 7, m.Volumes())
		assert.Equal(t, 5, m.Interior())
		assert.InDelta(t, 0.2, m.Delta(), utils.NODETOL)
		x, err := m.CreateCoordinates()
		require.NoError(t, err)
		assert.Equal(t, 7, len(x))
		assert.Equal(t, 0., x[0])
		assert.Equal(t, 1., x[len(x)-1])
		assert.True(t, utils.IsStrictlyIncreasing(x))
		for i, xc := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
			assert.InDelta(t, xc, x[i+1], 1.e-14)
		}
	}
	{ // Volumes drive the node count
		m := NewMesh(0, 10, 1)
		assert.Equal(t, 9, m.Nodes())
		assert.InDelta(t, 0.125, m.Delta(), utils.NODETOL)
	}
	{ // Nodes win, no length means unit spacing
		m := NewMesh(5, 5, 0)
		assert.Equal(t, 6, m.Volumes())
		assert.Equal(t, 1., m.Delta())
		assert.Equal(t, 4., m.Length())
		x, err := m.CreateCoordinates()
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0.5, 1.5, 2.5, 3.5, 4}, x)
		m.SetNodes(8)
		assert.Equal(t, 9, m.Volumes())
		m.SetVolumes(8)
		assert.Equal(t, 7, m.Nodes())
	}
	{ // Length rescales delta on a count change
		m := NewMesh(5, 0, 33)
		assert.InDelta(t, 8.25, m.Delta(), utils.NODETOL)
		m.SetNodes(12)
		assert.InDelta(t, 3, m.Delta(), utils.NODETOL)
	}
	{
		m := NewMesh(0, 0, 1)
		_, err := m.CreateCoordinates()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfiguration))
		var ce *ConfigurationError
		assert.True(t, errors.As(err, &ce))
		assert.Equal(t, "CreateCoordinates", ce.Op)
	}
}
