package InputParameters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofvm/FVM1D"
	"github.com/notargets/gofvm/types"
)

func TestParse(t *testing.T) {
	{
		ip := &InputParameters1D{}
		require.NoError(t, ip.Parse([]byte(ExampleFile)))
		assert.Equal(t, "QUICK", ip.Scheme)
		assert.Equal(t, 6, ip.Nodes)
		assert.Equal(t, 0.1, ip.Gamma)
		assert.Equal(t, BCInput{Type: "Dirichlet", Value: 1}, ip.BCs["Left"])
		p, err := ip.Parameters()
		require.NoError(t, err)
		assert.Equal(t, FVM1D.QUICK, p.Scheme)
		assert.Equal(t, types.BC_Dirichlet, p.Left.Kind)
		assert.Equal(t, 1., p.Left.Value)
		assert.Equal(t, 0., p.Right.Value)
		assert.Equal(t, 0., p.Dt)
		ip.Print()
	}
	{
		ip := &InputParameters1D{}
		require.NoError(t, ip.Parse([]byte(`
Scheme: central
Rho: 1
Gamma: 1
Length: 1
Nodes: 11
FaceVelocity: [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
Transient: true
Dt: 0.01
FinalTime: 1
Source:
  Su: 1
  Sp: -0.5
BCs:
  left:
    Type: value
    Value: 0
  right:
    Type: flux
    Value: 0
`)))
		p, err := ip.Parameters()
		require.NoError(t, err)
		assert.Equal(t, types.BC_Neuman, p.Right.Kind)
		assert.Equal(t, 1., p.Q)
		assert.Equal(t, -0.5, p.Sp)
		assert.Equal(t, 0.01, p.Dt)
		assert.Equal(t, 1., p.FinalTime)
		assert.Len(t, p.Velocity, 11)
	}
	{ // Errors
		for _, doc := range []string{
			"Scheme: lax\n",
			"Scheme: quick\nRho: 1\nGamma: 1\nLength: 1\nNodes: 5\nBCs:\n  top:\n    Type: value\n",
			"Scheme: quick\nRho: 1\nGamma: 1\nLength: 1\nNodes: 5\nBCs:\n  Left:\n    Type: flux\n  Right:\n    Type: value\n",
			"Scheme: central\nRho: 1\nGamma: 1\nLength: 1\nNodes: 5\nSource:\n  S: 1\n",
		} {
			ip := &InputParameters1D{}
			require.NoError(t, ip.Parse([]byte(doc)))
			_, err := ip.Parameters()
			assert.True(t, errors.Is(err, FVM1D.ErrConfiguration), doc)
		}
		ip := &InputParameters1D{}
		assert.Error(t, ip.Parse([]byte("Nodes: [1")))
	}
}
