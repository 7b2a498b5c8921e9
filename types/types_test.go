package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	{ // BC labels from case files
		assert.Equal(t, BC_Dirichlet, NewBCFLAG("Dirichlet"))
		assert.Equal(t, BC_Neuman, NewBCFLAG(" neumann "))
		assert.Equal(t, BC_Neuman, NewBCFLAG("flux"))
		assert.Equal(t, BC_None, NewBCFLAG("robin"))
		assert.Equal(t, "Neumann", BC_Neuman.String())
	}
	{ // Wall labels
		w, ok := NewWall("LEFT_WALL")
		assert.True(t, ok)
		assert.Equal(t, Left_Wall, w)
		w, ok = NewWall("b")
		assert.True(t, ok)
		assert.Equal(t, Right_Wall, w)
		_, ok = NewWall("top")
		assert.False(t, ok)
		assert.Equal(t, "RIGHT_WALL", Right_Wall.String())
	}
}
