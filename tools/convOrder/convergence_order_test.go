package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "study.csv")
	require.NoError(t, os.WriteFile(fileName, []byte(`Scheme,Nodes,Dx,L1,L2,LInf
CENTRAL,11,0.1,0.04,0.04,0.08
CENTRAL,21,0.05,0.01,0.01,0.02
UPWIND1,11,0.1,0.2,0.2,0.2
UPWIND1,21,0.05,0.1,0.1,0.1
`), 0644))
	studies, err := readCSV(fileName)
	require.NoError(t, err)
	require.Len(t, studies, 2)
	cs := studies["CENTRAL"]
	assert.Equal(t, []int{11, 21}, cs.numPTS)
	assert.Equal(t, []float64{0.08, 0.02}, cs.LInf)
	cs.Print()
	require.NoError(t, os.WriteFile(fileName, []byte("Scheme,Nodes\nQUICK,x,1,1,1,1\n"), 0644))
	_, err = readCSV(fileName)
	assert.Error(t, err)
}
