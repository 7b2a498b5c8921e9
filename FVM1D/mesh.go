package FVM1D

import "fmt"

/*
Mesh is a uniform 1D mesh of nodes with a ghost volume at each end.

	 nodes = 5, volumes = 6
	 0     1     2     3     4     5  <-- Volumes
	 o--|--x--|--x--|--x--|--x--|--o
	       0     1     2     3        <-- Unknowns
*/
type Mesh struct {
	nodes, volumes int
	length, delta  float64
	hasLength      bool
}

// NewMesh accepts either a node count or a volume count, zero meaning not supplied.
// When both are given the node count wins. A zero length leaves delta at 1.
func NewMesh(nodes, volumes int, length float64) (m *Mesh) {
	m = &Mesh{
		nodes:     nodes,
		volumes:   volumes,
		length:    length,
		hasLength: length > 0,
		delta:     1,
	}
	m.adjustNodesVolumes(nodes, volumes)
	m.calcDelta()
	return
}

func (m *Mesh) adjustNodesVolumes(nodes, volumes int) {
	switch {
	case nodes > 0:
		m.nodes = nodes
		m.volumes = nodes + 1
	case volumes > 0:
		m.volumes = volumes
		m.nodes = volumes - 1
	}
}

func (m *Mesh) calcDelta() {
	if m.hasLength && m.nodes > 1 {
		m.delta = m.length / float64(m.nodes-1)
	}
}

func (m *Mesh) Nodes() int   { return m.nodes }
func (m *Mesh) Volumes() int { return m.volumes }
func (m *Mesh) Delta() float64 {
	return m.delta
}

// Interior is the number of unknowns, volumes - 2
func (m *Mesh) Interior() int {
	if m.volumes < 2 {
		return 0
	}
	return m.volumes - 2
}

func (m *Mesh) Length() float64 {
	if m.hasLength {
		return m.length
	}
	return m.delta * float64(m.nodes-1)
}

func (m *Mesh) SetNodes(nodes int) {
	m.adjustNodesVolumes(nodes, 0)
	m.calcDelta()
}

func (m *Mesh) SetVolumes(volumes int) {
	m.adjustNodesVolumes(0, volumes)
	m.calcDelta()
}

// CreateCoordinates returns one coordinate per volume: the two walls at 0 and
// Length() and the volume centers in between.
func (m *Mesh) CreateCoordinates() (x []float64, err error) {
	if m.volumes <= 0 {
		err = NewConfigurationError("CreateCoordinates", "neither nodes nor volumes were supplied")
		return
	}
	if m.volumes < 2 {
		err = NewConfigurationError("CreateCoordinates", "need at least 2 volumes, have %d", m.volumes)
		return
	}
	var (
		length = m.Length()
		first  = 0.5 * m.delta
	)
	x = make([]float64, m.volumes)
	for i := 1; i < m.volumes-1; i++ {
		x[i] = first + float64(i-1)*m.delta
	}
	x[m.volumes-1] = length
	return
}

func (m *Mesh) String() string {
	return fmt.Sprintf("nodes = %d, volumes = %d, length = %8.5f, delta = %8.5f",
		m.nodes, m.volumes, m.Length(), m.delta)
}
