package LinearSolvers

import (
	"fmt"
	"strings"

	"github.com/notargets/gofvm/FVM1D"
)

type Solver interface {
	Solve(sys *FVM1D.LinearSystem) (x []float64, err error)
	Name() string
}

type SolverType uint8

const (
	LU SolverType = iota
	Banded
	GaussSeidel
)

var (
	SolverNameMap = map[string]SolverType{
		"lu":           LU,
		"dense":        LU,
		"banded":       Banded,
		"band":         Banded,
		"tdma":         Banded,
		"gauss_seidel": GaussSeidel,
		"gaussseidel":  GaussSeidel,
		"gs":           GaussSeidel,
	}
	solverNames = [...]string{"LU", "Banded", "GaussSeidel"}
)

func (st SolverType) String() string {
	if int(st) < len(solverNames) {
		return solverNames[st]
	}
	return "UNKNOWN"
}

func ParseSolverType(label string) (st SolverType, err error) {
	var ok bool
	if st, ok = SolverNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = FVM1D.NewConfigurationError("ParseSolverType", "unknown linear solver %q", label)
	}
	return
}

// NewSolver returns the solver with its default settings
func NewSolver(st SolverType) (s Solver, err error) {
	switch st {
	case LU:
		s = &LUSolver{}
	case Banded:
		s = &BandSolver{}
	case GaussSeidel:
		s = NewGaussSeidelSolver(1.e-12, 10000)
	default:
		err = FVM1D.NewConfigurationError("NewSolver", "unknown linear solver %d", st)
	}
	return
}

func checkSystem(name string, sys *FVM1D.LinearSystem) (err error) {
	if sys == nil || sys.N < 1 || sys.A == nil || sys.B == nil {
		err = &FVM1D.LinearSolveError{Solver: name, Row: -1, Err: fmt.Errorf("empty system")}
	}
	return
}
