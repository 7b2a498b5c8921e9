package InputParameters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/gofvm/FVM1D"
	"github.com/notargets/gofvm/model_problems/ConvectionDiffusion1D"
	"github.com/notargets/gofvm/types"
)

// Parameters obtained from the YAML case file
type InputParameters1D struct {
	Title        string             `json:"Title"`
	Scheme       string             `json:"Scheme"`
	Solver       string             `json:"Solver"`
	Rho          float64            `json:"Rho"`
	Gamma        float64            `json:"Gamma"`
	Velocity     float64            `json:"Velocity"`
	FaceVelocity []float64          `json:"FaceVelocity"` // One value per face, overrides Velocity
	Length       float64            `json:"Length"`
	Nodes        int                `json:"Nodes"`
	BCs          map[string]BCInput `json:"BCs"`          // Keyed by wall: Left, Right
	Source       map[string]float64 `json:"Source"`
	Transient    bool               `json:"Transient"`
	Dt           float64            `json:"Dt"`
	FinalTime    float64            `json:"FinalTime"`
	InitialValue float64            `json:"InitialValue"`
	LogFrequency int                `json:"LogFrequency"`
}

type BCInput struct {
	Type  string  `json:"Type"`
	Value float64 `json:"Value"`
}

const ExampleFile = `
########################################
Title: "Versteeg and Malalasekera 5.1"
Scheme: QUICK        # CENTRAL, UPWIND1, UPWIND2, QUICK, CENTRAL_TRANSIENT
Solver: banded       # lu, banded, gauss_seidel
Rho: 1.
Gamma: 0.1
Velocity: 0.1
Length: 1.
Nodes: 6
BCs:
  Left:
    Type: Dirichlet
    Value: 1.
  Right:
    Type: Dirichlet
    Value: 0.
########################################
`

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Scheme\n", ip.Scheme)
	fmt.Printf("[%s]\t\t\t= Solver\n", ip.Solver)
	fmt.Printf("%8.5f\t\t= Rho\n", ip.Rho)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	if len(ip.FaceVelocity) != 0 {
		fmt.Printf("%v\t= Face Velocity\n", ip.FaceVelocity)
	} else {
		fmt.Printf("%8.5f\t\t= Velocity\n", ip.Velocity)
	}
	fmt.Printf("%8.5f\t\t= Length\n", ip.Length)
	fmt.Printf("[%d]\t\t\t\t= Nodes\n", ip.Nodes)
	if ip.Transient {
		fmt.Printf("%8.5f\t\t= Dt\n", ip.Dt)
		fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	}
	keys := make([]string, 0, len(ip.BCs))
	for k := range ip.BCs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %s %8.5f\n", key, ip.BCs[key].Type, ip.BCs[key].Value)
	}
	if len(ip.Source) != 0 {
		fmt.Printf("Source = %v\n", ip.Source)
	}
}

// Parameters converts the case file into the driver parameters
func (ip *InputParameters1D) Parameters() (p ConvectionDiffusion1D.Parameters, err error) {
	var (
		scheme FVM1D.Scheme
	)
	if scheme, err = FVM1D.ParseScheme(ip.Scheme); err != nil {
		return
	}
	p = ConvectionDiffusion1D.Parameters{
		Rho:          ip.Rho,
		Gamma:        ip.Gamma,
		U:            ip.Velocity,
		Velocity:     ip.FaceVelocity,
		Length:       ip.Length,
		Nodes:        ip.Nodes,
		Scheme:       scheme,
		Phi0:         ip.InitialValue,
		LogFrequency: ip.LogFrequency,
	}
	if ip.Transient || scheme.IsTransient() {
		p.Dt = ip.Dt
	}
	if ip.Transient {
		p.FinalTime = ip.FinalTime
	}
	for name, val := range ip.Source {
		switch strings.ToLower(name) {
		case "su", "q":
			p.Q = val
		case "sp":
			p.Sp = val
		default:
			err = FVM1D.NewConfigurationError("InputParameters1D", "unknown source term %q, want Su or Sp", name)
			return
		}
	}
	for name, bc := range ip.BCs {
		wall, ok := types.NewWall(name)
		if !ok {
			err = FVM1D.NewConfigurationError("InputParameters1D", "unknown wall %q, want Left or Right", name)
			return
		}
		b := ConvectionDiffusion1D.BoundaryCondition{Kind: types.NewBCFLAG(bc.Type), Value: bc.Value}
		if wall == types.Left_Wall {
			p.Left = b
		} else {
			p.Right = b
		}
	}
	err = p.Validate()
	return
}
