package FVM1D

import (
	"math"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Scheme uint8

const (
	Central Scheme = iota
	Upwind1
	Upwind2
	QUICK
	CentralTransient
)

var (
	schemeNames = [...]string{"CENTRAL", "UPWIND1", "UPWIND2", "QUICK", "CENTRAL_TRANSIENT"}
	// Short tags: dc, upw, upw2, dct
	SchemeNameMap = map[string]Scheme{
		"central":           Central,
		"dc":                Central,
		"upwind1":           Upwind1,
		"upw":               Upwind1,
		"upwind2":           Upwind2,
		"upw2":              Upwind2,
		"quick":             QUICK,
		"central_transient": CentralTransient,
		"dct":               CentralTransient,
	}
)

func (s Scheme) String() string {
	if int(s) < len(schemeNames) {
		return schemeNames[s]
	}
	return "UNKNOWN"
}

func (s Scheme) Valid() bool { return s <= CentralTransient }

// FoldsBoundaries is true for the wide stencil schemes, which fold the wall
// values into the wall adjacent volumes themselves. Generic Dirichlet
// application must not be repeated for them.
func (s Scheme) FoldsBoundaries() bool { return s == Upwind2 || s == QUICK }

func (s Scheme) IsTransient() bool { return s == CentralTransient }

func ParseScheme(label string) (s Scheme, err error) {
	var ok bool
	if s, ok = SchemeNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = NewConfigurationError("ParseScheme", "unknown advection scheme %q", label)
	}
	return
}

// SchemeParams carries the per call inputs of the advection schemes: wall values
// for the schemes that fold them, the diffusion conductance Gamma/dx used by
// QUICK at the walls and the time step for CentralTransient.
type SchemeParams struct {
	PhiA, PhiB float64
	D          float64
	Dt         float64
}

type schemeFunc func(a *AdvectionTerm, k *Coefficients, p SchemeParams)

var schemeTable = map[Scheme]schemeFunc{
	Central:          (*AdvectionTerm).central,
	Upwind1:          (*AdvectionTerm).upwind1,
	Upwind2:          (*AdvectionTerm).upwind2,
	QUICK:            (*AdvectionTerm).quick,
	CentralTransient: (*AdvectionTerm).centralTransient,
}

// AdvectionTerm adds the advective flux rho*u*phi. The velocity is sampled at
// the faces: u[i] is the east face of volume i and the west face of volume i+1.
type AdvectionTerm struct {
	store   *Store
	scheme  Scheme
	Rho, Dx float64
	u       []float64
}

func NewAdvectionTerm(store *Store, scheme Scheme, rho, dx float64) (a *AdvectionTerm, err error) {
	if !scheme.Valid() {
		err = &ConfigurationError{Op: "NewAdvectionTerm", Index: -1, Scheme: scheme.String(),
			Msg: "unknown advection scheme"}
		return
	}
	a = &AdvectionTerm{
		store:  store,
		scheme: scheme,
		Rho:    rho,
		Dx:     dx,
		u:      make([]float64, store.Volumes()-1),
	}
	return
}

func (a *AdvectionTerm) Scheme() Scheme { return a.scheme }

func (a *AdvectionTerm) SetVelocity(u []float64) (err error) {
	if len(u) != a.store.Volumes()-1 {
		err = &ConfigurationError{Op: "SetVelocity", Index: -1, Scheme: a.scheme.String(),
			Msg: "velocity needs one value per face, volumes - 1"}
		return
	}
	a.u = make([]float64, len(u))
	copy(a.u, u)
	return
}

func (a *AdvectionTerm) SetUniformVelocity(u float64) {
	a.u = make([]float64, a.store.Volumes()-1)
	for i := range a.u {
		a.u[i] = u
	}
}

// Velocity returns a copy of the face velocities
func (a *AdvectionTerm) Velocity() (u []float64) {
	u = make([]float64, len(a.u))
	copy(u, a.u)
	return
}

func (a *AdvectionTerm) CalcCoef(p SchemeParams) (err error) {
	var (
		nvx = a.store.Volumes()
	)
	if len(a.u) != nvx-1 {
		return &ConfigurationError{Op: "AdvectionTerm.CalcCoef", Index: -1, Scheme: a.scheme.String(),
			Msg: "velocity length does not match the store, call SetVelocity after Allocate"}
	}
	if a.scheme == CentralTransient && p.Dt <= 0 {
		return &ConfigurationError{Op: "AdvectionTerm.CalcCoef", Index: -1, Scheme: a.scheme.String(),
			Msg: "time step must be positive"}
	}
	if a.scheme == QUICK && nvx < 5 {
		log.WithFields(log.Fields{
			"scheme":  a.scheme.String(),
			"volumes": nvx,
		}).Warn("mesh too coarse for the QUICK interior stencil, only the wall formulas apply")
	}
	calc := schemeTable[a.scheme]
	a.store.Borrow(func(k *Coefficients) {
		calc(a, k, p)
	})
	return
}

func pos(f float64) float64 { return math.Max(f, 0) }

// neg is the negative part, -max(-f, 0)
func neg(f float64) float64 { return -math.Max(-f, 0) }

func (a *AdvectionTerm) central(k *Coefficients, _ SchemeParams) {
	var (
		u, rho = a.u, a.Rho
	)
	for i := 1; i < len(k.AP)-1; i++ {
		CE := -rho * u[i] * 0.5
		CW := rho * u[i-1] * 0.5
		k.AE[i] += CE
		k.AW[i] += CW
		k.AP[i] += CE + CW + rho*(u[i]-u[i-1])
	}
}

// centralTransient is central differencing integrated over one step. The face
// coefficients are positive and subtracted on the east side.
func (a *AdvectionTerm) centralTransient(k *Coefficients, p SchemeParams) {
	var (
		u, rho, dt = a.u, a.Rho, p.Dt
	)
	for i := 1; i < len(k.AP)-1; i++ {
		CE := rho * u[i] * 0.5 * dt
		CW := rho * u[i-1] * 0.5 * dt
		k.AE[i] -= CE
		k.AW[i] += CW
		k.AP[i] += -CE + CW + rho*dt*(u[i]-u[i-1])
	}
}

func (a *AdvectionTerm) upwind1(k *Coefficients, _ SchemeParams) {
	var (
		u, rho = a.u, a.Rho
	)
	for i := 1; i < len(k.AP)-1; i++ {
		CE := pos(-rho * u[i])
		CW := pos(rho * u[i-1])
		k.AE[i] += CE
		k.AW[i] += CW
		k.AP[i] += CE + CW + rho*(u[i]-u[i-1])
	}
}

func (a *AdvectionTerm) upwind2(k *Coefficients, p SchemeParams) {
	var (
		u, rho = a.u, a.Rho
		nvx    = len(k.AP)
		last   = nvx - 2
	)
	for i := 1; i < nvx-1; i++ {
		CE := pos(rho * u[i] * 0.5)
		CW := pos(rho * u[i-1] * 0.5)
		CEn := neg(rho * u[i] * 0.5)
		CWn := neg(rho * u[i-1] * 0.5)
		k.AE[i] += -3*CEn - CWn
		k.AW[i] += CE + 3*CW
		k.AEE[i] += CEn
		k.AWW[i] += -CW
		k.AP[i] += CE + 2*CW - 2*CEn - CWn + rho*(u[i]-u[i-1])
		// The far upstream neighbor of these two is a wall
		if i == 2 && u[i] > 0 {
			k.AW[i] += CW
			k.Su[i] += -2 * CW * p.PhiA
		}
		if i == nvx-3 && u[i] < 0 {
			k.AE[i] -= CEn
			k.Su[i] += 2 * CEn * p.PhiB
		}
	}
	// Wall adjacent volumes
	k.AP[1] += k.AW[1] + 3*k.AWW[1]
	k.Su[1] += (2*k.AW[1] + 4*k.AWW[1]) * p.PhiA
	k.AP[last] += k.AE[last] + 3*k.AEE[last]
	k.Su[last] += (2*k.AE[last] + 4*k.AEE[last]) * p.PhiB
}

/*
quick follows the Leonard QUICK scheme with the wall treatment of Versteeg and
Malalasekera: volumes 1 and nvx-2 use a linear extrapolation through the wall
value and get their own formulas, volumes 2 and nvx-3 fold the far upstream
reference into the near neighbor and a source term.
*/
func (a *AdvectionTerm) quick(k *Coefficients, p SchemeParams) {
	var (
		u, rho = a.u, a.Rho
		nvx    = len(k.AP)
		last   = nvx - 2
		D      = p.D
	)
	for i := 2; i < nvx-2; i++ {
		CE := pos(rho * u[i] * 0.125)
		CW := pos(rho * u[i-1] * 0.125)
		CEn := neg(rho * u[i] * 0.125)
		CWn := neg(rho * u[i-1] * 0.125)
		k.AE[i] += -3*CE - 6*CEn - CWn
		k.AW[i] += 6*CW + CE + 3*CWn
		k.AEE[i] += CEn
		k.AWW[i] += -CW
		k.AP[i] += -2*CE + 5*CW - 5*CEn + 2*CWn + rho*(u[i]-u[i-1])
		// AP is recomputed, not accumulated, after the fold
		if i == 2 && u[i] > 0 {
			k.AW[i] += CW
			k.AP[i] = k.AW[i] + k.AE[i] - 2*CW
			k.Su[i] += -2 * CW * p.PhiA
		}
		if i == nvx-3 && u[i] < 0 {
			k.AE[i] -= CEn
			k.AP[i] = k.AW[i] + k.AE[i] + 2*CEn
			k.Su[i] += 2 * CEn * p.PhiB
		}
	}
	// First volume
	{
		CE := pos(rho * u[1] * 0.125)
		CW := pos(rho * u[0] * 0.125)
		CEn := neg(rho * u[1] * 0.125)
		CWn := neg(rho * u[0] * 0.125)
		k.AE[1] += D/3 - 3*CE - 6*CEn
		k.AEE[1] += CEn
		Sp := -(8*D/3 + 2*CE + 8*CW + 8*CWn)
		k.AP[1] = k.AE[1] + k.AEE[1] - Sp
		k.Su[1] += -Sp * p.PhiA
	}
	// Last volume, faces last and last-1 bound it, mirroring u[1] and u[0] above
	{
		CE := pos(rho * u[last] * 0.125)
		CW := pos(rho * u[last-1] * 0.125)
		CEn := neg(rho * u[last] * 0.125)
		CWn := neg(rho * u[last-1] * 0.125)
		k.AW[last] += D/3 + 6*CW + 3*CWn
		k.AWW[last] += -CW
		Sp := -(8*D/3 - 8*CE - 8*CEn - 2*CWn)
		k.AP[last] = k.AW[last] + k.AWW[last] - Sp
		k.Su[last] += -Sp * p.PhiB
	}
}
