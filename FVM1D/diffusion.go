package FVM1D

// DiffusionTerm adds the diffusive flux Gamma*dphi/dx through both faces of every interior volume
type DiffusionTerm struct {
	store     *Store
	Gamma, Dx float64
}

func NewDiffusionTerm(store *Store, gamma, dx float64) *DiffusionTerm {
	return &DiffusionTerm{
		store: store,
		Gamma: gamma,
		Dx:    dx,
	}
}

// CalcCoef is purely additive, wall corrections are left to the Store
func (d *DiffusionTerm) CalcCoef() {
	var (
		D = d.Gamma / d.Dx
	)
	d.store.Borrow(func(k *Coefficients) {
		for i := 1; i < len(k.AP)-1; i++ {
			k.AE[i] += D
			k.AW[i] += D
			k.AP[i] += D + D
		}
	})
}
