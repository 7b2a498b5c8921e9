package FVM1D

// TemporalTerm is the implicit (backward Euler) time derivative
type TemporalTerm struct {
	store       *Store
	Rho, Dx, Dt float64
}

func NewTemporalTerm(store *Store, rho, dx, dt float64) (t *TemporalTerm, err error) {
	if dt <= 0 {
		err = NewConfigurationError("NewTemporalTerm", "time step must be positive, have %v", dt)
		return
	}
	t = &TemporalTerm{
		store: store,
		Rho:   rho,
		Dx:    dx,
		Dt:    dt,
	}
	return
}

// CalcCoef must follow Store.Clean once per step, phiOld is the previous
// solution with one entry per volume
func (t *TemporalTerm) CalcCoef(phiOld []float64) (err error) {
	if len(phiOld) != t.store.Volumes() {
		err = NewConfigurationError("TemporalTerm.CalcCoef",
			"len(phiOld) = %d, want %d", len(phiOld), t.store.Volumes())
		return
	}
	var (
		c = t.Rho * t.Dx / t.Dt
	)
	t.store.Borrow(func(k *Coefficients) {
		for i := 1; i < len(k.AP)-1; i++ {
			k.AP[i] += c
			k.Su[i] += phiOld[i] * c
		}
	})
	return
}
