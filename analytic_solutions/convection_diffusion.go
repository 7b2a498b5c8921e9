package analytic_solutions

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
SteadyConvectionDiffusion is the exact solution of

	d(rho*u*phi)/dx = d/dx(Gamma dphi/dx),  phi(0) = phiA,  phi(L) = phiB

with constant coefficients:

	phi = phiA + (phiB-phiA) * (exp(Pe*x/L) - 1) / (exp(Pe) - 1),  Pe = rho*u*L/Gamma
*/
func SteadyConvectionDiffusion(X []float64, rho, u, gamma, L, phiA, phiB float64) (Phi []float64) {
	var (
		a = rho * u / gamma
	)
	Phi = make([]float64, len(X))
	for i, x := range X {
		Phi[i] = phiA + (phiB-phiA)*expRatio(a, x, L)
	}
	return
}

// expRatio is (exp(a*x)-1)/(exp(a*L)-1), rescaled by exp(-a*L) for large positive a
func expRatio(a, x, L float64) float64 {
	switch {
	case a*L == 0:
		return x / L
	case a > 0 && a*L > 30:
		return (math.Exp(a*(x-L)) - math.Exp(-a*L)) / (1 - math.Exp(-a*L))
	default:
		return math.Expm1(a*x) / math.Expm1(a*L)
	}
}

/*
TransientStep is the Ogata-Banks solution for a semi infinite domain initially
at zero with phi = 1 held at x = 0 from t = 0:

	phi = 0.5 * [ erfc((x-u*t)/(2*sqrt(D*t))) + exp(u*x/D) * erfc((x+u*t)/(2*sqrt(D*t))) ]

D = Gamma/rho. The second term is evaluated as exp(-(x-u*t)^2/(4*D*t)) * erfcx(z).
*/
func TransientStep(X []float64, t, rho, u, gamma float64) (Phi []float64) {
	var (
		D = gamma / rho
	)
	Phi = make([]float64, len(X))
	for i, x := range X {
		if t <= 0 {
			if x <= 0 {
				Phi[i] = 1
			}
			continue
		}
		var (
			s  = 2 * math.Sqrt(D*t)
			z1 = (x - u*t) / s
			z2 = (x + u*t) / s
		)
		Phi[i] = 0.5 * (math.Erfc(z1) + math.Exp(-z1*z1)*erfcx(z2))
	}
	return
}

// erfcx is the scaled complementary error function exp(z^2)*erfc(z)
func erfcx(z float64) float64 {
	if z < 25 {
		return math.Exp(z*z) * math.Erfc(z)
	}
	z2 := 1 / (z * z)
	return (1 - 0.5*z2 + 0.75*z2*z2 - 1.875*z2*z2*z2) / (z * math.SqrtPi)
}

// ErrorNorms returns the mean absolute, RMS and max norm of num - exact
func ErrorNorms(num, exact []float64) (L1, L2, LInf float64) {
	n := float64(len(num))
	if n == 0 {
		return
	}
	L1 = floats.Distance(num, exact, 1) / n
	L2 = floats.Distance(num, exact, 2) / math.Sqrt(n)
	LInf = floats.Distance(num, exact, math.Inf(1))
	return
}

// ObservedOrder returns log(e[i-1]/e[i]) / log(h[i-1]/h[i]) for each refinement i >= 1
func ObservedOrder(h, e []float64) (order []float64) {
	n := min(len(h), len(e))
	if n < 2 {
		return
	}
	order = make([]float64, n-1)
	for i := 1; i < n; i++ {
		order[i-1] = math.Log(e[i-1]/e[i]) / math.Log(h[i-1]/h[i])
	}
	return
}
