package deflection

import (
	"math"

	loads "Trapeze/internal/calc/loads"
)

// MaxDeflection returns the maximum absolute deflection in mm of a simply
// supported beam. Each point load contributes its closed-form Euler-Bernoulli
// curve and the contributions superpose; the span is sampled at a fixed step
// of clamp(L/120, 10, 50) mm from 0 to L inclusive. Degenerate inputs
// (span, E or Ixx <= 0) yield 0 so missing section data surfaces as a
// bending failure upstream, not a deflection one.
func MaxDeflection(spanMM float64, pls []loads.PointLoad, eNmm2, ixxMM4 float64) float64 {
	L := spanMM
	if L <= 0 || eNmm2 <= 0 || ixxMM4 <= 0 || len(pls) == 0 {
		return 0
	}

	step := L / 120.0
	if step < 10 {
		step = 10
	}
	if step > 50 {
		step = 50
	}

	max := 0.0
	n := int(math.Ceil(L / step))
	for i := 0; i <= n; i++ {
		x := math.Min(float64(i)*step, L)
		if d := math.Abs(at(x, L, pls, eNmm2, ixxMM4)); d > max {
			max = d
		}
	}
	return max
}

// at sums delta(x) = P*b*x*(L^2 - b^2 - x^2) / (6*L*E*I) over all loads,
// mirroring the formula for points right of the load.
func at(x, L float64, pls []loads.PointLoad, e, ixx float64) float64 {
	total := 0.0
	for _, p := range pls {
		a := p.PositionMM
		b := L - a
		xi := x
		if x > a {
			xi = L - x
			a, b = b, a
		}
		total += p.MagnitudeN * b * xi * (L*L - b*b - xi*xi) / (6 * L * e * ixx)
	}
	return total
}
