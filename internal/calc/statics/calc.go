package statics

import (
	"math"
	"sort"

	loads "Trapeze/internal/calc/loads"
)

// Reactions returns the support reactions in N of a simply supported beam
// under the given point loads, origin at the left support. A zero span is
// degenerate and yields zero reactions rather than a division fault.
func Reactions(spanMM float64, pls []loads.PointLoad) (leftN, rightN float64) {
	if spanMM <= 0 {
		return 0, 0
	}
	for _, p := range pls {
		leftN += p.MagnitudeN * (spanMM - p.PositionMM) / spanMM
		rightN += p.MagnitudeN * p.PositionMM / spanMM
	}
	return leftN, rightN
}

// MaxMoment returns the maximum absolute bending moment in N*mm. The
// moment diagram is piecewise linear between point loads, so extrema lie at
// load positions; candidates are the span ends, every load position and the
// midpoint between consecutive candidates.
func MaxMoment(spanMM float64, pls []loads.PointLoad) float64 {
	if spanMM <= 0 || len(pls) == 0 {
		return 0
	}
	leftN, _ := Reactions(spanMM, pls)

	xs := make([]float64, 0, len(pls)+2)
	xs = append(xs, 0, spanMM)
	for _, p := range pls {
		xs = append(xs, p.PositionMM)
	}
	sort.Float64s(xs)

	max := 0.0
	consider := func(x float64) {
		if m := math.Abs(momentAt(x, leftN, pls)); m > max {
			max = m
		}
	}
	for i, x := range xs {
		consider(x)
		if i+1 < len(xs) {
			consider((x + xs[i+1]) / 2)
		}
	}
	return max
}

// momentAt evaluates M(x) = R_left*x - sum P_i*(x - a_i) over loads left of x.
func momentAt(x, leftN float64, pls []loads.PointLoad) float64 {
	m := leftN * x
	for _, p := range pls {
		if p.PositionMM <= x {
			m -= p.MagnitudeN * (x - p.PositionMM)
		}
	}
	return m
}
