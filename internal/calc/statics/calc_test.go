package statics

import (
	"math"
	"testing"

	loads "Trapeze/internal/calc/loads"
)

func almost(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestReactionsSumToAppliedLoad(t *testing.T) {
	cases := []struct {
		name string
		span float64
		pls  []loads.PointLoad
	}{
		{"single central", 2000, []loads.PointLoad{{MagnitudeN: 5000, PositionMM: 1000}}},
		{"off-center", 2000, []loads.PointLoad{{MagnitudeN: 1000, PositionMM: 500}}},
		{"three loads", 3600, []loads.PointLoad{
			{MagnitudeN: 800, PositionMM: 300},
			{MagnitudeN: 1200, PositionMM: 1800},
			{MagnitudeN: 400, PositionMM: 3599},
		}},
		{"load on support", 1000, []loads.PointLoad{{MagnitudeN: 650, PositionMM: 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			left, right := Reactions(tc.span, tc.pls)
			sum := 0.0
			for _, p := range tc.pls {
				sum += p.MagnitudeN
			}
			if !almost(left+right, sum, 1e-6) {
				t.Errorf("left+right = %v, want %v", left+right, sum)
			}
		})
	}
}

func TestCentralPointLoadMoment(t *testing.T) {
	// Closed form for a central point load: M = P*L/4.
	const P, L = 5000.0, 2000.0
	got := MaxMoment(L, []loads.PointLoad{{MagnitudeN: P, PositionMM: L / 2}})
	if want := P * L / 4; !almost(got, want, 1e-6) {
		t.Errorf("MaxMoment = %v, want %v", got, want)
	}
}

func TestOffCenterMomentMatchesLeverRule(t *testing.T) {
	// M under the load = P*a*b/L.
	const P, L, a = 1000.0, 2000.0, 500.0
	got := MaxMoment(L, []loads.PointLoad{{MagnitudeN: P, PositionMM: a}})
	if want := P * a * (L - a) / L; !almost(got, want, 1e-6) {
		t.Errorf("MaxMoment = %v, want %v", got, want)
	}
}

func TestWorkedExample(t *testing.T) {
	in := Input{
		SpanMM: 2000,
		Loads:  []loads.RawLoad{loads.Record(5000, 1000, "")},
	}
	res, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	if !almost(res.LeftReactionN, 2500, 1e-6) || !almost(res.RightReactionN, 2500, 1e-6) {
		t.Errorf("reactions = %v/%v, want 2500/2500", res.LeftReactionN, res.RightReactionN)
	}
	if !almost(res.MaxMomentKNM, 2.5, 1e-9) {
		t.Errorf("moment = %v kNm, want 2.5", res.MaxMomentKNM)
	}
}

func TestDegenerateInputsAreSafe(t *testing.T) {
	if l, r := Reactions(0, []loads.PointLoad{{MagnitudeN: 100, PositionMM: 0}}); l != 0 || r != 0 {
		t.Errorf("zero span reactions = %v/%v", l, r)
	}
	if m := MaxMoment(0, []loads.PointLoad{{MagnitudeN: 100}}); m != 0 {
		t.Errorf("zero span moment = %v", m)
	}
	if m := MaxMoment(1000, nil); m != 0 {
		t.Errorf("no loads moment = %v", m)
	}
}

func TestMomentMonotonicInMagnitude(t *testing.T) {
	span := 2400.0
	base := []loads.PointLoad{
		{MagnitudeN: 500, PositionMM: 600},
		{MagnitudeN: 900, PositionMM: 1700},
	}
	before := MaxMoment(span, base)
	bigger := []loads.PointLoad{
		{MagnitudeN: 800, PositionMM: 600},
		{MagnitudeN: 900, PositionMM: 1700},
	}
	after := MaxMoment(span, bigger)
	if after < before {
		t.Errorf("moment decreased from %v to %v after increasing a load", before, after)
	}
}
