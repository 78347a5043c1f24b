package deflection

import (
	"math"
	"testing"

	loads "Trapeze/internal/calc/loads"
)

const (
	testE   = 200000.0
	testIxx = 4e6
)

func TestCentralPointLoadClosedForm(t *testing.T) {
	// delta = P*L^3 / (48*E*I) at mid-span.
	const P, L = 5000.0, 2000.0
	got := MaxDeflection(L, []loads.PointLoad{{MagnitudeN: P, PositionMM: L / 2}}, testE, testIxx)
	want := P * L * L * L / (48 * testE * testIxx)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("MaxDeflection = %v, want %v", got, want)
	}
}

func TestOffCenterLoadNearClosedForm(t *testing.T) {
	// Max deflection of an off-center load sits at x = sqrt((L^2-b^2)/3);
	// the fixed sampling step lands close enough to the true extremum.
	const P, L, a = 1000.0, 2400.0, 1600.0
	b := L - a
	got := MaxDeflection(L, []loads.PointLoad{{MagnitudeN: P, PositionMM: a}}, testE, testIxx)
	want := P * b * math.Pow(L*L-b*b, 1.5) / (9 * math.Sqrt(3) * L * testE * testIxx)
	if got > want || math.Abs(got-want)/want > 0.01 {
		t.Errorf("MaxDeflection = %v, want within 1%% below %v", got, want)
	}
}

func TestSuperposition(t *testing.T) {
	const L = 2000.0
	one := MaxDeflection(L, []loads.PointLoad{{MagnitudeN: 1000, PositionMM: 1000}}, testE, testIxx)
	two := MaxDeflection(L, []loads.PointLoad{
		{MagnitudeN: 1000, PositionMM: 1000},
		{MagnitudeN: 1000, PositionMM: 1000},
	}, testE, testIxx)
	if math.Abs(two-2*one) > 1e-9 {
		t.Errorf("two equal colocated loads should double deflection: %v vs %v", two, 2*one)
	}
}

func TestDegenerateInputsYieldZero(t *testing.T) {
	pls := []loads.PointLoad{{MagnitudeN: 1000, PositionMM: 500}}
	cases := []struct {
		name       string
		span, e, i float64
	}{
		{"zero span", 0, testE, testIxx},
		{"zero E", 1000, 0, testIxx},
		{"zero Ixx", 1000, testE, 0},
		{"negative Ixx", 1000, testE, -5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MaxDeflection(tc.span, pls, tc.e, tc.i); got != 0 {
				t.Errorf("MaxDeflection = %v, want 0", got)
			}
		})
	}
}

func TestMonotonicInMagnitude(t *testing.T) {
	const L = 1800.0
	small := MaxDeflection(L, []loads.PointLoad{{MagnitudeN: 400, PositionMM: 700}}, testE, testIxx)
	large := MaxDeflection(L, []loads.PointLoad{{MagnitudeN: 600, PositionMM: 700}}, testE, testIxx)
	if large < small {
		t.Errorf("deflection decreased from %v to %v after increasing the load", small, large)
	}
}

func TestCalculateAppliesDefaults(t *testing.T) {
	res, err := Calculate(Input{
		SpanMM: 2000,
		Loads:  []loads.RawLoad{loads.Record(5000, 1000, "")},
		IxxMM4: testIxx,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := 5000.0 * 2000 * 2000 * 2000 / (48 * 200000 * testIxx)
	if math.Abs(res.DeflectionMM-want) > 1e-9 {
		t.Errorf("DeflectionMM = %v, want %v (default E applied)", res.DeflectionMM, want)
	}
	if res.DeflectionLimitMM != 10 {
		t.Errorf("limit = %v, want 10", res.DeflectionLimitMM)
	}
	if !res.OK {
		t.Error("expected OK for ~1 mm against a 10 mm limit")
	}
}
