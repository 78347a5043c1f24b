package allowable

import "strings"

// Working-stress factor on yield. A plain placeholder rule, not a
// code-calibrated safety factor.
const workingStressFactor = 0.6

// Grade labels are free text from imported catalogs ("S355JR", "Grade 275",
// ...), matched by substring. Unrecognized labels fall back to the most
// conservative common steel grade.
var grades = []struct {
	key   string
	yield float64
}{
	{"355", 355},
	{"275", 275},
	{"235", 235},
}

const defaultYieldNmm2 = 235

// Stress maps a material grade label to an allowable bending stress in N/mm2.
func Stress(grade string) float64 {
	yield := float64(defaultYieldNmm2)
	for _, g := range grades {
		if strings.Contains(grade, g.key) {
			yield = g.yield
			break
		}
	}
	return workingStressFactor * yield
}

// DeflectionLimit returns the span/200 serviceability limit in mm, zero for
// a zero or unset span (the deflection check is skipped when the limit is 0).
func DeflectionLimit(spanMM float64) float64 {
	if spanMM <= 0 {
		return 0
	}
	return spanMM / 200.0
}
