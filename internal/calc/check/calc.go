package check

import (
	"fmt"
	"math"
	"strconv"

	allowable "Trapeze/internal/calc/allowable"
	deflection "Trapeze/internal/calc/deflection"
	loads "Trapeze/internal/calc/loads"
	rodsize "Trapeze/internal/calc/rodsize"
	statics "Trapeze/internal/calc/statics"
)

const (
	Pass = "PASS"
	Fail = "FAIL"
)

// Verdict categories in governing priority order: the first failing check
// is reported as governing.
var checkOrder = []string{"bending", "deflection", "rod", "anchor"}

// Imported catalogs disagree on capacity column names; the first present
// key wins, and a part without any of them simply skips the check.
var capacityKeys = []string{"tension_capacity_N", "capacity_N", "tension_N"}

// Part is one resolved catalog record, as loose key/value data.
type Part map[string]interface{}

// Float tries the candidate keys in order and returns the first numeric
// value found.
func (p Part) Float(keys ...string) (float64, bool) {
	for _, k := range keys {
		v, ok := p[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case float64:
			return t, true
		case int:
			return float64(t), true
		}
	}
	return 0, false
}

// Str tries the candidate keys in order and returns the first string value
// found.
func (p Part) Str(keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := p[k]; ok {
			if s, ok := v.(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

// Snapshot is the fully resolved in-memory project state the engine checks.
// The engine performs no I/O: whoever stores projects hands this over.
type Snapshot struct {
	SpanMM         float64                    `json:"span_mm"`
	TierCount      int                        `json:"tier_count"`
	OverallWidthMM float64                    `json:"overall_width_mm"`
	DropRodSize    string                     `json:"drop_rod_size"`
	Loads          map[string][]loads.RawLoad `json:"loads"`
	Services       []loads.ServiceItem        `json:"services"`
	ProfileID      string                     `json:"profile_id"`
	RodID          string                     `json:"rod_id"`
	WasherID       string                     `json:"washer_id"`
	AnchorID       string                     `json:"anchor_id"`
}

// Library carries the resolved catalog records for the snapshot's selected
// parts, plus the optional rod capacity ladder from an imported rod catalog.
type Library struct {
	Profile Part               `json:"profile"`
	Rod     Part               `json:"rod"`
	Washer  Part               `json:"washer"`
	Anchor  Part               `json:"anchor"`
	RodCaps map[string]float64 `json:"rod_caps"`
}

// Options tunes evaluation. SupportsPerReaction is 1 or 2 rods/anchors per
// support; the source data was ambiguous about it, so it is explicit here.
type Options struct {
	SupportsPerReaction int `json:"supports_per_reaction"`
}

type Reaction struct {
	LeftN  float64 `json:"left_n"`
	RightN float64 `json:"right_n"`
}

type LibraryUsed struct {
	Profile               string  `json:"profile"`
	Rod                   string  `json:"rod"`
	Washer                string  `json:"washer"`
	Anchor                string  `json:"anchor"`
	BearingAreaMultiplier float64 `json:"bearing_area_multiplier"`
}

// Result is the engine's sole output.
type Result struct {
	Status            string              `json:"status"`
	GoverningCheck    string              `json:"governing_check"`
	TotalWeightKg     float64             `json:"total_weight_kg"`
	PerTierWeightKg   map[string]float64  `json:"per_tier_weight_kg"`
	RodMinSize        string              `json:"rod_min_size"`
	Checks            map[string]string   `json:"checks"`
	Notes             []string            `json:"notes"`
	ReactionsN        map[string]Reaction `json:"reactions_n"`
	MaxMomentKNM      map[string]float64  `json:"max_moment_knm"`
	MaxDeflectionMM   map[string]float64  `json:"max_deflection_mm"`
	DeflectionLimitMM float64             `json:"deflection_limit_mm"`
	LibraryUsed       LibraryUsed         `json:"library_used"`
}

// material is the resolved section data with safe defaults. Missing or zero
// Ixx/Zxx fall back to 1 mm4/mm3: the math stays finite and the bending
// check fails loudly instead of passing on absent data.
type material struct {
	e, ixx, zxx float64
	grade       string
	allowN      float64
}

func resolveMaterial(profile Part) material {
	m := material{e: 200000, ixx: 1, zxx: 1}
	if v, ok := profile.Float("E_N_per_mm2", "e_n_per_mm2"); ok && v > 0 {
		m.e = v
	}
	if v, ok := profile.Float("Ixx_mm4", "ixx_mm4"); ok && v > 0 {
		m.ixx = v
	}
	if v, ok := profile.Float("Zxx_mm3", "zxx_mm3"); ok && v > 0 {
		m.zxx = v
	}
	if s, ok := profile.Str("material_grade", "grade"); ok {
		m.grade = s
	}
	if v, ok := profile.Float("allowable_stress_N_per_mm2"); ok && v > 0 {
		m.allowN = v
	}
	return m
}

// Evaluate runs every check for the snapshot against the resolved library.
// It never fails: malformed domain data degrades to conservative numbers
// and an explanatory note. Identical inputs produce identical results.
func Evaluate(s Snapshot, lib Library, opts Options) Result {
	supports := opts.SupportsPerReaction
	if supports < 1 {
		supports = 1
	}
	if supports > 2 {
		supports = 2
	}

	tiers := s.TierCount
	if tiers < 1 {
		tiers = 1
	}
	if tiers > 3 {
		tiers = 3
	}

	span := s.SpanMM
	if span < 0 {
		span = 0
	}

	mat := resolveMaterial(lib.Profile)

	res := Result{
		Status:          Pass,
		GoverningCheck:  "none",
		PerTierWeightKg: map[string]float64{},
		Checks:          map[string]string{},
		Notes:           []string{},
		ReactionsN:      map[string]Reaction{},
		MaxMomentKNM:    map[string]float64{},
		MaxDeflectionMM: map[string]float64{},
	}
	for _, c := range checkOrder {
		res.Checks[c] = Pass
	}

	var totalLeft, totalRight, totalWeight float64
	var envMoment, envDefl float64
	for t := 1; t <= tiers; t++ {
		pls := loads.Normalize(s.Loads[strconv.Itoa(t)], span)
		pls = append(pls, loads.FromServices(s.Services, t, s.OverallWidthMM, span)...)

		left, right := statics.Reactions(span, pls)
		moment := statics.MaxMoment(span, pls)
		defl := deflection.MaxDeflection(span, pls, mat.e, mat.ixx)
		weight := loads.WeightKg(pls)

		key := "tier" + strconv.Itoa(t)
		res.ReactionsN[key] = Reaction{LeftN: round1(left), RightN: round1(right)}
		res.MaxMomentKNM[key] = round3(moment / 1e6)
		res.MaxDeflectionMM[key] = round3(defl)
		res.PerTierWeightKg[strconv.Itoa(t)] = round2(weight)

		totalLeft += left
		totalRight += right
		totalWeight += weight
		// Tiers share the section but are analyzed independently: the worst
		// tier governs, reactions accumulate.
		if moment > envMoment {
			envMoment = moment
		}
		if defl > envDefl {
			envDefl = defl
		}
	}
	res.ReactionsN["total"] = Reaction{LeftN: round1(totalLeft), RightN: round1(totalRight)}
	res.MaxMomentKNM["total"] = round3(envMoment / 1e6)
	res.MaxDeflectionMM["total"] = round3(envDefl)
	res.TotalWeightKg = round2(totalWeight)

	// Bending: explicit catalog allowable wins over the grade-derived rule.
	allowN := mat.allowN
	if allowN <= 0 {
		allowN = allowable.Stress(mat.grade)
	}
	stress := envMoment / mat.zxx
	if stress > allowN {
		res.Checks["bending"] = Fail
		res.Notes = append(res.Notes,
			fmt.Sprintf("Bending: stress %.1f N/mm2 exceeds allowable %.1f N/mm2.", stress, allowN))
	}

	// Deflection: a zero limit means the span is unset and the check is
	// skipped, not failed.
	limit := allowable.DeflectionLimit(span)
	res.DeflectionLimitMM = round3(limit)
	if limit > 0 && envDefl > limit {
		res.Checks["deflection"] = Fail
		res.Notes = append(res.Notes,
			fmt.Sprintf("Deflection: %.3f mm exceeds limit %.3f mm (span/200).", envDefl, limit))
	}

	// Rod and anchor tension on the governing support. Absent capacity data
	// skips the check: missing a constraint is not evidence of violating it.
	demandN := math.Max(totalLeft, totalRight) / float64(supports)
	if capN, ok := lib.Rod.Float(capacityKeys...); ok {
		if demandN > capN {
			res.Checks["rod"] = Fail
			res.Notes = append(res.Notes,
				fmt.Sprintf("Rod: tension demand %.1f N exceeds capacity %.1f N.", demandN, capN))
		}
	}
	if capN, ok := lib.Anchor.Float(capacityKeys...); ok {
		if demandN > capN {
			res.Checks["anchor"] = Fail
			res.Notes = append(res.Notes,
				fmt.Sprintf("Anchor: tension demand %.1f N exceeds capacity %.1f N.", demandN, capN))
		}
	}

	// Advisory rod sizing ladder from imported rod capacities. The bracket
	// hangs on one rod per support, times rods-per-support.
	sel := rodsize.Parse(s.DropRodSize)
	if sel == "" {
		sel = "M10"
	}
	res.RodMinSize = sel
	if len(lib.RodCaps) > 0 {
		min := rodsize.Required(totalWeight, lib.RodCaps, 2*supports)
		res.RodMinSize = min
		if si, mi := rodsize.Index(sel), rodsize.Index(min); si >= 0 && mi >= 0 && si < mi {
			res.Notes = append(res.Notes,
				fmt.Sprintf("Selected rod %s below minimum %s from imported rod capacities.", sel, min))
		}
	}

	for _, c := range checkOrder {
		if res.Checks[c] == Fail {
			res.Status = Fail
			if res.GoverningCheck == "none" {
				res.GoverningCheck = c
			}
		}
	}

	res.LibraryUsed = LibraryUsed{
		Profile:               partID(lib.Profile, s.ProfileID, "profile_id", "id"),
		Rod:                   partID(lib.Rod, s.RodID, "rod_id", "id"),
		Washer:                partID(lib.Washer, s.WasherID, "washer_id", "id"),
		Anchor:                partID(lib.Anchor, s.AnchorID, "anchor_id", "id"),
		BearingAreaMultiplier: bearingMultiplier(lib.Washer),
	}
	return res
}

func partID(p Part, fallback string, keys ...string) string {
	if s, ok := p.Str(keys...); ok && s != "" {
		return s
	}
	return fallback
}

// Recorded for the report only; washers do not change the verdicts yet.
func bearingMultiplier(washer Part) float64 {
	if v, ok := washer.Float("bearing_area_multiplier"); ok && v > 0 {
		return v
	}
	return 1
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
