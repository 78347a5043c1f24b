package loads

import (
	"encoding/json"
	"fmt"
)

// Gravity in m/s2, used to convert hung mass to force and back.
const Gravity = 9.81

// PointLoad is a single vertical force on the bracket beam, positioned from
// the left support. Immutable once built by Normalize or FromServices.
type PointLoad struct {
	MagnitudeN float64 `json:"magnitude_n"`
	PositionMM float64 `json:"position_mm"`
	Label      string  `json:"label"`
}

// RawLoad is one entry of a tier's load list as stored in a project
// snapshot. Two shapes are accepted: a bare number (legacy magnitude in N)
// or a record {"N":..., "x_mm":..., "label":...}. Anything else decodes to
// an invalid entry; snapshots are user-editable, so bad entries are dropped
// during normalization instead of failing the whole request.
type RawLoad struct {
	Magnitude float64
	Position  float64
	Label     string
	Numeric   bool
	Valid     bool
}

func (r *RawLoad) UnmarshalJSON(data []byte) error {
	*r = RawLoad{}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		r.Magnitude = num
		r.Numeric = true
		r.Valid = true
		return nil
	}

	var rec struct {
		N     *float64 `json:"N"`
		XMM   *float64 `json:"x_mm"`
		Label string   `json:"label"`
	}
	if err := json.Unmarshal(data, &rec); err != nil || rec.N == nil {
		return nil
	}
	r.Magnitude = *rec.N
	if rec.XMM != nil {
		r.Position = *rec.XMM
	}
	r.Label = rec.Label
	r.Valid = true
	return nil
}

// Number builds a legacy bare-magnitude entry.
func Number(n float64) RawLoad {
	return RawLoad{Magnitude: n, Numeric: true, Valid: true}
}

// Record builds a structured entry.
func Record(n, xMM float64, label string) RawLoad {
	return RawLoad{Magnitude: n, Position: xMM, Label: label, Valid: true}
}

// Normalize resolves one tier's raw load list into positioned point loads.
// A list made only of bare numbers is legacy input: the n surviving loads
// are spread over the interior of the span at span*(i+1)/(n+1), never on a
// support. Otherwise the list is structured: bare numbers are skipped,
// magnitudes <= 0 are dropped and positions are clamped into [0, span].
func Normalize(raw []RawLoad, spanMM float64) []PointLoad {
	legacy := true
	for _, r := range raw {
		if r.Valid && !r.Numeric {
			legacy = false
			break
		}
	}

	if legacy {
		var mags []float64
		for _, r := range raw {
			if r.Valid && r.Magnitude > 0 {
				mags = append(mags, r.Magnitude)
			}
		}
		return spread(mags, nil, spanMM)
	}

	var out []PointLoad
	for _, r := range raw {
		if !r.Valid || r.Numeric || r.Magnitude <= 0 {
			continue
		}
		label := r.Label
		if label == "" {
			label = fmt.Sprintf("Load %d", len(out)+1)
		}
		out = append(out, PointLoad{
			MagnitudeN: r.Magnitude,
			PositionMM: clamp(r.Position, 0, spanMM),
			Label:      label,
		})
	}
	return out
}

// ServiceItem is one routed service (pipe, duct, tray...) hanging on a tier.
type ServiceItem struct {
	ServiceType  string  `json:"service_type"`
	Tier         int     `json:"tier"`
	WeightKgPerM float64 `json:"weight_kg_per_m"`
	SpacingMM    int     `json:"spacing_mm"`
	Notes        string  `json:"notes"`
}

// FromServices converts the services routed on one tier into point loads.
// Each service carries weight_kg_per_m over the rung width; the resulting
// forces have no stated position, so they are spread like legacy loads.
func FromServices(services []ServiceItem, tier int, rungWidthMM, spanMM float64) []PointLoad {
	var mags []float64
	var labels []string
	for _, s := range services {
		if s.Tier != tier || s.WeightKgPerM <= 0 || rungWidthMM <= 0 {
			continue
		}
		mags = append(mags, s.WeightKgPerM*rungWidthMM/1000.0*Gravity)
		label := s.ServiceType
		if label == "" {
			label = "Service"
		}
		labels = append(labels, label)
	}
	return spread(mags, labels, spanMM)
}

// WeightKg is the hung mass represented by the loads, treating every
// magnitude as a static force.
func WeightKg(pls []PointLoad) float64 {
	total := 0.0
	for _, p := range pls {
		total += p.MagnitudeN
	}
	return total / Gravity
}

func spread(mags []float64, labels []string, spanMM float64) []PointLoad {
	n := len(mags)
	if n == 0 {
		return nil
	}
	out := make([]PointLoad, 0, n)
	for i, m := range mags {
		x := 0.0
		if spanMM > 0 {
			x = spanMM * float64(i+1) / float64(n+1)
		}
		label := fmt.Sprintf("Load %d", i+1)
		if labels != nil {
			label = labels[i]
		}
		out = append(out, PointLoad{MagnitudeN: m, PositionMM: x, Label: label})
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
