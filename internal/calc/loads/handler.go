package loads

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type Input struct {
	SpanMM         float64       `json:"span_mm"`
	Loads          []RawLoad     `json:"loads"`
	Services       []ServiceItem `json:"services"`
	Tier           int           `json:"tier"`
	OverallWidthMM float64       `json:"overall_width_mm"`
}

type Result struct {
	Loads      []PointLoad `json:"loads"`
	TotalN     float64     `json:"total_n"`
	WeightKg   float64     `json:"weight_kg"`
	Notes      string      `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.SpanMM < 0 {
		return Result{}, fmt.Errorf("invalid span")
	}
	if in.Tier <= 0 {
		in.Tier = 1
	}
	pls := Normalize(in.Loads, in.SpanMM)
	pls = append(pls, FromServices(in.Services, in.Tier, in.OverallWidthMM, in.SpanMM)...)

	total := 0.0
	for _, p := range pls {
		total += p.MagnitudeN
	}
	return Result{
		Loads:    pls,
		TotalN:   total,
		WeightKg: WeightKg(pls),
		Notes:    "Normalized tier loads (invalid entries dropped, positions clamped).",
	}, nil
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
