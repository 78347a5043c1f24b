package allowable

import (
	"encoding/json"
	"net/http"
)

type Input struct {
	MaterialGrade string  `json:"material_grade"`
	SpanMM        float64 `json:"span_mm"`
}

type Result struct {
	AllowableStressMPa float64 `json:"allowable_stress_mpa"`
	DeflectionLimitMM  float64 `json:"deflection_limit_mm"`
	Notes              string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	return Result{
		AllowableStressMPa: Stress(in.MaterialGrade),
		DeflectionLimitMM:  DeflectionLimit(in.SpanMM),
		Notes:              "0.6*yield working stress, span/200 deflection limit.",
	}, nil
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, _ := Calculate(input)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
