package deflection

import (
	"encoding/json"
	"fmt"
	"net/http"

	allowable "Trapeze/internal/calc/allowable"
	loads "Trapeze/internal/calc/loads"
)

type Input struct {
	SpanMM  float64         `json:"span_mm"`
	Loads   []loads.RawLoad `json:"loads"`
	ENmm2   float64         `json:"e_n_per_mm2"`
	IxxMM4  float64         `json:"ixx_mm4"`
}

type Result struct {
	DeflectionMM      float64 `json:"deflection_mm"`
	DeflectionLimitMM float64 `json:"deflection_limit_mm"`
	OK                bool    `json:"ok"`
	Notes             string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.SpanMM < 0 {
		return Result{}, fmt.Errorf("invalid span")
	}
	if in.ENmm2 <= 0 {
		in.ENmm2 = 200000
	}
	pls := loads.Normalize(in.Loads, in.SpanMM)
	defl := MaxDeflection(in.SpanMM, pls, in.ENmm2, in.IxxMM4)
	limit := allowable.DeflectionLimit(in.SpanMM)
	return Result{
		DeflectionMM:      defl,
		DeflectionLimitMM: limit,
		OK:                limit <= 0 || defl <= limit,
		Notes:             "Point load superposition, sampled along the span.",
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
