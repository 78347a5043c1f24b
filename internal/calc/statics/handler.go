package statics

import (
	"encoding/json"
	"fmt"
	"net/http"

	loads "Trapeze/internal/calc/loads"
)

type Input struct {
	SpanMM float64         `json:"span_mm"`
	Loads  []loads.RawLoad `json:"loads"`
}

type Result struct {
	LeftReactionN  float64 `json:"left_reaction_n"`
	RightReactionN float64 `json:"right_reaction_n"`
	MaxMomentKNM   float64 `json:"max_moment_knm"`
	Notes          string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.SpanMM < 0 {
		return Result{}, fmt.Errorf("invalid span")
	}
	pls := loads.Normalize(in.Loads, in.SpanMM)
	left, right := Reactions(in.SpanMM, pls)
	return Result{
		LeftReactionN:  left,
		RightReactionN: right,
		MaxMomentKNM:   MaxMoment(in.SpanMM, pls) / 1e6,
		Notes:          "Simply supported beam, point load superposition.",
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
