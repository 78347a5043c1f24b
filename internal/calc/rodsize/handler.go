package rodsize

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type Input struct {
	TotalWeightKg float64            `json:"total_weight_kg"`
	SelectedLabel string             `json:"selected_label"`
	Capacities    map[string]float64 `json:"capacities"`
	Rods          int                `json:"rods"`
}

type Result struct {
	Selected string `json:"selected"`
	MinSize  string `json:"min_size"`
	OK       bool   `json:"ok"`
	Notes    string `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.TotalWeightKg < 0 {
		return Result{}, fmt.Errorf("invalid weight")
	}
	if in.Rods <= 0 {
		in.Rods = 2
	}
	sel := Parse(in.SelectedLabel)
	if sel == "" {
		sel = "M10"
	}
	min := sel
	if len(in.Capacities) > 0 {
		min = Required(in.TotalWeightKg, in.Capacities, in.Rods)
	}
	si, mi := Index(sel), Index(min)
	ok := si < 0 || mi < 0 || si >= mi
	return Result{
		Selected: sel,
		MinSize:  min,
		OK:       ok,
		Notes:    "Smallest rod with sufficient allowable tension per rod.",
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
