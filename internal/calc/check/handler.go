package check

import (
	"encoding/json"
	"net/http"
)

type Request struct {
	Snapshot Snapshot `json:"snapshot"`
	Library  Library  `json:"library"`
	Options  Options  `json:"options"`
}

type Handler struct {
	// DefaultSupports is used when a request leaves supports_per_reaction
	// unset. Wired from SUPPORTS_PER_REACTION at startup.
	DefaultSupports int
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Options.SupportsPerReaction == 0 {
		req.Options.SupportsPerReaction = h.DefaultSupports
	}
	res := Evaluate(req.Snapshot, req.Library, req.Options)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
