package batch

import (
	"fmt"

	check "Trapeze/internal/calc/check"
)

type CheckBatchInput struct {
	Items []check.Request `json:"items"`
}

type CheckBatchResult struct {
	Results []check.Result `json:"results"`
}

// CalculateCheck evaluates every snapshot in the batch. Individual items
// never fail (the engine degrades instead), so the only error is an empty
// batch.
func CalculateCheck(in CheckBatchInput) (CheckBatchResult, error) {
	if len(in.Items) == 0 {
		return CheckBatchResult{}, fmt.Errorf("no items")
	}
	out := CheckBatchResult{Results: make([]check.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		out.Results = append(out.Results, check.Evaluate(item.Snapshot, item.Library, item.Options))
	}
	return out, nil
}
