package services

import "context"

// ItemResult is the outcome of one bulk action item.
type ItemResult struct {
	ID  int64
	Err error
}

// OK reports whether the item succeeded.
func (r ItemResult) OK() bool { return r.Err == nil }

// BatchResult collects per-item outcomes of a bulk action. A mixed result is
// data, not an error: one item's failure never rolls back the others.
type BatchResult struct {
	Results   []ItemResult
	Succeeded int
	Failed    int
}

// PartialFailure reports whether the batch had both successes and failures.
func (r BatchResult) PartialFailure() bool {
	return r.Failed > 0 && r.Succeeded > 0
}

// runBatch applies the action to each ID sequentially, one call at a time.
// Sequential execution bounds the outbound call rate and keeps result
// ordering deterministic.
func runBatch(ctx context.Context, ids []int64, apply func(context.Context, int64) error) BatchResult {
	res := BatchResult{Results: make([]ItemResult, 0, len(ids))}
	for _, id := range ids {
		err := apply(ctx, id)
		res.Results = append(res.Results, ItemResult{ID: id, Err: err})
		if err != nil {
			res.Failed++
		} else {
			res.Succeeded++
		}
	}
	return res
}
