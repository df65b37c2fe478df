package worker

import "sort"

// InOrder calls fn for each result in Index order, holding back results
// that complete early. Indexes must be 0, 1, 2, ... without gaps; results
// after a missing index are delivered when the channel closes.
func InOrder(results <-chan ProcessResult, fn func(ProcessResult)) {
	pending := make(map[int]ProcessResult)
	next := 0
	for r := range results {
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			fn(ready)
			next++
		}
	}

	if len(pending) == 0 {
		return
	}
	rest := make([]int, 0, len(pending))
	for i := range pending {
		rest = append(rest, i)
	}
	sort.Ints(rest)
	for _, i := range rest {
		fn(pending[i])
	}
}

