package assist

import "math"

// Weighted Damerau–Levenshtein with caching.
func (e *Engine) weightedDL(a, b string) float64 {
	key := a + "\u0000" + b
	if v, ok := e.distCache.Load(key); ok {
		return v.(float64)
	}
	// fast path for a single adjacent swap
	if isOneAdjacentSwap(a, b) {
		cost := e.opts.TransposeCost
		e.distCache.Store(key, cost)
		return cost
	}
	insBase, delBase := e.opts.NeighborInsDel, e.opts.NeighborInsDel
	ra := []rune(a)
	rb := []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return float64(lb) * insBase
	}
	if lb == 0 {
		return float64(la) * delBase
	}
	// two sliding DP rows
	prev := make([]float64, lb+1)
	curr := make([]float64, lb+1)
	for j := 1; j <= lb; j++ {
		prev[j] = float64(j) * insBase
	}
	for i := 1; i <= la; i++ {
		curr[0] = float64(i) * delBase
		for j := 1; j <= lb; j++ {
			var sub float64
			if ra[i-1] == rb[j-1] {
				sub = 0
			} else {
				sub = e.substitutionCost(ra[i-1], rb[j-1])
			}
			best := minf(
				prev[j]+delBase,
				minf(curr[j-1]+insBase, prev[j-1]+sub),
			)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				best = math.Min(best, prev[j-2]+e.opts.TransposeCost)
			}
			curr[j] = best
		}
		copy(prev, curr)
	}
	res := prev[lb]
	e.distCache.Store(key, res)
	return res
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
