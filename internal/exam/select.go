package exam

import "math/rand"

// Select draws a paper from the pools according to bp. Every section other
// than five-mark is sampled without replacement and silently truncated to
// the pool size. Five-mark draws are topped up from the full pool until
// bp.FiveItems() are available, then paired in draw order.
func Select(rng *rand.Rand, pools Pools, bp Blueprint) Selection {
	sel := Selection{
		Blueprint: bp,
		Choose:    Sample(rng, pools[KindChoose], bp.Choose),
		Fill:      Sample(rng, pools[KindFill], bp.Fill),
		Two:       Sample(rng, pools[KindTwo], bp.Two),
	}

	five := DrawWithTopUp(rng, pools[KindFive], bp.FiveItems())
	for i := 0; i+1 < len(five); i += 2 {
		sel.FivePairs = append(sel.FivePairs, Pair{A: five[i], B: five[i+1]})
	}

	sel.Ten = Sample(rng, pools[KindTen], bp.Ten)
	return sel
}

// Sample returns min(k, len(pool)) distinct entries of pool in random order.
func Sample(rng *rand.Rand, pool []Template, k int) []Template {
	if k > len(pool) {
		k = len(pool)
	}
	if k <= 0 {
		return nil
	}
	out := make([]Template, 0, k)
	for _, i := range rng.Perm(len(pool))[:k] {
		out = append(out, pool[i])
	}
	return out
}

// DrawWithTopUp samples need entries. When the pool is too small it keeps
// re-sampling the full pool, so each round is duplicate-free but entries
// repeat across rounds.
func DrawWithTopUp(rng *rand.Rand, pool []Template, need int) []Template {
	out := Sample(rng, pool, need)
	for len(out) < need && len(pool) > 0 {
		out = append(out, Sample(rng, pool, need-len(out))...)
	}
	return out
}
