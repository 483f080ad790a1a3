package draft

// roundHalfUpDiv divides num by den rounding half up, on non-negative
// integers. Done in integer arithmetic so the result never depends on
// the platform's float rounding mode.
func roundHalfUpDiv(num, den int64) int64 {
	if den == 0 {
		return 0
	}
	return (2*num + den) / (2 * den)
}

// AllocateAdvance splits a single advance payment across partition
// subtotals proportionally, round-half-up on integer pesos. A partition
// whose subtotal equals the grand total receives the advance exactly,
// and the shares never sum to more than the advance (rounding can lose
// at most len(subtotals)-1 pesos, never gain).
func AllocateAdvance(subtotals []int64, advance int64) []int64 {
	shares := make([]int64, len(subtotals))
	if advance <= 0 {
		return shares
	}
	var total int64
	for _, s := range subtotals {
		total += s
	}
	if total <= 0 {
		return shares
	}
	remaining := advance
	for i, s := range subtotals {
		share := roundHalfUpDiv(s*advance, total)
		// Half-up can round two or more shares upward at once; capping by
		// what is left keeps the sum from ever exceeding the advance.
		if share > remaining {
			share = remaining
		}
		shares[i] = share
		remaining -= share
	}
	return shares
}
