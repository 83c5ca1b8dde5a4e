package combinat

import (
	"math"
	"math/big"
)

// The count helpers compute result sizes exactly, without enumerating.
// They exist so callers can check feasibility before paying for an
// enumeration; the enumeration functions themselves never guard.
// Counts beyond the int64 range saturate at math.MaxInt64.

// ProductCount returns |Product(power, xs)| for len(xs) == n: n^power.
func ProductCount(n, power int) int64 {
	if power < 0 {
		return 0
	}
	if power == 0 {
		return 1
	}
	if n <= 0 {
		return 0
	}

	total := big.NewInt(1)
	base := big.NewInt(int64(n))
	for i := 0; i < power; i++ {
		total.Mul(total, base)
	}

	return clampInt64(total)
}

// PermutationCount returns |Permutations(power, xs)| for len(xs) == n:
// n! / (n-power)!, or 0 when power > n.
func PermutationCount(n, power int) int64 {
	if power < 0 || power > n {
		return 0
	}

	total := big.NewInt(1)
	for i := n - power + 1; i <= n; i++ {
		total.Mul(total, big.NewInt(int64(i)))
	}

	return clampInt64(total)
}

// CombinationCount returns |Combinations(power, xs)| for len(xs) == n:
// the binomial coefficient C(n, power), or 0 when power > n.
func CombinationCount(n, power int) int64 {
	if power < 0 || power > n || n < 0 {
		return 0
	}

	return clampInt64(new(big.Int).Binomial(int64(n), int64(power)))
}

// CombinationWithReplacementCount returns
// |CombinationsWithReplacement(power, xs)| for len(xs) == n:
// C(n+power-1, power). power == 0 counts the single empty tuple.
func CombinationWithReplacementCount(n, power int) int64 {
	if power < 0 || n < 0 {
		return 0
	}
	if power == 0 {
		return 1
	}
	if n == 0 {
		return 0
	}

	return clampInt64(new(big.Int).Binomial(int64(n+power-1), int64(power)))
}

func clampInt64(v *big.Int) int64 {
	if !v.IsInt64() {
		return math.MaxInt64
	}

	return v.Int64()
}
