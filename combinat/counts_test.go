package combinat_test

import (
	"testing"

	"github.com/katalvlaran/combi/combinat"
	"github.com/stretchr/testify/assert"
)

// TestProductCount checks n^power including the 0^0 convention.
func TestProductCount(t *testing.T) {
	assert.EqualValues(t, 1, combinat.ProductCount(0, 0), "0^0 counts the empty tuple")
	assert.EqualValues(t, 1, combinat.ProductCount(7, 0))
	assert.EqualValues(t, 0, combinat.ProductCount(0, 3))
	assert.EqualValues(t, 0, combinat.ProductCount(5, -1))
	assert.EqualValues(t, 16, combinat.ProductCount(4, 2))
	assert.EqualValues(t, 1024, combinat.ProductCount(2, 10))
}

// TestPermutationCount checks n!/(n-power)! and the power > n cutoff.
func TestPermutationCount(t *testing.T) {
	assert.EqualValues(t, 12, combinat.PermutationCount(4, 2))
	assert.EqualValues(t, 24, combinat.PermutationCount(4, 4))
	assert.EqualValues(t, 1, combinat.PermutationCount(4, 0))
	assert.EqualValues(t, 0, combinat.PermutationCount(4, 5), "power > n has no permutations")
	assert.EqualValues(t, 0, combinat.PermutationCount(3, -1))
}

// TestCombinationCount checks C(n, power).
func TestCombinationCount(t *testing.T) {
	assert.EqualValues(t, 6, combinat.CombinationCount(4, 2))
	assert.EqualValues(t, 1, combinat.CombinationCount(4, 0))
	assert.EqualValues(t, 1, combinat.CombinationCount(4, 4))
	assert.EqualValues(t, 0, combinat.CombinationCount(4, 5))
	assert.EqualValues(t, 252, combinat.CombinationCount(10, 5))
}

// TestCombinationWithReplacementCount checks C(n+power-1, power).
func TestCombinationWithReplacementCount(t *testing.T) {
	assert.EqualValues(t, 10, combinat.CombinationWithReplacementCount(4, 2))
	assert.EqualValues(t, 1, combinat.CombinationWithReplacementCount(4, 0))
	assert.EqualValues(t, 1, combinat.CombinationWithReplacementCount(0, 0))
	assert.EqualValues(t, 0, combinat.CombinationWithReplacementCount(0, 2))
	assert.EqualValues(t, 20, combinat.CombinationWithReplacementCount(4, 3))
}

// TestCounts_SaturateAtMaxInt64 verifies astronomically large counts clamp
// instead of wrapping.
func TestCounts_SaturateAtMaxInt64(t *testing.T) {
	const maxInt64 = int64(^uint64(0) >> 1)

	assert.Equal(t, maxInt64, combinat.ProductCount(1000, 50), "10^150 must saturate")
	assert.Equal(t, maxInt64, combinat.PermutationCount(100, 100), "100! must saturate")
}
