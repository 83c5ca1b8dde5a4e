package combinat

// enumerate — pruned lexicographic odometer over index tuples.
//
// Description:
//
//	Walks every index tuple of length power over the domain [0, n),
//	in lexicographic order with the most-significant position varying
//	slowest: for n=4, power=2 the order is
//	00 01 02 03 10 11 12 13 20 21 22 23 30 31 32 33.
//
// Algorithm Outline:
//  1. idxs is a length-power odometer, all digits starting at 0;
//     pos is the digit currently being chosen.
//  2. If idxs[pos] has run past n-1, reset it to 0, back up one
//     position and increment there (carry).
//  3. If keep rejects the prefix idxs[:pos+1], bump idxs[pos] — every
//     extension of a rejected prefix is rejected too, so the whole
//     subtree is skipped in one step.
//  4. If pos is the last position, the full tuple survived keep:
//     hand it to visit and bump idxs[pos].
//  5. Otherwise descend: pos++ (the digit there is already 0).
//  6. Stop when the carry runs off the left end.
//
// The tuple passed to visit is the enumerator's scratch buffer; visit
// must copy it before retaining it.
//
// Conventions:
//   - power == 0 yields exactly one empty tuple (n^0 = 1, even for n = 0).
//   - power < 0 yields nothing.
//   - n <= 0 with power > 0 yields nothing.
//
// Complexity:
//
//	Time   = O(prefixes visited) — at most O(n^power), far less under a
//	         pruning predicate
//	Memory = O(power)
func enumerate(power, n int, keep IndexPredicate, visit func(idxs []int)) {
	if power < 0 {
		return
	}
	if power == 0 {
		if keep == nil || keep(nil) {
			visit(nil)
		}

		return
	}
	if n <= 0 {
		return
	}

	idxs := make([]int, power)
	pos := 0
	for pos >= 0 {
		if idxs[pos] == n { // digit exhausted: carry left
			idxs[pos] = 0
			pos--
			if pos >= 0 {
				idxs[pos]++
			}

			continue
		}
		if keep != nil && !keep(idxs[:pos+1]) { // prune the whole subtree
			idxs[pos]++

			continue
		}
		if pos == power-1 { // complete tuple
			visit(idxs)
			idxs[pos]++

			continue
		}
		pos++ // descend; idxs[pos] is already 0
	}
}

// ProductIndices returns every index tuple of length power over the domain
// [0, n) — the full Cartesian power, n^power tuples — in lexicographic
// order, most-significant position varying slowest.
//
// power == 0 returns a single empty tuple; power < 0 returns no tuples.
// Each returned tuple has its own backing array.
func ProductIndices(power, n int) [][]int {
	out := make([][]int, 0, capHint(ProductCount(n, power)))
	enumerate(power, n, nil, func(idxs []int) {
		tuple := make([]int, len(idxs))
		copy(tuple, idxs)
		out = append(out, tuple)
	})

	return out
}

// capHint converts an expected result count into an allocation hint,
// ignoring counts too large to be worth pre-allocating in one step.
func capHint(count int64) int {
	const limit = 1 << 24
	if count < 0 || count > limit {
		return 0
	}

	return int(count)
}
