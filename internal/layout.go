package internal

import (
	"math/rand/v2"
	"slices"

	"housie90.app/gen/pkg/primitives"
)

// Layout is an accepted placement plan for one ticket: how many numbers
// each column holds and which cells they occupy.
type Layout struct {
	// Counts[c] is the number of cells filled in column c, always in [1,3].
	Counts [primitives.NumColumns]int

	// Cells[r][c] reports whether row r holds a number in column c.
	Cells [primitives.NumRows][primitives.NumColumns]bool
}

// planAttempts bounds the balanced planner's retry loop before the
// guaranteed fallback takes over.
const planAttempts = 40

// ResolveLayout produces a valid layout: every row holds exactly 5 numbers,
// every column between 1 and 3, and column occupancy matches Counts. The
// balanced planner gets a bounded number of attempts; if they all dead-end,
// the simpler fallback assignment takes over.
func ResolveLayout(rng *rand.Rand) Layout {
	for range planAttempts {
		if l, ok := planBalanced(rng); ok {
			return l
		}
	}
	return planFallback(rng)
}

// balancedCounts spreads the 15 numbers so that each third of the grid
// (columns 0-2, 3-5, 6-8) carries exactly 5: two thirds split (3,1,1),
// one third splits (2,2,1). Which thirds and which columns is random.
func balancedCounts(rng *rand.Rand) [primitives.NumColumns]int {
	counts := [primitives.NumColumns]int{1, 1, 1, 1, 1, 1, 1, 1, 1}

	thirds := []int{0, 1, 2}
	rng.Shuffle(len(thirds), func(i, j int) {
		thirds[i], thirds[j] = thirds[j], thirds[i]
	})

	// The first two shuffled thirds take the (3,1,1) split.
	for _, b := range thirds[:2] {
		counts[3*b+rng.IntN(3)] += 2
	}

	b := thirds[2]
	first := rng.IntN(3)
	second := (first + 1 + rng.IntN(2)) % 3
	counts[3*b+first]++
	counts[3*b+second]++

	return counts
}

// planBalanced attempts one full occupancy assignment for balanced counts.
// Columns are processed most constrained first; a column that cannot place
// all of its cells aborts the attempt.
func planBalanced(rng *rand.Rand) (Layout, bool) {
	l := Layout{Counts: balancedCounts(rng)}

	var rowUsed [primitives.NumRows]int

	// inThird[b][r] reports whether row r already holds a number in third b.
	var inThird [3][primitives.NumRows]bool

	for _, c := range columnOrder(l.Counts) {
		b := c / 3
		if l.Counts[c] == primitives.NumRows {
			for r := range primitives.NumRows {
				l.Cells[r][c] = true
				rowUsed[r]++
				inThird[b][r] = true
			}
			continue
		}
		for range l.Counts[c] {
			r, ok := pickRow(rng, &l, c, rowUsed, inThird[b])
			if !ok {
				return Layout{}, false
			}
			l.Cells[r][c] = true
			rowUsed[r]++
			inThird[b][r] = true
		}
	}

	// Repair: top up rows still short of 5 from random columns whose
	// occupancy is below their count.
	for r := range primitives.NumRows {
		for rowUsed[r] < primitives.RowNumbers {
			var candidates []int
			for c := range primitives.NumColumns {
				if !l.Cells[r][c] && l.columnFill(c) < l.Counts[c] {
					candidates = append(candidates, c)
				}
			}
			if len(candidates) == 0 {
				return Layout{}, false
			}
			c := candidates[rng.IntN(len(candidates))]
			l.Cells[r][c] = true
			rowUsed[r]++
		}
	}

	return l, l.valid()
}

// pickRow selects the least-used free row for column c, preferring rows not
// yet represented in the column's third of the grid, random among equals.
// Only rows with capacity left qualify.
func pickRow(rng *rand.Rand, l *Layout, c int, rowUsed [primitives.NumRows]int, represented [primitives.NumRows]bool) (int, bool) {
	rows := []int{0, 1, 2}
	rng.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})
	slices.SortStableFunc(rows, func(a, b int) int {
		if d := rowUsed[a] - rowUsed[b]; d != 0 {
			return d
		}
		return boolInt(represented[a]) - boolInt(represented[b])
	})

	for _, r := range rows {
		if !l.Cells[r][c] && rowUsed[r] < primitives.RowNumbers {
			return r, true
		}
	}
	return 0, false
}

// planFallback is the guaranteed assignment used when the balanced planner
// runs out of attempts: uniform random column increments for the counts,
// then each column's cells go to the rows with the most remaining need.
// Most-need-first can never strand a row below 5, so a single pass
// suffices; the validation gate is kept as a backstop.
func planFallback(rng *rand.Rand) Layout {
	for {
		l := Layout{Counts: uniformCounts(rng)}

		var need [primitives.NumRows]int
		for r := range need {
			need[r] = primitives.RowNumbers
		}

		for _, c := range columnOrder(l.Counts) {
			for range l.Counts[c] {
				r := neediestFreeRow(rng, &l, c, need)
				l.Cells[r][c] = true
				need[r]--
			}
		}

		if l.valid() {
			return l
		}
	}
}

// uniformCounts distributes the 6 extra numbers by uniform random column
// increments, rejecting increments that would push a column past 3.
func uniformCounts(rng *rand.Rand) [primitives.NumColumns]int {
	counts := [primitives.NumColumns]int{1, 1, 1, 1, 1, 1, 1, 1, 1}
	extras := primitives.TicketNumbers - primitives.NumColumns
	for extras > 0 {
		c := rng.IntN(primitives.NumColumns)
		if counts[c] < primitives.NumRows {
			counts[c]++
			extras--
		}
	}
	return counts
}

// neediestFreeRow returns the free row of column c with the most numbers
// still to place, random among equals.
func neediestFreeRow(rng *rand.Rand, l *Layout, c int, need [primitives.NumRows]int) int {
	rows := []int{0, 1, 2}
	rng.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})
	slices.SortStableFunc(rows, func(a, b int) int {
		return need[b] - need[a]
	})

	for _, r := range rows {
		if !l.Cells[r][c] {
			return r
		}
	}
	// A column never holds more than NumRows cells.
	return rows[0]
}

// columnOrder returns column indices in descending count order, ties by
// index, so the most constrained columns are placed first.
func columnOrder(counts [primitives.NumColumns]int) [primitives.NumColumns]int {
	var order [primitives.NumColumns]int
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order[:], func(a, b int) int {
		return counts[b] - counts[a]
	})
	return order
}

func (l *Layout) columnFill(c int) int {
	n := 0
	for r := range primitives.NumRows {
		if l.Cells[r][c] {
			n++
		}
	}
	return n
}

// valid checks every structural invariant of an accepted layout.
func (l *Layout) valid() bool {
	total := 0
	for c := range primitives.NumColumns {
		if l.Counts[c] < 1 || l.Counts[c] > primitives.NumRows {
			return false
		}
		if l.columnFill(c) != l.Counts[c] {
			return false
		}
		total += l.Counts[c]
	}
	if total != primitives.TicketNumbers {
		return false
	}

	for r := range primitives.NumRows {
		n := 0
		for c := range primitives.NumColumns {
			if l.Cells[r][c] {
				n++
			}
		}
		if n != primitives.RowNumbers {
			return false
		}
	}
	return true
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
