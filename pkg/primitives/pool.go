package primitives

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// Grid dimensions shared by the layout planner and the generator.
const (
	NumRows    = 3
	NumColumns = 9

	// RowNumbers is the number of non-blank cells in every row.
	RowNumbers = 5

	// TicketNumbers is the number of non-blank cells in a whole ticket.
	TicketNumbers = NumRows * RowNumbers

	// MaxNumber is the largest number that can appear on a ticket.
	MaxNumber = 90
)

// ErrExhausted is returned when a draw asks for more numbers than a pool holds.
var ErrExhausted = errors.New("column pool exhausted")

// columnStarts[c] is the smallest number belonging to column c. Column c
// covers [columnStarts[c], columnStarts[c+1]-1]; the sentinel closes the
// last range at 90.
var columnStarts = [NumColumns + 1]int{1, 10, 20, 30, 40, 50, 60, 70, 80, 91}

// ColumnRange returns the inclusive bounds of the numbers belonging to
// column c.
//
// The nine ranges partition 1..90: [1-9], [10-19], ..., [70-79], [80-90].
func ColumnRange(c int) (lo, hi int) {
	return columnStarts[c], columnStarts[c+1] - 1
}

// Pool hands out the numbers of a single column range in random order,
// without replacement.
type Pool struct {
	remaining []int
}

// NewPool returns a pool holding a random permutation of column c's range.
func NewPool(c int, rng *rand.Rand) *Pool {
	lo, hi := ColumnRange(c)
	values := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		values = append(values, v)
	}
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	return &Pool{remaining: values}
}

// NewPools returns one fresh pool per column. Each ticket gets its own set;
// pools are never shared between tickets.
func NewPools(rng *rand.Rand) [NumColumns]*Pool {
	var pools [NumColumns]*Pool
	for c := range pools {
		pools[c] = NewPool(c, rng)
	}
	return pools
}

// Remaining returns the number of values still available in the pool.
func (p *Pool) Remaining() int {
	return len(p.remaining)
}

// Take draws k distinct values from the pool, removing them.
func (p *Pool) Take(k int) ([]int, error) {
	if k > len(p.remaining) {
		return nil, fmt.Errorf("take %d of %d: %w", k, len(p.remaining), ErrExhausted)
	}
	taken := p.remaining[len(p.remaining)-k:]
	p.remaining = p.remaining[:len(p.remaining)-k]
	return taken, nil
}

// TakeSorted draws k distinct values and returns them in ascending order,
// ready to be written top-to-bottom into a column.
func (p *Pool) TakeSorted(k int) ([]int, error) {
	taken, err := p.Take(k)
	if err != nil {
		return nil, err
	}
	slices.Sort(taken)
	return taken, nil
}
