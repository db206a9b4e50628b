package gen

import (
	"context"
	"fmt"
	"iter"
	"math/rand/v2"

	"housie90.app/gen/internal"
	"housie90.app/gen/pkg/primitives"
)

// StripSize is the number of tickets forming one card.
const StripSize = 6

// MaxStrips caps a single GenerateCards request.
const MaxStrips = 60

// Generator produces Housie tickets from an injected random source.
//
// A Generator is not safe for concurrent use; give each request its own,
// seeded from the process-wide rand/v2 source.
type Generator struct {
	rand *rand.Rand
}

func CreateGenerator(rng *rand.Rand) *Generator {
	return &Generator{rand: rng}
}

// GenerateTicket builds one ticket from fresh column pools: plan the
// layout, then fill each column's occupied cells with an ascending draw
// from its range.
func (g *Generator) GenerateTicket() Ticket {
	pools := primitives.NewPools(g.rand)
	layout := internal.ResolveLayout(g.rand)

	var cells [primitives.NumRows][primitives.NumColumns]int
	for c := range primitives.NumColumns {
		nums, err := pools[c].TakeSorted(layout.Counts[c])
		if err != nil {
			// A column never needs more than 3 of at least 9 numbers.
			panic(fmt.Sprintf("draw for column %d: %v", c, err))
		}
		i := 0
		for r := range primitives.NumRows {
			if layout.Cells[r][c] {
				cells[r][c] = nums[i]
				i++
			}
		}
	}
	return NewTicket(cells)
}

// GenerateStrip returns the 6 tickets of one card. Each ticket draws from
// its own full-range pools; a strip does not partition 1..90 across its
// tickets.
func (g *Generator) GenerateStrip() []Ticket {
	tickets := make([]Ticket, StripSize)
	for i := range tickets {
		tickets[i] = g.GenerateTicket()
	}
	return tickets
}

// GenerateCards returns count strips of 6 tickets each. Out-of-range
// counts are clamped to [1, MaxStrips], never rejected.
func (g *Generator) GenerateCards(count int) []Ticket {
	count = min(max(count, 1), MaxStrips)
	tickets := make([]Ticket, 0, count*StripSize)
	for range count {
		tickets = append(tickets, g.GenerateStrip()...)
	}
	return tickets
}

// Tickets streams tickets until the consumer stops or ctx is cancelled.
func (g *Generator) Tickets(ctx context.Context) iter.Seq[Ticket] {
	return func(yield func(Ticket) bool) {
		for ctx.Err() == nil {
			if !yield(g.GenerateTicket()) {
				return
			}
		}
	}
}
