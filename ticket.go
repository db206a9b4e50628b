package gen

import (
	"encoding/json"
	"fmt"
	"strings"

	"housie90.app/gen/pkg/primitives"
)

// Ticket is a 3x9 Housie grid. A cell holds either a number from the
// column's fixed range or 0 for a blank; each row carries exactly 5
// numbers and each column between 1 and 3, ascending top to bottom.
type Ticket struct {
	cells [primitives.NumRows][primitives.NumColumns]int
}

func NewTicket(cells [primitives.NumRows][primitives.NumColumns]int) Ticket {
	return Ticket{
		cells: cells,
	}
}

func (t Ticket) Rows() int {
	return primitives.NumRows
}

func (t Ticket) Columns() int {
	return primitives.NumColumns
}

// Get returns the number at (row, col), 0 for a blank cell.
func (t Ticket) Get(row, col int) int {
	return t.cells[row][col]
}

// Repr renders the ticket as a text grid, blanks as "--".
func (t Ticket) Repr() string {
	lines := make([]string, t.Rows())
	for r := range t.Rows() {
		parts := make([]string, t.Columns())
		for c := range t.Columns() {
			if t.cells[r][c] == 0 {
				parts[c] = "--"
			} else {
				parts[c] = fmt.Sprintf("%2d", t.cells[r][c])
			}
		}
		lines[r] = strings.Join(parts, " ")
	}
	return strings.Join(lines, "\n")
}

func (t Ticket) DebugString() string {
	return fmt.Sprintf("Ticket{rows: %d, columns: %d, cells: %v}", t.Rows(), t.Columns(), t.cells)
}

// MarshalJSON encodes the ticket as a bare array of three 9-element rows,
// the wire shape existing consumers expect.
func (t Ticket) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.cells)
}
