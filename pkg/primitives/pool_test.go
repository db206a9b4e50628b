package primitives

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestColumnRange_Partition(t *testing.T) {
	seen := make(map[int]int)
	for c := range NumColumns {
		lo, hi := ColumnRange(c)
		if lo > hi {
			t.Fatalf("column %d has empty range [%d,%d]", c, lo, hi)
		}
		for v := lo; v <= hi; v++ {
			seen[v]++
		}
	}

	for v := 1; v <= MaxNumber; v++ {
		if seen[v] != 1 {
			t.Errorf("number %d covered %d times, want exactly once", v, seen[v])
		}
	}
	if len(seen) != MaxNumber {
		t.Errorf("ranges cover %d numbers, want %d", len(seen), MaxNumber)
	}
}

func TestColumnRange_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		column int
		lo, hi int
	}{
		{"first column", 0, 1, 9},
		{"second column", 1, 10, 19},
		{"middle column", 4, 40, 49},
		{"last column", 8, 80, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := ColumnRange(tt.column)
			if lo != tt.lo || hi != tt.hi {
				t.Errorf("ColumnRange(%d) = [%d,%d], want [%d,%d]", tt.column, lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestNewPool_Permutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1024))
	for c := range NumColumns {
		pool := NewPool(c, rng)
		lo, hi := ColumnRange(c)

		drawn, err := pool.Take(pool.Remaining())
		if err != nil {
			t.Fatalf("column %d: %v", c, err)
		}
		slices.Sort(drawn)

		want := make([]int, 0, hi-lo+1)
		for v := lo; v <= hi; v++ {
			want = append(want, v)
		}
		if !slices.Equal(drawn, want) {
			t.Errorf("column %d pool holds %v, want a permutation of %v", c, drawn, want)
		}
	}
}

func TestPool_Take(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	pool := NewPool(8, rng) // widest range, 11 values

	first, err := pool.Take(3)
	if err != nil {
		t.Fatalf("Take(3): %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("Take(3) returned %d values", len(first))
	}
	if pool.Remaining() != 8 {
		t.Errorf("remaining = %d, want 8", pool.Remaining())
	}

	second, err := pool.Take(8)
	if err != nil {
		t.Fatalf("Take(8): %v", err)
	}

	all := append(append([]int{}, first...), second...)
	slices.Sort(all)
	for i := 1; i < len(all); i++ {
		if all[i] == all[i-1] {
			t.Errorf("value %d drawn twice", all[i])
		}
	}

	if _, err := pool.Take(1); !errors.Is(err, ErrExhausted) {
		t.Errorf("Take on empty pool returned %v, want ErrExhausted", err)
	}
}

func TestPool_TakeSorted(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 50 {
		pool := NewPool(4, rng)
		nums, err := pool.TakeSorted(3)
		if err != nil {
			t.Fatalf("TakeSorted: %v", err)
		}
		if !slices.IsSorted(nums) {
			t.Errorf("TakeSorted returned %v, want ascending", nums)
		}
		lo, hi := ColumnRange(4)
		for _, v := range nums {
			if v < lo || v > hi {
				t.Errorf("value %d outside [%d,%d]", v, lo, hi)
			}
		}
	}
}
