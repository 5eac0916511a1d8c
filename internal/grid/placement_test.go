package grid

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func mustSchedule(t *testing.T, ranks ...int) Schedule {
	t.Helper()
	s, err := NewSchedule(ranks...)
	if err != nil {
		t.Fatalf("NewSchedule(%v) error: %v", ranks, err)
	}
	return s
}

func mineIndexes(b *Board) []int {
	var out []int
	for i := 0; i < b.Len(); i++ {
		if b.Cell(i).Mine {
			out = append(out, i)
		}
	}
	return out
}

func TestNewScheduleRejectsBadRanks(t *testing.T) {
	tests := [][]int{
		{-1, 2},
		{3, 3},
		{4, 2},
	}

	for _, ranks := range tests {
		if _, err := NewSchedule(ranks...); !errors.Is(err, ErrInvalidSchedule) {
			t.Errorf("NewSchedule(%v) error = %v, want ErrInvalidSchedule", ranks, err)
		}
	}
}

func TestPlaceMinesFromSchedule(t *testing.T) {
	tests := []struct {
		name  string
		ranks []int
		first int
		want  []int
	}{
		{"corner click", []int{0, 16}, 0, []int{2, 20}},
		{"center click", []int{0, 12}, 12, []int{0, 21}},
		{"four mines", []int{0, 8, 16, 20}, 0, []int{2, 12, 20, 24}},
	}

	for _, tt := range tests {
		b := NewBoard(5)
		placed := PlaceMines(b, tt.first, mustSchedule(t, tt.ranks...))
		if placed != len(tt.want) {
			t.Errorf("%s: PlaceMines() = %d, want %d", tt.name, placed, len(tt.want))
		}
		if got := mineIndexes(b); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: mines at %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPlaceMinesDropsRanksPastPool(t *testing.T) {
	b := NewBoard(3)
	// Clicking the center of a 3×3 board leaves no candidates at all.
	if placed := PlaceMines(b, 4, mustSchedule(t, 0)); placed != 0 {
		t.Errorf("PlaceMines() = %d, want 0", placed)
	}
	if b.MineCount() != 0 {
		t.Errorf("MineCount() = %d, want 0", b.MineCount())
	}
}

func TestPlaceMinesKeepsSafeZoneClear(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))

	for size := 3; size <= 8; size++ {
		pool := CandidatePool(size)
		for first := 0; first < size*size; first++ {
			b := NewBoard(size)
			s := Distribute(rng, pool, pool)
			if placed := PlaceMines(b, first, s); placed != pool {
				t.Fatalf("size %d first %d: placed %d mines, want %d", size, first, placed, pool)
			}

			if b.Cell(first).Mine {
				t.Errorf("size %d: first click %d holds a mine", size, first)
			}
			for _, n := range Neighbors(first, size) {
				if b.Cell(n).Mine {
					t.Errorf("size %d first %d: neighbor %d holds a mine", size, first, n)
				}
			}
		}
	}
}

func TestPlaceMinesAdjacencyCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(777))

	for size := 3; size <= 10; size++ {
		b := NewBoard(size)
		first := rng.Intn(size * size)
		PlaceMines(b, first, Distribute(rng, CandidatePool(size), CandidatePool(size)/3))

		for i := 0; i < b.Len(); i++ {
			c := b.Cell(i)
			if c.Mine {
				if c.Adjacent != 0 {
					t.Errorf("size %d: mine %d has count %d, want 0", size, i, c.Adjacent)
				}
				continue
			}
			want := 0
			for _, n := range neighborsByOffset(i, size) {
				if b.Cell(n).Mine {
					want++
				}
			}
			if c.Adjacent != want {
				t.Errorf("size %d: cell %d count = %d, want %d", size, i, c.Adjacent, want)
			}
		}
	}
}

func TestDistribute(t *testing.T) {
	tests := []struct {
		pool  int
		mines int
		want  int
	}{
		{16, 4, 4},
		{72, 10, 10},
		{10, 10, 10},
		{5, 8, 5},
		{20, 0, 0},
	}

	rng := rand.New(rand.NewSource(42))
	for _, tt := range tests {
		s := Distribute(rng, tt.pool, tt.mines)
		if s.Len() != tt.want {
			t.Errorf("Distribute(%d, %d).Len() = %d, want %d", tt.pool, tt.mines, s.Len(), tt.want)
		}
		ranks := s.Ranks()
		for i, r := range ranks {
			if r < 0 || r >= tt.pool {
				t.Errorf("Distribute(%d, %d) rank %d out of range", tt.pool, tt.mines, r)
			}
			if i > 0 && r <= ranks[i-1] {
				t.Errorf("Distribute(%d, %d) ranks not increasing: %v", tt.pool, tt.mines, ranks)
			}
		}
	}
}

func TestDistributeReproducible(t *testing.T) {
	s1 := Distribute(rand.New(rand.NewSource(99)), 72, 10)
	s2 := Distribute(rand.New(rand.NewSource(99)), 72, 10)

	if !reflect.DeepEqual(s1.Ranks(), s2.Ranks()) {
		t.Errorf("same seed gave %v and %v", s1.Ranks(), s2.Ranks())
	}
}
