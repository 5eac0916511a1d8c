package grid

import (
	"strconv"
	"strings"
)

// Board is a size×size minefield addressed by a linear, row-major index.
// Row is i / Size and column is i % Size.
type Board struct {
	Size  int
	cells []Cell
}

// NewBoard creates a board where every cell is concealed and mine-free.
func NewBoard(size int) *Board {
	return &Board{
		Size:  size,
		cells: make([]Cell, size*size),
	}
}

// Len returns the number of cells on the board.
func (b *Board) Len() int {
	return len(b.cells)
}

// Contains reports whether i addresses a cell of the board.
func (b *Board) Contains(i int) bool {
	return i >= 0 && i < len(b.cells)
}

// Cell returns a copy of the cell at i.
func (b *Board) Cell(i int) Cell {
	return b.cells[i]
}

// ToggleFlag flips a concealed cell to flagged and back. Revealed cells are
// left alone; the return value reports whether anything changed.
func (b *Board) ToggleFlag(i int) bool {
	c := &b.cells[i]
	switch c.Status {
	case Concealed:
		c.Status = Flagged
	case Flagged:
		c.Status = Concealed
	default:
		return false
	}
	return true
}

// Recount recomputes the adjacent-mine count of every non-mine cell.
// Mine cells keep a count of 0.
func (b *Board) Recount() {
	for i := range b.cells {
		b.cells[i].Adjacent = 0
		if b.cells[i].Mine {
			continue
		}
		for _, n := range Neighbors(i, b.Size) {
			if b.cells[n].Mine {
				b.cells[i].Adjacent++
			}
		}
	}
}

// Count returns the number of cells in the given status.
func (b *Board) Count(status Status) int {
	count := 0
	for _, c := range b.cells {
		if c.Status == status {
			count++
		}
	}
	return count
}

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int {
	count := 0
	for _, c := range b.cells {
		if c.Mine {
			count++
		}
	}
	return count
}

// Snapshot returns a copy of the board that callers may keep and read
// without affecting the board.
func (b *Board) Snapshot() Snapshot {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Snapshot{Size: b.Size, Cells: cells}
}

// Snapshot is a read-only view of a board at one point in time, in
// row-major order.
type Snapshot struct {
	Size  int
	Cells []Cell
}

// At returns the cell at linear index i.
func (s Snapshot) At(i int) Cell {
	return s.Cells[i]
}

// Count returns the number of cells in the given status.
func (s Snapshot) Count(status Status) int {
	count := 0
	for _, c := range s.Cells {
		if c.Status == status {
			count++
		}
	}
	return count
}

// String renders the snapshot one row per line.
// Concealed cells are '.', flags 'F', revealed mines '*', revealed empty
// cells ' ' and numbered cells their digit.
func (s Snapshot) String() string {
	var sb strings.Builder
	for i, c := range s.Cells {
		if i > 0 && i%s.Size == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(glyph(c))
	}
	return sb.String()
}

func glyph(c Cell) string {
	switch {
	case c.Status == Flagged:
		return "F"
	case c.Status == Concealed:
		return "."
	case c.Mine:
		return "*"
	case c.Adjacent == 0:
		return " "
	default:
		return strconv.Itoa(c.Adjacent)
	}
}
