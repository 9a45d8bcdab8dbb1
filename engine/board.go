package engine

import (
	"strings"

	"pegsol/types"
)

var (
	orthogonalJumps = [][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}
	diagonalJumps   = [][2]int{{-2, -2}, {-2, 2}, {2, -2}, {2, 2}}
)

// Board is a square grid with a fixed cross-shaped set of holes.
// Both grids are row-major: index = row*size + col.
type Board struct {
	shape types.Shape
	size  int
	holes []bool
	pegs  []bool
}

// NewBoard builds the cross mask for shape and places the starting layout.
func NewBoard(shape types.Shape) *Board {
	size := shape.Size()
	b := &Board{
		shape: shape,
		size:  size,
		holes: make([]bool, size*size),
		pegs:  make([]bool, size*size),
	}

	// A cell is cut away when both its row and column fall outside the
	// central band [offset, size-1-offset].
	lo, hi := shape.Offset(), size-1-shape.Offset()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			outRow := r < lo || r > hi
			outCol := c < lo || c > hi
			b.holes[r*size+c] = !(outRow && outCol)
		}
	}

	b.fill()
	return b
}

// fill puts a peg in every hole except the center.
func (b *Board) fill() {
	copy(b.pegs, b.holes)
	mid := b.size / 2
	b.pegs[mid*b.size+mid] = false
}

// Shape returns the board shape.
func (b *Board) Shape() types.Shape {
	return b.shape
}

// Size returns the side length of the grid.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether (row, col) lies inside the grid.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

// IsHole reports whether (row, col) is part of the playable cross.
func (b *Board) IsHole(row, col int) bool {
	return b.InBounds(row, col) && b.holes[row*b.size+col]
}

// HasPeg reports whether a peg sits at (row, col).
func (b *Board) HasPeg(row, col int) bool {
	return b.IsHole(row, col) && b.pegs[row*b.size+col]
}

func (b *Board) setPeg(row, col int, peg bool) {
	b.pegs[row*b.size+col] = peg
}

// HoleCount returns the number of holes in the cross.
func (b *Board) HoleCount() int {
	return count(b.holes)
}

// PegCount returns the number of holes currently holding a peg.
func (b *Board) PegCount() int {
	return count(b.pegs)
}

func count(cells []bool) int {
	n := 0
	for _, v := range cells {
		if v {
			n++
		}
	}
	return n
}

// jumpVectors returns the two-cell direction vectors legal under the
// diagonal setting.
func jumpVectors(diagonal bool) [][2]int {
	if !diagonal {
		return orthogonalJumps
	}
	dirs := make([][2]int, 0, len(orthogonalJumps)+len(diagonalJumps))
	dirs = append(dirs, orthogonalJumps...)
	return append(dirs, diagonalJumps...)
}

// canJump reports whether the peg at (row, col) can jump along (dr, dc).
func (b *Board) canJump(row, col, dr, dc int) bool {
	toR, toC := row+dr, col+dc
	if !b.IsHole(toR, toC) || b.HasPeg(toR, toC) {
		return false
	}
	return b.HasPeg(row+dr/2, col+dc/2)
}

// HasMove reports whether any peg on the board has a legal jump. It stops
// at the first jump found.
func (b *Board) HasMove(diagonal bool) bool {
	dirs := jumpVectors(diagonal)
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if !b.HasPeg(r, c) {
				continue
			}
			for _, d := range dirs {
				if b.canJump(r, c, d[0], d[1]) {
					return true
				}
			}
		}
	}
	return false
}

// Cells returns a copy of the board as a [row][col] grid.
func (b *Board) Cells() [][]types.Cell {
	cells := make([][]types.Cell, b.size)
	for r := range cells {
		cells[r] = make([]types.Cell, b.size)
		for c := range cells[r] {
			switch {
			case b.HasPeg(r, c):
				cells[r][c] = types.CellPeg
			case b.IsHole(r, c):
				cells[r][c] = types.CellEmpty
			}
		}
	}
	return cells
}

// String renders the board with ● for pegs, ○ for empty holes and a space
// outside the cross, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			switch {
			case b.HasPeg(r, c):
				sb.WriteRune('●')
			case b.IsHole(r, c):
				sb.WriteRune('○')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
