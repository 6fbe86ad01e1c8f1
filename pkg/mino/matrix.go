package mino

import (
	"fmt"
	"strings"
)

// Playfield dimensions used by the game.
const (
	Width  = 10
	Height = 16
)

// Matrix holds the locked cells of the playfield. Its dimensions are fixed
// when it is created. Cells change only through Add and ClearFilled (and
// the SetBlock/Clear helpers used to set up a field).
type Matrix struct {
	w, h  int
	cells []Block
}

// I returns the index of cell (x, y) in a row-major matrix of width w.
func I(x int, y int, w int) int {
	return (y * w) + x
}

func NewMatrix(w int, h int) *Matrix {
	return &Matrix{w: w, h: h, cells: make([]Block, w*h)}
}

func (m *Matrix) W() int { return m.w }
func (m *Matrix) H() int { return m.h }

func (m *Matrix) inBounds(x int, y int) bool {
	return x >= 0 && x < m.w && y >= 0 && y < m.h
}

// Block returns the content of cell (x, y), BlockNone when out of bounds.
func (m *Matrix) Block(x int, y int) Block {
	if !m.inBounds(x, y) {
		return BlockNone
	}
	return m.cells[I(x, y, m.w)]
}

func (m *Matrix) Empty(x int, y int) bool {
	return !m.Block(x, y).Solid()
}

func (m *Matrix) SetBlock(x int, y int, b Block) bool {
	if !m.inBounds(x, y) {
		return false
	}

	m.cells[I(x, y, m.w)] = b
	return true
}

func (m *Matrix) CanAdd(p Piece) bool {
	return !Collides(p, m)
}

// Add locks p into the matrix. Nothing is written when any cell of p is out
// of bounds or already occupied.
func (m *Matrix) Add(p Piece) error {
	cells := p.Cells()
	for _, c := range cells {
		if !m.inBounds(c.X, c.Y) {
			return fmt.Errorf("failed to add %s to matrix: point %s out of bounds", p, c)
		}

		if b := m.cells[I(c.X, c.Y, m.w)]; b.Solid() {
			return fmt.Errorf("failed to add %s to matrix: point %s already contains %s", p, c, b)
		}
	}

	b := p.Definition().Block
	for _, c := range cells {
		m.cells[I(c.X, c.Y, m.w)] = b
	}

	return nil
}

func (m *Matrix) LineFilled(y int) bool {
	for x := 0; x < m.w; x++ {
		if m.Empty(x, y) {
			return false
		}
	}

	return true
}

// ClearFilled removes every complete row and returns how many were removed.
// Rows are checked top to bottom. Each complete row is removed on its own by
// moving all rows above it down by one and emptying row 0; since that only
// touches rows above the current one, every row is tested against its
// contents from before the pass.
func (m *Matrix) ClearFilled() int {
	cleared := 0

	for y := 0; y < m.h; y++ {
		if !m.LineFilled(y) {
			continue
		}

		m.moveDownAbove(y)
		cleared++
	}

	return cleared
}

func (m *Matrix) moveDownAbove(y int) {
	for my := y; my > 0; my-- {
		copy(m.cells[I(0, my, m.w):I(0, my+1, m.w)], m.cells[I(0, my-1, m.w):I(0, my, m.w)])
	}

	for mx := 0; mx < m.w; mx++ {
		m.cells[I(mx, 0, m.w)] = BlockNone
	}
}

func (m *Matrix) Clear() {
	for i := range m.cells {
		m.cells[i] = BlockNone
	}
}

func (m *Matrix) Clone() *Matrix {
	c := NewMatrix(m.w, m.h)
	copy(c.cells, m.cells)
	return c
}

// Equal reports whether both matrices have the same size and cells.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.w != o.w || m.h != o.h {
		return false
	}

	for i := range m.cells {
		if m.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}

// Render returns the matrix as text, one line per row starting at the top.
func (m *Matrix) Render() string {
	var b strings.Builder

	for y := 0; y < m.h; y++ {
		if y > 0 {
			b.WriteRune('\n')
		}

		for x := 0; x < m.w; x++ {
			b.WriteRune(m.cells[I(x, y, m.w)].Rune())
		}
	}

	return b.String()
}
