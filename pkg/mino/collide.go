package mino

// Collides reports whether p overlaps a solid cell of m or leaves the matrix.
// It is the only placement check; moves, rotations, spawns, predictions and
// locks all go through it.
func Collides(p Piece, m *Matrix) bool {
	for _, o := range p.Mino() {
		x := p.X + o.X
		y := p.Y + o.Y

		if x < 0 || x >= m.w || y < 0 || y >= m.h {
			return true
		}
		if m.cells[I(x, y, m.w)].Solid() {
			return true
		}
	}

	return false
}
