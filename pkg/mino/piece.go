package mino

import (
	"fmt"
	"sort"
	"strings"
)

const (
	Rotation0 Rotation = 0
	RotationR Rotation = 1
	Rotation2 Rotation = 2
	RotationL Rotation = 3

	RotationStates = 4
)

// Rotation is a rotation state index in [0, RotationStates).
type Rotation int

func (r Rotation) String() string {
	switch r {
	case Rotation0:
		return "0"
	case RotationR:
		return "R"
	case Rotation2:
		return "2"
	case RotationL:
		return "L"
	default:
		return fmt.Sprintf("Rotation(%d)", int(r))
	}
}

type Direction int

const (
	RotateCW Direction = iota
	RotateCCW
)

func (d Direction) String() string {
	if d == RotateCCW {
		return "CCW"
	}
	return "CW"
}

// Turn returns the rotation state reached by a quarter turn in direction d.
func (r Rotation) Turn(d Direction) Rotation {
	if d == RotateCCW {
		if r == Rotation0 {
			return RotationL
		}
		return r - 1
	}

	if r == RotationL {
		return Rotation0
	}
	return r + 1
}

// Mino is the set of cell offsets occupied by a piece in one rotation state,
// relative to the piece anchor.
type Mino []Point

func (m Mino) Len() int      { return len(m) }
func (m Mino) Swap(i, j int) { m[i], m[j] = m[j], m[i] }
func (m Mino) Less(i, j int) bool {
	return m[i].Y < m[j].Y || (m[i].Y == m[j].Y && m[i].X < m[j].X)
}

func (m Mino) String() string {
	sorted := make(Mino, len(m))
	copy(sorted, m)

	sort.Sort(sorted)

	var b strings.Builder
	for i := range sorted {
		if i > 0 {
			b.WriteRune(',')
		}
		b.WriteString(sorted[i].String())
	}

	return b.String()
}

func (m Mino) HasPoint(p Point) bool {
	for _, mp := range m {
		if mp == p {
			return true
		}
	}

	return false
}

// Top returns the smallest Y offset of the mino.
func (m Mino) Top() int {
	top := m[0].Y
	for _, p := range m[1:] {
		if p.Y < top {
			top = p.Y
		}
	}

	return top
}

func (m Mino) Size() (int, int) {
	var x, y int
	for _, p := range m {
		if p.X > x {
			x = p.X
		}
		if p.Y > y {
			y = p.Y
		}
	}

	return x + 1, y + 1
}

type PieceType int

const (
	PieceI PieceType = iota
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ

	PieceCount = 7
)

func (t PieceType) String() string {
	if t < 0 || t >= PieceCount {
		return fmt.Sprintf("PieceType(%d)", int(t))
	}
	return definitions[t].Name
}

// Definition describes one piece type: its cells for each of the four
// rotation states, the block it locks as and the kick table it uses.
type Definition struct {
	Type      PieceType
	Name      string
	Block     Block
	Kicks     KickGroup
	Rotations [RotationStates]Mino
}

// DefinitionFor returns the catalog entry for t. Only types returned by the
// catalog or a Bag are valid; anything else is a programming error.
func DefinitionFor(t PieceType) *Definition {
	if t < 0 || t >= PieceCount {
		panic(fmt.Sprintf("mino: no definition for piece type %d", int(t)))
	}
	return &definitions[t]
}

// AllPieces returns every piece type in catalog order.
func AllPieces() []PieceType {
	types := make([]PieceType, PieceCount)
	for i := range types {
		types[i] = PieceType(i)
	}
	return types
}

var definitions = [PieceCount]Definition{
	PieceI: {
		Type:  PieceI,
		Name:  "I",
		Block: BlockI,
		Kicks: KickGroupI,
		Rotations: [RotationStates]Mino{
			{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
			{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
			{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
			{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		},
	},
	PieceJ: {
		Type:  PieceJ,
		Name:  "J",
		Block: BlockJ,
		Kicks: KickGroupJLSTZ,
		Rotations: [RotationStates]Mino{
			{{0, 0}, {0, 1}, {2, 1}, {1, 1}},
			{{2, 0}, {1, 0}, {1, 1}, {1, 2}},
			{{2, 2}, {0, 1}, {2, 1}, {1, 1}},
			{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		},
	},
	PieceL: {
		Type:  PieceL,
		Name:  "L",
		Block: BlockL,
		Kicks: KickGroupJLSTZ,
		Rotations: [RotationStates]Mino{
			{{2, 0}, {0, 1}, {2, 1}, {1, 1}},
			{{2, 2}, {1, 0}, {1, 1}, {1, 2}},
			{{0, 2}, {0, 1}, {2, 1}, {1, 1}},
			{{1, 2}, {1, 0}, {1, 1}, {0, 0}},
		},
	},
	// All four O states are identical, so it never needs a kick.
	PieceO: {
		Type:  PieceO,
		Name:  "O",
		Block: BlockO,
		Kicks: KickGroupNone,
		Rotations: [RotationStates]Mino{
			{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
			{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
			{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
			{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		},
	},
	PieceS: {
		Type:  PieceS,
		Name:  "S",
		Block: BlockS,
		Kicks: KickGroupJLSTZ,
		Rotations: [RotationStates]Mino{
			{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
			{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
			{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
			{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		},
	},
	PieceT: {
		Type:  PieceT,
		Name:  "T",
		Block: BlockT,
		Kicks: KickGroupJLSTZ,
		Rotations: [RotationStates]Mino{
			{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
			{{0, 1}, {1, 2}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {0, 1}},
		},
	},
	PieceZ: {
		Type:  PieceZ,
		Name:  "Z",
		Block: BlockZ,
		Kicks: KickGroupJLSTZ,
		Rotations: [RotationStates]Mino{
			{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
			{{2, 0}, {1, 1}, {1, 2}, {2, 1}},
			{{0, 1}, {1, 2}, {1, 1}, {2, 2}},
			{{1, 0}, {0, 1}, {0, 2}, {1, 1}},
		},
	},
}

// Piece is a piece type placed in a rotation state at an anchor. The anchor
// is the top-left corner of the piece's bounding box in matrix coordinates.
type Piece struct {
	Type     PieceType
	Rotation Rotation
	Point
}

func (p Piece) String() string {
	return fmt.Sprintf("%s/%s@%s", p.Type, p.Rotation, p.Point)
}

func (p Piece) Definition() *Definition {
	return DefinitionFor(p.Type)
}

// Mino returns the offsets occupied in the piece's current rotation state.
func (p Piece) Mino() Mino {
	return DefinitionFor(p.Type).Rotations[p.Rotation]
}

// Cells returns the absolute matrix coordinates the piece occupies.
func (p Piece) Cells() []Point {
	m := p.Mino()
	cells := make([]Point, len(m))
	for i, o := range m {
		cells[i] = p.Point.Add(o)
	}
	return cells
}
