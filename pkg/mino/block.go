package mino

// Block is the content of a single matrix cell. It carries no behavior, only
// whether the cell is occupied and which piece it came from.
type Block int

const (
	BlockNone Block = iota
	BlockI
	BlockJ
	BlockL
	BlockO
	BlockS
	BlockT
	BlockZ
	BlockGhost
)

func (b Block) String() string {
	return string(b.Rune())
}

// Rune returns the glyph drawn for the block.
func (b Block) Rune() rune {
	switch b {
	case BlockNone:
		return ' '
	case BlockI:
		return 'I'
	case BlockJ:
		return 'J'
	case BlockL:
		return 'L'
	case BlockO:
		return 'o'
	case BlockS:
		return 'S'
	case BlockT:
		return 'T'
	case BlockZ:
		return 'Z'
	case BlockGhost:
		return '.'
	default:
		return '?'
	}
}

// Solid reports whether the block occupies its cell. Ghost blocks are drawn
// but never occupy anything.
func (b Block) Solid() bool {
	return b != BlockNone && b != BlockGhost
}
