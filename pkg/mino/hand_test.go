package mino

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handAt(m *Matrix, p Piece) *Hand {
	h := NewHand(m)
	h.p = &p
	return h
}

func TestSpawn(t *testing.T) {
	for _, pt := range AllPieces() {
		m := NewMatrix(Width, Height)
		h := NewHand(m)

		require.NoError(t, h.Spawn(pt))

		p, ok := h.Piece()
		require.True(t, ok)
		assert.Equal(t, Piece{Type: pt, Rotation: Rotation0, Point: Point{Width / 2, 0}}, p)
	}
}

func TestSpawnMovesUp(t *testing.T) {
	m := NewMatrix(Width, Height)
	m.SetBlock(5, 1, BlockT)

	h := NewHand(m)
	require.NoError(t, h.Spawn(PieceI))

	p, _ := h.Piece()
	assert.Equal(t, Point{5, -1}, p.Point)
	assert.False(t, Collides(p, m))
}

func TestSpawnTopOut(t *testing.T) {
	m := NewMatrix(Width, Height)
	m.SetBlock(5, 0, BlockT)
	m.SetBlock(5, 1, BlockT)

	for _, pt := range []PieceType{PieceI, PieceJ} {
		h := NewHand(m)

		err := h.Spawn(pt)
		assert.Truef(t, errors.Is(err, ErrTopOut), "%s: %v", pt, err)
		assert.False(t, h.Active())
	}
}

func TestHandWithoutPiece(t *testing.T) {
	h := NewHand(NewMatrix(Width, Height))

	_, err := h.TryMove(1, 0)
	assert.ErrorIs(t, err, ErrNoPiece)

	_, err = h.TryRotate(RotateCW, true)
	assert.ErrorIs(t, err, ErrNoPiece)

	_, err = h.Prediction()
	assert.ErrorIs(t, err, ErrNoPiece)

	_, err = h.HardDrop()
	assert.ErrorIs(t, err, ErrNoPiece)

	_, err = h.Lock()
	assert.ErrorIs(t, err, ErrNoPiece)

	assert.Nil(t, h.Cells())
}

func TestFallToFloor(t *testing.T) {
	m := NewMatrix(Width, Height)
	h := NewHand(m)
	require.NoError(t, h.Spawn(PieceI))

	for i := 0; i < 14; i++ {
		moved, err := h.TryMove(0, 1)
		require.NoError(t, err)
		require.Truef(t, moved, "move %d", i)
	}

	moved, err := h.TryMove(0, 1)
	require.NoError(t, err)
	assert.False(t, moved)

	p, _ := h.Piece()
	assert.Equal(t, Point{5, 14}, p.Point)

	for _, c := range p.Cells() {
		assert.Equal(t, Height-1, c.Y)
	}
}

func TestHardDrop(t *testing.T) {
	m := NewMatrix(Width, Height)
	h := NewHand(m)
	require.NoError(t, h.Spawn(PieceI))

	rows, err := h.HardDrop()
	require.NoError(t, err)
	assert.Equal(t, 14, rows)

	p, _ := h.Piece()
	assert.Equal(t, Point{5, 14}, p.Point)

	_, err = h.Lock()
	require.NoError(t, err)
	assert.False(t, h.Active())

	for x := 5; x < 9; x++ {
		assert.Equal(t, BlockI, m.Block(x, 15))
	}
}

func TestMoveBlockedByWall(t *testing.T) {
	m := NewMatrix(Width, Height)
	h := handAt(m, Piece{Type: PieceO, Point: Point{0, 5}})

	moved, err := h.TryMove(-1, 0)
	require.NoError(t, err)
	assert.False(t, moved)

	p, _ := h.Piece()
	assert.Equal(t, Point{0, 5}, p.Point)
}

func TestRotateFullTurn(t *testing.T) {
	for _, pt := range AllPieces() {
		for _, d := range []Direction{RotateCW, RotateCCW} {
			m := NewMatrix(Width, Height)
			h := NewHand(m)
			require.NoError(t, h.Spawn(pt))

			for i := 0; i < 5; i++ {
				moved, err := h.TryMove(0, 1)
				require.NoError(t, err)
				require.True(t, moved)
			}

			start, _ := h.Piece()

			for i := 0; i < RotationStates; i++ {
				rotated, err := h.TryRotate(d, true)
				require.NoError(t, err)
				require.Truef(t, rotated, "%s %s turn %d", pt, d, i)
			}

			end, _ := h.Piece()
			assert.Equalf(t, start, end, "%s %s", pt, d)
		}
	}
}

func TestRotateWallKick(t *testing.T) {
	m := NewMatrix(Width, Height)
	m.SetBlock(1, 7, BlockT)

	h := handAt(m, Piece{Type: PieceJ, Rotation: Rotation0, Point: Point{0, 5}})

	// The plain rotation is blocked, and (-1,0) would be free but moves the
	// anchor off the left edge.
	require.True(t, Collides(Piece{Type: PieceJ, Rotation: RotationR, Point: Point{0, 5}}, m))
	require.False(t, Collides(Piece{Type: PieceJ, Rotation: RotationR, Point: Point{-1, 5}}, m))

	rotated, err := h.TryRotate(RotateCW, true)
	require.NoError(t, err)
	require.True(t, rotated)

	p, _ := h.Piece()
	assert.Equal(t, Piece{Type: PieceJ, Rotation: RotationR, Point: Point{0, 3}}, p)
	assert.True(t, h.PredictionStale())
}

func TestRotateWallKickExhausted(t *testing.T) {
	m := NewMatrix(Width, Height)
	m.SetBlock(1, 7, BlockT)
	m.SetBlock(1, 5, BlockT)

	start := Piece{Type: PieceJ, Rotation: Rotation0, Point: Point{0, 5}}
	h := handAt(m, start)

	rotated, err := h.TryRotate(RotateCW, true)
	require.NoError(t, err)
	assert.False(t, rotated)

	p, _ := h.Piece()
	assert.Equal(t, start, p)
}

func TestRotateWithoutWallKicks(t *testing.T) {
	m := NewMatrix(Width, Height)
	m.SetBlock(1, 7, BlockT)

	start := Piece{Type: PieceJ, Rotation: Rotation0, Point: Point{0, 5}}
	h := handAt(m, start)

	rotated, err := h.TryRotate(RotateCW, false)
	require.NoError(t, err)
	assert.False(t, rotated)

	p, _ := h.Piece()
	assert.Equal(t, start, p)
}

func TestRotateWithoutKickData(t *testing.T) {
	m := NewMatrix(Width, Height)
	m.SetBlock(4, 6, BlockT)

	// The O piece has no kick table; force its plain rotation to collide.
	start := Piece{Type: PieceO, Rotation: Rotation0, Point: Point{3, 5}}
	h := handAt(m, start)
	require.True(t, Collides(Piece{Type: PieceO, Rotation: RotationR, Point: Point{3, 5}}, m))

	if strictKicks {
		assert.Panics(t, func() { h.TryRotate(RotateCW, true) })
		return
	}

	rotated, err := h.TryRotate(RotateCW, true)
	require.NoError(t, err)
	assert.False(t, rotated)

	p, _ := h.Piece()
	assert.Equal(t, start, p)
}

func TestPrediction(t *testing.T) {
	m := NewMatrix(Width, Height)
	h := NewHand(m)
	require.NoError(t, h.Spawn(PieceI))
	require.True(t, h.PredictionStale())

	pred, err := h.Prediction()
	require.NoError(t, err)
	assert.Equal(t, Point{5, 14}, pred)
	assert.False(t, h.PredictionStale())

	_, err = h.TryMove(0, 1)
	require.NoError(t, err)
	assert.False(t, h.PredictionStale())

	_, err = h.TryMove(1, 0)
	require.NoError(t, err)
	assert.True(t, h.PredictionStale())

	pred, err = h.Prediction()
	require.NoError(t, err)
	assert.Equal(t, Point{6, 14}, pred)

	// Blocks added under the piece are only seen once marked stale.
	m.SetBlock(6, 10, BlockT)
	pred, _ = h.Prediction()
	assert.Equal(t, Point{6, 14}, pred)

	h.MarkStale()
	pred, _ = h.Prediction()
	assert.Equal(t, Point{6, 8}, pred)
}

func TestLockAndClearLine(t *testing.T) {
	m := NewMatrix(Width, Height)
	fillRow(m, 15, BlockZ)
	m.SetBlock(3, 15, BlockNone)

	h := NewHand(m)
	require.NoError(t, h.Spawn(PieceI))

	rotated, err := h.TryRotate(RotateCW, true)
	require.NoError(t, err)
	require.True(t, rotated)

	for i := 0; i < 4; i++ {
		moved, err := h.TryMove(-1, 0)
		require.NoError(t, err)
		require.True(t, moved)
	}

	pred, err := h.Prediction()
	require.NoError(t, err)
	assert.Equal(t, Point{1, 12}, pred)

	_, err = h.HardDrop()
	require.NoError(t, err)

	_, err = h.Lock()
	require.NoError(t, err)

	lines := m.ClearFilled()
	assert.Equal(t, 1, lines)
	assert.Equal(t, 15, Score(lines))

	want := NewMatrix(Width, Height)
	for y := 13; y < Height; y++ {
		want.SetBlock(3, y, BlockI)
	}
	assert.True(t, m.Equal(want), "\n%s", m.Render())
}
