package mino

import (
	"errors"
	"fmt"
	"log"
)

var (
	// ErrTopOut is returned when a new piece has no legal position.
	ErrTopOut = errors.New("mino: top out")

	// ErrNoPiece is returned when the hand is used before a piece is spawned.
	ErrNoPiece = errors.New("mino: no piece in hand")
)

// Hand is the piece currently controlled by the player. It owns the
// piece's pose and a cached prediction of where the piece would land.
type Hand struct {
	m *Matrix
	p *Piece

	prediction      Point
	predictionStale bool
}

func NewHand(m *Matrix) *Hand {
	return &Hand{m: m, predictionStale: true}
}

func (h *Hand) Active() bool {
	return h.p != nil
}

// Piece returns a copy of the active piece.
func (h *Hand) Piece() (Piece, bool) {
	if h.p == nil {
		return Piece{}, false
	}
	return *h.p, true
}

func (h *Hand) Cells() []Point {
	if h.p == nil {
		return nil
	}
	return h.p.Cells()
}

// PredictionStale reports whether the next call to Prediction recomputes.
func (h *Hand) PredictionStale() bool {
	return h.predictionStale
}

// Spawn places a new piece of type t at rotation 0, centered on the top
// row. When that position is taken the piece is moved up a row at a time for
// as long as its top cells stay inside the matrix. ErrTopOut is returned
// when no row fits; the hand is left empty.
func (h *Hand) Spawn(t PieceType) error {
	d := DefinitionFor(t)

	h.p = nil
	h.predictionStale = true

	p := Piece{Type: t, Rotation: Rotation0, Point: Point{h.m.W() / 2, 0}}
	for Collides(p, h.m) {
		p.Y--
		if p.Y+d.Rotations[Rotation0].Top() < 0 {
			return fmt.Errorf("failed to spawn %s: %w", t, ErrTopOut)
		}
	}

	h.p = &p

	return nil
}

// TryMove moves the piece by (dx, dy) when the destination is free and
// reports whether it moved.
func (h *Hand) TryMove(dx int, dy int) (bool, error) {
	if h.p == nil {
		return false, ErrNoPiece
	}

	moved := *h.p
	moved.X += dx
	moved.Y += dy

	if Collides(moved, h.m) {
		return false, nil
	}

	*h.p = moved

	// Moving straight down never changes where the piece lands.
	if dx != 0 {
		h.predictionStale = true
	}

	return true, nil
}

// TryRotate turns the piece a quarter turn in direction d. The plain
// rotation is tried first; when it collides and wallKicks is set, the kick
// offsets for the transition are tried in table order and the first free one
// is used. Offsets that would move the anchor to a negative coordinate are
// skipped.
func (h *Hand) TryRotate(d Direction, wallKicks bool) (bool, error) {
	if h.p == nil {
		return false, ErrNoPiece
	}

	from := h.p.Rotation
	to := from.Turn(d)

	rotated := *h.p
	rotated.Rotation = to

	if !Collides(rotated, h.m) {
		h.apply(rotated)
		return true, nil
	} else if !wallKicks {
		return false, nil
	}

	def := h.p.Definition()
	kicks, ok := Kicks(def.Kicks, from, to)
	if !ok {
		missingKicks(def, from, to)
		return false, nil
	}

	for _, k := range kicks {
		kicked := rotated
		kicked.Point = rotated.Point.Add(k)

		if kicked.X < 0 || kicked.Y < 0 {
			continue
		} else if Collides(kicked, h.m) {
			continue
		}

		h.apply(kicked)
		return true, nil
	}

	return false, nil
}

func (h *Hand) apply(p Piece) {
	*h.p = p
	h.predictionStale = true
}

// missingKicks flags a kick table without an entry for a transition. The
// rotation is rejected; debug builds stop here.
func missingKicks(def *Definition, from Rotation, to Rotation) {
	msg := fmt.Sprintf("mino: no %s kick data for %s rotating %s->%s", def.Kicks, def.Name, from, to)
	if strictKicks {
		panic(msg)
	}
	log.Print(msg)
}

// Prediction returns the anchor the piece would come to rest at if dropped
// straight down.
func (h *Hand) Prediction() (Point, error) {
	if h.p == nil {
		return Point{}, ErrNoPiece
	}

	if h.predictionStale {
		p := *h.p
		for !Collides(p, h.m) {
			p.Y++
		}
		p.Y--

		h.prediction = p.Point
		h.predictionStale = false
	}

	return h.prediction, nil
}

// HardDrop moves the piece down until it rests and returns the number of
// rows it fell.
func (h *Hand) HardDrop() (int, error) {
	rows := 0
	for {
		moved, err := h.TryMove(0, 1)
		if err != nil {
			return rows, err
		} else if !moved {
			return rows, nil
		}

		rows++
	}
}

// Lock writes the piece into the matrix and empties the hand.
func (h *Hand) Lock() (Piece, error) {
	if h.p == nil {
		return Piece{}, ErrNoPiece
	}

	p := *h.p
	if err := h.m.Add(p); err != nil {
		return p, err
	}

	h.p = nil
	h.predictionStale = true

	return p, nil
}

// Reset empties the hand without touching the matrix.
func (h *Hand) Reset() {
	h.p = nil
	h.predictionStale = true
}

// MarkStale forces the prediction to be recomputed, e.g. after the matrix
// changed underneath the piece.
func (h *Hand) MarkStale() {
	h.predictionStale = true
}
