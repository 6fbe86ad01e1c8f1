package mino

import (
	"errors"
	"math/rand"
	"sync"
)

// Bag picks pieces uniformly at random from a fixed set of types, keeping
// one piece of look-ahead so the next piece can be shown.
type Bag struct {
	Types []PieceType

	randomizer *rand.Rand
	next       PieceType

	*sync.Mutex
}

func NewBag(seed int64, types []PieceType) (*Bag, error) {
	if len(types) == 0 {
		return nil, errors.New("mino: bag needs at least one piece type")
	}

	for _, t := range types {
		if t < 0 || t >= PieceCount {
			return nil, errors.New("mino: bag given unknown piece type")
		}
	}

	b := &Bag{Types: types, randomizer: rand.New(rand.NewSource(seed)), Mutex: new(sync.Mutex)}
	b.next = b.draw()

	return b, nil
}

// Take returns the upcoming piece and draws a new one.
func (b *Bag) Take() PieceType {
	b.Lock()
	defer b.Unlock()

	t := b.next
	b.next = b.draw()

	return t
}

// Next returns the piece Take will return, without consuming it.
func (b *Bag) Next() PieceType {
	b.Lock()
	defer b.Unlock()

	return b.next
}

func (b *Bag) draw() PieceType {
	return b.Types[b.randomizer.Intn(len(b.Types))]
}
