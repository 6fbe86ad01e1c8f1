package game

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// DefaultGravityInterval is how long a piece hangs before falling one row.
const DefaultGravityInterval = time.Second

const (
	LogStandard = iota
	LogDebug
	LogVerbose
)

var (
	// ErrGameOver is returned by Tick once the match has ended.
	ErrGameOver = errors.New("game: game over")

	ErrNotStarted = errors.New("game: not started")
)

type Options struct {
	GravityInterval time.Duration
	WallKicks       bool
	Ghost           bool

	// Seed for the piece randomizer. Zero picks a seed from the clock.
	Seed int64

	// Pieces restricts the types the bag draws from. Empty means all.
	Pieces []mino.PieceType

	LogLevel int

	// Event receives PieceLockedEvent, LinesClearedEvent, ScoreEvent and
	// GameOverEvent values. Sends never block; events are dropped when the
	// channel is full.
	Event chan<- interface{}
}

// Game runs a single player match: gravity, queued player intents, locking,
// line clears and scoring. Intents may be queued from any goroutine; every
// other method must be called from the goroutine that calls Tick.
type Game struct {
	opts Options

	matrix *mino.Matrix
	hand   *mino.Hand
	bag    *mino.Bag

	elapsed time.Duration
	score   int
	lines   int
	started bool
	over    bool

	intents []event.GameAction
	*sync.Mutex
}

func New(opts Options) (*Game, error) {
	if opts.GravityInterval <= 0 {
		return nil, fmt.Errorf("game: invalid gravity interval %s", opts.GravityInterval)
	}

	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if len(opts.Pieces) == 0 {
		opts.Pieces = mino.AllPieces()
	}

	bag, err := mino.NewBag(opts.Seed, opts.Pieces)
	if err != nil {
		return nil, fmt.Errorf("failed to create bag: %w", err)
	}

	m := mino.NewMatrix(mino.Width, mino.Height)

	g := &Game{
		opts:   opts,
		matrix: m,
		hand:   mino.NewHand(m),
		bag:    bag,
		Mutex:  new(sync.Mutex),
	}

	return g, nil
}

func (g *Game) Logf(level int, format string, a ...interface{}) {
	if level > g.opts.LogLevel {
		return
	}

	log.Printf(format, a...)
}

// Start spawns the first piece.
func (g *Game) Start() error {
	g.started = true

	g.Logf(LogStandard, "Starting game with seed %d", g.opts.Seed)

	if err := g.spawn(); err != nil {
		return g.end(err)
	}

	return nil
}

// Reset empties the matrix and starts a new match. The bag keeps its
// sequence.
func (g *Game) Reset() error {
	g.Lock()
	g.intents = nil
	g.Unlock()

	g.matrix.Clear()
	g.hand.Reset()

	g.elapsed = 0
	g.score = 0
	g.lines = 0
	g.over = false

	return g.Start()
}

func (g *Game) Score() int { return g.score }
func (g *Game) Lines() int { return g.lines }
func (g *Game) Over() bool { return g.over }

// Next returns the type of the piece spawned after the current one.
func (g *Game) Next() mino.PieceType {
	return g.bag.Next()
}

func (g *Game) Piece() (mino.Piece, bool) {
	return g.hand.Piece()
}

func (g *Game) Matrix() *mino.Matrix {
	return g.matrix
}

func (g *Game) Enqueue(a event.GameAction) {
	g.Lock()
	defer g.Unlock()

	g.intents = append(g.intents, a)
}

func (g *Game) MoveLeft()   { g.Enqueue(event.ActionMoveLeft) }
func (g *Game) MoveRight()  { g.Enqueue(event.ActionMoveRight) }
func (g *Game) SoftDrop()   { g.Enqueue(event.ActionSoftDrop) }
func (g *Game) HardDrop()   { g.Enqueue(event.ActionHardDrop) }
func (g *Game) RotateCW()   { g.Enqueue(event.ActionRotateCW) }
func (g *Game) RotateCCW()  { g.Enqueue(event.ActionRotateCCW) }
func (g *Game) ClearLines() { g.Enqueue(event.ActionClearLines) }

func (g *Game) takeIntents() []event.GameAction {
	g.Lock()
	defer g.Unlock()

	intents := g.intents
	g.intents = nil

	return intents
}

// Tick advances the match by dt. At most one gravity step is applied per
// call and any elapsed time left over past a full interval is discarded,
// after which every queued intent is processed in arrival order. When
// a new piece cannot be spawned the match ends, the remaining intents are
// dropped and an error wrapping mino.ErrTopOut is returned. Later calls
// return ErrGameOver.
func (g *Game) Tick(dt time.Duration) error {
	if g.over {
		return ErrGameOver
	} else if !g.started {
		return ErrNotStarted
	}

	g.elapsed += dt
	if g.elapsed >= g.opts.GravityInterval {
		// One step per tick; time beyond the next threshold is dropped.
		g.elapsed %= g.opts.GravityInterval

		if err := g.fall(); err != nil {
			return g.end(err)
		}
	}

	for _, a := range g.takeIntents() {
		if err := g.process(a); err != nil {
			return g.end(err)
		}
	}

	return nil
}

func (g *Game) process(a event.GameAction) error {
	var err error

	switch a {
	case event.ActionMoveLeft:
		_, err = g.hand.TryMove(-1, 0)
	case event.ActionMoveRight:
		_, err = g.hand.TryMove(1, 0)
	case event.ActionRotateCW:
		_, err = g.hand.TryRotate(mino.RotateCW, g.opts.WallKicks)
	case event.ActionRotateCCW:
		_, err = g.hand.TryRotate(mino.RotateCCW, g.opts.WallKicks)
	case event.ActionSoftDrop:
		err = g.fall()
	case event.ActionHardDrop:
		if _, err = g.hand.HardDrop(); err == nil {
			err = g.lockPiece()
		}
	case event.ActionClearLines:
		err = g.clearLines()
	default:
		g.Logf(LogDebug, "Ignoring unknown action %d", a)
	}

	return err
}

// fall moves the piece down a row, locking it when it rests.
func (g *Game) fall() error {
	moved, err := g.hand.TryMove(0, 1)
	if err != nil {
		return err
	} else if moved {
		return nil
	}

	return g.lockPiece()
}

func (g *Game) lockPiece() error {
	p, err := g.hand.Lock()
	if err != nil {
		return fmt.Errorf("failed to lock piece: %w", err)
	}

	g.Logf(LogVerbose, "Locked %s", p)
	g.emit(&event.PieceLockedEvent{Piece: p})

	if cleared := g.matrix.ClearFilled(); cleared > 0 {
		g.lines += cleared
		g.score += mino.Score(cleared)

		g.Logf(LogDebug, "Cleared %d lines, score %d", cleared, g.score)
		g.emit(&event.LinesClearedEvent{Lines: cleared})
		g.emit(&event.ScoreEvent{Score: g.score})
	}

	return g.spawn()
}

// clearLines removes complete rows without scoring them. Rows shifted down
// may land on the active piece, in which case it is replaced by a new one.
func (g *Game) clearLines() error {
	cleared := g.matrix.ClearFilled()
	if cleared == 0 {
		return nil
	}

	g.Logf(LogDebug, "Cleared %d lines without scoring", cleared)
	g.emit(&event.LinesClearedEvent{Lines: cleared})

	g.hand.MarkStale()

	p, ok := g.hand.Piece()
	if ok && mino.Collides(p, g.matrix) {
		g.hand.Reset()
		return g.spawn()
	}

	return nil
}

func (g *Game) spawn() error {
	t := g.bag.Take()
	if err := g.hand.Spawn(t); err != nil {
		return err
	}

	g.Logf(LogVerbose, "Spawned %s, next %s", t, g.bag.Next())

	return nil
}

func (g *Game) end(err error) error {
	if !errors.Is(err, mino.ErrTopOut) {
		return err
	}

	g.over = true

	g.Lock()
	g.intents = nil
	g.Unlock()

	g.Logf(LogStandard, "Game over, score %d lines %d", g.score, g.lines)
	g.emit(&event.GameOverEvent{Event: event.Event{Message: "Game over"}, Score: g.score, Lines: g.lines})

	return fmt.Errorf("game over: %w", err)
}

func (g *Game) emit(e interface{}) {
	if g.opts.Event == nil {
		return
	}

	select {
	case g.opts.Event <- e:
	default:
		g.Logf(LogVerbose, "Dropped event %T", e)
	}
}

// View returns the rows of the field as they should be drawn: locked cells,
// the ghost where it does not cover a locked cell and the active piece on
// top.
func (g *Game) View() [][]mino.Block {
	w, h := g.matrix.W(), g.matrix.H()

	view := make([][]mino.Block, h)
	for y := range view {
		row := make([]mino.Block, w)
		for x := range row {
			row[x] = g.matrix.Block(x, y)
		}
		view[y] = row
	}

	p, ok := g.hand.Piece()
	if !ok {
		return view
	}

	if g.opts.Ghost {
		if pred, err := g.hand.Prediction(); err == nil {
			ghost := p
			ghost.Point = pred

			for _, c := range ghost.Cells() {
				if c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h && view[c.Y][c.X] == mino.BlockNone {
					view[c.Y][c.X] = mino.BlockGhost
				}
			}
		}
	}

	b := p.Definition().Block
	for _, c := range p.Cells() {
		if c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h {
			view[c.Y][c.X] = b
		}
	}

	return view
}
