package event

import "github.com/qnkhuat/tetristerm/pkg/mino"

type Event struct {
	Message string
}

type PieceLockedEvent struct {
	Event
	Piece mino.Piece
}

type LinesClearedEvent struct {
	Event
	Lines int
}

type ScoreEvent struct {
	Event
	Score int
}

type GameOverEvent struct {
	Event
	Score int
	Lines int
}
