package gui

import (
	"fmt"
	"strings"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	blockCell = "██"
	ghostCell = "▒▒"
	emptyCell = "  "
)

// renderMatrix draws the field with a border, two columns per cell, using
// tview color tags.
func renderMatrix(view [][]mino.Block, t Theme) string {
	w := 0
	if len(view) > 0 {
		w = len(view[0])
	}

	border := colorTag(t.Border)

	var b strings.Builder
	b.WriteString(border + "┌" + strings.Repeat("──", w) + "┐\n")

	for _, row := range view {
		b.WriteString(border + "│")
		for _, bl := range row {
			b.WriteString(renderBlock(bl, t))
		}
		b.WriteString(border + "│\n")
	}

	b.WriteString(border + "└" + strings.Repeat("──", w) + "┘")

	return b.String()
}

func renderBlock(bl mino.Block, t Theme) string {
	switch {
	case bl == mino.BlockGhost:
		return colorTag(t.Ghost) + ghostCell
	case bl.Solid():
		return colorTag(t.BlockColor(bl)) + blockCell
	default:
		return emptyCell
	}
}

// renderPiece draws the spawn rotation of a piece type without a border.
func renderPiece(pt mino.PieceType, t Theme) string {
	def := mino.DefinitionFor(pt)
	m := def.Rotations[mino.Rotation0]
	w, h := m.Size()

	var b strings.Builder
	for y := m.Top(); y < h; y++ {
		for x := 0; x < w; x++ {
			if m.HasPoint(mino.Point{X: x, Y: y}) {
				b.WriteString(renderBlock(def.Block, t))
			} else {
				b.WriteString(emptyCell)
			}
		}
		b.WriteRune('\n')
	}

	return b.String()
}

type sideInfo struct {
	Nickname string
	Score    int
	Lines    int
	Next     mino.PieceType
	Paused   bool
	Over     bool
	Message  string
	Controls []string
}

func renderSide(s sideInfo, t Theme) string {
	text := colorTag(t.Text)
	score := colorTag(t.Score)

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s\n\n", text, s.Nickname)
	fmt.Fprintf(&b, "%sScore %s%d\n", text, score, s.Score)
	fmt.Fprintf(&b, "%sLines %s%d\n\n", text, score, s.Lines)

	fmt.Fprintf(&b, "%sNext\n", text)
	b.WriteString(renderPiece(s.Next, t))
	b.WriteRune('\n')

	switch {
	case s.Over:
		fmt.Fprintf(&b, "%sGAME OVER%s\nPress r to restart\n", colorTag(t.GameOver), text)
	case s.Paused:
		fmt.Fprintf(&b, "%sPaused\n", text)
	case s.Message != "":
		fmt.Fprintf(&b, "%s%s\n", text, s.Message)
	default:
		b.WriteRune('\n')
	}

	b.WriteRune('\n')
	b.WriteString(text)
	for _, c := range s.Controls {
		b.WriteString(c)
		b.WriteRune('\n')
	}

	return b.String()
}
