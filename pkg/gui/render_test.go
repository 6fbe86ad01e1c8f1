package gui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

func TestRenderMatrix(t *testing.T) {
	view := [][]mino.Block{
		{mino.BlockNone, mino.BlockT, mino.BlockNone},
		{mino.BlockGhost, mino.BlockI, mino.BlockI},
	}

	out := renderMatrix(view, ThemeBasic)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "┌──────┐")
	assert.Contains(t, lines[3], "└──────┘")

	assert.Equal(t, 3, strings.Count(out, blockCell))
	assert.Equal(t, 1, strings.Count(out, ghostCell))
	assert.Contains(t, lines[1], colorTag(ThemeBasic.T)+blockCell)
	assert.Contains(t, lines[2], colorTag(ThemeBasic.Ghost)+ghostCell)
}

func TestRenderPiece(t *testing.T) {
	out := renderPiece(mino.PieceI, ThemeBasic)
	assert.Equal(t, 4, strings.Count(out, blockCell))
	assert.Equal(t, 1, strings.Count(out, "\n"))

	out = renderPiece(mino.PieceT, ThemeBasic)
	assert.Equal(t, 4, strings.Count(out, blockCell))
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestRenderSide(t *testing.T) {
	out := renderSide(sideInfo{Nickname: "busy-otter", Score: 60, Lines: 2, Next: mino.PieceO, Controls: []string{"quit Esc"}}, ThemeBasic)

	assert.Contains(t, out, "busy-otter")
	assert.Contains(t, out, "60")
	assert.Contains(t, out, "quit Esc")
	assert.NotContains(t, out, "GAME OVER")

	out = renderSide(sideInfo{Over: true}, ThemeBasic)
	assert.Contains(t, out, "GAME OVER")
}

func TestThemeHex(t *testing.T) {
	hex := ThemeBasic.Hex()
	assert.Equal(t, "#0", hex.Text)
	assert.Equal(t, ThemeBasic.Name, hex.Name)

	theme := hex.Theme()
	assert.Equal(t, tcell.ColorDefault, theme.Text)
	assert.Equal(t, ThemeBasic.I.Hex(), theme.I.Hex())
}

func TestImportThemes(t *testing.T) {
	custom := ThemeHex{Name: "mono", I: "white", Border: "#ff0000"}

	theme, err := ImportThemes("mono", []ThemeHex{custom})
	require.NoError(t, err)
	assert.Equal(t, tcell.ColorWhite, theme.I)
	assert.Equal(t, int32(0xff0000), theme.Border.Hex())

	theme, err = ImportThemes("", nil)
	require.NoError(t, err)
	assert.Equal(t, ThemeBasic, theme)

	_, err = ImportThemes("missing", []ThemeHex{custom})
	assert.ErrorIs(t, err, ErrNoTheme)
}

func TestBlockColor(t *testing.T) {
	assert.Equal(t, ThemeBasic.Z, ThemeBasic.BlockColor(mino.BlockZ))
	assert.Equal(t, ThemeBasic.Ghost, ThemeBasic.BlockColor(mino.BlockGhost))
	assert.Equal(t, tcell.ColorDefault, ThemeBasic.BlockColor(mino.BlockNone))
	assert.Equal(t, "[-]", colorTag(tcell.ColorDefault))
}
