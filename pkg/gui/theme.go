package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// ErrNoTheme is returned by ImportThemes for an unknown theme name.
var ErrNoTheme = errors.New("theme: no theme found")

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name     string      `json:"name" yaml:"name"`
	I        tcell.Color `json:"i" yaml:"i"`
	J        tcell.Color `json:"j" yaml:"j"`
	L        tcell.Color `json:"l" yaml:"l"`
	O        tcell.Color `json:"o" yaml:"o"`
	S        tcell.Color `json:"s" yaml:"s"`
	T        tcell.Color `json:"t" yaml:"t"`
	Z        tcell.Color `json:"z" yaml:"z"`
	Ghost    tcell.Color `json:"ghost" yaml:"ghost"`
	Border   tcell.Color `json:"border" yaml:"border"`
	Text     tcell.Color `json:"text" yaml:"text"`
	Score    tcell.Color `json:"score" yaml:"score"`
	GameOver tcell.Color `json:"gameOver" yaml:"gameOver"`
}

// ThemeHex is a Theme with colors written as names or #rrggbb, as found in
// config files.
type ThemeHex struct {
	Name     string `json:"name" yaml:"name"`
	I        string `json:"i" yaml:"i"`
	J        string `json:"j" yaml:"j"`
	L        string `json:"l" yaml:"l"`
	O        string `json:"o" yaml:"o"`
	S        string `json:"s" yaml:"s"`
	T        string `json:"t" yaml:"t"`
	Z        string `json:"z" yaml:"z"`
	Ghost    string `json:"ghost" yaml:"ghost"`
	Border   string `json:"border" yaml:"border"`
	Text     string `json:"text" yaml:"text"`
	Score    string `json:"score" yaml:"score"`
	GameOver string `json:"gameOver" yaml:"gameOver"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.I.Hex()),
		fmtHex(t.J.Hex()),
		fmtHex(t.L.Hex()),
		fmtHex(t.O.Hex()),
		fmtHex(t.S.Hex()),
		fmtHex(t.T.Hex()),
		fmtHex(t.Z.Hex()),
		fmtHex(t.Ghost.Hex()),
		fmtHex(t.Border.Hex()),
		fmtHex(t.Text.Hex()),
		fmtHex(t.Score.Hex()),
		fmtHex(t.GameOver.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.I),
		tcell.GetColor(t.J),
		tcell.GetColor(t.L),
		tcell.GetColor(t.O),
		tcell.GetColor(t.S),
		tcell.GetColor(t.T),
		tcell.GetColor(t.Z),
		tcell.GetColor(t.Ghost),
		tcell.GetColor(t.Border),
		tcell.GetColor(t.Text),
		tcell.GetColor(t.Score),
		tcell.GetColor(t.GameOver),
	}
}

// BlockColor returns the color a matrix cell is drawn with.
func (t Theme) BlockColor(b mino.Block) tcell.Color {
	switch b {
	case mino.BlockI:
		return t.I
	case mino.BlockJ:
		return t.J
	case mino.BlockL:
		return t.L
	case mino.BlockO:
		return t.O
	case mino.BlockS:
		return t.S
	case mino.BlockT:
		return t.T
	case mino.BlockZ:
		return t.Z
	case mino.BlockGhost:
		return t.Ghost
	default:
		return tcell.ColorDefault
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	if want == "" || want == ThemeBasic.Name {
		return ThemeBasic, nil
	}

	return Theme{}, ErrNoTheme
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",            // Name
	tcell.Color51,      // I
	tcell.Color27,      // J
	tcell.Color208,     // L
	tcell.Color226,     // O
	tcell.Color46,      // S
	tcell.Color129,     // T
	tcell.Color196,     // Z
	tcell.Color240,     // Ghost
	tcell.Color247,     // Border
	tcell.ColorDefault, // Text
	tcell.Color122,     // Score
	tcell.Color160,     // GameOver
}

// colorTag returns the tview tag that switches the foreground to c.
func colorTag(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "[-]"
	}
	return fmt.Sprintf("[#%06x]", c.Hex())
}
