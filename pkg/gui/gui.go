package gui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetristerm/pkg"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	fieldWidth  = mino.Width*2 + 2
	fieldHeight = mino.Height + 2
	sideWidth   = 28

	pageGame = "game"
	pageOver = "over"
)

type Options struct {
	Nickname      string
	Theme         Theme
	Keybindings   []*Keybinding
	FrameInterval time.Duration
}

// GUI draws a Game in the terminal and feeds it key presses. The game is
// only touched from the tview event goroutine.
type GUI struct {
	app   *tview.Application
	pages *tview.Pages
	field *tview.TextView
	side  *tview.TextView
	modal *tview.Modal

	game   *game.Game
	events <-chan interface{}
	clock  *pkg.Clock

	nickname    string
	theme       Theme
	keybindings []*Keybinding
	controls    []string
	message     string
}

// New creates the interface for g. events is the channel g was created with,
// or nil.
func New(g *game.Game, events <-chan interface{}, opts Options) *GUI {
	if opts.Keybindings == nil {
		opts.Keybindings = DefaultKeybindings
	}
	if opts.Theme.Name == "" {
		opts.Theme = ThemeBasic
	}

	gui := &GUI{
		app:         tview.NewApplication(),
		game:        g,
		events:      events,
		clock:       pkg.NewClock(opts.FrameInterval),
		nickname:    opts.Nickname,
		theme:       opts.Theme,
		keybindings: opts.Keybindings,
		controls:    append(describeKeybindings(opts.Keybindings), "pause       p", "quit        Esc"),
	}

	gui.field = tview.NewTextView().SetDynamicColors(true).SetScrollable(false).SetWrap(false)
	gui.side = tview.NewTextView().SetDynamicColors(true).SetScrollable(false).SetWrap(false)

	gui.modal = tview.NewModal().
		AddButtons([]string{"Restart", "Quit"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonLabel == "Restart" {
				gui.restart()
			} else {
				gui.app.Stop()
			}
		})

	grid := tview.NewGrid().
		SetRows(0, fieldHeight, 0).
		SetColumns(0, fieldWidth, 2, sideWidth, 0).
		AddItem(gui.field, 1, 1, 1, 1, 0, 0, false).
		AddItem(gui.side, 1, 3, 1, 1, 0, 0, false)

	gui.pages = tview.NewPages().
		AddPage(pageGame, grid, true, true).
		AddPage(pageOver, gui.modal, false, false)

	gui.app.SetRoot(gui.pages, true).SetInputCapture(gui.handleKeypress)

	return gui
}

// Run starts the game and blocks until the player quits.
func (gui *GUI) Run() error {
	if err := gui.game.Start(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	gui.draw()

	done := make(chan struct{})
	defer close(done)

	go gui.clock.Run(done, func(dt time.Duration) {
		gui.app.QueueUpdateDraw(func() {
			gui.tick(dt)
		})
	})

	return gui.app.Run()
}

func (gui *GUI) Stop() {
	gui.app.Stop()
}

func (gui *GUI) tick(dt time.Duration) {
	if gui.clock.IsPaused() {
		return
	}

	err := gui.game.Tick(dt)
	if errors.Is(err, mino.ErrTopOut) {
		gui.showGameOver()
	} else if err != nil && !errors.Is(err, game.ErrGameOver) {
		log.Printf("tick failed: %v", err)
	}

	gui.drainEvents()
	gui.draw()
}

func (gui *GUI) drainEvents() {
	if gui.events == nil {
		return
	}

	for {
		select {
		case e := <-gui.events:
			switch e := e.(type) {
			case *event.LinesClearedEvent:
				gui.message = fmt.Sprintf("Cleared %d lines", e.Lines)
			case *event.GameOverEvent:
				gui.message = e.Message
			}
		default:
			return
		}
	}
}

func (gui *GUI) draw() {
	gui.field.SetText(renderMatrix(gui.game.View(), gui.theme))
	gui.side.SetText(renderSide(sideInfo{
		Nickname: gui.nickname,
		Score:    gui.game.Score(),
		Lines:    gui.game.Lines(),
		Next:     gui.game.Next(),
		Paused:   gui.clock.IsPaused(),
		Over:     gui.game.Over(),
		Message:  gui.message,
		Controls: gui.controls,
	}, gui.theme))
}

func (gui *GUI) showGameOver() {
	gui.modal.SetText(fmt.Sprintf("Game over\n\nScore %d  Lines %d", gui.game.Score(), gui.game.Lines()))
	gui.pages.ShowPage(pageOver)
	gui.app.SetFocus(gui.modal)
}

func (gui *GUI) restart() {
	gui.pages.HidePage(pageOver)
	gui.message = ""

	if err := gui.game.Reset(); err != nil {
		log.Printf("restart failed: %v", err)
		gui.showGameOver()
	}

	gui.draw()
}

func (gui *GUI) handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		gui.app.Stop()
		return nil
	}

	if gui.game.Over() {
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' {
			gui.restart()
			return nil
		}
		// Let the modal handle its buttons.
		return ev
	}

	if ev.Key() == tcell.KeyRune && ev.Rune() == 'p' {
		gui.clock.Toggle()
		gui.draw()
		return nil
	} else if gui.clock.IsPaused() {
		return nil
	}

	if a, ok := matchKeybinding(gui.keybindings, ev); ok {
		gui.game.Enqueue(a)
		return nil
	}

	return ev
}
