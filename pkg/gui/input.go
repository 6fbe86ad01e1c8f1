package gui

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/event"
)

type Keybinding struct {
	k tcell.Key
	r rune
	m tcell.ModMask

	a event.GameAction
}

// DefaultKeybindings maps q/e to rotation, a/d to movement, s and space to
// soft and hard drop and c to clearing complete lines. Arrow and vim keys
// work as well.
var DefaultKeybindings = []*Keybinding{
	{r: 'q', a: event.ActionRotateCCW},
	{r: 'z', a: event.ActionRotateCCW},
	{r: 'e', a: event.ActionRotateCW},
	{r: 'x', a: event.ActionRotateCW},
	{r: 'a', a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'd', a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 's', a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: ' ', a: event.ActionHardDrop},
	{r: 'k', a: event.ActionHardDrop},
	{k: tcell.KeyUp, a: event.ActionHardDrop},
	{r: 'c', a: event.ActionClearLines},
}

func (b *Keybinding) Action() event.GameAction {
	return b.a
}

func (b *Keybinding) String() string {
	if b.k != 0 {
		if name, ok := tcell.KeyNames[b.k]; ok {
			return name
		}
		return fmt.Sprintf("Key(%d)", b.k)
	} else if b.r == ' ' {
		return "space"
	}
	return string(b.r)
}

func (b *Keybinding) matches(ev *tcell.EventKey) bool {
	if (b.k != 0 && b.k != ev.Key()) || (b.r != 0 && b.r != ev.Rune()) || (b.m != 0 && b.m != ev.Modifiers()) {
		return false
	}
	// Rune bindings only match rune events.
	return b.r == 0 || ev.Key() == tcell.KeyRune
}

func matchKeybinding(bindings []*Keybinding, ev *tcell.EventKey) (event.GameAction, bool) {
	for _, bind := range bindings {
		if bind.matches(ev) {
			return bind.a, true
		}
	}
	return event.ActionUnknown, false
}

// ParseKey parses a single character, "space" or a tcell key name such as
// "Left" or "Ctrl-A".
func ParseKey(name string) (tcell.Key, rune, error) {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return 0, r, nil
	} else if strings.EqualFold(name, "space") {
		return 0, ' ', nil
	}

	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, 0, nil
		}
	}

	return 0, 0, fmt.Errorf("unknown key %q", name)
}

// ParseKeybindings builds a keybinding list from action names mapped to key
// names. Actions that are not configured keep their default keys.
func ParseKeybindings(config map[string][]string) ([]*Keybinding, error) {
	configured := make(map[event.GameAction]bool)
	var bindings []*Keybinding

	names := make([]string, 0, len(config))
	for name := range config {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		a, ok := event.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		configured[a] = true

		for _, key := range config[name] {
			k, r, err := ParseKey(key)
			if err != nil {
				return nil, fmt.Errorf("failed to parse keybinding for %s: %w", name, err)
			}

			bindings = append(bindings, &Keybinding{k: k, r: r, a: a})
		}
	}

	for _, bind := range DefaultKeybindings {
		if !configured[bind.a] {
			bindings = append(bindings, bind)
		}
	}

	return bindings, nil
}

// describeKeybindings returns one line per action listing its keys.
func describeKeybindings(bindings []*Keybinding) []string {
	keys := make(map[event.GameAction][]string)
	for _, bind := range bindings {
		keys[bind.a] = append(keys[bind.a], bind.String())
	}

	var lines []string
	for _, a := range event.Actions() {
		if len(keys[a]) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-11s %s", a, strings.Join(keys[a], " ")))
	}

	return lines
}
