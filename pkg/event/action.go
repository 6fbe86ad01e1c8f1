package event

type GameAction int

const (
	ActionUnknown GameAction = iota
	ActionRotateCCW
	ActionRotateCW
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionClearLines
)

var actionNames = map[GameAction]string{
	ActionRotateCCW:  "rotate-ccw",
	ActionRotateCW:   "rotate-cw",
	ActionMoveLeft:   "move-left",
	ActionMoveRight:  "move-right",
	ActionSoftDrop:   "soft-drop",
	ActionHardDrop:   "hard-drop",
	ActionClearLines: "clear-lines",
}

func (a GameAction) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction returns the action with the given name, as used in config
// files.
func ParseAction(name string) (GameAction, bool) {
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionUnknown, false
}

// Actions returns every known action.
func Actions() []GameAction {
	return []GameAction{ActionRotateCCW, ActionRotateCW, ActionMoveLeft, ActionMoveRight, ActionSoftDrop, ActionHardDrop, ActionClearLines}
}
