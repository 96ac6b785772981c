package app

// Action is what a key press does.
type Action int

const (
	NoAction Action = iota
	TogglePlayback
	ToggleFullscreen
	ToggleStats
	TogglePanel
)

// KeyMap maps key codes to actions.
var KeyMap = map[int]Action{
	32:  TogglePlayback,   // Space
	70:  ToggleFullscreen, // F
	72:  TogglePanel,      // H
	121: ToggleStats,      // F10
}

// KeyAction returns the action bound to keyCode.
func KeyAction(keyCode int) Action {
	return KeyMap[keyCode]
}
