package tui

// Key strings as reported by tea.KeyMsg.String().
const (
	keyQuit      = "q"
	keyInterrupt = "ctrl+c"
	keyEscape    = "esc"

	keyUp        = "k"
	keyUpArrow   = "up"
	keyDown      = "j"
	keyDownArrow = "down"

	keyPrevWeek = "["
	keyNextWeek = "]"

	keyToggle = " "
	keyStar   = "s"
	keyPin    = "p"
	keyClear  = "c"
	keyPull   = "P"
	keyReload = "r"

	keyConfirmYes = "y"
	keyConfirmNo  = "n"
)

// helpLine is the static key legend shown at the bottom of the board.
const helpLine = "j/k move · space toggle · s star · p pin · c clear · P pull prev week · [/] week · q quit"
