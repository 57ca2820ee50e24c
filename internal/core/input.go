package core

// Action represents a control intent, abstracted from physical key presses.
// Typed letters are not actions: they travel as the full text buffer.
type Action int

const (
	ActionNone      Action = iota
	ActionConfirm          // Enter - start a game from the menu
	ActionRestart          // Ctrl+R while playing, R/Enter after game over
	ActionBack             // Esc - leave the board for the menu
	ActionQuit             // Ctrl+C - exit the program
	ActionHistory          // Tab - open the score history from the menu
	ActionPowerUp1         // 1 - activate first power-up slot
	ActionPowerUp2         // 2 - activate second power-up slot
	ActionPowerUp3         // 3 - activate third power-up slot
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionHistory:
		return "History"
	case ActionPowerUp1:
		return "PowerUp1"
	case ActionPowerUp2:
		return "PowerUp2"
	case ActionPowerUp3:
		return "PowerUp3"
	default:
		return "Unknown"
	}
}

// PowerUpSlot returns the zero-based slot index for a power-up action,
// or -1 for any other action.
func (a Action) PowerUpSlot() int {
	switch a {
	case ActionPowerUp1:
		return 0
	case ActionPowerUp2:
		return 1
	case ActionPowerUp3:
		return 2
	default:
		return -1
	}
}
