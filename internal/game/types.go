// Package game implements the typing arcade simulation: falling words,
// keystroke matching, power-ups, feedback effects and the session state machine.
// It contains no terminal code; the platform layer drives it with frame
// timestamps and text-buffer changes and reads back snapshots.
package game

import "time"

// referenceFrame normalizes movement to a ~60fps frame so the configured
// fall rate means the same thing at any frame rate.
const referenceFrame = 16 * time.Millisecond

// BoardHeight is the vertical extent of the board in percent.
// Words spawn at 0 and are lost at BoardHeight.
const BoardHeight = 100.0

// WordStatus is the lifecycle state of a word on the board.
type WordStatus int

const (
	WordFalling   WordStatus = iota // Moving down, accepts input
	WordCompleted                   // Typed out, lingering for its completion animation
)

// String returns the status name.
func (s WordStatus) String() string {
	switch s {
	case WordFalling:
		return "falling"
	case WordCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Word is a single falling token.
type Word struct {
	ID     int64
	Text   string
	Lane   int
	Y      float64 // 0 = spawn edge, 100 = danger edge
	Status WordStatus

	CompletedAt time.Duration // Game real-clock time of completion
}

// Status is the session state.
type Status int

const (
	StatusReady Status = iota
	StatusTransitioningToGame
	StatusStarting
	StatusPlaying
	StatusGameOver
	StatusReturningToMenuFromPlaying
	StatusReturningToMenu
	StatusRestarting
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusTransitioningToGame:
		return "transitioning"
	case StatusStarting:
		return "starting"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	case StatusReturningToMenuFromPlaying:
		return "returning_from_playing"
	case StatusReturningToMenu:
		return "returning"
	case StatusRestarting:
		return "restarting"
	default:
		return "unknown"
	}
}

// PowerUpKind identifies a power-up.
type PowerUpKind int

const (
	TimeWarp    PowerUpKind = iota // Slows simulated time
	ScoreSurge                     // Multiplies completion points
	SystemShock                    // Clears the board instantly
	PowerUpKindCount
)

// PowerUpOrder is the roulette and HUD slot order.
var PowerUpOrder = [PowerUpKindCount]PowerUpKind{TimeWarp, ScoreSurge, SystemShock}

// String returns the short name of the kind.
func (k PowerUpKind) String() string {
	switch k {
	case TimeWarp:
		return "time_warp"
	case ScoreSurge:
		return "score_surge"
	case SystemShock:
		return "system_shock"
	default:
		return "unknown"
	}
}

// Valid reports whether k names a real kind.
func (k PowerUpKind) Valid() bool {
	return k >= 0 && k < PowerUpKindCount
}

// Inventory holds collected power-up counts, indexed by kind.
type Inventory [PowerUpKindCount]int
