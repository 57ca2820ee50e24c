package game

// maxPendingEvents bounds the queue when nobody drains it.
const maxPendingEvents = 256

// EventKind identifies something that happened during a tick or input.
type EventKind int

const (
	EventWordCompleted EventKind = iota
	EventWordLost
	EventTypo
	EventPowerUpCollected
	EventPowerUpActivated
	EventPowerUpExpired
	EventGameOver
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventWordCompleted:
		return "word_completed"
	case EventWordLost:
		return "word_lost"
	case EventTypo:
		return "typo"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventPowerUpActivated:
		return "powerup_activated"
	case EventPowerUpExpired:
		return "powerup_expired"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a notable simulation outcome for the platform layer.
type Event struct {
	Kind    EventKind
	WordID  int64
	Word    string
	PowerUp PowerUpKind
	Points  int // Score delta, negative for penalties
	Score   int // Score after the event
}

// emit queues an event, dropping the oldest when the queue is full.
func (g *Game) emit(e Event) {
	e.Score = g.score
	if len(g.events) >= maxPendingEvents {
		g.events = g.events[1:]
	}
	g.events = append(g.events, e)
}

// Events returns and clears the queued events.
func (g *Game) Events() []Event {
	g.mu.Lock()
	defer g.mu.Unlock()

	events := g.events
	g.events = nil
	return events
}
