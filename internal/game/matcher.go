package game

import "strings"

// DecisionKind is the outcome of resolving a buffer change.
type DecisionKind int

const (
	DecideNone        DecisionKind = iota // Nothing to do
	DecideActivate                        // Buffer spells a held power-up's activation word
	DecideComplete                        // Buffer equals the locked word
	DecideTypo                            // Buffer grew and diverged from the locked word
	DecideRelease                         // Buffer emptied while locked
	DecideContinue                        // Buffer is a prefix of the locked word
	DecideWaitPowerUp                     // Buffer is a prefix of a held activation word
	DecideLock                            // Buffer selects a falling word
	DecideClear                           // Buffer matches nothing
)

// String returns the decision name.
func (k DecisionKind) String() string {
	switch k {
	case DecideNone:
		return "none"
	case DecideActivate:
		return "activate"
	case DecideComplete:
		return "complete"
	case DecideTypo:
		return "typo"
	case DecideRelease:
		return "release"
	case DecideContinue:
		return "continue"
	case DecideWaitPowerUp:
		return "wait_powerup"
	case DecideLock:
		return "lock"
	case DecideClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Decision is what the game should do with the current buffer.
type Decision struct {
	Kind    DecisionKind
	Rule    string      // Name of the table row that fired
	PowerUp PowerUpKind // For DecideActivate
	WordID  int64       // For DecideLock
}

// HeldPowerUp is an activation word the player can currently type.
type HeldPowerUp struct {
	Kind PowerUpKind
	Word string
}

// MatchContext is everything Resolve looks at.
type MatchContext struct {
	Buffer   string
	Previous string        // Buffer value before this change
	Locked   *Word         // nil when nothing is locked
	Falling  []Word        // In spawn order
	Held     []HeldPowerUp // In PowerUpOrder, count > 0 only
}

// grew reports whether the buffer got longer with this change.
func (c MatchContext) grew() bool {
	return len(c.Buffer) > len(c.Previous)
}

type rule struct {
	name  string
	match func(MatchContext) (Decision, bool)
}

// decisionTable is evaluated top to bottom; the first matching row wins.
var decisionTable = []rule{
	{"activation word typed", matchActivate},
	{"locked word finished", matchComplete},
	{"locked word diverged", matchTypo},
	{"buffer emptied", matchRelease},
	{"locked word in progress", matchContinue},
	{"activation word in progress", matchWaitPowerUp},
	{"falling word selected", matchLock},
	{"nothing matches", matchClear},
}

// Resolve applies the decision table to a buffer change.
func Resolve(ctx MatchContext) Decision {
	for _, r := range decisionTable {
		if d, ok := r.match(ctx); ok {
			d.Rule = r.name
			return d
		}
	}
	return Decision{Kind: DecideNone}
}

func matchActivate(ctx MatchContext) (Decision, bool) {
	if ctx.Buffer == "" {
		return Decision{}, false
	}
	for _, h := range ctx.Held {
		if h.Word == ctx.Buffer {
			return Decision{Kind: DecideActivate, PowerUp: h.Kind}, true
		}
	}
	return Decision{}, false
}

func matchComplete(ctx MatchContext) (Decision, bool) {
	if ctx.Locked == nil || ctx.Buffer != ctx.Locked.Text {
		return Decision{}, false
	}
	return Decision{Kind: DecideComplete, WordID: ctx.Locked.ID}, true
}

func matchTypo(ctx MatchContext) (Decision, bool) {
	if ctx.Locked == nil || strings.HasPrefix(ctx.Locked.Text, ctx.Buffer) || !ctx.grew() {
		return Decision{}, false
	}
	return Decision{Kind: DecideTypo, WordID: ctx.Locked.ID}, true
}

func matchRelease(ctx MatchContext) (Decision, bool) {
	if ctx.Locked == nil || ctx.Buffer != "" {
		return Decision{}, false
	}
	return Decision{Kind: DecideRelease, WordID: ctx.Locked.ID}, true
}

func matchContinue(ctx MatchContext) (Decision, bool) {
	if ctx.Locked == nil {
		return Decision{}, false
	}
	// Also covers a diverged buffer that shrank: the lock holds, no penalty.
	return Decision{Kind: DecideContinue, WordID: ctx.Locked.ID}, true
}

func matchWaitPowerUp(ctx MatchContext) (Decision, bool) {
	if ctx.Buffer == "" {
		return Decision{}, false
	}
	for _, h := range ctx.Held {
		if strings.HasPrefix(h.Word, ctx.Buffer) {
			return Decision{Kind: DecideWaitPowerUp, PowerUp: h.Kind}, true
		}
	}
	return Decision{}, false
}

func matchLock(ctx MatchContext) (Decision, bool) {
	if ctx.Buffer == "" {
		return Decision{}, false
	}
	for _, w := range ctx.Falling {
		if w.Status == WordFalling && strings.HasPrefix(w.Text, ctx.Buffer) {
			return Decision{Kind: DecideLock, WordID: w.ID}, true
		}
	}
	return Decision{}, false
}

func matchClear(ctx MatchContext) (Decision, bool) {
	if ctx.Buffer == "" {
		return Decision{}, false
	}
	return Decision{Kind: DecideClear}, true
}
