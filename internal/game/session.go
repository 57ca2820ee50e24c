package game

import "time"

// transitions lists the legal session moves.
var transitions = map[Status][]Status{
	StatusReady:                      {StatusTransitioningToGame},
	StatusTransitioningToGame:        {StatusStarting},
	StatusStarting:                   {StatusPlaying},
	StatusPlaying:                    {StatusGameOver, StatusReturningToMenuFromPlaying, StatusRestarting},
	StatusGameOver:                   {StatusReturningToMenu, StatusRestarting},
	StatusReturningToMenuFromPlaying: {StatusReady},
	StatusReturningToMenu:            {StatusReady},
	StatusRestarting:                 {StatusTransitioningToGame},
}

// CanTransition reports whether the session may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// pendingTransition is a delayed move to another status.
// The deadline is armed on the first frame after scheduling, so every
// delay is measured on frame timestamps.
type pendingTransition struct {
	target   Status
	delay    time.Duration
	deadline time.Time
	armed    bool
}

// Session is the screen-level state machine.
type Session struct {
	status  Status
	pending *pendingTransition
}

// Status returns the current status.
func (s *Session) Status() Status {
	return s.status
}

// Pending returns the scheduled target, if any.
func (s *Session) Pending() (Status, bool) {
	if s.pending == nil {
		return 0, false
	}
	return s.pending.target, true
}

// Enter moves to a status immediately and cancels any pending move.
// Returns false if the move is not legal from the current status.
func (s *Session) Enter(to Status) bool {
	if !CanTransition(s.status, to) {
		return false
	}
	s.status = to
	s.pending = nil
	return true
}

// Schedule queues a move to target after delay.
// A later Schedule replaces an earlier one.
func (s *Session) Schedule(target Status, delay time.Duration) {
	s.pending = &pendingTransition{target: target, delay: delay}
}

// Reset returns to Ready with nothing pending.
func (s *Session) Reset() {
	s.status = StatusReady
	s.pending = nil
}

// Due arms a freshly scheduled move or reports that its deadline has passed.
// A due move is consumed; the caller enters the returned status.
func (s *Session) Due(now time.Time) (Status, bool) {
	p := s.pending
	if p == nil {
		return 0, false
	}
	if !p.armed {
		p.armed = true
		p.deadline = now.Add(p.delay)
	}
	if now.Before(p.deadline) {
		return 0, false
	}
	s.pending = nil
	return p.target, true
}
