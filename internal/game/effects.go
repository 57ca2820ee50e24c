package game

import (
	"math"
	"time"

	"github.com/vovakirdan/neontype/internal/core"
)

// particlePalette holds the burst colors.
var particlePalette = []core.Color{core.ColorBrightCyan, core.ColorElectricBlue, core.ColorBrightWhite}

// Particle is one fragment of a completion burst. Positions are board percent.
type Particle struct {
	ID      int64
	X, Y    float64
	VX, VY  float64
	Size    float64
	Opacity float64
	Color   core.Color
}

// ScorePopup is a floating "+N" / "-N" label.
type ScorePopup struct {
	ID        int64
	Text      string
	X, Y      float64
	Color     core.Color
	ExpiresAt time.Duration
}

// Notification announces a collected power-up.
type Notification struct {
	ID        int64
	Kind      PowerUpKind
	Text      string
	ExpiresAt time.Duration
}

// Effects holds the display-only feedback entries.
// Expiry times are on the game's real clock and swept by Tick;
// nothing here is read back by the simulation.
type Effects struct {
	particlesPerWord int
	fade             float64
	popupTTL         time.Duration
	notificationTTL  time.Duration

	particles     []Particle
	popups        []ScorePopup
	notifications []Notification
}

// NewEffects creates an emitter with the given sizes and lifetimes.
func NewEffects(particlesPerWord int, fade float64, popupTTL, notificationTTL time.Duration) *Effects {
	return &Effects{
		particlesPerWord: particlesPerWord,
		fade:             fade,
		popupTTL:         popupTTL,
		notificationTTL:  notificationTTL,
	}
}

// Reset drops every entry.
func (e *Effects) Reset() {
	e.particles = e.particles[:0]
	e.popups = e.popups[:0]
	e.notifications = e.notifications[:0]
}

// Burst emits a ring of particles centred on (x, y).
func (e *Effects) Burst(x, y float64, rng RNG, ids IDSource) {
	n := e.particlesPerWord
	for i := 0; i < n; i++ {
		angle := float64(i)/float64(n)*2*math.Pi + (rng.Float64()-0.5)*0.5
		velocity := rng.Float64()*3 + 2
		e.particles = append(e.particles, Particle{
			ID:      ids.Next(),
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * velocity * 0.25,
			VY:      math.Sin(angle) * velocity * 0.25,
			Size:    rng.Float64()*4 + 2,
			Opacity: 1,
			Color:   particlePalette[rng.Intn(len(particlePalette))],
		})
	}
}

// Popup shows a score label at (x, y) until now+TTL.
func (e *Effects) Popup(text string, x, y float64, c core.Color, now time.Duration, ids IDSource) {
	e.popups = append(e.popups, ScorePopup{
		ID:        ids.Next(),
		Text:      text,
		X:         x,
		Y:         y,
		Color:     c,
		ExpiresAt: now + e.popupTTL,
	})
}

// Notify announces a power-up until now+TTL.
func (e *Effects) Notify(kind PowerUpKind, text string, now time.Duration, ids IDSource) {
	e.notifications = append(e.notifications, Notification{
		ID:        ids.Next(),
		Kind:      kind,
		Text:      text,
		ExpiresAt: now + e.notificationTTL,
	})
}

// Tick advances particles by one step and sweeps expired entries.
func (e *Effects) Tick(now time.Duration) {
	particles := e.particles[:0]
	for _, p := range e.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Opacity -= e.fade
		if p.Opacity <= 0 {
			continue
		}
		particles = append(particles, p)
	}
	e.particles = particles

	popups := e.popups[:0]
	for _, p := range e.popups {
		if now < p.ExpiresAt {
			popups = append(popups, p)
		}
	}
	e.popups = popups

	notes := e.notifications[:0]
	for _, n := range e.notifications {
		if now < n.ExpiresAt {
			notes = append(notes, n)
		}
	}
	e.notifications = notes
}

// Particles returns a copy of the live particles.
func (e *Effects) Particles() []Particle {
	out := make([]Particle, len(e.particles))
	copy(out, e.particles)
	return out
}

// Popups returns a copy of the live popups.
func (e *Effects) Popups() []ScorePopup {
	out := make([]ScorePopup, len(e.popups))
	copy(out, e.popups)
	return out
}

// Notifications returns a copy of the live notifications.
func (e *Effects) Notifications() []Notification {
	out := make([]Notification, len(e.notifications))
	copy(out, e.notifications)
	return out
}
