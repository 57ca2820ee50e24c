package game

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neontype/internal/config"
	"github.com/vovakirdan/neontype/internal/core"
)

// Option configures a Game.
type Option func(*Game)

// WithRNG sets the randomness source.
func WithRNG(r RNG) Option {
	return func(g *Game) { g.rng = r }
}

// WithIDs sets the identifier source.
func WithIDs(ids IDSource) Option {
	return func(g *Game) { g.ids = ids }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithPackID records which word pack is in play.
func WithPackID(id string) Option {
	return func(g *Game) { g.packID = id }
}

// WithSeed seeds the default RNG.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = NewSimpleRNG(seed) }
}

// Game is the whole simulation. All methods are safe for concurrent use;
// each one runs as a single critical section.
type Game struct {
	mu sync.Mutex

	cfg        config.GameConfig
	difficulty *config.Difficulty
	pack       []string
	packID     string
	rng        RNG
	ids        IDSource
	logger     *log.Logger

	session    Session
	clock      *Clock
	running    bool // Frame loop live; only while Playing
	population Population
	powerUps   *PowerUps
	effects    *Effects

	buffer     string
	prevBuffer string
	activeID   int64
	score      int
	lives      int
	speed      float64

	now               time.Duration // Real time played
	elapsed           time.Duration // Game time, slowed by Time Warp
	sinceSpawn        time.Duration
	firstSpawnAt      time.Duration
	firstSpawnPending bool

	events []Event
}

// New creates a game in the Ready state.
func New(cfg config.GameConfig, pack []string, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficulty(cfg),
		pack:       append([]string(nil), pack...),
		clock:      NewClock(config.Ms(cfg.Board.MaxFrameDeltaMs)),
		powerUps:   NewPowerUps(cfg.PowerUps),
		effects: NewEffects(
			cfg.Effects.ParticlesPerWord,
			cfg.Effects.ParticleFade,
			config.Ms(cfg.Effects.PopupMs),
			config.Ms(cfg.Effects.NotificationMs),
		),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewSimpleRNG(time.Now().UnixNano())
	}
	if g.ids == nil {
		g.ids = &CounterIDs{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.session.Reset()
	g.resetState()
	return g
}

// resetState clears everything a run accumulates.
func (g *Game) resetState() {
	g.stopLoop()
	g.population.Reset()
	g.powerUps.Reset()
	g.effects.Reset()
	g.clearInput()
	g.score = 0
	g.lives = g.cfg.Board.InitialLives
	g.speed = g.difficulty.InitialSpeed()
	g.now = 0
	g.elapsed = 0
	g.sinceSpawn = 0
}

func (g *Game) clearInput() {
	g.buffer = ""
	g.prevBuffer = ""
	g.activeID = 0
}

// startLoop rebases the frame clock and schedules the first word.
func (g *Game) startLoop() {
	g.clock.Reset()
	g.running = true
	g.sinceSpawn = 0
	g.firstSpawnAt = g.now + config.Ms(g.cfg.Spawn.FirstDelayMs)
	g.firstSpawnPending = true
}

// stopLoop halts the frame loop; nothing moves until the next startLoop.
func (g *Game) stopLoop() {
	g.running = false
	g.firstSpawnPending = false
}

// Update advances the game to the frame timestamp now.
// Session timers always run; the simulation only runs while Playing.
func (g *Game) Update(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if target, ok := g.session.Due(now); ok {
		g.enter(target)
	}

	if g.session.Status() != StatusPlaying || !g.running {
		return
	}
	delta, ok := g.clock.Tick(now)
	if !ok {
		return
	}
	g.step(delta)
}

// enter performs the side effects of arriving at a scheduled status.
func (g *Game) enter(target Status) {
	switch target {
	case StatusReady:
		if g.session.Enter(StatusReady) {
			g.resetState()
			g.logger.Debug("session ready")
		}
	case StatusTransitioningToGame:
		g.beginRun()
	case StatusStarting:
		if g.session.Enter(StatusStarting) {
			g.session.Schedule(StatusPlaying, config.Ms(g.cfg.Session.StartTransitionMs))
		}
	case StatusPlaying:
		if g.session.Enter(StatusPlaying) {
			g.startLoop()
			g.logger.Debug("playing", "pack", g.packID)
		}
	}
}

func (g *Game) beginRun() bool {
	if !g.session.Enter(StatusTransitioningToGame) {
		return false
	}
	g.resetState()
	g.session.Schedule(StatusStarting, config.Ms(g.cfg.Session.EnterTransitionMs))
	g.logger.Info("run started", "pack", g.packID, "words", len(g.pack))
	return true
}

// step runs one simulation tick with a clamped real-time delta.
func (g *Game) step(delta time.Duration) {
	g.now += delta
	effective := scaleDuration(delta, g.powerUps.TimeScale())
	g.elapsed += effective
	g.speed = g.difficulty.Speed(g.elapsed)

	for _, kind := range g.powerUps.Tick(delta) {
		g.emit(Event{Kind: EventPowerUpExpired, PowerUp: kind})
	}

	dy := g.cfg.Board.BaseFallRate * g.speed * (float64(effective) / float64(referenceFrame))
	for _, w := range g.population.Advance(dy) {
		g.loseWord(w)
	}
	g.population.Sweep(g.now, config.Ms(g.cfg.Effects.CompletionGraceMs))
	g.effects.Tick(g.now)

	if g.lives <= 0 {
		g.gameOver()
		return
	}

	if g.firstSpawnPending {
		if g.now >= g.firstSpawnAt {
			g.firstSpawnPending = false
			g.sinceSpawn = 0
			g.spawn()
		}
		return
	}

	g.sinceSpawn += effective
	if g.sinceSpawn > g.difficulty.SpawnInterval(g.elapsed, g.speed) {
		g.sinceSpawn = 0
		g.spawn()
	}
}

func (g *Game) spawn() {
	w, ok := g.population.Spawn(g.pack, g.powerUps.ReservedLetters(), g.cfg.Board.Lanes, g.rng, g.ids)
	if !ok {
		g.logger.Debug("spawn skipped, no candidate words")
		return
	}
	g.logger.Debug("spawn", "word", w.Text, "lane", w.Lane)
}

func (g *Game) loseWord(w Word) {
	if g.lives > 0 {
		g.lives--
	}
	if w.ID == g.activeID {
		g.clearInput()
	}
	g.emit(Event{Kind: EventWordLost, WordID: w.ID, Word: w.Text})
	g.logger.Debug("word lost", "word", w.Text, "lives", g.lives)
}

func (g *Game) gameOver() {
	g.stopLoop()
	g.clearInput()
	g.session.Enter(StatusGameOver)
	g.emit(Event{Kind: EventGameOver, Score: g.score})
	g.logger.Info("game over", "score", g.score, "pack", g.packID)
}

// SetInput delivers the full current value of the text buffer.
// Ignored outside Playing, where the buffer is kept empty.
func (g *Game) SetInput(value string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Status() != StatusPlaying {
		g.clearInput()
		return
	}

	value = strings.ToLower(value)
	if value == g.buffer {
		return
	}
	g.prevBuffer = g.buffer
	g.buffer = value
	g.resolve()
}

// resolve runs the decision table for the current buffer.
// A fresh lock is resolved once more so a fully typed word completes at once.
func (g *Game) resolve() {
	d := Resolve(g.matchContext())
	g.apply(d)
	if d.Kind == DecideLock {
		g.prevBuffer = g.buffer
		g.apply(Resolve(g.matchContext()))
	}
}

func (g *Game) matchContext() MatchContext {
	ctx := MatchContext{
		Buffer:   g.buffer,
		Previous: g.prevBuffer,
		Falling:  g.population.Falling(),
		Held:     g.powerUps.Held(),
	}
	if w, ok := g.population.Get(g.activeID); ok && w.Status == WordFalling {
		ctx.Locked = &w
	} else {
		g.activeID = 0
	}
	return ctx
}

func (g *Game) apply(d Decision) {
	if d.Kind != DecideNone {
		g.logger.Debug("input", "buffer", g.buffer, "decision", d.Kind, "rule", d.Rule)
	}

	switch d.Kind {
	case DecideActivate:
		g.activate(d.PowerUp)
		g.clearInput()
	case DecideComplete:
		g.complete(d.WordID)
	case DecideTypo:
		g.typo(d.WordID)
	case DecideRelease:
		g.activeID = 0
	case DecideLock:
		g.activeID = d.WordID
	case DecideClear:
		g.buffer = ""
	}
}

// boardPosition returns the lane centre and height of a word in board percent.
func (g *Game) boardPosition(w Word) (x, y float64) {
	laneWidth := 100.0 / float64(g.cfg.Board.Lanes)
	return float64(w.Lane)*laneWidth + laneWidth/2, w.Y
}

func (g *Game) complete(id int64) {
	w, ok := g.population.Complete(id, g.now)
	if !ok {
		return
	}

	points := len(w.Text) * g.cfg.Scoring.PointsPerLetter * g.powerUps.ScoreMultiplier()
	g.score += points

	x, y := g.boardPosition(w)
	g.effects.Popup(fmt.Sprintf("+%d", points), x, y, core.ColorBrightGreen, g.now, g.ids)
	g.effects.Burst(x, y, g.rng, g.ids)
	g.clearInput()
	g.emit(Event{Kind: EventWordCompleted, WordID: w.ID, Word: w.Text, Points: points})

	if kind, ok := g.powerUps.Roll(g.rng.Float64()); ok {
		spec := g.powerUps.Spec(kind)
		g.effects.Notify(kind, fmt.Sprintf("%s collected! Type %q", spec.Name, spec.Word), g.now, g.ids)
		g.emit(Event{Kind: EventPowerUpCollected, PowerUp: kind})
		g.logger.Debug("power-up collected", "kind", kind)
	}
}

func (g *Game) typo(id int64) {
	w, ok := g.population.Get(id)
	if !ok {
		return
	}

	before := g.score
	g.score = core.Max(0, g.score-g.cfg.Scoring.TypoPenalty)

	x, y := g.boardPosition(w)
	g.effects.Popup(fmt.Sprintf("-%d", g.cfg.Scoring.TypoPenalty), x, y, core.ColorBrightRed, g.now, g.ids)
	g.emit(Event{Kind: EventTypo, WordID: w.ID, Word: w.Text, Points: g.score - before})
}

// activate consumes one power-up and applies it.
func (g *Game) activate(kind PowerUpKind) bool {
	if !g.powerUps.Consume(kind) {
		return false
	}

	if kind == SystemShock {
		bonus := 0
		for _, w := range g.population.ClearFalling() {
			x, y := g.boardPosition(w)
			g.effects.Burst(x, y, g.rng, g.ids)
			bonus += len(w.Text)
		}
		g.score += bonus
		g.clearInput()
		g.emit(Event{Kind: EventPowerUpActivated, PowerUp: kind, Points: bonus})
	} else {
		g.emit(Event{Kind: EventPowerUpActivated, PowerUp: kind})
	}

	g.logger.Info("power-up activated", "kind", kind, "left", g.powerUps.Count(kind))
	return true
}

// Activate uses a held power-up directly, without typing its word.
// Returns false outside Playing or when none is held.
func (g *Game) Activate(kind PowerUpKind) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Status() != StatusPlaying {
		return false
	}
	if !g.activate(kind) {
		return false
	}
	// The held set changed; a buffer waiting on this word may now lock or clear.
	g.prevBuffer = g.buffer
	g.resolve()
	return true
}

// Start begins a run from Ready.
func (g *Game) Start() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.beginRun()
}

// Restart leaves the board and starts a new run after the exit transition.
func (g *Game) Restart() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.leave(StatusRestarting, StatusTransitioningToGame)
}

// ReturnToMenu leaves the game-over screen for Ready.
func (g *Game) ReturnToMenu() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.session.Status() != StatusGameOver {
		return false
	}
	return g.leave(StatusReturningToMenu, StatusReady)
}

// ReturnToMenuFromPlaying abandons the current run for Ready.
func (g *Game) ReturnToMenuFromPlaying() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.session.Status() != StatusPlaying {
		return false
	}
	return g.leave(StatusReturningToMenuFromPlaying, StatusReady)
}

// leave tears the loop down and schedules the exit transition.
func (g *Game) leave(via, target Status) bool {
	if !g.session.Enter(via) {
		return false
	}
	g.stopLoop()
	g.clearInput()
	g.session.Schedule(target, config.Ms(g.cfg.Session.ExitTransitionMs))
	g.logger.Debug("leaving board", "via", via, "to", target)
	return true
}

// Reset returns to Ready immediately, dropping any pending transition.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.session.Reset()
	g.resetState()
}

// HandleAction applies a session-level action. Returns true if it did something.
func (g *Game) HandleAction(a core.Action) bool {
	switch a {
	case core.ActionConfirm:
		switch g.Status() {
		case StatusReady:
			return g.Start()
		case StatusGameOver:
			return g.Restart()
		}
	case core.ActionRestart:
		return g.Restart()
	case core.ActionBack:
		switch g.Status() {
		case StatusPlaying:
			return g.ReturnToMenuFromPlaying()
		case StatusGameOver:
			return g.ReturnToMenu()
		}
	case core.ActionPowerUp1, core.ActionPowerUp2, core.ActionPowerUp3:
		slot := a.PowerUpSlot()
		if slot >= 0 && slot < len(PowerUpOrder) {
			return g.Activate(PowerUpOrder[slot])
		}
	}
	return false
}

// Status returns the session status.
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Status()
}

// Buffer returns the typed buffer as the game sees it.
func (g *Game) Buffer() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.buffer
}

// Score returns the current score.
func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lives
}

// PackID returns the word pack in play.
func (g *Game) PackID() string {
	return g.packID
}
