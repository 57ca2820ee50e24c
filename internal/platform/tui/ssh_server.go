package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/neontype/internal/config"
	"github.com/vovakirdan/neontype/internal/core"
	"github.com/vovakirdan/neontype/internal/storage"
)

// drainTimeout bounds how long shutdown waits for players to disconnect.
const drainTimeout = 10 * time.Second

// SSHServerConfig configures `neontype serve`.
type SSHServerConfig struct {
	Address     string        // host:port, e.g. ":23234"
	HostKeyPath string        // Empty means ~/.neontype/host_key, generated on first run
	DBPath      string        // Shared history of every player on this server
	IdleTimeout time.Duration // Disconnects players who stop typing

	// Base game config; each player picks pack and difficulty in the menu,
	// starting from Difficulty.
	Game       config.GameConfig
	Difficulty config.DifficultyPreset
	TickRate   int
}

// DefaultSSHServerConfig returns the serve defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      storage.DefaultPath,
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultGameConfig(),
		Difficulty:  config.DifficultyNormal,
		TickRate:    60,
	}
}

// SSHServer gives every connecting player a private Neon Type session.
// Players share only the history store.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	logger  *log.Logger
	players atomic.Int64
}

// resolveHostKey returns the host key location, creating its directory.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: no home directory for the host key: %w", err)
		}
		path = filepath.Join(home, ".neontype", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: cannot create host key directory: %w", err)
	}
	return path, nil
}

// NewSSHServer prepares the server; ListenAndServe starts it.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	hostKey, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{
		config: cfg,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "neontype-ssh",
		}),
	}

	// Players can still play without a history
	if store, err := storage.Open(cfg.DBPath); err != nil {
		srv.logger.Warn("history disabled", "db", cfg.DBPath, "error", err)
	} else {
		srv.store = store
	}

	// Middleware runs last to first: terminal check, then player log, then the game.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKey),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.newPlayer),
			srv.trackPlayer,
			activeterm.Middleware(),
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// newPlayer builds the session model for one connection, sized to its PTY.
func (s *SSHServer) newPlayer(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()

	model := NewSessionModel(s.store, SessionOptions{
		Config:     s.config.Game,
		Difficulty: s.config.Difficulty,
		Runtime: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: s.config.TickRate,
			Seed:     time.Now().UnixNano(),
		},
		Logger: s.logger.With("player", sess.User()),
	})
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// trackPlayer logs joins and leaves with the number of players online.
func (s *SSHServer) trackPlayer(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		joined := time.Now()
		online := s.players.Add(1)
		s.logger.Info("player joined", "player", sess.User(), "remote", sess.RemoteAddr(), "online", online)

		next(sess)

		online = s.players.Add(-1)
		s.logger.Info("player left", "player", sess.User(), "played", time.Since(joined).Round(time.Second), "online", online)
	}
}

// Players returns the number of connected players.
func (s *SSHServer) Players() int64 {
	return s.players.Load()
}

// ListenAndServe serves until SIGINT/SIGTERM or a listener failure,
// then drains the connected players.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	failed := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			failed <- err
		}
	}()
	s.logger.Info("serving", "address", s.config.Address)

	var serveErr error
	select {
	case <-ctx.Done():
		s.logger.Info("stopping", "online", s.Players())
	case serveErr = <-failed:
		s.logger.Error("listener failed", "error", serveErr)
	}

	if err := s.Shutdown(); err != nil && serveErr == nil {
		return err
	}
	return serveErr
}

// Shutdown waits up to drainTimeout for players, then closes the history.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing history", "error", err)
	}
	s.store = nil
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
