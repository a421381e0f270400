package tui

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/pondhop/pondhop/internal/config"
	"github.com/pondhop/pondhop/internal/game"
	"github.com/pondhop/pondhop/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.pondhop/host_key.
	HostKeyPath string

	// DBPath is the path to the completions database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.pondhop/pondhop.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves the game over SSH via Wish. Every connection gets its
// own engine and game state; completions land in the shared store.
type SSHServer struct {
	config  SSHServerConfig
	appCfg  config.Config
	catalog game.Catalog
	server  *ssh.Server
	store   *storage.Store
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server over the given level catalog.
func NewSSHServer(cfg SSHServerConfig, appCfg config.Config, catalog game.Catalog) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pondhop",
	})

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		hostKeyPath = filepath.Join(home, ".pondhop", "host_key")
	}

	// Sessions still work without the store; completions just aren't kept.
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("completions database unavailable", "err", err)
		store = nil
	}

	s := &SSHServer{
		config:  cfg,
		appCfg:  appCfg,
		catalog: catalog,
		store:   store,
		logger:  logger,
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, err
	}

	s.server = server
	return s, nil
}

// teaHandler builds a fresh game model for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, active := sess.Pty()
	if !active {
		s.logger.Info("rejecting session without a PTY", "user", sess.User())
		return nil, nil
	}

	s.logger.Info("session started",
		"user", sess.User(),
		"remote", sess.RemoteAddr().String(),
		"size", pty.Window)

	engine := game.NewEngine(s.catalog, s.appCfg.Rules.LeapDistance)
	model := NewModel(engine, 0, s.store, s.appCfg.Theme, pty.Window.Width, pty.Window.Height)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// ListenAndServe starts the server and blocks until interrupted.
func (s *SSHServer) ListenAndServe() error {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.config.Address)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.cleanup()
		return err
	case <-done:
		s.logger.Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer s.cleanup()

	if err := s.server.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *SSHServer) cleanup() {
	if s.store != nil {
		s.store.Close()
	}
}
