package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tile-puzzles/internal/config"
	"github.com/vovakirdan/tile-puzzles/internal/core"
	"github.com/vovakirdan/tile-puzzles/internal/overworld"
	"github.com/vovakirdan/tile-puzzles/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address     string // host:port, e.g. ":23234"
	HostKeyPath string // Generated at ~/.puzzles/host_key when empty
	DBPath      string
	IdleTimeout time.Duration

	Puzzles config.PuzzlesConfig
	World   config.WorldConfig
}

// DefaultSSHServerConfig returns the defaults used by `puzzles serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.puzzles/solves.db",
		IdleTimeout: 30 * time.Minute,
		Puzzles:     config.DefaultPuzzlesConfig(),
		World:       config.DefaultWorldConfig(),
	}
}

// SSHServer hosts adventure mode over SSH. Every connection plays its own
// world; solves are attributed to the SSH user name.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger

	mu      sync.Mutex
	players map[string]*overworld.World // SSH session ID -> world
}

// NewSSHServer validates the world and prepares the listener. A missing
// solves database only disables history.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "puzzles-ssh",
	})

	if _, err := NewAdventureWorld(cfg.World); err != nil {
		return nil, fmt.Errorf("invalid world: %w", err)
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".puzzles", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("solve history disabled", "db", cfg.DBPath, "error", err)
		store = nil
	}

	srv := &SSHServer{
		config:  cfg,
		store:   store,
		logger:  logger,
		players: make(map[string]*overworld.World),
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.trackMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	srv.server = server
	return srv, nil
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "puzzles needs an interactive terminal, try: ssh -t")
		return nil, nil
	}

	user := sess.User()
	rc := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
		Seed:    time.Now().UnixNano(),
	}
	setup, err := NewSetup(s.config.Puzzles, rc, user)
	if err != nil {
		s.logger.Error("could not prepare puzzles", "user", user, "error", err)
		return nil, nil
	}
	world, err := NewAdventureWorld(s.config.World)
	if err != nil {
		s.logger.Error("could not build world", "user", user, "error", err)
		return nil, nil
	}

	s.mu.Lock()
	s.players[sess.Context().SessionID()] = world
	s.mu.Unlock()

	model := NewAdventureModel(setup, world, s.config.World.Progression, s.store, rc, s.logger.With("user", user))
	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

// trackMiddleware logs connects and disconnects with the player's progress.
func (s *SSHServer) trackMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		id := sess.Context().SessionID()
		s.logger.Info("player connected", "user", sess.User(), "remote", sess.RemoteAddr().String(), "online", s.Online()+1)

		next(sess)

		s.mu.Lock()
		world := s.players[id]
		delete(s.players, id)
		online := len(s.players)
		s.mu.Unlock()

		solved := 0
		if world != nil {
			solved = world.SolvedCount()
		}
		s.logger.Info("player left",
			"user", sess.User(),
			"solved", solved,
			"played", time.Since(start).Round(time.Second),
			"online", online,
		)
	}
}

// Online returns the number of players currently in a world.
func (s *SSHServer) Online() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}

// ListenAndServe serves until ctx is cancelled, then shuts down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down", "online", s.Online())
		return s.Shutdown()
	}
}

// Shutdown stops accepting players, waits for open sessions up to a timeout
// and closes the solves database.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
