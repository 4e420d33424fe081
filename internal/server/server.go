package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

// Server owns the shared relay services and the two listeners: the TCP chat
// listener and the admin HTTP surface. All state is per-instance, so
// independent servers can run side by side in one process.
type Server struct {
	cfg    Config
	logger *slog.Logger

	metrics   *Metrics
	history   *HistoryLog
	reactions *ReactionStore
	messages  *MessageStore
	registry  *Registry
	liveness  *LivenessScheduler
	router    *Router

	allowedOrigins  map[string]struct{}
	allowAllOrigins bool

	listener net.Listener
	admin    *http.Server

	wg       sync.WaitGroup
	stopOnce sync.Once
	done     chan struct{}
}

// NewServer builds a relay from the given configuration. The trigger table is
// loaded once here: the built-in rules by default, or the configured YAML
// file, whose parse errors are fatal.
func NewServer(cfg *Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	conf := cfg.sanitize()

	rules := DefaultTriggerRules()
	if conf.TriggersFile != "" {
		loaded, err := LoadTriggerRules(conf.TriggersFile)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}
	autoReply, err := NewAutoReplyEngine(rules)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:       conf,
		logger:    logger,
		metrics:   NewMetrics(),
		reactions: NewReactionStore(),
		messages:  NewMessageStore(),
		done:      make(chan struct{}),
	}
	s.history = NewHistoryLog(conf.HistoryFile, logger, s.metrics)
	s.registry = NewRegistry(s.history, s.metrics, logger)
	s.liveness = NewLivenessScheduler(conf.LivenessInterval, s.registry, logger)
	s.router = NewRouter(s.registry, s.history, s.reactions, s.messages,
		autoReply, s.liveness, s.metrics, logger)
	s.allowedOrigins, s.allowAllOrigins = normalizeOrigins(conf.AllowedOrigins)

	return s, nil
}

// Registry exposes the membership registry, mainly for tests and the admin
// surface.
func (s *Server) Registry() *Registry {
	return s.registry
}

// Addr returns the bound chat listener address. Useful when configured with
// port 0.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.cfg.ListenAddr
	}
	return s.listener.Addr().String()
}

// Done is closed once shutdown has been initiated.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Start binds the chat listener, arms the liveness scheduler, starts the
// admin HTTP server, and begins accepting connections. A bind failure is
// fatal: the operator must supply a different port.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("bind chat listener on %s: %w", s.cfg.ListenAddr, err)
	}
	s.listener = listener
	s.logger.Info("chat listener started", "addr", listener.Addr().String())

	s.liveness.Start()

	s.admin = newAdminServer(s.cfg.AdminAddr, s.AdminRouter())
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.admin.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("admin server failed", "error", err)
		}
	}()

	s.wg.Add(1)
	go s.acceptLoop()
	return nil
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.done:
			default:
				if !isExpectedCloseError(err) {
					s.logger.Error("accept failed", "error", err)
				}
			}
			return
		}
		s.startSession(newTCPLineConn(conn, s.cfg.MaxLineBytes))
	}
}

// startSession launches the write pump and read loop for a new connection on
// either transport.
func (s *Server) startSession(conn lineConn) {
	sess := NewSession(conn, s)
	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		sess.writePump()
	}()
	go func() {
		defer s.wg.Done()
		sess.run()
	}()
}

// onRegistryEmpty runs when the last session departs: the history artifact is
// reset and the server stops accepting. Shutdown runs on its own goroutine
// because the caller is a departing session that still has to finish its own
// teardown.
func (s *Server) onRegistryEmpty() {
	s.logger.Info("all sessions have disconnected, stopping server")
	if err := s.history.Truncate(); err != nil {
		s.logger.Error("history truncate failed", "error", err)
	}
	go func() {
		_ = s.Shutdown(5 * time.Second)
	}()
}

// Shutdown notifies connected clients, closes both listeners, force-closes
// remaining sessions, and waits for all goroutines up to the timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.stopOnce.Do(func() {
		close(s.done)

		s.registry.NotifyAll("Server is shutting down. You will be disconnected.")
		// Give write pumps a moment to flush the notice.
		time.Sleep(200 * time.Millisecond)

		s.liveness.Stop()

		if s.listener != nil {
			if err := s.listener.Close(); err != nil && !isExpectedCloseError(err) {
				s.logger.Error("error closing chat listener", "error", err)
			}
		}

		if s.admin != nil {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			if err := s.admin.Shutdown(ctx); err != nil {
				s.logger.Error("admin server shutdown error", "error", err)
			}
		}

		for _, sess := range s.registry.Snapshot() {
			sess.abort()
		}
	})

	finished := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		s.logger.Info("server shutdown completed")
		return nil
	case <-time.After(timeout):
		s.logger.Warn("server shutdown timeout reached, some goroutines may still be running")
		return context.DeadlineExceeded
	}
}
