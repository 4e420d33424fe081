package server

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// isExpectedCloseError checks if an error is expected during connection closure.
func isExpectedCloseError(err error) bool {
	if err == nil {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "use of closed network connection") ||
		strings.Contains(errStr, "websocket: close sent") ||
		strings.Contains(errStr, "broken pipe")
}

// lineConn is the transport a session speaks over: newline-delimited text
// lines on TCP, or one text frame per line on the WebSocket bridge.
type lineConn interface {
	ReadLine() (string, error)
	WriteLine(line string) error
	Close() error
	RemoteAddr() string
}

// tcpLineConn adapts a raw stream connection to line-at-a-time reads.
type tcpLineConn struct {
	conn    net.Conn
	scanner *bufio.Scanner
}

func newTCPLineConn(conn net.Conn, maxLineBytes int) *tcpLineConn {
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 1024), maxLineBytes)
	return &tcpLineConn{conn: conn, scanner: scanner}
}

func (c *tcpLineConn) ReadLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", errors.New("connection closed")
	}
	return c.scanner.Text(), nil
}

func (c *tcpLineConn) WriteLine(line string) error {
	_, err := c.conn.Write([]byte(line + "\n"))
	return err
}

func (c *tcpLineConn) Close() error {
	return c.conn.Close()
}

func (c *tcpLineConn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

// Session is one client connection plus its negotiated identity. It is owned
// by the server until Admit succeeds, then by the registry until departure.
// The send channel is buffered so broadcast fan-out never blocks on a slow
// peer; a peer that falls a full buffer behind is forcibly disconnected.
type Session struct {
	conn    lineConn
	send    chan string
	server  *Server
	limiter *rate.Limiter
	logger  *slog.Logger

	idMu     sync.RWMutex
	identity string

	abortOnce sync.Once
	admitted  bool
}

// NewSession wraps a connection in a session ready to run its lifecycle.
func NewSession(conn lineConn, srv *Server) *Session {
	cfg := srv.cfg
	return &Session{
		conn:    conn,
		send:    make(chan string, 256),
		server:  srv,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst),
		logger:  srv.logger.With("component", "session", "remote", conn.RemoteAddr()),
	}
}

// Identity returns the session's current negotiated identity. Empty while
// negotiating.
func (s *Session) Identity() string {
	s.idMu.RLock()
	defer s.idMu.RUnlock()
	return s.identity
}

func (s *Session) setIdentity(identity string) {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	s.identity = identity
}

// RemoteAddr returns the peer address for rosters and join lines.
func (s *Session) RemoteAddr() string {
	return s.conn.RemoteAddr()
}

// enqueue hands a line to the write pump without blocking. A full buffer
// means the peer has stalled; the connection is aborted so the session runs
// its normal departure path.
func (s *Session) enqueue(line string) bool {
	select {
	case s.send <- line:
		return true
	default:
		s.logger.Warn("send buffer full, dropping session", "identity", s.Identity())
		go s.abort()
		return false
	}
}

// abort forcibly closes the transport. The blocked read loop then fails and
// the session tears down through the usual CLOSED path. Safe to call from
// any goroutine, any number of times.
func (s *Session) abort() {
	s.abortOnce.Do(func() {
		if err := s.conn.Close(); err != nil && !isExpectedCloseError(err) {
			s.logger.Error("error closing connection", "error", err)
		}
	})
}

// writePump drains the send channel onto the transport. It exits when the
// channel closes at teardown or when a write fails.
func (s *Session) writePump() {
	for line := range s.send {
		if err := s.conn.WriteLine(line); err != nil {
			if !isExpectedCloseError(err) {
				s.logger.Error("write failed", "error", err)
			}
			go s.abort()
			// Keep draining so teardown's close(send) never blocks a broadcaster.
			continue
		}
	}
	s.abort()
}

// run drives the session state machine: NEGOTIATING until an identity is
// accepted, ACTIVE while the read loop feeds the router, CLOSED on any read
// failure or server shutdown.
func (s *Session) run() {
	defer s.teardown()

	if !s.negotiate() {
		return
	}

	for {
		line, err := s.conn.ReadLine()
		if err != nil {
			s.logger.Info("session disconnected", "identity", s.Identity())
			return
		}
		if !s.limiter.Allow() {
			s.logger.Warn("rate limit exceeded, discarding line", "identity", s.Identity())
			continue
		}
		s.server.router.Dispatch(s, line)
	}
}

// negotiate reads candidate identities until one is accepted. Rejected
// candidates get ID_EXISTS and the loop continues; the loop is unbounded and
// only ends with acceptance or connection closure.
func (s *Session) negotiate() bool {
	for {
		candidate, err := s.conn.ReadLine()
		if err != nil {
			return false
		}

		isCoordinator, admitErr := s.server.registry.Admit(s, candidate)
		if errors.Is(admitErr, ErrIdentityTaken) {
			s.enqueue("ID_EXISTS")
			continue
		}
		if admitErr != nil {
			s.logger.Error("admission failed", "error", admitErr)
			return false
		}

		s.admitted = true
		s.enqueue("ID_ACCEPTED")
		if isCoordinator {
			s.enqueue("COORDINATOR")
		}
		s.logger.Info("session admitted", "identity", candidate, "coordinator", isCoordinator)
		s.server.registry.AnnounceJoin(s, isCoordinator)
		return true
	}
}

// teardown runs the CLOSED path: remove from the registry (which announces
// the departure and reassigns the coordinator), then release the transport.
// When the registry empties out, the server truncates history and stops.
func (s *Session) teardown() {
	if s.admitted {
		if removed, empty := s.server.registry.Depart(s); removed && empty {
			s.server.onRegistryEmpty()
		}
	}
	close(s.send)
}
