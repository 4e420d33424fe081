package server

import (
	"bufio"
	"log/slog"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// newTestServer builds a server with a throwaway history file and generous
// rate limits so tests never trip the per-session limiter. The server is not
// started; tests that need live listeners call Start themselves.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := NewConfig()
	cfg.ListenAddr = "127.0.0.1:0"
	cfg.AdminAddr = "127.0.0.1:0"
	cfg.HistoryFile = filepath.Join(t.TempDir(), "chat_log.txt")
	cfg.RateLimit = RateLimitConfig{Burst: 1000, PerSecond: 1000}

	srv, err := NewServer(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("NewServer() failed: %v", err)
	}
	return srv
}

// fakeConn is an in-memory lineConn for unit tests that never touch a socket.
type fakeConn struct {
	incoming chan string
	closed   chan struct{}
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		incoming: make(chan string, 16),
		closed:   make(chan struct{}),
	}
}

func (c *fakeConn) ReadLine() (string, error) {
	select {
	case line := <-c.incoming:
		return line, nil
	case <-c.closed:
		return "", net.ErrClosed
	}
}

func (c *fakeConn) WriteLine(string) error { return nil }

func (c *fakeConn) Close() error {
	select {
	case <-c.closed:
	default:
		close(c.closed)
	}
	return nil
}

func (c *fakeConn) RemoteAddr() string { return "127.0.0.1:9999" }

// admitSession registers a session directly with the registry, bypassing the
// wire negotiation, and reports whether it became coordinator.
func admitSession(t *testing.T, srv *Server, identity string) (*Session, bool) {
	t.Helper()

	sess := NewSession(newFakeConn(), srv)
	isCoordinator, err := srv.registry.Admit(sess, identity)
	if err != nil {
		t.Fatalf("Admit(%q) failed: %v", identity, err)
	}
	sess.admitted = true
	return sess, isCoordinator
}

// drainSession empties the session's send buffer and returns the queued lines.
func drainSession(s *Session) []string {
	var lines []string
	for {
		select {
		case line := <-s.send:
			lines = append(lines, line)
		default:
			return lines
		}
	}
}

// chatClient is a loopback TCP client for integration tests.
type chatClient struct {
	t       *testing.T
	conn    net.Conn
	scanner *bufio.Scanner
}

func dialChat(t *testing.T, addr string) *chatClient {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial %s failed: %v", addr, err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return &chatClient{t: t, conn: conn, scanner: bufio.NewScanner(conn)}
}

func (c *chatClient) send(line string) {
	c.t.Helper()
	if _, err := c.conn.Write([]byte(line + "\n")); err != nil {
		c.t.Fatalf("send %q failed: %v", line, err)
	}
}

// readLine returns the next line from the server, failing the test after the
// deadline.
func (c *chatClient) readLine() string {
	c.t.Helper()

	_ = c.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if !c.scanner.Scan() {
		c.t.Fatalf("expected a line, got error: %v", c.scanner.Err())
	}
	return c.scanner.Text()
}

// expect fails unless the next line equals want.
func (c *chatClient) expect(want string) {
	c.t.Helper()
	if got := c.readLine(); got != want {
		c.t.Fatalf("expected line %q, got %q", want, got)
	}
}

// expectEventually reads lines until one satisfies the predicate, failing the
// test if none does within the read deadline budget.
func (c *chatClient) expectEventually(desc string, match func(string) bool) string {
	c.t.Helper()

	for i := 0; i < 50; i++ {
		line := c.readLine()
		if match(line) {
			return line
		}
	}
	c.t.Fatalf("never saw %s", desc)
	return ""
}

// join performs the negotiation handshake and swallows the join announcements
// addressed to this client, leaving the stream positioned after its own
// online status.
func (c *chatClient) join(identity string) {
	c.t.Helper()

	c.send(identity)
	c.expect("ID_ACCEPTED")
	c.expectEventually("own online status", func(line string) bool {
		return line == "STATUS:"+identity+":online"
	})
	c.expectEventually("own join line", func(line string) bool {
		return strings.HasPrefix(line, identity+" [") && strings.Contains(line, "has joined the chat")
	})
	// Trailing per-member statuses and coordinator info depend on room size;
	// individual tests consume them with expectEventually as needed.
}
