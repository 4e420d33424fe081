package server

import (
	"fmt"
	"net"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestServer builds and starts a server on loopback ephemeral ports and
// registers shutdown as cleanup.
func startTestServer(t *testing.T) *Server {
	t.Helper()

	srv := newTestServer(t)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	t.Cleanup(func() { _ = srv.Shutdown(2 * time.Second) })
	return srv
}

// TestServerNegotiation walks the full wire handshake: the first client
// becomes coordinator, a duplicate identity is rejected with ID_EXISTS, and
// the retry succeeds and learns who coordinates.
func TestServerNegotiation(t *testing.T) {
	srv := startTestServer(t)

	alice := dialChat(t, srv.Addr())
	alice.send("alice")
	alice.expect("ID_ACCEPTED")
	alice.expect("COORDINATOR")
	alice.expect("STATUS:alice:online")
	joined := alice.readLine()
	assert.True(t, strings.HasPrefix(joined, "alice ["), "join line %q", joined)
	assert.True(t, strings.HasSuffix(joined, "has joined the chat (Coordinator)"), "join line %q", joined)

	bob := dialChat(t, srv.Addr())
	bob.send("alice")
	bob.expect("ID_EXISTS")
	bob.send("bob")
	bob.expect("ID_ACCEPTED")
	bob.expectEventually("coordinator info", func(line string) bool {
		return strings.HasPrefix(line, "The current coordinator is: alice [")
	})
}

// TestServerBroadcastReachesEveryone verifies a relayed line is delivered to
// all members, sender included.
func TestServerBroadcastReachesEveryone(t *testing.T) {
	srv := startTestServer(t)

	alice := dialChat(t, srv.Addr())
	alice.join("alice")
	bob := dialChat(t, srv.Addr())
	bob.join("bob")

	alice.send("alice: hello room")

	for _, c := range []*chatClient{alice, bob} {
		c.expectEventually("the broadcast", func(line string) bool {
			return line == "alice: hello room"
		})
	}
}

// TestServerReactionRelay verifies reaction lines are recorded and relayed
// verbatim to every member.
func TestServerReactionRelay(t *testing.T) {
	srv := startTestServer(t)

	alice := dialChat(t, srv.Addr())
	alice.join("alice")
	bob := dialChat(t, srv.Addr())
	bob.join("bob")

	bob.send("REACTION:7:thumbsup")

	for _, c := range []*chatClient{alice, bob} {
		c.expectEventually("the reaction", func(line string) bool {
			return line == "REACTION:7:thumbsup"
		})
	}
	assert.Equal(t, []string{"thumbsup"}, srv.reactions.Reactions("7"))
}

// TestServerCoordinatorFailover verifies the oldest remaining member inherits
// the role when the coordinator drops: privately notified itself, announced
// to everyone else.
func TestServerCoordinatorFailover(t *testing.T) {
	srv := startTestServer(t)

	alice := dialChat(t, srv.Addr())
	alice.join("alice")
	bob := dialChat(t, srv.Addr())
	bob.join("bob")
	carol := dialChat(t, srv.Addr())
	carol.join("carol")

	require.NoError(t, alice.conn.Close())

	bob.expectEventually("departure notice", func(line string) bool {
		return line == "alice has left the chat."
	})
	bob.expect("STATUS:alice:offline")
	bob.expect("You are now the coordinator.")

	carol.expectEventually("coordinator announcement", func(line string) bool {
		return line == "New coordinator is bob"
	})

	coordinator := srv.registry.Coordinator()
	require.NotNil(t, coordinator)
	assert.Equal(t, "bob", coordinator.Identity())
}

// TestServerPrivateMessageOverWire verifies the private envelope pair and
// that no third member overhears.
func TestServerPrivateMessageOverWire(t *testing.T) {
	srv := startTestServer(t)

	alice := dialChat(t, srv.Addr())
	alice.join("alice")
	bob := dialChat(t, srv.Addr())
	bob.join("bob")
	carol := dialChat(t, srv.Addr())
	carol.join("carol")

	alice.send("@bob the secret")

	bob.expectEventually("the private message", func(line string) bool {
		return line == "(Private) alice: the secret"
	})
	alice.expectEventually("the sender copy", func(line string) bool {
		return line == "(Private to bob) the secret"
	})

	// Carol must never see either envelope. Flush her stream up to a marker
	// broadcast that is ordered after the private delivery.
	carol.send("carol: marker")
	for {
		line := carol.readLine()
		assert.NotContains(t, line, "the secret", "private message leaked to a third member")
		if line == "carol: marker" {
			break
		}
	}
}

// TestServerEmptyRegistryReset verifies the last departure truncates history
// and shuts the server down.
func TestServerEmptyRegistryReset(t *testing.T) {
	srv := startTestServer(t)

	alice := dialChat(t, srv.Addr())
	alice.join("alice")
	alice.send("alice: persisted line")
	alice.expectEventually("the broadcast", func(line string) bool {
		return line == "alice: persisted line"
	})

	require.NoError(t, alice.conn.Close())

	select {
	case <-srv.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down after the last departure")
	}

	info, err := os.Stat(srv.cfg.HistoryFile)
	require.NoError(t, err)
	assert.Zero(t, info.Size(), "history must be truncated on empty registry")

	// The chat listener closes shortly after Done; new dials must start failing.
	deadline := time.Now().Add(2 * time.Second)
	for {
		conn, err := net.Dial("tcp", srv.Addr())
		if err != nil {
			break
		}
		_ = conn.Close()
		if time.Now().After(deadline) {
			t.Fatal("chat listener still accepting after shutdown")
		}
		time.Sleep(20 * time.Millisecond)
	}
}

// TestShutdownNoticeAfterDeparture verifies a session that departed and
// finished its teardown before shutdown is skipped by the notice delivery
// while remaining members still get it, and that the notice is not logged.
func TestShutdownNoticeAfterDeparture(t *testing.T) {
	srv := newTestServer(t)

	alice, _ := admitSession(t, srv, "alice")
	bob, _ := admitSession(t, srv, "bob")

	srv.registry.Depart(bob)
	close(bob.send)

	require.NotPanics(t, func() { _ = srv.Shutdown(time.Second) })
	assert.Contains(t, drainSession(alice), "Server is shutting down. You will be disconnected.")

	lines, err := srv.history.Lines()
	require.NoError(t, err)
	assert.NotContains(t, lines, "Server is shutting down. You will be disconnected.",
		"the shutdown notice is service traffic, not chat history")
}

// TestShutdownRacesSessionTeardown drives shutdown concurrently with sessions
// running their teardown, so the notice delivery contends with close(send).
// Any delivery outside the registry lock surfaces here as a
// send-on-closed-channel crash, most reliably under the race detector.
func TestShutdownRacesSessionTeardown(t *testing.T) {
	for i := 0; i < 10; i++ {
		srv := newTestServer(t)

		sessions := make([]*Session, 0, 6)
		for j := 0; j < 6; j++ {
			sess, _ := admitSession(t, srv, fmt.Sprintf("user%d", j))
			sessions = append(sessions, sess)
		}

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = srv.Shutdown(time.Second)
		}()
		for _, sess := range sessions {
			wg.Add(1)
			go func(s *Session) {
				defer wg.Done()
				s.teardown()
			}(sess)
		}
		wg.Wait()
	}
}

// TestServerShutdownNotifiesClients verifies connected clients receive the
// shutdown notice before being disconnected.
func TestServerShutdownNotifiesClients(t *testing.T) {
	srv := startTestServer(t)

	alice := dialChat(t, srv.Addr())
	alice.join("alice")

	go func() { _ = srv.Shutdown(2 * time.Second) }()

	alice.expectEventually("the shutdown notice", func(line string) bool {
		return line == "Server is shutting down. You will be disconnected."
	})
}
