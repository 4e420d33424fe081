package server

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// ErrIdentityTaken reports that an identity is already reserved by a current
// member. It is resolved in-protocol with an ID_EXISTS reply, never treated
// as a connection fault.
var ErrIdentityTaken = errors.New("identity already in use")

// Registry is the source of truth for membership. Sessions are keyed by
// identity, so the key set doubles as the global reserved-identity set and
// admission reserves the identity atomically with insertion. The registry
// also holds the coordinator reference: it is non-nil exactly while the
// registry is non-empty and always points at a current member.
//
// All mutation and every broadcast run under one mutex, which gives each
// broadcast a consistent membership snapshot and serializes the whole system
// at the broadcast boundary. Deliveries enqueue onto buffered session
// channels; the history append also runs inside the critical section so the
// log order always matches delivery order.
type Registry struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	order       []*Session // admission order; handover picks the oldest member
	coordinator *Session

	history *HistoryLog
	metrics *Metrics
	logger  *slog.Logger
}

// NewRegistry creates an empty registry writing relayed lines to the given
// history log.
func NewRegistry(history *HistoryLog, metrics *Metrics, logger *slog.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		history:  history,
		metrics:  metrics,
		logger:   logger.With("component", "registry"),
	}
}

// Admit reserves the candidate identity and inserts the session in one
// atomic step. The first admission while no coordinator exists makes the
// session coordinator; the returned flag reports that. A reserved identity
// yields ErrIdentityTaken and leaves the session outside the registry.
func (r *Registry) Admit(s *Session, identity string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.sessions[identity]; taken {
		return false, ErrIdentityTaken
	}

	s.setIdentity(identity)
	r.sessions[identity] = s
	r.order = append(r.order, s)
	if r.metrics != nil {
		r.metrics.ActiveSessions.Inc()
	}

	if r.coordinator == nil {
		r.coordinator = s
		return true, nil
	}
	return false, nil
}

// AnnounceJoin emits the join sequence for a freshly admitted session: the
// online status and join line to everyone, the current member statuses to the
// newcomer, and the coordinator identity when the newcomer is not it.
func (r *Registry) AnnounceJoin(s *Session, isCoordinator bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := s.Identity()
	r.broadcastLocked("STATUS:" + id + ":online")

	joined := fmt.Sprintf("%s [%s] has joined the chat", id, s.RemoteAddr())
	if isCoordinator {
		joined += " (Coordinator)"
	}
	r.broadcastLocked(joined)

	for _, member := range r.order {
		if member != s {
			s.enqueue("STATUS:" + member.Identity() + ":online")
		}
	}
	s.enqueue("STATUS:" + id + ":online")

	if !isCoordinator && r.coordinator != nil {
		s.enqueue(fmt.Sprintf("The current coordinator is: %s [%s]",
			r.coordinator.Identity(), r.coordinator.RemoteAddr()))
	}
}

// Rename atomically re-reserves the session's identity. On success the old
// identity is released and the previous value returned; on failure the old
// identity stays bound and ErrIdentityTaken is reported.
func (r *Registry) Rename(s *Session, newIdentity string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.sessions[newIdentity]; taken {
		return "", ErrIdentityTaken
	}

	oldIdentity := s.Identity()
	if _, member := r.sessions[oldIdentity]; !member {
		return "", fmt.Errorf("session %q is not a registry member", oldIdentity)
	}

	delete(r.sessions, oldIdentity)
	s.setIdentity(newIdentity)
	r.sessions[newIdentity] = s
	return oldIdentity, nil
}

// Depart removes the session, announces the departure, and reassigns the
// coordinator when needed, all in one critical section so no observer can see
// a non-empty registry without a coordinator. It reports whether the session
// was a member and whether the registry is now empty; the caller owns the
// empty-registry consequences (history truncation, server stop).
func (r *Registry) Depart(s *Session) (removed, empty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := s.Identity()
	if current, member := r.sessions[id]; !member || current != s {
		return false, len(r.sessions) == 0
	}

	delete(r.sessions, id)
	for i, member := range r.order {
		if member == s {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.metrics != nil {
		r.metrics.ActiveSessions.Dec()
	}

	r.broadcastLocked(id + " has left the chat.")
	r.broadcastLocked("STATUS:" + id + ":offline")

	if r.coordinator == s {
		if len(r.order) > 0 {
			next := r.order[0]
			r.coordinator = next
			next.enqueue("You are now the coordinator.")
			r.broadcastExceptLocked(next, "New coordinator is "+next.Identity())
			r.logger.Info("coordinator reassigned", "identity", next.Identity())
		} else {
			r.coordinator = nil
		}
	}

	return true, len(r.sessions) == 0
}

// Broadcast delivers a line to every member, including its sender, and
// records it in the history log.
func (r *Registry) Broadcast(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.broadcastLocked(line)
}

// BroadcastExcept delivers a line to every member other than the excluded
// session and records it in the history log.
func (r *Registry) BroadcastExcept(exclude *Session, line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.broadcastExceptLocked(exclude, line)
}

func (r *Registry) broadcastLocked(line string) {
	r.broadcastExceptLocked(nil, line)
}

func (r *Registry) broadcastExceptLocked(exclude *Session, line string) {
	r.history.appendBestEffort(line)
	for _, member := range r.order {
		if member == exclude {
			continue
		}
		if member.enqueue(line) && r.metrics != nil {
			r.metrics.BroadcastsDelivered.Inc()
		}
	}
}

// NotifyAll delivers a service notice to every member without recording it in
// history. Membership check and enqueue happen under the same lock as Depart,
// so a concurrently departing session is either notified before its teardown
// closes the send channel or skipped entirely, never enqueued after.
func (r *Registry) NotifyAll(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, member := range r.order {
		member.enqueue(line)
	}
}

// Unicast delivers a line to the member with the given identity, reporting
// whether such a member exists.
func (r *Registry) Unicast(identity, line string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	member, ok := r.sessions[identity]
	if !ok {
		return false
	}
	member.enqueue(line)
	return true
}

// IsCoordinator reports whether the session currently holds the coordinator
// role.
func (r *Registry) IsCoordinator(s *Session) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.coordinator == s
}

// Coordinator returns the current coordinator session, or nil while the
// registry is empty.
func (r *Registry) Coordinator() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.coordinator
}

// ProbeMembers sends the liveness notice to the coordinator and the advisory
// probe to every other member. It reports whether a coordinator existed to
// probe on behalf of.
func (r *Registry) ProbeMembers() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.coordinator == nil {
		return false
	}

	r.coordinator.enqueue("Checking active members...")
	for _, member := range r.order {
		if member != r.coordinator {
			member.enqueue("Still Active?")
		}
	}
	return true
}

// Roster builds the member list envelope: one line per member with identity,
// remote address, and the coordinator marker.
func (r *Registry) Roster() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var roster strings.Builder
	roster.WriteString("Active Members:\n")
	for _, member := range r.order {
		roster.WriteString(member.Identity())
		roster.WriteString(" - ")
		roster.WriteString(member.RemoteAddr())
		if member == r.coordinator {
			roster.WriteString(" (Coordinator)")
		}
		roster.WriteString("\n")
	}
	return strings.TrimSuffix(roster.String(), "\n")
}

// Len returns the number of current members.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Snapshot returns the current members in admission order.
func (r *Registry) Snapshot() []*Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Session(nil), r.order...)
}
