package server

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Router classifies each inbound line by fixed-prefix matching and dispatches
// it. Matching follows a strict priority; anything unmatched falls through to
// the default broadcast path. Malformed commands (too few fields for their
// prefix) are dropped silently.
type Router struct {
	registry  *Registry
	history   *HistoryLog
	reactions *ReactionStore
	messages  *MessageStore
	autoReply *AutoReplyEngine
	liveness  *LivenessScheduler
	metrics   *Metrics
	logger    *slog.Logger
}

// NewRouter wires a router to the shared relay services.
func NewRouter(
	registry *Registry,
	history *HistoryLog,
	reactions *ReactionStore,
	messages *MessageStore,
	autoReply *AutoReplyEngine,
	liveness *LivenessScheduler,
	metrics *Metrics,
	logger *slog.Logger,
) *Router {
	return &Router{
		registry:  registry,
		history:   history,
		reactions: reactions,
		messages:  messages,
		autoReply: autoReply,
		liveness:  liveness,
		metrics:   metrics,
		logger:    logger.With("component", "router"),
	}
}

// Dispatch routes one protocol line from the given session.
func (rt *Router) Dispatch(s *Session, line string) {
	if rt.metrics != nil {
		rt.metrics.LinesRelayed.Inc()
	}

	switch {
	case line == "ACTIVE_CHECK":
		rt.handleActiveCheck(s)
	case line == "REQUEST_MEMBER_LIST":
		s.enqueue(rt.registry.Roster())
	case strings.HasPrefix(line, "@"):
		rt.handlePrivateMessage(s, line)
	case strings.HasPrefix(line, "CHANGE_ID:"):
		rt.handleRename(s, strings.TrimSpace(strings.TrimPrefix(line, "CHANGE_ID:")))
	case strings.HasPrefix(line, "REACTION:"):
		rt.handleReaction(s, line)
	case strings.HasPrefix(line, "#"):
		if !rt.handleAutoReply(s, line) {
			rt.relay(line)
		}
	case strings.HasPrefix(line, "TYPING:"):
		rt.handleTyping(line)
	case strings.HasPrefix(line, "TYPING_END:"):
		rt.registry.Broadcast(line)
	case strings.HasPrefix(line, "EDIT_MESSAGE:"):
		rt.handleEdit(s, line)
	case strings.HasPrefix(line, "DELETE_MESSAGE:"):
		rt.handleDelete(s, line)
	case line == "REQUEST_CHAT_HISTORY":
		rt.handleHistoryRequest(s)
	default:
		rt.relay(line)
	}
}

// handleActiveCheck re-arms the liveness scheduler and runs an immediate
// probe. Only the coordinator may invoke it; everyone else gets a plain
// rejection reply, not a protocol error.
func (rt *Router) handleActiveCheck(s *Session) {
	if !rt.registry.IsCoordinator(s) {
		s.enqueue("Only the coordinator can request an active check.")
		return
	}

	rt.liveness.Rearm()
	rt.registry.ProbeMembers()
	s.enqueue(fmt.Sprintf("Active check restarted, next check in %d seconds.",
		int(rt.liveness.Interval().Seconds())))
}

// handlePrivateMessage delivers "@<identity> <text>" to its recipient only,
// confirming to the sender. No broadcast side effect.
func (rt *Router) handlePrivateMessage(s *Session, line string) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) < 2 {
		return
	}

	recipient := strings.TrimPrefix(parts[0], "@")
	if rt.registry.Unicast(recipient, "(Private) "+s.Identity()+": "+parts[1]) {
		s.enqueue("(Private to " + recipient + ") " + parts[1])
	} else {
		s.enqueue("User " + recipient + " not found.")
	}
}

// handleRename attempts the identity change. Success is announced to the
// room with a pair of status transitions; failure is reported to the caller
// only.
func (rt *Router) handleRename(s *Session, newIdentity string) {
	oldIdentity, err := rt.registry.Rename(s, newIdentity)
	if err != nil {
		s.enqueue("ID_EXISTS")
		return
	}

	rt.registry.Broadcast("User " + oldIdentity + " has changed their ID to " + newIdentity)
	s.enqueue("ID_ACCEPTED")
	rt.registry.Broadcast("STATUS:" + oldIdentity + ":offline")
	rt.registry.Broadcast("STATUS:" + newIdentity + ":online")
}

// handleReaction appends the reaction and rebroadcasts the line to everyone,
// including the sender.
func (rt *Router) handleReaction(s *Session, line string) {
	parts := strings.SplitN(line, ":", 3)
	if len(parts) < 3 {
		return
	}

	rt.reactions.Add(parts[1], parts[2])
	rt.registry.Broadcast(line)
}

// handleAutoReply answers a "#" query privately from the trigger table. A
// miss reports false so the raw line falls back to ordinary broadcast; that
// fallback is part of the protocol, not an oversight.
func (rt *Router) handleAutoReply(s *Session, line string) bool {
	reply, matched := rt.autoReply.Reply(strings.TrimPrefix(line, "#"))
	if !matched {
		return false
	}

	s.enqueue(reply)
	if rt.metrics != nil {
		rt.metrics.AutoReplies.Inc()
	}
	return true
}

// handleTyping normalizes a typing indicator and broadcasts it. Typing
// traffic is never written to history.
func (rt *Router) handleTyping(line string) {
	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return
	}
	rt.registry.Broadcast("TYPING:" + parts[1] + ":typing")
}

// handleEdit rewrites the first message record whose current text matches,
// then notifies everyone except the sender. No match, no notice.
func (rt *Router) handleEdit(s *Session, line string) {
	parts := strings.SplitN(line, ":", 3)
	if len(parts) < 3 {
		return
	}

	oldText := strings.TrimSpace(parts[1])
	newText := strings.TrimSpace(parts[2])
	if rt.messages.Edit(oldText, newText) {
		rt.registry.BroadcastExcept(s, "EDIT_MESSAGE:"+oldText+":"+newText)
	}
}

// handleDelete removes the first matching message record. The delete notice
// goes out to everyone except the sender whether or not a record matched.
func (rt *Router) handleDelete(s *Session, line string) {
	text := strings.TrimSpace(strings.TrimPrefix(line, "DELETE_MESSAGE:"))
	rt.messages.Delete(text)
	rt.registry.BroadcastExcept(s, "DELETE_MESSAGE:"+text)
}

// handleHistoryRequest returns the whole log to the requester in a single
// CHAT_HISTORY envelope. The request is neither broadcast nor logged.
func (rt *Router) handleHistoryRequest(s *Session) {
	lines, err := rt.history.Lines()
	if err != nil {
		rt.logger.Error("history read failed", "error", err)
		return
	}
	s.enqueue("CHAT_HISTORY:" + strings.Join(lines, "\n"))
}

// relay is the default path: record MESSAGE_ID-tagged lines, then broadcast
// the raw line verbatim to every member, including the sender.
func (rt *Router) relay(line string) {
	if strings.HasPrefix(line, "MESSAGE_ID:") {
		parts := strings.SplitN(line, ":", 3)
		if len(parts) == 3 {
			if id, err := strconv.Atoi(parts[1]); err == nil {
				rt.messages.Record(id, parts[2])
			}
		}
	}
	rt.registry.Broadcast(line)
}
