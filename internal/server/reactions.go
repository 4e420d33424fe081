package server

import "sync"

// ReactionStore maps a message identifier to the ordered list of reaction
// tokens attached to it. Lists only ever grow; duplicates are kept and
// nothing is removed for the lifetime of the server.
type ReactionStore struct {
	mu        sync.Mutex
	reactions map[string][]string
}

// NewReactionStore creates an empty reaction store.
func NewReactionStore() *ReactionStore {
	return &ReactionStore{
		reactions: make(map[string][]string),
	}
}

// Add appends a reaction token to the list for the given message identifier.
func (r *ReactionStore) Add(messageID, reaction string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reactions[messageID] = append(r.reactions[messageID], reaction)
}

// Reactions returns a copy of the reaction list for the given message
// identifier, in arrival order.
func (r *ReactionStore) Reactions(messageID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.reactions[messageID]...)
}
