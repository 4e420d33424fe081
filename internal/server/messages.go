package server

import "sync"

// MessageStore tracks numeric message IDs against their current text, fed by
// MESSAGE_ID-tagged lines passing through the broadcast path. Edit and delete
// locate records by current text equality rather than by ID; when several
// records carry the same text the one with the lowest ID wins, which keeps
// the value-match contract deterministic.
type MessageStore struct {
	mu       sync.Mutex
	messages map[int]string
	order    []int
}

// NewMessageStore creates an empty message store.
func NewMessageStore() *MessageStore {
	return &MessageStore{
		messages: make(map[int]string),
	}
}

// Record stores or updates the text for a message ID.
func (m *MessageStore) Record(id int, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, seen := m.messages[id]; !seen {
		m.order = insertSorted(m.order, id)
	}
	m.messages[id] = text
}

func insertSorted(ids []int, id int) []int {
	at := len(ids)
	for i, existing := range ids {
		if id < existing {
			at = i
			break
		}
	}
	ids = append(ids, 0)
	copy(ids[at+1:], ids[at:])
	ids[at] = id
	return ids
}

// Edit replaces the text of the first record whose current text equals
// oldText. It reports whether a record was updated.
func (m *MessageStore) Edit(oldText, newText string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.order {
		if m.messages[id] == oldText {
			m.messages[id] = newText
			return true
		}
	}
	return false
}

// Delete removes the first record whose current text equals the given text.
// It reports whether a record was removed.
func (m *MessageStore) Delete(text string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, id := range m.order {
		if m.messages[id] == text {
			delete(m.messages, id)
			m.order = append(m.order[:i], m.order[i+1:]...)
			return true
		}
	}
	return false
}

// Text returns the current text for a message ID.
func (m *MessageStore) Text(id int) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	text, ok := m.messages[id]
	return text, ok
}
