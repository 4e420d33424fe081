package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMessageStoreValueMatch verifies edit and delete locate records by
// current text, lowest ID first when texts collide.
func TestMessageStoreValueMatch(t *testing.T) {
	store := NewMessageStore()
	store.Record(3, "dup")
	store.Record(1, "dup")
	store.Record(2, "unique")

	require.True(t, store.Edit("dup", "changed"))
	text, _ := store.Text(1)
	assert.Equal(t, "changed", text, "the lowest ID must be edited first")
	text, _ = store.Text(3)
	assert.Equal(t, "dup", text)

	require.True(t, store.Delete("dup"))
	_, ok := store.Text(3)
	assert.False(t, ok)

	assert.False(t, store.Edit("absent", "x"))
	assert.False(t, store.Delete("absent"))
}

// TestMessageStoreEditFollowsCurrentText verifies an edited record is found
// by its new text afterwards, not the original.
func TestMessageStoreEditFollowsCurrentText(t *testing.T) {
	store := NewMessageStore()
	store.Record(1, "first")

	require.True(t, store.Edit("first", "second"))
	assert.False(t, store.Edit("first", "third"), "the old text must no longer match")
	assert.True(t, store.Edit("second", "third"))
}

// TestMessageStoreRecordUpdates verifies re-recording an ID replaces its
// text without duplicating the entry.
func TestMessageStoreRecordUpdates(t *testing.T) {
	store := NewMessageStore()
	store.Record(1, "old")
	store.Record(1, "new")

	assert.False(t, store.Delete("old"))
	assert.True(t, store.Delete("new"))
	assert.False(t, store.Delete("new"))
}

// TestReactionStoreMonotonicity verifies reaction lists only ever grow, in
// arrival order, duplicates kept.
func TestReactionStoreMonotonicity(t *testing.T) {
	store := NewReactionStore()

	store.Add("1", "👍")
	store.Add("1", "👍")
	store.Add("1", "🎉")
	store.Add("2", "❤️")

	assert.Equal(t, []string{"👍", "👍", "🎉"}, store.Reactions("1"))
	assert.Equal(t, []string{"❤️"}, store.Reactions("2"))
	assert.Empty(t, store.Reactions("3"))
}
