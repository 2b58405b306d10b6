package ledger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/buildrs/match-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return New(store)
}

func TestSaveSwipeAssignsLocalID(t *testing.T) {
	l := newTestLedger(t)

	saved := l.SaveSwipe(entity.Swipe{
		SwiperID:  "user-1",
		SwipedID:  "profile-2",
		SwipeType: entity.SwipeTypeProfile,
		Direction: entity.DirectionRight,
	})

	require.NotNil(t, saved)
	assert.Contains(t, saved.ID, "local_")
	assert.False(t, saved.CreatedAt.IsZero())

	history := l.SwipeHistory()
	require.Len(t, history, 1)
	assert.Equal(t, saved.ID, history[0].ID)
}

func TestSwipeHistoryCap(t *testing.T) {
	l := newTestLedger(t)

	for i := 0; i < 101; i++ {
		saved := l.SaveSwipe(entity.Swipe{
			SwiperID:  "user-1",
			SwipedID:  fmt.Sprintf("profile-%d", i),
			SwipeType: entity.SwipeTypeProfile,
			Direction: entity.DirectionLeft,
		})
		require.NotNil(t, saved)
	}

	history := l.SwipeHistory()
	require.Len(t, history, 100)

	// Oldest entry is evicted first.
	assert.Equal(t, "profile-1", history[0].SwipedID)
	assert.Equal(t, "profile-100", history[99].SwipedID)
}

func TestHasSwipedOn(t *testing.T) {
	l := newTestLedger(t)

	l.SaveSwipe(entity.Swipe{
		SwiperID:  "user-1",
		SwipedID:  "profile-2",
		SwipeType: entity.SwipeTypeProfile,
		Direction: entity.DirectionRight,
	})

	assert.True(t, l.HasSwipedOn("user-1", "profile-2", entity.SwipeTypeProfile))
	assert.False(t, l.HasSwipedOn("user-1", "profile-2", entity.SwipeTypeProject))
	assert.False(t, l.HasSwipedOn("user-1", "profile-3", entity.SwipeTypeProfile))
	assert.False(t, l.HasSwipedOn("user-2", "profile-2", entity.SwipeTypeProfile))
}

func TestDuplicateSwipesAreNotRejected(t *testing.T) {
	l := newTestLedger(t)

	swipe := entity.Swipe{
		SwiperID:  "user-1",
		SwipedID:  "profile-2",
		SwipeType: entity.SwipeTypeProfile,
		Direction: entity.DirectionRight,
	}
	require.NotNil(t, l.SaveSwipe(swipe))
	require.NotNil(t, l.SaveSwipe(swipe))

	assert.Len(t, l.SwipeHistory(), 2)
}

func TestCorruptHistoryFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, swipeHistoryKey+".json"), []byte("{not json"), 0o600))

	l := New(store)
	assert.Empty(t, l.SwipeHistory())
	assert.False(t, l.HasSwipedOn("a", "b", entity.SwipeTypeProfile))

	// A fresh save replaces the corrupt blob.
	require.NotNil(t, l.SaveSwipe(entity.Swipe{SwiperID: "a", SwipedID: "b", SwipeType: entity.SwipeTypeProfile}))
	assert.Len(t, l.SwipeHistory(), 1)
}

func TestMatchQueue(t *testing.T) {
	l := newTestLedger(t)

	assert.Empty(t, l.MatchQueue())

	l.QueueMatch(map[string]any{"matchedWith": "profile-2"})
	l.QueueMatch(map[string]any{"matchedWith": "profile-3"})

	queue := l.MatchQueue()
	require.Len(t, queue, 2)
	assert.Equal(t, "profile-2", queue[0]["matchedWith"])
	assert.NotEmpty(t, queue[0]["queuedAt"])

	l.ClearMatchQueue()
	assert.Empty(t, l.MatchQueue())
}

func TestPreferences(t *testing.T) {
	l := newTestLedger(t)

	assert.Empty(t, l.Preferences())

	l.SavePreferences(map[string]any{"theme": "dark"})
	assert.Equal(t, "dark", l.Preferences()["theme"])
}

type failingStore struct{}

func (failingStore) Get(string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (failingStore) Set(string, []byte) error   { return errors.New("disk on fire") }
func (failingStore) Delete(string) error        { return errors.New("disk on fire") }

func TestStorageFailuresDegradeToEmpty(t *testing.T) {
	l := New(failingStore{})

	assert.Nil(t, l.SaveSwipe(entity.Swipe{SwiperID: "a", SwipedID: "b", SwipeType: entity.SwipeTypeProfile}))
	assert.Empty(t, l.SwipeHistory())
	assert.False(t, l.HasSwipedOn("a", "b", entity.SwipeTypeProfile))
	assert.Empty(t, l.MatchQueue())
	assert.Empty(t, l.Preferences())

	// None of these may panic or surface the error.
	l.QueueMatch(map[string]any{"x": 1})
	l.ClearMatchQueue()
	l.SavePreferences(map[string]any{"x": 1})
}
