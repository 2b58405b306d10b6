// Package ledger is the local append-only record of swipe decisions. It is
// the idempotence source for the feed (never re-show a decided card) and the
// offline queue for pending match notifications.
//
// Every persistence failure is logged and absorbed: the ledger degrades to
// an empty state rather than surfacing storage errors to the caller. This is
// an availability-over-consistency choice appropriate for a client cache.
package ledger

import (
	"encoding/json"
	"log"
	"time"

	"github.com/buildrs/match-engine/internal/entity"
)

const (
	swipeHistoryKey    = "buildrs_swipe_history"
	matchQueueKey      = "buildrs_match_queue"
	userPreferencesKey = "buildrs_user_preferences"

	// maxEntries caps the history; the oldest entries are evicted first.
	maxEntries = 100
)

type Ledger struct {
	store Store
}

func New(store Store) *Ledger {
	return &Ledger{store: store}
}

// SaveSwipe assigns a local id and timestamp, appends the record and prunes
// the history down to the cap. Returns the stored record, or nil when
// persistence failed.
func (l *Ledger) SaveSwipe(swipe entity.Swipe) *entity.Swipe {
	history := l.SwipeHistory()

	swipe.ID = entity.NewID("local")
	swipe.CreatedAt = time.Now()
	history = append(history, swipe)

	if len(history) > maxEntries {
		history = history[len(history)-maxEntries:]
	}

	data, err := json.Marshal(history)
	if err != nil {
		log.Println("ledger: failed to serialize swipe history:", err)
		return nil
	}
	if err := l.store.Set(swipeHistoryKey, data); err != nil {
		log.Println("ledger: failed to save swipe:", err)
		return nil
	}

	return &swipe
}

// SwipeHistory returns every recorded swipe, oldest first. A missing or
// corrupt store yields an empty history.
func (l *Ledger) SwipeHistory() []entity.Swipe {
	data, err := l.store.Get(swipeHistoryKey)
	if err != nil {
		log.Println("ledger: failed to read swipe history:", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var history []entity.Swipe
	if err := json.Unmarshal(data, &history); err != nil {
		log.Println("ledger: corrupt swipe history, starting fresh:", err)
		return nil
	}
	return history
}

// HasSwipedOn reports whether an exact (swiper, swiped, type) triple was
// already recorded.
func (l *Ledger) HasSwipedOn(swiperID, swipedID string, swipeType entity.SwipeType) bool {
	for _, swipe := range l.SwipeHistory() {
		if swipe.SwiperID == swiperID && swipe.SwipedID == swipedID && swipe.SwipeType == swipeType {
			return true
		}
	}
	return false
}

// QueueMatch appends a pending match payload for later synchronization.
func (l *Ledger) QueueMatch(payload map[string]any) {
	queue := l.MatchQueue()

	entry := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		entry[k] = v
	}
	entry["queuedAt"] = time.Now().Format(time.RFC3339)
	queue = append(queue, entry)

	data, err := json.Marshal(queue)
	if err != nil {
		log.Println("ledger: failed to serialize match queue:", err)
		return
	}
	if err := l.store.Set(matchQueueKey, data); err != nil {
		log.Println("ledger: failed to queue match:", err)
	}
}

func (l *Ledger) MatchQueue() []map[string]any {
	data, err := l.store.Get(matchQueueKey)
	if err != nil {
		log.Println("ledger: failed to read match queue:", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var queue []map[string]any
	if err := json.Unmarshal(data, &queue); err != nil {
		log.Println("ledger: corrupt match queue, starting fresh:", err)
		return nil
	}
	return queue
}

func (l *Ledger) ClearMatchQueue() {
	if err := l.store.Delete(matchQueueKey); err != nil {
		log.Println("ledger: failed to clear match queue:", err)
	}
}

func (l *Ledger) SavePreferences(preferences map[string]any) {
	data, err := json.Marshal(preferences)
	if err != nil {
		log.Println("ledger: failed to serialize preferences:", err)
		return
	}
	if err := l.store.Set(userPreferencesKey, data); err != nil {
		log.Println("ledger: failed to save preferences:", err)
	}
}

func (l *Ledger) Preferences() map[string]any {
	data, err := l.store.Get(userPreferencesKey)
	if err != nil {
		log.Println("ledger: failed to read preferences:", err)
		return map[string]any{}
	}
	if len(data) == 0 {
		return map[string]any{}
	}

	var preferences map[string]any
	if err := json.Unmarshal(data, &preferences); err != nil {
		log.Println("ledger: corrupt preferences, starting fresh:", err)
		return map[string]any{}
	}
	return preferences
}
