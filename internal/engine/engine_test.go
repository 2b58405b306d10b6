package engine

import (
	"testing"

	"github.com/buildrs/match-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapConfig map[string]string

func (m mapConfig) Get(key string) string { return m[key] }

func TestNewWiresFileLedgerIntoScorer(t *testing.T) {
	eng, err := New(mapConfig{
		"API_BASE_URL": "http://localhost:8080",
		"CLIENT_ID":    "engine-test",
		"LEDGER_PATH":  t.TempDir(),
	})
	require.NoError(t, err)
	require.NotNil(t, eng.Client)

	user := entity.Profile{
		ID:              "profile-1",
		Skills:          []string{"Go", "React"},
		ExperienceLevel: entity.LevelAdvanced,
	}
	candidate := entity.Profile{
		ID:              "profile-2",
		Skills:          []string{"Go", "React"},
		ExperienceLevel: entity.LevelAdvanced,
	}
	card := entity.NewProfileCard(candidate)

	assert.True(t, eng.Scorer.ShouldShowCard(user, card))

	require.NotNil(t, eng.Ledger.SaveSwipe(entity.Swipe{
		SwiperID:  user.ID,
		SwipedID:  candidate.ID,
		SwipeType: entity.SwipeTypeProfile,
		Direction: entity.DirectionLeft,
	}))

	// The decision recorded through the ledger suppresses the card.
	assert.False(t, eng.Scorer.ShouldShowCard(user, card))
}

func TestNewDefaultsToFileBackend(t *testing.T) {
	eng, err := New(mapConfig{"LEDGER_PATH": t.TempDir()})
	require.NoError(t, err)
	assert.NotNil(t, eng.Ledger)
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	_, err := New(mapConfig{"LEDGER_BACKEND": "punchcards"})
	assert.Error(t, err)
}
