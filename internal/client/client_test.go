package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/buildrs/match-engine/internal/entity"
	"github.com/buildrs/match-engine/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		assert.Equal(t, "XMLHttpRequest", r.Header.Get("X-Requested-With"))
		json.NewEncoder(w).Encode(entity.HealthStatus{Status: "healthy", Timestamp: "2026-01-01T00:00:00Z"})
	}))
	defer server.Close()

	c := New(server.URL, "test-client", nil, nil)
	resp := c.HealthCheck(context.Background())

	assert.True(t, resp.Success)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "healthy", resp.Data.Status)
}

func TestRecordSwipe(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/swipes", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		json.NewEncoder(w).Encode(entity.SwipeResult{Matched: true, MatchID: "match-1"})
	}))
	defer server.Close()

	c := New(server.URL, "test-client", nil, nil)
	resp := c.RecordSwipe(context.Background(), "user-1", "profile-2", entity.SwipeTypeProfile, entity.DirectionRight)

	require.True(t, resp.Success)
	assert.True(t, resp.Data.Matched)
	assert.Equal(t, "match-1", resp.Data.MatchID)
	assert.Equal(t, "user-1", received["swiperId"])
	assert.Equal(t, "right", received["direction"])
}

func TestRecordSwipeValidation(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	c := New(server.URL, "test-client", nil, nil)

	resp := c.RecordSwipe(context.Background(), "", "profile-2", entity.SwipeTypeProfile, entity.DirectionRight)
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "Invalid user IDs", resp.Error)

	resp = c.RecordSwipe(context.Background(), "user-1", "profile-2", "planet", entity.DirectionRight)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid swipe parameters", resp.Error)

	resp = c.RecordSwipe(context.Background(), "user-1", "profile-2", entity.SwipeTypeProfile, "up")
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid swipe parameters", resp.Error)

	// Validation failures short-circuit before any network call.
	assert.Equal(t, 0, requests)
}

func TestRateLimitShortCircuits(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode(entity.HealthStatus{Status: "healthy"})
	}))
	defer server.Close()

	c := New(server.URL, "test-client", nil, ratelimit.NewLimiter(1, time.Minute))

	assert.True(t, c.HealthCheck(context.Background()).Success)

	resp := c.HealthCheck(context.Background())
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusTooManyRequests, resp.Status)
	assert.Contains(t, resp.Error, "Rate limit exceeded")
	assert.Equal(t, 1, requests)
}

func TestBodySanitizedBeforeTransmission(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		json.NewEncoder(w).Encode(entity.Profile{ID: "profile-1"})
	}))
	defer server.Close()

	c := New(server.URL, "test-client", nil, nil)
	resp := c.UpdateProfile(context.Background(), "user-1", map[string]any{
		"bio":    `<img src=x onerror=alert(1)>`,
		"secret": "should be dropped",
	})

	require.True(t, resp.Success)
	bio, _ := received["bio"].(string)
	assert.NotContains(t, bio, "onerror")
	assert.NotContains(t, bio, "<")
	assert.NotContains(t, received, "secret")
}

func TestServerErrorMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "match not found"})
	}))
	defer server.Close()

	c := New(server.URL, "test-client", nil, nil)
	resp := c.Matches(context.Background(), "user-1")

	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "match not found", resp.Error)
}

func TestServerErrorWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := New(server.URL, "test-client", nil, nil)
	resp := c.HealthCheck(context.Background())

	assert.False(t, resp.Success)
	assert.Equal(t, "HTTP 502", resp.Error)
}

func TestInvalidResponseFormat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer server.Close()

	c := New(server.URL, "test-client", nil, nil)
	resp := c.HealthCheck(context.Background())

	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid response format", resp.Error)
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestTimeoutMapsToStatusZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(entity.HealthStatus{Status: "healthy"})
	}))
	defer server.Close()

	c := New(server.URL, "test-client", nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	resp := c.HealthCheck(ctx)
	assert.False(t, resp.Success)
	assert.Equal(t, 0, resp.Status)
	assert.Equal(t, "timeout", resp.Error)
}

func TestNetworkErrorMapsToStatusZero(t *testing.T) {
	// Nothing listens here.
	c := New("http://127.0.0.1:1", "test-client", nil, nil)

	resp := c.HealthCheck(context.Background())
	assert.False(t, resp.Success)
	assert.Equal(t, 0, resp.Status)
	assert.NotEmpty(t, resp.Error)
}

func TestPersonalizedCardsValidation(t *testing.T) {
	c := New("http://example.invalid", "test-client", nil, nil)

	resp := c.PersonalizedCards(context.Background(), "user-1", "galaxy", 20)
	assert.Equal(t, "Invalid card type", resp.Error)

	resp = c.PersonalizedCards(context.Background(), "user-1", CardTypeMixed, 0)
	assert.Contains(t, resp.Error, "Invalid limit")

	resp = c.PersonalizedCards(context.Background(), "user-1", CardTypeMixed, 101)
	assert.Contains(t, resp.Error, "Invalid limit")
}

func TestPersonalizedCards(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/swipes/cards", r.URL.Path)
		assert.Equal(t, "user-1", r.URL.Query().Get("userId"))
		assert.Equal(t, "mixed", r.URL.Query().Get("type"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode([]entity.SwipeCard{
			entity.NewProfileCard(entity.Profile{ID: "profile-2"}),
			entity.NewProjectCard(entity.Project{ID: "project-1"}),
		})
	}))
	defer server.Close()

	c := New(server.URL, "test-client", nil, nil)
	resp := c.PersonalizedCards(context.Background(), "user-1", CardTypeMixed, 5)

	require.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, entity.SwipeTypeProfile, resp.Data[0].Type)
	assert.NotNil(t, resp.Data[0].Profile)
	assert.Equal(t, entity.SwipeTypeProject, resp.Data[1].Type)
	assert.NotNil(t, resp.Data[1].Project)
}

func TestUpdateMatchStatusValidation(t *testing.T) {
	c := New("http://example.invalid", "test-client", nil, nil)

	resp := c.UpdateMatchStatus(context.Background(), "match-1", entity.MatchExpired)
	assert.Equal(t, "Invalid status", resp.Error)

	resp = c.UpdateMatchStatus(context.Background(), "", entity.MatchAccepted)
	assert.Equal(t, "Invalid match ID", resp.Error)
}

func TestAuthTokenForwarded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(entity.Profile{ID: "profile-1"})
	}))
	defer server.Close()

	c := New(server.URL, "test-client", nil, nil)
	c.SetAuthToken("token-123")

	resp := c.Profile(context.Background(), "user-1")
	assert.True(t, resp.Success)
}

func TestRecommendationsValidation(t *testing.T) {
	c := New("http://example.invalid", "test-client", nil, nil)

	resp := c.Recommendations(context.Background(), "user-1", "everything")
	assert.Equal(t, "Invalid recommendation type", resp.Error)
}
