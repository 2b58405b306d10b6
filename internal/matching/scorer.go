// Package matching ranks swipe cards against a profile with a weighted
// multi-factor compatibility score.
package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/buildrs/match-engine/internal/entity"
)

// MinCompatibility is the score floor below which a card is not shown.
const MinCompatibility = 30

// Component weights. They sum to 100; each component is independently capped
// at its weight before summing.
const (
	skillsWeight       = 40.0
	experienceWeight   = 20.0
	locationWeight     = 15.0
	projectTypesWeight = 15.0
	availabilityWeight = 10.0
)

// History answers whether a card was already decided. The client engine
// passes the local swipe ledger; the server passes a set loaded from the
// swipes table.
type History interface {
	HasSwipedOn(swiperID, swipedID string, swipeType entity.SwipeType) bool
}

// SwipedSet is an in-memory History for callers that already hold the
// decided IDs, keyed by "<type>:<swipedID>".
type SwipedSet map[string]bool

func (s SwipedSet) Add(swipedID string, swipeType entity.SwipeType) {
	s[string(swipeType)+":"+swipedID] = true
}

func (s SwipedSet) HasSwipedOn(_, swipedID string, swipeType entity.SwipeType) bool {
	return s[string(swipeType)+":"+swipedID]
}

type Scorer struct {
	history History

	mu    sync.Mutex
	cache map[string]int
}

func NewScorer(history History) *Scorer {
	return &Scorer{
		history: history,
		cache:   make(map[string]int),
	}
}

// cacheKey includes the profile version so scoring-relevant edits expire
// memoized scores without anyone remembering to call ClearCache.
func cacheKey(profile entity.Profile, candidate entity.Candidate) string {
	return fmt.Sprintf("%s@%d_%s", profile.ID, profile.Version, candidate.CandidateID())
}

// CompatibilityScore computes the weighted similarity between a profile and
// a candidate as an integer in [0, 100]. Results are memoized per
// (profile, version, candidate) until ClearCache.
func (s *Scorer) CompatibilityScore(profile entity.Profile, candidate entity.Candidate) int {
	key := cacheKey(profile, candidate)

	s.mu.Lock()
	if score, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return score
	}
	s.mu.Unlock()

	attrs := candidate.Scoring()
	score := 0.0

	score += overlapScore(profile.Skills, attrs.Skills, skillsWeight)
	score += experienceScore(profile.ExperienceLevel, attrs.Level)
	score += locationScore(profile.Location, attrs.Location)
	score += overlapScore(profile.PreferredProjectTypes, attrs.ProjectTypes, projectTypesWeight)

	if attrs.Availability != "" && profile.Availability == attrs.Availability {
		score += availabilityWeight
	}

	rounded := int(math.Round(score))

	s.mu.Lock()
	s.cache[key] = rounded
	s.mu.Unlock()

	return rounded
}

// ShouldShowCard filters out cards the user has already decided on, then
// applies the minimum-compatibility threshold.
func (s *Scorer) ShouldShowCard(profile entity.Profile, card entity.SwipeCard) bool {
	if s.history != nil && s.history.HasSwipedOn(profile.ID, card.ID, card.Type) {
		return false
	}

	candidate := card.Candidate()
	if candidate == nil {
		return false
	}

	return s.CompatibilityScore(profile, candidate) >= MinCompatibility
}

// SortCardsByCompatibility drops cards that should not be shown and orders
// the rest by descending score. The sort is stable, so equal scores keep
// their incoming relative order.
func (s *Scorer) SortCardsByCompatibility(profile entity.Profile, cards []entity.SwipeCard) []entity.SwipeCard {
	shown := make([]entity.SwipeCard, 0, len(cards))
	for _, card := range cards {
		if s.ShouldShowCard(profile, card) {
			shown = append(shown, card)
		}
	}

	sort.SliceStable(shown, func(i, j int) bool {
		return s.CompatibilityScore(profile, shown[i].Candidate()) >
			s.CompatibilityScore(profile, shown[j].Candidate())
	})

	return shown
}

// ClearCache drops every memoized score. Callers mutating scoring-relevant
// profile fields outside the versioned update path must call this.
func (s *Scorer) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]int)
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}

// overlapScore is the shared Jaccard-style component: the overlap count over
// the larger set, scaled to the component weight. Either side empty means no
// basis for comparison and contributes nothing.
func overlapScore(a, b []string, weight float64) float64 {
	as, bs := lowerSet(a), lowerSet(b)
	larger := len(as)
	if len(bs) > larger {
		larger = len(bs)
	}
	if larger == 0 {
		return 0
	}

	common := 0
	for v := range as {
		if bs[v] {
			common++
		}
	}

	return float64(common) / float64(larger) * weight
}

func experienceScore(userLevel, candidateLevel entity.ExperienceLevel) float64 {
	u, c := userLevel.Ordinal(), candidateLevel.Ordinal()
	if u < 0 || c < 0 {
		return 0
	}

	diff := u - c
	if diff < 0 {
		diff = -diff
	}

	score := experienceWeight - float64(diff)*5
	if score < 0 {
		return 0
	}
	return score
}

func locationScore(userLocation, candidateLocation string) float64 {
	if userLocation == "" || candidateLocation == "" {
		return 0
	}

	u := strings.ToLower(userLocation)
	c := strings.ToLower(candidateLocation)
	switch {
	case u == c:
		return locationWeight
	case strings.Contains(u, c) || strings.Contains(c, u):
		return 10
	default:
		return 0
	}
}
