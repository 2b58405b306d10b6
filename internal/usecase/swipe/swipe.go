package swipeUseCase

import (
	"context"
	"errors"

	"github.com/buildrs/match-engine/internal/entity"
	"github.com/buildrs/match-engine/internal/matching"
	swipeRepo "github.com/buildrs/match-engine/internal/repository/swipe"
	userRepo "github.com/buildrs/match-engine/internal/repository/user"
	"gorm.io/gorm"
)

type ISwipeUseCase interface {
	// RecordSwipe persists the decision and, for a mutual right swipe on a
	// profile, creates a match scored by the compatibility engine.
	RecordSwipe(ctx context.Context, request entity.CreateSwipeRequest) (*entity.SwipeResult, error)
	GetSwipeHistory(ctx context.Context, userID string) ([]entity.Swipe, error)
	GetMatches(ctx context.Context, userID string) ([]entity.Match, error)
	GetMatch(ctx context.Context, matchID string) (*entity.Match, error)
	UpdateMatchStatus(ctx context.Context, matchID string, status entity.MatchStatus) (*entity.Match, error)
	GetSwipeStats(ctx context.Context, userID string) (*entity.SwipeStats, error)
}

type swipeUseCase struct {
	swipeRepo swipeRepo.ISwipeRepo
	userRepo  userRepo.IUserRepo
	scorer    *matching.Scorer
}

func New(swipeRepo swipeRepo.ISwipeRepo, userRepo userRepo.IUserRepo, scorer *matching.Scorer) ISwipeUseCase {
	return &swipeUseCase{
		swipeRepo: swipeRepo,
		userRepo:  userRepo,
		scorer:    scorer,
	}
}

func (s *swipeUseCase) RecordSwipe(ctx context.Context, request entity.CreateSwipeRequest) (*entity.SwipeResult, error) {
	swipe := entity.Swipe{
		SwiperID:  request.SwiperID,
		SwipedID:  request.SwipedID,
		SwipeType: request.SwipeType,
		Direction: request.Direction,
	}
	if err := s.swipeRepo.CreateSwipe(ctx, &swipe); err != nil {
		return nil, err
	}

	if request.Direction != entity.DirectionRight || request.SwipeType != entity.SwipeTypeProfile {
		return &entity.SwipeResult{Matched: false}, nil
	}

	match, err := s.detectMutualMatch(ctx, request.SwiperID, request.SwipedID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return &entity.SwipeResult{Matched: false}, nil
	}

	return &entity.SwipeResult{Matched: true, MatchID: match.ID}, nil
}

// detectMutualMatch checks whether the owner of the swiped profile already
// right-swiped the swiper's profile, and creates the match if so.
func (s *swipeUseCase) detectMutualMatch(ctx context.Context, swiperID, swipedProfileID string) (*entity.Match, error) {
	swipedProfile, err := s.userRepo.GetProfileByID(ctx, swipedProfileID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Swiping on a card the server does not own (e.g. mock data) is
		// fine; it just cannot produce a match.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	swiperProfile, err := s.userRepo.GetProfileByUserID(ctx, swiperID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	reciprocal, err := s.swipeRepo.FindRightSwipe(ctx, swipedProfile.UserID, swiperProfile.ID)
	if err != nil || reciprocal == nil {
		return nil, err
	}

	// A retried swipe (timeout replay, offline queue flush) must not mint a
	// second match for the same pair.
	existing, err := s.swipeRepo.FindMatchBetween(ctx, swiperID, swipedProfile.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	match := entity.Match{
		User1ID:    swiperID,
		User2ID:    swipedProfile.UserID,
		MatchScore: s.scorer.CompatibilityScore(*swiperProfile, *swipedProfile),
		Status:     entity.MatchPending,
	}
	if err := s.swipeRepo.CreateMatch(ctx, &match); err != nil {
		return nil, err
	}

	return &match, nil
}

func (s *swipeUseCase) GetSwipeHistory(ctx context.Context, userID string) ([]entity.Swipe, error) {
	return s.swipeRepo.GetSwipeHistory(ctx, userID)
}

func (s *swipeUseCase) GetMatches(ctx context.Context, userID string) ([]entity.Match, error) {
	return s.swipeRepo.GetMatchesForUser(ctx, userID)
}

func (s *swipeUseCase) GetMatch(ctx context.Context, matchID string) (*entity.Match, error) {
	return s.swipeRepo.GetMatchByID(ctx, matchID)
}

func (s *swipeUseCase) UpdateMatchStatus(ctx context.Context, matchID string, status entity.MatchStatus) (*entity.Match, error) {
	return s.swipeRepo.UpdateMatchStatus(ctx, matchID, status)
}

func (s *swipeUseCase) GetSwipeStats(ctx context.Context, userID string) (*entity.SwipeStats, error) {
	return s.swipeRepo.GetSwipeStats(ctx, userID)
}
