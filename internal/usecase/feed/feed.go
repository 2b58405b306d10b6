package feedUseCase

import (
	"context"

	"github.com/buildrs/match-engine/internal/entity"
	"github.com/buildrs/match-engine/internal/matching"
	projectRepo "github.com/buildrs/match-engine/internal/repository/project"
	swipeRepo "github.com/buildrs/match-engine/internal/repository/swipe"
	userRepo "github.com/buildrs/match-engine/internal/repository/user"
)

const (
	CardTypeProfile = "profile"
	CardTypeProject = "project"
	CardTypeMixed   = "mixed"

	// overfetch pulls extra candidates so the compatibility threshold can
	// drop some without starving the feed.
	overfetch = 10
)

type IFeedUseCase interface {
	// GetPersonalizedCards excludes already-swiped candidates, ranks the
	// rest by compatibility and returns at most limit cards.
	GetPersonalizedCards(ctx context.Context, userID, cardType string, limit int) ([]entity.SwipeCard, error)
	GetRecommendations(ctx context.Context, userID, recType string) ([]entity.SwipeCard, error)
}

type feedUseCase struct {
	userRepo    userRepo.IUserRepo
	projectRepo projectRepo.IProjectRepo
	swipeRepo   swipeRepo.ISwipeRepo
	scorer      *matching.Scorer
}

func New(userRepo userRepo.IUserRepo, projectRepo projectRepo.IProjectRepo, swipeRepo swipeRepo.ISwipeRepo, scorer *matching.Scorer) IFeedUseCase {
	return &feedUseCase{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		swipeRepo:   swipeRepo,
		scorer:      scorer,
	}
}

func (f *feedUseCase) GetPersonalizedCards(ctx context.Context, userID, cardType string, limit int) ([]entity.SwipeCard, error) {
	profile, err := f.userRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var cards []entity.SwipeCard

	if cardType == CardTypeProfile || cardType == CardTypeMixed {
		swiped, err := f.swipeRepo.GetSwipedIDs(ctx, userID, entity.SwipeTypeProfile)
		if err != nil {
			return nil, err
		}

		profiles, err := f.userRepo.GetProfilesExcluding(ctx, userID, swiped, limit+overfetch)
		if err != nil {
			return nil, err
		}
		for _, p := range profiles {
			cards = append(cards, entity.NewProfileCard(p))
		}
	}

	if cardType == CardTypeProject || cardType == CardTypeMixed {
		swiped, err := f.swipeRepo.GetSwipedIDs(ctx, userID, entity.SwipeTypeProject)
		if err != nil {
			return nil, err
		}

		projects, err := f.projectRepo.GetRecruitingProjects(ctx, userID, swiped, limit+overfetch)
		if err != nil {
			return nil, err
		}
		for _, p := range projects {
			cards = append(cards, entity.NewProjectCard(p))
		}
	}

	ranked := f.scorer.SortCardsByCompatibility(*profile, cards)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (f *feedUseCase) GetRecommendations(ctx context.Context, userID, recType string) ([]entity.SwipeCard, error) {
	cardType := CardTypeProfile
	if recType == "projects" {
		cardType = CardTypeProject
	}
	return f.GetPersonalizedCards(ctx, userID, cardType, 20)
}
