package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/buildrs/match-engine/internal/entity"
	"github.com/buildrs/match-engine/pkg/sanitize"
)

// CardType selects which kind of cards a feed request returns.
type CardType string

const (
	CardTypeProfile CardType = "profile"
	CardTypeProject CardType = "project"
	CardTypeMixed   CardType = "mixed"
)

// RecommendationType selects the recommendation feed.
type RecommendationType string

const (
	RecommendProjects      RecommendationType = "projects"
	RecommendCollaborators RecommendationType = "collaborators"
)

var profileAllowedFields = []string{
	"name", "bio", "location", "skills", "interests",
	"experienceLevel", "preferredProjectTypes", "availability", "timezone",
}

var projectAllowedFields = []string{
	"title", "description", "techStack", "repositoryUrl", "demoUrl",
	"projectType", "difficulty", "estimatedDuration", "lookingForRoles",
	"maxCollaborators", "tags",
}

// cleanID validates an identifier argument; an empty result means rejection.
func cleanID(id string) string {
	return sanitize.UserInput(id, sanitize.KindText)
}

func (c *Client) RecordSwipe(ctx context.Context, swiperID, swipedID string, swipeType entity.SwipeType, direction entity.Direction) Response[entity.SwipeResult] {
	swiperID, swipedID = cleanID(swiperID), cleanID(swipedID)
	if swiperID == "" || swipedID == "" {
		return invalid[entity.SwipeResult]("Invalid user IDs")
	}
	if !swipeType.IsValid() || !direction.IsValid() {
		return invalid[entity.SwipeResult]("Invalid swipe parameters")
	}

	body := map[string]any{
		"swiperId":  swiperID,
		"swipedId":  swipedID,
		"swipeType": swipeType,
		"direction": direction,
	}
	return into[entity.SwipeResult](c.request(ctx, http.MethodPost, "/api/swipes", body, nil))
}

func (c *Client) SwipeHistory(ctx context.Context, userID string) Response[[]entity.Swipe] {
	if userID = cleanID(userID); userID == "" {
		return invalid[[]entity.Swipe]("Invalid user ID")
	}
	return into[[]entity.Swipe](c.request(ctx, http.MethodGet, "/api/swipes/history/"+url.PathEscape(userID), nil, nil))
}

func (c *Client) PersonalizedCards(ctx context.Context, userID string, cardType CardType, limit int) Response[[]entity.SwipeCard] {
	if userID = cleanID(userID); userID == "" {
		return invalid[[]entity.SwipeCard]("Invalid user ID")
	}
	if cardType != CardTypeProfile && cardType != CardTypeProject && cardType != CardTypeMixed {
		return invalid[[]entity.SwipeCard]("Invalid card type")
	}
	if limit < 1 || limit > 100 {
		return invalid[[]entity.SwipeCard]("Invalid limit (must be between 1 and 100)")
	}

	endpoint := fmt.Sprintf("/api/swipes/cards?userId=%s&type=%s&limit=%d",
		url.QueryEscape(userID), cardType, limit)
	return into[[]entity.SwipeCard](c.request(ctx, http.MethodGet, endpoint, nil, nil))
}

func (c *Client) Matches(ctx context.Context, userID string) Response[[]entity.Match] {
	if userID = cleanID(userID); userID == "" {
		return invalid[[]entity.Match]("Invalid user ID")
	}
	return into[[]entity.Match](c.request(ctx, http.MethodGet, "/api/matches/"+url.PathEscape(userID), nil, nil))
}

func (c *Client) UpdateMatchStatus(ctx context.Context, matchID string, status entity.MatchStatus) Response[entity.Match] {
	if matchID = cleanID(matchID); matchID == "" {
		return invalid[entity.Match]("Invalid match ID")
	}
	if status != entity.MatchAccepted && status != entity.MatchRejected {
		return invalid[entity.Match]("Invalid status")
	}

	body := map[string]any{"status": status}
	return into[entity.Match](c.request(ctx, http.MethodPatch, "/api/matches/"+url.PathEscape(matchID), body, nil))
}

func (c *Client) UpdateProfile(ctx context.Context, userID string, fields map[string]any) Response[entity.Profile] {
	if userID = cleanID(userID); userID == "" {
		return invalid[entity.Profile]("Invalid user ID")
	}
	return into[entity.Profile](c.request(ctx, http.MethodPatch,
		"/api/users/"+url.PathEscape(userID)+"/profile", fields, profileAllowedFields))
}

func (c *Client) Profile(ctx context.Context, userID string) Response[entity.Profile] {
	if userID = cleanID(userID); userID == "" {
		return invalid[entity.Profile]("Invalid user ID")
	}
	return into[entity.Profile](c.request(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID)+"/profile", nil, nil))
}

func (c *Client) CreateProject(ctx context.Context, project entity.CreateProjectRequest) Response[entity.Project] {
	if sanitize.UserInput(project.Title, sanitize.KindText) == "" ||
		sanitize.UserInput(project.Description, sanitize.KindText) == "" {
		return invalid[entity.Project]("Project title and description are required")
	}
	return into[entity.Project](c.request(ctx, http.MethodPost, "/api/projects", project, projectAllowedFields))
}

func (c *Client) UserProjects(ctx context.Context, userID string) Response[[]entity.Project] {
	if userID = cleanID(userID); userID == "" {
		return invalid[[]entity.Project]("Invalid user ID")
	}
	return into[[]entity.Project](c.request(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID)+"/projects", nil, nil))
}

func (c *Client) Project(ctx context.Context, projectID string) Response[entity.Project] {
	if projectID = cleanID(projectID); projectID == "" {
		return invalid[entity.Project]("Invalid project ID")
	}
	return into[entity.Project](c.request(ctx, http.MethodGet, "/api/projects/"+url.PathEscape(projectID), nil, nil))
}

func (c *Client) UpdateProject(ctx context.Context, projectID string, fields map[string]any) Response[entity.Project] {
	if projectID = cleanID(projectID); projectID == "" {
		return invalid[entity.Project]("Invalid project ID")
	}
	return into[entity.Project](c.request(ctx, http.MethodPatch, "/api/projects/"+url.PathEscape(projectID), fields, projectAllowedFields))
}

func (c *Client) SyncGithubData(ctx context.Context, userID, accessToken string) Response[entity.Profile] {
	userID = cleanID(userID)
	if userID == "" || sanitize.UserInput(accessToken, sanitize.KindText) == "" {
		return invalid[entity.Profile]("Invalid user ID or access token")
	}

	body := map[string]any{"accessToken": accessToken}
	return into[entity.Profile](c.request(ctx, http.MethodPost,
		"/api/users/"+url.PathEscape(userID)+"/github-sync", body, nil))
}

func (c *Client) Recommendations(ctx context.Context, userID string, recType RecommendationType) Response[[]entity.SwipeCard] {
	if userID = cleanID(userID); userID == "" {
		return invalid[[]entity.SwipeCard]("Invalid user ID")
	}
	if recType != RecommendProjects && recType != RecommendCollaborators {
		return invalid[[]entity.SwipeCard]("Invalid recommendation type")
	}

	endpoint := fmt.Sprintf("/api/recommendations/%s?type=%s", url.PathEscape(userID), recType)
	return into[[]entity.SwipeCard](c.request(ctx, http.MethodGet, endpoint, nil, nil))
}

func (c *Client) SwipeStats(ctx context.Context, userID string) Response[entity.SwipeStats] {
	if userID = cleanID(userID); userID == "" {
		return invalid[entity.SwipeStats]("Invalid user ID")
	}
	return into[entity.SwipeStats](c.request(ctx, http.MethodGet,
		"/api/analytics/"+url.PathEscape(userID)+"/swipe-stats", nil, nil))
}

func (c *Client) SignUp(ctx context.Context, req entity.CreateUserRequest) Response[entity.SignUpResponse] {
	if sanitize.UserInput(req.Email, sanitize.KindEmail) == "" {
		return invalid[entity.SignUpResponse]("Invalid email")
	}
	return into[entity.SignUpResponse](c.request(ctx, http.MethodPost, "/api/auth/sign-up", req, nil))
}

func (c *Client) SignIn(ctx context.Context, req entity.SignInRequest) Response[entity.SignInResponse] {
	return into[entity.SignInResponse](c.request(ctx, http.MethodPost, "/api/auth/sign-in", req, nil))
}

func (c *Client) HealthCheck(ctx context.Context) Response[entity.HealthStatus] {
	return into[entity.HealthStatus](c.request(ctx, http.MethodGet, "/api/health", nil, nil))
}
