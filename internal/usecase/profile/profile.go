package profileUseCase

import (
	"context"
	"time"

	"github.com/buildrs/match-engine/internal/entity"
	projectRepo "github.com/buildrs/match-engine/internal/repository/project"
	userRepo "github.com/buildrs/match-engine/internal/repository/user"
	"github.com/buildrs/match-engine/pkg/sanitize"
)

type IProfileUseCase interface {
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)

	// UpdateProfile applies an allow-listed, sanitized field map to the
	// profile and bumps the scoring version when a scoring-relevant field
	// changed.
	UpdateProfile(ctx context.Context, userID string, fields map[string]any) (*entity.Profile, error)
	SyncGithubData(ctx context.Context, userID, accessToken string) (*entity.Profile, error)

	CreateProject(ctx context.Context, creatorID string, request entity.CreateProjectRequest) (*entity.Project, error)
	GetProject(ctx context.Context, projectID string) (*entity.Project, error)
	GetUserProjects(ctx context.Context, userID string) ([]entity.Project, error)
	UpdateProject(ctx context.Context, projectID string, fields map[string]any) (*entity.Project, error)
}

var profileAllowedFields = []string{
	"name", "bio", "location", "skills", "interests",
	"experienceLevel", "preferredProjectTypes", "availability", "timezone",
}

var projectAllowedFields = []string{
	"title", "description", "techStack", "repositoryUrl", "demoUrl",
	"projectType", "difficulty", "estimatedDuration", "lookingForRoles",
	"maxCollaborators", "tags", "status",
}

type profileUseCase struct {
	userRepo    userRepo.IUserRepo
	projectRepo projectRepo.IProjectRepo
}

func New(userRepo userRepo.IUserRepo, projectRepo projectRepo.IProjectRepo) IProfileUseCase {
	return &profileUseCase{
		userRepo:    userRepo,
		projectRepo: projectRepo,
	}
}

func (p *profileUseCase) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	return p.userRepo.GetProfileByUserID(ctx, userID)
}

func (p *profileUseCase) UpdateProfile(ctx context.Context, userID string, fields map[string]any) (*entity.Profile, error) {
	profile, err := p.userRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	scoringChanged := false
	for key, value := range sanitize.Object(fields, profileAllowedFields) {
		switch key {
		case "name":
			profile.Name = asString(value)
		case "bio":
			profile.Bio = asString(value)
		case "timezone":
			profile.Timezone = asString(value)
		case "location":
			profile.Location = asString(value)
			scoringChanged = true
		case "skills":
			profile.Skills = asStringSlice(value)
			scoringChanged = true
		case "interests":
			profile.Interests = asStringSlice(value)
			scoringChanged = true
		case "preferredProjectTypes":
			profile.PreferredProjectTypes = asStringSlice(value)
			scoringChanged = true
		case "experienceLevel":
			if level := entity.ExperienceLevel(asString(value)); level.IsValid() {
				profile.ExperienceLevel = level
				scoringChanged = true
			}
		case "availability":
			profile.Availability = entity.Availability(asString(value))
			scoringChanged = true
		}
	}

	if scoringChanged {
		profile.Version++
	}

	if err := p.userRepo.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SyncGithubData marks the profile as synced. Field-by-field import from the
// GitHub REST API lives outside this service.
func (p *profileUseCase) SyncGithubData(ctx context.Context, userID, accessToken string) (*entity.Profile, error) {
	profile, err := p.userRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile.LastGithubSyncAt = &now
	if err := p.userRepo.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (p *profileUseCase) CreateProject(ctx context.Context, creatorID string, request entity.CreateProjectRequest) (*entity.Project, error) {
	return p.projectRepo.CreateProject(ctx, entity.Project{
		CreatorID:         creatorID,
		Title:             sanitize.Text(request.Title),
		Description:       sanitize.Text(request.Description),
		TechStack:         request.TechStack,
		ProjectType:       sanitize.Text(request.ProjectType),
		Difficulty:        request.Difficulty,
		EstimatedDuration: sanitize.Text(request.EstimatedDuration),
		LookingForRoles:   request.LookingForRoles,
		MaxCollaborators:  request.MaxCollaborators,
		RepositoryURL:     sanitize.URL(request.RepositoryURL),
		DemoURL:           sanitize.URL(request.DemoURL),
		Tags:              request.Tags,
	})
}

func (p *profileUseCase) GetProject(ctx context.Context, projectID string) (*entity.Project, error) {
	return p.projectRepo.GetProjectByID(ctx, projectID)
}

func (p *profileUseCase) GetUserProjects(ctx context.Context, userID string) ([]entity.Project, error) {
	return p.projectRepo.GetProjectsByCreator(ctx, userID)
}

func (p *profileUseCase) UpdateProject(ctx context.Context, projectID string, fields map[string]any) (*entity.Project, error) {
	project, err := p.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	for key, value := range sanitize.Object(fields, projectAllowedFields) {
		switch key {
		case "title":
			project.Title = asString(value)
		case "description":
			project.Description = asString(value)
		case "techStack":
			project.TechStack = asStringSlice(value)
		case "projectType":
			project.ProjectType = asString(value)
		case "difficulty":
			if d := entity.Difficulty(asString(value)); d.Level() != "" {
				project.Difficulty = d
			}
		case "estimatedDuration":
			project.EstimatedDuration = asString(value)
		case "lookingForRoles":
			project.LookingForRoles = asStringSlice(value)
		case "maxCollaborators":
			if n, ok := value.(float64); ok && n >= 0 {
				project.MaxCollaborators = int(n)
			}
		case "repositoryUrl":
			project.RepositoryURL = sanitize.URL(asString(value))
		case "demoUrl":
			project.DemoURL = sanitize.URL(asString(value))
		case "tags":
			project.Tags = asStringSlice(value)
		case "status":
			if s := entity.ProjectStatus(asString(value)); s == entity.ProjectRecruiting ||
				s == entity.ProjectInProgress || s == entity.ProjectCompleted || s == entity.ProjectPaused {
				project.Status = s
			}
		}
	}

	if err := p.projectRepo.SaveProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func asString(value any) string {
	s, _ := value.(string)
	return s
}

func asStringSlice(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
