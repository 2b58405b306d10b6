package entity

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Level maps a project difficulty onto the experience-level axis so a
// project can be scored against a profile.
func (d Difficulty) Level() ExperienceLevel {
	switch d {
	case DifficultyEasy:
		return LevelBeginner
	case DifficultyMedium:
		return LevelIntermediate
	case DifficultyHard:
		return LevelAdvanced
	default:
		return ""
	}
}

type ProjectStatus string

const (
	ProjectRecruiting ProjectStatus = "recruiting"
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectPaused     ProjectStatus = "paused"
)

type Project struct {
	ID                   string        `json:"id" gorm:"primaryKey;column:id"`
	CreatorID            string        `json:"creatorId" gorm:"column:creator_id;index"`
	Title                string        `json:"title" gorm:"column:title"`
	Description          string        `json:"description" gorm:"column:description"`
	TechStack            []string      `json:"techStack" gorm:"column:tech_stack;serializer:json"`
	ProjectType          string        `json:"projectType" gorm:"column:project_type"`
	Difficulty           Difficulty    `json:"difficulty" gorm:"column:difficulty"`
	EstimatedDuration    string        `json:"estimatedDuration" gorm:"column:estimated_duration"`
	LookingForRoles      []string      `json:"lookingForRoles" gorm:"column:looking_for_roles;serializer:json"`
	MaxCollaborators     int           `json:"maxCollaborators" gorm:"column:max_collaborators"`
	CurrentCollaborators int           `json:"currentCollaborators" gorm:"column:current_collaborators"`
	Status               ProjectStatus `json:"status" gorm:"column:status"`
	RepositoryURL        string        `json:"repositoryUrl,omitempty" gorm:"column:repository_url"`
	DemoURL              string        `json:"demoUrl,omitempty" gorm:"column:demo_url"`
	Tags                 []string      `json:"tags" gorm:"column:tags;serializer:json"`
	CreatedAt            time.Time     `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt            time.Time     `json:"updatedAt" gorm:"column:updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

func (p Project) CandidateID() string {
	return p.ID
}

func (p Project) CandidateType() SwipeType {
	return SwipeTypeProject
}

// Scoring exposes only the attributes a project actually carries: the tech
// stack counts as skills and the difficulty maps onto the level axis.
// Projects have no location, preferred project types, or availability, so
// those components contribute nothing to the score.
func (p Project) Scoring() ScoringAttributes {
	return ScoringAttributes{
		Skills: p.TechStack,
		Level:  p.Difficulty.Level(),
	}
}
