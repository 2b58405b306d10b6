package entity

import "time"

type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
	LevelExpert       ExperienceLevel = "expert"
)

// Ordinal returns the position of the level on the beginner..expert axis,
// or -1 for an unknown level.
func (e ExperienceLevel) Ordinal() int {
	switch e {
	case LevelBeginner:
		return 0
	case LevelIntermediate:
		return 1
	case LevelAdvanced:
		return 2
	case LevelExpert:
		return 3
	default:
		return -1
	}
}

func (e ExperienceLevel) IsValid() bool {
	return e.Ordinal() >= 0
}

type Availability string

const (
	AvailabilityFullTime Availability = "full-time"
	AvailabilityPartTime Availability = "part-time"
	AvailabilityWeekends Availability = "weekends"
	AvailabilityEvenings Availability = "evenings"
)

type Profile struct {
	ID                    string          `json:"id" gorm:"primaryKey;column:id"`
	UserID                string          `json:"userId" gorm:"column:user_id;index"`
	Name                  string          `json:"name" gorm:"column:name"`
	Bio                   string          `json:"bio" gorm:"column:bio"`
	Skills                []string        `json:"skills" gorm:"column:skills;serializer:json"`
	Interests             []string        `json:"interests" gorm:"column:interests;serializer:json"`
	ExperienceLevel       ExperienceLevel `json:"experienceLevel" gorm:"column:experience_level"`
	PreferredProjectTypes []string        `json:"preferredProjectTypes" gorm:"column:preferred_project_types;serializer:json"`
	Availability          Availability    `json:"availability" gorm:"column:availability"`
	Location              string          `json:"location,omitempty" gorm:"column:location"`
	Timezone              string          `json:"timezone,omitempty" gorm:"column:timezone"`
	GithubUsername        string          `json:"githubUsername,omitempty" gorm:"column:github_username"`
	LastGithubSyncAt      *time.Time      `json:"lastGithubSyncAt,omitempty" gorm:"column:last_github_sync_at"`

	// Version increments on every scoring-relevant edit so memoized
	// compatibility scores keyed on it expire without an explicit cache clear.
	Version uint `json:"version" gorm:"column:version"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p Profile) CandidateID() string {
	return p.ID
}

func (p Profile) CandidateType() SwipeType {
	return SwipeTypeProfile
}

func (p Profile) Scoring() ScoringAttributes {
	return ScoringAttributes{
		Skills:       p.Skills,
		Level:        p.ExperienceLevel,
		Location:     p.Location,
		ProjectTypes: p.PreferredProjectTypes,
		Availability: p.Availability,
	}
}
