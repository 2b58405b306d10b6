package entity

// ScoringAttributes is the flattened view of a candidate the compatibility
// scorer works on. Zero-valued fields mean the candidate does not carry that
// attribute and the corresponding score component contributes nothing.
type ScoringAttributes struct {
	Skills       []string
	Level        ExperienceLevel
	Location     string
	ProjectTypes []string
	Availability Availability
}

// Candidate is anything that can appear on a swipe card. Profile and Project
// are the only variants; each exposes its own scoring attributes instead of
// the scorer probing fields at runtime.
type Candidate interface {
	CandidateID() string
	CandidateType() SwipeType
	Scoring() ScoringAttributes
}

// SwipeCard is the tagged union handed to the feed: exactly one of Profile
// or Project is set, matching Type.
type SwipeCard struct {
	ID      string    `json:"id"`
	Type    SwipeType `json:"type"`
	Profile *Profile  `json:"profile,omitempty"`
	Project *Project  `json:"project,omitempty"`
}

func NewProfileCard(p Profile) SwipeCard {
	return SwipeCard{ID: p.ID, Type: SwipeTypeProfile, Profile: &p}
}

func NewProjectCard(p Project) SwipeCard {
	return SwipeCard{ID: p.ID, Type: SwipeTypeProject, Project: &p}
}

func (c SwipeCard) Candidate() Candidate {
	switch c.Type {
	case SwipeTypeProject:
		if c.Project != nil {
			return *c.Project
		}
	case SwipeTypeProfile:
		if c.Profile != nil {
			return *c.Profile
		}
	}
	return nil
}
