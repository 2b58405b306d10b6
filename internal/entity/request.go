package entity

import (
	"context"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

func (r *CreateUserRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Name == "" {
		problems["Name"] = append(problems["Name"], "Name is required")
	}
	if r.Email == "" {
		problems["Email"] = append(problems["Email"], "Email is required")
	} else if !emailRegex.MatchString(r.Email) {
		problems["Email"] = append(problems["Email"], "Invalid email format")
	}
	if r.Username == "" {
		problems["Username"] = append(problems["Username"], "Username is required")
	}
	if len(r.Username) > 39 {
		problems["Username"] = append(problems["Username"], "Username is too long")
	}
	if r.Password == "" {
		problems["Password"] = append(problems["Password"], "Password is required")
	}
	if len([]byte(r.Password)) > 72 {
		problems["Password"] = append(problems["Password"], "Password length should not exceed 72 bytes")
	}

	return problems
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

func (r *SignInRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Email == "" && r.Username == "" {
		problems["Email/Username"] = append(problems["Email/Username"], "Either Email or Username is required")
	}
	if r.Email != "" && !emailRegex.MatchString(r.Email) {
		problems["Email"] = append(problems["Email"], "Invalid email format")
	}
	if r.Password == "" {
		problems["Password"] = append(problems["Password"], "Password is required")
	}

	return problems
}

type CreateSwipeRequest struct {
	SwiperID  string    `json:"swiperId"`
	SwipedID  string    `json:"swipedId"`
	SwipeType SwipeType `json:"swipeType"`
	Direction Direction `json:"direction"`
}

func (r *CreateSwipeRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.SwiperID == "" {
		problems["SwiperID"] = append(problems["SwiperID"], "Swiper ID is required")
	}
	if r.SwipedID == "" {
		problems["SwipedID"] = append(problems["SwipedID"], "Swiped ID is required")
	}
	if !r.SwipeType.IsValid() {
		problems["SwipeType"] = append(problems["SwipeType"], "Swipe type must be profile or project")
	}
	if !r.Direction.IsValid() {
		problems["Direction"] = append(problems["Direction"], "Direction must be left or right")
	}

	return problems
}

type UpdateMatchStatusRequest struct {
	Status MatchStatus `json:"status"`
}

func (r *UpdateMatchStatusRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Status != MatchAccepted && r.Status != MatchRejected {
		problems["Status"] = append(problems["Status"], "Status must be accepted or rejected")
	}

	return problems
}

type CreateProjectRequest struct {
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	TechStack         []string   `json:"techStack"`
	ProjectType       string     `json:"projectType"`
	Difficulty        Difficulty `json:"difficulty"`
	EstimatedDuration string     `json:"estimatedDuration"`
	LookingForRoles   []string   `json:"lookingForRoles"`
	MaxCollaborators  int        `json:"maxCollaborators"`
	RepositoryURL     string     `json:"repositoryUrl"`
	DemoURL           string     `json:"demoUrl"`
	Tags              []string   `json:"tags"`
}

func (r *CreateProjectRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Title == "" {
		problems["Title"] = append(problems["Title"], "Title is required")
	}
	if r.Description == "" {
		problems["Description"] = append(problems["Description"], "Description is required")
	}
	if r.Difficulty != "" && r.Difficulty.Level() == "" {
		problems["Difficulty"] = append(problems["Difficulty"], "Difficulty must be easy, medium or hard")
	}
	if r.MaxCollaborators < 0 {
		problems["MaxCollaborators"] = append(problems["MaxCollaborators"], "Max collaborators cannot be negative")
	}

	return problems
}

type GithubSyncRequest struct {
	AccessToken string `json:"accessToken"`
}

func (r *GithubSyncRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.AccessToken == "" {
		problems["AccessToken"] = append(problems["AccessToken"], "Access token is required")
	}

	return problems
}
