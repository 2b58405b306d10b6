package entity

type SignUpResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type SignInResponse struct {
	Token string `json:"token"`
}

type SwipeResult struct {
	Matched bool   `json:"matched"`
	MatchID string `json:"matchId,omitempty"`
}

type DailySwipeStat struct {
	Date    string `json:"date"`
	Swipes  int    `json:"swipes"`
	Matches int    `json:"matches"`
}

type SwipeStats struct {
	TotalSwipes  int              `json:"totalSwipes"`
	TotalMatches int              `json:"totalMatches"`
	SwipeHistory []DailySwipeStat `json:"swipeHistory"`
}

type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
