package entity

import "time"

type SwipeType string

const (
	SwipeTypeProfile SwipeType = "profile"
	SwipeTypeProject SwipeType = "project"
)

func (t SwipeType) IsValid() bool {
	return t == SwipeTypeProfile || t == SwipeTypeProject
}

type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

func (d Direction) IsValid() bool {
	return d == DirectionLeft || d == DirectionRight
}

// Swipe is an immutable record of a single decision. Uniqueness of the
// (swiper, swiped, type) triple is not enforced at write time; dedup happens
// at feed-generation time via lookup.
type Swipe struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id"`
	SwiperID  string    `json:"swiperId" gorm:"column:swiper_id;index"`
	SwipedID  string    `json:"swipedId" gorm:"column:swiped_id;index"`
	SwipeType SwipeType `json:"swipeType" gorm:"column:swipe_type"`
	Direction Direction `json:"direction" gorm:"column:direction"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Swipe) TableName() string {
	return "swipes"
}

type MatchStatus string

const (
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
	MatchRejected MatchStatus = "rejected"
	MatchExpired  MatchStatus = "expired"
)

func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchPending, MatchAccepted, MatchRejected, MatchExpired:
		return true
	}
	return false
}

type Match struct {
	ID         string      `json:"id" gorm:"primaryKey;column:id"`
	User1ID    string      `json:"user1Id" gorm:"column:user1_id;index"`
	User2ID    string      `json:"user2Id" gorm:"column:user2_id;index"`
	MatchScore int         `json:"matchScore" gorm:"column:match_score"`
	ProjectID  string      `json:"projectId,omitempty" gorm:"column:project_id"`
	Status     MatchStatus `json:"status" gorm:"column:status"`
	CreatedAt  time.Time   `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt  time.Time   `json:"updatedAt" gorm:"column:updated_at"`
}

func (Match) TableName() string {
	return "matches"
}
