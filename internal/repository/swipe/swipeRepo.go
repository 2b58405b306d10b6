package swipeRepo

import (
	"context"
	"log"
	"time"

	"github.com/buildrs/match-engine/internal/entity"
	"github.com/go-redis/redis"

	"gorm.io/gorm"
)

// swipedSetTTL bounds how long the per-user swiped-ID cache lives; the
// swipes table stays the source of truth.
const swipedSetTTL = 24 * time.Hour

type ISwipeRepo interface {
	CreateSwipe(ctx context.Context, swipe *entity.Swipe) error
	GetSwipeHistory(ctx context.Context, swiperID string) ([]entity.Swipe, error)

	// GetSwipedIDs returns the candidate IDs the user already decided on,
	// served from a redis set when warm.
	GetSwipedIDs(ctx context.Context, swiperID string, swipeType entity.SwipeType) ([]string, error)

	// FindRightSwipe returns the right swipe by swiperID on swipedID, or
	// nil when none exists.
	FindRightSwipe(ctx context.Context, swiperID, swipedID string) (*entity.Swipe, error)

	CreateMatch(ctx context.Context, match *entity.Match) error

	// FindMatchBetween returns the match for the user pair in either order,
	// or nil when none exists.
	FindMatchBetween(ctx context.Context, userA, userB string) (*entity.Match, error)

	GetMatchesForUser(ctx context.Context, userID string) ([]entity.Match, error)
	GetMatchByID(ctx context.Context, matchID string) (*entity.Match, error)
	UpdateMatchStatus(ctx context.Context, matchID string, status entity.MatchStatus) (*entity.Match, error)

	GetSwipeStats(ctx context.Context, userID string) (*entity.SwipeStats, error)
}

type SwipeRepo struct {
	db  *gorm.DB
	rdb *redis.Client
}

func New(db *gorm.DB, rdb *redis.Client) ISwipeRepo {
	return &SwipeRepo{
		db:  db,
		rdb: rdb,
	}
}

func swipedSetKey(swiperID string, swipeType entity.SwipeType) string {
	return ":user:" + swiperID + ":swiped:" + string(swipeType)
}

func (r *SwipeRepo) CreateSwipe(ctx context.Context, swipe *entity.Swipe) error {
	if swipe.ID == "" {
		swipe.ID = entity.NewID("swipe")
	}
	swipe.CreatedAt = time.Now()

	if err := r.db.WithContext(ctx).Create(swipe).Error; err != nil {
		return err
	}

	// Keep the warm cache coherent; a failure here only costs a cache miss.
	key := swipedSetKey(swipe.SwiperID, swipe.SwipeType)
	if exists, err := r.rdb.Exists(key).Result(); err == nil && exists == 1 {
		if err := r.rdb.SAdd(key, swipe.SwipedID).Err(); err != nil {
			log.Println("error appending swiped set in redis:", err)
		}
	}

	return nil
}

func (r *SwipeRepo) GetSwipeHistory(ctx context.Context, swiperID string) ([]entity.Swipe, error) {
	var swipes []entity.Swipe
	result := r.db.WithContext(ctx).
		Where("swiper_id = ?", swiperID).
		Order("created_at").
		Find(&swipes)
	return swipes, result.Error
}

func (r *SwipeRepo) GetSwipedIDs(ctx context.Context, swiperID string, swipeType entity.SwipeType) ([]string, error) {
	key := swipedSetKey(swiperID, swipeType)

	exists, err := r.rdb.Exists(key).Result()
	if err != nil {
		log.Println("error checking swiped set in redis:", err)
		exists = 0
	}

	if exists == 1 {
		var ids []string
		if err := r.rdb.SMembers(key).ScanSlice(&ids); err == nil {
			return ids, nil
		}
		log.Println("error reading swiped set from redis:", err)
	}

	var ids []string
	result := r.db.WithContext(ctx).
		Model(&entity.Swipe{}).
		Where("swiper_id = ? AND swipe_type = ?", swiperID, swipeType).
		Pluck("swiped_id", &ids)

	if result.Error != nil {
		return nil, result.Error
	}

	if len(ids) > 0 {
		for _, id := range ids {
			if err := r.rdb.SAdd(key, id).Err(); err != nil {
				log.Println("error warming swiped set in redis:", err)
				break
			}
		}
		r.rdb.Expire(key, swipedSetTTL)
	}

	return ids, nil
}

func (r *SwipeRepo) FindRightSwipe(ctx context.Context, swiperID, swipedID string) (*entity.Swipe, error) {
	var swipe entity.Swipe
	result := r.db.WithContext(ctx).
		Where("swiper_id = ? AND swiped_id = ? AND direction = ?", swiperID, swipedID, entity.DirectionRight).
		First(&swipe)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &swipe, nil
}

func (r *SwipeRepo) CreateMatch(ctx context.Context, match *entity.Match) error {
	if match.ID == "" {
		match.ID = entity.NewID("match")
	}
	match.CreatedAt = time.Now()
	match.UpdatedAt = match.CreatedAt
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *SwipeRepo) FindMatchBetween(ctx context.Context, userA, userB string) (*entity.Match, error) {
	var match entity.Match
	result := r.db.WithContext(ctx).
		Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)", userA, userB, userB, userA).
		First(&match)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &match, nil
}

func (r *SwipeRepo) GetMatchesForUser(ctx context.Context, userID string) ([]entity.Match, error) {
	var matches []entity.Match
	result := r.db.WithContext(ctx).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&matches)
	return matches, result.Error
}

func (r *SwipeRepo) GetMatchByID(ctx context.Context, matchID string) (*entity.Match, error) {
	var match entity.Match
	result := r.db.WithContext(ctx).Where("id = ?", matchID).First(&match)
	return &match, result.Error
}

func (r *SwipeRepo) UpdateMatchStatus(ctx context.Context, matchID string, status entity.MatchStatus) (*entity.Match, error) {
	match, err := r.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	match.Status = status
	match.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Save(match).Error; err != nil {
		return nil, err
	}
	return match, nil
}

type dailyCount struct {
	Day   time.Time
	Count int
}

func (r *SwipeRepo) GetSwipeStats(ctx context.Context, userID string) (*entity.SwipeStats, error) {
	var swipesByDay []dailyCount
	result := r.db.WithContext(ctx).
		Model(&entity.Swipe{}).
		Select("date(created_at) as day, count(*) as count").
		Where("swiper_id = ?", userID).
		Group("date(created_at)").
		Order("day").
		Scan(&swipesByDay)
	if result.Error != nil {
		return nil, result.Error
	}

	var matchesByDay []dailyCount
	result = r.db.WithContext(ctx).
		Model(&entity.Match{}).
		Select("date(created_at) as day, count(*) as count").
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Group("date(created_at)").
		Order("day").
		Scan(&matchesByDay)
	if result.Error != nil {
		return nil, result.Error
	}

	matchesPerDay := make(map[string]int, len(matchesByDay))
	totalMatches := 0
	for _, row := range matchesByDay {
		matchesPerDay[row.Day.Format("2006-01-02")] = row.Count
		totalMatches += row.Count
	}

	stats := &entity.SwipeStats{SwipeHistory: []entity.DailySwipeStat{}}
	stats.TotalMatches = totalMatches
	for _, row := range swipesByDay {
		day := row.Day.Format("2006-01-02")
		stats.TotalSwipes += row.Count
		stats.SwipeHistory = append(stats.SwipeHistory, entity.DailySwipeStat{
			Date:    day,
			Swipes:  row.Count,
			Matches: matchesPerDay[day],
		})
	}

	return stats, nil
}
