package userRepo

import (
	"context"
	"time"

	"github.com/buildrs/match-engine/internal/entity"
	"gorm.io/gorm"
)

type IUserRepo interface {
	CreateUser(ctx context.Context, user entity.User) (*entity.User, error)
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	GetUserByUnameOrEmail(ctx context.Context, email, uname string) (*entity.User, error)

	CreateProfile(ctx context.Context, profile entity.Profile) (*entity.Profile, error)
	GetProfileByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	GetProfileByID(ctx context.Context, id string) (*entity.Profile, error)
	SaveProfile(ctx context.Context, profile *entity.Profile) error
	GetProfilesExcluding(ctx context.Context, userID string, excludeIDs []string, limit int) ([]entity.Profile, error)
}

type UserRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IUserRepo {
	return &UserRepo{
		db: db,
	}
}

func (r *UserRepo) CreateUser(ctx context.Context, user entity.User) (*entity.User, error) {
	if user.ID == "" {
		user.ID = entity.NewID("user")
	}
	result := r.db.WithContext(ctx).Create(&user)
	return &user, result.Error
}

func (r *UserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&user)
	return &user, result.Error
}

func (r *UserRepo) GetUserByUnameOrEmail(ctx context.Context, email, uname string) (*entity.User, error) {
	var user entity.User
	query := r.db.WithContext(ctx)
	if email != "" {
		query = query.Where("email = ?", email)
	}
	if uname != "" {
		query = query.Or("username = ?", uname)
	}
	result := query.First(&user)
	return &user, result.Error
}

func (r *UserRepo) CreateProfile(ctx context.Context, profile entity.Profile) (*entity.Profile, error) {
	if profile.ID == "" {
		profile.ID = entity.NewID("profile")
	}
	result := r.db.WithContext(ctx).Create(&profile)
	return &profile, result.Error
}

func (r *UserRepo) GetProfileByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	var profile entity.Profile
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile)
	return &profile, result.Error
}

func (r *UserRepo) GetProfileByID(ctx context.Context, id string) (*entity.Profile, error) {
	var profile entity.Profile
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&profile)
	return &profile, result.Error
}

// SaveProfile persists an edited profile. Callers bump Version for
// scoring-relevant edits so cached compatibility scores expire.
func (r *UserRepo) SaveProfile(ctx context.Context, profile *entity.Profile) error {
	profile.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *UserRepo) GetProfilesExcluding(ctx context.Context, userID string, excludeIDs []string, limit int) ([]entity.Profile, error) {
	var profiles []entity.Profile

	query := r.db.WithContext(ctx).
		Model(&entity.Profile{}).
		Where("user_id <> ?", userID)

	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	result := query.Limit(limit).Find(&profiles)
	return profiles, result.Error
}
