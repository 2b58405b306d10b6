package projectRepo

import (
	"context"
	"time"

	"github.com/buildrs/match-engine/internal/entity"
	"gorm.io/gorm"
)

type IProjectRepo interface {
	CreateProject(ctx context.Context, project entity.Project) (*entity.Project, error)
	GetProjectByID(ctx context.Context, id string) (*entity.Project, error)
	GetProjectsByCreator(ctx context.Context, creatorID string) ([]entity.Project, error)
	SaveProject(ctx context.Context, project *entity.Project) error
	GetRecruitingProjects(ctx context.Context, excludeCreatorID string, excludeIDs []string, limit int) ([]entity.Project, error)
}

type ProjectRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IProjectRepo {
	return &ProjectRepo{
		db: db,
	}
}

func (r *ProjectRepo) CreateProject(ctx context.Context, project entity.Project) (*entity.Project, error) {
	if project.ID == "" {
		project.ID = entity.NewID("project")
	}
	if project.Status == "" {
		project.Status = entity.ProjectRecruiting
	}
	project.CreatedAt = time.Now()
	project.UpdatedAt = project.CreatedAt

	result := r.db.WithContext(ctx).Create(&project)
	return &project, result.Error
}

func (r *ProjectRepo) GetProjectByID(ctx context.Context, id string) (*entity.Project, error) {
	var project entity.Project
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&project)
	return &project, result.Error
}

func (r *ProjectRepo) GetProjectsByCreator(ctx context.Context, creatorID string) ([]entity.Project, error) {
	var projects []entity.Project
	result := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&projects)
	return projects, result.Error
}

func (r *ProjectRepo) SaveProject(ctx context.Context, project *entity.Project) error {
	project.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *ProjectRepo) GetRecruitingProjects(ctx context.Context, excludeCreatorID string, excludeIDs []string, limit int) ([]entity.Project, error) {
	var projects []entity.Project

	query := r.db.WithContext(ctx).
		Model(&entity.Project{}).
		Where("status = ?", entity.ProjectRecruiting).
		Where("creator_id <> ?", excludeCreatorID)

	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	result := query.Limit(limit).Find(&projects)
	return projects, result.Error
}
