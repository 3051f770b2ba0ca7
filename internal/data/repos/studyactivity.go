package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/kotoba-backend/internal/domain"
	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
)

type StudyActivityRepo interface {
	Create(ctx context.Context, tx *gorm.DB, activities []*domain.StudyActivity) ([]*domain.StudyActivity, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.StudyActivity, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*domain.StudyActivity, error)
}

type studyActivityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudyActivityRepo(db *gorm.DB, baseLog *logger.Logger) StudyActivityRepo {
	repoLog := baseLog.With("repo", "StudyActivityRepo")
	return &studyActivityRepo{db: db, log: repoLog}
}

func (r *studyActivityRepo) Create(ctx context.Context, tx *gorm.DB, activities []*domain.StudyActivity) ([]*domain.StudyActivity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(activities) == 0 {
		return []*domain.StudyActivity{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *studyActivityRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.StudyActivity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var rows []*domain.StudyActivity
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *studyActivityRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*domain.StudyActivity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.StudyActivity
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
