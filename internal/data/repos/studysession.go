package repos

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/kotoba-backend/internal/domain"
	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
)

type StudySessionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, sessions []*domain.StudySession) ([]*domain.StudySession, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.StudySession, error)
	List(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*domain.StudySession, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	ListByGroupID(ctx context.Context, tx *gorm.DB, groupID uint, offset, limit int) ([]*domain.StudySession, error)
	CountByGroupID(ctx context.Context, tx *gorm.DB, groupID uint) (int64, error)
	ListByActivityID(ctx context.Context, tx *gorm.DB, activityID uint, offset, limit int) ([]*domain.StudySession, error)
	CountByActivityID(ctx context.Context, tx *gorm.DB, activityID uint) (int64, error)
	GetLatest(ctx context.Context, tx *gorm.DB) (*domain.StudySession, error)
	CountDistinctGroups(ctx context.Context, tx *gorm.DB) (int64, error)
	CountInRange(ctx context.Context, tx *gorm.DB, from, to time.Time) (int64, error)
}

type studySessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudySessionRepo(db *gorm.DB, baseLog *logger.Logger) StudySessionRepo {
	repoLog := baseLog.With("repo", "StudySessionRepo")
	return &studySessionRepo{db: db, log: repoLog}
}

func (r *studySessionRepo) Create(ctx context.Context, tx *gorm.DB, sessions []*domain.StudySession) ([]*domain.StudySession, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(sessions) == 0 {
		return []*domain.StudySession{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *studySessionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.StudySession, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var rows []*domain.StudySession
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

func (r *studySessionRepo) List(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*domain.StudySession, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.StudySession
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *studySessionRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.StudySession{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *studySessionRepo) ListByGroupID(ctx context.Context, tx *gorm.DB, groupID uint, offset, limit int) ([]*domain.StudySession, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.StudySession
	if err := transaction.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *studySessionRepo) CountByGroupID(ctx context.Context, tx *gorm.DB, groupID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.StudySession{}).
		Where("group_id = ?", groupID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *studySessionRepo) ListByActivityID(ctx context.Context, tx *gorm.DB, activityID uint, offset, limit int) ([]*domain.StudySession, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.StudySession
	if err := transaction.WithContext(ctx).
		Where("study_activity_id = ?", activityID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *studySessionRepo) CountByActivityID(ctx context.Context, tx *gorm.DB, activityID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.StudySession{}).
		Where("study_activity_id = ?", activityID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLatest returns the most recently created session, nil when none exist.
func (r *studySessionRepo) GetLatest(ctx context.Context, tx *gorm.DB) (*domain.StudySession, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var rows []*domain.StudySession
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *studySessionRepo) CountDistinctGroups(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.StudySession{}).
		Distinct("group_id").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountInRange counts sessions with created_at in [from, to). The range form
// keeps the query portable between sqlite and postgres date handling.
func (r *studySessionRepo) CountInRange(ctx context.Context, tx *gorm.DB, from, to time.Time) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.StudySession{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
