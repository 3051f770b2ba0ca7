package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/kotoba-backend/internal/domain"
	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
)

type GroupRepo interface {
	Create(ctx context.Context, tx *gorm.DB, groups []*domain.Group) ([]*domain.Group, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Group, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*domain.Group, error)
	List(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*domain.Group, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	GetByWordID(ctx context.Context, tx *gorm.DB, wordID uint) ([]*domain.Group, error)
}

type groupRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGroupRepo(db *gorm.DB, baseLog *logger.Logger) GroupRepo {
	repoLog := baseLog.With("repo", "GroupRepo")
	return &groupRepo{db: db, log: repoLog}
}

func (r *groupRepo) Create(ctx context.Context, tx *gorm.DB, groups []*domain.Group) ([]*domain.Group, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(groups) == 0 {
		return []*domain.Group{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *groupRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Group, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var rows []*domain.Group
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

func (r *groupRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*domain.Group, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.Group
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

func (r *groupRepo) List(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*domain.Group, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.Group
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *groupRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Group{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetByWordID returns the groups a word belongs to, in id order.
func (r *groupRepo) GetByWordID(ctx context.Context, tx *gorm.DB, wordID uint) ([]*domain.Group, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.Group
	if err := transaction.WithContext(ctx).
		Joins("JOIN words_groups ON words_groups.group_id = groups.id").
		Where("words_groups.word_id = ?", wordID).
		Order("groups.id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
