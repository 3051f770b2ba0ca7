package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/kotoba-backend/internal/domain"
	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
)

// WordGroupRepo owns the membership join rows and the word-count aggregates
// derived from them.
type WordGroupRepo interface {
	Create(ctx context.Context, tx *gorm.DB, links []*domain.WordGroup) ([]*domain.WordGroup, error)
	CountByGroupID(ctx context.Context, tx *gorm.DB, groupID uint) (int64, error)
	CountByGroupIDs(ctx context.Context, tx *gorm.DB, groupIDs []uint) (map[uint]int64, error)
}

type wordGroupRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWordGroupRepo(db *gorm.DB, baseLog *logger.Logger) WordGroupRepo {
	repoLog := baseLog.With("repo", "WordGroupRepo")
	return &wordGroupRepo{db: db, log: repoLog}
}

func (r *wordGroupRepo) Create(ctx context.Context, tx *gorm.DB, links []*domain.WordGroup) ([]*domain.WordGroup, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(links) == 0 {
		return []*domain.WordGroup{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *wordGroupRepo) CountByGroupID(ctx context.Context, tx *gorm.DB, groupID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.WordGroup{}).
		Where("group_id = ?", groupID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByGroupIDs is the bulk counter for list pages: one grouped query
// keyed by the page's group ids. Ids with no links are present with 0.
func (r *wordGroupRepo) CountByGroupIDs(ctx context.Context, tx *gorm.DB, groupIDs []uint) (map[uint]int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	counts := make(map[uint]int64, len(groupIDs))
	for _, id := range groupIDs {
		counts[id] = 0
	}
	if len(groupIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		GroupID uint
		N       int64
	}
	if err := transaction.WithContext(ctx).
		Model(&domain.WordGroup{}).
		Select("group_id, COUNT(*) AS n").
		Where("group_id IN ?", groupIDs).
		Group("group_id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.GroupID] = row.N
	}
	return counts, nil
}
