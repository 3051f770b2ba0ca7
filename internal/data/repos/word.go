package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/kotoba-backend/internal/domain"
	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
)

// WordRepo is the entity store surface for words. List queries order by
// primary key ascending so pagination is deterministic across pages.
type WordRepo interface {
	Create(ctx context.Context, tx *gorm.DB, words []*domain.Word) ([]*domain.Word, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Word, error)
	List(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*domain.Word, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	ListByGroupID(ctx context.Context, tx *gorm.DB, groupID uint, offset, limit int) ([]*domain.Word, error)
	CountByGroupID(ctx context.Context, tx *gorm.DB, groupID uint) (int64, error)
	ListBySessionID(ctx context.Context, tx *gorm.DB, sessionID uint, offset, limit int) ([]*domain.Word, error)
	CountBySessionID(ctx context.Context, tx *gorm.DB, sessionID uint) (int64, error)
	CountReviewed(ctx context.Context, tx *gorm.DB) (int64, error)
}

type wordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWordRepo(db *gorm.DB, baseLog *logger.Logger) WordRepo {
	repoLog := baseLog.With("repo", "WordRepo")
	return &wordRepo{db: db, log: repoLog}
}

func (r *wordRepo) Create(ctx context.Context, tx *gorm.DB, words []*domain.Word) ([]*domain.Word, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(words) == 0 {
		return []*domain.Word{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&words).Error; err != nil {
		return nil, err
	}
	return words, nil
}

func (r *wordRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Word, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var rows []*domain.Word
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

func (r *wordRepo) List(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*domain.Word, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.Word
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *wordRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Word{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *wordRepo) ListByGroupID(ctx context.Context, tx *gorm.DB, groupID uint, offset, limit int) ([]*domain.Word, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.Word
	if err := transaction.WithContext(ctx).
		Joins("JOIN words_groups ON words_groups.word_id = words.id").
		Where("words_groups.group_id = ?", groupID).
		Order("words.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *wordRepo) CountByGroupID(ctx context.Context, tx *gorm.DB, groupID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Word{}).
		Joins("JOIN words_groups ON words_groups.word_id = words.id").
		Where("words_groups.group_id = ?", groupID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *wordRepo) ListBySessionID(ctx context.Context, tx *gorm.DB, sessionID uint, offset, limit int) ([]*domain.Word, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	// A word reviewed several times in the session still lists once.
	var results []*domain.Word
	if err := transaction.WithContext(ctx).
		Distinct("words.*").
		Joins("JOIN word_review_items ON word_review_items.word_id = words.id").
		Where("word_review_items.study_session_id = ?", sessionID).
		Order("words.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *wordRepo) CountBySessionID(ctx context.Context, tx *gorm.DB, sessionID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Word{}).
		Joins("JOIN word_review_items ON word_review_items.word_id = words.id").
		Where("word_review_items.study_session_id = ?", sessionID).
		Distinct("words.id").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountReviewed counts distinct words with at least one review.
func (r *wordRepo) CountReviewed(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Word{}).
		Joins("JOIN word_review_items ON word_review_items.word_id = words.id").
		Distinct("words.id").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
