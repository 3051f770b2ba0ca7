package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/kotoba-backend/internal/domain"
	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
)

// ReviewCounts is the per-word tally recomputed from review facts on read.
type ReviewCounts struct {
	Correct int64
	Wrong   int64
}

type WordReviewItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, items []*domain.WordReviewItem) ([]*domain.WordReviewItem, error)
	CountByWordID(ctx context.Context, tx *gorm.DB, wordID uint, correct bool) (int64, error)
	CountByWordIDs(ctx context.Context, tx *gorm.DB, wordIDs []uint) (map[uint]ReviewCounts, error)
	CountBySessionID(ctx context.Context, tx *gorm.DB, sessionID uint) (int64, error)
	CountBySessionIDs(ctx context.Context, tx *gorm.DB, sessionIDs []uint) (map[uint]int64, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	CountCorrect(ctx context.Context, tx *gorm.DB) (int64, error)
}

type wordReviewItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWordReviewItemRepo(db *gorm.DB, baseLog *logger.Logger) WordReviewItemRepo {
	repoLog := baseLog.With("repo", "WordReviewItemRepo")
	return &wordReviewItemRepo{db: db, log: repoLog}
}

func (r *wordReviewItemRepo) Create(ctx context.Context, tx *gorm.DB, items []*domain.WordReviewItem) ([]*domain.WordReviewItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(items) == 0 {
		return []*domain.WordReviewItem{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *wordReviewItemRepo) CountByWordID(ctx context.Context, tx *gorm.DB, wordID uint, correct bool) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.WordReviewItem{}).
		Where("word_id = ? AND correct = ?", wordID, correct).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByWordIDs tallies correct and wrong reviews for the page's word ids
// in one grouped query. Every requested id is present in the result, with
// zeroes when a word has no reviews.
func (r *wordReviewItemRepo) CountByWordIDs(ctx context.Context, tx *gorm.DB, wordIDs []uint) (map[uint]ReviewCounts, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	counts := make(map[uint]ReviewCounts, len(wordIDs))
	for _, id := range wordIDs {
		counts[id] = ReviewCounts{}
	}
	if len(wordIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		WordID  uint
		Correct bool
		N       int64
	}
	if err := transaction.WithContext(ctx).
		Model(&domain.WordReviewItem{}).
		Select("word_id, correct, COUNT(*) AS n").
		Where("word_id IN ?", wordIDs).
		Group("word_id").
		Group("correct").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		tally := counts[row.WordID]
		if row.Correct {
			tally.Correct = row.N
		} else {
			tally.Wrong = row.N
		}
		counts[row.WordID] = tally
	}
	return counts, nil
}

func (r *wordReviewItemRepo) CountBySessionID(ctx context.Context, tx *gorm.DB, sessionID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.WordReviewItem{}).
		Where("study_session_id = ?", sessionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *wordReviewItemRepo) CountBySessionIDs(ctx context.Context, tx *gorm.DB, sessionIDs []uint) (map[uint]int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	counts := make(map[uint]int64, len(sessionIDs))
	for _, id := range sessionIDs {
		counts[id] = 0
	}
	if len(sessionIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		StudySessionID uint
		N              int64
	}
	if err := transaction.WithContext(ctx).
		Model(&domain.WordReviewItem{}).
		Select("study_session_id, COUNT(*) AS n").
		Where("study_session_id IN ?", sessionIDs).
		Group("study_session_id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.StudySessionID] = row.N
	}
	return counts, nil
}

func (r *wordReviewItemRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.WordReviewItem{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *wordReviewItemRepo) CountCorrect(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.WordReviewItem{}).
		Where("correct = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
