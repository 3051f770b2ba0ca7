package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/kotoba-backend/internal/domain"
	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
)

// SystemRepo implements the bulk reset operations. Deletes run in
// dependency order inside one transaction so no orphaned foreign keys can
// be observed.
type SystemRepo interface {
	ResetHistory(ctx context.Context, tx *gorm.DB) error
	FullReset(ctx context.Context, tx *gorm.DB) error
}

type systemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSystemRepo(db *gorm.DB, baseLog *logger.Logger) SystemRepo {
	repoLog := baseLog.With("repo", "SystemRepo")
	return &systemRepo{db: db, log: repoLog}
}

func (r *systemRepo) ResetHistory(ctx context.Context, tx *gorm.DB) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).Transaction(func(t *gorm.DB) error {
		if err := t.Where("1 = 1").Delete(&domain.WordReviewItem{}).Error; err != nil {
			return err
		}
		if err := t.Where("1 = 1").Delete(&domain.StudySession{}).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *systemRepo) FullReset(ctx context.Context, tx *gorm.DB) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).Transaction(func(t *gorm.DB) error {
		for _, model := range []interface{}{
			&domain.WordReviewItem{},
			&domain.StudySession{},
			&domain.WordGroup{},
			&domain.Word{},
			&domain.Group{},
		} {
			if err := t.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
