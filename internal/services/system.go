package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/kotoba-backend/internal/data/repos"
	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
)

type SystemService interface {
	ResetHistory(ctx context.Context, tx *gorm.DB) error
	FullReset(ctx context.Context, tx *gorm.DB) error
}

type systemService struct {
	db     *gorm.DB
	log    *logger.Logger
	system repos.SystemRepo
}

func NewSystemService(db *gorm.DB, baseLog *logger.Logger, system repos.SystemRepo) SystemService {
	return &systemService{
		db:     db,
		log:    baseLog.With("service", "SystemService"),
		system: system,
	}
}

func (s *systemService) ResetHistory(ctx context.Context, tx *gorm.DB) error {
	if err := s.system.ResetHistory(ctx, tx); err != nil {
		s.log.Error("ResetHistory failed", "error", err)
		return err
	}
	s.log.Info("Study history reset")
	return nil
}

func (s *systemService) FullReset(ctx context.Context, tx *gorm.DB) error {
	if err := s.system.FullReset(ctx, tx); err != nil {
		s.log.Error("FullReset failed", "error", err)
		return err
	}
	s.log.Info("Full reset complete")
	return nil
}
