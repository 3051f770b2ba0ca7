package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
	"github.com/yungbote/kotoba-backend/internal/services"
)

type Services struct {
	Word          services.WordService
	Group         services.GroupService
	StudySession  services.StudySessionService
	StudyActivity services.StudyActivityService
	Dashboard     services.DashboardService
	System        services.SystemService
}

func wireServices(db *gorm.DB, log *logger.Logger, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Word:          services.NewWordService(db, log, r.Word, r.Group, r.WordReviewItem),
		Group:         services.NewGroupService(db, log, r.Group, r.Word, r.WordGroup, r.StudySession, r.StudyActivity, r.WordReviewItem),
		StudySession:  services.NewStudySessionService(db, log, r.StudySession, r.Group, r.StudyActivity, r.Word, r.WordReviewItem),
		StudyActivity: services.NewStudyActivityService(db, log, r.StudyActivity, r.Group, r.StudySession, r.WordReviewItem),
		Dashboard:     services.NewDashboardService(db, log, r.Word, r.Group, r.StudyActivity, r.StudySession, r.WordReviewItem),
		System:        services.NewSystemService(db, log, r.System),
	}
}
