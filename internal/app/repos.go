package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/kotoba-backend/internal/data/repos"
	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
)

type Repos struct {
	Word           repos.WordRepo
	Group          repos.GroupRepo
	WordGroup      repos.WordGroupRepo
	StudyActivity  repos.StudyActivityRepo
	StudySession   repos.StudySessionRepo
	WordReviewItem repos.WordReviewItemRepo
	System         repos.SystemRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Word:           repos.NewWordRepo(db, log),
		Group:          repos.NewGroupRepo(db, log),
		WordGroup:      repos.NewWordGroupRepo(db, log),
		StudyActivity:  repos.NewStudyActivityRepo(db, log),
		StudySession:   repos.NewStudySessionRepo(db, log),
		WordReviewItem: repos.NewWordReviewItemRepo(db, log),
		System:         repos.NewSystemRepo(db, log),
	}
}
