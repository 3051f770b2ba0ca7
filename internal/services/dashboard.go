package services

import (
	"context"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/kotoba-backend/internal/data/repos"
	"github.com/yungbote/kotoba-backend/internal/domain"
	"github.com/yungbote/kotoba-backend/internal/pkg/apierr"
	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
)

type DashboardService interface {
	LastStudySession(ctx context.Context, tx *gorm.DB) (*StudySessionView, error)
	StudyProgress(ctx context.Context, tx *gorm.DB) (*StudyProgress, error)
	QuickStats(ctx context.Context, tx *gorm.DB) (*QuickStats, error)
}

type dashboardService struct {
	db         *gorm.DB
	log        *logger.Logger
	words      repos.WordRepo
	groups     repos.GroupRepo
	activities repos.StudyActivityRepo
	sessions   repos.StudySessionRepo
	reviews    repos.WordReviewItemRepo
	now        func() time.Time
}

func NewDashboardService(
	db *gorm.DB,
	baseLog *logger.Logger,
	words repos.WordRepo,
	groups repos.GroupRepo,
	activities repos.StudyActivityRepo,
	sessions repos.StudySessionRepo,
	reviews repos.WordReviewItemRepo,
) DashboardService {
	return &dashboardService{
		db:         db,
		log:        baseLog.With("service", "DashboardService"),
		words:      words,
		groups:     groups,
		activities: activities,
		sessions:   sessions,
		reviews:    reviews,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *dashboardService) LastStudySession(ctx context.Context, tx *gorm.DB) (*StudySessionView, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	session, err := s.sessions.GetLatest(ctx, transaction)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apierr.NotFound("Study session")
	}

	views, err := assembleSessionList(ctx, transaction, s.groups, s.activities, s.reviews, []*domain.StudySession{session})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *dashboardService) StudyProgress(ctx context.Context, tx *gorm.DB) (*StudyProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	totalWords, err := s.words.Count(ctx, transaction)
	if err != nil {
		return nil, err
	}
	studied, err := s.words.CountReviewed(ctx, transaction)
	if err != nil {
		return nil, err
	}

	return &StudyProgress{
		TotalWordsStudied:   studied,
		TotalAvailableWords: totalWords,
	}, nil
}

func (s *dashboardService) QuickStats(ctx context.Context, tx *gorm.DB) (*QuickStats, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	totalReviews, err := s.reviews.Count(ctx, transaction)
	if err != nil {
		return nil, err
	}
	correctReviews, err := s.reviews.CountCorrect(ctx, transaction)
	if err != nil {
		return nil, err
	}
	successRate := 0.0
	if totalReviews > 0 {
		successRate = math.Round(float64(correctReviews)/float64(totalReviews)*1000) / 10
	}

	totalSessions, err := s.sessions.Count(ctx, transaction)
	if err != nil {
		return nil, err
	}
	activeGroups, err := s.sessions.CountDistinctGroups(ctx, transaction)
	if err != nil {
		return nil, err
	}

	streak, err := s.studyStreak(ctx, transaction)
	if err != nil {
		return nil, err
	}

	return &QuickStats{
		SuccessRate:        successRate,
		TotalStudySessions: totalSessions,
		TotalActiveGroups:  activeGroups,
		StudyStreakDays:    streak,
	}, nil
}

// studyStreak counts consecutive days ending today with at least one
// session. Walks backwards day by day until the first gap.
func (s *dashboardService) studyStreak(ctx context.Context, tx *gorm.DB) (int, error) {
	day := s.now().Truncate(24 * time.Hour)
	streak := 0
	for {
		n, err := s.sessions.CountInRange(ctx, tx, day, day.Add(24*time.Hour))
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return streak, nil
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}
