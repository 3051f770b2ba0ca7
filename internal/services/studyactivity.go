package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/kotoba-backend/internal/data/repos"
	"github.com/yungbote/kotoba-backend/internal/domain"
	"github.com/yungbote/kotoba-backend/internal/pagination"
	"github.com/yungbote/kotoba-backend/internal/pkg/apierr"
	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
)

type StudyActivityService interface {
	Get(ctx context.Context, tx *gorm.DB, id uint) (*StudyActivityDetail, error)
	ListSessions(ctx context.Context, tx *gorm.DB, activityID uint, p pagination.Params) (*pagination.Envelope[StudySessionView], error)
	Launch(ctx context.Context, tx *gorm.DB, groupID, activityID uint) (*LaunchResult, error)
}

type studyActivityService struct {
	db         *gorm.DB
	log        *logger.Logger
	activities repos.StudyActivityRepo
	groups     repos.GroupRepo
	sessions   repos.StudySessionRepo
	reviews    repos.WordReviewItemRepo
}

func NewStudyActivityService(
	db *gorm.DB,
	baseLog *logger.Logger,
	activities repos.StudyActivityRepo,
	groups repos.GroupRepo,
	sessions repos.StudySessionRepo,
	reviews repos.WordReviewItemRepo,
) StudyActivityService {
	return &studyActivityService{
		db:         db,
		log:        baseLog.With("service", "StudyActivityService"),
		activities: activities,
		groups:     groups,
		sessions:   sessions,
		reviews:    reviews,
	}
}

func (s *studyActivityService) Get(ctx context.Context, tx *gorm.DB, id uint) (*StudyActivityDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	activity, err := s.activities.GetByID(ctx, transaction, id)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, apierr.NotFound("Study activity")
	}

	return &StudyActivityDetail{
		ID:           activity.ID,
		Name:         activity.Name,
		ThumbnailURL: activity.ThumbnailURL,
		Description:  activity.Description,
	}, nil
}

func (s *studyActivityService) ListSessions(ctx context.Context, tx *gorm.DB, activityID uint, p pagination.Params) (*pagination.Envelope[StudySessionView], error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	activity, err := s.activities.GetByID(ctx, transaction, activityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, apierr.NotFound("Study activity")
	}

	total, err := s.sessions.CountByActivityID(ctx, transaction, activityID)
	if err != nil {
		return nil, err
	}
	page, err := s.sessions.ListByActivityID(ctx, transaction, activityID, p.Offset(), p.Limit())
	if err != nil {
		return nil, err
	}

	items, err := assembleSessionList(ctx, transaction, s.groups, s.activities, s.reviews, page)
	if err != nil {
		return nil, err
	}
	return pagination.NewEnvelope(items, p, total), nil
}

// Launch starts a study session for a group with this activity. The session
// row is the only thing created; reviews arrive later one by one.
func (s *studyActivityService) Launch(ctx context.Context, tx *gorm.DB, groupID, activityID uint) (*LaunchResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	group, err := s.groups.GetByID(ctx, transaction, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apierr.NotFound("Group")
	}
	activity, err := s.activities.GetByID(ctx, transaction, activityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, apierr.NotFound("Study activity")
	}

	created, err := s.sessions.Create(ctx, transaction, []*domain.StudySession{{
		GroupID:         groupID,
		StudyActivityID: activityID,
		CreatedAt:       time.Now().UTC(),
	}})
	if err != nil {
		s.log.Warn("Launch: create session failed", "error", err, "group_id", groupID, "activity_id", activityID)
		return nil, err
	}

	session := created[0]
	return &LaunchResult{
		SessionID:       session.ID,
		GroupID:         session.GroupID,
		StudyActivityID: session.StudyActivityID,
	}, nil
}
