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

type StudySessionService interface {
	List(ctx context.Context, tx *gorm.DB, p pagination.Params) (*pagination.Envelope[StudySessionView], error)
	Get(ctx context.Context, tx *gorm.DB, id uint) (*StudySessionView, error)
	ListWords(ctx context.Context, tx *gorm.DB, sessionID uint, p pagination.Params) (*pagination.Envelope[WordInList], error)
	ReviewWord(ctx context.Context, tx *gorm.DB, sessionID, wordID uint, correct bool) (*ReviewResult, error)
}

type studySessionService struct {
	db         *gorm.DB
	log        *logger.Logger
	sessions   repos.StudySessionRepo
	groups     repos.GroupRepo
	activities repos.StudyActivityRepo
	words      repos.WordRepo
	reviews    repos.WordReviewItemRepo
}

func NewStudySessionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	sessions repos.StudySessionRepo,
	groups repos.GroupRepo,
	activities repos.StudyActivityRepo,
	words repos.WordRepo,
	reviews repos.WordReviewItemRepo,
) StudySessionService {
	return &studySessionService{
		db:         db,
		log:        baseLog.With("service", "StudySessionService"),
		sessions:   sessions,
		groups:     groups,
		activities: activities,
		words:      words,
		reviews:    reviews,
	}
}

func (s *studySessionService) List(ctx context.Context, tx *gorm.DB, p pagination.Params) (*pagination.Envelope[StudySessionView], error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	total, err := s.sessions.Count(ctx, transaction)
	if err != nil {
		s.log.Warn("List: count failed", "error", err)
		return nil, err
	}
	page, err := s.sessions.List(ctx, transaction, p.Offset(), p.Limit())
	if err != nil {
		s.log.Warn("List: page query failed", "error", err)
		return nil, err
	}

	items, err := assembleSessionList(ctx, transaction, s.groups, s.activities, s.reviews, page)
	if err != nil {
		s.log.Warn("List: assembly failed", "error", err)
		return nil, err
	}
	return pagination.NewEnvelope(items, p, total), nil
}

func (s *studySessionService) Get(ctx context.Context, tx *gorm.DB, id uint) (*StudySessionView, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	session, err := s.sessions.GetByID(ctx, transaction, id)
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

func (s *studySessionService) ListWords(ctx context.Context, tx *gorm.DB, sessionID uint, p pagination.Params) (*pagination.Envelope[WordInList], error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	session, err := s.sessions.GetByID(ctx, transaction, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apierr.NotFound("Study session")
	}

	total, err := s.words.CountBySessionID(ctx, transaction, sessionID)
	if err != nil {
		return nil, err
	}
	page, err := s.words.ListBySessionID(ctx, transaction, sessionID, p.Offset(), p.Limit())
	if err != nil {
		return nil, err
	}

	items, err := assembleWordList(ctx, transaction, s.reviews, page)
	if err != nil {
		return nil, err
	}
	return pagination.NewEnvelope(items, p, total), nil
}

// ReviewWord appends one review fact. Both referenced entities must exist
// before the insert; the fact itself is immutable once written.
func (s *studySessionService) ReviewWord(ctx context.Context, tx *gorm.DB, sessionID, wordID uint, correct bool) (*ReviewResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	session, err := s.sessions.GetByID(ctx, transaction, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apierr.NotFound("Study session")
	}
	word, err := s.words.GetByID(ctx, transaction, wordID)
	if err != nil {
		return nil, err
	}
	if word == nil {
		return nil, apierr.NotFound("Word")
	}

	items, err := s.reviews.Create(ctx, transaction, []*domain.WordReviewItem{{
		WordID:         wordID,
		StudySessionID: sessionID,
		Correct:        correct,
		CreatedAt:      time.Now().UTC(),
	}})
	if err != nil {
		s.log.Warn("ReviewWord: insert failed", "error", err, "session_id", sessionID, "word_id", wordID)
		return nil, err
	}

	item := items[0]
	return &ReviewResult{
		WordID:         item.WordID,
		StudySessionID: item.StudySessionID,
		Correct:        item.Correct,
		CreatedAt:      item.CreatedAt,
	}, nil
}

// assembleSessionList joins a page of sessions with group names, activity
// names and review counts. Name lookups are keyed by the page's id sets.
func assembleSessionList(
	ctx context.Context,
	tx *gorm.DB,
	groups repos.GroupRepo,
	activities repos.StudyActivityRepo,
	reviews repos.WordReviewItemRepo,
	page []*domain.StudySession,
) ([]StudySessionView, error) {
	sessionIDs := make([]uint, 0, len(page))
	groupIDs := make([]uint, 0, len(page))
	activityIDs := make([]uint, 0, len(page))
	for _, sess := range page {
		sessionIDs = append(sessionIDs, sess.ID)
		groupIDs = append(groupIDs, sess.GroupID)
		activityIDs = append(activityIDs, sess.StudyActivityID)
	}

	groupRows, err := groups.GetByIDs(ctx, tx, groupIDs)
	if err != nil {
		return nil, err
	}
	groupNames := make(map[uint]string, len(groupRows))
	for _, g := range groupRows {
		groupNames[g.ID] = g.Name
	}

	activityRows, err := activities.GetByIDs(ctx, tx, activityIDs)
	if err != nil {
		return nil, err
	}
	activityNames := make(map[uint]string, len(activityRows))
	for _, a := range activityRows {
		activityNames[a.ID] = a.Name
	}

	reviewCounts, err := reviews.CountBySessionIDs(ctx, tx, sessionIDs)
	if err != nil {
		return nil, err
	}

	views := make([]StudySessionView, 0, len(page))
	for _, sess := range page {
		views = append(views, StudySessionView{
			ID:               sess.ID,
			ActivityName:     activityNames[sess.StudyActivityID],
			GroupName:        groupNames[sess.GroupID],
			GroupID:          sess.GroupID,
			StudyActivityID:  sess.StudyActivityID,
			CreatedAt:        sess.CreatedAt,
			StartTime:        sess.CreatedAt,
			EndTime:          sess.CreatedAt,
			ReviewItemsCount: reviewCounts[sess.ID],
		})
	}
	return views, nil
}
