package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/kotoba-backend/internal/data/repos"
	"github.com/yungbote/kotoba-backend/internal/pagination"
	"github.com/yungbote/kotoba-backend/internal/pkg/apierr"
	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
)

type GroupService interface {
	List(ctx context.Context, tx *gorm.DB, p pagination.Params) (*pagination.Envelope[GroupInList], error)
	Get(ctx context.Context, tx *gorm.DB, id uint) (*GroupDetail, error)
	ListWords(ctx context.Context, tx *gorm.DB, groupID uint, p pagination.Params) (*pagination.Envelope[WordInList], error)
	ListSessions(ctx context.Context, tx *gorm.DB, groupID uint, p pagination.Params) (*pagination.Envelope[StudySessionView], error)
}

type groupService struct {
	db         *gorm.DB
	log        *logger.Logger
	groups     repos.GroupRepo
	words      repos.WordRepo
	wordGroups repos.WordGroupRepo
	sessions   repos.StudySessionRepo
	activities repos.StudyActivityRepo
	reviews    repos.WordReviewItemRepo
}

func NewGroupService(
	db *gorm.DB,
	baseLog *logger.Logger,
	groups repos.GroupRepo,
	words repos.WordRepo,
	wordGroups repos.WordGroupRepo,
	sessions repos.StudySessionRepo,
	activities repos.StudyActivityRepo,
	reviews repos.WordReviewItemRepo,
) GroupService {
	return &groupService{
		db:         db,
		log:        baseLog.With("service", "GroupService"),
		groups:     groups,
		words:      words,
		wordGroups: wordGroups,
		sessions:   sessions,
		activities: activities,
		reviews:    reviews,
	}
}

func (s *groupService) List(ctx context.Context, tx *gorm.DB, p pagination.Params) (*pagination.Envelope[GroupInList], error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	total, err := s.groups.Count(ctx, transaction)
	if err != nil {
		s.log.Warn("List: count failed", "error", err)
		return nil, err
	}
	page, err := s.groups.List(ctx, transaction, p.Offset(), p.Limit())
	if err != nil {
		s.log.Warn("List: page query failed", "error", err)
		return nil, err
	}

	ids := make([]uint, 0, len(page))
	for _, g := range page {
		ids = append(ids, g.ID)
	}
	wordCounts, err := s.wordGroups.CountByGroupIDs(ctx, transaction, ids)
	if err != nil {
		s.log.Warn("List: word counts failed", "error", err)
		return nil, err
	}

	items := make([]GroupInList, 0, len(page))
	for _, g := range page {
		items = append(items, GroupInList{
			ID:        g.ID,
			Name:      g.Name,
			WordCount: wordCounts[g.ID],
		})
	}
	return pagination.NewEnvelope(items, p, total), nil
}

func (s *groupService) Get(ctx context.Context, tx *gorm.DB, id uint) (*GroupDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	group, err := s.groups.GetByID(ctx, transaction, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apierr.NotFound("Group")
	}

	wordCount, err := s.wordGroups.CountByGroupID(ctx, transaction, id)
	if err != nil {
		return nil, err
	}

	return &GroupDetail{
		ID:    group.ID,
		Name:  group.Name,
		Stats: GroupStats{TotalWordCount: wordCount},
	}, nil
}

func (s *groupService) ListWords(ctx context.Context, tx *gorm.DB, groupID uint, p pagination.Params) (*pagination.Envelope[WordInList], error) {
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

	total, err := s.words.CountByGroupID(ctx, transaction, groupID)
	if err != nil {
		return nil, err
	}
	page, err := s.words.ListByGroupID(ctx, transaction, groupID, p.Offset(), p.Limit())
	if err != nil {
		return nil, err
	}

	items, err := assembleWordList(ctx, transaction, s.reviews, page)
	if err != nil {
		return nil, err
	}
	return pagination.NewEnvelope(items, p, total), nil
}

func (s *groupService) ListSessions(ctx context.Context, tx *gorm.DB, groupID uint, p pagination.Params) (*pagination.Envelope[StudySessionView], error) {
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

	total, err := s.sessions.CountByGroupID(ctx, transaction, groupID)
	if err != nil {
		return nil, err
	}
	page, err := s.sessions.ListByGroupID(ctx, transaction, groupID, p.Offset(), p.Limit())
	if err != nil {
		return nil, err
	}

	items, err := assembleSessionList(ctx, transaction, s.groups, s.activities, s.reviews, page)
	if err != nil {
		return nil, err
	}
	return pagination.NewEnvelope(items, p, total), nil
}
