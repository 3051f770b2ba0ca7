package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/kotoba-backend/internal/data/repos"
	"github.com/yungbote/kotoba-backend/internal/domain"
	"github.com/yungbote/kotoba-backend/internal/pagination"
	"github.com/yungbote/kotoba-backend/internal/pkg/apierr"
	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
)

type WordService interface {
	List(ctx context.Context, tx *gorm.DB, p pagination.Params) (*pagination.Envelope[WordInList], error)
	Get(ctx context.Context, tx *gorm.DB, id uint) (*WordDetail, error)
}

type wordService struct {
	db      *gorm.DB
	log     *logger.Logger
	words   repos.WordRepo
	groups  repos.GroupRepo
	reviews repos.WordReviewItemRepo
}

func NewWordService(
	db *gorm.DB,
	baseLog *logger.Logger,
	words repos.WordRepo,
	groups repos.GroupRepo,
	reviews repos.WordReviewItemRepo,
) WordService {
	return &wordService{
		db:      db,
		log:     baseLog.With("service", "WordService"),
		words:   words,
		groups:  groups,
		reviews: reviews,
	}
}

func (s *wordService) List(ctx context.Context, tx *gorm.DB, p pagination.Params) (*pagination.Envelope[WordInList], error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	total, err := s.words.Count(ctx, transaction)
	if err != nil {
		s.log.Warn("List: count failed", "error", err)
		return nil, err
	}
	page, err := s.words.List(ctx, transaction, p.Offset(), p.Limit())
	if err != nil {
		s.log.Warn("List: page query failed", "error", err)
		return nil, err
	}

	items, err := assembleWordList(ctx, transaction, s.reviews, page)
	if err != nil {
		s.log.Warn("List: tally failed", "error", err)
		return nil, err
	}
	return pagination.NewEnvelope(items, p, total), nil
}

func (s *wordService) Get(ctx context.Context, tx *gorm.DB, id uint) (*WordDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	word, err := s.words.GetByID(ctx, transaction, id)
	if err != nil {
		return nil, err
	}
	if word == nil {
		return nil, apierr.NotFound("Word")
	}

	correct, err := s.reviews.CountByWordID(ctx, transaction, id, true)
	if err != nil {
		return nil, err
	}
	wrong, err := s.reviews.CountByWordID(ctx, transaction, id, false)
	if err != nil {
		return nil, err
	}
	wordGroups, err := s.groups.GetByWordID(ctx, transaction, id)
	if err != nil {
		return nil, err
	}

	groupViews := make([]GroupInWord, 0, len(wordGroups))
	for _, g := range wordGroups {
		groupViews = append(groupViews, GroupInWord{ID: g.ID, Name: g.Name})
	}

	return &WordDetail{
		ID:       word.ID,
		Japanese: word.Japanese,
		Romaji:   word.Romaji,
		English:  word.English,
		Stats:    WordStats{CorrectCount: correct, WrongCount: wrong},
		Groups:   groupViews,
	}, nil
}

// assembleWordList matches each word of the page with its review tally. The
// tally query is keyed by exactly the page's id set, so the map lookup can
// never miss.
func assembleWordList(ctx context.Context, tx *gorm.DB, reviews repos.WordReviewItemRepo, page []*domain.Word) ([]WordInList, error) {
	ids := make([]uint, 0, len(page))
	for _, w := range page {
		ids = append(ids, w.ID)
	}
	tallies, err := reviews.CountByWordIDs(ctx, tx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]WordInList, 0, len(page))
	for _, w := range page {
		tally := tallies[w.ID]
		items = append(items, WordInList{
			ID:           w.ID,
			Japanese:     w.Japanese,
			Romaji:       w.Romaji,
			English:      w.English,
			CorrectCount: tally.Correct,
			WrongCount:   tally.Wrong,
		})
	}
	return items, nil
}
