package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/kotoba-backend/internal/domain"
)

func SeedWord(tb testing.TB, ctx context.Context, tx *gorm.DB, japanese, romaji, english string) *domain.Word {
	tb.Helper()
	w := &domain.Word{
		Japanese: japanese,
		Romaji:   romaji,
		English:  english,
	}
	if err := tx.WithContext(ctx).Create(w).Error; err != nil {
		tb.Fatalf("seed word: %v", err)
	}
	return w
}

func SeedGroup(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Group {
	tb.Helper()
	g := &domain.Group{Name: name}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed group: %v", err)
	}
	return g
}

func LinkWordToGroup(tb testing.TB, ctx context.Context, tx *gorm.DB, wordID, groupID uint) *domain.WordGroup {
	tb.Helper()
	link := &domain.WordGroup{WordID: wordID, GroupID: groupID}
	if err := tx.WithContext(ctx).Create(link).Error; err != nil {
		tb.Fatalf("seed word-group link: %v", err)
	}
	return link
}

func SeedActivity(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.StudyActivity {
	tb.Helper()
	a := &domain.StudyActivity{
		Name:         name,
		ThumbnailURL: "/thumbs/" + name + ".png",
		Description:  name + " practice",
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed activity: %v", err)
	}
	return a
}

func SeedSession(tb testing.TB, ctx context.Context, tx *gorm.DB, groupID, activityID uint, createdAt time.Time) *domain.StudySession {
	tb.Helper()
	s := &domain.StudySession{
		GroupID:         groupID,
		StudyActivityID: activityID,
		CreatedAt:       createdAt,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed session: %v", err)
	}
	return s
}

func SeedReview(tb testing.TB, ctx context.Context, tx *gorm.DB, wordID, sessionID uint, correct bool) *domain.WordReviewItem {
	tb.Helper()
	ri := &domain.WordReviewItem{
		WordID:         wordID,
		StudySessionID: sessionID,
		Correct:        correct,
		CreatedAt:      time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(ri).Error; err != nil {
		tb.Fatalf("seed review: %v", err)
	}
	return ri
}
