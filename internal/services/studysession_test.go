package services

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/kotoba-backend/internal/data/repos/testutil"
	"github.com/yungbote/kotoba-backend/internal/pagination"
	"github.com/yungbote/kotoba-backend/internal/pkg/apierr"
)

func TestStudySessionServiceListAndGet(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	d := newDeps(t, db)
	svc := NewStudySessionService(db, testutil.Logger(t), d.sessions, d.groups, d.activities, d.words, d.reviews)

	g := testutil.SeedGroup(t, ctx, tx, "Verbs")
	a := testutil.SeedActivity(t, ctx, tx, "Vocabulary Quiz")
	s1 := testutil.SeedSession(t, ctx, tx, g.ID, a.ID, time.Now().UTC().Add(-time.Hour))
	s2 := testutil.SeedSession(t, ctx, tx, g.ID, a.ID, time.Now().UTC())

	w := testutil.SeedWord(t, ctx, tx, "話す", "hanasu", "to speak")
	testutil.SeedReview(t, ctx, tx, w.ID, s2.ID, true)
	testutil.SeedReview(t, ctx, tx, w.ID, s2.ID, false)

	env, err := svc.List(ctx, tx, pagination.DefaultParams())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(env.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(env.Items))
	}

	view, err := svc.Get(ctx, tx, s2.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if view.GroupName != "Verbs" || view.ActivityName != "Vocabulary Quiz" {
		t.Fatalf("view names = %q/%q", view.GroupName, view.ActivityName)
	}
	if view.ReviewItemsCount != 2 {
		t.Fatalf("review count = %d, want 2", view.ReviewItemsCount)
	}
	if view.GroupID != g.ID || view.StudyActivityID != a.ID {
		t.Fatalf("view ids = %+v", view)
	}

	if _, err := svc.Get(ctx, tx, s1.ID); err != nil {
		t.Fatalf("Get s1: %v", err)
	}
	if _, err := svc.Get(ctx, tx, 99999); !apierr.IsNotFound(err) {
		t.Fatalf("Get missing session err = %v, want not found", err)
	}
}

func TestStudySessionServiceListWords(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	d := newDeps(t, db)
	svc := NewStudySessionService(db, testutil.Logger(t), d.sessions, d.groups, d.activities, d.words, d.reviews)

	g := testutil.SeedGroup(t, ctx, tx, "Verbs")
	a := testutil.SeedActivity(t, ctx, tx, "quiz")
	s := testutil.SeedSession(t, ctx, tx, g.ID, a.ID, time.Now().UTC())

	w1 := testutil.SeedWord(t, ctx, tx, "読む", "yomu", "to read")
	w2 := testutil.SeedWord(t, ctx, tx, "書く", "kaku", "to write")
	testutil.SeedWord(t, ctx, tx, "買う", "kau", "to buy")
	testutil.SeedReview(t, ctx, tx, w1.ID, s.ID, true)
	testutil.SeedReview(t, ctx, tx, w1.ID, s.ID, false)
	testutil.SeedReview(t, ctx, tx, w2.ID, s.ID, false)

	env, err := svc.ListWords(ctx, tx, s.ID, pagination.DefaultParams())
	if err != nil {
		t.Fatalf("ListWords: %v", err)
	}
	// Only the two reviewed words belong to the session, each listed once
	// no matter how many reviews it accumulated.
	if len(env.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(env.Items))
	}
	if env.Pagination.TotalItems != 2 {
		t.Fatalf("total items = %d, want 2", env.Pagination.TotalItems)
	}

	if _, err := svc.ListWords(ctx, tx, 99999, pagination.DefaultParams()); !apierr.IsNotFound(err) {
		t.Fatalf("ListWords missing session err = %v, want not found", err)
	}
}

func TestStudySessionServiceReviewWord(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	d := newDeps(t, db)
	svc := NewStudySessionService(db, testutil.Logger(t), d.sessions, d.groups, d.activities, d.words, d.reviews)

	g := testutil.SeedGroup(t, ctx, tx, "Verbs")
	a := testutil.SeedActivity(t, ctx, tx, "quiz")
	s := testutil.SeedSession(t, ctx, tx, g.ID, a.ID, time.Now().UTC())
	w := testutil.SeedWord(t, ctx, tx, "聞く", "kiku", "to listen")

	result, err := svc.ReviewWord(ctx, tx, s.ID, w.ID, true)
	if err != nil {
		t.Fatalf("ReviewWord: %v", err)
	}
	if result.WordID != w.ID || result.StudySessionID != s.ID || !result.Correct {
		t.Fatalf("result = %+v", result)
	}
	if result.CreatedAt.IsZero() {
		t.Fatal("result.CreatedAt is zero")
	}

	counts, err := d.reviews.CountByWordIDs(ctx, tx, []uint{w.ID})
	if err != nil {
		t.Fatalf("CountByWordIDs: %v", err)
	}
	if counts[w.ID].Correct != 1 || counts[w.ID].Wrong != 0 {
		t.Fatalf("counts = %+v, want 1/0", counts[w.ID])
	}

	if _, err := svc.ReviewWord(ctx, tx, 99999, w.ID, true); !apierr.IsNotFound(err) {
		t.Fatalf("ReviewWord missing session err = %v, want not found", err)
	}
	if _, err := svc.ReviewWord(ctx, tx, s.ID, 99999, true); !apierr.IsNotFound(err) {
		t.Fatalf("ReviewWord missing word err = %v, want not found", err)
	}
}
